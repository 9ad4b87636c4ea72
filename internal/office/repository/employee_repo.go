package repository

import (
	"fmt"
	"time"

	"github.com/codewithkin/wd-logistics/internal/office/entity"
	"gorm.io/gorm"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Create(employee *entity.Employee) error {
	return r.db.Create(employee).Error
}

func (r *EmployeeRepository) GetByID(orgID, id string) (*entity.Employee, error) {
	var employee entity.Employee
	err := r.db.Where("id = ? AND org_id = ? AND deleted_at IS NULL", id, orgID).First(&employee).Error
	return &employee, err
}

func (r *EmployeeRepository) Update(employee *entity.Employee) error {
	return r.db.Save(employee).Error
}

func (r *EmployeeRepository) Delete(orgID, id string) error {
	return r.db.Model(&entity.Employee{}).
		Where("id = ? AND org_id = ? AND deleted_at IS NULL", id, orgID).
		Update("deleted_at", time.Now()).Error
}

// NextCode 生成员工编号 EMP-NNNN
func (r *EmployeeRepository) NextCode(orgID string) (string, error) {
	var count int64
	if err := r.db.Model(&entity.Employee{}).
		Where("org_id = ?", orgID).
		Count(&count).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("EMP-%04d", count+1), nil
}

type EmployeeListParams struct {
	Status     string
	Department string
	Keyword    string
	Page       int
	Size       int
}

func (r *EmployeeRepository) List(orgID string, params EmployeeListParams) ([]entity.Employee, int64, error) {
	query := r.db.Model(&entity.Employee{}).Where("org_id = ? AND deleted_at IS NULL", orgID)
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.Department != "" {
		query = query.Where("department = ?", params.Department)
	}
	if params.Keyword != "" {
		kw := "%" + params.Keyword + "%"
		query = query.Where("name ILIKE ? OR code ILIKE ? OR position ILIKE ?", kw, kw, kw)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var employees []entity.Employee
	err := query.Order("created_at DESC").
		Offset((params.Page - 1) * params.Size).Limit(params.Size).
		Find(&employees).Error
	return employees, total, err
}
