package repository

import (
	"fmt"
	"time"

	"github.com/codewithkin/wd-logistics/internal/office/entity"
	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(customer *entity.Customer) error {
	return r.db.Create(customer).Error
}

func (r *CustomerRepository) GetByID(orgID, id string) (*entity.Customer, error) {
	var customer entity.Customer
	err := r.db.Where("id = ? AND org_id = ? AND deleted_at IS NULL", id, orgID).First(&customer).Error
	return &customer, err
}

func (r *CustomerRepository) Update(customer *entity.Customer) error {
	return r.db.Save(customer).Error
}

func (r *CustomerRepository) Delete(orgID, id string) error {
	return r.db.Model(&entity.Customer{}).
		Where("id = ? AND org_id = ? AND deleted_at IS NULL", id, orgID).
		Update("deleted_at", time.Now()).Error
}

// NextCode 生成客户编号 CUS-NNNN
func (r *CustomerRepository) NextCode(orgID string) (string, error) {
	var count int64
	if err := r.db.Model(&entity.Customer{}).
		Where("org_id = ?", orgID).
		Count(&count).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("CUS-%04d", count+1), nil
}

type CustomerListParams struct {
	Status  string
	Keyword string
	Page    int
	Size    int
}

func (r *CustomerRepository) List(orgID string, params CustomerListParams) ([]entity.Customer, int64, error) {
	query := r.db.Model(&entity.Customer{}).Where("org_id = ? AND deleted_at IS NULL", orgID)
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.Keyword != "" {
		kw := "%" + params.Keyword + "%"
		query = query.Where("name ILIKE ? OR code ILIKE ? OR contact_name ILIKE ?", kw, kw, kw)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var customers []entity.Customer
	err := query.Order("created_at DESC").
		Offset((params.Page - 1) * params.Size).Limit(params.Size).
		Find(&customers).Error
	return customers, total, err
}
