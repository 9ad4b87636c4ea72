package repository

import (
	"fmt"
	"time"

	"github.com/codewithkin/wd-logistics/internal/office/entity"
	"gorm.io/gorm"
)

type SupplierRepository struct {
	db *gorm.DB
}

func NewSupplierRepository(db *gorm.DB) *SupplierRepository {
	return &SupplierRepository{db: db}
}

func (r *SupplierRepository) Create(supplier *entity.Supplier) error {
	return r.db.Create(supplier).Error
}

func (r *SupplierRepository) GetByID(orgID, id string) (*entity.Supplier, error) {
	var supplier entity.Supplier
	err := r.db.Where("id = ? AND org_id = ? AND deleted_at IS NULL", id, orgID).First(&supplier).Error
	return &supplier, err
}

func (r *SupplierRepository) Update(supplier *entity.Supplier) error {
	return r.db.Save(supplier).Error
}

func (r *SupplierRepository) Delete(orgID, id string) error {
	return r.db.Model(&entity.Supplier{}).
		Where("id = ? AND org_id = ? AND deleted_at IS NULL", id, orgID).
		Update("deleted_at", time.Now()).Error
}

// NextCode 生成供应商编号 SUP-NNNN
func (r *SupplierRepository) NextCode(orgID string) (string, error) {
	var count int64
	if err := r.db.Model(&entity.Supplier{}).
		Where("org_id = ?", orgID).
		Count(&count).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("SUP-%04d", count+1), nil
}

type SupplierListParams struct {
	Status  string
	Keyword string
	Page    int
	Size    int
}

func (r *SupplierRepository) List(orgID string, params SupplierListParams) ([]entity.Supplier, int64, error) {
	query := r.db.Model(&entity.Supplier{}).Where("org_id = ? AND deleted_at IS NULL", orgID)
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

	var suppliers []entity.Supplier
	err := query.Order("created_at DESC").
		Offset((params.Page - 1) * params.Size).Limit(params.Size).
		Find(&suppliers).Error
	return suppliers, total, err
}
