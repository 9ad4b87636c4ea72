package repository

import (
	"time"

	"github.com/codewithkin/wd-logistics/internal/office/entity"
	"gorm.io/gorm"
)

type TruckRepository struct {
	db *gorm.DB
}

func NewTruckRepository(db *gorm.DB) *TruckRepository {
	return &TruckRepository{db: db}
}

func (r *TruckRepository) Create(truck *entity.Truck) error {
	return r.db.Create(truck).Error
}

func (r *TruckRepository) GetByID(orgID, id string) (*entity.Truck, error) {
	var truck entity.Truck
	err := r.db.Where("id = ? AND org_id = ? AND deleted_at IS NULL", id, orgID).First(&truck).Error
	return &truck, err
}

func (r *TruckRepository) Update(truck *entity.Truck) error {
	return r.db.Save(truck).Error
}

// Delete 软删除
func (r *TruckRepository) Delete(orgID, id string) error {
	return r.db.Model(&entity.Truck{}).
		Where("id = ? AND org_id = ? AND deleted_at IS NULL", id, orgID).
		Update("deleted_at", time.Now()).Error
}

type TruckListParams struct {
	Status  string
	Keyword string
	Page    int
	Size    int
}

func (r *TruckRepository) List(orgID string, params TruckListParams) ([]entity.Truck, int64, error) {
	query := r.db.Model(&entity.Truck{}).Where("org_id = ? AND deleted_at IS NULL", orgID)
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.Keyword != "" {
		kw := "%" + params.Keyword + "%"
		query = query.Where("plate_no ILIKE ? OR make ILIKE ? OR model ILIKE ?", kw, kw, kw)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var trucks []entity.Truck
	err := query.Order("created_at DESC").
		Offset((params.Page - 1) * params.Size).Limit(params.Size).
		Find(&trucks).Error
	return trucks, total, err
}
