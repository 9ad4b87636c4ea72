package repository

import (
	"time"

	"github.com/codewithkin/wd-logistics/internal/office/entity"
	"gorm.io/gorm"
)

type DriverRepository struct {
	db *gorm.DB
}

func NewDriverRepository(db *gorm.DB) *DriverRepository {
	return &DriverRepository{db: db}
}

func (r *DriverRepository) Create(driver *entity.Driver) error {
	return r.db.Create(driver).Error
}

func (r *DriverRepository) GetByID(orgID, id string) (*entity.Driver, error) {
	var driver entity.Driver
	err := r.db.Where("id = ? AND org_id = ? AND deleted_at IS NULL", id, orgID).
		Preload("Truck").
		First(&driver).Error
	return &driver, err
}

func (r *DriverRepository) Update(driver *entity.Driver) error {
	return r.db.Save(driver).Error
}

func (r *DriverRepository) Delete(orgID, id string) error {
	return r.db.Model(&entity.Driver{}).
		Where("id = ? AND org_id = ? AND deleted_at IS NULL", id, orgID).
		Update("deleted_at", time.Now()).Error
}

type DriverListParams struct {
	Status  string
	TruckID string
	Keyword string
	Page    int
	Size    int
}

func (r *DriverRepository) List(orgID string, params DriverListParams) ([]entity.Driver, int64, error) {
	query := r.db.Model(&entity.Driver{}).Where("org_id = ? AND deleted_at IS NULL", orgID)
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.TruckID != "" {
		query = query.Where("truck_id = ?", params.TruckID)
	}
	if params.Keyword != "" {
		kw := "%" + params.Keyword + "%"
		query = query.Where("name ILIKE ? OR license_no ILIKE ? OR phone ILIKE ?", kw, kw, kw)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var drivers []entity.Driver
	err := query.Preload("Truck").Order("created_at DESC").
		Offset((params.Page - 1) * params.Size).Limit(params.Size).
		Find(&drivers).Error
	return drivers, total, err
}
