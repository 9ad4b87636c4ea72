package repository

import (
	"fmt"
	"time"

	"github.com/codewithkin/wd-logistics/internal/office/entity"
	"gorm.io/gorm"
)

type TripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) *TripRepository {
	return &TripRepository{db: db}
}

func (r *TripRepository) Create(trip *entity.Trip) error {
	return r.db.Create(trip).Error
}

func (r *TripRepository) GetByID(orgID, id string) (*entity.Trip, error) {
	var trip entity.Trip
	err := r.db.Where("id = ? AND org_id = ? AND deleted_at IS NULL", id, orgID).
		Preload("Truck").
		Preload("Driver").
		Preload("Customer").
		First(&trip).Error
	return &trip, err
}

func (r *TripRepository) Update(trip *entity.Trip) error {
	return r.db.Save(trip).Error
}

func (r *TripRepository) Delete(orgID, id string) error {
	return r.db.Model(&entity.Trip{}).
		Where("id = ? AND org_id = ? AND deleted_at IS NULL", id, orgID).
		Update("deleted_at", time.Now()).Error
}

// NextCode 生成行程编号 TRP-YYYY-NNNN
func (r *TripRepository) NextCode(orgID string) (string, error) {
	year := time.Now().Year()
	var count int64
	if err := r.db.Model(&entity.Trip{}).
		Where("org_id = ? AND code LIKE ?", orgID, fmt.Sprintf("TRP-%d-%%", year)).
		Count(&count).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("TRP-%d-%04d", year, count+1), nil
}

type TripListParams struct {
	Status     string
	TruckID    string
	DriverID   string
	CustomerID string
	Keyword    string
	Page       int
	Size       int
}

func (r *TripRepository) List(orgID string, params TripListParams) ([]entity.Trip, int64, error) {
	query := r.db.Model(&entity.Trip{}).Where("org_id = ? AND deleted_at IS NULL", orgID)
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.TruckID != "" {
		query = query.Where("truck_id = ?", params.TruckID)
	}
	if params.DriverID != "" {
		query = query.Where("driver_id = ?", params.DriverID)
	}
	if params.CustomerID != "" {
		query = query.Where("customer_id = ?", params.CustomerID)
	}
	if params.Keyword != "" {
		kw := "%" + params.Keyword + "%"
		query = query.Where("code ILIKE ? OR origin ILIKE ? OR destination ILIKE ?", kw, kw, kw)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var trips []entity.Trip
	err := query.Preload("Truck").Preload("Driver").Preload("Customer").
		Order("created_at DESC").
		Offset((params.Page - 1) * params.Size).Limit(params.Size).
		Find(&trips).Error
	return trips, total, err
}

// HasActiveTrip 车辆或司机是否有进行中的行程
func (r *TripRepository) HasActiveTrip(orgID, truckID, driverID string) (bool, error) {
	var count int64
	err := r.db.Model(&entity.Trip{}).
		Where("org_id = ? AND deleted_at IS NULL AND status IN ?",
			orgID, []string{entity.TripStatusScheduled, entity.TripStatusInTransit}).
		Where("truck_id = ? OR driver_id = ?", truckID, driverID).
		Count(&count).Error
	return count > 0, err
}
