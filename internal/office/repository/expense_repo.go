package repository

import (
	"time"

	"github.com/codewithkin/wd-logistics/internal/office/entity"
	"gorm.io/gorm"
)

type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) Create(expense *entity.Expense) error {
	return r.db.Create(expense).Error
}

func (r *ExpenseRepository) GetByID(orgID, id string) (*entity.Expense, error) {
	var expense entity.Expense
	err := r.db.Where("id = ? AND org_id = ? AND deleted_at IS NULL", id, orgID).
		Preload("Trip").
		Preload("Truck").
		First(&expense).Error
	return &expense, err
}

func (r *ExpenseRepository) Update(expense *entity.Expense) error {
	return r.db.Save(expense).Error
}

func (r *ExpenseRepository) Delete(orgID, id string) error {
	return r.db.Model(&entity.Expense{}).
		Where("id = ? AND org_id = ? AND deleted_at IS NULL", id, orgID).
		Update("deleted_at", time.Now()).Error
}

type ExpenseListParams struct {
	Category string
	TripID   string
	TruckID  string
	From     *time.Time
	To       *time.Time
	Page     int
	Size     int
}

func (r *ExpenseRepository) List(orgID string, params ExpenseListParams) ([]entity.Expense, int64, error) {
	query := r.db.Model(&entity.Expense{}).Where("org_id = ? AND deleted_at IS NULL", orgID)
	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}
	if params.TripID != "" {
		query = query.Where("trip_id = ?", params.TripID)
	}
	if params.TruckID != "" {
		query = query.Where("truck_id = ?", params.TruckID)
	}
	if params.From != nil {
		query = query.Where("incurred_date >= ?", *params.From)
	}
	if params.To != nil {
		query = query.Where("incurred_date <= ?", *params.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var expenses []entity.Expense
	err := query.Order("incurred_date DESC").
		Offset((params.Page - 1) * params.Size).Limit(params.Size).
		Find(&expenses).Error
	return expenses, total, err
}
