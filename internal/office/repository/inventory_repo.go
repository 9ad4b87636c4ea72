package repository

import (
	"time"

	"github.com/codewithkin/wd-logistics/internal/office/entity"
	"gorm.io/gorm"
)

type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func (r *InventoryRepository) Create(item *entity.InventoryItem) error {
	return r.db.Create(item).Error
}

func (r *InventoryRepository) GetByID(orgID, id string) (*entity.InventoryItem, error) {
	var item entity.InventoryItem
	err := r.db.Where("id = ? AND org_id = ? AND deleted_at IS NULL", id, orgID).
		Preload("Supplier").
		First(&item).Error
	return &item, err
}

func (r *InventoryRepository) Update(item *entity.InventoryItem) error {
	return r.db.Save(item).Error
}

func (r *InventoryRepository) Delete(orgID, id string) error {
	return r.db.Model(&entity.InventoryItem{}).
		Where("id = ? AND org_id = ? AND deleted_at IS NULL", id, orgID).
		Update("deleted_at", time.Now()).Error
}

// AdjustQuantity 按增量调整库存数量，不允许减到负数
func (r *InventoryRepository) AdjustQuantity(orgID, id string, delta float64) (int64, error) {
	result := r.db.Model(&entity.InventoryItem{}).
		Where("id = ? AND org_id = ? AND deleted_at IS NULL AND quantity + ? >= 0", id, orgID, delta).
		Updates(map[string]interface{}{
			"quantity":   gorm.Expr("quantity + ?", delta),
			"updated_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}

type InventoryListParams struct {
	Category   string
	SupplierID string
	Keyword    string
	LowStock   bool
	Page       int
	Size       int
}

func (r *InventoryRepository) List(orgID string, params InventoryListParams) ([]entity.InventoryItem, int64, error) {
	query := r.db.Model(&entity.InventoryItem{}).Where("org_id = ? AND deleted_at IS NULL", orgID)
	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}
	if params.SupplierID != "" {
		query = query.Where("supplier_id = ?", params.SupplierID)
	}
	if params.Keyword != "" {
		kw := "%" + params.Keyword + "%"
		query = query.Where("sku ILIKE ? OR name ILIKE ?", kw, kw)
	}
	if params.LowStock {
		query = query.Where("quantity < reorder_level AND reorder_level > 0")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []entity.InventoryItem
	err := query.Preload("Supplier").Order("created_at DESC").
		Offset((params.Page - 1) * params.Size).Limit(params.Size).
		Find(&items).Error
	return items, total, err
}
