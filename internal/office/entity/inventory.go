package entity

import "time"

// InventoryItem 库存物料（备件、耗材）
type InventoryItem struct {
	ID           string     `json:"id" gorm:"primaryKey;size:36"`
	OrgID        string     `json:"org_id" gorm:"size:36;not null;index"`
	SKU          string     `json:"sku" gorm:"size:50;uniqueIndex;not null"`
	Name         string     `json:"name" gorm:"size:200;not null"`
	Category     string     `json:"category" gorm:"size:50"`
	Quantity     float64    `json:"quantity" gorm:"type:decimal(12,2);default:0"`
	Unit         string     `json:"unit" gorm:"size:20;default:pcs"`
	ReorderLevel float64    `json:"reorder_level" gorm:"type:decimal(12,2);default:0"`
	UnitCost     float64    `json:"unit_cost" gorm:"type:decimal(12,2);default:0"`
	SupplierID   *string    `json:"supplier_id" gorm:"size:36;index"`
	Location     string     `json:"location" gorm:"size:100"`
	Notes        string     `json:"notes" gorm:"type:text"`
	CreatedBy    string     `json:"created_by" gorm:"size:36"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at" gorm:"index"`

	// 关联
	Supplier *Supplier `json:"supplier,omitempty" gorm:"foreignKey:SupplierID"`
}

func (InventoryItem) TableName() string {
	return "inventory_items"
}
