package entity

import "time"

// 供应商状态
const (
	SupplierStatusActive   = "active"
	SupplierStatusInactive = "inactive"
)

// Supplier 供应商实体
type Supplier struct {
	ID          string     `json:"id" gorm:"primaryKey;size:36"`
	OrgID       string     `json:"org_id" gorm:"size:36;not null;index"`
	Code        string     `json:"code" gorm:"size:32;uniqueIndex;not null"` // SUP-0001
	Name        string     `json:"name" gorm:"size:200;not null"`
	ContactName string     `json:"contact_name" gorm:"size:100"`
	Phone       string     `json:"phone" gorm:"size:20"`
	Email       string     `json:"email" gorm:"size:100"`
	Address     string     `json:"address" gorm:"size:500"`
	Status      string     `json:"status" gorm:"size:20;not null;default:active"`
	Notes       string     `json:"notes" gorm:"type:text"`
	CreatedBy   string     `json:"created_by" gorm:"size:36"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at" gorm:"index"`
}

func (Supplier) TableName() string {
	return "suppliers"
}
