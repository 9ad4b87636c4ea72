package entity

import "time"

// 发票状态
const (
	InvoiceStatusDraft  = "draft"
	InvoiceStatusIssued = "issued"
	InvoiceStatusPaid   = "paid"
	InvoiceStatusVoid   = "void"
)

// Invoice 发票实体
type Invoice struct {
	ID         string     `json:"id" gorm:"primaryKey;size:36"`
	OrgID      string     `json:"org_id" gorm:"size:36;not null;index"`
	InvoiceNo  string     `json:"invoice_no" gorm:"size:32;uniqueIndex;not null"` // INV-2026-0001
	CustomerID string     `json:"customer_id" gorm:"size:36;not null;index"`
	TripID     *string    `json:"trip_id" gorm:"size:36;index"`
	Amount     float64    `json:"amount" gorm:"type:decimal(12,2);not null"`
	TaxRate    float64    `json:"tax_rate" gorm:"type:decimal(5,2);default:0"`
	TaxAmount  float64    `json:"tax_amount" gorm:"type:decimal(12,2);default:0"`
	Total      float64    `json:"total" gorm:"type:decimal(12,2);not null"`
	Status     string     `json:"status" gorm:"size:20;not null;default:draft"`
	IssuedAt   *time.Time `json:"issued_at"`
	DueDate    *time.Time `json:"due_date"`
	PaidAt     *time.Time `json:"paid_at"`
	Notes      string     `json:"notes" gorm:"type:text"`
	CreatedBy  string     `json:"created_by" gorm:"size:36"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	DeletedAt  *time.Time `json:"deleted_at" gorm:"index"`

	// 关联
	Customer *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Trip     *Trip     `json:"trip,omitempty" gorm:"foreignKey:TripID"`
}

func (Invoice) TableName() string {
	return "invoices"
}
