package entity

import "time"

// 费用类别
const (
	ExpenseCategoryFuel   = "fuel"
	ExpenseCategoryToll   = "toll"
	ExpenseCategoryRepair = "repair"
	ExpenseCategoryWage   = "wage"
	ExpenseCategoryOther  = "other"
)

// Expense 费用实体
type Expense struct {
	ID           string     `json:"id" gorm:"primaryKey;size:36"`
	OrgID        string     `json:"org_id" gorm:"size:36;not null;index"`
	TripID       *string    `json:"trip_id" gorm:"size:36;index"`
	TruckID      *string    `json:"truck_id" gorm:"size:36;index"`
	Category     string     `json:"category" gorm:"size:20;not null;default:other"`
	Amount       float64    `json:"amount" gorm:"type:decimal(12,2);not null"`
	IncurredDate time.Time  `json:"incurred_date"`
	ReceiptKey   string     `json:"receipt_key" gorm:"size:500"` // MinIO 对象key
	Description  string     `json:"description" gorm:"size:500"`
	CreatedBy    string     `json:"created_by" gorm:"size:36"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at" gorm:"index"`

	// 关联
	Trip  *Trip  `json:"trip,omitempty" gorm:"foreignKey:TripID"`
	Truck *Truck `json:"truck,omitempty" gorm:"foreignKey:TruckID"`
}

func (Expense) TableName() string {
	return "expenses"
}
