package entity

import "time"

// 行程状态
const (
	TripStatusScheduled = "scheduled"
	TripStatusInTransit = "in_transit"
	TripStatusDelivered = "delivered"
	TripStatusCancelled = "cancelled"
)

// Trip 行程实体
type Trip struct {
	ID            string     `json:"id" gorm:"primaryKey;size:36"`
	OrgID         string     `json:"org_id" gorm:"size:36;not null;index"`
	Code          string     `json:"code" gorm:"size:32;uniqueIndex;not null"` // TRP-2026-0001
	TruckID       string     `json:"truck_id" gorm:"size:36;not null;index"`
	DriverID      string     `json:"driver_id" gorm:"size:36;not null;index"`
	CustomerID    *string    `json:"customer_id" gorm:"size:36;index"`
	Origin        string     `json:"origin" gorm:"size:200;not null"`
	Destination   string     `json:"destination" gorm:"size:200;not null"`
	CargoDesc     string     `json:"cargo_desc" gorm:"size:500"`
	CargoWeightKg float64    `json:"cargo_weight_kg" gorm:"type:decimal(10,2);default:0"`
	DistanceKm    float64    `json:"distance_km" gorm:"type:decimal(10,1);default:0"`
	FreightCharge float64    `json:"freight_charge" gorm:"type:decimal(12,2);default:0"`
	Status        string     `json:"status" gorm:"size:20;not null;default:scheduled"`
	ScheduledAt   *time.Time `json:"scheduled_at"`
	DepartedAt    *time.Time `json:"departed_at"`
	ArrivedAt     *time.Time `json:"arrived_at"`
	Notes         string     `json:"notes" gorm:"type:text"`
	CreatedBy     string     `json:"created_by" gorm:"size:36"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	DeletedAt     *time.Time `json:"deleted_at" gorm:"index"`

	// 关联
	Truck    *Truck    `json:"truck,omitempty" gorm:"foreignKey:TruckID"`
	Driver   *Driver   `json:"driver,omitempty" gorm:"foreignKey:DriverID"`
	Customer *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
}

func (Trip) TableName() string {
	return "trips"
}
