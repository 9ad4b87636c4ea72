package entity

import "time"

// 车辆状态
const (
	TruckStatusInService   = "in_service"
	TruckStatusMaintenance = "maintenance"
	TruckStatusRetired     = "retired"
)

// Truck 车辆实体
type Truck struct {
	ID          string     `json:"id" gorm:"primaryKey;size:36"`
	OrgID       string     `json:"org_id" gorm:"size:36;not null;index"`
	PlateNo     string     `json:"plate_no" gorm:"size:20;not null;uniqueIndex"`
	Make        string     `json:"make" gorm:"size:50"`
	Model       string     `json:"model" gorm:"size:50"`
	Year        int        `json:"year"`
	CapacityKg  float64    `json:"capacity_kg" gorm:"type:decimal(10,2);default:0"`
	Mileage     float64    `json:"mileage" gorm:"type:decimal(12,1);default:0"`
	Status      string     `json:"status" gorm:"size:20;not null;default:in_service"`
	InsuranceNo string     `json:"insurance_no" gorm:"size:50"`
	Notes       string     `json:"notes" gorm:"type:text"`
	CreatedBy   string     `json:"created_by" gorm:"size:36"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at" gorm:"index"`
}

func (Truck) TableName() string {
	return "trucks"
}
