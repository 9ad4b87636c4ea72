package entity

import "time"

// 司机状态
const (
	DriverStatusAvailable = "available"
	DriverStatusOnTrip    = "on_trip"
	DriverStatusOnLeave   = "on_leave"
	DriverStatusInactive  = "inactive"
)

// Driver 司机实体
type Driver struct {
	ID            string     `json:"id" gorm:"primaryKey;size:36"`
	OrgID         string     `json:"org_id" gorm:"size:36;not null;index"`
	Name          string     `json:"name" gorm:"size:100;not null"`
	Phone         string     `json:"phone" gorm:"size:20"`
	LicenseNo     string     `json:"license_no" gorm:"size:50;not null;uniqueIndex"`
	LicenseClass  string     `json:"license_class" gorm:"size:10"`
	LicenseExpiry *time.Time `json:"license_expiry"`
	TruckID       *string    `json:"truck_id" gorm:"size:36;index"` // 当前分配车辆
	Status        string     `json:"status" gorm:"size:20;not null;default:available"`
	Notes         string     `json:"notes" gorm:"type:text"`
	CreatedBy     string     `json:"created_by" gorm:"size:36"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	DeletedAt     *time.Time `json:"deleted_at" gorm:"index"`

	// 关联
	Truck *Truck `json:"truck,omitempty" gorm:"foreignKey:TruckID"`
}

func (Driver) TableName() string {
	return "drivers"
}
