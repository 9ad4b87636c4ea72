package entity

import "time"

// 员工状态
const (
	EmployeeStatusActive   = "active"
	EmployeeStatusOnLeave  = "on_leave"
	EmployeeStatusResigned = "resigned"
)

// Employee 员工实体
type Employee struct {
	ID         string     `json:"id" gorm:"primaryKey;size:36"`
	OrgID      string     `json:"org_id" gorm:"size:36;not null;index"`
	Code       string     `json:"code" gorm:"size:32;uniqueIndex;not null"` // EMP-0001
	Name       string     `json:"name" gorm:"size:100;not null"`
	Position   string     `json:"position" gorm:"size:100"`
	Department string     `json:"department" gorm:"size:100"`
	Phone      string     `json:"phone" gorm:"size:20"`
	Email      string     `json:"email" gorm:"size:100"`
	Salary     float64    `json:"salary" gorm:"type:decimal(12,2);default:0"`
	HireDate   *time.Time `json:"hire_date"`
	Status     string     `json:"status" gorm:"size:20;not null;default:active"`
	Notes      string     `json:"notes" gorm:"type:text"`
	CreatedBy  string     `json:"created_by" gorm:"size:36"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	DeletedAt  *time.Time `json:"deleted_at" gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}
