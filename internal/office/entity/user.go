package entity

import "time"

// 用户角色
const (
	RoleAdmin      = "admin"
	RoleSupervisor = "supervisor"
	RoleStaff      = "staff"
)

// 用户状态
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// Organization 组织（租户）
type Organization struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Name      string    `json:"name" gorm:"size:200;not null"`
	Phone     string    `json:"phone" gorm:"size:20"`
	Email     string    `json:"email" gorm:"size:100"`
	Address   string    `json:"address" gorm:"size:500"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Organization) TableName() string {
	return "organizations"
}

// User 系统用户
type User struct {
	ID           string    `json:"id" gorm:"primaryKey;size:36"`
	OrgID        string    `json:"org_id" gorm:"size:36;not null;index"`
	Name         string    `json:"name" gorm:"size:100;not null"`
	Email        string    `json:"email" gorm:"size:100;not null;uniqueIndex"`
	Phone        string    `json:"phone" gorm:"size:20"` // WhatsApp 通知号码
	Role         string    `json:"role" gorm:"size:20;not null;default:staff"`
	PasswordHash string    `json:"-" gorm:"size:100;not null"`
	Status       string    `json:"status" gorm:"size:20;not null;default:active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// IsReviewer 是否具备审批权限
func (u *User) IsReviewer() bool {
	return u.Role == RoleAdmin || u.Role == RoleSupervisor
}
