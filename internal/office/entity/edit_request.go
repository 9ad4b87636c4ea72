package entity

import "time"

// 修改申请状态
const (
	EditRequestStatusPending  = "pending"
	EditRequestStatusApproved = "approved"
	EditRequestStatusRejected = "rejected"
)

// 可发起修改申请的实体类型（封闭枚举）
const (
	EditEntityTruck     = "truck"
	EditEntityDriver    = "driver"
	EditEntityTrip      = "trip"
	EditEntityExpense   = "expense"
	EditEntityCustomer  = "customer"
	EditEntityInvoice   = "invoice"
	EditEntityEmployee  = "employee"
	EditEntityInventory = "inventory"
)

// EditRequest 修改申请单：普通员工对业务数据的修改需经管理员/主管审批后生效
type EditRequest struct {
	ID              string     `json:"id" gorm:"primaryKey;size:36"`
	OrgID           string     `json:"org_id" gorm:"size:36;not null;index"`
	EntityType      string     `json:"entity_type" gorm:"size:20;not null;index"`
	EntityID        string     `json:"entity_id" gorm:"size:36;not null;index"`
	Reason          string     `json:"reason" gorm:"type:text"`
	OriginalData    JSONB      `json:"original_data" gorm:"type:jsonb"`
	ProposedData    JSONB      `json:"proposed_data" gorm:"type:jsonb"`
	Status          string     `json:"status" gorm:"size:20;not null;default:pending;index"`
	RequestedBy     string     `json:"requested_by" gorm:"size:36;not null;index"`
	ApprovedBy      *string    `json:"approved_by" gorm:"size:36"`
	ApprovedAt      *time.Time `json:"approved_at"`
	RejectionReason string     `json:"rejection_reason" gorm:"type:text"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	// 关联
	Requester *User `json:"requester,omitempty" gorm:"foreignKey:RequestedBy"`
	Approver  *User `json:"approver,omitempty" gorm:"foreignKey:ApprovedBy"`
}

func (EditRequest) TableName() string {
	return "edit_requests"
}

// IsValidEditEntityType 校验实体类型是否在枚举内
func IsValidEditEntityType(t string) bool {
	switch t {
	case EditEntityTruck, EditEntityDriver, EditEntityTrip, EditEntityExpense,
		EditEntityCustomer, EditEntityInvoice, EditEntityEmployee, EditEntityInventory:
		return true
	}
	return false
}
