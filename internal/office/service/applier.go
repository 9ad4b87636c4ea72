package service

import (
	"fmt"
	"time"

	"github.com/codewithkin/wd-logistics/internal/office/entity"
	"gorm.io/gorm"
)

// applier 描述一种实体类型的部分更新方式：目标模型 + 可更新字段白名单。
// 新增实体类型时在 appliers 表注册，而不是扩展分支语句。
type applier struct {
	model   func() interface{}
	columns map[string]string // JSON字段名 -> 数据库列名
}

// appliers 实体类型 -> 部分更新器注册表（封闭枚举）
var appliers = map[string]applier{
	entity.EditEntityTruck: {
		model: func() interface{} { return &entity.Truck{} },
		columns: map[string]string{
			"plate_no":     "plate_no",
			"make":         "make",
			"model":        "model",
			"year":         "year",
			"capacity_kg":  "capacity_kg",
			"mileage":      "mileage",
			"status":       "status",
			"insurance_no": "insurance_no",
			"notes":        "notes",
		},
	},
	entity.EditEntityDriver: {
		model: func() interface{} { return &entity.Driver{} },
		columns: map[string]string{
			"name":           "name",
			"phone":          "phone",
			"license_no":     "license_no",
			"license_class":  "license_class",
			"license_expiry": "license_expiry",
			"truck_id":       "truck_id",
			"status":         "status",
			"notes":          "notes",
		},
	},
	entity.EditEntityTrip: {
		model: func() interface{} { return &entity.Trip{} },
		columns: map[string]string{
			"truck_id":        "truck_id",
			"driver_id":       "driver_id",
			"customer_id":     "customer_id",
			"origin":          "origin",
			"destination":     "destination",
			"cargo_desc":      "cargo_desc",
			"cargo_weight_kg": "cargo_weight_kg",
			"distance_km":     "distance_km",
			"freight_charge":  "freight_charge",
			"status":          "status",
			"notes":           "notes",
		},
	},
	entity.EditEntityExpense: {
		model: func() interface{} { return &entity.Expense{} },
		columns: map[string]string{
			"trip_id":       "trip_id",
			"truck_id":      "truck_id",
			"category":      "category",
			"amount":        "amount",
			"incurred_date": "incurred_date",
			"description":   "description",
		},
	},
	entity.EditEntityCustomer: {
		model: func() interface{} { return &entity.Customer{} },
		columns: map[string]string{
			"name":          "name",
			"contact_name":  "contact_name",
			"phone":         "phone",
			"email":         "email",
			"address":       "address",
			"payment_terms": "payment_terms",
			"credit_limit":  "credit_limit",
			"status":        "status",
			"notes":         "notes",
		},
	},
	entity.EditEntityInvoice: {
		model: func() interface{} { return &entity.Invoice{} },
		columns: map[string]string{
			"amount":     "amount",
			"tax_rate":   "tax_rate",
			"tax_amount": "tax_amount",
			"total":      "total",
			"status":     "status",
			"due_date":   "due_date",
			"notes":      "notes",
		},
	},
	entity.EditEntityEmployee: {
		model: func() interface{} { return &entity.Employee{} },
		columns: map[string]string{
			"name":       "name",
			"position":   "position",
			"department": "department",
			"phone":      "phone",
			"email":      "email",
			"salary":     "salary",
			"hire_date":  "hire_date",
			"status":     "status",
			"notes":      "notes",
		},
	},
	entity.EditEntityInventory: {
		model: func() interface{} { return &entity.InventoryItem{} },
		columns: map[string]string{
			"name":          "name",
			"category":      "category",
			"quantity":      "quantity",
			"unit":          "unit",
			"reorder_level": "reorder_level",
			"unit_cost":     "unit_cost",
			"supplier_id":   "supplier_id",
			"location":      "location",
			"notes":         "notes",
		},
	},
}

// filterProposedFields 按白名单筛出 proposed_data 中可更新的列
func filterProposedFields(ap applier, proposed entity.JSONB) map[string]interface{} {
	updates := make(map[string]interface{})
	for field, value := range proposed {
		if col, ok := ap.columns[field]; ok {
			updates[col] = value
		}
	}
	return updates
}

// applyProposedChange 将 proposed_data 中出现的字段部分更新到目标实体。
// 未出现的字段保持不变；白名单外的字段被忽略。
func applyProposedChange(tx *gorm.DB, orgID, entityType, entityID string, proposed entity.JSONB) error {
	ap, ok := appliers[entityType]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEntityType, entityType)
	}

	updates := filterProposedFields(ap, proposed)
	if len(updates) == 0 {
		return ErrNoUpdatableFields
	}
	updates["updated_at"] = time.Now()

	result := tx.Model(ap.model()).
		Where("id = ? AND org_id = ? AND deleted_at IS NULL", entityID, orgID).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("apply %s change: %w", entityType, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s %s", ErrEntityNotFound, entityType, entityID)
	}
	return nil
}
