package repository

import (
	"github.com/codewithkin/wd-logistics/internal/office/entity"
	"gorm.io/gorm"
)

type EditRequestRepository struct {
	db *gorm.DB
}

func NewEditRequestRepository(db *gorm.DB) *EditRequestRepository {
	return &EditRequestRepository{db: db}
}

func (r *EditRequestRepository) Create(req *entity.EditRequest) error {
	return r.db.Create(req).Error
}

func (r *EditRequestRepository) GetByID(orgID, id string) (*entity.EditRequest, error) {
	var req entity.EditRequest
	err := r.db.Where("id = ? AND org_id = ?", id, orgID).
		Preload("Requester").
		Preload("Approver").
		First(&req).Error
	return &req, err
}

type EditRequestListParams struct {
	Status      string
	EntityType  string
	RequestedBy string
	Page        int
	Size        int
}

func (r *EditRequestRepository) List(orgID string, params EditRequestListParams) ([]entity.EditRequest, int64, error) {
	query := r.db.Model(&entity.EditRequest{}).Where("org_id = ?", orgID)
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.EntityType != "" {
		query = query.Where("entity_type = ?", params.EntityType)
	}
	if params.RequestedBy != "" {
		query = query.Where("requested_by = ?", params.RequestedBy)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var requests []entity.EditRequest
	err := query.Preload("Requester").Preload("Approver").
		Order("created_at DESC").
		Offset((params.Page - 1) * params.Size).Limit(params.Size).
		Find(&requests).Error
	return requests, total, err
}

// TransitionFromPending 以 pending 为前置条件的条件更新（compare-and-set）。
// 返回受影响行数：0 表示申请已被其他审批人处理。
func (r *EditRequestRepository) TransitionFromPending(tx *gorm.DB, id string, updates map[string]interface{}) (int64, error) {
	result := tx.Model(&entity.EditRequest{}).
		Where("id = ? AND status = ?", id, entity.EditRequestStatusPending).
		Updates(updates)
	return result.RowsAffected, result.Error
}

// CountPending 组织内待审批数量（工作台角标用）
func (r *EditRequestRepository) CountPending(orgID string) (int64, error) {
	var count int64
	err := r.db.Model(&entity.EditRequest{}).
		Where("org_id = ? AND status = ?", orgID, entity.EditRequestStatusPending).
		Count(&count).Error
	return count, err
}
