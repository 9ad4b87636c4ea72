package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/codewithkin/wd-logistics/internal/office/entity"
	"github.com/codewithkin/wd-logistics/internal/office/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EditRequestService 修改申请审批服务
type EditRequestService struct {
	db     *gorm.DB
	repo   *repository.EditRequestRepository
	notify *NotifyService
	logger *zap.Logger
}

// NewEditRequestService 创建修改申请服务
func NewEditRequestService(db *gorm.DB, repo *repository.EditRequestRepository, notify *NotifyService, logger *zap.Logger) *EditRequestService {
	return &EditRequestService{db: db, repo: repo, notify: notify, logger: logger}
}

// CreateEditRequestReq 创建修改申请参数
type CreateEditRequestReq struct {
	EntityType   string       `json:"entity_type" binding:"required"`
	EntityID     string       `json:"entity_id" binding:"required"`
	Reason       string       `json:"reason"`
	OriginalData entity.JSONB `json:"original_data"`
	ProposedData entity.JSONB `json:"proposed_data" binding:"required"`
}

// Create 创建修改申请，异步通知组织内审批人
func (s *EditRequestService) Create(ctx context.Context, req CreateEditRequestReq, requestedBy, orgID string) (*entity.EditRequest, error) {
	if !entity.IsValidEditEntityType(req.EntityType) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEntityType, req.EntityType)
	}

	editReq := &entity.EditRequest{
		ID:           uuid.New().String(),
		OrgID:        orgID,
		EntityType:   req.EntityType,
		EntityID:     req.EntityID,
		Reason:       req.Reason,
		OriginalData: req.OriginalData,
		ProposedData: req.ProposedData,
		Status:       entity.EditRequestStatusPending,
		RequestedBy:  requestedBy,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.repo.Create(editReq); err != nil {
		return nil, fmt.Errorf("create edit request: %w", err)
	}

	// 异步通知审批人，失败只记日志
	if s.notify != nil {
		go s.notify.EditRequestSubmitted(context.Background(), editReq)
	}

	return s.repo.GetByID(orgID, editReq.ID)
}

// Approve 审批通过：先将提议字段落到目标实体，再以 pending 为前置条件翻转
// 申请状态。两步在同一事务内，任何一步失败整体回滚，申请保持 pending。
func (s *EditRequestService) Approve(ctx context.Context, id, reviewerID, orgID string) (*entity.EditRequest, error) {
	var approved *entity.EditRequest

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var req entity.EditRequest
		if err := tx.Where("id = ? AND org_id = ?", id, orgID).First(&req).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("load edit request: %w", err)
		}
		if req.Status != entity.EditRequestStatusPending {
			return ErrAlreadyReviewed
		}

		// 将提议的修改应用到目标实体（部分更新）
		if err := applyProposedChange(tx, orgID, req.EntityType, req.EntityID, req.ProposedData); err != nil {
			return err
		}

		// 条件更新：只有仍处于 pending 的行才会被翻转。并发审批时
		// 后提交者受影响行数为0，整个事务连同上面的实体写入一起回滚。
		now := time.Now()
		rows, err := s.repo.TransitionFromPending(tx, id, map[string]interface{}{
			"status":      entity.EditRequestStatusApproved,
			"approved_by": reviewerID,
			"approved_at": now,
			"updated_at":  now,
		})
		if err != nil {
			return fmt.Errorf("update edit request status: %w", err)
		}
		if rows == 0 {
			return ErrAlreadyReviewed
		}

		req.Status = entity.EditRequestStatusApproved
		req.ApprovedBy = &reviewerID
		req.ApprovedAt = &now
		approved = &req
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.notify != nil {
		go s.notify.EditRequestReviewed(context.Background(), approved, reviewerID)
	}

	return s.repo.GetByID(orgID, id)
}

// Reject 审批驳回：记录驳回原因，目标实体不做任何修改
func (s *EditRequestService) Reject(ctx context.Context, id, reviewerID, orgID, rejectionReason string) (*entity.EditRequest, error) {
	var rejected *entity.EditRequest

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var req entity.EditRequest
		if err := tx.Where("id = ? AND org_id = ?", id, orgID).First(&req).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("load edit request: %w", err)
		}
		if req.Status != entity.EditRequestStatusPending {
			return ErrAlreadyReviewed
		}

		now := time.Now()
		rows, err := s.repo.TransitionFromPending(tx, id, map[string]interface{}{
			"status":           entity.EditRequestStatusRejected,
			"approved_by":      reviewerID,
			"approved_at":      now,
			"rejection_reason": rejectionReason,
			"updated_at":       now,
		})
		if err != nil {
			return fmt.Errorf("update edit request status: %w", err)
		}
		if rows == 0 {
			return ErrAlreadyReviewed
		}

		req.Status = entity.EditRequestStatusRejected
		req.ApprovedBy = &reviewerID
		req.ApprovedAt = &now
		req.RejectionReason = rejectionReason
		rejected = &req
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.notify != nil {
		go s.notify.EditRequestReviewed(context.Background(), rejected, reviewerID)
	}

	return s.repo.GetByID(orgID, id)
}

// Get 获取申请详情
func (s *EditRequestService) Get(ctx context.Context, orgID, id string) (*entity.EditRequest, error) {
	req, err := s.repo.GetByID(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return req, nil
}

// List 获取申请列表（可按状态/类型/发起人筛选）
func (s *EditRequestService) List(ctx context.Context, orgID string, params repository.EditRequestListParams) ([]entity.EditRequest, int64, error) {
	return s.repo.List(orgID, params)
}

// CountPending 待审批数量
func (s *EditRequestService) CountPending(ctx context.Context, orgID string) (int64, error) {
	return s.repo.CountPending(orgID)
}
