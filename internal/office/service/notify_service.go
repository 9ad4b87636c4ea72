package service

import (
	"context"
	"fmt"

	"github.com/codewithkin/wd-logistics/internal/office/entity"
	"github.com/codewithkin/wd-logistics/internal/office/repository"
	"github.com/codewithkin/wd-logistics/internal/shared/whatsapp"
	"go.uber.org/zap"
)

// NotifyService 审批事件通知服务（WhatsApp）。
// 所有发送都是尽力而为：失败只记日志，绝不影响业务操作结果。
type NotifyService struct {
	userRepo *repository.UserRepository
	client   *whatsapp.Client // 未配置时为 nil，通知整体降级为空操作
	logger   *zap.Logger
}

// NewNotifyService 创建通知服务
func NewNotifyService(userRepo *repository.UserRepository, client *whatsapp.Client, logger *zap.Logger) *NotifyService {
	return &NotifyService{userRepo: userRepo, client: client, logger: logger}
}

// EditRequestSubmitted 新申请创建后通知组织内审批人
func (s *NotifyService) EditRequestSubmitted(ctx context.Context, req *entity.EditRequest) {
	if s.client == nil {
		return
	}

	requesterName := s.userName(req.RequestedBy)
	text := fmt.Sprintf("[WD Logistics] 新的修改申请待审批\n对象: %s %s\n发起人: %s\n理由: %s",
		req.EntityType, req.EntityID, requesterName, req.Reason)

	s.fanOutToReviewers(ctx, req.OrgID, req.RequestedBy, text)
}

// EditRequestReviewed 审批完成后通知发起人和其他审批人
func (s *NotifyService) EditRequestReviewed(ctx context.Context, req *entity.EditRequest, reviewerID string) {
	if s.client == nil {
		return
	}

	reviewerName := s.userName(reviewerID)
	resultText := "已通过"
	if req.Status == entity.EditRequestStatusRejected {
		resultText = "已驳回"
		if req.RejectionReason != "" {
			resultText += "（" + req.RejectionReason + "）"
		}
	}
	text := fmt.Sprintf("[WD Logistics] 修改申请%s\n对象: %s %s\n审批人: %s",
		resultText, req.EntityType, req.EntityID, reviewerName)

	// 通知发起人
	if requester, err := s.userRepo.GetByID(req.RequestedBy); err == nil && requester.Phone != "" {
		s.send(ctx, requester.Phone, requester.Name, text)
	}

	// 通知其他审批人
	s.fanOutToReviewers(ctx, req.OrgID, reviewerID, text)
}

// fanOutToReviewers 向组织内除 exclude 外的审批人逐个发送
func (s *NotifyService) fanOutToReviewers(ctx context.Context, orgID, excludeUserID, text string) {
	reviewers, err := s.userRepo.ListReviewers(orgID)
	if err != nil {
		s.logger.Warn("notify: list reviewers failed", zap.String("org_id", orgID), zap.Error(err))
		return
	}

	for _, reviewer := range reviewers {
		if reviewer.ID == excludeUserID {
			continue
		}
		if reviewer.Phone == "" {
			s.logger.Debug("notify: reviewer has no phone, skipped", zap.String("user_id", reviewer.ID))
			continue
		}
		s.send(ctx, reviewer.Phone, reviewer.Name, text)
	}
}

func (s *NotifyService) send(ctx context.Context, phone, name, text string) {
	if err := s.client.SendText(ctx, phone, text); err != nil {
		s.logger.Warn("notify: send whatsapp message failed",
			zap.String("recipient", name), zap.Error(err))
		return
	}
	s.logger.Info("notify: whatsapp message sent", zap.String("recipient", name))
}

func (s *NotifyService) userName(userID string) string {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return "未知用户"
	}
	return user.Name
}
