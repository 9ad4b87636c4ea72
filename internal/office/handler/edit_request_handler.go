package handler

import (
	"errors"
	"net/http"

	"github.com/codewithkin/wd-logistics/internal/office/repository"
	"github.com/codewithkin/wd-logistics/internal/office/service"
	"github.com/gin-gonic/gin"
)

// EditRequestHandler 修改申请审批接口
type EditRequestHandler struct {
	svc *service.EditRequestService
}

func NewEditRequestHandler(svc *service.EditRequestService) *EditRequestHandler {
	return &EditRequestHandler{svc: svc}
}

// Create 发起修改申请
func (h *EditRequestHandler) Create(c *gin.Context) {
	var req service.CreateEditRequestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": "参数校验失败: " + err.Error()})
		return
	}

	userID := c.GetString("user_id")
	orgID := c.GetString("org_id")
	editReq, err := h.svc.Create(c.Request.Context(), req, userID, orgID)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"code": 0, "message": "success", "data": editReq})
}

// Get 申请详情
func (h *EditRequestHandler) Get(c *gin.Context) {
	orgID := c.GetString("org_id")
	editReq, err := h.svc.Get(c.Request.Context(), orgID, c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": editReq})
}

// List 申请列表
func (h *EditRequestHandler) List(c *gin.Context) {
	page, size := pageParams(c)
	params := repository.EditRequestListParams{
		Status:      c.Query("status"),
		EntityType:  c.Query("entity_type"),
		RequestedBy: c.Query("requested_by"),
		Page:        page,
		Size:        size,
	}

	// mine=true 只看自己发起的
	if c.Query("mine") == "true" {
		params.RequestedBy = c.GetString("user_id")
	}

	orgID := c.GetString("org_id")
	requests, total, err := h.svc.List(c.Request.Context(), orgID, params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data": gin.H{
			"items": requests,
			"total": total,
			"page":  page,
			"size":  size,
		},
	})
}

// PendingCount 待审批数量
func (h *EditRequestHandler) PendingCount(c *gin.Context) {
	orgID := c.GetString("org_id")
	count, err := h.svc.CountPending(c.Request.Context(), orgID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": gin.H{"pending": count}})
}

// Approve 审批通过，将提议字段落到目标实体
func (h *EditRequestHandler) Approve(c *gin.Context) {
	reviewerID := c.GetString("user_id")
	orgID := c.GetString("org_id")

	editReq, err := h.svc.Approve(c.Request.Context(), c.Param("id"), reviewerID, orgID)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": editReq})
}

// RejectReq 驳回参数
type RejectReq struct {
	RejectionReason string `json:"rejection_reason"`
}

// Reject 审批驳回，目标实体不变
func (h *EditRequestHandler) Reject(c *gin.Context) {
	var req RejectReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": "参数校验失败: " + err.Error()})
			return
		}
	}

	reviewerID := c.GetString("user_id")
	orgID := c.GetString("org_id")

	editReq, err := h.svc.Reject(c.Request.Context(), c.Param("id"), reviewerID, orgID, req.RejectionReason)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": editReq})
}

// renderError 业务错误 -> HTTP状态码
func (h *EditRequestHandler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"code": 40401, "message": "修改申请不存在"})
	case errors.Is(err, service.ErrEntityNotFound):
		c.JSON(http.StatusNotFound, gin.H{"code": 40402, "message": "目标数据不存在: " + err.Error()})
	case errors.Is(err, service.ErrAlreadyReviewed):
		c.JSON(http.StatusConflict, gin.H{"code": 40901, "message": "该申请已被处理"})
	case errors.Is(err, service.ErrUnknownEntityType):
		c.JSON(http.StatusBadRequest, gin.H{"code": 10002, "message": "不支持的实体类型: " + err.Error()})
	case errors.Is(err, service.ErrNoUpdatableFields):
		c.JSON(http.StatusBadRequest, gin.H{"code": 10003, "message": "提议数据中没有可更新字段"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
	}
}
