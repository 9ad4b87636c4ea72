package handler

import (
	"errors"
	"net/http"

	"github.com/codewithkin/wd-logistics/internal/office/repository"
	"github.com/codewithkin/wd-logistics/internal/office/service"
	"github.com/gin-gonic/gin"
)

// TripHandler 行程接口
type TripHandler struct {
	svc *service.TripService
}

func NewTripHandler(svc *service.TripService) *TripHandler {
	return &TripHandler{svc: svc}
}

func (h *TripHandler) Create(c *gin.Context) {
	var req service.CreateTripReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": "参数校验失败: " + err.Error()})
		return
	}

	trip, err := h.svc.Create(c.Request.Context(), req, c.GetString("user_id"), c.GetString("org_id"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"code": 0, "message": "success", "data": trip})
}

func (h *TripHandler) Get(c *gin.Context) {
	trip, err := h.svc.Get(c.Request.Context(), c.GetString("org_id"), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 40406, "message": "行程不存在"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": trip})
}

// Dispatch 发车
func (h *TripHandler) Dispatch(c *gin.Context) {
	trip, err := h.svc.Dispatch(c.Request.Context(), c.GetString("org_id"), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": trip})
}

// Complete 送达
func (h *TripHandler) Complete(c *gin.Context) {
	trip, err := h.svc.Complete(c.Request.Context(), c.GetString("org_id"), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": trip})
}

// Cancel 取消
func (h *TripHandler) Cancel(c *gin.Context) {
	trip, err := h.svc.Cancel(c.Request.Context(), c.GetString("org_id"), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": trip})
}

func (h *TripHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.GetString("org_id"), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success"})
}

func (h *TripHandler) List(c *gin.Context) {
	page, size := pageParams(c)
	params := repository.TripListParams{
		Status:     c.Query("status"),
		TruckID:    c.Query("truck_id"),
		DriverID:   c.Query("driver_id"),
		CustomerID: c.Query("customer_id"),
		Keyword:    c.Query("keyword"),
		Page:       page,
		Size:       size,
	}

	trips, total, err := h.svc.List(c.Request.Context(), c.GetString("org_id"), params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data": gin.H{
			"items": trips,
			"total": total,
			"page":  page,
			"size":  size,
		},
	})
}

func (h *TripHandler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"code": 40406, "message": "行程不存在"})
	case errors.Is(err, service.ErrEntityNotFound):
		c.JSON(http.StatusNotFound, gin.H{"code": 40402, "message": "目标数据不存在: " + err.Error()})
	case errors.Is(err, service.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"code": 40902, "message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
	}
}
