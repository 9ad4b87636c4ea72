package handler

import (
	"errors"
	"net/http"

	"github.com/codewithkin/wd-logistics/internal/office/repository"
	"github.com/codewithkin/wd-logistics/internal/office/service"
	"github.com/gin-gonic/gin"
)

// DriverHandler 司机接口
type DriverHandler struct {
	svc *service.DriverService
}

func NewDriverHandler(svc *service.DriverService) *DriverHandler {
	return &DriverHandler{svc: svc}
}

func (h *DriverHandler) Create(c *gin.Context) {
	var req service.CreateDriverReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": "参数校验失败: " + err.Error()})
		return
	}

	driver, err := h.svc.Create(c.Request.Context(), req, c.GetString("user_id"), c.GetString("org_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"code": 0, "message": "success", "data": driver})
}

func (h *DriverHandler) Get(c *gin.Context) {
	driver, err := h.svc.Get(c.Request.Context(), c.GetString("org_id"), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 40405, "message": "司机不存在"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": driver})
}

func (h *DriverHandler) Update(c *gin.Context) {
	var req service.UpdateDriverReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": "参数校验失败: " + err.Error()})
		return
	}

	driver, err := h.svc.Update(c.Request.Context(), c.GetString("org_id"), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": 40405, "message": "司机不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": driver})
}

// AssignTruckReq 分配车辆参数
type AssignTruckReq struct {
	TruckID string `json:"truck_id"`
}

func (h *DriverHandler) AssignTruck(c *gin.Context) {
	var req AssignTruckReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": "参数校验失败: " + err.Error()})
		return
	}

	driver, err := h.svc.AssignTruck(c.Request.Context(), c.GetString("org_id"), c.Param("id"), req.TruckID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": 40405, "message": "司机不存在"})
			return
		}
		if errors.Is(err, service.ErrEntityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": 40402, "message": "目标数据不存在: " + err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": driver})
}

func (h *DriverHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.GetString("org_id"), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success"})
}

func (h *DriverHandler) List(c *gin.Context) {
	page, size := pageParams(c)
	params := repository.DriverListParams{
		Status:  c.Query("status"),
		TruckID: c.Query("truck_id"),
		Keyword: c.Query("keyword"),
		Page:    page,
		Size:    size,
	}

	drivers, total, err := h.svc.List(c.Request.Context(), c.GetString("org_id"), params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data": gin.H{
			"items": drivers,
			"total": total,
			"page":  page,
			"size":  size,
		},
	})
}
