package handler

import (
	"errors"
	"net/http"

	"github.com/codewithkin/wd-logistics/internal/office/repository"
	"github.com/codewithkin/wd-logistics/internal/office/service"
	"github.com/gin-gonic/gin"
)

// EmployeeHandler 员工接口
type EmployeeHandler struct {
	svc *service.EmployeeService
}

func NewEmployeeHandler(svc *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{svc: svc}
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var req service.CreateEmployeeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": "参数校验失败: " + err.Error()})
		return
	}

	employee, err := h.svc.Create(c.Request.Context(), req, c.GetString("user_id"), c.GetString("org_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"code": 0, "message": "success", "data": employee})
}

func (h *EmployeeHandler) Get(c *gin.Context) {
	employee, err := h.svc.Get(c.Request.Context(), c.GetString("org_id"), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 40410, "message": "员工不存在"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": employee})
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	var req service.UpdateEmployeeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": "参数校验失败: " + err.Error()})
		return
	}

	employee, err := h.svc.Update(c.Request.Context(), c.GetString("org_id"), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": 40410, "message": "员工不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": employee})
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.GetString("org_id"), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success"})
}

func (h *EmployeeHandler) List(c *gin.Context) {
	page, size := pageParams(c)
	params := repository.EmployeeListParams{
		Status:     c.Query("status"),
		Department: c.Query("department"),
		Keyword:    c.Query("keyword"),
		Page:       page,
		Size:       size,
	}

	employees, total, err := h.svc.List(c.Request.Context(), c.GetString("org_id"), params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data": gin.H{
			"items": employees,
			"total": total,
			"page":  page,
			"size":  size,
		},
	})
}
