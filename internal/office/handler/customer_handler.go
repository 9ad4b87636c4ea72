package handler

import (
	"errors"
	"net/http"

	"github.com/codewithkin/wd-logistics/internal/office/repository"
	"github.com/codewithkin/wd-logistics/internal/office/service"
	"github.com/gin-gonic/gin"
)

// CustomerHandler 客户接口
type CustomerHandler struct {
	svc *service.CustomerService
}

func NewCustomerHandler(svc *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req service.CreateCustomerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": "参数校验失败: " + err.Error()})
		return
	}

	customer, err := h.svc.Create(c.Request.Context(), req, c.GetString("user_id"), c.GetString("org_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"code": 0, "message": "success", "data": customer})
}

func (h *CustomerHandler) Get(c *gin.Context) {
	customer, err := h.svc.Get(c.Request.Context(), c.GetString("org_id"), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 40408, "message": "客户不存在"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": customer})
}

func (h *CustomerHandler) Update(c *gin.Context) {
	var req service.UpdateCustomerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": "参数校验失败: " + err.Error()})
		return
	}

	customer, err := h.svc.Update(c.Request.Context(), c.GetString("org_id"), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": 40408, "message": "客户不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": customer})
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.GetString("org_id"), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success"})
}

func (h *CustomerHandler) List(c *gin.Context) {
	page, size := pageParams(c)
	params := repository.CustomerListParams{
		Status:  c.Query("status"),
		Keyword: c.Query("keyword"),
		Page:    page,
		Size:    size,
	}

	customers, total, err := h.svc.List(c.Request.Context(), c.GetString("org_id"), params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data": gin.H{
			"items": customers,
			"total": total,
			"page":  page,
			"size":  size,
		},
	})
}
