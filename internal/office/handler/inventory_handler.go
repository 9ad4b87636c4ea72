package handler

import (
	"errors"
	"net/http"

	"github.com/codewithkin/wd-logistics/internal/office/repository"
	"github.com/codewithkin/wd-logistics/internal/office/service"
	"github.com/gin-gonic/gin"
)

// InventoryHandler 库存接口
type InventoryHandler struct {
	svc *service.InventoryService
}

func NewInventoryHandler(svc *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

func (h *InventoryHandler) Create(c *gin.Context) {
	var req service.CreateInventoryItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": "参数校验失败: " + err.Error()})
		return
	}

	item, err := h.svc.Create(c.Request.Context(), req, c.GetString("user_id"), c.GetString("org_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"code": 0, "message": "success", "data": item})
}

func (h *InventoryHandler) Get(c *gin.Context) {
	item, err := h.svc.Get(c.Request.Context(), c.GetString("org_id"), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 40411, "message": "库存物品不存在"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": item})
}

func (h *InventoryHandler) Update(c *gin.Context) {
	var req service.UpdateInventoryItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": "参数校验失败: " + err.Error()})
		return
	}

	item, err := h.svc.Update(c.Request.Context(), c.GetString("org_id"), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": 40411, "message": "库存物品不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": item})
}

type adjustQuantityReq struct {
	Delta float64 `json:"delta" binding:"required"`
}

// Adjust 库存增减
func (h *InventoryHandler) Adjust(c *gin.Context) {
	var req adjustQuantityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": "参数校验失败: " + err.Error()})
		return
	}

	item, err := h.svc.Adjust(c.Request.Context(), c.GetString("org_id"), c.Param("id"), req.Delta)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"code": 40411, "message": "库存物品不存在"})
		case errors.Is(err, service.ErrInsufficientStock):
			c.JSON(http.StatusConflict, gin.H{"code": 40903, "message": "库存数量不足"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": item})
}

func (h *InventoryHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.GetString("org_id"), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success"})
}

func (h *InventoryHandler) List(c *gin.Context) {
	page, size := pageParams(c)
	params := repository.InventoryListParams{
		Category:   c.Query("category"),
		SupplierID: c.Query("supplier_id"),
		Keyword:    c.Query("keyword"),
		LowStock:   c.Query("low_stock") == "true",
		Page:       page,
		Size:       size,
	}

	items, total, err := h.svc.List(c.Request.Context(), c.GetString("org_id"), params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data": gin.H{
			"items": items,
			"total": total,
			"page":  page,
			"size":  size,
		},
	})
}
