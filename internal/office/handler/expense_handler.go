package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/codewithkin/wd-logistics/internal/office/repository"
	"github.com/codewithkin/wd-logistics/internal/office/service"
	"github.com/gin-gonic/gin"
)

// ExpenseHandler 费用接口
type ExpenseHandler struct {
	svc *service.ExpenseService
}

func NewExpenseHandler(svc *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{svc: svc}
}

func (h *ExpenseHandler) Create(c *gin.Context) {
	var req service.CreateExpenseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": "参数校验失败: " + err.Error()})
		return
	}

	expense, err := h.svc.Create(c.Request.Context(), req, c.GetString("user_id"), c.GetString("org_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"code": 0, "message": "success", "data": expense})
}

func (h *ExpenseHandler) Get(c *gin.Context) {
	expense, err := h.svc.Get(c.Request.Context(), c.GetString("org_id"), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 40407, "message": "费用记录不存在"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": expense})
}

func (h *ExpenseHandler) Update(c *gin.Context) {
	var req service.UpdateExpenseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": "参数校验失败: " + err.Error()})
		return
	}

	expense, err := h.svc.Update(c.Request.Context(), c.GetString("org_id"), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": 40407, "message": "费用记录不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": expense})
}

// UploadReceipt 上传票据文件
func (h *ExpenseHandler) UploadReceipt(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": "请选择要上传的文件"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": "文件读取失败"})
		return
	}
	defer file.Close()

	expense, err := h.svc.UploadReceipt(c.Request.Context(), c.GetString("org_id"), c.Param("id"),
		fileHeader.Filename, file, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": expense})
}

// ReceiptURL 获取票据下载链接
func (h *ExpenseHandler) ReceiptURL(c *gin.Context) {
	url, err := h.svc.ReceiptURL(c.Request.Context(), c.GetString("org_id"), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": gin.H{"url": url}})
}

func (h *ExpenseHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.GetString("org_id"), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success"})
}

func (h *ExpenseHandler) List(c *gin.Context) {
	page, size := pageParams(c)
	params := repository.ExpenseListParams{
		Category: c.Query("category"),
		TripID:   c.Query("trip_id"),
		TruckID:  c.Query("truck_id"),
		Page:     page,
		Size:     size,
	}
	if v := c.Query("from"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			params.From = &t
		}
	}
	if v := c.Query("to"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			params.To = &t
		}
	}

	expenses, total, err := h.svc.List(c.Request.Context(), c.GetString("org_id"), params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data": gin.H{
			"items": expenses,
			"total": total,
			"page":  page,
			"size":  size,
		},
	})
}

func (h *ExpenseHandler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"code": 40407, "message": "费用记录不存在"})
	case errors.Is(err, service.ErrStorageNotConfigured):
		c.JSON(http.StatusServiceUnavailable, gin.H{"code": 50301, "message": "文件存储服务未配置"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
	}
}
