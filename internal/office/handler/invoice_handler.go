package handler

import (
	"errors"
	"net/http"

	"github.com/codewithkin/wd-logistics/internal/office/repository"
	"github.com/codewithkin/wd-logistics/internal/office/service"
	"github.com/gin-gonic/gin"
)

// InvoiceHandler 发票接口
type InvoiceHandler struct {
	svc *service.InvoiceService
}

func NewInvoiceHandler(svc *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{svc: svc}
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	var req service.CreateInvoiceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": "参数校验失败: " + err.Error()})
		return
	}

	invoice, err := h.svc.Create(c.Request.Context(), req, c.GetString("user_id"), c.GetString("org_id"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"code": 0, "message": "success", "data": invoice})
}

func (h *InvoiceHandler) Get(c *gin.Context) {
	invoice, err := h.svc.Get(c.Request.Context(), c.GetString("org_id"), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 40409, "message": "发票不存在"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": invoice})
}

// Issue 开票
func (h *InvoiceHandler) Issue(c *gin.Context) {
	invoice, err := h.svc.Issue(c.Request.Context(), c.GetString("org_id"), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": invoice})
}

// MarkPaid 确认收款
func (h *InvoiceHandler) MarkPaid(c *gin.Context) {
	invoice, err := h.svc.MarkPaid(c.Request.Context(), c.GetString("org_id"), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": invoice})
}

// Void 作废
func (h *InvoiceHandler) Void(c *gin.Context) {
	invoice, err := h.svc.Void(c.Request.Context(), c.GetString("org_id"), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": invoice})
}

func (h *InvoiceHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.GetString("org_id"), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success"})
}

func (h *InvoiceHandler) List(c *gin.Context) {
	page, size := pageParams(c)
	params := repository.InvoiceListParams{
		Status:     c.Query("status"),
		CustomerID: c.Query("customer_id"),
		Overdue:    c.Query("overdue") == "true",
		Page:       page,
		Size:       size,
	}

	invoices, total, err := h.svc.List(c.Request.Context(), c.GetString("org_id"), params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data": gin.H{
			"items": invoices,
			"total": total,
			"page":  page,
			"size":  size,
		},
	})
}

func (h *InvoiceHandler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"code": 40409, "message": "发票不存在"})
	case errors.Is(err, service.ErrEntityNotFound):
		c.JSON(http.StatusNotFound, gin.H{"code": 40402, "message": "目标数据不存在: " + err.Error()})
	case errors.Is(err, service.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"code": 40902, "message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
	}
}
