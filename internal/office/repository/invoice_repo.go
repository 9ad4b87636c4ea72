package repository

import (
	"fmt"
	"time"

	"github.com/codewithkin/wd-logistics/internal/office/entity"
	"gorm.io/gorm"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func (r *InvoiceRepository) Create(invoice *entity.Invoice) error {
	return r.db.Create(invoice).Error
}

func (r *InvoiceRepository) GetByID(orgID, id string) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.Where("id = ? AND org_id = ? AND deleted_at IS NULL", id, orgID).
		Preload("Customer").
		Preload("Trip").
		First(&invoice).Error
	return &invoice, err
}

func (r *InvoiceRepository) Update(invoice *entity.Invoice) error {
	return r.db.Save(invoice).Error
}

func (r *InvoiceRepository) Delete(orgID, id string) error {
	return r.db.Model(&entity.Invoice{}).
		Where("id = ? AND org_id = ? AND deleted_at IS NULL", id, orgID).
		Update("deleted_at", time.Now()).Error
}

// NextInvoiceNo 生成发票编号 INV-YYYY-NNNN
func (r *InvoiceRepository) NextInvoiceNo(orgID string) (string, error) {
	year := time.Now().Year()
	var count int64
	if err := r.db.Model(&entity.Invoice{}).
		Where("org_id = ? AND invoice_no LIKE ?", orgID, fmt.Sprintf("INV-%d-%%", year)).
		Count(&count).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("INV-%d-%04d", year, count+1), nil
}

type InvoiceListParams struct {
	Status     string
	CustomerID string
	Overdue    bool
	Page       int
	Size       int
}

func (r *InvoiceRepository) List(orgID string, params InvoiceListParams) ([]entity.Invoice, int64, error) {
	query := r.db.Model(&entity.Invoice{}).Where("org_id = ? AND deleted_at IS NULL", orgID)
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.CustomerID != "" {
		query = query.Where("customer_id = ?", params.CustomerID)
	}
	if params.Overdue {
		query = query.Where("status = ? AND due_date < ?", entity.InvoiceStatusIssued, time.Now())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var invoices []entity.Invoice
	err := query.Preload("Customer").Order("created_at DESC").
		Offset((params.Page - 1) * params.Size).Limit(params.Size).
		Find(&invoices).Error
	return invoices, total, err
}
