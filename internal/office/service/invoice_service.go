package service

import (
	"context"
	"fmt"
	"time"

	"github.com/codewithkin/wd-logistics/internal/office/entity"
	"github.com/codewithkin/wd-logistics/internal/office/repository"
	"github.com/google/uuid"
)

// InvoiceService 发票服务
type InvoiceService struct {
	repo         *repository.InvoiceRepository
	customerRepo *repository.CustomerRepository
}

func NewInvoiceService(repo *repository.InvoiceRepository, customerRepo *repository.CustomerRepository) *InvoiceService {
	return &InvoiceService{repo: repo, customerRepo: customerRepo}
}

// CreateInvoiceReq 创建发票参数（草稿）
type CreateInvoiceReq struct {
	CustomerID string     `json:"customer_id" binding:"required"`
	TripID     *string    `json:"trip_id"`
	Amount     float64    `json:"amount" binding:"required,gt=0"`
	TaxRate    float64    `json:"tax_rate"`
	DueDate    *time.Time `json:"due_date"`
	Notes      string     `json:"notes"`
}

func (s *InvoiceService) Create(ctx context.Context, req CreateInvoiceReq, createdBy, orgID string) (*entity.Invoice, error) {
	if _, err := s.customerRepo.GetByID(orgID, req.CustomerID); err != nil {
		return nil, fmt.Errorf("%w: customer %s", ErrEntityNotFound, req.CustomerID)
	}

	invoiceNo, err := s.repo.NextInvoiceNo(orgID)
	if err != nil {
		return nil, fmt.Errorf("generate invoice no: %w", err)
	}

	taxAmount := req.Amount * req.TaxRate / 100
	invoice := &entity.Invoice{
		ID:         uuid.New().String(),
		OrgID:      orgID,
		InvoiceNo:  invoiceNo,
		CustomerID: req.CustomerID,
		TripID:     req.TripID,
		Amount:     req.Amount,
		TaxRate:    req.TaxRate,
		TaxAmount:  taxAmount,
		Total:      req.Amount + taxAmount,
		Status:     entity.InvoiceStatusDraft,
		DueDate:    req.DueDate,
		Notes:      req.Notes,
		CreatedBy:  createdBy,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	if err := s.repo.Create(invoice); err != nil {
		return nil, fmt.Errorf("create invoice: %w", err)
	}
	return s.repo.GetByID(orgID, invoice.ID)
}

// Issue 开具：draft → issued
func (s *InvoiceService) Issue(ctx context.Context, orgID, id string) (*entity.Invoice, error) {
	invoice, err := s.repo.GetByID(orgID, id)
	if err != nil {
		return nil, asNotFound(err)
	}
	if invoice.Status != entity.InvoiceStatusDraft {
		return nil, fmt.Errorf("%w: invoice is %s, expected draft", ErrInvalidTransition, invoice.Status)
	}

	now := time.Now()
	invoice.Status = entity.InvoiceStatusIssued
	invoice.IssuedAt = &now
	invoice.UpdatedAt = now
	if err := s.repo.Update(invoice); err != nil {
		return nil, fmt.Errorf("issue invoice: %w", err)
	}
	return invoice, nil
}

// MarkPaid 收款：issued → paid
func (s *InvoiceService) MarkPaid(ctx context.Context, orgID, id string) (*entity.Invoice, error) {
	invoice, err := s.repo.GetByID(orgID, id)
	if err != nil {
		return nil, asNotFound(err)
	}
	if invoice.Status != entity.InvoiceStatusIssued {
		return nil, fmt.Errorf("%w: invoice is %s, expected issued", ErrInvalidTransition, invoice.Status)
	}

	now := time.Now()
	invoice.Status = entity.InvoiceStatusPaid
	invoice.PaidAt = &now
	invoice.UpdatedAt = now
	if err := s.repo.Update(invoice); err != nil {
		return nil, fmt.Errorf("mark invoice paid: %w", err)
	}
	return invoice, nil
}

// Void 作废（已收款不可作废）
func (s *InvoiceService) Void(ctx context.Context, orgID, id string) (*entity.Invoice, error) {
	invoice, err := s.repo.GetByID(orgID, id)
	if err != nil {
		return nil, asNotFound(err)
	}
	if invoice.Status == entity.InvoiceStatusPaid || invoice.Status == entity.InvoiceStatusVoid {
		return nil, fmt.Errorf("%w: invoice is %s", ErrInvalidTransition, invoice.Status)
	}

	invoice.Status = entity.InvoiceStatusVoid
	invoice.UpdatedAt = time.Now()
	if err := s.repo.Update(invoice); err != nil {
		return nil, fmt.Errorf("void invoice: %w", err)
	}
	return invoice, nil
}

func (s *InvoiceService) Get(ctx context.Context, orgID, id string) (*entity.Invoice, error) {
	return s.repo.GetByID(orgID, id)
}

func (s *InvoiceService) List(ctx context.Context, orgID string, params repository.InvoiceListParams) ([]entity.Invoice, int64, error) {
	return s.repo.List(orgID, params)
}

func (s *InvoiceService) Delete(ctx context.Context, orgID, id string) error {
	return s.repo.Delete(orgID, id)
}
