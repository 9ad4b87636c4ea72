package service

import (
	"context"
	"fmt"
	"time"

	"github.com/codewithkin/wd-logistics/internal/office/entity"
	"github.com/codewithkin/wd-logistics/internal/office/repository"
	"github.com/google/uuid"
)

// CustomerService 客户服务
type CustomerService struct {
	repo *repository.CustomerRepository
}

func NewCustomerService(repo *repository.CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

// CreateCustomerReq 创建客户参数
type CreateCustomerReq struct {
	Name         string  `json:"name" binding:"required"`
	ContactName  string  `json:"contact_name"`
	Phone        string  `json:"phone"`
	Email        string  `json:"email"`
	Address      string  `json:"address"`
	PaymentTerms string  `json:"payment_terms"`
	CreditLimit  float64 `json:"credit_limit"`
	Notes        string  `json:"notes"`
}

func (s *CustomerService) Create(ctx context.Context, req CreateCustomerReq, createdBy, orgID string) (*entity.Customer, error) {
	code, err := s.repo.NextCode(orgID)
	if err != nil {
		return nil, fmt.Errorf("generate customer code: %w", err)
	}

	customer := &entity.Customer{
		ID:           uuid.New().String(),
		OrgID:        orgID,
		Code:         code,
		Name:         req.Name,
		ContactName:  req.ContactName,
		Phone:        req.Phone,
		Email:        req.Email,
		Address:      req.Address,
		PaymentTerms: req.PaymentTerms,
		CreditLimit:  req.CreditLimit,
		Status:       entity.CustomerStatusActive,
		Notes:        req.Notes,
		CreatedBy:    createdBy,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := s.repo.Create(customer); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	return customer, nil
}

// UpdateCustomerReq 更新客户参数
type UpdateCustomerReq struct {
	Name         *string  `json:"name"`
	ContactName  *string  `json:"contact_name"`
	Phone        *string  `json:"phone"`
	Email        *string  `json:"email"`
	Address      *string  `json:"address"`
	PaymentTerms *string  `json:"payment_terms"`
	CreditLimit  *float64 `json:"credit_limit"`
	Status       *string  `json:"status"`
	Notes        *string  `json:"notes"`
}

func (s *CustomerService) Update(ctx context.Context, orgID, id string, req UpdateCustomerReq) (*entity.Customer, error) {
	customer, err := s.repo.GetByID(orgID, id)
	if err != nil {
		return nil, asNotFound(err)
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.ContactName != nil {
		customer.ContactName = *req.ContactName
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}
	if req.PaymentTerms != nil {
		customer.PaymentTerms = *req.PaymentTerms
	}
	if req.CreditLimit != nil {
		customer.CreditLimit = *req.CreditLimit
	}
	if req.Status != nil {
		customer.Status = *req.Status
	}
	if req.Notes != nil {
		customer.Notes = *req.Notes
	}
	customer.UpdatedAt = time.Now()

	if err := s.repo.Update(customer); err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}
	return customer, nil
}

func (s *CustomerService) Get(ctx context.Context, orgID, id string) (*entity.Customer, error) {
	return s.repo.GetByID(orgID, id)
}

func (s *CustomerService) List(ctx context.Context, orgID string, params repository.CustomerListParams) ([]entity.Customer, int64, error) {
	return s.repo.List(orgID, params)
}

func (s *CustomerService) Delete(ctx context.Context, orgID, id string) error {
	return s.repo.Delete(orgID, id)
}
