package service

import (
	"context"
	"fmt"
	"time"

	"github.com/codewithkin/wd-logistics/internal/office/entity"
	"github.com/codewithkin/wd-logistics/internal/office/repository"
	"github.com/google/uuid"
)

// SupplierService 供应商服务
type SupplierService struct {
	repo *repository.SupplierRepository
}

func NewSupplierService(repo *repository.SupplierRepository) *SupplierService {
	return &SupplierService{repo: repo}
}

// CreateSupplierReq 创建供应商参数
type CreateSupplierReq struct {
	Name        string `json:"name" binding:"required"`
	ContactName string `json:"contact_name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	Notes       string `json:"notes"`
}

func (s *SupplierService) Create(ctx context.Context, req CreateSupplierReq, createdBy, orgID string) (*entity.Supplier, error) {
	code, err := s.repo.NextCode(orgID)
	if err != nil {
		return nil, fmt.Errorf("generate supplier code: %w", err)
	}

	supplier := &entity.Supplier{
		ID:          uuid.New().String(),
		OrgID:       orgID,
		Code:        code,
		Name:        req.Name,
		ContactName: req.ContactName,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		Status:      entity.SupplierStatusActive,
		Notes:       req.Notes,
		CreatedBy:   createdBy,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := s.repo.Create(supplier); err != nil {
		return nil, fmt.Errorf("create supplier: %w", err)
	}
	return supplier, nil
}

// UpdateSupplierReq 更新供应商参数
type UpdateSupplierReq struct {
	Name        *string `json:"name"`
	ContactName *string `json:"contact_name"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	Address     *string `json:"address"`
	Status      *string `json:"status"`
	Notes       *string `json:"notes"`
}

func (s *SupplierService) Update(ctx context.Context, orgID, id string, req UpdateSupplierReq) (*entity.Supplier, error) {
	supplier, err := s.repo.GetByID(orgID, id)
	if err != nil {
		return nil, asNotFound(err)
	}

	if req.Name != nil {
		supplier.Name = *req.Name
	}
	if req.ContactName != nil {
		supplier.ContactName = *req.ContactName
	}
	if req.Phone != nil {
		supplier.Phone = *req.Phone
	}
	if req.Email != nil {
		supplier.Email = *req.Email
	}
	if req.Address != nil {
		supplier.Address = *req.Address
	}
	if req.Status != nil {
		supplier.Status = *req.Status
	}
	if req.Notes != nil {
		supplier.Notes = *req.Notes
	}
	supplier.UpdatedAt = time.Now()

	if err := s.repo.Update(supplier); err != nil {
		return nil, fmt.Errorf("update supplier: %w", err)
	}
	return supplier, nil
}

func (s *SupplierService) Get(ctx context.Context, orgID, id string) (*entity.Supplier, error) {
	return s.repo.GetByID(orgID, id)
}

func (s *SupplierService) List(ctx context.Context, orgID string, params repository.SupplierListParams) ([]entity.Supplier, int64, error) {
	return s.repo.List(orgID, params)
}

func (s *SupplierService) Delete(ctx context.Context, orgID, id string) error {
	return s.repo.Delete(orgID, id)
}
