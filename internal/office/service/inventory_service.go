package service

import (
	"context"
	"fmt"
	"time"

	"github.com/codewithkin/wd-logistics/internal/office/entity"
	"github.com/codewithkin/wd-logistics/internal/office/repository"
	"github.com/google/uuid"
)

// InventoryService 库存服务
type InventoryService struct {
	repo *repository.InventoryRepository
}

func NewInventoryService(repo *repository.InventoryRepository) *InventoryService {
	return &InventoryService{repo: repo}
}

// CreateInventoryItemReq 创建库存物料参数
type CreateInventoryItemReq struct {
	SKU          string  `json:"sku" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Category     string  `json:"category"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	ReorderLevel float64 `json:"reorder_level"`
	UnitCost     float64 `json:"unit_cost"`
	SupplierID   *string `json:"supplier_id"`
	Location     string  `json:"location"`
	Notes        string  `json:"notes"`
}

func (s *InventoryService) Create(ctx context.Context, req CreateInventoryItemReq, createdBy, orgID string) (*entity.InventoryItem, error) {
	unit := req.Unit
	if unit == "" {
		unit = "pcs"
	}

	item := &entity.InventoryItem{
		ID:           uuid.New().String(),
		OrgID:        orgID,
		SKU:          req.SKU,
		Name:         req.Name,
		Category:     req.Category,
		Quantity:     req.Quantity,
		Unit:         unit,
		ReorderLevel: req.ReorderLevel,
		UnitCost:     req.UnitCost,
		SupplierID:   req.SupplierID,
		Location:     req.Location,
		Notes:        req.Notes,
		CreatedBy:    createdBy,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := s.repo.Create(item); err != nil {
		return nil, fmt.Errorf("create inventory item: %w", err)
	}
	return item, nil
}

// UpdateInventoryItemReq 更新库存物料参数
type UpdateInventoryItemReq struct {
	Name         *string  `json:"name"`
	Category     *string  `json:"category"`
	Unit         *string  `json:"unit"`
	ReorderLevel *float64 `json:"reorder_level"`
	UnitCost     *float64 `json:"unit_cost"`
	SupplierID   *string  `json:"supplier_id"`
	Location     *string  `json:"location"`
	Notes        *string  `json:"notes"`
}

func (s *InventoryService) Update(ctx context.Context, orgID, id string, req UpdateInventoryItemReq) (*entity.InventoryItem, error) {
	item, err := s.repo.GetByID(orgID, id)
	if err != nil {
		return nil, asNotFound(err)
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.ReorderLevel != nil {
		item.ReorderLevel = *req.ReorderLevel
	}
	if req.UnitCost != nil {
		item.UnitCost = *req.UnitCost
	}
	if req.SupplierID != nil {
		item.SupplierID = req.SupplierID
	}
	if req.Location != nil {
		item.Location = *req.Location
	}
	if req.Notes != nil {
		item.Notes = *req.Notes
	}
	item.UpdatedAt = time.Now()

	if err := s.repo.Update(item); err != nil {
		return nil, fmt.Errorf("update inventory item: %w", err)
	}
	return item, nil
}

// Adjust 按增量调整库存数量（负数为出库），不允许减到负数
func (s *InventoryService) Adjust(ctx context.Context, orgID, id string, delta float64) (*entity.InventoryItem, error) {
	rows, err := s.repo.AdjustQuantity(orgID, id, delta)
	if err != nil {
		return nil, fmt.Errorf("adjust inventory: %w", err)
	}
	if rows == 0 {
		// 要么物料不存在，要么会减成负数
		if _, getErr := s.repo.GetByID(orgID, id); getErr != nil {
			return nil, asNotFound(getErr)
		}
		return nil, ErrInsufficientStock
	}
	return s.repo.GetByID(orgID, id)
}

func (s *InventoryService) Get(ctx context.Context, orgID, id string) (*entity.InventoryItem, error) {
	return s.repo.GetByID(orgID, id)
}

func (s *InventoryService) List(ctx context.Context, orgID string, params repository.InventoryListParams) ([]entity.InventoryItem, int64, error) {
	return s.repo.List(orgID, params)
}

func (s *InventoryService) Delete(ctx context.Context, orgID, id string) error {
	return s.repo.Delete(orgID, id)
}
