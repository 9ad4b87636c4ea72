package service

import (
	"context"
	"fmt"
	"time"

	"github.com/codewithkin/wd-logistics/internal/office/entity"
	"github.com/codewithkin/wd-logistics/internal/office/repository"
	"github.com/google/uuid"
)

// TruckService 车辆服务
type TruckService struct {
	repo *repository.TruckRepository
}

func NewTruckService(repo *repository.TruckRepository) *TruckService {
	return &TruckService{repo: repo}
}

// CreateTruckReq 创建车辆参数
type CreateTruckReq struct {
	PlateNo     string  `json:"plate_no" binding:"required"`
	Make        string  `json:"make"`
	Model       string  `json:"model"`
	Year        int     `json:"year"`
	CapacityKg  float64 `json:"capacity_kg"`
	Mileage     float64 `json:"mileage"`
	InsuranceNo string  `json:"insurance_no"`
	Notes       string  `json:"notes"`
}

func (s *TruckService) Create(ctx context.Context, req CreateTruckReq, createdBy, orgID string) (*entity.Truck, error) {
	truck := &entity.Truck{
		ID:          uuid.New().String(),
		OrgID:       orgID,
		PlateNo:     req.PlateNo,
		Make:        req.Make,
		Model:       req.Model,
		Year:        req.Year,
		CapacityKg:  req.CapacityKg,
		Mileage:     req.Mileage,
		Status:      entity.TruckStatusInService,
		InsuranceNo: req.InsuranceNo,
		Notes:       req.Notes,
		CreatedBy:   createdBy,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := s.repo.Create(truck); err != nil {
		return nil, fmt.Errorf("create truck: %w", err)
	}
	return truck, nil
}

// UpdateTruckReq 更新车辆参数（指针字段表示未提供则不修改）
type UpdateTruckReq struct {
	PlateNo     *string  `json:"plate_no"`
	Make        *string  `json:"make"`
	Model       *string  `json:"model"`
	Year        *int     `json:"year"`
	CapacityKg  *float64 `json:"capacity_kg"`
	Mileage     *float64 `json:"mileage"`
	Status      *string  `json:"status"`
	InsuranceNo *string  `json:"insurance_no"`
	Notes       *string  `json:"notes"`
}

func (s *TruckService) Update(ctx context.Context, orgID, id string, req UpdateTruckReq) (*entity.Truck, error) {
	truck, err := s.repo.GetByID(orgID, id)
	if err != nil {
		return nil, asNotFound(err)
	}

	if req.PlateNo != nil {
		truck.PlateNo = *req.PlateNo
	}
	if req.Make != nil {
		truck.Make = *req.Make
	}
	if req.Model != nil {
		truck.Model = *req.Model
	}
	if req.Year != nil {
		truck.Year = *req.Year
	}
	if req.CapacityKg != nil {
		truck.CapacityKg = *req.CapacityKg
	}
	if req.Mileage != nil {
		truck.Mileage = *req.Mileage
	}
	if req.Status != nil {
		truck.Status = *req.Status
	}
	if req.InsuranceNo != nil {
		truck.InsuranceNo = *req.InsuranceNo
	}
	if req.Notes != nil {
		truck.Notes = *req.Notes
	}
	truck.UpdatedAt = time.Now()

	if err := s.repo.Update(truck); err != nil {
		return nil, fmt.Errorf("update truck: %w", err)
	}
	return truck, nil
}

func (s *TruckService) Get(ctx context.Context, orgID, id string) (*entity.Truck, error) {
	return s.repo.GetByID(orgID, id)
}

func (s *TruckService) List(ctx context.Context, orgID string, params repository.TruckListParams) ([]entity.Truck, int64, error) {
	return s.repo.List(orgID, params)
}

func (s *TruckService) Delete(ctx context.Context, orgID, id string) error {
	return s.repo.Delete(orgID, id)
}
