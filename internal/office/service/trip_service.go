package service

import (
	"context"
	"fmt"
	"time"

	"github.com/codewithkin/wd-logistics/internal/office/entity"
	"github.com/codewithkin/wd-logistics/internal/office/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TripService 行程服务
type TripService struct {
	repo       *repository.TripRepository
	truckRepo  *repository.TruckRepository
	driverRepo *repository.DriverRepository
	logger     *zap.Logger
}

func NewTripService(repo *repository.TripRepository, truckRepo *repository.TruckRepository, driverRepo *repository.DriverRepository, logger *zap.Logger) *TripService {
	return &TripService{repo: repo, truckRepo: truckRepo, driverRepo: driverRepo, logger: logger}
}

// CreateTripReq 创建行程参数
type CreateTripReq struct {
	TruckID       string     `json:"truck_id" binding:"required"`
	DriverID      string     `json:"driver_id" binding:"required"`
	CustomerID    *string    `json:"customer_id"`
	Origin        string     `json:"origin" binding:"required"`
	Destination   string     `json:"destination" binding:"required"`
	CargoDesc     string     `json:"cargo_desc"`
	CargoWeightKg float64    `json:"cargo_weight_kg"`
	DistanceKm    float64    `json:"distance_km"`
	FreightCharge float64    `json:"freight_charge"`
	ScheduledAt   *time.Time `json:"scheduled_at"`
	Notes         string     `json:"notes"`
}

func (s *TripService) Create(ctx context.Context, req CreateTripReq, createdBy, orgID string) (*entity.Trip, error) {
	truck, err := s.truckRepo.GetByID(orgID, req.TruckID)
	if err != nil {
		return nil, fmt.Errorf("%w: truck %s", ErrEntityNotFound, req.TruckID)
	}
	if truck.Status != entity.TruckStatusInService {
		return nil, fmt.Errorf("%w: truck %s is %s", ErrInvalidTransition, truck.PlateNo, truck.Status)
	}

	driver, err := s.driverRepo.GetByID(orgID, req.DriverID)
	if err != nil {
		return nil, fmt.Errorf("%w: driver %s", ErrEntityNotFound, req.DriverID)
	}
	if driver.Status == entity.DriverStatusInactive || driver.Status == entity.DriverStatusOnLeave {
		return nil, fmt.Errorf("%w: driver %s is %s", ErrInvalidTransition, driver.Name, driver.Status)
	}

	// 车辆/司机不可同时跑两个行程
	busy, err := s.repo.HasActiveTrip(orgID, req.TruckID, req.DriverID)
	if err != nil {
		return nil, fmt.Errorf("check active trips: %w", err)
	}
	if busy {
		return nil, fmt.Errorf("%w: truck or driver already on an active trip", ErrInvalidTransition)
	}

	code, err := s.repo.NextCode(orgID)
	if err != nil {
		return nil, fmt.Errorf("generate trip code: %w", err)
	}

	trip := &entity.Trip{
		ID:            uuid.New().String(),
		OrgID:         orgID,
		Code:          code,
		TruckID:       req.TruckID,
		DriverID:      req.DriverID,
		CustomerID:    req.CustomerID,
		Origin:        req.Origin,
		Destination:   req.Destination,
		CargoDesc:     req.CargoDesc,
		CargoWeightKg: req.CargoWeightKg,
		DistanceKm:    req.DistanceKm,
		FreightCharge: req.FreightCharge,
		Status:        entity.TripStatusScheduled,
		ScheduledAt:   req.ScheduledAt,
		Notes:         req.Notes,
		CreatedBy:     createdBy,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if err := s.repo.Create(trip); err != nil {
		return nil, fmt.Errorf("create trip: %w", err)
	}
	return s.repo.GetByID(orgID, trip.ID)
}

// Dispatch 发车：scheduled → in_transit，司机置为 on_trip
func (s *TripService) Dispatch(ctx context.Context, orgID, id string) (*entity.Trip, error) {
	trip, err := s.repo.GetByID(orgID, id)
	if err != nil {
		return nil, asNotFound(err)
	}
	if trip.Status != entity.TripStatusScheduled {
		return nil, fmt.Errorf("%w: trip is %s, expected scheduled", ErrInvalidTransition, trip.Status)
	}

	now := time.Now()
	trip.Status = entity.TripStatusInTransit
	trip.DepartedAt = &now
	trip.UpdatedAt = now
	if err := s.repo.Update(trip); err != nil {
		return nil, fmt.Errorf("dispatch trip: %w", err)
	}

	if driver, err := s.driverRepo.GetByID(orgID, trip.DriverID); err == nil {
		driver.Status = entity.DriverStatusOnTrip
		driver.UpdatedAt = now
		if err := s.driverRepo.Update(driver); err != nil {
			s.logger.Error("update driver status on dispatch", zap.String("driver_id", driver.ID), zap.Error(err))
		}
	}

	return trip, nil
}

// Complete 送达：in_transit → delivered，司机恢复 available，累计车辆里程
func (s *TripService) Complete(ctx context.Context, orgID, id string) (*entity.Trip, error) {
	trip, err := s.repo.GetByID(orgID, id)
	if err != nil {
		return nil, asNotFound(err)
	}
	if trip.Status != entity.TripStatusInTransit {
		return nil, fmt.Errorf("%w: trip is %s, expected in_transit", ErrInvalidTransition, trip.Status)
	}

	now := time.Now()
	trip.Status = entity.TripStatusDelivered
	trip.ArrivedAt = &now
	trip.UpdatedAt = now
	if err := s.repo.Update(trip); err != nil {
		return nil, fmt.Errorf("complete trip: %w", err)
	}

	if driver, err := s.driverRepo.GetByID(orgID, trip.DriverID); err == nil {
		driver.Status = entity.DriverStatusAvailable
		driver.UpdatedAt = now
		if err := s.driverRepo.Update(driver); err != nil {
			s.logger.Error("update driver status on completion", zap.String("driver_id", driver.ID), zap.Error(err))
		}
	}
	if truck, err := s.truckRepo.GetByID(orgID, trip.TruckID); err == nil && trip.DistanceKm > 0 {
		truck.Mileage += trip.DistanceKm
		truck.UpdatedAt = now
		if err := s.truckRepo.Update(truck); err != nil {
			s.logger.Error("accumulate truck mileage on completion", zap.String("truck_id", truck.ID), zap.Error(err))
		}
	}

	return trip, nil
}

// Cancel 取消行程（送达后不可取消）
func (s *TripService) Cancel(ctx context.Context, orgID, id string) (*entity.Trip, error) {
	trip, err := s.repo.GetByID(orgID, id)
	if err != nil {
		return nil, asNotFound(err)
	}
	if trip.Status == entity.TripStatusDelivered || trip.Status == entity.TripStatusCancelled {
		return nil, fmt.Errorf("%w: trip is %s", ErrInvalidTransition, trip.Status)
	}

	now := time.Now()
	wasInTransit := trip.Status == entity.TripStatusInTransit
	trip.Status = entity.TripStatusCancelled
	trip.UpdatedAt = now
	if err := s.repo.Update(trip); err != nil {
		return nil, fmt.Errorf("cancel trip: %w", err)
	}

	if wasInTransit {
		if driver, err := s.driverRepo.GetByID(orgID, trip.DriverID); err == nil {
			driver.Status = entity.DriverStatusAvailable
			driver.UpdatedAt = now
			if err := s.driverRepo.Update(driver); err != nil {
				s.logger.Error("release driver on cancellation", zap.String("driver_id", driver.ID), zap.Error(err))
			}
		}
	}

	return trip, nil
}

func (s *TripService) Get(ctx context.Context, orgID, id string) (*entity.Trip, error) {
	return s.repo.GetByID(orgID, id)
}

func (s *TripService) List(ctx context.Context, orgID string, params repository.TripListParams) ([]entity.Trip, int64, error) {
	return s.repo.List(orgID, params)
}

func (s *TripService) Delete(ctx context.Context, orgID, id string) error {
	return s.repo.Delete(orgID, id)
}
