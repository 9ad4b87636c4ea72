package service

import (
	"context"
	"fmt"
	"time"

	"github.com/codewithkin/wd-logistics/internal/office/entity"
	"github.com/codewithkin/wd-logistics/internal/office/repository"
	"github.com/google/uuid"
)

// DriverService 司机服务
type DriverService struct {
	repo      *repository.DriverRepository
	truckRepo *repository.TruckRepository
}

func NewDriverService(repo *repository.DriverRepository, truckRepo *repository.TruckRepository) *DriverService {
	return &DriverService{repo: repo, truckRepo: truckRepo}
}

// CreateDriverReq 创建司机参数
type CreateDriverReq struct {
	Name          string     `json:"name" binding:"required"`
	Phone         string     `json:"phone"`
	LicenseNo     string     `json:"license_no" binding:"required"`
	LicenseClass  string     `json:"license_class"`
	LicenseExpiry *time.Time `json:"license_expiry"`
	Notes         string     `json:"notes"`
}

func (s *DriverService) Create(ctx context.Context, req CreateDriverReq, createdBy, orgID string) (*entity.Driver, error) {
	driver := &entity.Driver{
		ID:            uuid.New().String(),
		OrgID:         orgID,
		Name:          req.Name,
		Phone:         req.Phone,
		LicenseNo:     req.LicenseNo,
		LicenseClass:  req.LicenseClass,
		LicenseExpiry: req.LicenseExpiry,
		Status:        entity.DriverStatusAvailable,
		Notes:         req.Notes,
		CreatedBy:     createdBy,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if err := s.repo.Create(driver); err != nil {
		return nil, fmt.Errorf("create driver: %w", err)
	}
	return driver, nil
}

// UpdateDriverReq 更新司机参数
type UpdateDriverReq struct {
	Name          *string    `json:"name"`
	Phone         *string    `json:"phone"`
	LicenseNo     *string    `json:"license_no"`
	LicenseClass  *string    `json:"license_class"`
	LicenseExpiry *time.Time `json:"license_expiry"`
	Status        *string    `json:"status"`
	Notes         *string    `json:"notes"`
}

func (s *DriverService) Update(ctx context.Context, orgID, id string, req UpdateDriverReq) (*entity.Driver, error) {
	driver, err := s.repo.GetByID(orgID, id)
	if err != nil {
		return nil, asNotFound(err)
	}

	if req.Name != nil {
		driver.Name = *req.Name
	}
	if req.Phone != nil {
		driver.Phone = *req.Phone
	}
	if req.LicenseNo != nil {
		driver.LicenseNo = *req.LicenseNo
	}
	if req.LicenseClass != nil {
		driver.LicenseClass = *req.LicenseClass
	}
	if req.LicenseExpiry != nil {
		driver.LicenseExpiry = req.LicenseExpiry
	}
	if req.Status != nil {
		driver.Status = *req.Status
	}
	if req.Notes != nil {
		driver.Notes = *req.Notes
	}
	driver.UpdatedAt = time.Now()

	if err := s.repo.Update(driver); err != nil {
		return nil, fmt.Errorf("update driver: %w", err)
	}
	return driver, nil
}

// AssignTruck 分配车辆（truckID为空表示解除分配）
func (s *DriverService) AssignTruck(ctx context.Context, orgID, driverID, truckID string) (*entity.Driver, error) {
	driver, err := s.repo.GetByID(orgID, driverID)
	if err != nil {
		return nil, asNotFound(err)
	}

	if truckID == "" {
		driver.TruckID = nil
	} else {
		if _, err := s.truckRepo.GetByID(orgID, truckID); err != nil {
			return nil, fmt.Errorf("%w: truck %s", ErrEntityNotFound, truckID)
		}
		driver.TruckID = &truckID
	}
	driver.UpdatedAt = time.Now()

	if err := s.repo.Update(driver); err != nil {
		return nil, fmt.Errorf("assign truck: %w", err)
	}
	return driver, nil
}

func (s *DriverService) Get(ctx context.Context, orgID, id string) (*entity.Driver, error) {
	return s.repo.GetByID(orgID, id)
}

func (s *DriverService) List(ctx context.Context, orgID string, params repository.DriverListParams) ([]entity.Driver, int64, error) {
	return s.repo.List(orgID, params)
}

func (s *DriverService) Delete(ctx context.Context, orgID, id string) error {
	return s.repo.Delete(orgID, id)
}
