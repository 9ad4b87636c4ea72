package service

import (
	"context"
	"fmt"
	"time"

	"github.com/codewithkin/wd-logistics/internal/office/entity"
	"github.com/codewithkin/wd-logistics/internal/office/repository"
	"github.com/google/uuid"
)

// EmployeeService 员工服务
type EmployeeService struct {
	repo *repository.EmployeeRepository
}

func NewEmployeeService(repo *repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{repo: repo}
}

// CreateEmployeeReq 创建员工参数
type CreateEmployeeReq struct {
	Name       string     `json:"name" binding:"required"`
	Position   string     `json:"position"`
	Department string     `json:"department"`
	Phone      string     `json:"phone"`
	Email      string     `json:"email"`
	Salary     float64    `json:"salary"`
	HireDate   *time.Time `json:"hire_date"`
	Notes      string     `json:"notes"`
}

func (s *EmployeeService) Create(ctx context.Context, req CreateEmployeeReq, createdBy, orgID string) (*entity.Employee, error) {
	code, err := s.repo.NextCode(orgID)
	if err != nil {
		return nil, fmt.Errorf("generate employee code: %w", err)
	}

	employee := &entity.Employee{
		ID:         uuid.New().String(),
		OrgID:      orgID,
		Code:       code,
		Name:       req.Name,
		Position:   req.Position,
		Department: req.Department,
		Phone:      req.Phone,
		Email:      req.Email,
		Salary:     req.Salary,
		HireDate:   req.HireDate,
		Status:     entity.EmployeeStatusActive,
		Notes:      req.Notes,
		CreatedBy:  createdBy,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	if err := s.repo.Create(employee); err != nil {
		return nil, fmt.Errorf("create employee: %w", err)
	}
	return employee, nil
}

// UpdateEmployeeReq 更新员工参数
type UpdateEmployeeReq struct {
	Name       *string    `json:"name"`
	Position   *string    `json:"position"`
	Department *string    `json:"department"`
	Phone      *string    `json:"phone"`
	Email      *string    `json:"email"`
	Salary     *float64   `json:"salary"`
	HireDate   *time.Time `json:"hire_date"`
	Status     *string    `json:"status"`
	Notes      *string    `json:"notes"`
}

func (s *EmployeeService) Update(ctx context.Context, orgID, id string, req UpdateEmployeeReq) (*entity.Employee, error) {
	employee, err := s.repo.GetByID(orgID, id)
	if err != nil {
		return nil, asNotFound(err)
	}

	if req.Name != nil {
		employee.Name = *req.Name
	}
	if req.Position != nil {
		employee.Position = *req.Position
	}
	if req.Department != nil {
		employee.Department = *req.Department
	}
	if req.Phone != nil {
		employee.Phone = *req.Phone
	}
	if req.Email != nil {
		employee.Email = *req.Email
	}
	if req.Salary != nil {
		employee.Salary = *req.Salary
	}
	if req.HireDate != nil {
		employee.HireDate = req.HireDate
	}
	if req.Status != nil {
		employee.Status = *req.Status
	}
	if req.Notes != nil {
		employee.Notes = *req.Notes
	}
	employee.UpdatedAt = time.Now()

	if err := s.repo.Update(employee); err != nil {
		return nil, fmt.Errorf("update employee: %w", err)
	}
	return employee, nil
}

func (s *EmployeeService) Get(ctx context.Context, orgID, id string) (*entity.Employee, error) {
	return s.repo.GetByID(orgID, id)
}

func (s *EmployeeService) List(ctx context.Context, orgID string, params repository.EmployeeListParams) ([]entity.Employee, int64, error) {
	return s.repo.List(orgID, params)
}

func (s *EmployeeService) Delete(ctx context.Context, orgID, id string) error {
	return s.repo.Delete(orgID, id)
}
