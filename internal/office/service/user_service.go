package service

import (
	"context"
	"fmt"
	"time"

	"github.com/codewithkin/wd-logistics/internal/office/entity"
	"github.com/codewithkin/wd-logistics/internal/office/repository"
	"github.com/google/uuid"
)

// UserService 用户管理服务（管理员开账号）
type UserService struct {
	repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// CreateUserReq 创建用户参数
type CreateUserReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Role     string `json:"role" binding:"required,oneof=admin supervisor staff"`
	Password string `json:"password" binding:"required,min=8"`
}

func (s *UserService) Create(ctx context.Context, req CreateUserReq, orgID string) (*entity.User, error) {
	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		ID:           uuid.New().String(),
		OrgID:        orgID,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Role:         req.Role,
		PasswordHash: hash,
		Status:       entity.UserStatusActive,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := s.repo.Create(user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context, orgID string) ([]entity.User, error) {
	return s.repo.ListByOrg(orgID)
}

// SetRole 调整用户角色
func (s *UserService) SetRole(ctx context.Context, orgID, userID, role string) (*entity.User, error) {
	user, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user.OrgID != orgID {
		return nil, fmt.Errorf("user not in organization")
	}

	user.Role = role
	user.UpdatedAt = time.Now()
	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("set role: %w", err)
	}
	return user, nil
}
