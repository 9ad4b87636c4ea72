package repository

import (
	"github.com/codewithkin/wd-logistics/internal/office/entity"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *entity.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) GetByID(id string) (*entity.User, error) {
	var user entity.User
	err := r.db.Where("id = ?", id).First(&user).Error
	return &user, err
}

func (r *UserRepository) GetByEmail(email string) (*entity.User, error) {
	var user entity.User
	err := r.db.Where("email = ?", email).First(&user).Error
	return &user, err
}

// ListReviewers 获取组织内具备审批权限的用户（管理员/主管）
func (r *UserRepository) ListReviewers(orgID string) ([]entity.User, error) {
	var users []entity.User
	err := r.db.Where("org_id = ? AND role IN ? AND status = ?",
		orgID, []string{entity.RoleAdmin, entity.RoleSupervisor}, entity.UserStatusActive).
		Find(&users).Error
	return users, err
}

func (r *UserRepository) ListByOrg(orgID string) ([]entity.User, error) {
	var users []entity.User
	err := r.db.Where("org_id = ?", orgID).Order("created_at").Find(&users).Error
	return users, err
}

func (r *UserRepository) Update(user *entity.User) error {
	return r.db.Save(user).Error
}
