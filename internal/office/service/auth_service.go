package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/codewithkin/wd-logistics/internal/config"
	"github.com/codewithkin/wd-logistics/internal/office/entity"
	"github.com/codewithkin/wd-logistics/internal/office/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// refreshTokenPrefix 刷新令牌在Redis中的key前缀
const refreshTokenPrefix = "wd:refresh:"

// AuthService 认证服务
type AuthService struct {
	userRepo *repository.UserRepository
	rdb      *redis.Client
	cfg      *config.Config
}

// NewAuthService 创建认证服务
func NewAuthService(userRepo *repository.UserRepository, rdb *redis.Client, cfg *config.Config) *AuthService {
	return &AuthService{userRepo: userRepo, rdb: rdb, cfg: cfg}
}

// TokenPair Token对
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// Login 邮箱+密码登录
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, *TokenPair, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("load user: %w", err)
	}
	if user.Status != entity.UserStatusActive {
		return nil, nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Refresh 用刷新令牌换取新的Token对（旧令牌作废）
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*entity.User, *TokenPair, error) {
	key := refreshTokenPrefix + refreshToken
	userID, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil, ErrInvalidRefreshToken
		}
		return nil, nil, fmt.Errorf("load refresh token: %w", err)
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil || user.Status != entity.UserStatusActive {
		return nil, nil, ErrInvalidRefreshToken
	}

	// 旋转：旧令牌立即失效
	s.rdb.Del(ctx, key)

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Logout 注销刷新令牌
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	return s.rdb.Del(ctx, refreshTokenPrefix+refreshToken).Err()
}

// Me 当前用户信息
func (s *AuthService) Me(ctx context.Context, userID string) (*entity.User, error) {
	return s.userRepo.GetByID(userID)
}

// HashPassword 生成密码哈希
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

func (s *AuthService) issueTokens(ctx context.Context, user *entity.User) (*TokenPair, error) {
	now := time.Now()
	expire := s.cfg.JWT.AccessTokenExpire

	claims := jwt.MapClaims{
		"sub":    user.ID,
		"uid":    user.ID,
		"name":   user.Name,
		"email":  user.Email,
		"org_id": user.OrgID,
		"role":   user.Role,
		"iss":    s.cfg.JWT.Issuer,
		"iat":    now.Unix(),
		"exp":    now.Add(expire).Unix(),
		"jti":    uuid.New().String(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	accessToken, err := token.SignedString([]byte(s.cfg.JWT.Secret))
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	refreshToken := uuid.New().String()
	if err := s.rdb.Set(ctx, refreshTokenPrefix+refreshToken, user.ID, s.cfg.JWT.RefreshTokenExpire).Err(); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(expire.Seconds()),
	}, nil
}
