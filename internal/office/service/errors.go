package service

import (
	"errors"

	"gorm.io/gorm"
)

// 业务错误，handler 层据此映射HTTP状态码
var (
	// ErrNotFound 记录不存在或不属于该组织
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyReviewed 申请已被处理，不可重复审批
	ErrAlreadyReviewed = errors.New("edit request already reviewed")
	// ErrUnknownEntityType 实体类型不在枚举内
	ErrUnknownEntityType = errors.New("unknown entity type")
	// ErrNoUpdatableFields 提议数据中没有任何可更新字段
	ErrNoUpdatableFields = errors.New("no updatable fields in proposed data")
	// ErrEntityNotFound 目标实体不存在或已删除
	ErrEntityNotFound = errors.New("target entity not found")
	// ErrInvalidCredentials 登录凭证错误
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidRefreshToken 刷新令牌无效或已过期
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	// ErrInvalidTransition 状态流转不合法
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrInsufficientStock 库存不足
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrStorageNotConfigured 对象存储未配置
	ErrStorageNotConfigured = errors.New("object storage not configured")
)

// asNotFound 将 gorm 的记录不存在错误翻译为业务 ErrNotFound
func asNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
