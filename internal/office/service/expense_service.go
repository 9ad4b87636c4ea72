package service

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"time"

	"github.com/codewithkin/wd-logistics/internal/office/entity"
	"github.com/codewithkin/wd-logistics/internal/office/repository"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// ExpenseService 费用服务，票据存储走MinIO
type ExpenseService struct {
	repo        *repository.ExpenseRepository
	minioClient *minio.Client // 未配置时为 nil，票据上传降级为报错
	bucket      string
}

func NewExpenseService(repo *repository.ExpenseRepository, minioClient *minio.Client, bucket string) *ExpenseService {
	return &ExpenseService{repo: repo, minioClient: minioClient, bucket: bucket}
}

// CreateExpenseReq 创建费用参数
type CreateExpenseReq struct {
	TripID       *string    `json:"trip_id"`
	TruckID      *string    `json:"truck_id"`
	Category     string     `json:"category" binding:"required"`
	Amount       float64    `json:"amount" binding:"required,gt=0"`
	IncurredDate *time.Time `json:"incurred_date"`
	Description  string     `json:"description"`
}

func (s *ExpenseService) Create(ctx context.Context, req CreateExpenseReq, createdBy, orgID string) (*entity.Expense, error) {
	incurred := time.Now()
	if req.IncurredDate != nil {
		incurred = *req.IncurredDate
	}

	expense := &entity.Expense{
		ID:           uuid.New().String(),
		OrgID:        orgID,
		TripID:       req.TripID,
		TruckID:      req.TruckID,
		Category:     req.Category,
		Amount:       req.Amount,
		IncurredDate: incurred,
		Description:  req.Description,
		CreatedBy:    createdBy,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := s.repo.Create(expense); err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}
	return expense, nil
}

// UpdateExpenseReq 更新费用参数
type UpdateExpenseReq struct {
	Category     *string    `json:"category"`
	Amount       *float64   `json:"amount"`
	IncurredDate *time.Time `json:"incurred_date"`
	Description  *string    `json:"description"`
}

func (s *ExpenseService) Update(ctx context.Context, orgID, id string, req UpdateExpenseReq) (*entity.Expense, error) {
	expense, err := s.repo.GetByID(orgID, id)
	if err != nil {
		return nil, asNotFound(err)
	}

	if req.Category != nil {
		expense.Category = *req.Category
	}
	if req.Amount != nil {
		expense.Amount = *req.Amount
	}
	if req.IncurredDate != nil {
		expense.IncurredDate = *req.IncurredDate
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}
	expense.UpdatedAt = time.Now()

	if err := s.repo.Update(expense); err != nil {
		return nil, fmt.Errorf("update expense: %w", err)
	}
	return expense, nil
}

// UploadReceipt 上传票据到MinIO并记录对象key
func (s *ExpenseService) UploadReceipt(ctx context.Context, orgID, id, filename string, reader io.Reader, size int64, contentType string) (*entity.Expense, error) {
	if s.minioClient == nil {
		return nil, ErrStorageNotConfigured
	}

	expense, err := s.repo.GetByID(orgID, id)
	if err != nil {
		return nil, asNotFound(err)
	}

	objectKey := fmt.Sprintf("receipts/%s/%s/%s%s", orgID, id, uuid.New().String(), path.Ext(filename))
	_, err = s.minioClient.PutObject(ctx, s.bucket, objectKey, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("upload receipt: %w", err)
	}

	expense.ReceiptKey = objectKey
	expense.UpdatedAt = time.Now()
	if err := s.repo.Update(expense); err != nil {
		return nil, fmt.Errorf("save receipt key: %w", err)
	}
	return expense, nil
}

// ReceiptURL 生成票据下载的预签名URL（15分钟有效）
func (s *ExpenseService) ReceiptURL(ctx context.Context, orgID, id string) (string, error) {
	if s.minioClient == nil {
		return "", ErrStorageNotConfigured
	}

	expense, err := s.repo.GetByID(orgID, id)
	if err != nil {
		return "", asNotFound(err)
	}
	if expense.ReceiptKey == "" {
		return "", fmt.Errorf("expense has no receipt")
	}

	presigned, err := s.minioClient.PresignedGetObject(ctx, s.bucket, expense.ReceiptKey, 15*time.Minute, url.Values{})
	if err != nil {
		return "", fmt.Errorf("presign receipt url: %w", err)
	}
	return presigned.String(), nil
}

func (s *ExpenseService) Get(ctx context.Context, orgID, id string) (*entity.Expense, error) {
	return s.repo.GetByID(orgID, id)
}

func (s *ExpenseService) List(ctx context.Context, orgID string, params repository.ExpenseListParams) ([]entity.Expense, int64, error) {
	return s.repo.List(orgID, params)
}

func (s *ExpenseService) Delete(ctx context.Context, orgID, id string) error {
	return s.repo.Delete(orgID, id)
}
