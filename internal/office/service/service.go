package service

import (
	"github.com/codewithkin/wd-logistics/internal/config"
	"github.com/codewithkin/wd-logistics/internal/office/repository"
	"github.com/codewithkin/wd-logistics/internal/shared/whatsapp"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Services 服务集合
type Services struct {
	Auth        *AuthService
	User        *UserService
	Truck       *TruckService
	Driver      *DriverService
	Trip        *TripService
	Expense     *ExpenseService
	Customer    *CustomerService
	Invoice     *InvoiceService
	Employee    *EmployeeService
	Inventory   *InventoryService
	Supplier    *SupplierService
	EditRequest *EditRequestService
	Notify      *NotifyService
}

// NewServices 创建服务集合
func NewServices(repos *repository.Repositories, db *gorm.DB, rdb *redis.Client, cfg *config.Config, logger *zap.Logger) *Services {
	// 初始化WhatsApp客户端，未配置则通知降级
	var waClient *whatsapp.Client
	if cfg.WhatsApp.PhoneNumberID != "" && cfg.WhatsApp.AccessToken != "" {
		waClient = whatsapp.NewClient(cfg.WhatsApp.BaseURL, cfg.WhatsApp.PhoneNumberID, cfg.WhatsApp.AccessToken)
	} else {
		logger.Warn("WhatsApp not configured, notifications disabled")
	}

	// 初始化MinIO客户端，未配置则票据上传降级
	var minioClient *minio.Client
	if cfg.MinIO.Endpoint != "" {
		var err error
		minioClient, err = minio.New(cfg.MinIO.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
			Secure: cfg.MinIO.UseSSL,
		})
		if err != nil {
			logger.Warn("MinIO init failed, receipt storage disabled", zap.Error(err))
			minioClient = nil
		}
	}

	notify := NewNotifyService(repos.User, waClient, logger)

	return &Services{
		Auth:        NewAuthService(repos.User, rdb, cfg),
		User:        NewUserService(repos.User),
		Truck:       NewTruckService(repos.Truck),
		Driver:      NewDriverService(repos.Driver, repos.Truck),
		Trip:        NewTripService(repos.Trip, repos.Truck, repos.Driver, logger),
		Expense:     NewExpenseService(repos.Expense, minioClient, cfg.MinIO.Bucket),
		Customer:    NewCustomerService(repos.Customer),
		Invoice:     NewInvoiceService(repos.Invoice, repos.Customer),
		Employee:    NewEmployeeService(repos.Employee),
		Inventory:   NewInventoryService(repos.Inventory),
		Supplier:    NewSupplierService(repos.Supplier),
		EditRequest: NewEditRequestService(db, repos.EditRequest, notify, logger),
		Notify:      notify,
	}
}
