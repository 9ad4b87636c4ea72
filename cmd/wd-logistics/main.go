package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/codewithkin/wd-logistics/internal/config"
	"github.com/codewithkin/wd-logistics/internal/middleware"
	"github.com/codewithkin/wd-logistics/internal/office/entity"
	"github.com/codewithkin/wd-logistics/internal/office/handler"
	"github.com/codewithkin/wd-logistics/internal/office/repository"
	"github.com/codewithkin/wd-logistics/internal/office/service"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// 加载 .env 文件
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化日志
	zapLogger, err := initLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting wd-logistics service",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
	)

	// 初始化数据库
	db, err := initDatabase(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := entity.AutoMigrate(db); err != nil {
		zapLogger.Fatal("Failed to migrate database", zap.Error(err))
	}

	// 库存数量非负约束（AutoMigrate 不生成 CHECK）
	db.Exec("ALTER TABLE inventory_items DROP CONSTRAINT IF EXISTS inventory_items_quantity_check")
	db.Exec("ALTER TABLE inventory_items ADD CONSTRAINT inventory_items_quantity_check CHECK (quantity >= 0)")

	// 初始化Redis（刷新令牌存储）
	rdb := initRedis(cfg.Redis)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		zapLogger.Fatal("Failed to connect to redis", zap.Error(err))
	}

	// 仓库、服务、处理器
	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, db, rdb, cfg, zapLogger)
	handlers := handler.NewHandlers(services)

	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 创建路由
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(zapLogger))
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	// 注册路由
	registerRoutes(router, handlers, cfg)

	// 创建HTTP服务器
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// 启动服务器
	go func() {
		zapLogger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exited")
}

func initLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config

	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	switch cfg.Level {
	case "debug":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}

	return zapCfg.Build()
}

func initDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	return db, nil
}

func initRedis(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

func registerRoutes(r *gin.Engine, h *handler.Handlers, cfg *config.Config) {
	// 健康检查
	r.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/health/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 版本信息
	r.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":    Version,
			"build_time": BuildTime,
		})
	})

	// API v1
	v1 := r.Group("/api/v1")
	{
		// 认证 (无需登录)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// 需要认证的接口
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(cfg.JWT.Secret))
		{
			// 当前用户
			authorized.GET("/auth/me", h.Auth.Me)
			authorized.POST("/auth/logout", h.Auth.Logout)

			// 用户管理（仅管理员）
			users := authorized.Group("/users")
			users.Use(middleware.RequireRole(entity.RoleAdmin))
			{
				users.POST("", h.User.Create)
				users.GET("", h.User.List)
				users.PUT("/:id/role", h.User.SetRole)
			}

			// 车辆
			trucks := authorized.Group("/trucks")
			{
				trucks.POST("", h.Truck.Create)
				trucks.GET("", h.Truck.List)
				trucks.GET("/:id", h.Truck.Get)
				trucks.PUT("/:id", h.Truck.Update)
				trucks.DELETE("/:id", middleware.RequireRole(entity.RoleSupervisor), h.Truck.Delete)
			}

			// 司机
			drivers := authorized.Group("/drivers")
			{
				drivers.POST("", h.Driver.Create)
				drivers.GET("", h.Driver.List)
				drivers.GET("/:id", h.Driver.Get)
				drivers.PUT("/:id", h.Driver.Update)
				drivers.PUT("/:id/truck", h.Driver.AssignTruck)
				drivers.DELETE("/:id", middleware.RequireRole(entity.RoleSupervisor), h.Driver.Delete)
			}

			// 行程
			trips := authorized.Group("/trips")
			{
				trips.POST("", h.Trip.Create)
				trips.GET("", h.Trip.List)
				trips.GET("/:id", h.Trip.Get)
				trips.POST("/:id/dispatch", h.Trip.Dispatch)
				trips.POST("/:id/complete", h.Trip.Complete)
				trips.POST("/:id/cancel", h.Trip.Cancel)
				trips.DELETE("/:id", middleware.RequireRole(entity.RoleSupervisor), h.Trip.Delete)
			}

			// 费用
			expenses := authorized.Group("/expenses")
			{
				expenses.POST("", h.Expense.Create)
				expenses.GET("", h.Expense.List)
				expenses.GET("/:id", h.Expense.Get)
				expenses.PUT("/:id", h.Expense.Update)
				expenses.POST("/:id/receipt", h.Expense.UploadReceipt)
				expenses.GET("/:id/receipt-url", h.Expense.ReceiptURL)
				expenses.DELETE("/:id", middleware.RequireRole(entity.RoleSupervisor), h.Expense.Delete)
			}

			// 客户
			customers := authorized.Group("/customers")
			{
				customers.POST("", h.Customer.Create)
				customers.GET("", h.Customer.List)
				customers.GET("/:id", h.Customer.Get)
				customers.PUT("/:id", h.Customer.Update)
				customers.DELETE("/:id", middleware.RequireRole(entity.RoleSupervisor), h.Customer.Delete)
			}

			// 发票
			invoices := authorized.Group("/invoices")
			{
				invoices.POST("", h.Invoice.Create)
				invoices.GET("", h.Invoice.List)
				invoices.GET("/:id", h.Invoice.Get)
				invoices.POST("/:id/issue", h.Invoice.Issue)
				invoices.POST("/:id/paid", h.Invoice.MarkPaid)
				invoices.POST("/:id/void", middleware.RequireRole(entity.RoleSupervisor), h.Invoice.Void)
				invoices.DELETE("/:id", middleware.RequireRole(entity.RoleSupervisor), h.Invoice.Delete)
			}

			// 员工
			employees := authorized.Group("/employees")
			{
				employees.POST("", h.Employee.Create)
				employees.GET("", h.Employee.List)
				employees.GET("/:id", h.Employee.Get)
				employees.PUT("/:id", h.Employee.Update)
				employees.DELETE("/:id", middleware.RequireRole(entity.RoleSupervisor), h.Employee.Delete)
			}

			// 库存
			inventory := authorized.Group("/inventory")
			{
				inventory.POST("", h.Inventory.Create)
				inventory.GET("", h.Inventory.List)
				inventory.GET("/:id", h.Inventory.Get)
				inventory.PUT("/:id", h.Inventory.Update)
				inventory.POST("/:id/adjust", h.Inventory.Adjust)
				inventory.DELETE("/:id", middleware.RequireRole(entity.RoleSupervisor), h.Inventory.Delete)
			}

			// 供应商
			suppliers := authorized.Group("/suppliers")
			{
				suppliers.POST("", h.Supplier.Create)
				suppliers.GET("", h.Supplier.List)
				suppliers.GET("/:id", h.Supplier.Get)
				suppliers.PUT("/:id", h.Supplier.Update)
				suppliers.DELETE("/:id", middleware.RequireRole(entity.RoleSupervisor), h.Supplier.Delete)
			}

			// 修改申请（审批流）
			editRequests := authorized.Group("/edit-requests")
			{
				editRequests.POST("", h.EditRequest.Create)
				editRequests.GET("", h.EditRequest.List)
				editRequests.GET("/pending-count", h.EditRequest.PendingCount)
				editRequests.GET("/:id", h.EditRequest.Get)
				editRequests.POST("/:id/approve", middleware.RequireRole(entity.RoleSupervisor), h.EditRequest.Approve)
				editRequests.POST("/:id/reject", middleware.RequireRole(entity.RoleSupervisor), h.EditRequest.Reject)
			}
		}
	}
}
