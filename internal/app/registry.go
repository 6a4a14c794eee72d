package app

import (
	"leave-payroll/internal/employee"
	"leave-payroll/internal/leave"
	"leave-payroll/internal/messaging/kafka"
	"leave-payroll/internal/middleware"
	"leave-payroll/internal/notifier"
	"leave-payroll/internal/salaryrecord"
	"leave-payroll/internal/webhook"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg Config,
	gormDB *gorm.DB,
	rdb *redis.Client,
	hub *notifier.Hub,
	publisher notifier.Publisher,
) employee.Service {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	salaryRecordRepo := salaryrecord.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)

	// --- Services ---
	employeeService := employee.NewService(employeeRepo, rdb)
	leaveService := leave.NewService(gormDB, leaveRepo, employeeRepo, salaryRecordRepo, outboxRepo)
	salaryRecordService := salaryrecord.NewService(salaryRecordRepo)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService, publisher)
	leaveHandler := leave.NewHandler(leaveService, publisher)
	salaryRecordHandler := salaryrecord.NewHandler(salaryRecordService)
	webhookHandler := webhook.NewHandler()

	// --- Middleware ---
	router.Use(
		middleware.ContextLogger(zap.L()),
		middleware.RateLimitByIP(cfg.RateLimit(), cfg.RateLimitBurst),
	)
	mutating := []gin.HandlerFunc{middleware.Idempotency(rdb)}

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		employee.RegisterRoutes(api, employeeHandler, mutating...)
		leave.RegisterRoutes(api, leaveHandler, mutating...)
		salaryrecord.RegisterRoutes(api, salaryRecordHandler)
		webhook.RegisterRoutes(api, webhookHandler)
	}

	notifier.RegisterRoutes(router, notifier.NewWebSocketHandler(hub))

	return employeeService
}
