package app

import (
	"context"

	"leave-payroll/internal/notifier"
	"leave-payroll/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App owns the long-lived connections behind the HTTP server.
type App struct {
	DB    *gorm.DB
	Redis *redis.Client
	Hub   *notifier.Hub

	cancel context.CancelFunc
}

func BuildApp(router *gin.Engine, cfg Config) (*App, error) {
	logger := zap.L().Named("app")

	// 1. Setup Infrastructure
	gormDB, err := connection.ConnectGORMWithRetry(cfg.Postgres(), cfg.MaxRetries)
	if err != nil {
		return nil, err
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.MaxRetries)
	if err != nil {
		closeDB(gormDB)
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	hub := notifier.NewHub(0)
	broadcaster := notifier.NewRedisBroadcaster(rdb, cfg.NotifyChannel, hub)
	if err := broadcaster.Start(ctx); err != nil {
		cancel()
		_ = rdb.Close()
		closeDB(gormDB)
		return nil, err
	}

	// 2. Register Modules & Routes
	employees := registerModules(router, cfg, gormDB, rdb, hub, broadcaster)

	if cfg.SeedDemoData {
		n, err := employees.SeedDefaults(ctx)
		if err != nil {
			logger.Warn("seed demo employees failed", zap.Error(err))
		} else if n > 0 {
			logger.Info("seeded demo employees", zap.Int("count", n))
		}
	}

	return &App{DB: gormDB, Redis: rdb, Hub: hub, cancel: cancel}, nil
}

// Close stops the change relay and releases connections.
func (a *App) Close(context.Context) {
	a.cancel()
	if err := a.Redis.Close(); err != nil {
		zap.L().Named("app").Warn("close redis failed", zap.Error(err))
	}
	closeDB(a.DB)
}

func closeDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		zap.L().Named("app").Warn("close database failed", zap.Error(err))
	}
}
