package initializer

import (
	"context"
	"fmt"
	"time"

	"github.com/moneytracker/api/infra"
	"github.com/moneytracker/api/infra/cache"
	infra_repository "github.com/moneytracker/api/infra/repository"
	"github.com/moneytracker/api/internal/migrations"
	"github.com/moneytracker/api/pkg/app"
	"github.com/moneytracker/api/pkg/config"
)

// InitializeDependencies initializes all the application dependencies.
// The caller owns the result and must call deps.Close on shutdown.
func InitializeDependencies(cfg *config.App) (
	deps *app.Deps,
	err error,
) {
	deps = &app.Deps{}
	logger := SetupLogger(cfg.Log)
	deps.Logger = logger

	// Initialize database
	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return nil, err
	}
	deps.SQLDB, err = db.DB()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = deps.Close()
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = deps.SQLDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	if cfg.DB.AutoMigrate {
		logger.Info("Applying database migrations")
		if err = migrations.Up(deps.SQLDB); err != nil {
			return nil, fmt.Errorf("failed to apply migrations: %w", err)
		}
	}

	// Initialize unit of work
	deps.Uow = infra_repository.NewUoW(db)

	// Redis is optional; without it the limiter keeps its counters in memory.
	if cfg.Redis.Enabled() {
		storage, rerr := cache.NewRedisStorage(cfg.Redis, logger)
		if rerr != nil {
			err = fmt.Errorf("failed to create Redis storage: %w", rerr)
			return nil, err
		}
		deps.RateLimitStorage = storage
		logger.Info("Rate limiter backed by Redis")
	} else {
		logger.Info("Rate limiter using in-memory storage")
	}

	return deps, nil
}
