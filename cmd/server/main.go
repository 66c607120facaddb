package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	log "github.com/charmbracelet/log"
	"github.com/moneytracker/api/infra/initializer"
	"github.com/moneytracker/api/pkg/app"
	"github.com/moneytracker/api/pkg/config"
	"github.com/moneytracker/api/webapi"
)

// @title Money Tracker API
// @version 1.0.0
// @description Personal finance ledger: transactions, accounts, categories and payees
// @host localhost:3000
// @BasePath /
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description "Enter your Bearer token in the format: `Bearer {token}`"
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	// Initialize all dependencies
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	logger := deps.Logger

	fiberApp := webapi.SetupApp(app.New(deps, cfg))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "env", cfg.Env, "address", addr)
		serveErr <- fiberApp.Listen(addr)
	}()

	select {
	case err = <-serveErr:
		logger.Error("Server stopped", "error", err)
	case <-ctx.Done():
		logger.Info("Shutting down", "timeout", cfg.Server.ShutdownTimeout)
		err = fiberApp.ShutdownWithTimeout(cfg.Server.ShutdownTimeout)
	}

	return errors.Join(err, closeDeps(deps, logger))
}

func closeDeps(deps *app.Deps, logger *slog.Logger) error {
	if err := deps.Close(); err != nil {
		logger.Error("Failed to release resources", "error", err)
		return err
	}
	logger.Info("Resources released")
	return nil
}
