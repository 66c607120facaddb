// Package testutils holds helpers shared by handler and integration tests.
package testutils

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/moneytracker/api/infra/repository"
	"github.com/moneytracker/api/internal/migrations"
	"github.com/moneytracker/api/pkg/config"
	"github.com/moneytracker/api/pkg/domain"
	"github.com/moneytracker/api/pkg/dto"
	authsvc "github.com/moneytracker/api/pkg/service/auth"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestConfig returns an App config usable without any environment.
func TestConfig() *config.App {
	return &config.App{
		Env:       "test",
		Server:    config.Server{Host: "127.0.0.1", Port: 3000, ShutdownTimeout: time.Second},
		Log:       config.Log{Level: "error", Format: "text", Prefix: "[test]"},
		Jwt:       config.Jwt{AccessSecret: "test-access-secret", Expiry: time.Hour},
		RateLimit: config.RateLimit{MaxRequests: 1000, Window: time.Minute},
		Cors:      config.Cors{AllowOrigins: "*"},
	}
}

// TokenFor signs an access token for userID.
func TokenFor(t *testing.T, authSvc *authsvc.Service, userID uuid.UUID) string {
	t.Helper()
	token, err := authSvc.GenerateToken(&dto.UserRead{
		ID:    userID,
		Email: userID.String() + "@example.com",
		Role:  domain.RoleUser,
	})
	require.NoError(t, err)
	return token
}

// MakeRequest is a helper for making HTTP requests in tests
func MakeRequest(app *fiber.App, method, path, body, token string) *http.Response {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, 10000)
	if err != nil {
		panic(err) // For standalone tests, panic on error
	}
	return resp
}

// StartPostgres runs a throwaway Postgres container, applies the embedded
// migrations and returns a GORM handle configured like production.
func StartPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(
		ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("moneytracker"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
		NowFunc:                repository.NowFunc,
		TranslateError:         true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, migrations.Up(sqlDB))
	return db
}
