package webapi_test

import (
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/moneytracker/api/internal/fixtures"
	"github.com/moneytracker/api/pkg/app"
	"github.com/moneytracker/api/pkg/testutils"
	"github.com/moneytracker/api/webapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, maxRequests int, window time.Duration, trusted ...string) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cfg := testutils.TestConfig()
	cfg.RateLimit.MaxRequests = maxRequests
	cfg.RateLimit.Window = window
	cfg.Server.ProxyHeader = fiber.HeaderXForwardedFor
	cfg.Server.TrustedProxies = trusted
	a := app.New(&app.Deps{
		Uow:    fixtures.NewMockUnitOfWork(t),
		SQLDB:  db,
		Logger: slog.Default(),
	}, cfg)
	return webapi.SetupApp(a), mock
}

func TestRateLimit(t *testing.T) {
	fiberApp, _ := newTestApp(t, 5, time.Second)

	// Send requests until rate limit is hit
	for i := 0; i < 6; i++ {
		resp := testutils.MakeRequest(fiberApp, fiber.MethodGet, "/me", "", "")
		defer resp.Body.Close() //nolint: errcheck

		if i < 5 {
			assert.NotEqual(t, fiber.StatusTooManyRequests, resp.StatusCode, "request %d", i+1)
		} else {
			assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode, "request %d", i+1)
			assert.Equal(t, "application/problem+json", resp.Header.Get(fiber.HeaderContentType))
		}
	}

	// Wait for the rate limit window to reset
	time.Sleep(1100 * time.Millisecond)

	resp := testutils.MakeRequest(fiberApp, fiber.MethodGet, "/me", "", "")
	defer resp.Body.Close() //nolint: errcheck
	assert.NotEqual(t, fiber.StatusTooManyRequests, resp.StatusCode)
}

func sendFrom(t *testing.T, fiberApp *fiber.App, forwardedFor string) int {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
	req.Header.Set(fiber.HeaderXForwardedFor, forwardedFor)
	resp, err := fiberApp.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint: errcheck
	return resp.StatusCode
}

func TestRateLimitPerForwardedClient(t *testing.T) {
	// app.Test connections come from 0.0.0.0
	fiberApp, _ := newTestApp(t, 1, time.Minute, "0.0.0.0")

	assert.NotEqual(t, fiber.StatusTooManyRequests, sendFrom(t, fiberApp, "203.0.113.1, 10.0.0.1"))
	assert.Equal(t, fiber.StatusTooManyRequests, sendFrom(t, fiberApp, "203.0.113.1, 10.0.0.1"))
	assert.NotEqual(t, fiber.StatusTooManyRequests, sendFrom(t, fiberApp, "203.0.113.2, 10.0.0.1"))
}

func TestRateLimitIgnoresForwardedForFromUntrustedPeer(t *testing.T) {
	fiberApp, _ := newTestApp(t, 1, time.Minute)

	assert.NotEqual(t, fiber.StatusTooManyRequests, sendFrom(t, fiberApp, "203.0.113.1"))
	assert.Equal(t, fiber.StatusTooManyRequests, sendFrom(t, fiberApp, "203.0.113.2"))
	assert.Equal(t, fiber.StatusTooManyRequests, sendFrom(t, fiberApp, "198.51.100.7"))
}

func TestProbesAreNotRateLimited(t *testing.T) {
	fiberApp, mock := newTestApp(t, 1, time.Minute)
	mock.ExpectPing()
	mock.ExpectPing()

	for i := 0; i < 2; i++ {
		resp := testutils.MakeRequest(fiberApp, fiber.MethodGet, "/status/ready", "", "")
		defer resp.Body.Close() //nolint: errcheck
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSecurityHeadersAndRequestID(t *testing.T) {
	fiberApp, _ := newTestApp(t, 100, time.Minute)

	resp := testutils.MakeRequest(fiberApp, fiber.MethodGet, "/status/health", "", "")
	defer resp.Body.Close() //nolint: errcheck
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
	assert.Equal(t, "nosniff", resp.Header.Get(fiber.HeaderXContentTypeOptions))
}

func TestUnknownRouteIsProblemJSON(t *testing.T) {
	fiberApp, _ := newTestApp(t, 100, time.Minute)

	resp := testutils.MakeRequest(fiberApp, fiber.MethodGet, "/nope", "", "")
	defer resp.Body.Close() //nolint: errcheck
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "application/problem+json", resp.Header.Get(fiber.HeaderContentType))
}
