// Package testutils provides an end-to-end suite that serves the full Fiber
// app over a real Postgres started with Testcontainers.
package testutils

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	infrarepo "github.com/moneytracker/api/infra/repository"
	"github.com/moneytracker/api/pkg/app"
	"github.com/moneytracker/api/pkg/config"
	"github.com/moneytracker/api/pkg/domain"
	"github.com/moneytracker/api/pkg/dto"
	pkgtestutils "github.com/moneytracker/api/pkg/testutils"
	"github.com/moneytracker/api/webapi"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// E2ETestSuite provides a test suite with a real Postgres database using Testcontainers
type E2ETestSuite struct {
	suite.Suite
	DB  *gorm.DB
	App *app.App
	Cfg *config.App

	fiber *fiber.App
}

// SetupSuite starts Postgres, applies migrations and builds the app once per suite.
func (s *E2ETestSuite) SetupSuite() {
	s.DB = pkgtestutils.StartPostgres(s.T())
	sqlDB, err := s.DB.DB()
	s.Require().NoError(err)

	s.Cfg = pkgtestutils.TestConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.App = app.New(&app.Deps{
		Uow:    infrarepo.NewUoW(s.DB),
		SQLDB:  sqlDB,
		Logger: logger,
	}, s.Cfg)
	s.fiber = webapi.SetupApp(s.App)
}

// CreateTestUser stores a user with a random email through the user service.
func (s *E2ETestSuite) CreateTestUser() *dto.UserRead {
	email := fmt.Sprintf("test_%s@example.com", uuid.NewString()[:8])
	u, err := s.App.UserService.CreateUser(context.Background(), email, "password123", nil, domain.RoleUser)
	s.Require().NoError(err)
	return u
}

// LoginUser signs an access token for u.
func (s *E2ETestSuite) LoginUser(u *dto.UserRead) string {
	token, err := s.App.AuthService.GenerateToken(u)
	s.Require().NoError(err)
	return token
}

// MakeRequest is a helper function to make HTTP requests in tests
func (s *E2ETestSuite) MakeRequest(method, path, body, token string) *http.Response {
	resp := pkgtestutils.MakeRequest(s.fiber, method, path, body, token)
	s.Require().NotNil(resp)
	return resp
}

// Now is the clock used by tests that need timestamps in request bodies.
func (s *E2ETestSuite) Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
