package app

import (
	"database/sql"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/moneytracker/api/pkg/config"
	"github.com/moneytracker/api/pkg/repository"
	"github.com/moneytracker/api/pkg/service/account"
	"github.com/moneytracker/api/pkg/service/auth"
	"github.com/moneytracker/api/pkg/service/category"
	"github.com/moneytracker/api/pkg/service/payee"
	"github.com/moneytracker/api/pkg/service/transaction"
	"github.com/moneytracker/api/pkg/service/user"
)

// Deps contains the infrastructure the services and HTTP layer are built on.
type Deps struct {
	Uow    repository.UnitOfWork
	SQLDB  *sql.DB
	Logger *slog.Logger
	// RateLimitStorage backs the limiter; nil keeps counters in memory.
	RateLimitStorage fiber.Storage
}

// Close releases the rate-limit storage and the SQL pool.
func (d *Deps) Close() error {
	var errs []error
	if d.RateLimitStorage != nil {
		errs = append(errs, d.RateLimitStorage.Close())
	}
	if d.SQLDB != nil {
		errs = append(errs, d.SQLDB.Close())
	}
	return errors.Join(errs...)
}

type App struct {
	Deps               *Deps
	Config             *config.App
	AuthService        *auth.Service
	UserService        *user.Service
	TransactionService *transaction.Service
	AccountService     *account.Service
	CategoryService    *category.Service
	PayeeService       *payee.Service
}

func New(deps *Deps, cfg *config.App) *App {
	return &App{
		Deps:               deps,
		Config:             cfg,
		AuthService:        auth.New(cfg.Jwt, deps.Logger),
		UserService:        user.New(deps.Uow, deps.Logger),
		TransactionService: transaction.New(deps.Uow, deps.Logger),
		AccountService:     account.New(deps.Uow, deps.Logger),
		CategoryService:    category.New(deps.Uow, deps.Logger),
		PayeeService:       payee.New(deps.Uow, deps.Logger),
	}
}
