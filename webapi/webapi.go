// Package webapi assembles the HTTP surface of the money tracker.
// It is organized into sub-packages per resource:
// - transaction: the transaction ledger
// - account, category, payee: reference data owned by a user
// - user: the caller's profile
// - status: liveness and readiness probes
package webapi

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	_ "github.com/moneytracker/api/cmd/server/swagger"
	"github.com/moneytracker/api/pkg/app"
	accountweb "github.com/moneytracker/api/webapi/account"
	categoryweb "github.com/moneytracker/api/webapi/category"
	"github.com/moneytracker/api/webapi/common"
	payeeweb "github.com/moneytracker/api/webapi/payee"
	"github.com/moneytracker/api/webapi/status"
	transactionweb "github.com/moneytracker/api/webapi/transaction"
	userweb "github.com/moneytracker/api/webapi/user"
)

// SetupApp Initialize Fiber with custom configuration
func SetupApp(app *app.App) *fiber.App {
	cfg := app.Config

	fiberApp := fiber.New(fiber.Config{
		AppName:                 "moneytracker",
		ErrorHandler:            common.ErrorHandler,
		ProxyHeader:             cfg.Server.ProxyHeader,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          cfg.Server.TrustedProxies,
		EnableIPValidation:      true,
	})

	fiberApp.Use(recover.New())
	fiberApp.Use(requestid.New())
	fiberApp.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	fiberApp.Use(helmet.New())
	fiberApp.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Cors.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
	}))

	// Configure rate limiting middleware
	// c.IP() reads the proxy header only when the peer is a trusted proxy
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit.MaxRequests,
		Expiration: cfg.RateLimit.Window,
		Storage:    app.Deps.RateLimitStorage,
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/status/")
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(
				c,
				"Too Many Requests",
				errors.New("rate limit exceeded"),
				"Rate limit exceeded",
				fiber.StatusTooManyRequests,
			)
		},
	}))

	fiberApp.Get("/docs/*", swagger.New(swagger.Config{
		TryItOutEnabled:      true,
		PersistAuthorization: true,
	}))

	status.Routes(fiberApp, app.Deps.SQLDB)
	transactionweb.Routes(fiberApp, app.TransactionService, app.AuthService, cfg)
	accountweb.Routes(fiberApp, app.AccountService, app.AuthService, cfg)
	categoryweb.Routes(fiberApp, app.CategoryService, app.AuthService, cfg)
	payeeweb.Routes(fiberApp, app.PayeeService, app.AuthService, cfg)
	userweb.Routes(fiberApp, app.UserService, app.AuthService, cfg)
	return fiberApp
}
