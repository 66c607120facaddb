package account

import (
	"github.com/gofiber/fiber/v2"
	"github.com/moneytracker/api/pkg/config"
	"github.com/moneytracker/api/pkg/middleware"
	accountsvc "github.com/moneytracker/api/pkg/service/account"
	authsvc "github.com/moneytracker/api/pkg/service/auth"
	"github.com/moneytracker/api/webapi/common"
)

// Routes registers the account endpoints behind JWT authentication.
//
// Routes:
//   - GET    /accounts      : List the caller's accounts by name.
//   - GET    /accounts/:id  : Fetch one account (null when absent).
//   - POST   /accounts      : Create an account.
//   - PATCH  /accounts/:id  : Partially update an account.
//   - DELETE /accounts/:id  : Delete an account and its transactions.
func Routes(
	app fiber.Router,
	svc *accountsvc.Service,
	authSvc *authsvc.Service,
	cfg *config.App,
) {
	g := app.Group("/accounts", middleware.JwtProtected(cfg.Jwt))
	g.Get("/", ListAccounts(svc, authSvc))
	g.Get("/:id", GetAccount(svc, authSvc))
	g.Post("/", CreateAccount(svc, authSvc))
	g.Patch("/:id", UpdateAccount(svc, authSvc))
	g.Delete("/:id", DeleteAccount(svc, authSvc))
}

// ListAccounts returns a Fiber handler listing the caller's accounts.
// @Summary List accounts
// @Tags accounts
// @Produce json
// @Success 200 {array} AccountResponse
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Router /accounts [get]
// @Security Bearer
func ListAccounts(svc *accountsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		accounts, err := svc.List(c.UserContext(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list accounts", err)
		}
		return c.JSON(toResponses(accounts))
	}
}

// GetAccount returns a Fiber handler for a single account.
// @Summary Get an account
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} AccountResponse "The account, or null"
// @Failure 400 {object} common.ProblemDetails "Invalid ID"
// @Router /accounts/{id} [get]
// @Security Bearer
func GetAccount(svc *accountsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := common.ParseID(c, "id")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account ID", err)
		}
		acc, err := svc.Get(c.UserContext(), userID, id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to get account", err)
		}
		if acc == nil {
			return c.JSON(nil)
		}
		return c.JSON(toResponse(acc))
	}
}

// CreateAccount returns a Fiber handler that opens a new account.
// @Summary Create an account
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body CreateAccountRequest true "Account"
// @Success 201 {object} AccountResponse
// @Failure 400 {object} common.ProblemDetails "Validation failed"
// @Router /accounts [post]
// @Security Bearer
func CreateAccount(svc *accountsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		input, err := common.BindAndValidate[CreateAccountRequest](c)
		if input == nil {
			return err
		}
		acc, err := svc.Create(c.UserContext(), userID, input.toCommand())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to create account", err)
		}
		return c.Status(fiber.StatusCreated).JSON(toResponse(acc))
	}
}

// UpdateAccount returns a Fiber handler applying a partial update.
// @Summary Update an account
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param request body UpdateAccountRequest true "Fields to change"
// @Success 200 {object} AccountResponse
// @Failure 400 {object} common.ProblemDetails "Validation failed"
// @Failure 404 {object} common.ProblemDetails "Not found"
// @Router /accounts/{id} [patch]
// @Security Bearer
func UpdateAccount(svc *accountsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := common.ParseID(c, "id")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account ID", err)
		}
		input, err := common.BindAndValidate[UpdateAccountRequest](c)
		if input == nil {
			return err
		}
		acc, err := svc.Update(c.UserContext(), userID, id, input.toPatch())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to update account", err)
		}
		return c.JSON(toResponse(acc))
	}
}

// DeleteAccount returns a Fiber handler that removes an account.
// @Summary Delete an account
// @Description Transactions recorded against the account are deleted with it.
// @Tags accounts
// @Param id path string true "Account ID"
// @Success 204
// @Failure 404 {object} common.ProblemDetails "Not found"
// @Router /accounts/{id} [delete]
// @Security Bearer
func DeleteAccount(svc *accountsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := common.ParseID(c, "id")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account ID", err)
		}
		if err := svc.Delete(c.UserContext(), userID, id); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to delete account", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
