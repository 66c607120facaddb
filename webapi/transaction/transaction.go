package transaction

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/moneytracker/api/pkg/config"
	"github.com/moneytracker/api/pkg/middleware"
	authsvc "github.com/moneytracker/api/pkg/service/auth"
	txsvc "github.com/moneytracker/api/pkg/service/transaction"
	"github.com/moneytracker/api/webapi/common"
)

// Routes registers the transaction endpoints. Every route requires a bearer
// token; the owning user always comes from the token, never from the URL.
//
// Routes:
//   - GET    /transactions      : List the caller's 50 most recent transactions.
//   - GET    /transactions/:id  : Fetch one transaction (null when absent).
//   - POST   /transactions      : Create a transaction.
//   - PATCH  /transactions/:id  : Partially update a transaction.
//   - DELETE /transactions/:id  : Delete a transaction.
func Routes(
	app fiber.Router,
	svc *txsvc.Service,
	authSvc *authsvc.Service,
	cfg *config.App,
) {
	g := app.Group("/transactions", middleware.JwtProtected(cfg.Jwt))
	g.Get("/", ListTransactions(svc, authSvc))
	g.Get("/:id", GetTransaction(svc, authSvc))
	g.Post("/", CreateTransaction(svc, authSvc))
	g.Patch("/:id", UpdateTransaction(svc, authSvc))
	g.Delete("/:id", DeleteTransaction(svc, authSvc))
}

// ListTransactions returns a Fiber handler listing the caller's transactions.
// @Summary List transactions
// @Description Returns at most 50 transactions of the authenticated user, newest occurredAt first.
// @Tags transactions
// @Produce json
// @Success 200 {array} TransactionResponse
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /transactions [get]
// @Security Bearer
func ListTransactions(svc *txsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		txs, err := svc.List(c.UserContext(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list transactions", err)
		}
		return c.JSON(toResponses(txs))
	}
}

// GetTransaction returns a Fiber handler for a single transaction.
// Absence is not an error: the body is null.
// @Summary Get a transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} TransactionResponse "The transaction, or null"
// @Failure 400 {object} common.ProblemDetails "Invalid ID"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Router /transactions/{id} [get]
// @Security Bearer
func GetTransaction(svc *txsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := common.ParseID(c, "id")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid transaction ID", err)
		}
		tx, err := svc.Get(c.UserContext(), userID, id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to get transaction", err)
		}
		if tx == nil {
			return c.JSON(nil)
		}
		return c.JSON(toResponse(tx))
	}
}

// CreateTransaction returns a Fiber handler that records a new transaction.
// @Summary Create a transaction
// @Description The amount is rounded half away from zero to two decimals. Its sign is stored as sent.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body CreateTransactionRequest true "Transaction"
// @Success 201 {object} TransactionResponse
// @Failure 400 {object} common.ProblemDetails "Validation failed"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 422 {object} common.ProblemDetails "Unknown account, category or payee"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /transactions [post]
// @Security Bearer
func CreateTransaction(svc *txsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		input, err := common.BindAndValidate[CreateTransactionRequest](c)
		if input == nil {
			return err
		}
		tx, err := svc.Create(c.UserContext(), userID, input.toCommand())
		if err != nil {
			log.Errorf("Failed to create transaction: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to create transaction", err)
		}
		return c.Status(fiber.StatusCreated).JSON(toResponse(tx))
	}
}

// UpdateTransaction returns a Fiber handler applying a partial update.
// @Summary Update a transaction
// @Description Any subset of fields; an empty object only refreshes updatedAt. accountId cannot be changed.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body UpdateTransactionRequest true "Fields to change"
// @Success 200 {object} TransactionResponse
// @Failure 400 {object} common.ProblemDetails "Validation failed"
// @Failure 404 {object} common.ProblemDetails "Not found"
// @Failure 422 {object} common.ProblemDetails "Unknown category or payee"
// @Router /transactions/{id} [patch]
// @Security Bearer
func UpdateTransaction(svc *txsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := common.ParseID(c, "id")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid transaction ID", err)
		}
		input, err := common.BindAndValidate[UpdateTransactionRequest](c)
		if input == nil {
			return err
		}
		tx, err := svc.Update(c.UserContext(), userID, id, input.toPatch())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to update transaction", err)
		}
		return c.JSON(toResponse(tx))
	}
}

// DeleteTransaction returns a Fiber handler that removes a transaction.
// @Summary Delete a transaction
// @Tags transactions
// @Param id path string true "Transaction ID"
// @Success 204
// @Failure 400 {object} common.ProblemDetails "Invalid ID"
// @Failure 404 {object} common.ProblemDetails "Not found"
// @Router /transactions/{id} [delete]
// @Security Bearer
func DeleteTransaction(svc *txsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := common.ParseID(c, "id")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid transaction ID", err)
		}
		if err := svc.Delete(c.UserContext(), userID, id); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to delete transaction", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
