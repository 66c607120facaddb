// Package payee exposes CRUD endpoints for payees.
package payee

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/moneytracker/api/pkg/config"
	"github.com/moneytracker/api/pkg/dto"
	"github.com/moneytracker/api/pkg/middleware"
	authsvc "github.com/moneytracker/api/pkg/service/auth"
	payeesvc "github.com/moneytracker/api/pkg/service/payee"
	"github.com/moneytracker/api/webapi/common"
)

type CreatePayeeRequest struct {
	Name string  `json:"name" validate:"required,min=1,max=100"`
	Note *string `json:"note,omitempty" validate:"omitempty,max=500"`
}

type UpdatePayeeRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Note *string `json:"note,omitempty" validate:"omitempty,max=500"`
}

type PayeeResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Name      string    `json:"name"`
	Note      *string   `json:"note"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toResponse(p *dto.PayeeRead) *PayeeResponse {
	if p == nil {
		return nil
	}
	return &PayeeResponse{
		ID:        p.ID,
		UserID:    p.UserID,
		Name:      p.Name,
		Note:      p.Note,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// Routes registers /payees behind JWT authentication.
func Routes(
	app fiber.Router,
	svc *payeesvc.Service,
	authSvc *authsvc.Service,
	cfg *config.App,
) {
	g := app.Group("/payees", middleware.JwtProtected(cfg.Jwt))
	g.Get("/", ListPayees(svc, authSvc))
	g.Get("/:id", GetPayee(svc, authSvc))
	g.Post("/", CreatePayee(svc, authSvc))
	g.Patch("/:id", UpdatePayee(svc, authSvc))
	g.Delete("/:id", DeletePayee(svc, authSvc))
}

// ListPayees godoc
// @Summary List payees
// @Tags payees
// @Produce json
// @Success 200 {array} PayeeResponse
// @Router /payees [get]
// @Security Bearer
func ListPayees(svc *payeesvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		payees, err := svc.List(c.UserContext(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list payees", err)
		}
		out := make([]*PayeeResponse, 0, len(payees))
		for _, p := range payees {
			out = append(out, toResponse(p))
		}
		return c.JSON(out)
	}
}

// GetPayee godoc
// @Summary Get a payee
// @Tags payees
// @Produce json
// @Param id path string true "Payee ID"
// @Success 200 {object} PayeeResponse "The payee, or null"
// @Router /payees/{id} [get]
// @Security Bearer
func GetPayee(svc *payeesvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := common.ParseID(c, "id")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid payee ID", err)
		}
		p, err := svc.Get(c.UserContext(), userID, id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to get payee", err)
		}
		if p == nil {
			return c.JSON(nil)
		}
		return c.JSON(toResponse(p))
	}
}

// CreatePayee godoc
// @Summary Create a payee
// @Tags payees
// @Accept json
// @Produce json
// @Param request body CreatePayeeRequest true "Payee"
// @Success 201 {object} PayeeResponse
// @Failure 400 {object} common.ProblemDetails
// @Router /payees [post]
// @Security Bearer
func CreatePayee(svc *payeesvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		input, err := common.BindAndValidate[CreatePayeeRequest](c)
		if input == nil {
			return err
		}
		p, err := svc.Create(c.UserContext(), userID, dto.PayeeCreate{Name: input.Name, Note: input.Note})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to create payee", err)
		}
		return c.Status(fiber.StatusCreated).JSON(toResponse(p))
	}
}

// UpdatePayee godoc
// @Summary Update a payee
// @Tags payees
// @Accept json
// @Produce json
// @Param id path string true "Payee ID"
// @Param request body UpdatePayeeRequest true "Fields to change"
// @Success 200 {object} PayeeResponse
// @Failure 404 {object} common.ProblemDetails
// @Router /payees/{id} [patch]
// @Security Bearer
func UpdatePayee(svc *payeesvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := common.ParseID(c, "id")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid payee ID", err)
		}
		input, err := common.BindAndValidate[UpdatePayeeRequest](c)
		if input == nil {
			return err
		}
		p, err := svc.Update(c.UserContext(), userID, id, dto.PayeeUpdate{Name: input.Name, Note: input.Note})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to update payee", err)
		}
		return c.JSON(toResponse(p))
	}
}

// DeletePayee godoc
// @Summary Delete a payee
// @Tags payees
// @Param id path string true "Payee ID"
// @Success 204
// @Failure 404 {object} common.ProblemDetails
// @Router /payees/{id} [delete]
// @Security Bearer
func DeletePayee(svc *payeesvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := common.ParseID(c, "id")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid payee ID", err)
		}
		if err := svc.Delete(c.UserContext(), userID, id); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to delete payee", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
