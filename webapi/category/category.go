// Package category exposes CRUD endpoints for income and expense categories.
package category

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/moneytracker/api/pkg/config"
	"github.com/moneytracker/api/pkg/dto"
	"github.com/moneytracker/api/pkg/middleware"
	authsvc "github.com/moneytracker/api/pkg/service/auth"
	categorysvc "github.com/moneytracker/api/pkg/service/category"
	"github.com/moneytracker/api/webapi/common"
)

// CreateCategoryRequest is the body of POST /categories.
type CreateCategoryRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	IsIncome bool   `json:"isIncome"`
}

// UpdateCategoryRequest is the body of PATCH /categories/{id}.
type UpdateCategoryRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	IsIncome *bool   `json:"isIncome,omitempty"`
}

// CategoryResponse is the JSON shape of a category.
type CategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Name      string    `json:"name"`
	IsIncome  bool      `json:"isIncome"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toResponse(c *dto.CategoryRead) *CategoryResponse {
	if c == nil {
		return nil
	}
	return &CategoryResponse{
		ID:        c.ID,
		UserID:    c.UserID,
		Name:      c.Name,
		IsIncome:  c.IsIncome,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// Routes registers /categories behind JWT authentication.
func Routes(
	app fiber.Router,
	svc *categorysvc.Service,
	authSvc *authsvc.Service,
	cfg *config.App,
) {
	g := app.Group("/categories", middleware.JwtProtected(cfg.Jwt))
	g.Get("/", ListCategories(svc, authSvc))
	g.Get("/:id", GetCategory(svc, authSvc))
	g.Post("/", CreateCategory(svc, authSvc))
	g.Patch("/:id", UpdateCategory(svc, authSvc))
	g.Delete("/:id", DeleteCategory(svc, authSvc))
}

// ListCategories godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {array} CategoryResponse
// @Router /categories [get]
// @Security Bearer
func ListCategories(svc *categorysvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		cats, err := svc.List(c.UserContext(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list categories", err)
		}
		out := make([]*CategoryResponse, 0, len(cats))
		for _, cat := range cats {
			out = append(out, toResponse(cat))
		}
		return c.JSON(out)
	}
}

// GetCategory godoc
// @Summary Get a category
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} CategoryResponse "The category, or null"
// @Router /categories/{id} [get]
// @Security Bearer
func GetCategory(svc *categorysvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := common.ParseID(c, "id")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid category ID", err)
		}
		cat, err := svc.Get(c.UserContext(), userID, id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to get category", err)
		}
		if cat == nil {
			return c.JSON(nil)
		}
		return c.JSON(toResponse(cat))
	}
}

// CreateCategory godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param request body CreateCategoryRequest true "Category"
// @Success 201 {object} CategoryResponse
// @Failure 400 {object} common.ProblemDetails
// @Router /categories [post]
// @Security Bearer
func CreateCategory(svc *categorysvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		input, err := common.BindAndValidate[CreateCategoryRequest](c)
		if input == nil {
			return err
		}
		cat, err := svc.Create(c.UserContext(), userID, dto.CategoryCreate{
			Name:     input.Name,
			IsIncome: input.IsIncome,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to create category", err)
		}
		return c.Status(fiber.StatusCreated).JSON(toResponse(cat))
	}
}

// UpdateCategory godoc
// @Summary Update a category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param request body UpdateCategoryRequest true "Fields to change"
// @Success 200 {object} CategoryResponse
// @Failure 404 {object} common.ProblemDetails
// @Router /categories/{id} [patch]
// @Security Bearer
func UpdateCategory(svc *categorysvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := common.ParseID(c, "id")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid category ID", err)
		}
		input, err := common.BindAndValidate[UpdateCategoryRequest](c)
		if input == nil {
			return err
		}
		cat, err := svc.Update(c.UserContext(), userID, id, dto.CategoryUpdate{
			Name:     input.Name,
			IsIncome: input.IsIncome,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to update category", err)
		}
		return c.JSON(toResponse(cat))
	}
}

// DeleteCategory godoc
// @Summary Delete a category
// @Description Transactions in the category keep a null categoryId.
// @Tags categories
// @Param id path string true "Category ID"
// @Success 204
// @Failure 404 {object} common.ProblemDetails
// @Router /categories/{id} [delete]
// @Security Bearer
func DeleteCategory(svc *categorysvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := common.ParseID(c, "id")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid category ID", err)
		}
		if err := svc.Delete(c.UserContext(), userID, id); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to delete category", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
