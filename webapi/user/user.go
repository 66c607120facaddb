package user

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/moneytracker/api/pkg/config"
	"github.com/moneytracker/api/pkg/dto"
	"github.com/moneytracker/api/pkg/middleware"
	authsvc "github.com/moneytracker/api/pkg/service/auth"
	usersvc "github.com/moneytracker/api/pkg/service/user"
	"github.com/moneytracker/api/webapi/common"
)

func Routes(app fiber.Router, userSvc *usersvc.Service, authSvc *authsvc.Service, cfg *config.App) {
	app.Get("/me", middleware.JwtProtected(cfg.Jwt), GetMe(userSvc, authSvc))
	app.Patch("/me", middleware.JwtProtected(cfg.Jwt), UpdateMe(userSvc, authSvc))
}

// GetMe returns a Fiber handler for the authenticated user's profile.
// @Summary Current user
// @Description Profile of the user identified by the bearer token
// @Tags users
// @Produce json
// @Success 200 {object} MeResponse
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /me [get]
// @Security Bearer
func GetMe(userSvc *usersvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		u, err := userSvc.Me(c.UserContext(), userID)
		if err != nil {
			log.Warnf("Profile lookup failed for %s: %v", userID, err)
			return common.ProblemDetailsJSON(c, "User not found", err)
		}
		return c.JSON(toMeResponse(u))
	}
}

// UpdateMe returns a Fiber handler that changes the caller's display name.
// @Summary Update current user
// @Tags users
// @Accept json
// @Produce json
// @Param request body UpdateMeInput true "Profile fields"
// @Success 200 {object} MeResponse
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Router /me [patch]
// @Security Bearer
func UpdateMe(userSvc *usersvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		input, err := common.BindAndValidate[UpdateMeInput](c)
		if input == nil {
			return err
		}
		u, err := userSvc.UpdateMe(c.UserContext(), userID, dto.UserUpdate{Name: input.Name})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't update user", err)
		}
		return c.JSON(toMeResponse(u))
	}
}
