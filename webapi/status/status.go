// Package status exposes liveness and readiness probes.
package status

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

const readyTimeout = 2 * time.Second

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Response is the body of both probes.
type Response struct {
	Status string `json:"status" example:"ok"`
}

// Routes registers the unauthenticated probes under /status.
func Routes(app fiber.Router, db Pinger) {
	g := app.Group("/status")
	g.Get("/health", Health())
	g.Get("/ready", Ready(db))
}

// Health reports that the process is serving requests.
// @Summary Liveness probe
// @Tags status
// @Produce json
// @Success 200 {object} Response
// @Router /status/health [get]
func Health() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(Response{Status: "ok"})
	}
}

// Ready reports whether the database answers a ping.
// @Summary Readiness probe
// @Tags status
// @Produce json
// @Success 200 {object} Response
// @Failure 503 {object} Response
// @Router /status/ready [get]
func Ready(db Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), readyTimeout)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			log.Warnw("readiness check failed", "error", err)
			return c.Status(fiber.StatusServiceUnavailable).JSON(Response{Status: "unavailable"})
		}
		return c.JSON(Response{Status: "ready"})
	}
}
