package delivery

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type healthHandler struct {
	db *gorm.DB
}

// NewHealthHandler exposes store reachability for load balancers and
// readiness probes.
func NewHealthHandler(app *fiber.App, database *gorm.DB) {
	handler := &healthHandler{
		db: database,
	}

	app.Get("/healthz", handler.Health)
}

func (hh *healthHandler) Health(c *fiber.Ctx) error {
	sqlDB, err := hh.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Context())
	}
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "store unavailable",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "ok",
	})
}
