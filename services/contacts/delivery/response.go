package delivery

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"contacts/config"
	"contacts/domain"
)

func statusFor(err error) int {
	switch domain.ErrorKind(err) {
	case domain.KindMalformedInput, domain.KindValidationFailed, domain.KindMissingField, domain.KindUnknownSortField:
		return fiber.StatusBadRequest
	case domain.KindNotFound:
		return fiber.StatusNotFound
	case domain.KindConflict:
		return fiber.StatusConflict
	case domain.KindStoreUnavailable:
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

func respondError(c *fiber.Ctx, functionName, message string, err error) error {
	status := statusFor(err)
	config.PrintLogInfo(status, functionName)
	return c.Status(status).JSON(fiber.Map{
		"success":    false,
		"error_kind": domain.ErrorKind(err),
		"error":      err.Error(),
		"message":    message,
	})
}

func respondData(c *fiber.Ctx, functionName string, status int, message string, data interface{}) error {
	config.PrintLogInfo(status, functionName)
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func parseBody(c *fiber.Ctx, payload interface{}) error {
	if err := c.BodyParser(payload); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMalformedInput, err)
	}
	return nil
}

// RegisterNotFound installs the catch-all route; it must be registered
// after every handler group.
func RegisterNotFound(app *fiber.App) {
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "URL в запросе не соответствует ни одному из маршрутов",
			"message": "Route not found",
		})
	})
}
