package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"shopdesk/internal/domain"
	applog "shopdesk/internal/log"
)

// fail maps the service error taxonomy onto HTTP statuses. Anything outside
// the taxonomy is logged and hidden behind a generic 500.
func fail(c *fiber.Ctx, action string, err error) error {
	switch {
	case domain.IsValidation(err):
		applog.Security(c, action+".invalid", map[string]any{"reason": err.Error()})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, domain.ErrDuplicateID):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	default:
		applog.Error(c, action+".fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
}

func badBody(c *fiber.Ctx, action string) error {
	applog.Security(c, action+".badbody", nil)
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed request body"})
}

func absent(c *fiber.Ctx, id string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no record with id " + id})
}
