package handlers

import (
	"errors"

	"tienda/internal/services"

	"github.com/gofiber/fiber/v2"
)

// serviceError translates a service-layer error into an HTTP response.
// Conflict keeps the store's detail message and NotFound the identifier;
// invalid credentials are always surfaced generically, and anything else
// is an opaque 500 (the cause was already logged by the service).
func serviceError(c *fiber.Ctx, err error, message string) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": message,
			"error":   err.Error(),
		})
	case errors.Is(err, services.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": message,
			"error":   err.Error(),
		})
	case errors.Is(err, services.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Not valid credentials",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": message,
			"error":   services.ErrInternal.Error(),
		})
	}
}
