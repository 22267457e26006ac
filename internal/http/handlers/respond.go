package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"userbase/internal/domain"
	applog "userbase/internal/log"
)

func fail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// failErr maps typed domain errors to status codes. Anything untyped is
// a storage or programming fault: logged, surfaced as a bare 500.
func failErr(c *fiber.Ctx, action string, err error) error {
	switch {
	case errors.Is(err, domain.ErrConflict):
		return fail(c, fiber.StatusConflict, "email already in use")
	case errors.Is(err, domain.ErrUnauthorized):
		return fail(c, fiber.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		return fail(c, fiber.StatusNotFound, "user not found")
	case errors.Is(err, domain.ErrBadRequest):
		return fail(c, fiber.StatusBadRequest, "invalid input")
	default:
		applog.Error(c, action, err, nil)
		return fail(c, fiber.StatusInternalServerError, "internal server error")
	}
}
