package server

import (
	"errors"

	"glimpse/internal/models"

	"github.com/gofiber/fiber/v2"
)

// statusFor maps an application error code to an HTTP status.
func statusFor(err error) int {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		return fiber.StatusInternalServerError
	}
	switch appErr.Code {
	case models.CodeValidation, models.CodeDuplicate:
		return fiber.StatusBadRequest
	case models.CodeUnauthenticated:
		return fiber.StatusUnauthorized
	case models.CodeForbidden:
		return fiber.StatusForbidden
	case models.CodeNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError converts a service error into the standard error body.
func respondError(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, statusFor(err), err)
}

// invalidBody is the shared error for unparseable request bodies.
func invalidBody() error {
	return models.NewValidationError("Invalid request body")
}

// paramID parses a positive integer route parameter.
func paramID(c *fiber.Ctx, name string) (uint, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, models.NewValidationError("Invalid " + name)
	}
	return uint(id), nil
}

// currentUserID returns the authenticated caller's ID set by AuthRequired.
func currentUserID(c *fiber.Ctx) uint {
	id, _ := c.Locals("userID").(uint)
	return id
}
