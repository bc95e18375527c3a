package server

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/veugravata/backend/internal/auth"
	"github.com/veugravata/backend/internal/service"
	"github.com/veugravata/backend/internal/storage"
	"github.com/veugravata/backend/internal/validate"
)

// errorHandler maps service errors onto HTTP status codes with a JSON body.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		code = fe.Code
	case errors.Is(err, storage.ErrNotFound):
		code = fiber.StatusNotFound
	case errors.Is(err, validate.ErrInvalid):
		code = fiber.StatusUnprocessableEntity
	case errors.Is(err, auth.ErrInvalidCredentials):
		code = fiber.StatusUnauthorized
	case errors.Is(err, auth.ErrEmailExists):
		code = fiber.StatusConflict
	case errors.Is(err, auth.ErrWeakPassword):
		code = fiber.StatusUnprocessableEntity
	case errors.Is(err, service.ErrOverfunded):
		code = fiber.StatusConflict
	case errors.Is(err, service.ErrBadAmount):
		code = fiber.StatusUnprocessableEntity
	case errors.Is(err, service.ErrNotPublished):
		code = fiber.StatusNotFound
	case errors.Is(err, service.ErrNoEmail):
		code = fiber.StatusUnprocessableEntity
	}

	if code >= fiber.StatusInternalServerError {
		slog.Error("request failed", "path", c.Path(), "error", err)
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
