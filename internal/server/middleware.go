package server

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/veugravata/backend/internal/auth"
	"github.com/veugravata/backend/internal/metrics"
)

const userIDKey = "userID"

// RequireAuth validates the bearer token and stores the caller's user ID
// in the request locals.
func RequireAuth(jwt *auth.JWTManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing authorization header")
		}
		token := strings.TrimPrefix(header, "Bearer ")
		if token == header {
			return fiber.NewError(fiber.StatusUnauthorized, "malformed authorization header")
		}
		claims, err := jwt.Validate(token)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}
		c.Locals(userIDKey, claims.UserID)
		return c.Next()
	}
}

// currentUserID returns the authenticated user's ID set by RequireAuth.
func currentUserID(c *fiber.Ctx) string {
	id, _ := c.Locals(userIDKey).(string)
	return id
}

// requestLogger logs each request and records request metrics.
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		route := c.Route().Path
		elapsed := time.Since(start)

		metrics.RequestsTotal.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		metrics.RequestDuration.WithLabelValues(c.Method(), route).Observe(elapsed.Seconds())

		slog.Info("request",
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"duration", elapsed,
		)
		return err
	}
}
