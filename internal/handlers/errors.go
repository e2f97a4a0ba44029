package handlers

import (
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/daily-tracker/internal/dto"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
)

func errorJSON(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Error: message})
}

// internalError logs err, reports it to Sentry when enabled and answers with
// a fixed 500 message.
func internalError(c *fiber.Ctx, message string, err error, attrs ...any) error {
	attrs = append(attrs,
		"error", err.Error(),
		"request_id", requestID(c),
		"method", c.Method(),
		"path", c.Path(),
	)
	slog.Error(message, attrs...)

	if hub := sentryfiber.GetHubFromContext(c); hub != nil {
		hub.CaptureException(err)
	}
	return errorJSON(c, fiber.StatusInternalServerError, message)
}

func forbidden(c *fiber.Ctx) error {
	return errorJSON(c, fiber.StatusForbidden, "Forbidden")
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return ""
}
