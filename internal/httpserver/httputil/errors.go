package httputil

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// WriteError standardizes JSON error responses across the public API.
func WriteError(c *fiber.Ctx, status int, msg string) error {
	return WriteErrorDetails(c, status, msg, "")
}

// WriteErrorDetails adds an optional details field carrying upstream
// diagnostics alongside the headline message.
func WriteErrorDetails(c *fiber.Ctx, status int, msg, details string) error {
	if msg == "" {
		msg = http.StatusText(status)
		if msg == "" {
			msg = "unknown error"
		}
	}
	body := fiber.Map{
		"error":  msg,
		"status": status,
	}
	if details != "" {
		body["details"] = details
	}
	return c.Status(status).JSON(body)
}
