package public

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/voiceagent/gateway/internal/app"
)

// Register wires up the public gateway API routes.
func Register(fiberApp *fiber.App, container *app.Container) {
	handler := &gatewayHandler{container: container}
	group := fiberApp.Group("/api")
	group.Post("/speech-to-text", handler.speechToText)
	group.Post("/text-to-speech", handler.textToSpeech)
	group.Post("/chat", handler.chat)
}

type gatewayHandler struct {
	container *app.Container
}

func traceIDFromContext(c *fiber.Ctx) string {
	if v := c.Locals("requestid"); v != nil {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return uuid.NewString()
}
