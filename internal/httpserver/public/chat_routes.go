package public

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/voiceagent/gateway/internal/httpserver/httputil"
	"github.com/voiceagent/gateway/internal/models"
)

// chatEnvelope uses pointers for the optional fields so an absent field can
// take the configured default while an explicit zero still fails validation.
type chatEnvelope struct {
	Messages    []models.ChatMessage `json:"messages"`
	Model       *string              `json:"model"`
	Temperature *float64             `json:"temperature"`
	MaxTokens   *int                 `json:"max_tokens"`
}

func (h *gatewayHandler) chat(c *fiber.Ctx) error {
	var payload chatEnvelope
	if err := c.BodyParser(&payload); err != nil {
		return httputil.WriteError(c, fiber.StatusBadRequest, "invalid request body")
	}

	cfg := h.container.Config.Chat
	req := models.ChatRequest{
		Messages:    payload.Messages,
		Model:       cfg.Model,
		Temperature: payload.Temperature,
		MaxTokens:   cfg.MaxTokens,
	}
	if payload.Model != nil {
		req.Model = strings.TrimSpace(*payload.Model)
	}
	if payload.MaxTokens != nil {
		req.MaxTokens = *payload.MaxTokens
	}
	if payload.Temperature == nil {
		temp := cfg.Temperature
		req.Temperature = &temp
	}

	resp, err := h.container.Dispatcher.Chat(c.UserContext(), req)
	if err != nil {
		return writeDispatchError(c, err, "chat")
	}
	return c.JSON(resp)
}
