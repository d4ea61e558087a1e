package dispatch

import (
	"context"
	"strings"
	"time"

	"github.com/voiceagent/gateway/internal/models"
	"github.com/voiceagent/gateway/internal/providers"
)

// Chat validates the conversation and forwards it to the chat provider.
// Defaults for absent fields are the boundary layer's job; by the time a
// request lands here every field is explicit and gets validated as given.
func (d *Dispatcher) Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error) {
	if len(req.Messages) == 0 {
		return models.ChatResponse{}, badRequest("messages array is required and must be an array")
	}
	if strings.TrimSpace(req.Model) == "" {
		return models.ChatResponse{}, badRequest("model must be a non-empty string")
	}
	if req.Temperature != nil && (*req.Temperature < 0 || *req.Temperature > 2) {
		return models.ChatResponse{}, badRequest("temperature must be a number between 0 and 2")
	}
	if req.MaxTokens <= 0 {
		return models.ChatResponse{}, badRequest("max_tokens must be a positive number")
	}

	d.logger.Info("dispatching chat completion",
		"model", req.Model, "messages", len(req.Messages), "max_tokens", req.MaxTokens)

	start := time.Now()
	resp, err := d.set.Chat().Chat(ctx, req)
	if err != nil {
		err = mapUpstreamError("chat", err)
	}
	d.observe(string(providers.TagGroq), "chat", start, err)
	if err != nil {
		return models.ChatResponse{}, err
	}
	return resp, nil
}
