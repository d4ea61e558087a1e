package models

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest carries a full conversation turn set. Temperature is a pointer
// so the boundary layer can distinguish "absent" (default 0.7) from an
// explicit zero.
type ChatRequest struct {
	Messages    []ChatMessage `json:"messages"`
	Model       string        `json:"model"`
	Temperature *float64      `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

// ChatResponse holds the assistant turn plus the provider's usage object,
// passed through opaquely when present.
type ChatResponse struct {
	Message ChatMessage    `json:"message"`
	Usage   map[string]any `json:"usage,omitempty"`
}
