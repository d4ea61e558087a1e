// Package groq drives the Groq API through the official OpenAI SDK; the
// upstream is wire-compatible, only the base URL and credential differ.
package groq

import (
	"bytes"
	"context"
	"errors"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/packages/param"

	"github.com/voiceagent/gateway/internal/models"
)

const defaultBaseURL = "https://api.groq.com/openai/v1"

// ErrEmptyCompletion is returned when the upstream answers 2xx with no
// assistant content.
var ErrEmptyCompletion = errors.New("groq: no response received")

// ErrEmptyTranscript is returned when a 2xx transcription body has no text.
var ErrEmptyTranscript = errors.New("groq: no transcription received")

// Options configure the Groq adapter.
type Options struct {
	APIKey  string
	BaseURL string
	Extra   []option.RequestOption
}

// Adapter wraps the OpenAI SDK pointed at Groq's compatible endpoint.
type Adapter struct {
	client *openai.Client
}

func New(opts Options) (*Adapter, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, errors.New("groq: api key required")
	}
	baseURL := strings.TrimSpace(opts.BaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	requestOpts := []option.RequestOption{
		option.WithAPIKey(strings.TrimSpace(opts.APIKey)),
		option.WithBaseURL(strings.TrimRight(baseURL, "/")),
	}
	requestOpts = append(requestOpts, opts.Extra...)

	client := openai.NewClient(requestOpts...)
	return &Adapter{client: &client}, nil
}

// Chat performs a non-streaming chat completion and returns the first choice
// as the assistant turn.
func (a *Adapter) Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages))
	for _, msg := range req.Messages {
		switch strings.ToLower(msg.Role) {
		case "system":
			messages = append(messages, openai.SystemMessage(msg.Content))
		case "assistant":
			messages = append(messages, openai.ChatCompletionMessageParamOfAssistant(msg.Content))
		default:
			messages = append(messages, openai.UserMessage(msg.Content))
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(req.Model),
		Messages: messages,
	}
	if req.Temperature != nil {
		params.Temperature = param.NewOpt(*req.Temperature)
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = param.NewOpt(int64(req.MaxTokens))
	}

	resp, err := a.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return models.ChatResponse{}, err
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return models.ChatResponse{}, ErrEmptyCompletion
	}

	return models.ChatResponse{
		Message: models.ChatMessage{
			Role:    "assistant",
			Content: resp.Choices[0].Message.Content,
		},
		Usage: convertUsage(resp.Usage),
	}, nil
}

// Transcribe runs Whisper transcription with the declared filename and MIME
// type attached to the multipart part.
func (a *Adapter) Transcribe(ctx context.Context, req models.AudioTranscriptionRequest) (models.TranscriptionResult, error) {
	params := openai.AudioTranscriptionNewParams{
		File:  openai.File(bytes.NewReader(req.Data), req.Filename, req.ContentType),
		Model: openai.AudioModel(req.Model),
	}
	resp, err := a.client.Audio.Transcriptions.New(ctx, params)
	if err != nil {
		return models.TranscriptionResult{}, err
	}
	if strings.TrimSpace(resp.Text) == "" {
		return models.TranscriptionResult{}, ErrEmptyTranscript
	}
	return models.TranscriptionResult{Text: resp.Text}, nil
}

func convertUsage(u openai.CompletionUsage) map[string]any {
	if u.PromptTokens == 0 && u.CompletionTokens == 0 && u.TotalTokens == 0 {
		return nil
	}
	return map[string]any{
		"prompt_tokens":     u.PromptTokens,
		"completion_tokens": u.CompletionTokens,
		"total_tokens":      u.TotalTokens,
	}
}
