package groq

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openai/openai-go/v3"
	"github.com/stretchr/testify/require"

	"github.com/voiceagent/gateway/internal/models"
)

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := New(Options{})
	require.Error(t, err)
}

func TestChatReturnsAssistantTurnAndUsage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "llama-3.3-70b-versatile", body["model"])
		require.InDelta(t, 0.7, body["temperature"], 1e-9)
		require.EqualValues(t, 100, body["max_tokens"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "Hi there"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 5, "completion_tokens": 7, "total_tokens": 12}
		}`))
	}))
	defer server.Close()

	adapter, err := New(Options{APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)

	temp := 0.7
	resp, err := adapter.Chat(context.Background(), models.ChatRequest{
		Messages:    []models.ChatMessage{{Role: "user", Content: "Hello"}},
		Model:       "llama-3.3-70b-versatile",
		Temperature: &temp,
		MaxTokens:   100,
	})
	require.NoError(t, err)
	require.Equal(t, "assistant", resp.Message.Role)
	require.Equal(t, "Hi there", resp.Message.Content)
	require.EqualValues(t, 12, resp.Usage["total_tokens"])
}

func TestChatEmptyChoicesIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "chatcmpl-2", "object": "chat.completion", "choices": []}`))
	}))
	defer server.Close()

	adapter, err := New(Options{APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = adapter.Chat(context.Background(), models.ChatRequest{
		Messages: []models.ChatMessage{{Role: "user", Content: "Hello"}},
		Model:    "llama-3.3-70b-versatile",
	})
	require.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestChatSurfacesUpstreamStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"message": "rate limit reached", "type": "rate_limit_error"}}`))
	}))
	defer server.Close()

	adapter, err := New(Options{APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = adapter.Chat(context.Background(), models.ChatRequest{
		Messages: []models.ChatMessage{{Role: "user", Content: "Hello"}},
		Model:    "llama-3.3-70b-versatile",
	})
	var apiErr *openai.Error
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
}

func TestTranscribeSendsMultipart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/audio/transcriptions", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.Equal(t, "whisper-large-v3", r.FormValue("model"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		require.Equal(t, "audio.ogg", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"text": "transcribed speech"}`))
	}))
	defer server.Close()

	adapter, err := New(Options{APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)

	result, err := adapter.Transcribe(context.Background(), models.AudioTranscriptionRequest{
		Model:       "whisper-large-v3",
		Filename:    "audio.ogg",
		ContentType: "audio/ogg",
		Data:        []byte("oggdata"),
	})
	require.NoError(t, err)
	require.Equal(t, "transcribed speech", result.Text)
	require.Zero(t, result.Confidence)
}

func TestTranscribeEmptyTextIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"text": "  "}`))
	}))
	defer server.Close()

	adapter, err := New(Options{APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = adapter.Transcribe(context.Background(), models.AudioTranscriptionRequest{
		Model: "whisper-large-v3", Filename: "audio.ogg", ContentType: "audio/ogg", Data: []byte("x"),
	})
	require.ErrorIs(t, err, ErrEmptyTranscript)
}
