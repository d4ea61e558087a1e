package openaitts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voiceagent/gateway/internal/models"
)

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := New(Options{})
	require.Error(t, err)
}

func TestSynthesizePostsSpeechParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/audio/speech", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "gpt-4o-mini-tts", body["model"])
		require.Equal(t, "hello world", body["input"])
		require.Equal(t, "ballad", body["voice"])
		require.Equal(t, "mp3", body["response_format"])

		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("MP3DATA"))
	}))
	defer server.Close()

	adapter, err := New(Options{APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)

	audio, err := adapter.Synthesize(context.Background(), models.AudioSpeechRequest{
		Model:  "gpt-4o-mini-tts",
		Voice:  "ballad",
		Input:  "hello world",
		Format: "mp3",
	})
	require.NoError(t, err)
	require.Equal(t, []byte("MP3DATA"), audio)
}
