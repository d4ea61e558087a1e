// Package openaitts covers the OpenAI speech synthesis endpoint. Chat and
// transcription route to Groq; only text-to-speech lands here.
package openaitts

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/voiceagent/gateway/internal/models"
)

// Options configure the OpenAI speech adapter.
type Options struct {
	APIKey  string
	BaseURL string
	Extra   []option.RequestOption
}

// Adapter wraps the OpenAI SDK for audio/speech calls.
type Adapter struct {
	client *openai.Client
}

func New(opts Options) (*Adapter, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, errors.New("openai: api key required")
	}
	requestOpts := []option.RequestOption{option.WithAPIKey(strings.TrimSpace(opts.APIKey))}
	if baseURL := strings.TrimSpace(opts.BaseURL); baseURL != "" {
		requestOpts = append(requestOpts, option.WithBaseURL(strings.TrimRight(baseURL, "/")))
	}
	requestOpts = append(requestOpts, opts.Extra...)

	client := openai.NewClient(requestOpts...)
	return &Adapter{client: &client}, nil
}

// Synthesize posts to audio/speech and reads the full response body. Voice,
// model, and format arrive already normalized; voice settings are an
// ElevenLabs concept and are never forwarded here.
func (a *Adapter) Synthesize(ctx context.Context, req models.AudioSpeechRequest) ([]byte, error) {
	params := openai.AudioSpeechNewParams{
		Model:          openai.SpeechModel(req.Model),
		Input:          req.Input,
		Voice:          openai.AudioSpeechNewParamsVoice(req.Voice),
		ResponseFormat: openai.AudioSpeechNewParamsResponseFormat(req.Format),
	}
	resp, err := a.client.Audio.Speech.New(ctx, params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}
