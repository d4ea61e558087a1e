package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/voiceagent/gateway/internal/models"
)

const defaultBaseURL = "https://api.elevenlabs.io/v1"

// ErrEmptyTranscript is returned when the upstream answers 2xx but the body
// carries no transcript text.
var ErrEmptyTranscript = errors.New("elevenlabs: no transcription received")

// StatusError carries the upstream HTTP status through to the dispatcher.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("elevenlabs api error %d: %s", e.Code, e.Body)
}

// Options configure the ElevenLabs adapter.
type Options struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// Adapter talks to the ElevenLabs speech API. It is stateless aside from the
// credential and safe for concurrent use.
type Adapter struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

func New(opts Options) (*Adapter, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, errors.New("elevenlabs: api key required")
	}
	if strings.TrimSpace(opts.BaseURL) == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &Adapter{
		client:  opts.HTTPClient,
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		apiKey:  strings.TrimSpace(opts.APIKey),
	}, nil
}

// Transcribe uploads audio as a multipart form to the speech-to-text endpoint.
func (a *Adapter) Transcribe(ctx context.Context, req models.AudioTranscriptionRequest) (models.TranscriptionResult, error) {
	var form bytes.Buffer
	writer := multipart.NewWriter(&form)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, req.Filename))
	header.Set("Content-Type", req.ContentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return models.TranscriptionResult{}, err
	}
	if _, err := part.Write(req.Data); err != nil {
		return models.TranscriptionResult{}, err
	}
	if err := writer.WriteField("model_id", req.Model); err != nil {
		return models.TranscriptionResult{}, err
	}
	if err := writer.Close(); err != nil {
		return models.TranscriptionResult{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/speech-to-text", &form)
	if err != nil {
		return models.TranscriptionResult{}, err
	}
	httpReq.Header.Set("xi-api-key", a.apiKey)
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := a.client.Do(httpReq)
	if err != nil {
		return models.TranscriptionResult{}, fmt.Errorf("elevenlabs request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return models.TranscriptionResult{}, decodeStatusError(resp)
	}

	var parsed struct {
		Text       string  `json:"text"`
		Confidence float64 `json:"confidence"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return models.TranscriptionResult{}, fmt.Errorf("decode transcription: %w", err)
	}
	if parsed.Text == "" {
		return models.TranscriptionResult{}, ErrEmptyTranscript
	}
	return models.TranscriptionResult{Text: parsed.Text, Confidence: parsed.Confidence}, nil
}

// Synthesize posts JSON to text-to-speech/{voiceId} and returns the raw
// audio bytes, read in full. Voice is the upstream voice id, not the display
// name.
func (a *Adapter) Synthesize(ctx context.Context, req models.AudioSpeechRequest) ([]byte, error) {
	settings := req.VoiceSettings
	if settings == nil {
		settings = models.DefaultVoiceSettings()
	}
	payload := struct {
		Text          string                `json:"text"`
		ModelID       string                `json:"model_id"`
		VoiceSettings *models.VoiceSettings `json:"voice_settings"`
	}{
		Text:          req.Input,
		ModelID:       req.Model,
		VoiceSettings: settings,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/text-to-speech/%s", a.baseURL, req.Voice)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("xi-api-key", a.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "audio/mpeg")

	resp, err := a.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("elevenlabs request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, decodeStatusError(resp)
	}
	return io.ReadAll(resp.Body)
}

// Voices fetches the account's voice catalog in upstream order.
func (a *Adapter) Voices(ctx context.Context) ([]models.Voice, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/voices", nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("xi-api-key", a.apiKey)

	resp, err := a.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("elevenlabs request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, decodeStatusError(resp)
	}

	var parsed struct {
		Voices []models.Voice `json:"voices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode voices: %w", err)
	}
	return parsed.Voices, nil
}

func decodeStatusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
}
