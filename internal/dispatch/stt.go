package dispatch

import (
	"context"
	"encoding/base64"
	"strings"
	"time"

	"github.com/voiceagent/gateway/internal/audio"
	"github.com/voiceagent/gateway/internal/models"
	"github.com/voiceagent/gateway/internal/providers"
)

// Transcribe resolves the audio payload, picks a transcription provider, and
// forwards the request with a normalized model id, filename, and MIME type.
func (d *Dispatcher) Transcribe(ctx context.Context, req models.SpeechToTextRequest) (models.TranscriptionResult, error) {
	data, declaredFormat, filename, contentTypeHint, err := resolveAudioPayload(req)
	if err != nil {
		return models.TranscriptionResult{}, err
	}
	if len(data) == 0 {
		return models.TranscriptionResult{}, badRequest("invalid audio data - empty buffer")
	}

	tag := providers.SelectTranscriber(req.Provider, req.ModelID)
	model := d.transcriptionModel(tag, req.ModelID)

	mime := audio.MIMEForFormat(declaredFormat, contentTypeHint)
	if filename == "" {
		ext := strings.TrimSpace(declaredFormat)
		if ext == "" {
			ext = "webm"
		}
		filename = "audio." + ext
	}

	d.logger.Info("dispatching transcription",
		"provider", tag, "model", model, "bytes", len(data), "mime", mime)

	start := time.Now()
	result, err := d.set.Transcriber(tag).Transcribe(ctx, models.AudioTranscriptionRequest{
		Model:       model,
		Filename:    filename,
		ContentType: mime,
		Data:        data,
	})
	if err != nil {
		err = mapUpstreamError("speech-to-text", err)
	}
	d.observe(string(tag), "speech-to-text", start, err)
	if err != nil {
		return models.TranscriptionResult{}, err
	}
	return result, nil
}

// resolveAudioPayload extracts raw audio bytes from whichever request variant
// is populated. Uploads win over inline base64 when both are present.
func resolveAudioPayload(req models.SpeechToTextRequest) (data []byte, format, filename, contentType string, err error) {
	switch {
	case req.Upload != nil:
		return req.Upload.Data, audio.FormatFromFilename(req.Upload.Filename),
			req.Upload.Filename, req.Upload.ContentType, nil
	case req.Inline != nil:
		decoded, decodeErr := base64.StdEncoding.DecodeString(req.Inline.Base64)
		if decodeErr != nil {
			return nil, "", "", "", badRequest("invalid base64 audio data")
		}
		return decoded, req.Inline.Format, "", "", nil
	default:
		return nil, "", "", "", badRequest("audio data is required")
	}
}

// transcriptionModel normalizes the requested model id for the selected
// provider, stripping ids that belong to the other provider's namespace.
func (d *Dispatcher) transcriptionModel(tag providers.Tag, requested string) string {
	model := strings.TrimSpace(requested)
	if tag == providers.TagElevenLabs {
		if model != "" && !providers.OwnedByElevenLabs(model) {
			d.logger.Warn("dropping foreign model id for elevenlabs transcription", "model", model)
			model = ""
		}
		return audio.SelectModel(model, audio.ElevenLabsSTTModels, d.cfg.Audio.ElevenLabsSTTModel)
	}
	if providers.OwnedByElevenLabs(model) {
		d.logger.Warn("dropping elevenlabs model id for groq transcription", "model", model)
		model = ""
	}
	if model == "" {
		model = d.cfg.Audio.GroqSTTModel
	}
	return model
}
