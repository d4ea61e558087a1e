package public

import (
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/voiceagent/gateway/internal/dispatch"
	"github.com/voiceagent/gateway/internal/httpserver/httputil"
	"github.com/voiceagent/gateway/internal/models"
)

// speechToTextEnvelope is the JSON variant of the transcription request.
// Multipart uploads bypass it entirely.
type speechToTextEnvelope struct {
	Audio    string `json:"audio"`
	Format   string `json:"format"`
	ModelID  string `json:"model_id"`
	Provider string `json:"provider"`
}

type textToSpeechRequest struct {
	Text          string                `json:"text"`
	VoiceName     string                `json:"voice_name"`
	ModelID       string                `json:"model_id"`
	VoiceSettings *models.VoiceSettings `json:"voice_settings"`
	Provider      string                `json:"provider"`
	Format        string                `json:"format"`
}

func (h *gatewayHandler) speechToText(c *fiber.Ctx) error {
	req, err := decodeSpeechToText(c)
	if err != nil {
		return httputil.WriteError(c, fiber.StatusBadRequest, err.Error())
	}

	result, err := h.container.Dispatcher.Transcribe(c.UserContext(), req)
	if err != nil {
		return writeDispatchError(c, err, "speech-to-text")
	}
	return c.JSON(result)
}

// decodeSpeechToText accepts either a multipart upload or a JSON envelope
// with base64 audio. Payload validation beyond decoding is the dispatcher's
// job.
func decodeSpeechToText(c *fiber.Ctx) (models.SpeechToTextRequest, error) {
	contentType := strings.ToLower(c.Get(fiber.HeaderContentType))
	if strings.HasPrefix(contentType, fiber.MIMEMultipartForm) {
		req := models.SpeechToTextRequest{
			ModelID:  strings.TrimSpace(c.FormValue("model_id")),
			Provider: strings.TrimSpace(c.FormValue("provider")),
		}
		fh, err := c.FormFile("file")
		if err != nil {
			// Field may be absent; the dispatcher rejects the empty request.
			return req, nil
		}
		src, err := fh.Open()
		if err != nil {
			return models.SpeechToTextRequest{}, fiber.NewError(fiber.StatusBadRequest, "failed to open file")
		}
		defer src.Close()
		data, err := io.ReadAll(src)
		if err != nil {
			return models.SpeechToTextRequest{}, fiber.NewError(fiber.StatusBadRequest, "failed to read file")
		}
		req.Upload = &models.AudioUpload{
			Data:        data,
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
		}
		return req, nil
	}

	var payload speechToTextEnvelope
	if err := c.BodyParser(&payload); err != nil {
		return models.SpeechToTextRequest{}, fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	req := models.SpeechToTextRequest{
		ModelID:  strings.TrimSpace(payload.ModelID),
		Provider: strings.TrimSpace(payload.Provider),
	}
	if payload.Audio != "" {
		req.Inline = &models.InlineAudio{
			Base64: payload.Audio,
			Format: payload.Format,
		}
	}
	return req, nil
}

func (h *gatewayHandler) textToSpeech(c *fiber.Ctx) error {
	var payload textToSpeechRequest
	if err := c.BodyParser(&payload); err != nil {
		return httputil.WriteError(c, fiber.StatusBadRequest, "invalid request body")
	}

	asset, err := h.container.Dispatcher.Synthesize(c.UserContext(), models.TextToSpeechRequest{
		Text:          payload.Text,
		VoiceName:     payload.VoiceName,
		ModelID:       payload.ModelID,
		VoiceSettings: payload.VoiceSettings,
		Provider:      payload.Provider,
		Format:        payload.Format,
	})
	if err != nil {
		return writeDispatchError(c, err, "text-to-speech")
	}

	c.Set(fiber.HeaderContentType, asset.MediaType)
	c.Set(fiber.HeaderContentLength, strconv.Itoa(len(asset.Audio)))
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=`+asset.Filename)
	return c.Send(asset.Audio)
}

func writeDispatchError(c *fiber.Ctx, err error, operation string) error {
	if status, msg, details, ok := dispatch.AsAPIError(err); ok {
		if status >= fiber.StatusInternalServerError {
			slog.Error("request failed", "operation", operation, "trace_id", traceIDFromContext(c), "error", msg)
		}
		return httputil.WriteErrorDetails(c, status, msg, details)
	}
	slog.Error("request failed", "operation", operation, "trace_id", traceIDFromContext(c), "error", err)
	return httputil.WriteError(c, fiber.StatusInternalServerError, operation+" processing failed: "+err.Error())
}
