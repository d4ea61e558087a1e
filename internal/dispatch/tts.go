package dispatch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/voiceagent/gateway/internal/audio"
	"github.com/voiceagent/gateway/internal/models"
	"github.com/voiceagent/gateway/internal/providers"
)

// Synthesize validates the synthesis request, normalizes voice, model, and
// output format for the selected provider, and returns the rendered audio
// with its download headers.
func (d *Dispatcher) Synthesize(ctx context.Context, req models.TextToSpeechRequest) (models.AudioAsset, error) {
	if strings.TrimSpace(req.Text) == "" {
		return models.AudioAsset{}, badRequest("text is required")
	}

	tag := providers.SelectSynthesizer(req.Provider)
	format := audio.SelectOutputFormat(req.Format, d.cfg.Audio.DefaultFormat)

	var speech models.AudioSpeechRequest
	var err error
	if tag == providers.TagOpenAI {
		speech = d.openAISpeechRequest(req, format)
	} else {
		speech, err = d.elevenLabsSpeechRequest(ctx, req, format)
		if err != nil {
			return models.AudioAsset{}, err
		}
	}

	d.logger.Info("dispatching synthesis",
		"provider", tag, "model", speech.Model, "voice", speech.Voice, "format", format)

	start := time.Now()
	rendered, err := d.set.Synthesizer(tag).Synthesize(ctx, speech)
	if err != nil {
		err = mapUpstreamError("text-to-speech", err)
	}
	d.observe(string(tag), "text-to-speech", start, err)
	if err != nil {
		return models.AudioAsset{}, err
	}

	return models.AudioAsset{
		Audio:     rendered,
		MediaType: audio.AttachmentContentType(format),
		Filename:  "speech." + format,
	}, nil
}

// openAISpeechRequest maps the request onto OpenAI's vocabulary. Voice
// settings are an ElevenLabs concept and never cross over.
func (d *Dispatcher) openAISpeechRequest(req models.TextToSpeechRequest, format string) models.AudioSpeechRequest {
	model := strings.TrimSpace(req.ModelID)
	if providers.OwnedByElevenLabs(model) {
		d.logger.Warn("dropping elevenlabs model id for openai synthesis", "model", model)
		model = ""
	}
	return models.AudioSpeechRequest{
		Model:  audio.SelectModel(model, audio.OpenAITTSModels, d.cfg.Audio.OpenAITTSModel),
		Voice:  audio.SelectVoice(req.VoiceName, audio.OpenAIVoices, audio.OpenAIVoiceAliases, d.cfg.Audio.OpenAIVoice),
		Input:  req.Text,
		Format: format,
	}
}

// elevenLabsSpeechRequest resolves the requested voice name to a voice id
// through the live catalog. An unknown name is a client error that lists the
// names actually available.
func (d *Dispatcher) elevenLabsSpeechRequest(ctx context.Context, req models.TextToSpeechRequest, format string) (models.AudioSpeechRequest, error) {
	voices, err := d.set.VoiceCatalog().Voices(ctx)
	if err != nil {
		return models.AudioSpeechRequest{}, mapUpstreamError("text-to-speech", err)
	}

	name := strings.TrimSpace(req.VoiceName)
	if name == "" {
		name = d.cfg.Audio.DefaultVoiceName
	}

	voiceID := ""
	available := make([]string, 0, len(voices))
	for _, voice := range voices {
		available = append(available, voice.Name)
		if voice.Name == name {
			voiceID = voice.ID
		}
	}
	if voiceID == "" {
		return models.AudioSpeechRequest{}, badRequest(fmt.Sprintf(
			"voice '%s' not found. available voices: %s", name, strings.Join(available, ", ")))
	}

	model := strings.TrimSpace(req.ModelID)
	if model != "" && !strings.HasPrefix(strings.ToLower(model), "eleven_") {
		d.logger.Warn("dropping foreign model id for elevenlabs synthesis", "model", model)
		model = ""
	}

	settings := req.VoiceSettings
	if settings == nil {
		settings = models.DefaultVoiceSettings()
	}

	return models.AudioSpeechRequest{
		Model:         audio.SelectModel(model, audio.ElevenLabsTTSModels, d.cfg.Audio.ElevenLabsTTSModel),
		Voice:         voiceID,
		Input:         req.Text,
		Format:        format,
		VoiceSettings: settings,
	}, nil
}
