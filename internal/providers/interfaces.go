package providers

import (
	"context"

	"github.com/voiceagent/gateway/internal/models"
)

type SpeechToText interface {
	Transcribe(ctx context.Context, req models.AudioTranscriptionRequest) (models.TranscriptionResult, error)
}

type TextToSpeech interface {
	Synthesize(ctx context.Context, req models.AudioSpeechRequest) ([]byte, error)
}

type ChatCompletions interface {
	Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error)
}

// VoiceLister exposes the upstream voice catalog (ElevenLabs-style providers).
type VoiceLister interface {
	Voices(ctx context.Context) ([]models.Voice, error)
}
