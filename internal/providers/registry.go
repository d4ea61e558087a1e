package providers

import (
	"fmt"

	"github.com/voiceagent/gateway/internal/adapters/elevenlabs"
	"github.com/voiceagent/gateway/internal/adapters/groq"
	"github.com/voiceagent/gateway/internal/adapters/openaitts"
	"github.com/voiceagent/gateway/internal/config"
)

// Registry holds one constructed adapter per upstream provider. Adapters are
// immutable after construction, so a single registry is shared by all
// concurrent requests.
type Registry struct {
	ElevenLabs *elevenlabs.Adapter
	Groq       *groq.Adapter
	OpenAI     *openaitts.Adapter
}

// NewRegistry constructs every provider adapter up front. A missing API key
// is a construction-time error, never deferred to the first request.
func NewRegistry(cfg *config.Config) (*Registry, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	el, err := elevenlabs.New(elevenlabs.Options{
		APIKey:  cfg.Providers.ElevenLabsKey,
		BaseURL: cfg.Providers.ElevenLabsBaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("elevenlabs adapter: %w", err)
	}

	gq, err := groq.New(groq.Options{
		APIKey:  cfg.Providers.GroqKey,
		BaseURL: cfg.Providers.GroqBaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("groq adapter: %w", err)
	}

	oa, err := openaitts.New(openaitts.Options{
		APIKey:  cfg.Providers.OpenAIKey,
		BaseURL: cfg.Providers.OpenAIBaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("openai adapter: %w", err)
	}

	return &Registry{ElevenLabs: el, Groq: gq, OpenAI: oa}, nil
}

// Transcriber resolves the speech-to-text client for a provider tag.
func (r *Registry) Transcriber(tag Tag) SpeechToText {
	if tag == TagElevenLabs {
		return r.ElevenLabs
	}
	return r.Groq
}

// Synthesizer resolves the text-to-speech client for a provider tag.
func (r *Registry) Synthesizer(tag Tag) TextToSpeech {
	if tag == TagOpenAI {
		return r.OpenAI
	}
	return r.ElevenLabs
}

// Chat resolves the chat completion client.
func (r *Registry) Chat() ChatCompletions {
	return r.Groq
}

// VoiceCatalog resolves the voice listing client.
func (r *Registry) VoiceCatalog() VoiceLister {
	return r.ElevenLabs
}
