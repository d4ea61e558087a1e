package providers

import "strings"

// Tag names one upstream provider behind the gateway.
type Tag string

const (
	TagElevenLabs Tag = "elevenlabs"
	TagGroq       Tag = "groq"
	TagOpenAI     Tag = "openai"
)

// elevenLabsSTTModels are the exact transcription model ids owned by
// ElevenLabs. Anything else that still belongs to their namespace is caught
// by the prefix checks below.
var elevenLabsSTTModels = map[string]struct{}{
	"scribe_v1":              {},
	"scribe_v1_experimental": {},
}

// SelectTranscriber decides which provider handles a speech-to-text request.
// An explicit provider wins unconditionally; otherwise the model id's naming
// convention decides, with Groq as the default. Total: every input maps to
// exactly one provider.
func SelectTranscriber(explicit, modelID string) Tag {
	switch Tag(strings.ToLower(strings.TrimSpace(explicit))) {
	case TagElevenLabs:
		return TagElevenLabs
	case TagGroq:
		return TagGroq
	}

	id := strings.ToLower(strings.TrimSpace(modelID))
	if _, ok := elevenLabsSTTModels[id]; ok {
		return TagElevenLabs
	}
	if strings.HasPrefix(id, "eleven_") || strings.HasPrefix(id, "scribe_") {
		return TagElevenLabs
	}
	return TagGroq
}

// SelectSynthesizer decides which provider handles a text-to-speech request.
// Selection is explicit only: "openai" routes to OpenAI, everything else
// (including empty and unknown values) degrades to ElevenLabs.
func SelectSynthesizer(explicit string) Tag {
	if strings.ToLower(strings.TrimSpace(explicit)) == string(TagOpenAI) {
		return TagOpenAI
	}
	return TagElevenLabs
}

// OwnedByElevenLabs reports whether a model id recognizably belongs to the
// ElevenLabs namespace. Used for cross-provider parameter stripping.
func OwnedByElevenLabs(modelID string) bool {
	id := strings.ToLower(strings.TrimSpace(modelID))
	if _, ok := elevenLabsSTTModels[id]; ok {
		return true
	}
	return strings.HasPrefix(id, "eleven_") || strings.HasPrefix(id, "scribe_")
}
