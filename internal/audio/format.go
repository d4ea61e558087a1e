// Package audio holds the pure normalization tables and lookups that absorb
// vocabulary drift between the gateway's public API and each provider's
// accepted voices, models, and container formats. Every function here is
// total: callers always get a usable value back.
package audio

import (
	"log/slog"
	"strings"
)

// mimeByFormat maps a declared container format or file extension to its
// media type for upstream uploads.
var mimeByFormat = map[string]string{
	"webm": "audio/webm",
	"wav":  "audio/wav",
	"mp3":  "audio/mpeg",
	"m4a":  "audio/m4a",
	"ogg":  "audio/ogg",
	"flac": "audio/flac",
}

// outputFormats is the closed set of synthesis output formats the gateway accepts.
var outputFormats = map[string]struct{}{
	"mp3":  {},
	"wav":  {},
	"ogg":  {},
	"flac": {},
	"aac":  {},
	"opus": {},
	"pcm":  {},
}

// OpenAIVoices is the canonical lowercase voice vocabulary for the OpenAI
// speech endpoint.
var OpenAIVoices = map[string]struct{}{
	"alloy":   {},
	"ash":     {},
	"ballad":  {},
	"coral":   {},
	"echo":    {},
	"nova":    {},
	"onyx":    {},
	"sage":    {},
	"shimmer": {},
}

// OpenAIVoiceAliases resolves friendly names to canonical voices before the
// allow-list check. "fable" was retired upstream and now maps to ballad.
var OpenAIVoiceAliases = map[string]string{
	"boy":       "ballad",
	"young":     "ballad",
	"kid":       "ballad",
	"child":     "ballad",
	"young_boy": "ballad",
	"young-boy": "ballad",
	"fable":     "ballad",
}

// DefaultOpenAIVoice is the fallback when a requested voice survives alias
// resolution but is still unknown.
const DefaultOpenAIVoice = "ballad"

// OpenAITTSModels lists the speech models the OpenAI endpoint accepts.
var OpenAITTSModels = map[string]struct{}{
	"tts-1":           {},
	"tts-1-hd":        {},
	"gpt-4o-mini-tts": {},
}

const DefaultOpenAITTSModel = "gpt-4o-mini-tts"

// ElevenLabsTTSModels lists accepted ElevenLabs synthesis models.
var ElevenLabsTTSModels = map[string]struct{}{
	"eleven_multilingual_v2": {},
	"eleven_turbo_v2_5":      {},
	"eleven_flash_v2_5":      {},
}

// elevenLabsModelAliases folds retired model ids into their replacements.
var elevenLabsModelAliases = map[string]string{
	"eleven_monolingual_v2": "eleven_multilingual_v2",
	"eleven_monolingual_v1": "eleven_multilingual_v2",
}

const DefaultElevenLabsTTSModel = "eleven_multilingual_v2"

// ElevenLabsSTTModels lists accepted ElevenLabs transcription models.
var ElevenLabsSTTModels = map[string]struct{}{
	"scribe_v1":              {},
	"scribe_v1_experimental": {},
}

const DefaultElevenLabsSTTModel = "scribe_v1"

// MIMEForFormat resolves a declared format/extension to a media type.
// Unknown formats fall back to the caller-supplied content type when it is
// an audio type, then to audio/webm. Never fails.
func MIMEForFormat(format, contentTypeHint string) string {
	f := strings.ToLower(strings.TrimSpace(format))
	f = strings.TrimPrefix(f, ".")
	if mime, ok := mimeByFormat[f]; ok {
		return mime
	}
	hint := strings.ToLower(strings.TrimSpace(contentTypeHint))
	if strings.HasPrefix(hint, "audio/") {
		return hint
	}
	return "audio/webm"
}

// FormatFromFilename extracts the extension from an uploaded filename, or ""
// when there is none.
func FormatFromFilename(filename string) string {
	idx := strings.LastIndexByte(filename, '.')
	if idx < 0 || idx == len(filename)-1 {
		return ""
	}
	return strings.ToLower(filename[idx+1:])
}

// SelectVoice normalizes a requested voice against a provider's allowed set,
// resolving aliases first and degrading to fallback instead of failing.
func SelectVoice(requested string, allowed map[string]struct{}, aliases map[string]string, fallback string) string {
	name := strings.ToLower(strings.TrimSpace(requested))
	if name == "" {
		return fallback
	}
	if canonical, ok := aliases[name]; ok {
		name = canonical
	}
	if _, ok := allowed[name]; ok {
		return name
	}
	slog.Warn("unsupported voice, using fallback", "requested", requested, "fallback", fallback)
	return fallback
}

// SelectModel returns requested when the provider accepts it, otherwise the
// fallback. A non-empty rejected id is logged as a downgrade.
func SelectModel(requested string, allowed map[string]struct{}, fallback string) string {
	id := strings.TrimSpace(requested)
	if id == "" {
		return fallback
	}
	if canonical, ok := elevenLabsModelAliases[strings.ToLower(id)]; ok {
		id = canonical
	}
	if _, ok := allowed[id]; ok {
		return id
	}
	slog.Warn("unsupported model, using fallback", "requested", requested, "fallback", fallback)
	return fallback
}

// SelectOutputFormat normalizes the synthesis output format, defaulting to mp3.
func SelectOutputFormat(requested, fallback string) string {
	if fallback == "" {
		fallback = "mp3"
	}
	f := strings.ToLower(strings.TrimSpace(requested))
	if f == "" {
		return fallback
	}
	if _, ok := outputFormats[f]; ok {
		return f
	}
	slog.Warn("unsupported output format, using fallback", "requested", requested, "fallback", fallback)
	return fallback
}

// AttachmentContentType is the response Content-Type contract for generated
// audio downloads: audio/mpeg for mp3, audio/wav for everything else.
func AttachmentContentType(format string) string {
	if strings.ToLower(strings.TrimSpace(format)) == "mp3" {
		return "audio/mpeg"
	}
	return "audio/wav"
}
