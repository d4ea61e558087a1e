package models

// AudioUpload carries a raw multipart file upload.
type AudioUpload struct {
	Data        []byte
	Filename    string
	ContentType string
}

// InlineAudio carries base64 audio from a JSON envelope.
type InlineAudio struct {
	Base64 string
	Format string
}

// SpeechToTextRequest is the decoded transcription request. Exactly one of
// Upload or Inline is set; the dispatcher resolves the variant once and
// downstream code only ever sees raw bytes.
type SpeechToTextRequest struct {
	Upload   *AudioUpload
	Inline   *InlineAudio
	ModelID  string
	Provider string
}

// TranscriptionResult is the normalized speech-to-text payload.
// Confidence stays 0.0 when the upstream omits it.
type TranscriptionResult struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

// VoiceSettings tune ElevenLabs voice rendering. All float fields are in [0,1].
type VoiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
	Style           float64 `json:"style"`
	UseSpeakerBoost bool    `json:"use_speaker_boost"`
}

// DefaultVoiceSettings returns the settings applied when a request carries none.
func DefaultVoiceSettings() *VoiceSettings {
	return &VoiceSettings{
		Stability:       0.3,
		SimilarityBoost: 0.7,
		Style:           0.8,
		UseSpeakerBoost: true,
	}
}

// TextToSpeechRequest is the validated synthesis request.
type TextToSpeechRequest struct {
	Text          string         `json:"text"`
	VoiceName     string         `json:"voice_name"`
	ModelID       string         `json:"model_id"`
	VoiceSettings *VoiceSettings `json:"voice_settings"`
	Provider      string         `json:"provider"`
	Format        string         `json:"format"`
}

// AudioAsset is the dispatcher's synthesis output: raw bytes plus the
// headers the boundary layer needs to serve them.
type AudioAsset struct {
	Audio     []byte
	MediaType string
	Filename  string
}

// Voice identifies one upstream voice.
type Voice struct {
	ID   string `json:"voice_id"`
	Name string `json:"name"`
}

// AudioTranscriptionRequest is the normalized adapter-facing transcription call.
type AudioTranscriptionRequest struct {
	Model       string
	Filename    string
	ContentType string
	Data        []byte
}

// AudioSpeechRequest is the normalized adapter-facing synthesis call.
type AudioSpeechRequest struct {
	Model         string
	Voice         string
	Input         string
	Format        string
	VoiceSettings *VoiceSettings
}
