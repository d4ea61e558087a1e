package providers

import "testing"

func TestSelectTranscriberExplicitWins(t *testing.T) {
	if got := SelectTranscriber("elevenlabs", "whisper-large-v3"); got != TagElevenLabs {
		t.Fatalf("explicit elevenlabs ignored, got %s", got)
	}
	if got := SelectTranscriber("GROQ", "scribe_v1"); got != TagGroq {
		t.Fatalf("explicit groq ignored, got %s", got)
	}
}

func TestSelectTranscriberByModelConvention(t *testing.T) {
	cases := []struct {
		modelID string
		want    Tag
	}{
		{"scribe_v1", TagElevenLabs},
		{"SCRIBE_V1", TagElevenLabs},
		{"  scribe_v1_experimental  ", TagElevenLabs},
		{"eleven_multilingual_v2", TagElevenLabs},
		{"scribe_v2_future", TagElevenLabs},
		{"whisper-large-v3", TagGroq},
		{"whisper-large-v3-turbo", TagGroq},
		{"", TagGroq},
		{"gpt-4o-transcribe", TagGroq},
	}
	for _, tc := range cases {
		if got := SelectTranscriber("", tc.modelID); got != tc.want {
			t.Fatalf("SelectTranscriber(%q) = %s, want %s", tc.modelID, got, tc.want)
		}
	}
}

func TestSelectSynthesizerDegradesToDefault(t *testing.T) {
	cases := []struct {
		provider string
		want     Tag
	}{
		{"openai", TagOpenAI},
		{"OpenAI", TagOpenAI},
		{"elevenlabs", TagElevenLabs},
		{"", TagElevenLabs},
		{"polly", TagElevenLabs},
	}
	for _, tc := range cases {
		if got := SelectSynthesizer(tc.provider); got != tc.want {
			t.Fatalf("SelectSynthesizer(%q) = %s, want %s", tc.provider, got, tc.want)
		}
	}
}

func TestOwnedByElevenLabs(t *testing.T) {
	for _, id := range []string{"scribe_v1", "eleven_turbo_v2_5", "Scribe_V1_Experimental"} {
		if !OwnedByElevenLabs(id) {
			t.Fatalf("%q should belong to the elevenlabs namespace", id)
		}
	}
	for _, id := range []string{"whisper-large-v3", "tts-1", ""} {
		if OwnedByElevenLabs(id) {
			t.Fatalf("%q should not belong to the elevenlabs namespace", id)
		}
	}
}
