package config

import (
	"strings"
	"testing"
	"time"
)

func setKeys(t *testing.T) {
	t.Helper()
	t.Setenv("ELEVENLABS_API_KEY", "el-key")
	t.Setenv("GROQ_API_KEY", "gq-key")
	t.Setenv("OPENAI_API_KEY", "oa-key")
}

func TestLoadAppliesDefaults(t *testing.T) {
	setKeys(t)

	cfg, err := Load(Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.ListenAddr != ":8080" {
		t.Fatalf("listen_addr = %q, want :8080", cfg.Server.ListenAddr)
	}
	if cfg.Server.ProviderTimeout != 120*time.Second {
		t.Fatalf("provider_timeout = %v, want 120s", cfg.Server.ProviderTimeout)
	}
	if cfg.Audio.ElevenLabsSTTModel != "scribe_v1" {
		t.Fatalf("elevenlabs_stt_model = %q", cfg.Audio.ElevenLabsSTTModel)
	}
	if cfg.Audio.GroqSTTModel != "whisper-large-v3" {
		t.Fatalf("groq_stt_model = %q", cfg.Audio.GroqSTTModel)
	}
	if cfg.Audio.DefaultVoiceName != "Bill" {
		t.Fatalf("default_voice_name = %q", cfg.Audio.DefaultVoiceName)
	}
	if cfg.Chat.Model != "llama-3.3-70b-versatile" {
		t.Fatalf("chat.model = %q", cfg.Chat.Model)
	}
	if cfg.Chat.Temperature != 0.7 {
		t.Fatalf("chat.temperature = %v", cfg.Chat.Temperature)
	}
	if cfg.Chat.MaxTokens != 1024 {
		t.Fatalf("chat.max_tokens = %d", cfg.Chat.MaxTokens)
	}
}

func TestLoadReadsProviderKeysFromEnv(t *testing.T) {
	setKeys(t)

	cfg, err := Load(Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Providers.ElevenLabsKey != "el-key" {
		t.Fatalf("elevenlabs_key = %q", cfg.Providers.ElevenLabsKey)
	}
	if cfg.Providers.GroqKey != "gq-key" {
		t.Fatalf("groq_key = %q", cfg.Providers.GroqKey)
	}
	if cfg.Providers.OpenAIKey != "oa-key" {
		t.Fatalf("openai_key = %q", cfg.Providers.OpenAIKey)
	}
}

func TestLoadReportsAllMissingKeys(t *testing.T) {
	t.Setenv("ELEVENLABS_API_KEY", "")
	t.Setenv("GROQ_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	_, err := Load(Options{})
	if err == nil {
		t.Fatal("expected error for missing provider keys")
	}
	for _, name := range []string{"ELEVENLABS_API_KEY", "GROQ_API_KEY", "OPENAI_API_KEY"} {
		if !strings.Contains(err.Error(), name) {
			t.Fatalf("error %q missing %s", err, name)
		}
	}
}

func TestValidateRejectsBadChatDefaults(t *testing.T) {
	setKeys(t)

	cfg, err := Load(Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	cfg.Chat.Temperature = 3.5
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for temperature out of range")
	}

	cfg.Chat.Temperature = 0.7
	cfg.Chat.MaxTokens = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for non-positive max_tokens")
	}
}
