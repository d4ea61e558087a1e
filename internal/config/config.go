package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Config captures the runtime configuration for the gateway service.
type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	Providers     ProviderConfig      `mapstructure:"providers"`
	Audio         AudioConfig         `mapstructure:"audio"`
	Chat          ChatConfig          `mapstructure:"chat"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

type ServerConfig struct {
	ListenAddr            string        `mapstructure:"listen_addr"`
	BodyLimitMB           int           `mapstructure:"body_limit_mb"`
	ProviderTimeout       time.Duration `mapstructure:"provider_timeout"`
	GracefulShutdownDelay time.Duration `mapstructure:"graceful_shutdown_delay"`
}

type ProviderConfig struct {
	ElevenLabsKey     string `mapstructure:"elevenlabs_key"`
	ElevenLabsBaseURL string `mapstructure:"elevenlabs_base_url"`
	GroqKey           string `mapstructure:"groq_key"`
	GroqBaseURL       string `mapstructure:"groq_base_url"`
	OpenAIKey         string `mapstructure:"openai_key"`
	OpenAIBaseURL     string `mapstructure:"openai_base_url"`
}

// AudioConfig holds the per-provider model and voice defaults applied when a
// request omits them or asks for something the provider does not accept.
type AudioConfig struct {
	MaxUploadMB        int    `mapstructure:"max_upload_mb"`
	ElevenLabsSTTModel string `mapstructure:"elevenlabs_stt_model"`
	GroqSTTModel       string `mapstructure:"groq_stt_model"`
	ElevenLabsTTSModel string `mapstructure:"elevenlabs_tts_model"`
	OpenAITTSModel     string `mapstructure:"openai_tts_model"`
	OpenAIVoice        string `mapstructure:"openai_voice"`
	DefaultVoiceName   string `mapstructure:"default_voice_name"`
	DefaultFormat      string `mapstructure:"default_format"`
}

type ChatConfig struct {
	Model       string  `mapstructure:"model"`
	Temperature float64 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens"`
}

type ObservabilityConfig struct {
	OTLPEndpoint  string `mapstructure:"otlp_endpoint"`
	EnableOTLP    bool   `mapstructure:"enable_otlp"`
	EnableMetrics bool   `mapstructure:"enable_metrics"`
}

// Options controls the config loader behavior.
type Options struct {
	ConfigFile string
	EnvFile    string
}

// Load returns the merged configuration sourced from YAML and environment variables.
func Load(opts Options) (*Config, error) {
	if opts.EnvFile != "" {
		_ = godotenv.Load(opts.EnvFile)
	} else {
		_ = godotenv.Load()
	}

	v := viper.New()
	setDefaults(v)

	explicitFile := false
	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		explicitFile = true
	} else {
		if cfg := os.Getenv("GATEWAY_CONFIG_FILE"); cfg != "" {
			v.SetConfigFile(cfg)
			explicitFile = true
		}
	}

	if !explicitFile {
		// Allow standard lookup locations when no explicit file is provided.
		v.SetConfigName("gateway")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix("GATEWAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Provider credentials also honor their conventional unprefixed names.
	_ = v.BindEnv("providers.elevenlabs_key", "GATEWAY_PROVIDERS_ELEVENLABS_KEY", "ELEVENLABS_API_KEY")
	_ = v.BindEnv("providers.groq_key", "GATEWAY_PROVIDERS_GROQ_KEY", "GROQ_API_KEY")
	_ = v.BindEnv("providers.openai_key", "GATEWAY_PROVIDERS_OPENAI_KEY", "OPENAI_API_KEY")

	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(timeStringToDurationHook())); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate ensures required values are set.
func (c *Config) Validate() error {
	var missing []string

	if strings.TrimSpace(c.Providers.ElevenLabsKey) == "" {
		missing = append(missing, "ELEVENLABS_API_KEY")
	}
	if strings.TrimSpace(c.Providers.GroqKey) == "" {
		missing = append(missing, "GROQ_API_KEY")
	}
	if strings.TrimSpace(c.Providers.OpenAIKey) == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	if c.Audio.MaxUploadMB <= 0 {
		c.Audio.MaxUploadMB = 50
	}
	if c.Server.BodyLimitMB <= 0 {
		c.Server.BodyLimitMB = c.Audio.MaxUploadMB
	}
	if c.Server.ProviderTimeout <= 0 {
		c.Server.ProviderTimeout = 120 * time.Second
	}
	if c.Server.GracefulShutdownDelay <= 0 {
		c.Server.GracefulShutdownDelay = 5 * time.Second
	}

	if c.Chat.Temperature < 0 || c.Chat.Temperature > 2 {
		return fmt.Errorf("chat.temperature must be between 0 and 2")
	}
	if c.Chat.MaxTokens <= 0 {
		return fmt.Errorf("chat.max_tokens must be > 0")
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.listen_addr", ":8080")
	v.SetDefault("server.body_limit_mb", 50)
	v.SetDefault("server.provider_timeout", "120s")
	v.SetDefault("server.graceful_shutdown_delay", "5s")

	v.SetDefault("audio.max_upload_mb", 50)
	v.SetDefault("audio.elevenlabs_stt_model", "scribe_v1")
	v.SetDefault("audio.groq_stt_model", "whisper-large-v3")
	v.SetDefault("audio.elevenlabs_tts_model", "eleven_multilingual_v2")
	v.SetDefault("audio.openai_tts_model", "gpt-4o-mini-tts")
	v.SetDefault("audio.openai_voice", "ballad")
	v.SetDefault("audio.default_voice_name", "Bill")
	v.SetDefault("audio.default_format", "mp3")

	v.SetDefault("chat.model", "llama-3.3-70b-versatile")
	v.SetDefault("chat.temperature", 0.7)
	v.SetDefault("chat.max_tokens", 1024)

	v.SetDefault("observability.enable_otlp", false)
	v.SetDefault("observability.enable_metrics", true)
	v.SetDefault("observability.otlp_endpoint", "http://localhost:4317")
}

func timeStringToDurationHook() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != reflect.TypeOf(time.Duration(0)) {
			return data, nil
		}

		switch v := data.(type) {
		case time.Duration:
			return v, nil
		case string:
			d, err := time.ParseDuration(v)
			if err != nil {
				return nil, err
			}
			return d, nil
		default:
			return nil, fmt.Errorf("cannot decode %T into time.Duration", data)
		}
	}
}
