package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g.
// POLYGLOT_LLM_API_KEY or POLYGLOT_SERVER_PORT.
const EnvPrefix = "POLYGLOT"

// defaultModels is the model used for each provider when llm.model is unset.
var defaultModels = map[string]string{
	"openai":    "llama-3.3-70b-versatile",
	"gemini":    "gemini-2.0-flash",
	"anthropic": "claude-haiku-4-5",
}

// setDefaults registers the default value for every key. Viper only maps
// environment variables onto keys it already knows about, so every field
// needs an entry here even when its default is empty.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.log_format", "json")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "90s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.max_upload_bytes", 25<<20)

	v.SetDefault("cors.allowed_origins", "*")
	v.SetDefault("cors.allowed_methods", "GET,POST,OPTIONS")
	v.SetDefault("cors.allowed_headers", "Accept,Content-Type,Authorization")
	v.SetDefault("cors.max_age", 86400)

	v.SetDefault("llm.provider", "openai")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.model", "")
	v.SetDefault("llm.timeout", "30s")
	v.SetDefault("llm.max_attempts", 3)
	v.SetDefault("llm.retry_delay", "1s")
	v.SetDefault("llm.min_interval", "1s")

	v.SetDefault("speech.api_key", "")
	v.SetDefault("speech.base_url", "")
	v.SetDefault("speech.model", "whisper-large-v3")

	v.SetDefault("cache.lesson_size", 256)
	v.SetDefault("cache.lesson_ttl", "1h")

	v.SetDefault("history.enabled", true)
	v.SetDefault("history.path", "polyglot.db")

	v.SetDefault("youtube.captions_url", "https://video.google.com/timedtext")
	v.SetDefault("youtube.timeout", "10s")
}

// Load configuration from environment variables and optionally a config file.
// Environment variables take precedence over values from the config file.
// An empty configFile searches ./polyglot.yaml and ./configs/polyglot.yaml;
// a missing file is not an error.
// Returns a populated Config struct or an error if loading/validation fails.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("polyglot")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		slog.Debug("no config file found, using defaults and environment variables")
	} else {
		slog.Info("loaded config file", "path", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if cfg.LLM.Model == "" {
		cfg.LLM.Model = defaultModels[cfg.LLM.Provider]
	}
	inheritSpeechSettings(&cfg)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// inheritSpeechSettings reuses the LLM credentials for transcription when no
// dedicated speech credentials are configured. This only makes sense for the
// openai provider, which is also the only one able to transcribe.
func inheritSpeechSettings(cfg *Config) {
	if cfg.LLM.Provider != "openai" {
		return
	}
	if cfg.Speech.APIKey == "" {
		cfg.Speech.APIKey = cfg.LLM.APIKey
	}
	if cfg.Speech.BaseURL == "" {
		cfg.Speech.BaseURL = cfg.LLM.BaseURL
	}
}
