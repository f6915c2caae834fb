package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"  validate:"required"`
	CORS    CORSConfig    `mapstructure:"cors"`
	LLM     LLMConfig     `mapstructure:"llm"     validate:"required"`
	Speech  SpeechConfig  `mapstructure:"speech"`
	Cache   CacheConfig   `mapstructure:"cache"`
	History HistoryConfig `mapstructure:"history"`
	YouTube YouTubeConfig `mapstructure:"youtube"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port"             validate:"required,gt=0,lt=65536"`
	LogLevel        string        `mapstructure:"log_level"        validate:"required,oneof=debug info warn error"`
	LogFormat       string        `mapstructure:"log_format"       validate:"required,oneof=json text"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"     validate:"gte=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"    validate:"gte=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gte=0"`
	// MaxUploadBytes caps multipart voice uploads.
	MaxUploadBytes int64 `mapstructure:"max_upload_bytes" validate:"gt=0"`
}

// CORSConfig holds cross-origin settings. The frontend is served from a
// different origin during development, so "*" is the default.
type CORSConfig struct {
	AllowedOrigins string `mapstructure:"allowed_origins"`
	AllowedMethods string `mapstructure:"allowed_methods"`
	AllowedHeaders string `mapstructure:"allowed_headers"`
	MaxAge         int    `mapstructure:"max_age" validate:"gte=0"`
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	// Provider selects the completion backend: openai (any OpenAI-compatible
	// endpoint, Groq by default), gemini or anthropic.
	// BaseURL and Model default per provider when left empty.
	Provider string `mapstructure:"provider" validate:"required,oneof=openai gemini anthropic"`
	APIKey   string `mapstructure:"api_key"  validate:"required"`
	BaseURL  string `mapstructure:"base_url" validate:"omitempty,url"`
	Model    string `mapstructure:"model"    validate:"required"`

	// Timeout bounds a single upstream call.
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`

	// MaxAttempts is the total number of calls made for one request when the
	// upstream keeps answering 429.
	MaxAttempts int           `mapstructure:"max_attempts"     validate:"gte=1,lte=10"`
	RetryDelay  time.Duration `mapstructure:"retry_delay"      validate:"gt=0"`
	MinInterval time.Duration `mapstructure:"min_interval"     validate:"gte=0"`
}

// SpeechConfig configures audio transcription. Empty APIKey and BaseURL
// inherit the LLM settings.
type SpeechConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`
	Model   string `mapstructure:"model"    validate:"required"`
}

// CacheConfig sizes the generated lesson cache.
type CacheConfig struct {
	LessonSize int           `mapstructure:"lesson_size" validate:"gt=0"`
	LessonTTL  time.Duration `mapstructure:"lesson_ttl"  validate:"gte=0"`
}

// HistoryConfig controls the translation history store.
type HistoryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path" validate:"required_if=Enabled true"`
}

// YouTubeConfig points the caption fetcher at the timed-text endpoint.
type YouTubeConfig struct {
	CaptionsURL string        `mapstructure:"captions_url" validate:"required,url"`
	Timeout     time.Duration `mapstructure:"timeout"      validate:"gt=0"`
}
