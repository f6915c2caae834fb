package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/polyglot-api/internal/config"
	"github.com/phrazzld/polyglot-api/internal/generation"
	"github.com/phrazzld/polyglot-api/internal/platform/anthropic"
	"github.com/phrazzld/polyglot-api/internal/platform/gemini"
	"github.com/phrazzld/polyglot-api/internal/platform/openai"
	"github.com/phrazzld/polyglot-api/internal/platform/sqlite"
	"github.com/phrazzld/polyglot-api/internal/service"
	"github.com/phrazzld/polyglot-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// db is nil when translation history is disabled.
	db *sql.DB

	completer   generation.Completer
	transcriber generation.Transcriber

	translationService service.TranslationService
	learningService    service.LearningService
	practiceService    service.PracticeService
	chatbotService     service.ChatbotService
	captionService     service.CaptionService
	historyService     service.HistoryService
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	completer, err := newCompleter(ctx, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM provider: %w", err)
	}
	app.completer = wrapCompleter(completer, cfg.LLM)
	logger.Info("LLM provider initialized",
		"provider", cfg.LLM.Provider,
		"model", completer.Model())

	transcriber, err := newTranscriber(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize transcription: %w", err)
	}
	if transcriber == nil {
		logger.Warn("voice translation disabled: provider cannot transcribe", "provider", cfg.LLM.Provider)
	} else {
		app.transcriber = generation.WithTranscriptionRetry(transcriber, retryConfig(cfg.LLM))
	}

	var historyStore store.HistoryStore
	if cfg.History.Enabled {
		app.db, err = sqlite.Open(ctx, cfg.History.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open history database: %w", err)
		}
		if err := sqlite.Migrate(ctx, app.db, logger); err != nil {
			app.cleanup()
			return nil, fmt.Errorf("failed to migrate history database: %w", err)
		}
		historyStore = sqlite.NewHistoryStore(app.db, logger)
		logger.Info("translation history enabled", "path", cfg.History.Path)
	}
	app.historyService = service.NewHistoryService(historyStore, logger)

	if err := app.initServices(); err != nil {
		app.cleanup()
		return nil, err
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// initServices builds the domain services on top of the shared completer.
func (app *application) initServices() error {
	var err error
	cfg := app.config

	app.translationService, err = service.NewTranslationService(
		app.completer, app.transcriber, app.historyService, app.logger)
	if err != nil {
		return fmt.Errorf("failed to create translation service: %w", err)
	}

	app.learningService, err = service.NewLearningService(app.completer, service.LessonCacheConfig{
		Size: cfg.Cache.LessonSize,
		TTL:  cfg.Cache.LessonTTL,
	}, app.logger)
	if err != nil {
		return fmt.Errorf("failed to create learning service: %w", err)
	}

	app.practiceService, err = service.NewPracticeService(app.completer, app.logger)
	if err != nil {
		return fmt.Errorf("failed to create practice service: %w", err)
	}

	app.chatbotService, err = service.NewChatbotService(app.completer, app.logger)
	if err != nil {
		return fmt.Errorf("failed to create chatbot service: %w", err)
	}

	app.captionService, err = service.NewCaptionService(service.CaptionConfig{
		BaseURL: cfg.YouTube.CaptionsURL,
		Timeout: cfg.YouTube.Timeout,
	}, &http.Client{Timeout: cfg.YouTube.Timeout}, app.logger)
	if err != nil {
		return fmt.Errorf("failed to create caption service: %w", err)
	}

	return nil
}

// newCompleter selects the completion backend named by cfg.Provider.
func newCompleter(ctx context.Context, cfg config.LLMConfig) (generation.Completer, error) {
	switch cfg.Provider {
	case "openai":
		return openai.New(openai.Config{
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
			Timeout: cfg.Timeout,
		})
	case "gemini":
		return gemini.New(ctx, gemini.Config{
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
			Timeout: cfg.Timeout,
		})
	case "anthropic":
		return anthropic.New(anthropic.Config{
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
			Timeout: cfg.Timeout,
		})
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", generation.ErrInvalidConfig, cfg.Provider)
	}
}

// wrapCompleter layers throttling, rate-limit retries and call logging. The
// throttle sits innermost so every retry attempt is also spaced out.
func wrapCompleter(c generation.Completer, cfg config.LLMConfig) generation.Completer {
	c = generation.WithThrottle(c, cfg.MinInterval)
	c = generation.WithRetry(c, retryConfig(cfg))
	return generation.WithLogging(c)
}

func retryConfig(cfg config.LLMConfig) generation.RetryConfig {
	return generation.RetryConfig{
		MaxAttempts: cfg.MaxAttempts,
		BaseDelay:   cfg.RetryDelay,
	}
}

// newTranscriber returns a speech-to-text client, or nil when the selected
// provider has no transcription API.
func newTranscriber(cfg *config.Config) (generation.Transcriber, error) {
	if cfg.LLM.Provider != "openai" || cfg.Speech.APIKey == "" {
		return nil, nil
	}
	return openai.New(openai.Config{
		APIKey:  cfg.Speech.APIKey,
		BaseURL: cfg.Speech.BaseURL,
		Model:   cfg.Speech.Model,
		Timeout: cfg.LLM.Timeout,
	})
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
		app.db = nil
	}
}
