package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/phrazzld/polyglot-api/internal/generation"
	"google.golang.org/genai"
)

// Config holds Gemini settings.
type Config struct {
	APIKey string
	Model  string
	// BaseURL overrides the API endpoint; tests point it at a local server.
	BaseURL string
	Timeout time.Duration
}

// Completer implements generation.Completer using Gemini.
type Completer struct {
	client *genai.Client
	model  string
}

var _ generation.Completer = (*Completer)(nil)

// New creates a Gemini completer.
func New(ctx context.Context, cfg Config) (*Completer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	if cfg.Timeout > 0 {
		clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %w", generation.ErrInvalidConfig, err)
	}

	return &Completer{client: client, model: cfg.Model}, nil
}

// Model returns the configured model name.
func (c *Completer) Model() string {
	return c.model
}

// Complete sends one GenerateContent request.
func (c *Completer) Complete(ctx context.Context, req generation.Request) (*generation.Completion, error) {
	config := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(req.MaxTokens),
		Temperature:     genai.Ptr(float32(req.Temperature)),
	}
	if req.System != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		}
	}
	if req.JSON {
		config.ResponseMIMEType = "application/json"
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, buildContents(req.Messages), config)
	if err != nil {
		return nil, mapError(err)
	}

	if len(result.Candidates) == 0 {
		return nil, fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}
	if result.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return nil, fmt.Errorf("%w: content blocked by safety filters", generation.ErrInvalidResponse)
	}

	completion := &generation.Completion{
		Content: result.Text(),
		Model:   c.model,
	}
	if result.UsageMetadata != nil {
		completion.Usage = generation.Usage{
			InputTokens:  int(result.UsageMetadata.PromptTokenCount),
			OutputTokens: int(result.UsageMetadata.CandidatesTokenCount),
		}
	}
	return completion, nil
}

func buildContents(msgs []generation.Message) []*genai.Content {
	out := make([]*genai.Content, len(msgs))
	for i, m := range msgs {
		role := genai.RoleUser
		if m.Role == generation.RoleAssistant {
			role = genai.RoleModel
		}
		out[i] = genai.NewContentFromText(m.Content, genai.Role(role))
	}
	return out
}

func mapError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var apiErr *genai.APIError
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests {
		return &generation.RateLimitError{Err: err}
	}
	return fmt.Errorf("%w: %w", generation.ErrUpstream, err)
}
