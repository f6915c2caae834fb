// Package anthropic implements generation.Completer with the Anthropic
// Messages API.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/phrazzld/polyglot-api/internal/generation"
)

// Config holds Anthropic settings.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// Completer implements generation.Completer using Claude models.
type Completer struct {
	client *anthropic.Client
	model  string
}

var _ generation.Completer = (*Completer)(nil)

// New creates an Anthropic completer. The SDK's own retries are disabled;
// generation.WithRetry owns the retry policy.
func New(cfg Config) (*Completer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: anthropic API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}

	client := anthropic.NewClient(opts...)
	return &Completer{client: &client, model: cfg.Model}, nil
}

// Model returns the configured model name.
func (c *Completer) Model() string {
	return c.model
}

// Complete sends one Messages request. Anthropic has no JSON response mode;
// the JSON hint is appended to the system prompt instead.
func (c *Completer) Complete(ctx context.Context, req generation.Request) (*generation.Completion, error) {
	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   int64(req.MaxTokens),
		Messages:    buildMessages(req.Messages),
		Temperature: anthropic.Float(req.Temperature),
	}

	system := req.System
	if req.JSON {
		system = strings.TrimSpace(system + "\n\nRespond with a single JSON object and nothing else.")
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return nil, mapError(err)
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return nil, fmt.Errorf("%w: no text content in response", generation.ErrInvalidResponse)
	}

	return &generation.Completion{
		Content: text.String(),
		Model:   string(msg.Model),
		Usage: generation.Usage{
			InputTokens:  int(msg.Usage.InputTokens),
			OutputTokens: int(msg.Usage.OutputTokens),
		},
	}, nil
}

func buildMessages(msgs []generation.Message) []anthropic.MessageParam {
	out := make([]anthropic.MessageParam, len(msgs))
	for i, m := range msgs {
		if m.Role == generation.RoleAssistant {
			out[i] = anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Content))
			continue
		}
		out[i] = anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content))
	}
	return out
}

func mapError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests {
		return &generation.RateLimitError{Err: err}
	}
	return fmt.Errorf("%w: %w", generation.ErrUpstream, err)
}
