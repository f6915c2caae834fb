package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/phrazzld/polyglot-api/internal/generation"
	openai "github.com/sashabaranov/go-openai"
)

// DefaultBaseURL is Groq's OpenAI-compatible endpoint.
const DefaultBaseURL = "https://api.groq.com/openai/v1"

// Config holds the settings for one OpenAI-compatible endpoint.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Client is a generation.Completer backed by the chat completions API, and a
// generation.Transcriber backed by the audio transcriptions API.
type Client struct {
	client *openai.Client
	model  string
}

var (
	_ generation.Completer   = (*Client)(nil)
	_ generation.Transcriber = (*Client)(nil)
)

// New creates a client. BaseURL defaults to DefaultBaseURL.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: openai API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	conf := openai.DefaultConfig(cfg.APIKey)
	conf.BaseURL = DefaultBaseURL
	if cfg.BaseURL != "" {
		conf.BaseURL = cfg.BaseURL
	}
	if cfg.Timeout > 0 {
		conf.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		client: openai.NewClientWithConfig(conf),
		model:  cfg.Model,
	}, nil
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

// Complete sends one chat completion request.
func (c *Client) Complete(ctx context.Context, req generation.Request) (*generation.Completion, error) {
	chatReq := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    buildMessages(req),
		MaxTokens:   req.MaxTokens,
		Temperature: float32(req.Temperature),
	}
	if req.JSON {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := c.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, mapError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in completion response", generation.ErrInvalidResponse)
	}

	return &generation.Completion{
		Content: resp.Choices[0].Message.Content,
		Model:   resp.Model,
		Usage: generation.Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
		},
	}, nil
}

func buildMessages(req generation.Request) []openai.ChatCompletionMessage {
	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages)+1)

	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	for _, m := range req.Messages {
		role := openai.ChatMessageRoleUser
		if m.Role == generation.RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}
	return messages
}

func mapError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
		return &generation.RateLimitError{Err: err}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode == http.StatusTooManyRequests {
		return &generation.RateLimitError{Err: err}
	}
	return fmt.Errorf("%w: %w", generation.ErrUpstream, err)
}
