package anthropic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/polyglot-api/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCompleter(t *testing.T, handler http.HandlerFunc) *Completer {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := New(Config{APIKey: "test-key", Model: "claude-haiku-4-5", BaseURL: server.URL})
	require.NoError(t, err)
	return c
}

func TestNew(t *testing.T) {
	_, err := New(Config{Model: "m"})
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)

	_, err = New(Config{APIKey: "k"})
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)
}

func TestComplete(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		var body map[string]any
		c := newTestCompleter(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/messages", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"id":          "msg_test",
				"type":        "message",
				"role":        "assistant",
				"content":     []map[string]any{{"type": "text", "text": `{"translation":"bonjour"}`}},
				"model":       "claude-haiku-4-5",
				"stop_reason": "end_turn",
				"usage":       map[string]any{"input_tokens": 50, "output_tokens": 30},
			})
		})

		resp, err := c.Complete(context.Background(), generation.Request{
			System:      "You are a translator.",
			Messages:    []generation.Message{{Role: generation.RoleUser, Content: "hello"}},
			MaxTokens:   500,
			Temperature: 0.7,
			JSON:        true,
		})

		require.NoError(t, err)
		assert.Equal(t, `{"translation":"bonjour"}`, resp.Content)
		assert.Equal(t, 50, resp.Usage.InputTokens)
		assert.Equal(t, 30, resp.Usage.OutputTokens)

		assert.EqualValues(t, 500, body["max_tokens"])
		system := body["system"].([]any)
		require.Len(t, system, 1)
		assert.Contains(t, system[0].(map[string]any)["text"], "JSON object")
	})

	t.Run("rate limit", func(t *testing.T) {
		c := newTestCompleter(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"type":  "error",
				"error": map[string]any{"type": "rate_limit_error", "message": "slow down"},
			})
		})

		_, err := c.Complete(context.Background(), generation.UserPrompt("", "hi"))

		assert.ErrorIs(t, err, generation.ErrRateLimited)
	})

	t.Run("overloaded", func(t *testing.T) {
		c := newTestCompleter(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(529)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"type":  "error",
				"error": map[string]any{"type": "overloaded_error", "message": "busy"},
			})
		})

		_, err := c.Complete(context.Background(), generation.UserPrompt("", "hi"))

		assert.ErrorIs(t, err, generation.ErrUpstream)
	})
}
