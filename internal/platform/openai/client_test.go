package openai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/polyglot-api/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := New(Config{APIKey: "test-key", BaseURL: server.URL + "/v1", Model: "llama-3.3-70b-versatile"})
	require.NoError(t, err)
	return c
}

func writeCompletion(w http.ResponseWriter, content string) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1234567890,
		"model":   "llama-3.3-70b-versatile",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": "stop",
		}},
		"usage": map[string]any{"prompt_tokens": 40, "completion_tokens": 25, "total_tokens": 65},
	})
}

func writeError(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{"message": http.StatusText(status), "type": "error"},
	})
}

func TestNew(t *testing.T) {
	_, err := New(Config{Model: "m"})
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)

	_, err = New(Config{APIKey: "k"})
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)

	c, err := New(Config{APIKey: "k", Model: "m"})
	require.NoError(t, err)
	assert.Equal(t, "m", c.Model())
}

func TestComplete(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		var body map[string]any
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			writeCompletion(w, `{"translation":"hola"}`)
		})

		resp, err := c.Complete(context.Background(), generation.Request{
			System:      "You are a translator.",
			Messages:    []generation.Message{{Role: generation.RoleUser, Content: "hello"}},
			MaxTokens:   2000,
			Temperature: 0.3,
			JSON:        true,
		})

		require.NoError(t, err)
		assert.Equal(t, `{"translation":"hola"}`, resp.Content)
		assert.Equal(t, 40, resp.Usage.InputTokens)
		assert.Equal(t, 25, resp.Usage.OutputTokens)

		assert.Equal(t, "llama-3.3-70b-versatile", body["model"])
		assert.EqualValues(t, 2000, body["max_tokens"])
		assert.Equal(t, map[string]any{"type": "json_object"}, body["response_format"])
		messages := body["messages"].([]any)
		require.Len(t, messages, 2)
		assert.Equal(t, "system", messages[0].(map[string]any)["role"])
		assert.Equal(t, "user", messages[1].(map[string]any)["role"])
	})

	t.Run("no JSON hint", func(t *testing.T) {
		var body map[string]any
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			writeCompletion(w, "Hola!")
		})

		_, err := c.Complete(context.Background(), generation.UserPrompt("", "hi"))

		require.NoError(t, err)
		assert.NotContains(t, body, "response_format")
	})

	t.Run("rate limit", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeError(w, http.StatusTooManyRequests)
		})

		_, err := c.Complete(context.Background(), generation.UserPrompt("", "hi"))

		require.Error(t, err)
		assert.ErrorIs(t, err, generation.ErrRateLimited)
	})

	t.Run("server error", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeError(w, http.StatusBadGateway)
		})

		_, err := c.Complete(context.Background(), generation.UserPrompt("", "hi"))

		assert.ErrorIs(t, err, generation.ErrUpstream)
		assert.NotErrorIs(t, err, generation.ErrRateLimited)
	})

	t.Run("no choices", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `{"id":"x","object":"chat.completion","choices":[]}`)
		})

		_, err := c.Complete(context.Background(), generation.UserPrompt("", "hi"))

		assert.ErrorIs(t, err, generation.ErrInvalidResponse)
	})
}

func TestTranscribe(t *testing.T) {
	t.Run("uploads audio and trims text", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/audio/transcriptions", r.URL.Path)
			require.NoError(t, r.ParseMultipartForm(1<<20))
			assert.Equal(t, "es", r.FormValue("language"))

			file, header, err := r.FormFile("file")
			require.NoError(t, err)
			defer file.Close()
			assert.Equal(t, "clip.webm", header.Filename)
			data, _ := io.ReadAll(file)
			assert.Equal(t, "fake-audio", string(data))

			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `{"text":"  hola mundo \n"}`)
		})

		text, err := c.Transcribe(context.Background(), generation.TranscriptionRequest{
			Audio:    strings.NewReader("fake-audio"),
			Filename: "clip.webm",
			Language: "es",
		})

		require.NoError(t, err)
		assert.Equal(t, "hola mundo", text)
	})

	t.Run("missing audio", func(t *testing.T) {
		c, err := New(Config{APIKey: "k", Model: "whisper-large-v3"})
		require.NoError(t, err)

		_, err = c.Transcribe(context.Background(), generation.TranscriptionRequest{})
		assert.Error(t, err)
	})
}
