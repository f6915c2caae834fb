package redact_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/phrazzld/polyglot-api/internal/redact"
	"github.com/stretchr/testify/assert"
)

func TestRedactString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "no sensitive data",
			input:    "translation request failed with status 429",
			expected: "translation request failed with status 429",
		},
		{
			name:     "groq key",
			input:    "invalid key gsk_abcdefghijklmnopqrstuvwxyz012345",
			expected: "invalid key [REDACTED_KEY]",
		},
		{
			name:     "anthropic key",
			input:    "auth failed for sk-ant-REDACTED",
			expected: "auth failed for [REDACTED_KEY]",
		},
		{
			name:     "google key",
			input:    "rejected AIzaSyA1234567890abcdefghijklmnopqrstu",
			expected: "rejected [REDACTED_KEY]",
		},
		{
			name:     "bearer header",
			input:    "header Authorization: Bearer abcdefgh12345678",
			expected: "header Authorization: Bearer [REDACTED_CREDENTIAL]",
		},
		{
			name:     "api key parameter",
			input:    "Using api_key=abcdef1234567890ghijklmnop for authentication",
			expected: "Using [REDACTED_KEY] for authentication",
		},
		{
			name:     "password parameter",
			input:    "Request failed with password=secret123 in payload",
			expected: "Request failed with [REDACTED_CREDENTIAL] in payload",
		},
		{
			name:     "email",
			input:    "contact learner@example.com for access",
			expected: "contact [REDACTED_EMAIL] for access",
		},
		{
			name:     "database path",
			input:    "unable to open /var/lib/polyglot/history.db",
			expected: "unable to open [REDACTED_PATH]",
		},
		{
			name:     "Windows path",
			input:    "Access denied to C:\\Program Files\\App\\config.json",
			expected: "Access denied to [REDACTED_PATH]",
		},
		{
			name:     "sql statement",
			input:    "query failed: SELECT id, source_text FROM translations WHERE id = ?",
			expected: "query failed: [REDACTED_SQL]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, redact.String(tt.input))
		})
	}
}

func TestRedactError(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Equal(t, "", redact.Error(nil))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := errors.New("upstream rejected gsk_abcdefghijklmnopqrstuvwxyz012345")
		wrapped := fmt.Errorf("completion failed: %w", base)

		got := redact.Error(wrapped)

		assert.Equal(t, "completion failed: upstream rejected [REDACTED_KEY]", got)
		assert.NotContains(t, got, "gsk_")
	})
}
