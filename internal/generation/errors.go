package generation

import (
	"errors"
	"fmt"
	"time"
)

// Common errors returned by the generation package
var (
	// ErrRateLimited is matched by every *RateLimitError.
	ErrRateLimited = errors.New("rate limited by language model provider")

	// ErrRetriesExhausted is returned once every allowed attempt was rate limited.
	ErrRetriesExhausted = errors.New("max retries exceeded, please try again later")

	// ErrInvalidResponse is returned when the LLM response cannot be parsed or is malformed
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrUpstream covers provider outages, network failures and unexpected statuses.
	ErrUpstream = errors.New("language model provider error")

	// ErrInvalidConfig is returned when a provider is constructed with bad settings
	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrTranscriptionUnavailable is returned when no Transcriber is configured.
	ErrTranscriptionUnavailable = errors.New("speech transcription is not available")
)

// RateLimitError is returned by providers for HTTP 429 responses.
type RateLimitError struct {
	// RetryAfter is the provider's hint, zero when absent.
	RetryAfter time.Duration
	Err        error
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
	}
	return fmt.Sprintf("rate limited: %v", e.Err)
}

func (e *RateLimitError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrRateLimited) match any RateLimitError.
func (e *RateLimitError) Is(target error) bool { return target == ErrRateLimited }
