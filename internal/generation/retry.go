package generation

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/phrazzld/polyglot-api/internal/platform/logger"
)

// RetryConfig controls WithRetry.
type RetryConfig struct {
	// MaxAttempts is the total number of calls, including the first.
	MaxAttempts int
	// BaseDelay is doubled after every rate-limited attempt.
	BaseDelay time.Duration
}

// DefaultRetryConfig makes three calls, sleeping 1s then 2s between them.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{MaxAttempts: 3, BaseDelay: time.Second}
}

type retryCompleter struct {
	inner Completer
	cfg   RetryConfig
	sleep func(ctx context.Context, d time.Duration) error
}

// WithRetry wraps a Completer so that rate-limited calls are retried with
// exponential backoff. Only rate-limit errors are retried; anything else is
// returned from the attempt that produced it.
func WithRetry(c Completer, cfg RetryConfig) Completer {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &retryCompleter{inner: c, cfg: cfg, sleep: sleepContext}
}

func (r *retryCompleter) Complete(ctx context.Context, req Request) (*Completion, error) {
	return retry(ctx, r.cfg, r.sleep, func() (*Completion, error) {
		return r.inner.Complete(ctx, req)
	})
}

func (r *retryCompleter) Model() string {
	return r.inner.Model()
}

type retryTranscriber struct {
	inner Transcriber
	cfg   RetryConfig
	sleep func(ctx context.Context, d time.Duration) error
}

// WithTranscriptionRetry is WithRetry for a Transcriber. The audio is
// buffered once so every attempt uploads it from the start.
func WithTranscriptionRetry(t Transcriber, cfg RetryConfig) Transcriber {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &retryTranscriber{inner: t, cfg: cfg, sleep: sleepContext}
}

func (r *retryTranscriber) Transcribe(ctx context.Context, req TranscriptionRequest) (string, error) {
	var audio []byte
	if req.Audio != nil {
		var err error
		if audio, err = io.ReadAll(req.Audio); err != nil {
			return "", fmt.Errorf("reading audio: %w", err)
		}
	}

	return retry(ctx, r.cfg, r.sleep, func() (string, error) {
		attempt := req
		if audio != nil {
			attempt.Audio = bytes.NewReader(audio)
		}
		return r.inner.Transcribe(ctx, attempt)
	})
}

// retry runs call until it succeeds, fails with something other than a
// rate limit, or cfg.MaxAttempts calls have been made.
func retry[T any](
	ctx context.Context,
	cfg RetryConfig,
	sleep func(ctx context.Context, d time.Duration) error,
	call func() (T, error),
) (T, error) {
	var zero T
	var lastErr error

	for attempt := range cfg.MaxAttempts {
		resp, err := call()
		if err == nil {
			return resp, nil
		}
		if !errors.Is(err, ErrRateLimited) {
			return zero, err
		}
		lastErr = err

		if attempt == cfg.MaxAttempts-1 {
			break
		}

		wait := backoff(cfg, attempt, err)
		logger.FromContextOrDefault(ctx).Warn("rate limited by provider, backing off",
			"attempt", attempt+1,
			"max_attempts", cfg.MaxAttempts,
			"wait", wait.String())

		if err := sleep(ctx, wait); err != nil {
			return zero, err
		}
	}

	return zero, fmt.Errorf("%w: %w", ErrRetriesExhausted, lastErr)
}

// backoff is BaseDelay * 2^attempt unless the provider asked for longer.
func backoff(cfg RetryConfig, attempt int, err error) time.Duration {
	wait := cfg.BaseDelay << attempt

	var rl *RateLimitError
	if errors.As(err, &rl) && rl.RetryAfter > wait {
		return rl.RetryAfter
	}
	return wait
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
