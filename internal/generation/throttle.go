package generation

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

type throttledCompleter struct {
	inner   Completer
	limiter *rate.Limiter
}

// WithThrottle spaces upstream calls at least minInterval apart across all
// callers sharing the returned Completer. A zero interval disables it.
func WithThrottle(c Completer, minInterval time.Duration) Completer {
	if minInterval <= 0 {
		return c
	}
	return &throttledCompleter{
		inner:   c,
		limiter: rate.NewLimiter(rate.Every(minInterval), 1),
	}
}

func (t *throttledCompleter) Complete(ctx context.Context, req Request) (*Completion, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for request slot: %w", err)
	}
	return t.inner.Complete(ctx, req)
}

func (t *throttledCompleter) Model() string {
	return t.inner.Model()
}
