package generation

import (
	"context"
	"log/slog"
	"time"

	"github.com/phrazzld/polyglot-api/internal/platform/logger"
	"github.com/phrazzld/polyglot-api/internal/redact"
)

type loggingCompleter struct {
	inner Completer
}

// WithLogging records model, latency, token usage and outcome of every call
// using the logger carried by the request context.
func WithLogging(c Completer) Completer {
	return &loggingCompleter{inner: c}
}

func (l *loggingCompleter) Complete(ctx context.Context, req Request) (*Completion, error) {
	start := time.Now()
	resp, err := l.inner.Complete(ctx, req)

	attrs := []slog.Attr{
		slog.String("model", l.inner.Model()),
		slog.Int64("latency_ms", time.Since(start).Milliseconds()),
		slog.Int("max_tokens", req.MaxTokens),
		slog.Bool("json", req.JSON),
	}

	log := logger.FromContextOrDefault(ctx)
	if err != nil {
		attrs = append(attrs, slog.String("error", redact.Error(err)))
		log.LogAttrs(ctx, slog.LevelWarn, "llm completion failed", attrs...)
		return nil, err
	}

	attrs = append(attrs,
		slog.Int("input_tokens", resp.Usage.InputTokens),
		slog.Int("output_tokens", resp.Usage.OutputTokens),
	)
	log.LogAttrs(ctx, slog.LevelDebug, "llm completion", attrs...)
	return resp, nil
}

func (l *loggingCompleter) Model() string {
	return l.inner.Model()
}
