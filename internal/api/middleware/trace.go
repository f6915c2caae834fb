package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/polyglot-api/internal/api/shared"
	"github.com/phrazzld/polyglot-api/internal/platform/logger"
)

// TraceHeader carries the trace ID in both directions.
const TraceHeader = "X-Trace-ID"

// TraceMiddleware adds a trace ID to the request context and a logger
// annotated with it. A trace ID supplied by the caller is reused.
// This middleware should be applied early in the middleware chain to ensure
// that all subsequent handlers have access to the trace ID.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if incoming := r.Header.Get(TraceHeader); incoming != "" && len(incoming) <= 64 {
			ctx = shared.WithTraceID(ctx, incoming)
		} else {
			ctx = shared.SetTraceID(ctx)
		}
		traceID := shared.GetTraceID(ctx)

		log := logger.FromContextOrDefault(ctx).With(slog.String("trace_id", traceID))
		ctx = logger.WithLogger(ctx, log)

		log.Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		w.Header().Set(TraceHeader, traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
