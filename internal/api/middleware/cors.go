package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/phrazzld/polyglot-api/internal/config"
)

// CORS returns middleware that handles Cross-Origin Resource Sharing.
// Preflight OPTIONS requests are answered directly with 204.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	origins := strings.Split(cfg.AllowedOrigins, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" {
				if allowed := allowedOrigin(origin, origins); allowed != "" {
					w.Header().Set("Access-Control-Allow-Origin", allowed)
					w.Header().Add("Vary", "Origin")
				}
			}

			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				w.Header().Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				w.Header().Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// allowedOrigin returns the value for Access-Control-Allow-Origin, or "" if
// origin is not permitted.
func allowedOrigin(origin string, allowed []string) string {
	for _, a := range allowed {
		switch a {
		case "*":
			return "*"
		case origin:
			return origin
		}
	}
	return ""
}
