package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/polyglot-api/internal/api/shared"
	"github.com/phrazzld/polyglot-api/internal/platform/logger"
)

// requestLogger returns the request-scoped logger when the trace middleware
// installed one, otherwise the handler's own logger.
func requestLogger(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if l := logger.FromContext(r.Context()); l != nil {
		return l
	}
	return fallback
}

// decodeAndValidate decodes the JSON body into req and validates it. On
// failure it writes a 400 response and returns false. Missing fields are
// reported as "Missing required parameters" with the received payload in
// the details so the client can see what arrived.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := shared.DecodeJSON(r, req); err != nil {
		msg := "Invalid request format"
		if errors.Is(err, shared.ErrEmptyBody) {
			msg = "No JSON data received"
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, msg, err)
		return false
	}

	if err := shared.ValidateRequest(req); err != nil {
		respondValidationError(w, r, err, req)
		return false
	}
	return true
}

// respondValidationError writes a 400 describing which fields failed and
// echoing what was received.
func respondValidationError(w http.ResponseWriter, r *http.Request, err error, received any) {
	details := shared.ValidationDetails(err)
	if details == nil {
		details = map[string]any{}
	}
	details["received"] = received

	msg := SanitizeValidationError(err)
	if isMissingField(err) {
		msg = "Missing required parameters"
	}
	shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, msg, err, shared.WithDetails(details))
}

func isMissingField(err error) bool {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false
	}
	for _, fe := range verrs {
		if strings.HasPrefix(fe.Tag(), "required") || fe.Tag() == "min" {
			return true
		}
	}
	return false
}

// respondServiceError maps a service error to its status and safe message.
// fallback replaces the generic 500 message when set.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := MapErrorToStatusCode(err)
	msg := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && fallback != "" && msg == genericErrorMessage {
		msg = fallback
	}
	shared.RespondWithErrorAndLog(w, r, status, msg, err)
}

// queryInt parses an optional integer query parameter. An absent value
// returns def.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
