package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/phrazzld/polyglot-api/internal/api/shared"
	"github.com/phrazzld/polyglot-api/internal/domain"
	"github.com/phrazzld/polyglot-api/internal/generation"
	"github.com/phrazzld/polyglot-api/internal/service"
	"github.com/phrazzld/polyglot-api/internal/store"
)

// genericErrorMessage is returned for errors with no client-safe mapping.
const genericErrorMessage = "An unexpected error occurred"

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidLevel),
		errors.Is(err, domain.ErrInvalidExerciseType),
		errors.Is(err, domain.ErrEmptyContent),
		errors.Is(err, shared.ErrEmptyBody),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Not found errors
	case errors.Is(err, service.ErrLanguageNotFound),
		errors.Is(err, service.ErrCaptionsNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, service.ErrEmptyTranscription):
		return http.StatusUnprocessableEntity

	// Optional capabilities that are switched off
	case errors.Is(err, generation.ErrTranscriptionUnavailable),
		errors.Is(err, service.ErrHistoryDisabled):
		return http.StatusServiceUnavailable

	// Default: internal server error, including exhausted upstream retries
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return genericErrorMessage
	}

	switch {
	case errors.Is(err, domain.ErrInvalidLevel):
		return "Invalid proficiency level"

	case errors.Is(err, domain.ErrInvalidExerciseType):
		return "Invalid exercise type"

	case errors.Is(err, domain.ErrEmptyContent):
		return "Content cannot be empty"

	case errors.Is(err, shared.ErrEmptyBody):
		return "Request body is required"

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return "Invalid request parameters"

	case errors.Is(err, service.ErrLanguageNotFound):
		return "Language not found"

	case errors.Is(err, service.ErrCaptionsNotFound):
		return "No captions available for this video"

	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	case errors.Is(err, service.ErrEmptyTranscription):
		return "No speech detected in audio"

	case errors.Is(err, generation.ErrTranscriptionUnavailable):
		return "Voice translation is not available"

	case errors.Is(err, service.ErrHistoryDisabled):
		return "Translation history is disabled"

	case errors.Is(err, generation.ErrRetriesExhausted):
		return generation.ErrRetriesExhausted.Error()

	default:
		return genericErrorMessage
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	if strings.Contains(errMsg, "Field validation") {
		// Example format: "Key: 'ChatRequest.Language' Error:Field validation for 'Language' failed on the 'required' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
