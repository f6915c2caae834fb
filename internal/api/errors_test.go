package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/polyglot-api/internal/api/shared"
	"github.com/phrazzld/polyglot-api/internal/domain"
	"github.com/phrazzld/polyglot-api/internal/generation"
	"github.com/phrazzld/polyglot-api/internal/service"
	"github.com/phrazzld/polyglot-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{
			name:           "nil error",
			err:            nil,
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "validation error",
			err:            domain.ErrValidation,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "wrapped invalid level",
			err:            fmt.Errorf("practice: %w", domain.ErrInvalidLevel),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid exercise type",
			err:            domain.ErrInvalidExerciseType,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty body",
			err:            shared.ErrEmptyBody,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "language not found",
			err:            service.ErrLanguageNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "captions not found",
			err:            fmt.Errorf("captions: %w", service.ErrCaptionsNotFound),
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "history entry not found",
			err:            store.ErrHistoryEntryNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "empty transcription",
			err:            service.ErrEmptyTranscription,
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "transcription unavailable",
			err:            generation.ErrTranscriptionUnavailable,
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name:           "history disabled",
			err:            service.ErrHistoryDisabled,
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name:           "retries exhausted",
			err:            fmt.Errorf("translate: %w", generation.ErrRetriesExhausted),
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "unknown error",
			err:            errors.New("unknown error"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedStatus, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedMessage string
	}{
		{
			name:            "nil error",
			err:             nil,
			expectedMessage: "An unexpected error occurred",
		},
		{
			name:            "invalid level",
			err:             fmt.Errorf("%w: %w", domain.ErrValidation, domain.ErrInvalidLevel),
			expectedMessage: "Invalid proficiency level",
		},
		{
			name:            "language not found",
			err:             service.ErrLanguageNotFound,
			expectedMessage: "Language not found",
		},
		{
			name:            "retries exhausted",
			err:             fmt.Errorf("chat: %w", generation.ErrRetriesExhausted),
			expectedMessage: generation.ErrRetriesExhausted.Error(),
		},
		{
			name:            "upstream error with key",
			err:             errors.New("upstream said: invalid api key sk-abc123"),
			expectedMessage: "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			message := GetSafeErrorMessage(tt.err)
			assert.Equal(t, tt.expectedMessage, message)

			if tt.err != nil && tt.expectedMessage == "An unexpected error occurred" {
				assert.NotContains(t, message, tt.err.Error())
			}
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	testError := errors.New(
		"Key: 'ChatRequest.Language' Error:Field validation for 'Language' failed on the 'required' tag",
	)
	safeMessage := SanitizeValidationError(testError)

	assert.NotEqual(t, testError.Error(), safeMessage)
	assert.Equal(t, "Invalid Language: required field", safeMessage)

	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("Some other kind of error")))
}
