package service

import (
	"errors"
	"fmt"
)

// Sentinel errors for expected conditions. The API layer maps them to
// status codes; callers check them with errors.Is.
var (
	// ErrLanguageNotFound indicates that no course exists for the language.
	ErrLanguageNotFound = errors.New("language not found")

	// ErrEmptyTranscription indicates that speech-to-text produced no words.
	ErrEmptyTranscription = errors.New("no speech detected in audio")

	// ErrCaptionsNotFound indicates that a video has no captions in the
	// requested language.
	ErrCaptionsNotFound = errors.New("captions not found")

	// ErrHistoryDisabled indicates that history persistence is switched off.
	ErrHistoryDisabled = errors.New("history is disabled")
)

// ServiceError wraps unexpected failures with the service and operation
// that produced them.
type ServiceError struct {
	Service   string
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s failed: %s: %v", e.Service, e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s service %s failed: %s", e.Service, e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// newServiceError wraps err. Sentinels declared above are returned unwrapped
// so handlers can match them directly.
func newServiceError(service, operation, message string, err error) error {
	if err == nil {
		return nil
	}
	for _, sentinel := range []error{ErrLanguageNotFound, ErrEmptyTranscription, ErrCaptionsNotFound, ErrHistoryDisabled} {
		if errors.Is(err, sentinel) {
			return err
		}
	}
	return &ServiceError{Service: service, Operation: operation, Message: message, Err: err}
}
