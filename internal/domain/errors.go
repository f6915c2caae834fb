package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain value fails validation.
	// It is usually wrapped with a more specific message.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyContent is returned when required text is empty.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrInvalidLevel is returned for a proficiency level outside A1-C2.
	ErrInvalidLevel = errors.New("invalid proficiency level")

	// ErrInvalidExerciseType is returned for an unknown practice exercise type.
	ErrInvalidExerciseType = errors.New("invalid exercise type")

	// ErrInvalidHistoryKind is returned for a history entry kind other than text or voice.
	ErrInvalidHistoryKind = errors.New("invalid history kind")
)
