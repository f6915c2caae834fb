package service

import (
	"errors"

	"github.com/phrazzld/polyglot-api/internal/generation"
)

// isSoftFailure reports whether err means the model answered but the answer
// was unusable. Such failures are answered with canned content; anything
// else (rate limits, upstream outages, cancellation) propagates.
func isSoftFailure(err error) bool {
	return errors.Is(err, generation.ErrInvalidResponse)
}
