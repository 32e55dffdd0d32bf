package domain

import (
	"errors"
	"fmt"
)

// ErrInvariant marks a guardrail post-condition failure. It indicates a
// logic defect in the engine, never bad input; callers should treat it
// as fatal rather than report a possibly wrong classification.
var ErrInvariant = errors.New("classification invariant violated")

// ValidationError rejects malformed or out-of-range structured input
// before it reaches the engine. Input is never silently coerced.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
