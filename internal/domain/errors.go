package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidFormat is returned when data is not in the expected format.
	ErrInvalidFormat = errors.New("invalid format")
)

// ValidationError carries the field a validation failure refers to, so the
// API layer can report field-level detail without parsing error strings.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError for the given field wrapping
// the given sentinel (usually ErrValidation).
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
