package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. This is the generic version of the entity-specific not found
	// errors (ErrTaskNotFound, ErrHabitNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")

	// Entity-specific "not found" errors

	// ErrTaskNotFound indicates that the requested task does not exist in the store.
	ErrTaskNotFound = fmt.Errorf("%w: task", ErrNotFound)

	// ErrHabitNotFound indicates that the requested habit does not exist in the store.
	ErrHabitNotFound = fmt.Errorf("%w: habit", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
