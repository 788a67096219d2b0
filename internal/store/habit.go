package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/tracklet/tracker-api/internal/domain"
)

// HabitFilter narrows a habit listing. A nil Tag matches everything.
type HabitFilter struct {
	Tag *string
}

// Matches reports whether the habit passes every provided predicate.
func (f HabitFilter) Matches(h *domain.Habit) bool {
	if f.Tag != nil && !h.HasTag(*f.Tag) {
		return false
	}
	return true
}

// HabitStore defines the interface for habit persistence. It mirrors
// TaskStore; see that interface for the contract details.
type HabitStore interface {
	List(ctx context.Context, filter HabitFilter, page Page) ([]*domain.Habit, error)
	Create(ctx context.Context, habit *domain.Habit) error

	// GetByID returns ErrHabitNotFound if the habit does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Habit, error)

	// Update applies the patch atomically with the existence check.
	// Returns ErrHabitNotFound if the habit does not exist.
	Update(ctx context.Context, id uuid.UUID, patch domain.HabitPatch) (*domain.Habit, error)

	// Delete returns ErrHabitNotFound if the habit does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
