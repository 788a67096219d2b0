package store

import (
	"context"
	"math"

	"github.com/google/uuid"
	"github.com/tracklet/tracker-api/internal/domain"
)

// Page describes a pagination window. Page numbering starts at 1; the
// window covers [(Page-1)*Size, (Page-1)*Size+Size) of the filtered
// sequence in insertion order. Out-of-range pages yield an empty result,
// never an error.
type Page struct {
	Page int
	Size int
}

// Offset returns the index of the first record in the window. A page number
// large enough to overflow the multiplication clamps to math.MaxInt so the
// window stays past the end of any sequence instead of wrapping negative.
func (p Page) Offset() int {
	if p.Size > 0 && p.Page-1 > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Size
}

// TaskFilter narrows a task listing. Nil fields match everything.
type TaskFilter struct {
	Tag       *string
	Completed *bool
}

// Matches reports whether the task passes every provided predicate.
func (f TaskFilter) Matches(t *domain.Task) bool {
	if f.Tag != nil && !t.HasTag(*f.Tag) {
		return false
	}
	if f.Completed != nil && t.Completed != *f.Completed {
		return false
	}
	return true
}

// TaskStore defines the interface for task persistence. The current backend
// is the in-memory implementation in platform/memstore; the interface is the
// seam a persistent backend would plug into.
type TaskStore interface {
	// List returns the stored tasks matching the filter, in insertion
	// order, sliced to the requested page window.
	List(ctx context.Context, filter TaskFilter, page Page) ([]*domain.Task, error)

	// Create saves a new task to the store.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// Update applies the patch to the stored task and returns the result.
	// The existence check and the merge run atomically, so concurrent
	// updates cannot be lost. Returns ErrTaskNotFound if the task does not
	// exist; returns the patch's validation error unchanged when the merge
	// fails, leaving the stored record untouched.
	Update(ctx context.Context, id uuid.UUID, patch domain.TaskPatch) (*domain.Task, error)

	// Delete removes a task from the store by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
