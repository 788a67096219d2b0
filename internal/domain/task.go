package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Task-specific validation errors.
var (
	// ErrTaskIDEmpty is returned when a task ID is empty or nil.
	ErrTaskIDEmpty = errors.New("task ID cannot be empty")

	// ErrTaskTitleEmpty is returned when a task's title is empty.
	ErrTaskTitleEmpty = errors.New("task title cannot be empty")

	// ErrTaskPriorityRange is returned when a task's priority is outside [1,5].
	ErrTaskPriorityRange = errors.New("task priority must be between 1 and 5")
)

// Task priority bounds. 1 is the highest priority, 5 the lowest.
const (
	TaskPriorityMin     = 1
	TaskPriorityMax     = 5
	TaskPriorityDefault = 3
)

// Task represents a single to-do item. Description and DueDate are nullable;
// a nil pointer means the field is unset.
type Task struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	DueDate     *Date     `json:"due_date"`
	Priority    int       `json:"priority"`
	Tags        []string  `json:"tags"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TaskParams holds the caller-supplied fields for creating a task. Priority
// is a pointer so that "not provided" can fall back to the default.
type TaskParams struct {
	Title       string
	Description *string
	DueDate     *Date
	Priority    *int
	Tags        []string
	Completed   bool
}

// NewTask creates a Task from the given params, generating a fresh ID and
// stamping CreatedAt = UpdatedAt = now (UTC). Returns an error if validation
// fails.
func NewTask(p TaskParams) (*Task, error) {
	now := time.Now().UTC()
	priority := TaskPriorityDefault
	if p.Priority != nil {
		priority = *p.Priority
	}

	task := &Task{
		ID:          uuid.New(),
		Title:       p.Title,
		Description: p.Description,
		DueDate:     p.DueDate,
		Priority:    priority,
		Tags:        cloneTags(p.Tags),
		Completed:   p.Completed,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks the Task's invariants.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrTaskIDEmpty
	}

	if t.Title == "" {
		return ErrTaskTitleEmpty
	}

	if t.Priority < TaskPriorityMin || t.Priority > TaskPriorityMax {
		return fmt.Errorf("%w: got %d", ErrTaskPriorityRange, t.Priority)
	}

	return nil
}

// TaskPatch is a partial update. Only fields with Set = true are applied.
// Description and DueDate accept an explicit null (clears the field); the
// remaining fields reject it.
type TaskPatch struct {
	Title       Optional[string]   `json:"title"`
	Description Optional[string]   `json:"description"`
	DueDate     Optional[Date]     `json:"due_date"`
	Priority    Optional[int]      `json:"priority"`
	Tags        Optional[[]string] `json:"tags"`
	Completed   Optional[bool]     `json:"completed"`
}

// Apply merges the patch into the task and refreshes UpdatedAt. The task is
// untouched when an error is returned, so a failed validation never leaves a
// half-applied record behind.
func (t *Task) Apply(p TaskPatch) error {
	updated := *t

	if p.Title.Set {
		if p.Title.Null {
			return NewValidationError("title", "must not be null", ErrValidation)
		}
		updated.Title = p.Title.Value
	}
	if p.Description.Set {
		if p.Description.Null {
			updated.Description = nil
		} else {
			v := p.Description.Value
			updated.Description = &v
		}
	}
	if p.DueDate.Set {
		if p.DueDate.Null {
			updated.DueDate = nil
		} else {
			v := p.DueDate.Value
			updated.DueDate = &v
		}
	}
	if p.Priority.Set {
		if p.Priority.Null {
			return NewValidationError("priority", "must not be null", ErrValidation)
		}
		updated.Priority = p.Priority.Value
	}
	if p.Tags.Set {
		if p.Tags.Null {
			return NewValidationError("tags", "must not be null", ErrValidation)
		}
		updated.Tags = cloneTags(p.Tags.Value)
	}
	if p.Completed.Set {
		if p.Completed.Null {
			return NewValidationError("completed", "must not be null", ErrValidation)
		}
		updated.Completed = p.Completed.Value
	}

	if err := updated.Validate(); err != nil {
		return err
	}

	updated.UpdatedAt = time.Now().UTC()
	*t = updated
	return nil
}

// HasTag reports whether the task carries the given tag.
func (t *Task) HasTag(tag string) bool {
	for _, candidate := range t.Tags {
		if candidate == tag {
			return true
		}
	}
	return false
}

// cloneTags copies a tag slice so stored records never share backing arrays
// with request payloads. A nil input normalizes to an empty slice, keeping
// list responses serializing as [] rather than null.
func cloneTags(tags []string) []string {
	cloned := make([]string, len(tags))
	copy(cloned, tags)
	return cloned
}
