package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Habit-specific validation errors.
var (
	// ErrHabitIDEmpty is returned when a habit ID is empty or nil.
	ErrHabitIDEmpty = errors.New("habit ID cannot be empty")

	// ErrHabitNameEmpty is returned when a habit's name is empty.
	ErrHabitNameEmpty = errors.New("habit name cannot be empty")
)

// HabitFrequencyDefault is used when a habit is created without a frequency.
// The value is free-form (daily/weekly/custom); no enum is enforced.
const HabitFrequencyDefault = "daily"

// Habit represents a recurring practice being tracked. Only the habit's
// metadata is stored; completion events and streaks are out of scope.
type Habit struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Frequency   string    `json:"frequency"`
	Target      *int      `json:"target"`
	Unit        *string   `json:"unit"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HabitParams holds the caller-supplied fields for creating a habit.
type HabitParams struct {
	Name        string
	Description *string
	Frequency   string
	Target      *int
	Unit        *string
	Tags        []string
}

// NewHabit creates a Habit from the given params, generating a fresh ID and
// stamping CreatedAt = UpdatedAt = now (UTC). An empty frequency falls back
// to HabitFrequencyDefault. Returns an error if validation fails.
func NewHabit(p HabitParams) (*Habit, error) {
	now := time.Now().UTC()
	frequency := p.Frequency
	if frequency == "" {
		frequency = HabitFrequencyDefault
	}

	habit := &Habit{
		ID:          uuid.New(),
		Name:        p.Name,
		Description: p.Description,
		Frequency:   frequency,
		Target:      p.Target,
		Unit:        p.Unit,
		Tags:        cloneTags(p.Tags),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := habit.Validate(); err != nil {
		return nil, err
	}

	return habit, nil
}

// Validate checks the Habit's invariants.
func (h *Habit) Validate() error {
	if h.ID == uuid.Nil {
		return ErrHabitIDEmpty
	}

	if h.Name == "" {
		return ErrHabitNameEmpty
	}

	return nil
}

// HabitPatch is a partial update. Only fields with Set = true are applied.
// Description, Target and Unit accept an explicit null (clears the field);
// the remaining fields reject it.
type HabitPatch struct {
	Name        Optional[string]   `json:"name"`
	Description Optional[string]   `json:"description"`
	Frequency   Optional[string]   `json:"frequency"`
	Target      Optional[int]      `json:"target"`
	Unit        Optional[string]   `json:"unit"`
	Tags        Optional[[]string] `json:"tags"`
}

// Apply merges the patch into the habit and refreshes UpdatedAt. The habit
// is untouched when an error is returned.
func (h *Habit) Apply(p HabitPatch) error {
	updated := *h

	if p.Name.Set {
		if p.Name.Null {
			return NewValidationError("name", "must not be null", ErrValidation)
		}
		updated.Name = p.Name.Value
	}
	if p.Description.Set {
		if p.Description.Null {
			updated.Description = nil
		} else {
			v := p.Description.Value
			updated.Description = &v
		}
	}
	if p.Frequency.Set {
		if p.Frequency.Null {
			return NewValidationError("frequency", "must not be null", ErrValidation)
		}
		updated.Frequency = p.Frequency.Value
	}
	if p.Target.Set {
		if p.Target.Null {
			updated.Target = nil
		} else {
			v := p.Target.Value
			updated.Target = &v
		}
	}
	if p.Unit.Set {
		if p.Unit.Null {
			updated.Unit = nil
		} else {
			v := p.Unit.Value
			updated.Unit = &v
		}
	}
	if p.Tags.Set {
		if p.Tags.Null {
			return NewValidationError("tags", "must not be null", ErrValidation)
		}
		updated.Tags = cloneTags(p.Tags.Value)
	}

	if err := updated.Validate(); err != nil {
		return err
	}

	updated.UpdatedAt = time.Now().UTC()
	*h = updated
	return nil
}

// HasTag reports whether the habit carries the given tag.
func (h *Habit) HasTag(tag string) bool {
	for _, candidate := range h.Tags {
		if candidate == tag {
			return true
		}
	}
	return false
}
