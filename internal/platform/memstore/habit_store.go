package memstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tracklet/tracker-api/internal/domain"
	"github.com/tracklet/tracker-api/internal/store"
)

// HabitStore is the in-memory implementation of store.HabitStore.
type HabitStore struct {
	habits *Collection[domain.Habit]
}

var _ store.HabitStore = (*HabitStore)(nil)

// NewHabitStore creates an empty HabitStore.
func NewHabitStore() *HabitStore {
	return &HabitStore{habits: NewCollection[domain.Habit]()}
}

// List implements store.HabitStore.
func (s *HabitStore) List(
	ctx context.Context,
	filter store.HabitFilter,
	page store.Page,
) ([]*domain.Habit, error) {
	items := s.habits.List(func(h domain.Habit) bool {
		return filter.Matches(&h)
	}, page.Offset(), page.Size)

	habits := make([]*domain.Habit, len(items))
	for i := range items {
		habits[i] = &items[i]
	}
	return habits, nil
}

// Create implements store.HabitStore.
func (s *HabitStore) Create(ctx context.Context, habit *domain.Habit) error {
	if err := habit.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	s.habits.Put(habit.ID, *habit)
	return nil
}

// GetByID implements store.HabitStore.
func (s *HabitStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Habit, error) {
	habit, ok := s.habits.Get(id)
	if !ok {
		return nil, store.ErrHabitNotFound
	}
	return &habit, nil
}

// Update implements store.HabitStore.
func (s *HabitStore) Update(
	ctx context.Context,
	id uuid.UUID,
	patch domain.HabitPatch,
) (*domain.Habit, error) {
	merged, found, err := s.habits.Update(id, func(h domain.Habit) (domain.Habit, error) {
		if applyErr := h.Apply(patch); applyErr != nil {
			return h, applyErr
		}
		return h, nil
	})
	if !found {
		return nil, store.ErrHabitNotFound
	}
	if err != nil {
		return nil, err
	}
	return &merged, nil
}

// Delete implements store.HabitStore.
func (s *HabitStore) Delete(ctx context.Context, id uuid.UUID) error {
	if !s.habits.Delete(id) {
		return store.ErrHabitNotFound
	}
	return nil
}
