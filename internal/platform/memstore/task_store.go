package memstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tracklet/tracker-api/internal/domain"
	"github.com/tracklet/tracker-api/internal/store"
)

// TaskStore is the in-memory implementation of store.TaskStore.
type TaskStore struct {
	tasks *Collection[domain.Task]
}

// Ensure TaskStore satisfies the interface.
var _ store.TaskStore = (*TaskStore)(nil)

// NewTaskStore creates an empty TaskStore.
func NewTaskStore() *TaskStore {
	return &TaskStore{tasks: NewCollection[domain.Task]()}
}

// List implements store.TaskStore.
func (s *TaskStore) List(
	ctx context.Context,
	filter store.TaskFilter,
	page store.Page,
) ([]*domain.Task, error) {
	items := s.tasks.List(func(t domain.Task) bool {
		return filter.Matches(&t)
	}, page.Offset(), page.Size)

	tasks := make([]*domain.Task, len(items))
	for i := range items {
		tasks[i] = &items[i]
	}
	return tasks, nil
}

// Create implements store.TaskStore.
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	s.tasks.Put(task.ID, *task)
	return nil
}

// GetByID implements store.TaskStore.
func (s *TaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	task, ok := s.tasks.Get(id)
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	return &task, nil
}

// Update implements store.TaskStore. The patch is applied inside the
// collection's write lock so the existence check and merge are atomic.
func (s *TaskStore) Update(
	ctx context.Context,
	id uuid.UUID,
	patch domain.TaskPatch,
) (*domain.Task, error) {
	merged, found, err := s.tasks.Update(id, func(t domain.Task) (domain.Task, error) {
		if applyErr := t.Apply(patch); applyErr != nil {
			return t, applyErr
		}
		return t, nil
	})
	if !found {
		return nil, store.ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	return &merged, nil
}

// Delete implements store.TaskStore.
func (s *TaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	if !s.tasks.Delete(id) {
		return store.ErrTaskNotFound
	}
	return nil
}
