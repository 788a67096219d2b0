package memstore

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tracklet/tracker-api/internal/domain"
	"github.com/tracklet/tracker-api/internal/store"
)

func mustHabit(t *testing.T, params domain.HabitParams) *domain.Habit {
	t.Helper()
	habit, err := domain.NewHabit(params)
	require.NoError(t, err)
	return habit
}

func TestHabitStore_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	s := NewHabitStore()

	habit := mustHabit(t, domain.HabitParams{Name: "Meditate"})
	require.NoError(t, s.Create(ctx, habit))

	got, err := s.GetByID(ctx, habit.ID)
	require.NoError(t, err)
	assert.Equal(t, *habit, *got)
}

func TestHabitStore_GetMissing(t *testing.T) {
	s := NewHabitStore()

	_, err := s.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, store.ErrHabitNotFound)
}

func TestHabitStore_ListTagFilter(t *testing.T) {
	ctx := context.Background()
	s := NewHabitStore()

	require.NoError(t, s.Create(ctx, mustHabit(t, domain.HabitParams{Name: "Run", Tags: []string{"fitness"}})))
	require.NoError(t, s.Create(ctx, mustHabit(t, domain.HabitParams{Name: "Read", Tags: []string{"mind"}})))
	require.NoError(t, s.Create(ctx, mustHabit(t, domain.HabitParams{Name: "Swim", Tags: []string{"fitness"}})))

	fitness, err := s.List(ctx, store.HabitFilter{Tag: strPtr("fitness")}, store.Page{Page: 1, Size: 20})
	require.NoError(t, err)
	require.Len(t, fitness, 2)
	assert.Equal(t, "Run", fitness[0].Name)
	assert.Equal(t, "Swim", fitness[1].Name)

	all, err := s.List(ctx, store.HabitFilter{}, store.Page{Page: 1, Size: 20})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestHabitStore_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	s := NewHabitStore()

	habit := mustHabit(t, domain.HabitParams{Name: "Read"})
	require.NoError(t, s.Create(ctx, habit))

	updated, err := s.Update(ctx, habit.ID, domain.HabitPatch{Frequency: domain.Some("weekly")})
	require.NoError(t, err)
	assert.Equal(t, "weekly", updated.Frequency)

	require.NoError(t, s.Delete(ctx, habit.ID))
	assert.ErrorIs(t, s.Delete(ctx, habit.ID), store.ErrHabitNotFound)

	_, err = s.Update(ctx, habit.ID, domain.HabitPatch{})
	assert.ErrorIs(t, err, store.ErrHabitNotFound)
}
