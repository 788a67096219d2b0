package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tracklet/tracker-api/internal/api/shared"
	"github.com/tracklet/tracker-api/internal/platform/memstore"
	"github.com/tracklet/tracker-api/internal/store"
)

// newHabitRouter wires a HabitHandler against a fresh in-memory store.
func newHabitRouter(t *testing.T) (http.Handler, store.HabitStore) {
	t.Helper()

	habitStore := memstore.NewHabitStore()
	handler := NewHabitHandler(habitStore, testLogger())

	r := chi.NewRouter()
	r.Route("/habits", func(r chi.Router) {
		r.Get("/", handler.ListHabits)
		r.Post("/", handler.CreateHabit)
		r.Get("/{id}", handler.GetHabit)
		r.Patch("/{id}", handler.UpdateHabit)
		r.Delete("/{id}", handler.DeleteHabit)
	})
	return r, habitStore
}

func createHabit(t *testing.T, router http.Handler, body map[string]interface{}) HabitResponse {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/habits", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeBody[HabitResponse](t, rec)
}

func TestHabitCreateThenGetRoundTrip(t *testing.T) {
	router, _ := newHabitRouter(t)

	created := createHabit(t, router, map[string]interface{}{
		"name":   "Read",
		"target": 20,
		"unit":   "pages",
		"tags":   []string{"mind"},
	})

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Read", created.Name)
	assert.Equal(t, "daily", created.Frequency, "frequency defaults to daily")
	require.NotNil(t, created.Target)
	assert.Equal(t, 20, *created.Target)
	require.NotNil(t, created.Unit)
	assert.Equal(t, "pages", *created.Unit)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	rec := doJSON(t, router, http.MethodGet, "/habits/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	fetched := decodeBody[HabitResponse](t, rec)
	assert.Equal(t, created, fetched)
}

func TestHabitCreate_NameRequired(t *testing.T) {
	router, _ := newHabitRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/habits", map[string]interface{}{
		"frequency": "weekly",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	resp := decodeBody[shared.ErrorResponse](t, rec)
	require.NotEmpty(t, resp.Details)
	assert.Equal(t, "Name", resp.Details[0].Field)
}

func TestHabitList_DefaultPageSize(t *testing.T) {
	router, _ := newHabitRouter(t)

	for i := 0; i < 25; i++ {
		createHabit(t, router, map[string]interface{}{"name": fmt.Sprintf("habit-%d", i)})
	}

	rec := doJSON(t, router, http.MethodGet, "/habits", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	habits := decodeBody[[]HabitResponse](t, rec)
	require.Len(t, habits, 20, "habit listings default to 20 per page")
	assert.Equal(t, "habit-0", habits[0].Name)
	assert.Equal(t, "habit-19", habits[19].Name)

	rec = doJSON(t, router, http.MethodGet, "/habits?page=2", nil)
	secondPage := decodeBody[[]HabitResponse](t, rec)
	require.Len(t, secondPage, 5)
	assert.Equal(t, "habit-20", secondPage[0].Name)
}

func TestHabitList_TagFilter(t *testing.T) {
	router, _ := newHabitRouter(t)

	createHabit(t, router, map[string]interface{}{"name": "Run", "tags": []string{"fitness"}})
	createHabit(t, router, map[string]interface{}{"name": "Read", "tags": []string{"mind"}})

	rec := doJSON(t, router, http.MethodGet, "/habits?tag=mind", nil)
	habits := decodeBody[[]HabitResponse](t, rec)
	require.Len(t, habits, 1)
	assert.Equal(t, "Read", habits[0].Name)
}

func TestHabitList_InvalidQuery(t *testing.T) {
	router, _ := newHabitRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/habits?size=201", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHabitUpdate_PartialMerge(t *testing.T) {
	router, _ := newHabitRouter(t)

	created := createHabit(t, router, map[string]interface{}{
		"name":   "Read",
		"target": 20,
		"unit":   "pages",
	})

	rec := doJSON(t, router, http.MethodPatch, "/habits/"+created.ID, map[string]interface{}{
		"frequency": "weekly",
		"target":    nil,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody[HabitResponse](t, rec)

	assert.Equal(t, "weekly", updated.Frequency)
	assert.Nil(t, updated.Target, "explicit null clears target")
	require.NotNil(t, updated.Unit, "absent fields stay put")
	assert.Equal(t, "pages", *updated.Unit)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestHabitUpdate_NotFound(t *testing.T) {
	router, _ := newHabitRouter(t)

	rec := doJSON(t, router, http.MethodPatch, "/habits/00000000-0000-0000-0000-000000000001",
		map[string]interface{}{"frequency": "weekly"})
	require.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeBody[shared.ErrorResponse](t, rec)
	assert.Equal(t, "Habit not found", resp.Error)
}

func TestHabitDelete(t *testing.T) {
	router, _ := newHabitRouter(t)

	created := createHabit(t, router, map[string]interface{}{"name": "Read"})

	rec := doJSON(t, router, http.MethodDelete, "/habits/"+created.ID, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/habits/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
