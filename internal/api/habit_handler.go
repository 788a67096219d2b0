package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/tracklet/tracker-api/internal/api/shared"
	"github.com/tracklet/tracker-api/internal/domain"
	"github.com/tracklet/tracker-api/internal/platform/logger"
	"github.com/tracklet/tracker-api/internal/store"
)

// defaultHabitPageSize is the habit list page size when the query omits one.
const defaultHabitPageSize = 20

// CreateHabitRequest represents the request body for creating a habit.
// An empty frequency falls back to the "daily" default.
type CreateHabitRequest struct {
	Name        string   `json:"name"        validate:"required,min=1"`
	Description *string  `json:"description"`
	Frequency   string   `json:"frequency"`
	Target      *int     `json:"target"`
	Unit        *string  `json:"unit"`
	Tags        []string `json:"tags"`
}

// HabitResponse represents the response data for a habit.
type HabitResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Frequency   string    `json:"frequency"`
	Target      *int      `json:"target"`
	Unit        *string   `json:"unit"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HabitHandler handles habit-related HTTP requests.
type HabitHandler struct {
	habitStore store.HabitStore
	logger     *slog.Logger
}

// NewHabitHandler creates a new HabitHandler.
func NewHabitHandler(habitStore store.HabitStore, log *slog.Logger) *HabitHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for HabitHandler")
	}

	return &HabitHandler{
		habitStore: habitStore,
		logger:     log.With(slog.String("component", "habit_handler")),
	}
}

// ListHabits handles GET /habits requests. It returns a page of habits in
// insertion order, optionally filtered by tag.
func (h *HabitHandler) ListHabits(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	page, details := parsePageQuery(r, defaultHabitPageSize)
	if len(details) > 0 {
		log.Debug("invalid list query", slog.String("query", r.URL.RawQuery))
		shared.RespondWithValidationDetails(w, r, http.StatusUnprocessableEntity, "Validation error", details)
		return
	}

	filter := store.HabitFilter{Tag: parseTagQuery(r)}

	habits, err := h.habitStore.List(r.Context(), filter, page)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list habits")
		return
	}

	response := make([]HabitResponse, len(habits))
	for i, habit := range habits {
		response[i] = habitToResponse(habit)
	}
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// CreateHabit handles POST /habits requests.
func (h *HabitHandler) CreateHabit(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateHabitRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("invalid request body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		log.Debug("validation error", slog.String("error", err.Error()))
		shared.RespondWithValidationDetails(w, r, http.StatusUnprocessableEntity,
			"Validation error", shared.ValidationDetails(err))
		return
	}

	habit, err := domain.NewHabit(domain.HabitParams{
		Name:        req.Name,
		Description: req.Description,
		Frequency:   req.Frequency,
		Target:      req.Target,
		Unit:        req.Unit,
		Tags:        req.Tags,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.habitStore.Create(r.Context(), habit); err != nil {
		HandleAPIError(w, r, err, "Failed to create habit")
		return
	}

	log.Debug("habit created", slog.String("habit_id", habit.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, habitToResponse(habit))
}

// GetHabit handles GET /habits/{id} requests.
func (h *HabitHandler) GetHabit(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathID(r)
	if !ok {
		HandleAPIError(w, r, store.ErrHabitNotFound, "")
		return
	}

	habit, err := h.habitStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, habitToResponse(habit))
}

// UpdateHabit handles PATCH /habits/{id} requests. Only fields present in
// the payload are merged; an explicit null clears nullable fields.
func (h *HabitHandler) UpdateHabit(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := getPathID(r)
	if !ok {
		HandleAPIError(w, r, store.ErrHabitNotFound, "")
		return
	}

	var patch domain.HabitPatch
	if err := shared.DecodeJSON(r, &patch); err != nil {
		log.Debug("invalid request body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	habit, err := h.habitStore.Update(r.Context(), id, patch)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Debug("habit updated", slog.String("habit_id", habit.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, habitToResponse(habit))
}

// DeleteHabit handles DELETE /habits/{id} requests.
func (h *HabitHandler) DeleteHabit(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := getPathID(r)
	if !ok {
		HandleAPIError(w, r, store.ErrHabitNotFound, "")
		return
	}

	if err := h.habitStore.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Debug("habit deleted", slog.String("habit_id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}

// habitToResponse converts a domain.Habit to a HabitResponse.
func habitToResponse(habit *domain.Habit) HabitResponse {
	return HabitResponse{
		ID:          habit.ID.String(),
		Name:        habit.Name,
		Description: habit.Description,
		Frequency:   habit.Frequency,
		Target:      habit.Target,
		Unit:        habit.Unit,
		Tags:        habit.Tags,
		CreatedAt:   habit.CreatedAt,
		UpdatedAt:   habit.UpdatedAt,
	}
}
