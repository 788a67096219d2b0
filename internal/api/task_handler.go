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

// defaultTaskPageSize is the task list page size when the query omits one.
const defaultTaskPageSize = 50

// CreateTaskRequest represents the request body for creating a task.
// Priority is a pointer so an omitted value falls back to the default.
type CreateTaskRequest struct {
	Title       string       `json:"title"       validate:"required,min=1"`
	Description *string      `json:"description"`
	DueDate     *domain.Date `json:"due_date"`
	Priority    *int         `json:"priority"    validate:"omitempty,gte=1,lte=5"`
	Tags        []string     `json:"tags"`
	Completed   bool         `json:"completed"`
}

// TaskResponse represents the response data for a task.
type TaskResponse struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description *string      `json:"description"`
	DueDate     *domain.Date `json:"due_date"`
	Priority    int          `json:"priority"`
	Tags        []string     `json:"tags"`
	Completed   bool         `json:"completed"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// TaskHandler handles task-related HTTP requests.
type TaskHandler struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskStore store.TaskStore, log *slog.Logger) *TaskHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskHandler")
	}

	return &TaskHandler{
		taskStore: taskStore,
		logger:    log.With(slog.String("component", "task_handler")),
	}
}

// ListTasks handles GET /tasks requests. It returns a page of tasks in
// insertion order, optionally filtered by tag and completion status.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	page, details := parsePageQuery(r, defaultTaskPageSize)
	completed, boolErr := parseBoolQuery(r, "completed")
	if boolErr != nil {
		details = append(details, *boolErr)
	}
	if len(details) > 0 {
		log.Debug("invalid list query", slog.String("query", r.URL.RawQuery))
		shared.RespondWithValidationDetails(w, r, http.StatusUnprocessableEntity, "Validation error", details)
		return
	}

	filter := store.TaskFilter{
		Tag:       parseTagQuery(r),
		Completed: completed,
	}

	tasks, err := h.taskStore.List(r.Context(), filter, page)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list tasks")
		return
	}

	response := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		response[i] = taskToResponse(task)
	}
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// CreateTask handles POST /tasks requests.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateTaskRequest
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

	task, err := domain.NewTask(domain.TaskParams{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
		Tags:        req.Tags,
		Completed:   req.Completed,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.taskStore.Create(r.Context(), task); err != nil {
		HandleAPIError(w, r, err, "Failed to create task")
		return
	}

	log.Debug("task created", slog.String("task_id", task.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, taskToResponse(task))
}

// GetTask handles GET /tasks/{id} requests.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathID(r)
	if !ok {
		HandleAPIError(w, r, store.ErrTaskNotFound, "")
		return
	}

	task, err := h.taskStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// UpdateTask handles PATCH /tasks/{id} requests. Only fields present in the
// payload are merged; an explicit null clears nullable fields.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := getPathID(r)
	if !ok {
		HandleAPIError(w, r, store.ErrTaskNotFound, "")
		return
	}

	var patch domain.TaskPatch
	if err := shared.DecodeJSON(r, &patch); err != nil {
		log.Debug("invalid request body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	task, err := h.taskStore.Update(r.Context(), id, patch)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Debug("task updated", slog.String("task_id", task.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// DeleteTask handles DELETE /tasks/{id} requests.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := getPathID(r)
	if !ok {
		HandleAPIError(w, r, store.ErrTaskNotFound, "")
		return
	}

	if err := h.taskStore.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Debug("task deleted", slog.String("task_id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}

// taskToResponse converts a domain.Task to a TaskResponse.
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID.String(),
		Title:       task.Title,
		Description: task.Description,
		DueDate:     task.DueDate,
		Priority:    task.Priority,
		Tags:        task.Tags,
		Completed:   task.Completed,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}
