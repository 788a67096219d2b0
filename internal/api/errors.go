package api

import (
	"errors"
	"net/http"

	"github.com/tracklet/tracker-api/internal/api/shared"
	"github.com/tracklet/tracker-api/internal/domain"
	"github.com/tracklet/tracker-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Validation errors, both request-level and entity-level
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidFormat),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrTaskTitleEmpty),
		errors.Is(err, domain.ErrTaskPriorityRange),
		errors.Is(err, domain.ErrHabitNameEmpty):
		return http.StatusUnprocessableEntity

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, store.ErrTaskNotFound):
		return "Task not found"

	case errors.Is(err, store.ErrHabitNotFound):
		return "Habit not found"

	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	case MapErrorToStatusCode(err) == http.StatusUnprocessableEntity:
		// Validation failures carry field detail separately; the error
		// string itself only names the failing invariant.
		return err.Error()

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes an error response for the given internal error,
// mapping it to a status code and a safe message. Validation errors include
// field-level detail; everything else logs the raw error and responds with
// the sanitized message only. An empty overrideMessage keeps the mapped one.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, overrideMessage string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if overrideMessage != "" {
		message = overrideMessage
	}

	if status == http.StatusUnprocessableEntity {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			shared.RespondWithValidationDetails(w, r, status, "Validation error",
				[]shared.FieldError{{Field: ve.Field, Message: ve.Message}})
			return
		}
		shared.RespondWithError(w, r, status, message)
		return
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
