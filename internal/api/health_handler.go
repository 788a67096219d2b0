package api

import (
	"net/http"

	"github.com/tracklet/tracker-api/internal/api/shared"
)

// ServiceName identifies this service in the liveness payload and the API
// document.
const ServiceName = "Habit & To-Do Tracker API"

// HealthResponse is the liveness payload returned by / and /health.
type HealthResponse struct {
	Message string `json:"message"`
	Service string `json:"service"`
}

// HealthCheck handles GET / and GET /health requests.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Message: "Healthy",
		Service: ServiceName,
	})
}
