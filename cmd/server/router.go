package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/tracklet/tracker-api/internal/api"
	apiMiddleware "github.com/tracklet/tracker-api/internal/api/middleware"
	"github.com/tracklet/tracker-api/internal/openapi"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.config.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))
	r.Use(apiMiddleware.TraceMiddleware) // Add trace IDs for improved error handling

	taskHandler := api.NewTaskHandler(app.taskStore, app.logger)
	habitHandler := api.NewHabitHandler(app.habitStore, app.logger)

	// Health check endpoints
	r.Get("/", api.HealthCheck)
	r.Get("/health", api.HealthCheck)

	// API document
	r.Get("/openapi.json", openapi.Handler(api.ServiceName))

	// Task endpoints
	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", taskHandler.ListTasks)
		r.Post("/", taskHandler.CreateTask)
		r.Get("/{id}", taskHandler.GetTask)
		r.Patch("/{id}", taskHandler.UpdateTask)
		r.Delete("/{id}", taskHandler.DeleteTask)
	})

	// Habit endpoints
	r.Route("/habits", func(r chi.Router) {
		r.Get("/", habitHandler.ListHabits)
		r.Post("/", habitHandler.CreateHabit)
		r.Get("/{id}", habitHandler.GetHabit)
		r.Patch("/{id}", habitHandler.UpdateHabit)
		r.Delete("/{id}", habitHandler.DeleteHabit)
	})

	return r
}
