package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tracklet/tracker-api/internal/api"
	"github.com/tracklet/tracker-api/internal/config"
	"github.com/tracklet/tracker-api/internal/platform/memstore"
)

func newTestApplication() *application {
	return &application{
		config: &config.Config{
			Server: config.ServerConfig{
				Port:           8080,
				LogLevel:       "error",
				AllowedOrigins: []string{"*"},
			},
		},
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		taskStore:  memstore.NewTaskStore(),
		habitStore: memstore.NewHabitStore(),
	}
}

func TestRouter_HealthEndpoints(t *testing.T) {
	router := newTestApplication().setupRouter()

	for _, path := range []string{"/", "/health"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, path)

		var resp api.HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Healthy", resp.Message)
		assert.Equal(t, api.ServiceName, resp.Service)
	}
}

func TestRouter_ServesAPIDocument(t *testing.T) {
	router := newTestApplication().setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/openapi.json", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"/tasks/{id}"`)
	assert.Contains(t, rec.Body.String(), `"/habits/{id}"`)
}

func TestRouter_TaskLifecycle(t *testing.T) {
	router := newTestApplication().setupRouter()

	// Create
	body := bytes.NewBufferString(`{"title":"Buy milk","priority":1,"tags":["errand"]}`)
	req := httptest.NewRequest(http.MethodPost, "/tasks", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created api.TaskResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	// List
	req = httptest.NewRequest(http.MethodGet, "/tasks?tag=errand", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var listed []api.TaskResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)

	// Patch
	req = httptest.NewRequest(http.MethodPatch, "/tasks/"+created.ID, bytes.NewBufferString(`{"completed":true}`))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var patched api.TaskResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &patched))
	assert.True(t, patched.Completed)
	assert.Equal(t, "Buy milk", patched.Title)

	// Delete
	req = httptest.NewRequest(http.MethodDelete, "/tasks/"+created.ID, nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	// Gone
	req = httptest.NewRequest(http.MethodGet, "/tasks/"+created.ID, nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_ErrorResponsesCarryTraceIDs(t *testing.T) {
	router := newTestApplication().setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/tasks/00000000-0000-0000-0000-000000000001", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp struct {
		Error   string `json:"error"`
		TraceID string `json:"trace_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Task not found", resp.Error)
	assert.Len(t, resp.TraceID, 32)
}

func TestRouter_CORSPreflight(t *testing.T) {
	router := newTestApplication().setupRouter()

	req := httptest.NewRequest(http.MethodOptions, "/tasks", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
