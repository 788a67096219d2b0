package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tracklet/tracker-api/internal/api/shared"
	"github.com/tracklet/tracker-api/internal/platform/logger"
)

func TestTraceMiddleware(t *testing.T) {
	var seenTraceID string
	var loggerAttached bool

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenTraceID = shared.GetTraceID(r.Context())
		_, loggerAttached = logger.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	rec := httptest.NewRecorder()
	TraceMiddleware(inner).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, seenTraceID, 32, "handler sees a trace ID")
	assert.True(t, loggerAttached, "handler sees a request-scoped logger")
}

func TestTraceMiddleware_FreshIDPerRequest(t *testing.T) {
	ids := make(map[string]bool)
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids[shared.GetTraceID(r.Context())] = true
	})
	wrapped := TraceMiddleware(inner)

	for i := 0; i < 10; i++ {
		wrapped.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	}
	assert.Len(t, ids, 10)
}
