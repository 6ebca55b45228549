package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWithTraceID_EchoesClientTraceID verifies that a client-supplied trace
// id is preserved and echoed back on the response.
func TestWithTraceID_EchoesClientTraceID(t *testing.T) {
	h := newTestHandler(t, nil, nil, nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/vault", nil)
	req.Header.Set(traceIDHeader, "client-trace-1")
	rec := httptest.NewRecorder()

	h.withTraceID(next).ServeHTTP(rec, req)

	assert.Equal(t, "client-trace-1", rec.Header().Get(traceIDHeader))
}

// TestWithTraceID_GeneratesWhenAbsent verifies that a missing trace id is
// replaced with a fresh UUID.
func TestWithTraceID_GeneratesWhenAbsent(t *testing.T) {
	h := newTestHandler(t, nil, nil, nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/api/vault", nil)
	rec := httptest.NewRecorder()

	h.withTraceID(next).ServeHTTP(rec, req)

	generated := rec.Header().Get(traceIDHeader)
	require.NotEmpty(t, generated)
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)
}
