package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-park-audit/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTraceIDHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

// TestWithTraceID_GeneratesID verifies that a request without an X-Trace-ID
// header gets a freshly generated ID echoed in the response header.
func TestWithTraceID_GeneratesID(t *testing.T) {
	h := newTraceIDHandler()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rr := httptest.NewRecorder()

	h.withTraceID(next).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

// TestWithTraceID_PropagatesIncomingID verifies that an incoming X-Trace-ID
// header is reused instead of generating a new one.
func TestWithTraceID_PropagatesIncomingID(t *testing.T) {
	const incoming = "trace-id-from-client"

	h := newTraceIDHandler()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(traceIDHeader, incoming)
	rr := httptest.NewRecorder()

	h.withTraceID(next).ServeHTTP(rr, req)

	assert.Equal(t, incoming, rr.Header().Get(traceIDHeader))
}
