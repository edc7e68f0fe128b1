package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusNotFound)
	w.WriteHeader(http.StatusOK) // второй вызов игнорируется

	assert.Equal(t, http.StatusNotFound, w.status)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResponseWriter_ImplicitOKOnWrite(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	_, err := w.Write([]byte("hello"))
	assert.NoError(t, err)

	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, 5, w.size)
}

func TestResponseWriter_SizeAccumulates(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	_, _ = w.Write([]byte("hello "))
	_, _ = w.Write([]byte("world"))

	assert.Equal(t, 11, w.size)
	assert.Equal(t, "hello world", rec.Body.String())
}
