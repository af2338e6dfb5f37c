package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// plainWriter hides the recorder's Flush so the decorator sees a writer
// without flush support.
type plainWriter struct {
	http.ResponseWriter
}

func TestResponseWriter_FirstStatusWins(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestResponseWriter_WriteImplies200(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	n, err := w.Write([]byte("hello"))

	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusOK, w.status)
	assert.True(t, w.wroteHeader)
}

func TestResponseWriter_AccumulatesSize(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.WriteHeader(http.StatusAccepted)
	_, err := w.Write([]byte("hello"))
	require.NoError(t, err)
	_, err = w.Write([]byte(" world"))
	require.NoError(t, err)

	assert.Equal(t, 11, w.size)
	assert.Equal(t, http.StatusAccepted, w.status)
}

func TestResponseWriter_FlushReachesUnderlyingWriter(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	// The event stream pushes each frame through the decorators with Flush;
	// the first flush must also commit the implicit 200.
	w.Flush()

	assert.True(t, rr.Flushed)
	assert.Equal(t, http.StatusOK, w.status)
	assert.True(t, w.wroteHeader)
}

func TestResponseWriter_FlushAfterWritePushesFrame(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	_, err := w.Write([]byte("event: snapshot\ndata: {}\n\n"))
	require.NoError(t, err)
	w.Flush()

	assert.True(t, rr.Flushed)
	assert.Equal(t, "event: snapshot\ndata: {}\n\n", rr.Body.String())
}

func TestResponseWriter_FlushWithoutFlusherIsNoOp(t *testing.T) {
	w := &responseWriter{ResponseWriter: plainWriter{httptest.NewRecorder()}}

	w.Flush()

	assert.False(t, w.wroteHeader)
	assert.Equal(t, 0, w.status)
}
