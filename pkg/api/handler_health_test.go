package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	srv, _ := newTestServer(t)
	handler := srv.Handler()

	w := doRequest(t, handler, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, "healthy", body["status"])
	assert.NotEmpty(t, body["version"])

	checks, _ := body["checks"].(map[string]any)
	require.NotNil(t, checks)
	db, _ := checks["database"].(map[string]any)
	require.NotNil(t, db)
	assert.Equal(t, "healthy", db["status"])

	_, hasPool := checks["worker_pool"]
	assert.False(t, hasPool, "no pool check when the server runs without workers")
}

func TestSecurityHeaders(t *testing.T) {
	srv, _ := newTestServer(t)
	handler := srv.Handler()

	w := doRequest(t, handler, http.MethodGet, "/healthz", nil)

	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", w.Header().Get("Referrer-Policy"))
}
