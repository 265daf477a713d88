package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCORS_WildcardAllowsAnyOrigin(t *testing.T) {
	h, _, _ := newTestHandler(t)
	h.cfg.HTTP.CORSOrigins = []string{"*"}

	w := doRequest(h.Init(), http.MethodGet, "/healthz", "", map[string]string{
		"Origin": "https://app.example.com",
	})

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_AllowlistedOriginEchoed(t *testing.T) {
	h, _, _ := newTestHandler(t)
	h.cfg.HTTP.CORSOrigins = []string{"https://app.example.com"}

	w := doRequest(h.Init(), http.MethodGet, "/healthz", "", map[string]string{
		"Origin": "https://app.example.com",
	})

	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Values("Vary"), "Origin")
}

func TestCORS_UnlistedOriginGetsNoHeaders(t *testing.T) {
	h, _, _ := newTestHandler(t)
	h.cfg.HTTP.CORSOrigins = []string{"https://app.example.com"}

	w := doRequest(h.Init(), http.MethodGet, "/healthz", "", map[string]string{
		"Origin": "https://evil.example.com",
	})

	require.Equal(t, http.StatusOK, w.Code, "CORS is enforced by the browser, not the server")
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_PreflightShortCircuits(t *testing.T) {
	h, _, _ := newTestHandler(t)

	w := doRequest(h.Init(), http.MethodOptions, "/v1/users", "", map[string]string{
		"Origin":                        "https://app.example.com",
		"Access-Control-Request-Method": "POST",
	})

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Methods"))
	assert.Empty(t, w.Body.String())
}
