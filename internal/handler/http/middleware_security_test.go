package http

import (
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecurity_HeadersOnEveryResponse(t *testing.T) {
	h, _, _ := newTestHandler(t)
	w := doRequest(h.Init(), http.MethodGet, "/healthz", "", nil)

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "no-referrer", w.Header().Get("Referrer-Policy"))
	assert.NotEmpty(t, w.Header().Get("Permissions-Policy"))
}

func TestSecurity_HeadersOnErrorResponses(t *testing.T) {
	h, _, _ := newTestHandler(t)
	w := doRequest(h.Init(), http.MethodGet, "/nope", "", nil)

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}

func TestSecurity_OversizedBodyRejected(t *testing.T) {
	h, _, _ := newTestHandler(t)
	h.cfg.HTTP.BodyLimitBytes = 64

	body := `{"email":"` + strings.Repeat("a", 100) + `@example.com","password":"password123"}`
	w := doRequest(h.Init(), http.MethodPost, "/v1/users", body, map[string]string{
		"Content-Length": strconv.Itoa(len(body)),
	})

	require.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	envelope := decodeEnvelope(t, w)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "PAYLOAD_TOO_LARGE", envelope.Error.Code)
}

func TestSecurity_BodyWithinLimitPasses(t *testing.T) {
	h, _, _ := newTestHandler(t)
	h.cfg.HTTP.BodyLimitBytes = 1 << 20

	w := doRequest(h.Init(), http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
