package http

import (
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/MKhiriev/go-user-api/internal/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimit_HeadersOnEveryResponse(t *testing.T) {
	h, _, _ := newTestHandler(t)
	h.limiter = ratelimit.NewLimiter(ratelimit.NewMemoryStore(), 10, time.Minute)

	w := doRequest(h.Init(), http.MethodGet, "/healthz", "", nil)

	assert.Equal(t, "10", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "9", w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
}

func TestRateLimit_RejectsOverLimit(t *testing.T) {
	h, _, _ := newTestHandler(t)
	h.limiter = ratelimit.NewLimiter(ratelimit.NewMemoryStore(), 2, time.Minute)
	router := h.Init()

	for i := 0; i < 2; i++ {
		w := doRequest(router, http.MethodGet, "/healthz", "", nil)
		require.Equal(t, http.StatusOK, w.Code, "request %d within the limit", i+1)
	}

	w := doRequest(router, http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusTooManyRequests, w.Code)

	envelope := decodeEnvelope(t, w)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "RATE_LIMIT_EXCEEDED", envelope.Error.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimit_PathsCountedSeparately(t *testing.T) {
	h, _, _ := newTestHandler(t)
	h.limiter = ratelimit.NewLimiter(ratelimit.NewMemoryStore(), 1, time.Minute)
	router := h.Init()

	require.Equal(t, http.StatusOK, doRequest(router, http.MethodGet, "/healthz", "", nil).Code)
	require.Equal(t, http.StatusTooManyRequests, doRequest(router, http.MethodGet, "/healthz", "", nil).Code)

	assert.Equal(t, http.StatusOK, doRequest(router, http.MethodGet, "/", "", nil).Code,
		"a different path must have its own counter")
}

func TestRateLimit_ClientsSeparatedByForwardedFor(t *testing.T) {
	h, _, _ := newTestHandler(t)
	h.limiter = ratelimit.NewLimiter(ratelimit.NewMemoryStore(), 1, time.Minute)
	router := h.Init()

	alice := map[string]string{"X-Forwarded-For": "203.0.113.1"}
	bob := map[string]string{"X-Forwarded-For": "203.0.113.2"}

	require.Equal(t, http.StatusOK, doRequest(router, http.MethodGet, "/healthz", "", alice).Code)
	require.Equal(t, http.StatusTooManyRequests, doRequest(router, http.MethodGet, "/healthz", "", alice).Code)

	assert.Equal(t, http.StatusOK, doRequest(router, http.MethodGet, "/healthz", "", bob).Code)
}

func TestRateLimit_ResetHeaderIsUnixSeconds(t *testing.T) {
	h, _, _ := newTestHandler(t)
	h.limiter = ratelimit.NewLimiter(ratelimit.NewMemoryStore(), 10, time.Minute)

	w := doRequest(h.Init(), http.MethodGet, "/healthz", "", nil)

	reset, err := strconv.ParseInt(w.Header().Get("X-RateLimit-Reset"), 10, 64)
	require.NoError(t, err)
	assert.InDelta(t, time.Now().Add(time.Minute).Unix(), reset, 5)
}
