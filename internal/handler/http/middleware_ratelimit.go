// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-user-api/internal/app"
	"github.com/MKhiriev/go-user-api/internal/logger"
	"github.com/MKhiriev/go-user-api/internal/ratelimit"
)

// withRateLimit enforces the fixed-window per-client, per-path limit. Every
// response carries the X-RateLimit-* headers describing the current window;
// requests over the limit are rejected with 429 before reaching the router.
//
// A counter-store failure fails open: the request proceeds unlimited and the
// failure is logged. Dropping traffic because the limiter backend is down
// would turn a degraded dependency into an outage.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := ratelimit.Key(ratelimit.ClientIdentifier(r), r.URL.Path)

		result, err := h.limiter.Check(r.Context(), key)
		if err != nil {
			logger.FromRequest(r).Err(err).Str("key", key).Msg("rate limit check failed, failing open")
			next.ServeHTTP(w, r)
			return
		}

		header := w.Header()
		header.Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		header.Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		header.Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

		if !result.Allowed {
			h.writeError(w, r, newAPIError(kindRateLimit, app.MsgRateLimitExceeded))
			return
		}

		next.ServeHTTP(w, r)
	})
}
