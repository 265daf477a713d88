// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ratelimit

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// unknownClient is the sentinel identifier used when a request carries no
// forwarded-for header. All such requests share one bucket.
const unknownClient = "unknown"

// Result is the outcome of a single limiter check.
type Result struct {
	// Allowed reports whether the request may proceed.
	Allowed bool

	// Limit is the configured maximum number of requests per window.
	Limit int

	// Remaining is the number of requests still allowed in the current
	// window, never negative.
	Remaining int

	// ResetAt is the instant the current window ends.
	ResetAt time.Time
}

// Limiter enforces a per-key fixed-window limit on top of a [Store].
type Limiter struct {
	store  Store
	limit  int
	window time.Duration
}

// NewLimiter constructs a Limiter allowing limit requests per window per key.
func NewLimiter(store Store, limit int, window time.Duration) *Limiter {
	return &Limiter{
		store:  store,
		limit:  limit,
		window: window,
	}
}

// Check records one request against key and decides whether it is allowed.
//
// The first request of a window (or the first after the previous window
// passed) starts a fresh counter; every further request increments it. The
// request is allowed while the count stays at or under the limit. Remaining
// and ResetAt are returned for response headers on both outcomes.
func (l *Limiter) Check(ctx context.Context, key string) (Result, error) {
	entry, err := l.store.Incr(ctx, key, l.window)
	if err != nil {
		return Result{}, err
	}

	remaining := l.limit - int(entry.Count)
	if remaining < 0 {
		remaining = 0
	}

	return Result{
		Allowed:   entry.Count <= int64(l.limit),
		Limit:     l.limit,
		Remaining: remaining,
		ResetAt:   entry.ResetAt,
	}, nil
}

// Limit returns the configured per-window maximum.
func (l *Limiter) Limit() int {
	return l.limit
}

// Key derives the limiter key for a request: client identifier and route
// path joined with ":".
func Key(clientID, routePath string) string {
	return clientID + ":" + routePath
}

// ClientIdentifier derives the client identifier from the first entry of the
// X-Forwarded-For header, falling back to "unknown" when the header is
// absent.
//
// The header is trusted unconditionally, which is spoofable when no trusted
// reverse proxy strips or overwrites it, and collapses every client without
// the header into a single shared bucket. Both properties are accepted
// limitations of this deployment model.
func ClientIdentifier(r *http.Request) string {
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded == "" {
		return unknownClient
	}

	first, _, _ := strings.Cut(forwarded, ",")
	first = strings.TrimSpace(first)
	if first == "" {
		return unknownClient
	}

	return first
}
