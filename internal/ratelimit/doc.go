// Package ratelimit implements a per-key fixed-window request rate limiter.
//
// A fixed window resets the counter at discrete time boundaries: up to the
// configured limit of requests may land at the very end of one window and the
// limit again at the start of the next. This burst-at-boundary artifact is an
// accepted property of the algorithm, not a bug.
//
// Counter state lives behind the [Store] interface. The in-memory store keeps
// a mutex-guarded process-local map, which means horizontal scale-out yields
// independent limits per instance; the Redis-backed store shares counters
// across instances and must be selected explicitly via configuration.
package ratelimit
