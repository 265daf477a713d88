// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Entry is the counter state of a single (client, route) key within the
// current window.
type Entry struct {
	// Count is the number of requests observed in the window so far.
	Count int64

	// ResetAt is the instant the window ends and the counter restarts.
	ResetAt time.Time
}

// Store abstracts the counter backend of the limiter.
//
// Incr is the only mutator on the request path and must be atomic with
// respect to concurrent calls for the same key: if no entry exists, or the
// existing entry's window has passed, the implementation starts a fresh
// window with count 1; otherwise it increments the existing count.
type Store interface {
	// Incr records one request against key and returns the resulting entry.
	Incr(ctx context.Context, key string, window time.Duration) (Entry, error)

	// Get returns the current entry for key. The second result reports
	// whether an entry exists.
	Get(ctx context.Context, key string) (Entry, bool, error)

	// Delete removes the entry for key, if any.
	Delete(ctx context.Context, key string) error

	// Sweep removes every entry whose window has already ended, bounding
	// memory to active keys. It returns the number of removed entries.
	Sweep(ctx context.Context) (int, error)
}

// MemoryStore is the process-local [Store] implementation: a map guarded by
// a mutex. The read-modify-write in Incr and the scan in Sweep each run
// inside one critical section, so concurrent requests and the background
// sweeper never observe a torn entry.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]Entry
	now     func() time.Time
}

// NewMemoryStore constructs an empty in-memory store using the wall clock.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]Entry),
		now:     time.Now,
	}
}

// NewMemoryStoreWithClock constructs an in-memory store with an injectable
// clock. Intended for tests that need to step time across window boundaries.
func NewMemoryStoreWithClock(now func() time.Time) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]Entry),
		now:     now,
	}
}

// Incr implements [Store].
func (s *MemoryStore) Incr(_ context.Context, key string, window time.Duration) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	entry, ok := s.entries[key]
	if !ok || entry.ResetAt.Before(now) {
		entry = Entry{Count: 1, ResetAt: now.Add(window)}
	} else {
		entry.Count++
	}
	s.entries[key] = entry

	return entry, nil
}

// Get implements [Store].
func (s *MemoryStore) Get(_ context.Context, key string) (Entry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	return entry, ok, nil
}

// Delete implements [Store].
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}

// Sweep implements [Store].
func (s *MemoryStore) Sweep(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for key, entry := range s.entries {
		if entry.ResetAt.Before(now) {
			delete(s.entries, key)
			removed++
		}
	}

	return removed, nil
}

// Len returns the number of tracked keys. Used by tests and diagnostics.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}
