// Package cache provides the process-wide TTL cache the fetch pipeline
// reads through. Entries are guarded per key so a cache-miss stampede
// issues at most one outbound fetch per symbol set.
package cache

import (
	"sync"
	"time"
)

// DefaultTTL matches the dashboard's refresh economics: price tables
// are considered fresh for one hour.
const DefaultTTL = 3600 * time.Second

type entry[V any] struct {
	mu        sync.Mutex
	value     V
	expiresAt time.Time
	populated bool
}

// Cache is an in-memory key -> (value, expiry) store. The zero value is
// not usable; construct with New.
type Cache[V any] struct {
	mu      sync.Mutex
	entries map[string]*entry[V]
	now     func() time.Time
}

func New[V any]() *Cache[V] {
	return &Cache[V]{
		entries: map[string]*entry[V]{},
		now:     time.Now,
	}
}

// NewWithClock is for tests that need to control expiry.
func NewWithClock[V any](now func() time.Time) *Cache[V] {
	c := New[V]()
	c.now = now
	return c
}

// GetOrCompute returns the cached value for key if it is still fresh,
// otherwise runs compute, stores the result with the given ttl, and
// returns it. Concurrent callers missing on the same key serialize on
// that key's lock: exactly one of them computes, the rest read the
// stored result. A compute error is returned to the caller and nothing
// is stored.
func (c *Cache[V]) GetOrCompute(key string, ttl time.Duration, compute func() (V, error)) (V, error) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if !ok {
		e = &entry[V]{}
		c.entries[key] = e
	}
	c.mu.Unlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.populated && c.now().Before(e.expiresAt) {
		return e.value, nil
	}

	value, err := compute()
	if err != nil {
		var zero V
		return zero, err
	}

	e.value = value
	e.expiresAt = c.now().Add(ttl)
	e.populated = true
	return value, nil
}
