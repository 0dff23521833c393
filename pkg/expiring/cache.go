// Package expiring provides an in-memory map whose entries expire a fixed
// duration after they were stored.
package expiring

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value     V
	createdAt time.Time
}

// Cache maps keys to values that stay valid for TTL after insertion. An
// expired key behaves as absent and is replaced by the next Set.
type Cache[K comparable, V any] struct {
	ttl time.Duration
	now func() time.Time

	mu        sync.RWMutex
	items     map[K]entry[V]
	lastSweep time.Time
}

// Option configures a Cache.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock replaces time.Now as the cache's time source.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func New[K comparable, V any](ttl time.Duration, opts ...Option) *Cache[K, V] {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &Cache[K, V]{
		ttl:       ttl,
		now:       o.now,
		items:     make(map[K]entry[V]),
		lastSweep: o.now(),
	}
}

// Get returns the value for key if it was stored less than TTL ago.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	e, ok := c.items[key]
	c.mu.RUnlock()

	if !ok {
		var zero V
		return zero, false
	}
	if now := c.now(); c.expired(e, now) {
		c.mu.Lock()
		// a concurrent Set may have refreshed the key
		if cur, ok := c.items[key]; ok && c.expired(cur, now) {
			delete(c.items, key)
		}
		c.mu.Unlock()
		var zero V
		return zero, false
	}
	return e.value, true
}

func (c *Cache[K, V]) expired(e entry[V], now time.Time) bool {
	return now.Sub(e.createdAt) >= c.ttl
}

// Set stores value under key, replacing any previous entry. At most once per
// TTL it also evicts every expired entry, so keys that are never read again
// do not accumulate.
func (c *Cache[K, V]) Set(key K, value V) {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if now.Sub(c.lastSweep) >= c.ttl {
		for k, e := range c.items {
			if c.expired(e, now) {
				delete(c.items, k)
			}
		}
		c.lastSweep = now
	}
	c.items[key] = entry[V]{value: value, createdAt: now}
}

func (c *Cache[K, V]) Delete(key K) {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
}

// Clear drops every entry.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	clear(c.items)
	c.mu.Unlock()
}

// Len counts stored entries. Expired entries are included until a Get or a
// sweep in Set evicts them.
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Cache[K, V]) TTL() time.Duration { return c.ttl }
