// Package cache provides the small TTL cache that fronts sheet reads. It is
// constructor-injected rather than package-global so tests can drive expiry
// with a fake clock.
package cache

import (
	"strings"
	"sync"
	"time"
)

type entry struct {
	value  any
	expiry time.Time
}

type Cache struct {
	ttl   time.Duration
	clock func() time.Time
	store map[string]entry
	mu    sync.RWMutex
}

func New(ttl time.Duration) *Cache {
	return &Cache{
		ttl:   ttl,
		clock: time.Now,
		store: make(map[string]entry),
	}
}

// NewWithClock is the test constructor.
func NewWithClock(ttl time.Duration, clock func() time.Time) *Cache {
	c := New(ttl)
	c.clock = clock
	return c
}

// Key joins key parts the way the cache expects them, e.g.
// Key("values", gid).
func Key(parts ...string) string {
	return strings.Join(parts, "::")
}

// Get returns the cached value for key. Expired entries are deleted lazily
// here; there is no background eviction and no invalidation API, so a write
// to the underlying sheet becomes visible only after the TTL elapses.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.store[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if c.clock().After(e.expiry) {
		c.mu.Lock()
		// Re-check under the write lock: a concurrent Set may have
		// refreshed the entry.
		if cur, ok := c.store[key]; ok && c.clock().After(cur.expiry) {
			delete(c.store, key)
		}
		c.mu.Unlock()
		return nil, false
	}

	return e.value, true
}

func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[key] = entry{value: value, expiry: c.clock().Add(c.ttl)}
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

func (c *Cache) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store = make(map[string]entry)
}
