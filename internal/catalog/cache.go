package catalog

import (
	"sync"
	"time"
)

// DefaultTTL is how long a cached upstream payload stays fresh.
const DefaultTTL = 5 * time.Minute

type cacheEntry struct {
	value     any
	fetchedAt time.Time
}

// Cache is a TTL-bounded key-value table for upstream payloads. Entries are
// replaced wholesale on refresh; stale entries are overwritten on the next
// access, never proactively purged. The clock is injectable so TTL behavior
// is testable without wall-clock sleeps.
//
// The mutex only guards the map itself. Two concurrent misses on the same
// key may still both hit upstream; last write wins.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]cacheEntry
}

func NewCache(ttl time.Duration, now func() time.Time) *Cache {
	if now == nil {
		now = time.Now
	}
	return &Cache{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]cacheEntry),
	}
}

// Get returns the cached value for key if it is still fresh.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.fetchedAt) >= c.ttl {
		return nil, false
	}
	return entry.value, true
}

// Set replaces the entry for key with a fresh value.
func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{value: value, fetchedAt: c.now()}
}
