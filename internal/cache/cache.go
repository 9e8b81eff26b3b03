// Package cache provides the bounded, time-expiring query cache used by the
// search engine. Entries are keyed by (normalized query, tab) and evicted in
// insertion order once capacity is reached; access order is irrelevant.
package cache

import (
	"sync"
	"time"

	"github.com/runger/finsearch/internal/records"
	"github.com/runger/finsearch/internal/results"
)

// Default cache configuration.
const (
	// DefaultTTL is how long a cached result list is served before it is
	// treated as absent.
	DefaultTTL = 5 * time.Minute

	// DefaultCapacity is the default maximum number of cached queries.
	DefaultCapacity = 64
)

// Config configures the query cache.
type Config struct {
	TTL      time.Duration
	Capacity int
}

// DefaultConfig returns the default cache configuration.
func DefaultConfig() Config {
	return Config{TTL: DefaultTTL, Capacity: DefaultCapacity}
}

type entry struct {
	results   []results.Result
	createdAt time.Time
}

func (e *entry) expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(e.createdAt) > ttl
}

// Cache is a FIFO-evicting, TTL-expiring map from (query, tab) to a result
// snapshot. It is owned exclusively by the search engine; the mutex exists
// because debounce timers may drive the engine from a timer goroutine.
type Cache struct {
	mu       sync.Mutex
	entries  map[string]*entry
	order    []string // insertion order, oldest first
	ttl      time.Duration
	capacity int

	now func() time.Time // injectable clock for tests
}

// New creates a cache, substituting defaults for non-positive settings.
func New(cfg Config) *Cache {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.Capacity <= 0 {
		cfg.Capacity = DefaultCapacity
	}
	return &Cache{
		entries:  make(map[string]*entry),
		ttl:      cfg.TTL,
		capacity: cfg.Capacity,
		now:      time.Now,
	}
}

// key builds the composite cache key. The query is already normalized by the
// engine, so keys are stable.
func key(query string, tab records.Tab) string {
	return string(tab) + "\x00" + query
}

// Get returns a defensive copy of the cached results for (query, tab), or
// false when absent or expired. Expired entries are deleted lazily here.
func (c *Cache) Get(query string, tab records.Tab) ([]results.Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	k := key(query, tab)
	e, ok := c.entries[k]
	if !ok {
		return nil, false
	}
	if e.expired(c.now(), c.ttl) {
		c.remove(k)
		return nil, false
	}
	return results.Copy(e.results), true
}

// Put stores a defensive copy of rs under (query, tab). If the cache is at
// capacity the oldest-inserted entry is evicted first. Re-putting an
// existing key counts as a fresh insertion.
func (c *Cache) Put(query string, tab records.Tab, rs []results.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	k := key(query, tab)
	if _, ok := c.entries[k]; ok {
		c.remove(k)
	}
	for len(c.entries) >= c.capacity && len(c.order) > 0 {
		c.remove(c.order[0])
	}
	c.entries[k] = &entry{results: results.Copy(rs), createdAt: c.now()}
	c.order = append(c.order, k)
}

// Clear drops every entry. The engine calls this on tab switches and
// dataset reloads.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*entry)
	c.order = c.order[:0]
}

// PruneExpired removes expired entries eagerly and returns how many were
// dropped.
func (c *Cache) PruneExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	dropped := 0
	for i := 0; i < len(c.order); {
		k := c.order[i]
		if e, ok := c.entries[k]; ok && e.expired(now, c.ttl) {
			c.remove(k)
			dropped++
			continue // remove shifted c.order; re-check index i
		}
		i++
	}
	return dropped
}

// Len returns the number of entries, counting expired-but-unpruned ones.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// remove deletes k from both the map and the insertion-order slice.
// Caller holds the lock.
func (c *Cache) remove(k string) {
	delete(c.entries, k)
	for i, ok := range c.order {
		if ok == k {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}
