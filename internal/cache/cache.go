// Package cache provides a bounded in-memory result cache keyed by
// normalized domain. Results are served for a fixed TTL so repeated
// analyses of the same domain within a session do not re-crawl the page.
package cache

import (
	"sync"
	"time"

	"github.com/gso-insight/gsoscan/internal/model"
)

// Defaults used by New when options are not given.
const (
	DefaultTTL        = 24 * time.Hour
	DefaultMaxEntries = 1000
)

type entry struct {
	result   *model.AnalysisResult
	storedAt time.Time
}

// Cache is a TTL-bounded map of domain to analysis result.
// It is safe for concurrent use.
//
// Design decision: a plain mutex-guarded map rather than an LRU list.
// The working set is one entry per analyzed domain and the bound exists
// only to keep long-lived processes from growing without limit, so
// oldest-entry eviction on overflow is enough.
type Cache struct {
	mu         sync.Mutex
	entries    map[string]entry
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

// Option configures a Cache.
type Option func(*Cache)

// WithTTL sets how long a stored result stays servable.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithMaxEntries bounds the number of stored results.
func WithMaxEntries(n int) Option {
	return func(c *Cache) {
		c.maxEntries = n
	}
}

// WithClock replaces the time source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// New creates an empty cache with a 24 hour TTL and a bound of 1000
// entries unless overridden.
func New(opts ...Option) *Cache {
	c := &Cache{
		entries:    make(map[string]entry),
		ttl:        DefaultTTL,
		maxEntries: DefaultMaxEntries,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached result for the domain, or nil when absent or
// expired. Expired entries are removed on access.
func (c *Cache) Get(domain string) *model.AnalysisResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[domain]
	if !ok {
		return nil
	}
	if c.now().Sub(e.storedAt) > c.ttl {
		delete(c.entries, domain)
		return nil
	}
	return e.result
}

// Set stores a result for the domain, evicting the oldest entry when
// the bound would be exceeded.
func (c *Cache) Set(domain string, result *model.AnalysisResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[domain]; !exists && len(c.entries) >= c.maxEntries {
		c.evictOldestLocked()
	}
	c.entries[domain] = entry{result: result, storedAt: c.now()}
}

// Len returns the number of stored entries, expired ones included.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache) evictOldestLocked() {
	var oldestKey string
	var oldestAt time.Time
	first := true
	for key, e := range c.entries {
		if first || e.storedAt.Before(oldestAt) {
			oldestKey, oldestAt = key, e.storedAt
			first = false
		}
	}
	if !first {
		delete(c.entries, oldestKey)
	}
}
