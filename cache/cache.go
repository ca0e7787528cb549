package cache

import (
	"sync"
	"time"
)

// FreshnessWindow is how long a recorded result may be served without refetching.
const FreshnessWindow = 60 * time.Second

// Cache maps stop ids to their most recent result. Entries are overwritten on
// refresh and never removed; staleness is decided by the caller via IsFresh.
type Cache struct {
	mu      sync.RWMutex
	clock   Clock
	entries map[string]Entry
}

func New(clock Clock) *Cache {
	return &Cache{
		clock:   clock,
		entries: make(map[string]Entry),
	}
}

// Put records value for id. The timestamp is taken under the write lock so
// writes to an id commit in the order of their RecordedAt.
func (c *Cache) Put(id, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[id] = Entry{Value: value, RecordedAt: c.clock.Now()}
}

// Get returns the cached value for id, fresh or not.
func (c *Cache) Get(id string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[id]
	if !ok {
		return "", false
	}
	return entry.Value, true
}

func (c *Cache) IsFresh(id string, window time.Duration) bool {
	_, ok := c.GetFresh(id, window)
	return ok
}

// GetFresh combines IsFresh and Get under a single read lock so a concurrent
// Put cannot slip in between the check and the read.
func (c *Cache) GetFresh(id string, window time.Duration) (string, bool) {
	now := c.clock.Now()

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[id]
	if !ok || entry.Age(now) >= window {
		return "", false
	}
	return entry.Value, true
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
