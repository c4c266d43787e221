package analytics

import (
	"sync"
	"time"
)

// Report cache keys and TTLs. Keys are fixed per report type, not
// parameterized; entries die only by expiry or an explicit Clear.
const (
	keyDashboard = "dashboard"
	keySales     = "sales"
	keyInventory = "inventory"
	keyCustomers = "customers"

	shortTTL    = 5 * time.Minute
	customerTTL = 10 * time.Minute
)

type cacheEntry struct {
	value     any
	expiresAt time.Time
}

// cache is an expiring key-value map. Mutations do not invalidate it; only
// expiry and Clear do.
type cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	now     func() time.Time
}

func newCache(now func() time.Time) *cache {
	return &cache{entries: map[string]cacheEntry{}, now: now}
}

func (c *cache) get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().After(entry.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	return entry.value, true
}

func (c *cache) set(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{value: value, expiresAt: c.now().Add(ttl)}
}

func (c *cache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = map[string]cacheEntry{}
}
