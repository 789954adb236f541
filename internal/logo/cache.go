package logo

import (
	"sync"
	"time"
)

const (
	// defaultCacheTTL is how long a remote check result is reused
	defaultCacheTTL = 5 * time.Minute
	// defaultCacheEntries bounds the number of URLs remembered at once
	defaultCacheEntries = 512
)

type cachedResult struct {
	result    Result
	expiresAt time.Time
}

// resultCache remembers check results per URL so a logo field that loses
// focus repeatedly does not refetch the same image
type resultCache struct {
	mu         sync.RWMutex
	entries    map[string]*cachedResult
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

func newResultCache(ttl time.Duration, maxEntries int) *resultCache {
	if maxEntries <= 0 {
		maxEntries = defaultCacheEntries
	}
	return &resultCache{
		entries:    make(map[string]*cachedResult),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

func (c *resultCache) get(key string) (Result, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cached, ok := c.entries[key]
	if !ok || !c.now().Before(cached.expiresAt) {
		return Result{}, false
	}
	return cached.result, true
}

func (c *resultCache) put(key string, res Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Drop expired entries while the lock is held anyway
	now := c.now()
	for k, cached := range c.entries {
		if !now.Before(cached.expiresAt) {
			delete(c.entries, k)
		}
	}
	if _, ok := c.entries[key]; !ok && len(c.entries) >= c.maxEntries {
		c.evictOldest()
	}
	c.entries[key] = &cachedResult{result: res, expiresAt: now.Add(c.ttl)}
}

func (c *resultCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// evictOldest drops the entry closest to expiry. Callers hold c.mu.
func (c *resultCache) evictOldest() {
	var oldestKey string
	var oldest time.Time
	for k, cached := range c.entries {
		if oldestKey == "" || cached.expiresAt.Before(oldest) {
			oldestKey, oldest = k, cached.expiresAt
		}
	}
	delete(c.entries, oldestKey)
}
