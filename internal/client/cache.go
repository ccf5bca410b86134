package client

import (
	"sync"
	"time"
)

// responseCache memoizes successful GET bodies per (method, url) with a
// fixed TTL. Expiry is checked on read and there is no other eviction,
// so entries for keys never re-requested live as long as the client.
// That leak is bounded and acceptable at gallery-content scale.
type responseCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
	now     func() time.Time
}

type cacheEntry struct {
	body     []byte
	storedAt time.Time
}

func newResponseCache(ttl time.Duration) *responseCache {
	return &responseCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

func (c *responseCache) lookup(method, url string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[method+" "+url]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.storedAt) >= c.ttl {
		delete(c.entries, method+" "+url)
		return nil, false
	}
	return entry.body, true
}

func (c *responseCache) store(method, url string, body []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[method+" "+url] = cacheEntry{body: body, storedAt: c.now()}
}
