// ABOUTME: In-memory cache with TTL-based expiration
// ABOUTME: Backs the dashboard working set so metric views don't hammer the API

package cache

import (
	"log/slog"
	"sync"
	"time"
)

type entry struct {
	data      interface{}
	expiresAt time.Time
}

// Cache is a small TTL cache with lazy expiration. Entries are few and
// short-lived (one working set per view), so there is no background sweeper.
type Cache struct {
	mu    sync.Mutex
	store map[string]entry
	ttl   time.Duration
}

func New(ttl time.Duration) *Cache {
	return &Cache{
		store: make(map[string]entry),
		ttl:   ttl,
	}
}

func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.store[key]
	if !ok {
		slog.Debug("Cache miss", "key", key)
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		delete(c.store, key)
		slog.Debug("Cache expired", "key", key)
		return nil, false
	}

	slog.Debug("Cache hit", "key", key)
	return e.data, true
}

func (c *Cache) Set(key string, value interface{}) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores a value with a custom TTL
func (c *Cache) SetWithTTL(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store[key] = entry{
		data:      value,
		expiresAt: time.Now().Add(ttl),
	}
	slog.Debug("Cache set", "key", key, "ttl", ttl)
}

func (c *Cache) Clear(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.store, key)
}
