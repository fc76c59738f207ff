package cache

import (
	"context"
	"sync"
	"time"
)

type memoryClient struct {
	prefix string
	mu     sync.RWMutex
	data   map[string]memoryEntry
}

type memoryEntry struct {
	value     string
	expiresAt time.Time
	noExpire  bool
}

func NewMemory(prefix string) Client {
	return &memoryClient{
		prefix: prefix,
		data:   make(map[string]memoryEntry),
	}
}

func (c *memoryClient) key(k string) string {
	if c.prefix == "" {
		return k
	}
	return c.prefix + ":" + k
}

func (e memoryEntry) expired() bool {
	return !e.noExpire && time.Now().After(e.expiresAt)
}

func (c *memoryClient) Get(_ context.Context, key string) (string, error) {
	c.mu.RLock()
	entry, ok := c.data[c.key(key)]
	c.mu.RUnlock()

	if !ok || entry.expired() {
		return "", ErrNotFound
	}
	return entry.value, nil
}

func (c *memoryClient) Set(_ context.Context, key, value string, ttl time.Duration) error {
	entry := memoryEntry{value: value, noExpire: ttl == 0}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}

	c.mu.Lock()
	c.data[c.key(key)] = entry
	c.evictExpiredLocked()
	c.mu.Unlock()
	return nil
}

func (c *memoryClient) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	delete(c.data, c.key(key))
	c.mu.Unlock()
	return nil
}

func (c *memoryClient) Exists(ctx context.Context, key string) (bool, error) {
	_, err := c.Get(ctx, key)
	if err == ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (c *memoryClient) Close() error { return nil }

// evictExpiredLocked reclaims dead entries opportunistically on writes.
func (c *memoryClient) evictExpiredLocked() {
	for k, e := range c.data {
		if e.expired() {
			delete(c.data, k)
		}
	}
}
