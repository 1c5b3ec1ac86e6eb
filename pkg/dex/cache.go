package dex

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache memoizes resolved snapshots for the lifetime of one invocation.
// It is safe for concurrent use. Only one goroutine fills a given key,
// others wait for its result. Failed fills are not remembered.
type Cache struct {
	mu    sync.RWMutex
	items map[string]any
	group singleflight.Group
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{items: make(map[string]any)}
}

// Len returns the number of cached snapshots.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Cache) get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.items[key]
	return v, ok
}

// fetch returns a cached value or fills it. A nil cache always fills.
func fetch[T any](c *Cache, key string, fill func() (T, error)) (T, error) {
	if c == nil {
		return fill()
	}
	if v, ok := c.get(key); ok {
		return v.(T), nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		if v, ok := c.get(key); ok {
			return v, nil
		}
		res, err := fill()
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.items[key] = res
		c.mu.Unlock()
		return res, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
