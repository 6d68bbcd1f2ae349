package cache

import (
	"context"
	"sync"
)

// MemoryCache is an in-process cache for single-instance deployments and
// tests. Entries never expire; restart to clear.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

func NewMemory() *MemoryCache {
	return &MemoryCache{entries: make(map[string]Entry)}
}

func (c *MemoryCache) Get(_ context.Context, sortCode, account string) (Entry, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[key(sortCode, account)]
	return entry, ok, nil
}

func (c *MemoryCache) Set(_ context.Context, sortCode, account string, entry Entry) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key(sortCode, account)] = entry
	return nil
}
