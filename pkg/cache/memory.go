package cache

import (
	"sync"

	"github.com/wetshaving/brushmatch/pkg/types"
)

// MemoryCache implements Cache with in-process storage. Used for tests and
// runs without a persistent store.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]*types.BrushMatchResult
}

// NewMemory creates an empty in-memory cache.
func NewMemory() *MemoryCache {
	return &MemoryCache{entries: make(map[string]*types.BrushMatchResult)}
}

// Lookup returns the stored result or nil on a miss.
func (c *MemoryCache) Lookup(normalized string) (*types.BrushMatchResult, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	r, ok := c.entries[normalized]
	if !ok || !valid(normalized, r) {
		return nil, nil
	}
	return r, nil
}

// Record stores a confirmed result, replacing any previous entry.
func (c *MemoryCache) Record(normalized string, result *types.BrushMatchResult) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[normalized] = result
	return nil
}

// Close is a no-op.
func (c *MemoryCache) Close() error { return nil }
