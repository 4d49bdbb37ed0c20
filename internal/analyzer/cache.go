package analyzer

import (
	"context"
	"sync"
)

// scanCache memoizes scan output per volume identifier for the lifetime
// of the engine instance. Entries are never invalidated or refreshed: a
// second query after the filesystem has changed still returns the
// original snapshot.
type scanCache struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
}

// cacheEntry holds one volume's scan. The sync.Once serializes
// concurrent first queries for the same identifier so the expensive
// scan runs exactly once, while queries for other identifiers proceed
// independently.
type cacheEntry struct {
	once   sync.Once
	result *scanResult
	err    error
}

func newScanCache() *scanCache {
	return &scanCache{
		entries: make(map[string]*cacheEntry),
	}
}

// getOrScan returns the cached scan for id, running scan to populate it
// on first use. A failed scan is discarded so a later query can retry.
func (c *scanCache) getOrScan(
	ctx context.Context,
	id string,
	scan func(context.Context) (*scanResult, error),
) (*scanResult, error) {
	c.mu.Lock()

	entry, ok := c.entries[id]
	if !ok {
		entry = &cacheEntry{}
		c.entries[id] = entry
	}
	c.mu.Unlock()

	entry.once.Do(func() {
		entry.result, entry.err = scan(ctx)
	})

	if entry.err != nil {
		c.mu.Lock()
		if c.entries[id] == entry {
			delete(c.entries, id)
		}
		c.mu.Unlock()

		return nil, entry.err
	}

	return entry.result, nil
}

// len reports the number of populated or in-flight entries.
func (c *scanCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}
