package cache

import (
	"context"
	"sync"

	"github.com/zongzewu23/seattle-hotel-viata/internal/domain"
)

// Fallback capacity when a caller passes a non-positive bound. The working
// set is "recently visited zoom buckets", so a small bound is plenty.
const DefaultCapacity = 20

// In-process bounded cache for clustering results with FIFO eviction:
// when full, the oldest inserted entry is dropped before the new one goes
// in. FIFO rather than LRU is deliberate; the working set is small and
// insertion order is a good enough proxy for staleness. Entries never
// expire by time — the fingerprint key captures everything that affects
// the result.
//
// A mutex keeps individual operations atomic, but the engine is otherwise
// single-threaded by design; concurrent callers at worst recompute
// redundantly (results per key are deterministic).
type MemoryClusterCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]domain.ClusteringResult
	order    []string
}

func NewMemoryClusterCache(capacity int) *MemoryClusterCache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &MemoryClusterCache{
		capacity: capacity,
		entries:  make(map[string]domain.ClusteringResult, capacity),
	}
}

func (c *MemoryClusterCache) Get(_ context.Context, key string) (domain.ClusteringResult, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	result, ok := c.entries[key]
	return result, ok, nil
}

func (c *MemoryClusterCache) Put(_ context.Context, key string, result domain.ClusteringResult) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		// Same key implies same deterministic result; overwrite without
		// disturbing the eviction queue.
		c.entries[key] = result
		return nil
	}

	if len(c.order) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}

	c.entries[key] = result
	c.order = append(c.order, key)
	return nil
}

func (c *MemoryClusterCache) Clear(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]domain.ClusteringResult, c.capacity)
	c.order = nil
	return nil
}

// Len reports the number of cached entries.
func (c *MemoryClusterCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
