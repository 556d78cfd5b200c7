package services

import (
	"context"
	"fmt"
	"log"

	"github.com/zongzewu23/seattle-hotel-viata/internal/domain"
	"github.com/zongzewu23/seattle-hotel-viata/internal/platform/obs"
	"github.com/zongzewu23/seattle-hotel-viata/internal/ports"
)

// Engine is the memoized entry point consumers call on every viewport
// tick. The cache is owned by whoever constructs the engine (no hidden
// module-level state), which also makes tests trivial: build a fresh
// cache per test.
//
// The engine itself is synchronous and deterministic; the cache is the
// only mutable resource, and cache failures degrade to recomputation
// rather than failing the call.
type Engine struct {
	cache ports.ClusterCache
}

func NewEngine(cache ports.ClusterCache) *Engine {
	return &Engine{cache: cache}
}

// Cluster returns the clustering of hotels at the viewport's zoom,
// serving from cache when an entry for the same (point set, zoom bucket,
// config) fingerprint exists.
func (e *Engine) Cluster(
	ctx context.Context,
	hotels []domain.Hotel,
	viewport domain.Viewport,
	cfg domain.ClusterConfig,
) (_ domain.ClusteringResult, err error) {
	defer obs.Time(ctx, "engine.Cluster")(&err)

	key := Fingerprint(hotels, viewport.Zoom, cfg)

	if e.cache != nil {
		cached, ok, err := e.cache.Get(ctx, key)
		if err != nil {
			log.Printf("cluster cache get failed key=%q err=%v (recomputing)", key, err)
		} else if ok {
			return cached, nil
		}
	}

	result, err := ClusterHotels(hotels, viewport.Zoom, cfg)
	if err != nil {
		return domain.ClusteringResult{}, fmt.Errorf("engine cluster: %w", err)
	}

	if e.cache != nil {
		if err := e.cache.Put(ctx, key, result); err != nil {
			log.Printf("cluster cache put failed key=%q err=%v", key, err)
		}
	}

	return result, nil
}

// ClearCache purges every memoized result. Callers invoke it when the
// underlying hotel dataset is replaced wholesale; stale fingerprints are
// harmless but wasteful.
func (e *Engine) ClearCache(ctx context.Context) error {
	if e.cache == nil {
		return nil
	}
	if err := e.cache.Clear(ctx); err != nil {
		return fmt.Errorf("engine clear cache: %w", err)
	}
	return nil
}
