package ports

import (
	"context"

	"github.com/zongzewu23/seattle-hotel-viata/internal/domain"
)

// Contract for memoizing clustering results keyed by input fingerprint.
// Results are deterministic per key, so last-writer-wins semantics are
// acceptable for concurrent writers; implementations only need per-key
// atomicity, not coordination.
type ClusterCache interface {
	// Return the cached result for key, with ok=false on a miss.
	Get(ctx context.Context, key string) (result domain.ClusteringResult, ok bool, err error)
	// Store the result under key, evicting older entries if the
	// implementation is bounded.
	Put(ctx context.Context, key string, result domain.ClusteringResult) error
	// Drop every entry. Called when the hotel dataset is replaced wholesale.
	Clear(ctx context.Context) error
}
