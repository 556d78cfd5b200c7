package domain

import "fmt"

// Configuration for the clustering engine.
// The zoom bounds delimit the range in which clustering is active at all;
// outside it the caller renders every hotel individually.
type ClusterConfig struct {
	MinZoom         float64
	MaxZoom         float64
	ClusterRadiusPx float64
	MaxClusterSize  int
}

// DefaultConfig returns the configuration used by the map UI unless
// overridden through the environment.
func DefaultConfig() ClusterConfig {
	return ClusterConfig{
		MinZoom:         10,
		MaxZoom:         16,
		ClusterRadiusPx: 50,
		MaxClusterSize:  10,
	}
}

// Validate rejects configurations the engine cannot act on.
func (c ClusterConfig) Validate() error {
	if c.MinZoom > c.MaxZoom {
		return fmt.Errorf("cluster config: min zoom %v exceeds max zoom %v", c.MinZoom, c.MaxZoom)
	}
	if c.ClusterRadiusPx <= 0 {
		return fmt.Errorf("cluster config: radius must be positive, got %v", c.ClusterRadiusPx)
	}
	if c.MaxClusterSize <= 0 {
		return fmt.Errorf("cluster config: max cluster size must be positive, got %d", c.MaxClusterSize)
	}
	return nil
}

// The map's current view. Only Zoom affects clustering decisions; Center
// is carried so callers can pre-filter visible hotels before invoking the
// engine (an optimization, not a correctness requirement).
type Viewport struct {
	Zoom   float64
	Center Coordinates
}

// Minimum and maximum nightly price across a cluster's members.
type PriceRange struct {
	Min float64
	Max float64
}

// An aggregate of two or more nearby hotels with derived statistics.
// Clusters are value objects recomputed from scratch on every engine call
// and never mutated in place. ClusterID is a pure function of membership
// (sorted member ids), so the same member set always produces the same
// identity regardless of input order or previous results.
type Cluster struct {
	ClusterID  string
	Center     Coordinates
	Bounds     BoundingBox
	Members    []Hotel
	MeanRating float64
	PriceRange PriceRange
}

// The output of one clustering pass. Every input hotel appears exactly
// once across Clusters[*].Members and Unclustered.
type ClusteringResult struct {
	Clusters    []Cluster
	Unclustered []Hotel
}
