package services

import "github.com/zongzewu23/seattle-hotel-viata/internal/domain"

// ShouldCluster reports whether clustering is active at the given zoom.
// Below MinZoom and above MaxZoom callers render every hotel individually
// and must not invoke the engine at all.
func ShouldCluster(zoom float64, cfg domain.ClusterConfig) bool {
	return zoom >= cfg.MinZoom && zoom <= cfg.MaxZoom
}
