package services

import (
	"fmt"
	"slices"
	"strings"

	"github.com/zongzewu23/seattle-hotel-viata/internal/domain"
)

// Cache key construction. The fingerprint must capture everything that
// affects a clustering result — membership, positions, zoom bucket, and
// config — because cache entries never expire by time. It is a first-class
// component precisely because string keys are fragile to formatting drift:
// the format lives here and nowhere else.

// Fingerprint builds the full cache key for one clustering call.
func Fingerprint(hotels []domain.Hotel, zoom float64, cfg domain.ClusterConfig) string {
	return PointSetFingerprint(hotels) + "#" + ZoomBucket(zoom) + "#" + ConfigFingerprint(cfg)
}

// PointSetFingerprint digests hotel membership and positions. Entries are
// sorted by id, so the digest is independent of slice order. Coordinates
// are rounded to four decimals (~11 m), below marker-position resolution.
func PointSetFingerprint(hotels []domain.Hotel) string {
	ordered := make([]domain.Hotel, len(hotels))
	copy(ordered, hotels)
	slices.SortFunc(ordered, func(a, b domain.Hotel) int { return a.HotelID - b.HotelID })

	parts := make([]string, 0, len(ordered))
	for _, h := range ordered {
		parts = append(parts, fmt.Sprintf("%d:%.4f,%.4f", h.HotelID, h.Position.Lat, h.Position.Lon))
	}
	return strings.Join(parts, "|")
}

// ZoomBucket rounds zoom to one decimal so sub-pixel zoom jitter maps to
// the same cache entry instead of invalidating it.
func ZoomBucket(zoom float64) string {
	return fmt.Sprintf("z%.1f", zoom)
}

// ConfigFingerprint digests the config fields that affect grouping.
func ConfigFingerprint(cfg domain.ClusterConfig) string {
	return fmt.Sprintf("r%g:c%d", cfg.ClusterRadiusPx, cfg.MaxClusterSize)
}
