package services

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/zongzewu23/seattle-hotel-viata/internal/domain"
	"github.com/zongzewu23/seattle-hotel-viata/internal/geo"
)

// ClusterHotels groups hotels into proximity clusters using a single
// greedy pass.
//
// The pixel radius from the config is converted to a geographic radius
// once, using the mean latitude of the whole input set as the reference
// latitude. At city scale the error from not re-deriving it per point is
// negligible, and downstream cache fingerprints assume this behavior.
//
// Hotels are visited in ascending id order, so for a fixed input the
// output is identical on every call, including cluster identities. Member
// sets are independent of the caller's slice order. O(n²) pairwise
// scanning; intended for hundreds of points, not millions.
func ClusterHotels(hotels []domain.Hotel, zoom float64, cfg domain.ClusterConfig) (domain.ClusteringResult, error) {
	if err := cfg.Validate(); err != nil {
		return domain.ClusteringResult{}, fmt.Errorf("cluster hotels: %w", err)
	}

	result := domain.ClusteringResult{
		Clusters:    []domain.Cluster{},
		Unclustered: []domain.Hotel{},
	}
	if len(hotels) == 0 {
		return result, nil
	}

	radiusKm, err := geo.PixelToGeoDistance(cfg.ClusterRadiusPx, meanLatitude(hotels), zoom)
	if err != nil {
		return domain.ClusteringResult{}, fmt.Errorf("cluster hotels: derive radius: %w", err)
	}

	// Deterministic visit order regardless of how the caller ordered the slice.
	ordered := make([]domain.Hotel, len(hotels))
	copy(ordered, hotels)
	slices.SortFunc(ordered, func(a, b domain.Hotel) int { return a.HotelID - b.HotelID })

	processed := make(map[int]bool, len(ordered))

	for i, seed := range ordered {
		if processed[seed.HotelID] {
			continue
		}

		group := []domain.Hotel{seed}
		processed[seed.HotelID] = true

		for _, candidate := range ordered[i+1:] {
			if processed[candidate.HotelID] {
				continue
			}
			// Once a forming group hits the cap, remaining nearby hotels are
			// left for a later group. Two hotels within radius of each other
			// can therefore land in different clusters; that is the documented
			// greedy trade-off, not a defect.
			if len(group) >= cfg.MaxClusterSize {
				break
			}
			if geo.HaversineKm(seed.Position, candidate.Position) <= radiusKm {
				group = append(group, candidate)
				processed[candidate.HotelID] = true
			}
		}

		// A hotel never clusters alone.
		if len(group) == 1 {
			result.Unclustered = append(result.Unclustered, seed)
			continue
		}

		cluster, err := buildCluster(group)
		if err != nil {
			return domain.ClusteringResult{}, fmt.Errorf("cluster hotels: %w", err)
		}
		result.Clusters = append(result.Clusters, cluster)
	}

	return result, nil
}

// buildCluster derives a Cluster value (identity plus aggregate stats)
// from a group of two or more hotels.
func buildCluster(members []domain.Hotel) (domain.Cluster, error) {
	center, err := Centroid(members)
	if err != nil {
		return domain.Cluster{}, fmt.Errorf("build cluster: %w", err)
	}
	bounds, err := Bounds(members)
	if err != nil {
		return domain.Cluster{}, fmt.Errorf("build cluster: %w", err)
	}
	rating, err := MeanRating(members)
	if err != nil {
		return domain.Cluster{}, fmt.Errorf("build cluster: %w", err)
	}
	prices, err := PriceRange(members)
	if err != nil {
		return domain.Cluster{}, fmt.Errorf("build cluster: %w", err)
	}

	return domain.Cluster{
		ClusterID:  ClusterID(members),
		Center:     center,
		Bounds:     bounds,
		Members:    members,
		MeanRating: rating,
		PriceRange: prices,
	}, nil
}

// ClusterID derives a cluster's identity from its membership alone:
// "cluster-" followed by the sorted member ids joined with "-". Identical
// member sets always produce identical ids, independent of iteration
// order, input order, or previous results. Renderers key visual elements
// on this id to recognize "the same cluster" across recomputations.
func ClusterID(members []domain.Hotel) string {
	ids := make([]int, 0, len(members))
	for _, h := range members {
		ids = append(ids, h.HotelID)
	}
	slices.Sort(ids)

	parts := make([]string, 0, len(ids)+1)
	parts = append(parts, "cluster")
	for _, id := range ids {
		parts = append(parts, strconv.Itoa(id))
	}
	return strings.Join(parts, "-")
}

func meanLatitude(hotels []domain.Hotel) float64 {
	var sum float64
	for _, h := range hotels {
		sum += h.Position.Lat
	}
	return sum / float64(len(hotels))
}
