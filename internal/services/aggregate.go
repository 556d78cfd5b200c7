package services

import (
	"errors"
	"strconv"
	"strings"

	"github.com/zongzewu23/seattle-hotel-viata/internal/domain"
)

// Aggregation over cluster members. All four functions are pure and total
// for any non-empty input; an empty slice is a caller error and fails fast.

// Centroid returns the arithmetic mean of member latitudes and longitudes.
// Adequate at city scale; no spherical correction is applied.
func Centroid(hotels []domain.Hotel) (domain.Coordinates, error) {
	if len(hotels) == 0 {
		return domain.Coordinates{}, errors.New("centroid: hotels must be non-empty")
	}

	var sumLat, sumLon float64
	for _, h := range hotels {
		sumLat += h.Position.Lat
		sumLon += h.Position.Lon
	}

	n := float64(len(hotels))
	return domain.Coordinates{Lat: sumLat / n, Lon: sumLon / n}, nil
}

// Bounds returns the minimal lat/lon box containing every member.
func Bounds(hotels []domain.Hotel) (domain.BoundingBox, error) {
	if len(hotels) == 0 {
		return domain.BoundingBox{}, errors.New("bounds: hotels must be non-empty")
	}

	b := domain.BoundingBox{
		MinLat: hotels[0].Position.Lat,
		MaxLat: hotels[0].Position.Lat,
		MinLon: hotels[0].Position.Lon,
		MaxLon: hotels[0].Position.Lon,
	}
	for _, h := range hotels[1:] {
		if h.Position.Lat < b.MinLat {
			b.MinLat = h.Position.Lat
		}
		if h.Position.Lat > b.MaxLat {
			b.MaxLat = h.Position.Lat
		}
		if h.Position.Lon < b.MinLon {
			b.MinLon = h.Position.Lon
		}
		if h.Position.Lon > b.MaxLon {
			b.MaxLon = h.Position.Lon
		}
	}

	return b, nil
}

// MeanRating returns the arithmetic mean of member ratings.
func MeanRating(hotels []domain.Hotel) (float64, error) {
	if len(hotels) == 0 {
		return 0, errors.New("mean rating: hotels must be non-empty")
	}

	var sum float64
	for _, h := range hotels {
		sum += h.Rating
	}
	return sum / float64(len(hotels)), nil
}

// PriceRange returns the minimum and maximum member price after coercing
// each raw price to a number. A price that fails to coerce counts as 0:
// one bad record must not break clustering for the rest of the dataset.
func PriceRange(hotels []domain.Hotel) (domain.PriceRange, error) {
	if len(hotels) == 0 {
		return domain.PriceRange{}, errors.New("price range: hotels must be non-empty")
	}

	first := CoercePrice(hotels[0].Price)
	r := domain.PriceRange{Min: first, Max: first}
	for _, h := range hotels[1:] {
		p := CoercePrice(h.Price)
		if p < r.Min {
			r.Min = p
		}
		if p > r.Max {
			r.Max = p
		}
	}

	return r, nil
}

// CoercePrice parses a raw price string such as "129", "$129.50" or
// "1,299". Anything non-coercible yields 0 rather than an error.
func CoercePrice(raw string) float64 {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
