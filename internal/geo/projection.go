package geo

import (
	"fmt"
	"math"

	"github.com/zongzewu23/seattle-hotel-viata/internal/domain"
)

// Mean Earth radius (km) used by the haversine formula.
const EarthRadiusKm = 6371.0

// Web-Mercator ground resolution at zoom 0 and the equator, meters per pixel.
const mercatorMetersPerPixel = 156543.03392

func degreesToRadians(d float64) float64 { return d * math.Pi / 180.0 }

// MetersPerPixel returns the Web-Mercator ground resolution at a latitude
// and zoom level.
func MetersPerPixel(latitudeDeg, zoom float64) (float64, error) {
	if zoom < 0 {
		return 0, fmt.Errorf("meters per pixel: zoom must be non-negative, got %v", zoom)
	}
	return mercatorMetersPerPixel * math.Cos(degreesToRadians(latitudeDeg)) / math.Pow(2, zoom), nil
}

// GeoToPixelDistance converts a geographic distance in kilometers to the
// on-screen pixel distance it spans at the given latitude and zoom.
func GeoToPixelDistance(geoKm, latitudeDeg, zoom float64) (float64, error) {
	mpp, err := MetersPerPixel(latitudeDeg, zoom)
	if err != nil {
		return 0, fmt.Errorf("geo to pixel distance: %w", err)
	}
	return geoKm * 1000.0 / mpp, nil
}

// PixelToGeoDistance is the exact inverse of GeoToPixelDistance.
func PixelToGeoDistance(px, latitudeDeg, zoom float64) (float64, error) {
	mpp, err := MetersPerPixel(latitudeDeg, zoom)
	if err != nil {
		return 0, fmt.Errorf("pixel to geo distance: %w", err)
	}
	return px * mpp / 1000.0, nil
}

// HaversineKm returns the great-circle distance between two coordinates in
// kilometers. Symmetric in its arguments; zero for identical points.
// Numerical behavior near the poles is out of scope: the coordinate domain
// is a single city.
func HaversineKm(a, b domain.Coordinates) float64 {
	lat1 := degreesToRadians(a.Lat)
	lat2 := degreesToRadians(b.Lat)
	dLat := degreesToRadians(b.Lat - a.Lat)
	dLon := degreesToRadians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}
