package geo

import (
	"math"
	"testing"

	"github.com/zongzewu23/seattle-hotel-viata/internal/domain"
)

func TestHaversineKm(t *testing.T) {
	pike := domain.Coordinates{Lat: 47.6089, Lon: -122.3345}
	market := domain.Coordinates{Lat: 47.6095, Lon: -122.3340}
	belltown := domain.Coordinates{Lat: 47.6200, Lon: -122.3500}

	// Identical points have zero distance.
	if d := HaversineKm(pike, pike); d != 0 {
		t.Errorf("distance to self = %v, want 0", d)
	}

	// Symmetric in its arguments.
	ab := HaversineKm(pike, belltown)
	ba := HaversineKm(belltown, pike)
	if math.Abs(ab-ba) > 1e-12 {
		t.Errorf("asymmetric distance: %v vs %v", ab, ba)
	}

	// Two downtown hotels a block apart: roughly 80 meters.
	if d := HaversineKm(pike, market); d < 0.05 || d > 0.11 {
		t.Errorf("pike-market distance = %v km, want ~0.08", d)
	}

	// Across downtown: well over a kilometer.
	if ab < 1.0 || ab > 2.5 {
		t.Errorf("pike-belltown distance = %v km, want ~1.7", ab)
	}
}

func TestPixelGeoRoundTrip(t *testing.T) {
	cases := []struct {
		km   float64
		lat  float64
		zoom float64
	}{
		{0.08, 47.61, 12},
		{1.5, 47.61, 12},
		{0.5, 47.61, 16},
		{10, 0, 8},
		{2, -33.87, 14},
	}

	for _, c := range cases {
		px, err := GeoToPixelDistance(c.km, c.lat, c.zoom)
		if err != nil {
			t.Fatalf("geo to pixel (%v km, lat %v, zoom %v): %v", c.km, c.lat, c.zoom, err)
		}
		back, err := PixelToGeoDistance(px, c.lat, c.zoom)
		if err != nil {
			t.Fatalf("pixel to geo (%v px, lat %v, zoom %v): %v", px, c.lat, c.zoom, err)
		}
		if math.Abs(back-c.km) > 1e-9 {
			t.Errorf("round trip %v km at lat %v zoom %v: got %v back", c.km, c.lat, c.zoom, back)
		}
	}
}

func TestNegativeZoomRejected(t *testing.T) {
	if _, err := GeoToPixelDistance(1, 47.61, -1); err == nil {
		t.Error("geo to pixel: expected error for negative zoom")
	}
	if _, err := PixelToGeoDistance(50, 47.61, -0.1); err == nil {
		t.Error("pixel to geo: expected error for negative zoom")
	}
	if _, err := MetersPerPixel(47.61, -3); err == nil {
		t.Error("meters per pixel: expected error for negative zoom")
	}
}

func TestClusterRadiusAtZoom12(t *testing.T) {
	// 50 px at zoom 12 in Seattle is on the order of 1.3 km; the clustering
	// scenario tests depend on this scale.
	radiusKm, err := PixelToGeoDistance(50, 47.61, 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if radiusKm < 1.0 || radiusKm > 1.6 {
		t.Errorf("50 px at zoom 12 = %v km, want ~1.3", radiusKm)
	}
}
