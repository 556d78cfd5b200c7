package services

import (
	"math"
	"testing"

	"github.com/zongzewu23/seattle-hotel-viata/internal/domain"
)

func TestCentroidAndBounds(t *testing.T) {
	hotels := []domain.Hotel{
		{HotelID: 1, Position: domain.Coordinates{Lat: 47.60, Lon: -122.34}},
		{HotelID: 2, Position: domain.Coordinates{Lat: 47.62, Lon: -122.30}},
		{HotelID: 3, Position: domain.Coordinates{Lat: 47.61, Lon: -122.32}},
	}

	center, err := Centroid(hotels)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(center.Lat-47.61) > 1e-9 || math.Abs(center.Lon+122.32) > 1e-9 {
		t.Errorf("centroid = %+v, want (47.61, -122.32)", center)
	}

	box, err := Bounds(hotels)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := domain.BoundingBox{MinLat: 47.60, MinLon: -122.34, MaxLat: 47.62, MaxLon: -122.30}
	if box != want {
		t.Errorf("bounds = %+v, want %+v", box, want)
	}
}

func TestMeanRating(t *testing.T) {
	hotels := []domain.Hotel{
		{HotelID: 1, Rating: 4.0},
		{HotelID: 2, Rating: 3.0},
		{HotelID: 3, Rating: 5.0},
	}

	mean, err := MeanRating(hotels)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(mean-4.0) > 1e-9 {
		t.Errorf("mean rating = %v, want 4.0", mean)
	}
}

func TestPriceRangeCoercion(t *testing.T) {
	hotels := []domain.Hotel{
		{HotelID: 1, Price: "$189"},
		{HotelID: 2, Price: "129.50"},
		{HotelID: 3, Price: "$1,045"},
		{HotelID: 4, Price: "call for rates"}, // non-coercible -> 0
	}

	r, err := PriceRange(hotels)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Min != 0 {
		t.Errorf("min price = %v, want 0 (bad record coerces to 0)", r.Min)
	}
	if r.Max != 1045 {
		t.Errorf("max price = %v, want 1045", r.Max)
	}
}

func TestCoercePrice(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{"129", 129},
		{"$129", 129},
		{" $129.50 ", 129.5},
		{"1,299", 1299},
		{"", 0},
		{"N/A", 0},
		{"$", 0},
	}

	for _, c := range cases {
		if got := CoercePrice(c.raw); got != c.want {
			t.Errorf("CoercePrice(%q) = %v, want %v", c.raw, got, c.want)
		}
	}
}

func TestAggregatorsRejectEmptyInput(t *testing.T) {
	if _, err := Centroid(nil); err == nil {
		t.Error("centroid: expected error for empty input")
	}
	if _, err := Bounds(nil); err == nil {
		t.Error("bounds: expected error for empty input")
	}
	if _, err := MeanRating(nil); err == nil {
		t.Error("mean rating: expected error for empty input")
	}
	if _, err := PriceRange(nil); err == nil {
		t.Error("price range: expected error for empty input")
	}
}
