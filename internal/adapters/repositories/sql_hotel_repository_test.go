package repositories

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func seedTestDB(t *testing.T, seedJSON string) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	// An in-memory database exists per connection; keep the pool at one.
	db.SetMaxOpenConns(1)

	if err := InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	seedPath := filepath.Join(t.TempDir(), "hotels.json")
	if err := os.WriteFile(seedPath, []byte(seedJSON), 0o600); err != nil {
		t.Fatalf("write seed file: %v", err)
	}
	if err := SeedFromJSON(db, seedPath); err != nil {
		t.Fatalf("seed: %v", err)
	}

	return db
}

func TestSeedAndListHotels(t *testing.T) {
	// Price arrives both as string and number; both land as text.
	seed := `[
		{"hotel_id": 2, "name": "Market View Hotel", "lat": 47.6095, "lon": -122.334, "rating": 4.2, "price": "$219"},
		{"hotel_id": 1, "name": "Pike Street Inn", "lat": 47.6089, "lon": -122.3345, "rating": 4.5, "price": 189}
	]`
	db := seedTestDB(t, seed)

	repo := NewSQLHotelRepository(db)
	hotels, err := repo.ListHotels(context.Background())
	if err != nil {
		t.Fatalf("list hotels: %v", err)
	}

	if len(hotels) != 2 {
		t.Fatalf("got %d hotels, want 2", len(hotels))
	}

	// Ordered by id regardless of seed order.
	if hotels[0].HotelID != 1 || hotels[1].HotelID != 2 {
		t.Errorf("order = [%d, %d], want [1, 2]", hotels[0].HotelID, hotels[1].HotelID)
	}
	if hotels[0].Name != "Pike Street Inn" || hotels[0].Price != "189" {
		t.Errorf("hotel 1 = %+v", hotels[0])
	}
	if hotels[1].Position.Lat != 47.6095 || hotels[1].Price != "$219" {
		t.Errorf("hotel 2 = %+v", hotels[1])
	}
}

func TestSeedRejectsInvalidRecords(t *testing.T) {
	cases := []struct {
		name string
		seed string
	}{
		{"non-positive id", `[{"hotel_id": 0, "name": "X", "lat": 47.6, "lon": -122.3, "rating": 4, "price": "1"}]`},
		{"empty name", `[{"hotel_id": 1, "name": "  ", "lat": 47.6, "lon": -122.3, "rating": 4, "price": "1"}]`},
		{"latitude out of range", `[{"hotel_id": 1, "name": "X", "lat": 91, "lon": -122.3, "rating": 4, "price": "1"}]`},
		{"longitude out of range", `[{"hotel_id": 1, "name": "X", "lat": 47.6, "lon": -181, "rating": 4, "price": "1"}]`},
		{"price wrong type", `[{"hotel_id": 1, "name": "X", "lat": 47.6, "lon": -122.3, "rating": 4, "price": [1]}]`},
	}

	for _, c := range cases {
		db, err := sql.Open("sqlite", ":memory:")
		if err != nil {
			t.Fatalf("%s: open sqlite: %v", c.name, err)
		}
		db.SetMaxOpenConns(1)
		if err := InitSchema(db); err != nil {
			t.Fatalf("%s: init schema: %v", c.name, err)
		}

		seedPath := filepath.Join(t.TempDir(), "hotels.json")
		if err := os.WriteFile(seedPath, []byte(c.seed), 0o600); err != nil {
			t.Fatalf("%s: write seed: %v", c.name, err)
		}

		if err := SeedFromJSON(db, seedPath); err == nil {
			t.Errorf("%s: expected seed to fail", c.name)
		}
		_ = db.Close()
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	seed := `[{"hotel_id": 1, "name": "Pike Street Inn", "lat": 47.6089, "lon": -122.3345, "rating": 4.5, "price": "$189"}]`
	db := seedTestDB(t, seed)

	// Re-seeding replaces rather than duplicates.
	seedPath := filepath.Join(t.TempDir(), "hotels.json")
	if err := os.WriteFile(seedPath, []byte(seed), 0o600); err != nil {
		t.Fatalf("write seed file: %v", err)
	}
	if err := SeedFromJSON(db, seedPath); err != nil {
		t.Fatalf("re-seed: %v", err)
	}

	hotels, err := NewSQLHotelRepository(db).ListHotels(context.Background())
	if err != nil {
		t.Fatalf("list hotels: %v", err)
	}
	if len(hotels) != 1 {
		t.Errorf("got %d hotels after re-seed, want 1", len(hotels))
	}
}
