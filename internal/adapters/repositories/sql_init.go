package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
)

// Initialize the hotel database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createHotelsQuery := `
	CREATE TABLE IF NOT EXISTS hotels (
		hotel_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		lat REAL NOT NULL,
		lon REAL NOT NULL,
		rating REAL NOT NULL,
		price TEXT NOT NULL
	);
	`

	if _, err := tx.Exec(createHotelsQuery); err != nil {
		return fmt.Errorf("init schema: create hotels table: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Accepts a price encoded either as a JSON number or a string ("129",
// "$129"), since upstream feeds are inconsistent about it.
type priceText string

func (p *priceText) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = priceText(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("price must be a number or a string, got %s", string(data))
	}
	*p = priceText(n.String())
	return nil
}

type HotelSeed struct {
	HotelID int       `json:"hotel_id"`
	Name    string    `json:"name"`
	Lat     float64   `json:"lat"`
	Lon     float64   `json:"lon"`
	Rating  float64   `json:"rating"`
	Price   priceText `json:"price"`
}

// Populate the database with hotel data from a JSON file. This is the
// validation boundary: everything past it may assume finite, range-valid
// coordinates and a numeric rating.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed hotels: read %q: %w", jsonPath, err)
	}

	var data []HotelSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed hotels: parse json: %w", err)
	}

	rows := make([]HotelSeed, 0, len(data))
	for i, item := range data {
		if item.HotelID <= 0 {
			return fmt.Errorf("seed hotels: invalid hotel_id at index %d: %d", i+1, item.HotelID)
		}

		name := strings.TrimSpace(item.Name)
		if name == "" {
			return fmt.Errorf("seed hotels: hotel_id=%d: name cannot be empty", item.HotelID)
		}

		if math.IsNaN(item.Lat) || math.IsInf(item.Lat, 0) || item.Lat < -90 || item.Lat > 90 {
			return fmt.Errorf("seed hotels: hotel_id=%d: latitude out of range: %v", item.HotelID, item.Lat)
		}
		if math.IsNaN(item.Lon) || math.IsInf(item.Lon, 0) || item.Lon < -180 || item.Lon > 180 {
			return fmt.Errorf("seed hotels: hotel_id=%d: longitude out of range: %v", item.HotelID, item.Lon)
		}
		if math.IsNaN(item.Rating) || math.IsInf(item.Rating, 0) {
			return fmt.Errorf("seed hotels: hotel_id=%d: rating must be numeric", item.HotelID)
		}

		item.Name = name
		rows = append(rows, item)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed hotels: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT OR REPLACE INTO hotels (
		hotel_id,
		name,
		lat,
		lon,
		rating,
		price
	)
	VALUES (?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed hotels: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, h := range rows {
		if _, err := stmt.Exec(h.HotelID, h.Name, h.Lat, h.Lon, h.Rating, string(h.Price)); err != nil {
			return fmt.Errorf("seed hotels: insert hotel_id=%d: %w", h.HotelID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed hotels: commit tx: %w", err)
	}

	return nil
}
