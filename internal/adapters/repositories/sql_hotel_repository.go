package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/zongzewu23/seattle-hotel-viata/internal/domain"
)

// SQL-backed implementation of the HotelRepository port. Works against
// any database/sql driver; the server wires SQLite, dbtool wires Postgres.
type SQLHotelRepository struct{ DB *sql.DB }

func NewSQLHotelRepository(db *sql.DB) *SQLHotelRepository {
	return &SQLHotelRepository{DB: db}
}

// Return all hotels stored in the database, ordered by id.
func (s *SQLHotelRepository) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	if s.DB == nil {
		return nil, errors.New("sql hotel repository: DB is nil")
	}

	query := `
	SELECT
		hotel_id,
		name,
		lat,
		lon,
		rating,
		price
	FROM hotels
	ORDER BY hotel_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list hotels: query hotels table: %w", err)
	}
	defer rows.Close()

	hotels := make([]domain.Hotel, 0, 64)
	for rows.Next() {
		var h domain.Hotel
		if err := rows.Scan(&h.HotelID, &h.Name, &h.Position.Lat, &h.Position.Lon, &h.Rating, &h.Price); err != nil {
			return nil, fmt.Errorf("list hotels: scan row: %w", err)
		}
		hotels = append(hotels, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list hotels: row iteration: %w", err)
	}

	return hotels, nil
}
