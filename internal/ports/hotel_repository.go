package ports

import (
	"context"

	"github.com/zongzewu23/seattle-hotel-viata/internal/domain"
)

// Port: a boundary for retrieving Hotel records from a data source.
// Implementations guarantee finite, range-valid coordinates and a numeric
// rating before handing hotels to the clustering engine.
type HotelRepository interface {
	// Retrieve all hotels available for display.
	ListHotels(ctx context.Context) ([]domain.Hotel, error)
}
