package handlers

import (
	"log"
	"net/http"

	"github.com/zongzewu23/seattle-hotel-viata/internal/api/dto"
	"github.com/zongzewu23/seattle-hotel-viata/internal/domain"
	"github.com/zongzewu23/seattle-hotel-viata/internal/ports"
)

// HotelHandler exposes read-only hotel retrieval endpoints.
type HotelHandler struct {
	Repo ports.HotelRepository
}

func (h *HotelHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	hotels, err := h.Repo.ListHotels(r.Context())
	if err != nil {
		log.Printf("list hotels failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListHotelsResponse{
		Hotels: hotelsToDTO(hotels),
	}

	writeJSON(w, r, http.StatusOK, res)
}

func hotelsToDTO(hotels []domain.Hotel) []dto.HotelResponse {
	out := make([]dto.HotelResponse, 0, len(hotels))
	for _, h := range hotels {
		out = append(out, dto.HotelResponse{
			HotelID: h.HotelID,
			Name:    h.Name,
			Lat:     h.Position.Lat,
			Lon:     h.Position.Lon,
			Rating:  h.Rating,
			Price:   h.Price,
		})
	}
	return out
}
