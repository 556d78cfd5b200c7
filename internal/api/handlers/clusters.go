package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/zongzewu23/seattle-hotel-viata/internal/api/dto"
	"github.com/zongzewu23/seattle-hotel-viata/internal/domain"
	"github.com/zongzewu23/seattle-hotel-viata/internal/ports"
	"github.com/zongzewu23/seattle-hotel-viata/internal/services"
)

type ClusterHandler struct {
	Repo   ports.HotelRepository
	Engine *services.Engine
	Config domain.ClusterConfig
}

// Clusters computes the marker grouping for the requested viewport.
//
// Query parameters: zoom (required, non-negative float) and an optional
// viewport box (min_lat, min_lon, max_lat, max_lon — all four or none)
// that pre-filters visible hotels before the engine runs. Outside the
// configured zoom range the engine is bypassed entirely and every hotel
// comes back unclustered with clustering_active=false.
func (h *ClusterHandler) Clusters(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	q := r.URL.Query()

	zoomRaw := q.Get("zoom")
	if zoomRaw == "" {
		writeError(w, r, http.StatusBadRequest, "zoom is required")
		return
	}
	zoom, err := strconv.ParseFloat(zoomRaw, 64)
	if err != nil || zoom < 0 {
		writeError(w, r, http.StatusBadRequest, "zoom must be a non-negative number")
		return
	}

	box, ok := parseBoundingBox(q.Get("min_lat"), q.Get("min_lon"), q.Get("max_lat"), q.Get("max_lon"))
	if !ok {
		writeError(w, r, http.StatusBadRequest, "viewport box requires min_lat, min_lon, max_lat, max_lon")
		return
	}

	hotels, err := h.Repo.ListHotels(r.Context())
	if err != nil {
		log.Printf("list hotels failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	if box != nil {
		visible := make([]domain.Hotel, 0, len(hotels))
		for _, hotel := range hotels {
			if box.Contains(hotel.Position) {
				visible = append(visible, hotel)
			}
		}
		hotels = visible
	}

	res := dto.ClustersResponse{
		Zoom:        zoom,
		Clusters:    []dto.ClusterResponse{},
		Unclustered: []dto.HotelResponse{},
	}

	if !services.ShouldCluster(zoom, h.Config) {
		// Degraded mode: render every marker individually.
		res.Unclustered = hotelsToDTO(hotels)
		writeJSON(w, r, http.StatusOK, res)
		return
	}

	viewport := domain.Viewport{Zoom: zoom}
	if box != nil {
		viewport.Center = domain.Coordinates{
			Lat: (box.MinLat + box.MaxLat) / 2,
			Lon: (box.MinLon + box.MaxLon) / 2,
		}
	}

	result, err := h.Engine.Cluster(r.Context(), hotels, viewport, h.Config)
	if err != nil {
		log.Printf("cluster hotels failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res.ClusteringActive = true
	res.Unclustered = hotelsToDTO(result.Unclustered)
	for _, c := range result.Clusters {
		res.Clusters = append(res.Clusters, dto.ClusterResponse{
			ClusterID: c.ClusterID,
			Center:    dto.CoordinatesResponse{Lat: c.Center.Lat, Lon: c.Center.Lon},
			Bounds: dto.BoundsResponse{
				MinLat: c.Bounds.MinLat,
				MinLon: c.Bounds.MinLon,
				MaxLat: c.Bounds.MaxLat,
				MaxLon: c.Bounds.MaxLon,
			},
			MeanRating: c.MeanRating,
			PriceMin:   c.PriceRange.Min,
			PriceMax:   c.PriceRange.Max,
			Members:    hotelsToDTO(c.Members),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// ClearCache purges memoized clustering results. The map UI calls this
// after a wholesale dataset reload.
func (h *ClusterHandler) ClearCache(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if err := h.Engine.ClearCache(r.Context()); err != nil {
		log.Printf("clear cluster cache failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"status": "cleared"})
}

// parseBoundingBox returns (nil, true) when no box parameter is present,
// and (nil, false) when the box is partial or malformed.
func parseBoundingBox(minLat, minLon, maxLat, maxLon string) (*domain.BoundingBox, bool) {
	if minLat == "" && minLon == "" && maxLat == "" && maxLon == "" {
		return nil, true
	}
	if minLat == "" || minLon == "" || maxLat == "" || maxLon == "" {
		return nil, false
	}

	vals := make([]float64, 0, 4)
	for _, raw := range []string{minLat, minLon, maxLat, maxLon} {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, false
		}
		vals = append(vals, v)
	}

	box := &domain.BoundingBox{MinLat: vals[0], MinLon: vals[1], MaxLat: vals[2], MaxLon: vals[3]}
	if box.MinLat > box.MaxLat || box.MinLon > box.MaxLon {
		return nil, false
	}
	return box, true
}
