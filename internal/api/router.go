package api

import (
	"net/http"

	"github.com/zongzewu23/seattle-hotel-viata/internal/api/handlers"
	"github.com/zongzewu23/seattle-hotel-viata/internal/domain"
	"github.com/zongzewu23/seattle-hotel-viata/internal/ports"
	"github.com/zongzewu23/seattle-hotel-viata/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.HotelRepository, engine *services.Engine, cfg domain.ClusterConfig) http.Handler {
	mux := http.NewServeMux()

	hotelHandler := &handlers.HotelHandler{Repo: repo}
	clusterHandler := &handlers.ClusterHandler{
		Repo:   repo,
		Engine: engine,
		Config: cfg,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/hotels", hotelHandler.List)
	mux.HandleFunc("/clusters", clusterHandler.Clusters)
	mux.HandleFunc("/cache/clear", clusterHandler.ClearCache)

	return loggingMiddleware(mux)
}
