package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"github.com/zongzewu23/seattle-hotel-viata/internal/adapters/cache"
	"github.com/zongzewu23/seattle-hotel-viata/internal/adapters/repositories"
	"github.com/zongzewu23/seattle-hotel-viata/internal/api"
	"github.com/zongzewu23/seattle-hotel-viata/internal/config"
	"github.com/zongzewu23/seattle-hotel-viata/internal/domain"
	"github.com/zongzewu23/seattle-hotel-viata/internal/ports"
	"github.com/zongzewu23/seattle-hotel-viata/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, Redis) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	seedPath := config.Get("SEED_PATH", "data/seeds/hotels.json")
	port := config.Get("PORT", "8080")

	cfg := clusterConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Initialize schema and seed demo data on startup for local runs.
	if err := initAndSeed(db, seedPath); err != nil {
		log.Fatal(err)
	}

	clusterCache, err := buildClusterCache()
	if err != nil {
		log.Fatal(err)
	}

	engine := services.NewEngine(clusterCache)
	repo := repositories.NewSQLHotelRepository(db)
	router := api.NewRouter(repo, engine, cfg)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// clusterConfigFromEnv applies CLUSTER_* overrides on top of the defaults.
func clusterConfigFromEnv() domain.ClusterConfig {
	def := domain.DefaultConfig()
	return domain.ClusterConfig{
		MinZoom:         config.GetFloat("CLUSTER_MIN_ZOOM", def.MinZoom),
		MaxZoom:         config.GetFloat("CLUSTER_MAX_ZOOM", def.MaxZoom),
		ClusterRadiusPx: config.GetFloat("CLUSTER_RADIUS_PX", def.ClusterRadiusPx),
		MaxClusterSize:  config.GetInt("CLUSTER_MAX_SIZE", def.MaxClusterSize),
	}
}

// buildClusterCache returns the Redis-backed cache when REDIS_ADDR is set
// (shared across instances), and the in-process FIFO cache otherwise.
func buildClusterCache() (ports.ClusterCache, error) {
	redisAddr := strings.TrimSpace(config.Get("REDIS_ADDR", ""))
	if redisAddr == "" {
		capacity := config.GetInt("CACHE_CAPACITY", cache.DefaultCapacity)
		return cache.NewMemoryClusterCache(capacity), nil
	}

	client := redis.NewClient(&redis.Options{Addr: redisAddr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("build cluster cache: ping redis %q: %w", redisAddr, err)
	}

	log.Printf("Using redis cluster cache addr=%s", redisAddr)
	return cache.NewRedisClusterCache(client), nil
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(db, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
