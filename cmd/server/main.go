package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"vedic-chart-service/internal/adapters/cache"
	"vedic-chart-service/internal/adapters/ephemeris"
	"vedic-chart-service/internal/adapters/geocode"
	"vedic-chart-service/internal/api"
	"vedic-chart-service/internal/platform/db"
	"vedic-chart-service/internal/ports"
	"vedic-chart-service/internal/services"
)

const geocodeCacheTTL = 30 * 24 * time.Hour

// main is the application composition root.
// It wires concrete adapters (Nominatim, ephemeris service, geocode
// cache backend) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := getEnv("PORT", "8080")

	ephemerisURL := os.Getenv("EPHEMERIS_URL")
	if strings.TrimSpace(ephemerisURL) == "" {
		log.Fatal("EPHEMERIS_URL is required")
	}

	geocodeCache, closeCache, err := openGeocodeCache()
	if err != nil {
		log.Fatal(err)
	}
	defer closeCache()

	geocoder := geocode.NewNominatimGeocoder(geocode.NominatimConfig{
		BaseURL:   os.Getenv("NOMINATIM_URL"),
		UserAgent: getEnv("GEOCODE_USER_AGENT", "VedicChartService/1.0 (server)"),
		Delay:     1 * time.Second,
	})

	// The server is non-interactive: a failed cascade surfaces
	// immediately instead of blocking on console input.
	resolver := services.NewLocationResolver(geocoder, geocodeCache, geocode.DisabledManualEntry{})

	provider, err := ephemeris.NewHTTPProvider(ephemerisURL, nil)
	if err != nil {
		log.Fatal(err)
	}

	engine := services.NewChartEngine(provider)
	router := api.NewRouter(resolver, engine)

	// Write timeout covers cold-cache resolution: up to three throttled
	// Nominatim calls plus the ephemeris round trips.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openGeocodeCache selects the cache backend from the environment:
// REDIS_ADDR wins over DATABASE_URL, which wins over the SQLite default.
func openGeocodeCache() (ports.GeocodeCache, func(), error) {
	if addr := os.Getenv("REDIS_ADDR"); strings.TrimSpace(addr) != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		if err := client.Ping(context.Background()).Err(); err != nil {
			return nil, nil, fmt.Errorf("open geocode cache: verify redis connection: %w", err)
		}

		log.Printf("geocode cache backend=redis addr=%s", addr)
		return cache.NewRedisGeocodeCache(client, geocodeCacheTTL), func() { _ = client.Close() }, nil
	}

	if databaseURL := os.Getenv("DATABASE_URL"); strings.TrimSpace(databaseURL) != "" {
		pg, err := db.Open(databaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("open geocode cache: %w", err)
		}
		if err := cache.InitPostgresSchema(pg); err != nil {
			return nil, nil, fmt.Errorf("open geocode cache: %w", err)
		}

		log.Println("geocode cache backend=postgres")
		return cache.NewSQLGeocodeCache(pg), func() { _ = pg.Close() }, nil
	}

	dbPath := getEnv("DB_PATH", "data/geocode.db")
	sqlite, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open geocode cache: open sqlite database %q: %w", dbPath, err)
	}
	if err := sqlite.Ping(); err != nil {
		return nil, nil, fmt.Errorf("open geocode cache: verify sqlite connection to %q: %w", dbPath, err)
	}
	if err := cache.InitSqliteSchema(sqlite); err != nil {
		return nil, nil, fmt.Errorf("open geocode cache: %w", err)
	}

	log.Printf("geocode cache backend=sqlite path=%s", dbPath)
	return cache.NewSqliteGeocodeCache(sqlite), func() { _ = sqlite.Close() }, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
