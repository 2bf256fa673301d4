package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"vedic-chart-service/internal/domain"
	"vedic-chart-service/internal/platform/obs"
)

// SQLGeocodeCache is a Postgres-backed cache mapping geocode query
// strings to coordinates.
type SQLGeocodeCache struct {
	DB *sql.DB
}

func NewSQLGeocodeCache(db *sql.DB) *SQLGeocodeCache {
	return &SQLGeocodeCache{DB: db}
}

// InitPostgresSchema creates the geocode cache table if missing.
func InitPostgresSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	q := `
	CREATE TABLE IF NOT EXISTS geocode_cache (
        query TEXT PRIMARY KEY,
        lat DOUBLE PRECISION NOT NULL,
        lon DOUBLE PRECISION NOT NULL
    );
	`

	if _, err := db.Exec(q); err != nil {
		return fmt.Errorf("init schema: create geocode_cache: %w", err)
	}

	return nil
}

// Get fetches cached coordinates for the query.
func (s *SQLGeocodeCache) Get(ctx context.Context, query string) (_ domain.Coordinates, _ bool, err error) {
	defer obs.Time(ctx, "geocode.cache.Get")(&err)

	if s.DB == nil {
		return domain.Coordinates{}, false, errors.New("geocode cache: db is nil")
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return domain.Coordinates{}, false, nil
	}

	q := `
	SELECT lat, lon
    FROM geocode_cache
    WHERE query = $1;
	`

	var lat, lon float64
	scanErr := s.DB.QueryRowContext(ctx, q, query).Scan(&lat, &lon)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return domain.Coordinates{}, false, nil
	}
	if scanErr != nil {
		err = fmt.Errorf("get geocode cache: query geocode_cache table: %w", scanErr)
		return domain.Coordinates{}, false, err
	}

	return domain.Coordinates{Lat: lat, Lon: lon}, true, nil
}

// Put stores or replaces the coordinates for a query.
func (s *SQLGeocodeCache) Put(ctx context.Context, query string, coord domain.Coordinates) error {
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return errors.New("insert geocode cache: empty query key")
	}

	q := `
	INSERT INTO geocode_cache (query, lat, lon)
    VALUES ($1, $2, $3)
	ON CONFLICT (query) DO UPDATE
	SET lat = EXCLUDED.lat,
		lon = EXCLUDED.lon;
	`

	if _, err := s.DB.ExecContext(ctx, q, query, coord.Lat, coord.Lon); err != nil {
		return fmt.Errorf("insert geocode cache query=%q: %w", query, err)
	}

	return nil
}
