package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"vedic-chart-service/internal/domain"
)

// SQLite backed cache mapping geocode query strings to coordinates.
// Query keys are expected to be consistent (exact query text) as built
// by the resolver's cascade.
type SqliteGeocodeCache struct {
	DB *sql.DB
}

func NewSqliteGeocodeCache(db *sql.DB) *SqliteGeocodeCache {
	return &SqliteGeocodeCache{DB: db}
}

// InitSqliteSchema creates the geocode cache table if missing.
func InitSqliteSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	q := `
	CREATE TABLE IF NOT EXISTS geocode_cache (
        query TEXT PRIMARY KEY,
        lat REAL NOT NULL,
        lon REAL NOT NULL
    );
	`

	if _, err := db.Exec(q); err != nil {
		return fmt.Errorf("init schema: create geocode_cache: %w", err)
	}

	return nil
}

// Get fetches cached coordinates for the query.
func (s *SqliteGeocodeCache) Get(ctx context.Context, query string) (domain.Coordinates, bool, error) {
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
    WHERE query = ?;
	`

	var lat, lon float64
	err := s.DB.QueryRowContext(ctx, q, query).Scan(&lat, &lon)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Coordinates{}, false, nil
	}
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("get geocode cache: query geocode_cache table: %w", err)
	}

	return domain.Coordinates{Lat: lat, Lon: lon}, true, nil
}

// Put stores or replaces the coordinates for a query.
func (s *SqliteGeocodeCache) Put(ctx context.Context, query string, coord domain.Coordinates) error {
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return errors.New("insert geocode cache: empty query key")
	}

	q := `
	INSERT INTO geocode_cache (query, lat, lon)
    VALUES (?, ?, ?)
	ON CONFLICT (query) DO UPDATE
	SET lat = excluded.lat,
		lon = excluded.lon;
	`

	if _, err := s.DB.ExecContext(ctx, q, query, coord.Lat, coord.Lon); err != nil {
		return fmt.Errorf("insert geocode cache query=%q: %w", query, err)
	}

	return nil
}
