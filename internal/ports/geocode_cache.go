package ports

import (
	"context"

	"vedic-chart-service/internal/domain"
)

// GeocodeCache is a persistent query → coordinates cache fronting the
// geocoding provider. Keys are exact query strings; callers normalize.
type GeocodeCache interface {
	// Get returns the cached coordinates and true on a hit.
	Get(ctx context.Context, query string) (domain.Coordinates, bool, error)

	// Put stores or replaces the coordinates for a query.
	Put(ctx context.Context, query string, coord domain.Coordinates) error
}
