package ports

import (
	"context"

	"vedic-chart-service/internal/domain"
)

// Geocoder resolves one free-text place query to coordinates.
// A query that matches nothing is an error; the caller decides whether
// to try a less specific variant.
type Geocoder interface {
	Lookup(ctx context.Context, query string) (domain.Coordinates, error)
}
