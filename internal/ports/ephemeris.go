package ports

import (
	"context"

	"vedic-chart-service/internal/domain"
)

// EphemerisProvider is the boundary to the astronomical computation
// backend. Implementations are expected to be deterministic for a given
// input and configured once for sidereal mode with the Lahiri ayanamsa
// and Placidus houses. Errors are treated as fatal by callers; no retry.
type EphemerisProvider interface {
	// BodyLongitude returns the sidereal ecliptic longitude in degrees
	// for one body at the given Julian Day (UTC).
	BodyLongitude(ctx context.Context, julianDay float64, body domain.CelestialBody) (float64, error)

	// AscendantLongitude returns the sidereal longitude of the ascendant
	// for the given Julian Day (UTC) and geographic position.
	AscendantLongitude(ctx context.Context, julianDay float64, coord domain.Coordinates) (float64, error)
}
