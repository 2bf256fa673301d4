package ports

import "vedic-chart-service/internal/domain"

// ManualCoordinateProvider supplies coordinates when every geocoding
// query has failed. Implementations may prompt a human, return a
// preconfigured default, or fail immediately in non-interactive runs.
type ManualCoordinateProvider interface {
	// ReadCoordinates returns one candidate coordinate pair.
	// The resolver validates ranges and retries up to its attempt budget.
	ReadCoordinates(attempt, maxAttempts int) (domain.Coordinates, error)
}
