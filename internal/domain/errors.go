package domain

import "errors"

// Error kinds distinguished across the calculation pipeline. Lower layers
// wrap these with context; the orchestrator matches them with errors.Is
// and derives the boundary error text from them.
var (
	// ErrInvalidBirthData marks non-numeric or out-of-range birth fields.
	ErrInvalidBirthData = errors.New("invalid birth data")

	// ErrLocationResolution marks exhaustion of all geocoding query
	// variants and manual-entry attempts.
	ErrLocationResolution = errors.New("could not resolve location")

	// ErrEphemeris marks a failed ephemeris computation or instant
	// conversion. Fatal for the whole request; there are no partial charts.
	ErrEphemeris = errors.New("calculation failed")
)
