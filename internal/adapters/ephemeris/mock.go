package ephemeris

import (
	"context"
	"fmt"

	"vedic-chart-service/internal/domain"
)

// MockProvider is a deterministic in-memory ephemeris for tests.
type MockProvider struct {
	Longitudes map[domain.CelestialBody]float64
	Ascendant  float64

	// When set, every call fails with this error.
	Err error

	// BodyCalls records the order bodies were requested in.
	BodyCalls []domain.CelestialBody
}

func (m *MockProvider) BodyLongitude(
	_ context.Context,
	_ float64,
	body domain.CelestialBody,
) (float64, error) {
	m.BodyCalls = append(m.BodyCalls, body)

	if m.Err != nil {
		return 0, m.Err
	}

	lon, ok := m.Longitudes[body]
	if !ok {
		return 0, fmt.Errorf("mock ephemeris: no longitude configured for %s", body)
	}
	return lon, nil
}

func (m *MockProvider) AscendantLongitude(
	_ context.Context,
	_ float64,
	_ domain.Coordinates,
) (float64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return m.Ascendant, nil
}
