package services

import (
	"context"
	"fmt"

	"vedic-chart-service/internal/domain"
	"vedic-chart-service/internal/platform/obs"
	"vedic-chart-service/internal/ports"
)

// ChartEngine computes the ten chart positions for a birth moment and
// place: the seven classical planets, Rahu, the derived Ketu, and the
// ascendant, formatted in canonical order. It holds no per-request state.
type ChartEngine struct {
	eph ports.EphemerisProvider
}

func NewChartEngine(eph ports.EphemerisProvider) *ChartEngine {
	return &ChartEngine{eph: eph}
}

// ComputePositions returns exactly ten formatted position strings. Any
// ephemeris failure aborts the whole computation; there is no partial
// chart.
func (e *ChartEngine) ComputePositions(
	ctx context.Context,
	m domain.BirthMoment,
	coord domain.Coordinates,
) (_ []string, err error) {
	defer obs.Time(ctx, "engine.ComputePositions")(&err)

	jd, err := ComputationInstant(m)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEphemeris, err)
	}

	positions := make([]string, 0, 10)

	for _, body := range domain.Planets {
		lon, err := e.eph.BodyLongitude(ctx, jd, body)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrEphemeris, body, err)
		}
		positions = append(positions, domain.FormatPosition(string(body), domain.NormalizeLongitude(lon)))
	}

	// Rahu is queried once; Ketu is always diametrically opposite and is
	// derived, never requested from the ephemeris.
	rahu, err := e.eph.BodyLongitude(ctx, jd, domain.MeanNode)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrEphemeris, domain.RahuName, err)
	}
	rahu = domain.NormalizeLongitude(rahu)
	ketu := domain.NormalizeLongitude(rahu + 180)

	positions = append(positions, domain.FormatPosition(domain.RahuName, rahu))
	positions = append(positions, domain.FormatPosition(domain.KetuName, ketu))

	asc, err := e.eph.AscendantLongitude(ctx, jd, coord)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrEphemeris, domain.AscendantName, err)
	}
	positions = append(positions, domain.FormatPosition(domain.AscendantName, domain.NormalizeLongitude(asc)))

	return positions, nil
}
