package services

import (
	"fmt"
	"time"

	"vedic-chart-service/internal/domain"
)

// Birth times are interpreted as Indian Standard Time. Timezone
// resolution from coordinates is out of scope for now.
var istZone = time.FixedZone("IST", 5*3600+30*60)

// ComputationInstant converts a local birth moment to the Julian Day
// (UTC) the ephemeris expects. Calendar-impossible dates (e.g. April 31)
// are rejected here rather than during field validation.
func ComputationInstant(m domain.BirthMoment) (float64, error) {
	local := time.Date(m.Year, time.Month(m.Month), m.Day, m.Hour, m.Minute, 0, 0, istZone)

	// time.Date normalizes overflowing fields; a changed date means the
	// requested calendar day never existed.
	if local.Year() != m.Year || local.Month() != time.Month(m.Month) || local.Day() != m.Day {
		return 0, fmt.Errorf(
			"birth date %04d-%02d-%02d does not exist on the calendar",
			m.Year, m.Month, m.Day,
		)
	}

	utc := local.UTC()
	ut := float64(utc.Hour()) + float64(utc.Minute())/60

	return julianDay(utc.Year(), int(utc.Month()), utc.Day(), ut), nil
}

// julianDay computes the Julian Day for a Gregorian calendar date and a
// decimal hour of day (UT). Standard integer-arithmetic form of the
// Fliegel–Van Flandern algorithm.
func julianDay(year, month, day int, ut float64) float64 {
	a := (14 - month) / 12
	y := year + 4800 - a
	mm := month + 12*a - 3

	jdn := day + (153*mm+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045

	return float64(jdn) - 0.5 + ut/24
}
