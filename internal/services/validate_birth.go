package services

import (
	"fmt"
	"strconv"

	"vedic-chart-service/internal/domain"
)

// Accepted field ranges. Calendar plausibility (day 31 in a 30-day month)
// is deliberately not checked here; that surfaces at instant conversion.
const (
	minYear = 1900
	maxYear = 2100
)

// ParseBirthData validates raw birth-data fields and returns an immutable
// BirthMoment. A single non-numeric field fails with a generic message
// covering all fields; range checks run in fixed field order and report
// the first violation.
func ParseBirthData(year, month, day, hour, minute string) (domain.BirthMoment, error) {
	fields := []string{year, month, day, hour, minute}
	parsed := make([]int, len(fields))

	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return domain.BirthMoment{}, fmt.Errorf(
				"%w: all birth data fields must be valid numbers",
				domain.ErrInvalidBirthData,
			)
		}
		parsed[i] = n
	}

	m := domain.BirthMoment{
		Year:   parsed[0],
		Month:  parsed[1],
		Day:    parsed[2],
		Hour:   parsed[3],
		Minute: parsed[4],
	}

	checks := []struct {
		name     string
		value    int
		min, max int
	}{
		{"year", m.Year, minYear, maxYear},
		{"month", m.Month, 1, 12},
		{"day", m.Day, 1, 31},
		{"hour", m.Hour, 0, 23},
		{"minute", m.Minute, 0, 59},
	}

	for _, c := range checks {
		if c.value < c.min || c.value > c.max {
			return domain.BirthMoment{}, fmt.Errorf(
				"%w: %s must be between %d and %d, got %d",
				domain.ErrInvalidBirthData, c.name, c.min, c.max, c.value,
			)
		}
	}

	return m, nil
}
