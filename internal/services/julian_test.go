package services

import (
	"math"
	"strings"
	"testing"

	"vedic-chart-service/internal/domain"
)

func TestComputationInstantKnownValues(t *testing.T) {
	cases := []struct {
		name   string
		moment domain.BirthMoment
		want   float64
	}{
		{
			// 1990-05-15 14:30 IST is 09:00 UTC the same day.
			name:   "mumbai reference birth",
			moment: domain.BirthMoment{Year: 1990, Month: 5, Day: 15, Hour: 14, Minute: 30},
			want:   2448026.875,
		},
		{
			// 2000-01-01 17:30 IST is 12:00 UTC, the J2000.0 epoch.
			name:   "J2000 epoch",
			moment: domain.BirthMoment{Year: 2000, Month: 1, Day: 1, Hour: 17, Minute: 30},
			want:   2451545.0,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			jd, err := ComputationInstant(c.moment)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(jd-c.want) > 1e-9 {
				t.Fatalf("jd = %v, want %v", jd, c.want)
			}
		})
	}
}

// The IST offset can move the UTC date to the previous day.
func TestComputationInstantCrossesMidnight(t *testing.T) {
	// 1990-05-15 02:00 IST is 1990-05-14 20:30 UTC.
	jd, err := ComputationInstant(domain.BirthMoment{Year: 1990, Month: 5, Day: 15, Hour: 2, Minute: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := 2448025.5 + 20.5/24
	if math.Abs(jd-want) > 1e-9 {
		t.Fatalf("jd = %v, want %v", jd, want)
	}
}

func TestComputationInstantRejectsImpossibleDates(t *testing.T) {
	cases := []domain.BirthMoment{
		{Year: 1990, Month: 4, Day: 31, Hour: 12, Minute: 0},
		{Year: 1999, Month: 2, Day: 29, Hour: 12, Minute: 0},
	}

	for _, m := range cases {
		_, err := ComputationInstant(m)
		if err == nil {
			t.Fatalf("expected error for %04d-%02d-%02d", m.Year, m.Month, m.Day)
		}
		if !strings.Contains(err.Error(), "does not exist on the calendar") {
			t.Fatalf("error = %q, want calendar message", err)
		}
	}
}

func TestComputationInstantAcceptsLeapDay(t *testing.T) {
	if _, err := ComputationInstant(domain.BirthMoment{Year: 2000, Month: 2, Day: 29, Hour: 12, Minute: 0}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
