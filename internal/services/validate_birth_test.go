package services

import (
	"errors"
	"strings"
	"testing"

	"vedic-chart-service/internal/domain"
)

func TestParseBirthDataValid(t *testing.T) {
	m, err := ParseBirthData("1990", "5", "15", "14", "30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := domain.BirthMoment{Year: 1990, Month: 5, Day: 15, Hour: 14, Minute: 30}
	if m != want {
		t.Fatalf("moment = %+v, want %+v", m, want)
	}
}

func TestParseBirthDataNonNumeric(t *testing.T) {
	_, err := ParseBirthData("abc", "5", "15", "14", "30")
	if err == nil {
		t.Fatal("expected error for non-numeric year")
	}
	if !errors.Is(err, domain.ErrInvalidBirthData) {
		t.Fatalf("error kind = %v, want ErrInvalidBirthData", err)
	}
	if !strings.Contains(err.Error(), "all birth data fields must be valid numbers") {
		t.Fatalf("error = %q, want generic numeric message", err)
	}
}

func TestParseBirthDataRangeViolations(t *testing.T) {
	cases := []struct {
		name   string
		fields [5]string
		want   string
	}{
		{"year too low", [5]string{"1899", "5", "15", "14", "30"}, "year must be between 1900 and 2100, got 1899"},
		{"year too high", [5]string{"2101", "5", "15", "14", "30"}, "year must be between 1900 and 2100, got 2101"},
		{"month zero", [5]string{"1990", "0", "15", "14", "30"}, "month must be between 1 and 12, got 0"},
		{"month thirteen", [5]string{"1990", "13", "15", "14", "30"}, "month must be between 1 and 12, got 13"},
		{"day zero", [5]string{"1990", "5", "0", "14", "30"}, "day must be between 1 and 31, got 0"},
		{"day thirty-two", [5]string{"1990", "5", "32", "14", "30"}, "day must be between 1 and 31, got 32"},
		{"hour twenty-four", [5]string{"1990", "5", "15", "24", "30"}, "hour must be between 0 and 23, got 24"},
		{"minute sixty", [5]string{"1990", "5", "15", "14", "60"}, "minute must be between 0 and 59, got 60"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := c.fields
			_, err := ParseBirthData(f[0], f[1], f[2], f[3], f[4])
			if err == nil {
				t.Fatalf("expected error for fields %v", f)
			}
			if !errors.Is(err, domain.ErrInvalidBirthData) {
				t.Fatalf("error kind = %v, want ErrInvalidBirthData", err)
			}
			if !strings.Contains(err.Error(), c.want) {
				t.Fatalf("error = %q, want substring %q", err, c.want)
			}
		})
	}
}

// The year check is reported first when several fields are out of range.
func TestParseBirthDataFieldOrder(t *testing.T) {
	_, err := ParseBirthData("1899", "13", "32", "24", "60")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "year must be between") {
		t.Fatalf("error = %q, want the year violation first", err)
	}
}

// Calendar-impossible but in-range dates pass validation; rejection
// happens at instant conversion.
func TestParseBirthDataKeepsImpossibleCalendarDates(t *testing.T) {
	if _, err := ParseBirthData("1990", "4", "31", "14", "30"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
