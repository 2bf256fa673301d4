package services

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"vedic-chart-service/internal/domain"
)

// ChartRequest carries raw birth-chart inputs as received at the system
// boundary. Date/time fields are text and validated by ParseBirthData.
type ChartRequest struct {
	Name     string
	Year     string
	Month    string
	Day      string
	Hour     string
	Minute   string
	District string
	State    string
	Country  string
}

// ComputeBirthChart runs the full pipeline: validation, location
// resolution, position computation. Every path terminates in a
// ChartResult; no error escapes to the caller.
func ComputeBirthChart(
	ctx context.Context,
	req ChartRequest,
	resolver *LocationResolver,
	engine *ChartEngine,
) domain.ChartResult {
	moment, err := ParseBirthData(req.Year, req.Month, req.Day, req.Hour, req.Minute)
	if err != nil {
		return failureFrom(err)
	}

	coord, err := resolver.Resolve(ctx, req.District, req.State, req.Country)
	if err != nil {
		return failureFrom(err)
	}

	positions, err := engine.ComputePositions(ctx, moment, coord)
	if err != nil {
		return failureFrom(err)
	}

	return domain.ChartResult{
		Success:     true,
		Positions:   positions,
		Location:    fmt.Sprintf("%s, %s, %s", strings.TrimSpace(req.District), strings.TrimSpace(req.State), strings.TrimSpace(req.Country)),
		Coordinates: fmt.Sprintf("%.4f°, %.4f°", coord.Lat, coord.Lon),
	}
}

// failureFrom converts a pipeline error to the boundary result. Error
// strings stay lowercase per Go convention; only the presentation text
// gets a capital.
func failureFrom(err error) domain.ChartResult {
	msg := err.Error()
	if msg == "" {
		return domain.Failure("calculation failed")
	}

	r := []rune(msg)
	r[0] = unicode.ToUpper(r[0])
	return domain.Failure(string(r))
}
