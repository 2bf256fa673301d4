package geocode

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"vedic-chart-service/internal/domain"
)

// StdinCoordinatePrompt asks a human for latitude and longitude on the
// terminal. Used by the CLI when every geocoding query has failed.
type StdinCoordinatePrompt struct {
	In  io.Reader
	Out io.Writer

	scanner *bufio.Scanner
}

// ReadCoordinates prompts for one latitude/longitude pair. Unparseable
// input is an error; the resolver owns the retry budget and the range
// check.
func (p *StdinCoordinatePrompt) ReadCoordinates(attempt, maxAttempts int) (domain.Coordinates, error) {
	if p.scanner == nil {
		p.scanner = bufio.NewScanner(p.In)
	}

	if attempt == 1 {
		fmt.Fprintln(p.Out, "Please enter coordinates manually.")
		fmt.Fprintln(p.Out, "You can find coordinates using a mapping service.")
	} else {
		fmt.Fprintf(p.Out, "Attempt %d of %d:\n", attempt, maxAttempts)
	}

	lat, err := p.readFloat("Latitude (-90 to 90): ")
	if err != nil {
		return domain.Coordinates{}, err
	}

	lon, err := p.readFloat("Longitude (-180 to 180): ")
	if err != nil {
		return domain.Coordinates{}, err
	}

	return domain.Coordinates{Lat: lat, Lon: lon}, nil
}

func (p *StdinCoordinatePrompt) readFloat(prompt string) (float64, error) {
	fmt.Fprint(p.Out, prompt)

	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return 0, err
		}
		return 0, io.EOF
	}

	raw := strings.TrimSpace(p.scanner.Text())
	if raw == "" {
		return 0, errors.New("empty input")
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("not a decimal number: %q", raw)
	}

	return v, nil
}

// DisabledManualEntry always fails. Wired in non-interactive contexts
// (the HTTP server, automated runs) so resolution failures surface
// immediately instead of blocking on input.
type DisabledManualEntry struct{}

func (DisabledManualEntry) ReadCoordinates(int, int) (domain.Coordinates, error) {
	return domain.Coordinates{}, errors.New("manual coordinate entry is disabled")
}
