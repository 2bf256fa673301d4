package domain

import "fmt"

// Immutable geographic coordinates (latitude, longitude) in decimal degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Valid reports whether the coordinates lie inside the geographic ranges
// (latitude -90..90, longitude -180..180).
func (c Coordinates) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// String formats coordinates as absolute values with hemisphere suffixes,
// e.g. "19.0760°N, 72.8777°E".
func (c Coordinates) String() string {
	latDir := "N"
	if c.Lat < 0 {
		latDir = "S"
	}
	lonDir := "E"
	if c.Lon < 0 {
		lonDir = "W"
	}
	return fmt.Sprintf("%.4f°%s, %.4f°%s", abs(c.Lat), latDir, abs(c.Lon), lonDir)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
