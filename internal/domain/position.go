package domain

import (
	"fmt"
	"math"
)

// NormalizeLongitude maps any angle onto [0, 360).
func NormalizeLongitude(deg float64) float64 {
	l := math.Mod(deg, 360)
	if l < 0 {
		l += 360
	}
	return l
}

// PositionRecord is the zodiac-relative view of an ecliptic longitude.
// SignIndex is 0..11, DegreeInSign 0..29, MinuteInSign 0..59.
type PositionRecord struct {
	BodyName     string
	Longitude    float64
	SignIndex    int
	SignName     string
	DegreeInSign int
	MinuteInSign int
}

// NewPositionRecord derives the sign placement for a normalized longitude.
// The longitude is normalized defensively so the sign index never leaves
// the table.
func NewPositionRecord(bodyName string, longitude float64) PositionRecord {
	l := NormalizeLongitude(longitude)

	signIndex := int(l / 30)
	if signIndex > 11 {
		// Guard against l being rounded up to exactly 360 by floating point.
		signIndex = 11
	}

	inSign := math.Mod(l, 30)
	degree := int(inSign)
	minute := int((inSign - float64(degree)) * 60)

	return PositionRecord{
		BodyName:     bodyName,
		Longitude:    l,
		SignIndex:    signIndex,
		SignName:     ZodiacSigns[signIndex],
		DegreeInSign: degree,
		MinuteInSign: minute,
	}
}

// String formats the record as a fixed-width line, e.g.
// "Sun      : 054° 23' → 24° 23' Taurus".
func (p PositionRecord) String() string {
	return fmt.Sprintf(
		"%-9s: %03d° %02d' → %02d° %02d' %s",
		p.BodyName,
		int(p.Longitude),
		p.MinuteInSign,
		p.DegreeInSign,
		p.MinuteInSign,
		p.SignName,
	)
}

// FormatPosition renders a body's position in the canonical line layout.
func FormatPosition(bodyName string, longitude float64) string {
	return NewPositionRecord(bodyName, longitude).String()
}
