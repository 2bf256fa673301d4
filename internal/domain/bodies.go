package domain

// CelestialBody identifies a body or computation point whose ecliptic
// longitude the ephemeris can provide.
type CelestialBody string

const (
	Sun      CelestialBody = "Sun"
	Moon     CelestialBody = "Moon"
	Mercury  CelestialBody = "Mercury"
	Venus    CelestialBody = "Venus"
	Mars     CelestialBody = "Mars"
	Jupiter  CelestialBody = "Jupiter"
	Saturn   CelestialBody = "Saturn"
	MeanNode CelestialBody = "MeanNode"
)

// Display names for the lunar nodes. Rahu is the mean north node as
// reported by the ephemeris; Ketu is derived, never queried.
const (
	RahuName      = "Rahu"
	KetuName      = "Ketu"
	AscendantName = "Ascendant"
)

// Planets is the canonical output order for the seven classical planets.
// Rahu, Ketu and the Ascendant follow, in that order.
var Planets = [7]CelestialBody{Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn}

// ZodiacSigns lists the twelve signs in order. Each sign spans a
// contiguous 30° segment of the ecliptic starting at 0° Aries.
var ZodiacSigns = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}
