package ephemeris

import "fmt"

const (
	// AU is one astronomical unit in kilometers.
	AU = 1.49597870700e8
	// J2000 is the Julian day of the reference epoch J2000.0 (TT).
	J2000 = 2451545.0
	// JulianCentury is the number of days per Julian century.
	JulianCentury = 36525.0
	// JulianMillennium is the number of days per Julian millennium.
	JulianMillennium = 365250.0
	// LightTimePerAU is the light travel time for one AU, in days.
	LightTimePerAU = 0.0057755183
)

// Body identifies a solar system body supported by the engine.
type Body int

const (
	Sun Body = iota
	Mercury
	Venus
	Earth
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
	Moon
	EarthMoonBarycenter
	nBodies
)

var bodyNames = [nBodies]string{
	"Sun", "Mercury", "Venus", "Earth", "Mars", "Jupiter", "Saturn",
	"Uranus", "Neptune", "Pluto", "Moon", "EarthMoonBarycenter",
}

// String implements the Stringer interface.
func (b Body) String() string {
	if b < 0 || b >= nBodies {
		return fmt.Sprintf("Body(%d)", int(b))
	}
	return bodyNames[b]
}

// equatorial radii in kilometers, used for apparent disk sizes.
var bodyRadiusKm = [nBodies]float64{
	696000, 2439.7, 6051.8, 6378.137, 3396.19, 71492, 60268,
	25559, 24764, 1188.3, 1737.4, 0,
}

// Radius returns the body's equatorial radius in kilometers.
func (b Body) Radius() float64 {
	if b < 0 || b >= nBodies {
		return 0
	}
	return bodyRadiusKm[b]
}

// HasPlanetarySeries reports whether the full planetary series theory carries
// this body. The Moon has its own theory and Pluto only exists in the
// restricted-range fit.
func (b Body) HasPlanetarySeries() bool {
	switch b {
	case Mercury, Venus, Earth, Mars, Jupiter, Saturn, Uranus, Neptune, EarthMoonBarycenter:
		return true
	}
	return false
}

// Observer is a ground observer on its mother body. Angles are geodetic and
// stored in radians, east longitudes positive, height in meters above the
// reference ellipsoid.
type Observer struct {
	Name       string
	Lat, Lon   float64
	Height     float64
	MotherBody Body
}

// NewObserver returns an observer on Earth. Latitude and longitude in degrees.
func NewObserver(name string, latDeg, lonDeg, heightM float64) Observer {
	return Observer{
		Name:       name,
		Lat:        latDeg * d2r,
		Lon:        lonDeg * d2r,
		Height:     heightM,
		MotherBody: Earth,
	}
}
