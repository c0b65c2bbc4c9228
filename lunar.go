package ephemeris

import (
	"fmt"
	"math"
)

// Family numbers one of the 36 term families of the lunar theory. The
// numbering follows the theory's own file layout: main problem, Earth-figure
// perturbations and their time derivatives, two planetary perturbation sets
// and their time derivatives, tidal terms and their time derivatives, Moon
// figure terms, relativistic terms and the solar-eccentricity secular terms.
type Family int

const (
	LunarMainLongitude Family = iota + 1
	LunarMainLatitude
	LunarMainDistance
	LunarFigureLongitude
	LunarFigureLatitude
	LunarFigureDistance
	LunarFigureLongitudeT
	LunarFigureLatitudeT
	LunarFigureDistanceT
	LunarPlanetary1Longitude
	LunarPlanetary1Latitude
	LunarPlanetary1Distance
	LunarPlanetary1LongitudeT
	LunarPlanetary1LatitudeT
	LunarPlanetary1DistanceT
	LunarPlanetary2Longitude
	LunarPlanetary2Latitude
	LunarPlanetary2Distance
	LunarPlanetary2LongitudeT
	LunarPlanetary2LatitudeT
	LunarPlanetary2DistanceT
	LunarTidalLongitude
	LunarTidalLatitude
	LunarTidalDistance
	LunarTidalLongitudeT
	LunarTidalLatitudeT
	LunarTidalDistanceT
	LunarMoonFigureLongitude
	LunarMoonFigureLatitude
	LunarMoonFigureDistance
	LunarRelativityLongitude
	LunarRelativityLatitude
	LunarRelativityDistance
	LunarEccentricityLongitude
	LunarEccentricityLatitude
	LunarEccentricityDistance
	lunarFamilyCount = LunarEccentricityDistance
)

// lunarFamily binds a family to the accumulator it feeds and its reduction
// rule. This declarative table replaces a 36-way dispatch; the slice order
// fixes the accumulation order, which matters for bit reproducibility.
type lunarFamily struct {
	id   Family
	rule Rule
}

// truncation thresholds: arcseconds for angles, km for distance. Zero keeps
// the full table.
var lunarFamilies = []lunarFamily{
	{LunarMainLongitude, Rule{Quantity: Longitude, EFactor: true}},
	{LunarMainLatitude, Rule{Quantity: Latitude, EFactor: true}},
	{LunarMainDistance, Rule{Quantity: Distance, UseCos: true, EFactor: true}},
	{LunarFigureLongitude, Rule{Quantity: Longitude}},
	{LunarFigureLatitude, Rule{Quantity: Latitude}},
	{LunarFigureDistance, Rule{Quantity: Distance, UseCos: true}},
	{LunarFigureLongitudeT, Rule{Quantity: Longitude, TPower: 1}},
	{LunarFigureLatitudeT, Rule{Quantity: Latitude, TPower: 1}},
	{LunarFigureDistanceT, Rule{Quantity: Distance, UseCos: true, TPower: 1}},
	{LunarPlanetary1Longitude, Rule{Quantity: Longitude}},
	{LunarPlanetary1Latitude, Rule{Quantity: Latitude}},
	{LunarPlanetary1Distance, Rule{Quantity: Distance, UseCos: true}},
	{LunarPlanetary1LongitudeT, Rule{Quantity: Longitude, TPower: 1}},
	{LunarPlanetary1LatitudeT, Rule{Quantity: Latitude, TPower: 1}},
	{LunarPlanetary1DistanceT, Rule{Quantity: Distance, UseCos: true, TPower: 1}},
	{LunarPlanetary2Longitude, Rule{Quantity: Longitude}},
	{LunarPlanetary2Latitude, Rule{Quantity: Latitude}},
	{LunarPlanetary2Distance, Rule{Quantity: Distance, UseCos: true}},
	{LunarPlanetary2LongitudeT, Rule{Quantity: Longitude, TPower: 1}},
	{LunarPlanetary2LatitudeT, Rule{Quantity: Latitude, TPower: 1}},
	{LunarPlanetary2DistanceT, Rule{Quantity: Distance, UseCos: true, TPower: 1}},
	{LunarTidalLongitude, Rule{Quantity: Longitude}},
	{LunarTidalLatitude, Rule{Quantity: Latitude}},
	{LunarTidalDistance, Rule{Quantity: Distance, UseCos: true}},
	{LunarTidalLongitudeT, Rule{Quantity: Longitude, TPower: 1}},
	{LunarTidalLatitudeT, Rule{Quantity: Latitude, TPower: 1}},
	{LunarTidalDistanceT, Rule{Quantity: Distance, UseCos: true, TPower: 1}},
	{LunarMoonFigureLongitude, Rule{Quantity: Longitude}},
	{LunarMoonFigureLatitude, Rule{Quantity: Latitude}},
	{LunarMoonFigureDistance, Rule{Quantity: Distance, UseCos: true}},
	{LunarRelativityLongitude, Rule{Quantity: Longitude}},
	{LunarRelativityLatitude, Rule{Quantity: Latitude}},
	{LunarRelativityDistance, Rule{Quantity: Distance, UseCos: true}},
	{LunarEccentricityLongitude, Rule{Quantity: Longitude, TPower: 2}},
	{LunarEccentricityLatitude, Rule{Quantity: Latitude, TPower: 2}},
	{LunarEccentricityDistance, Rule{Quantity: Distance, UseCos: true, TPower: 2}},
}

const (
	// moonMeanDistance is the mean distance of the Moon in km, the constant
	// term the distance series perturbs.
	moonMeanDistance = 385000.56
	// MoonSecularAcceleration is the tidal acceleration of the lunar
	// longitude the theory was fitted with, in arcsec/cy². Configuring a
	// different value realigns the theory with another reference ephemeris
	// over multi-millennial baselines.
	MoonSecularAcceleration = -25.858
	// secularAccelerationEpoch is the reference epoch of the secular
	// acceleration fit (1955.0).
	secularAccelerationEpoch = 2435109.0
)

// LunarTheory evaluates the semi-analytical lunar theory: 36 trigonometric
// term families reduced into ecliptic longitude, latitude and distance, then
// rotated to rectangular coordinates in the theory's inertial J2000 frame.
type LunarTheory struct {
	provider *TableProvider
	secAcc   float64 // arcsec/cy²
}

// NewLunarTheory returns a lunar theory reading its term tables from p. The
// three main-problem families must be loaded; perturbation families absent
// from the provider contribute zero (abridged tables are legal).
func NewLunarTheory(p *TableProvider, secularAcceleration float64) (*LunarTheory, error) {
	for _, f := range []Family{LunarMainLongitude, LunarMainLatitude, LunarMainDistance} {
		if p.Lunar(f) == nil {
			return nil, fmt.Errorf("lunar family %d: %w", f, ErrTableMissing)
		}
	}
	return &LunarTheory{provider: p, secAcc: secularAcceleration}, nil
}

// correctSecularAcceleration shifts the input epoch by a quadratic function
// of centuries since the fit epoch, aligning the theory with a reference
// ephemeris using a different tidal acceleration. The default acceleration
// makes this a no-op.
func (lt *LunarTheory) correctSecularAcceleration(jd float64) float64 {
	cent := (jd - secularAccelerationEpoch) / JulianCentury
	dtSec := -0.91072 * (lt.secAcc - MoonSecularAcceleration) * cent * cent
	return jd + dtSec/86400
}

// Ecliptic returns the geocentric ecliptic longitude and latitude (radians,
// mean equinox of date) and distance (AU) of the Moon at jd (TDB).
func (lt *LunarTheory) Ecliptic(jd float64) (lon, lat, dist float64) {
	jd = lt.correctSecularAcceleration(jd)
	T := (jd - J2000) / JulianCentury
	args := NewArguments(T)
	vec := args.LunarVector()

	var sums [3]float64 // arcsec, arcsec, km
	for _, f := range lunarFamilies {
		tb := lt.provider.Lunar(f.id)
		if tb == nil {
			continue
		}
		s := tb.Sum(vec, args, f.rule)
		for p := 0; p < f.rule.TPower; p++ {
			s *= T
		}
		sums[f.rule.Quantity] += s
	}

	lon = pmod(args.LMoon + sums[Longitude]*s2r)
	lat = sums[Latitude] * s2r
	dist = (moonMeanDistance + sums[Distance]) / AU
	return
}

// Geocentric returns the geocentric rectangular state of the Moon at jd in
// the lunar theory's own inertial mean J2000 frame. The velocity is a
// central finite difference over half a day on either side; the theory has
// no analytic time derivative for the rotated vector.
func (lt *LunarTheory) Geocentric(jd float64) *RectangularState {
	r := lt.rectangular(jd)
	const h = 0.5
	rm := lt.rectangular(jd - h)
	rp := lt.rectangular(jd + h)
	v := []float64{(rp[0] - rm[0]) / (2 * h), (rp[1] - rm[1]) / (2 * h), (rp[2] - rm[2]) / (2 * h)}
	return newState(r, v, LunarInertialJ2000, jd)
}

func (lt *LunarTheory) rectangular(jd float64) []float64 {
	lon, lat, dist := lt.Ecliptic(jd)
	T0 := (lt.correctSecularAcceleration(jd) - J2000) / JulianCentury
	// drop the equinox shift first; the plane rotation below does not carry it
	lon = pmod(lon - accumulatedPrecession(T0))
	sl, cl := math.Sincos(lon)
	sb, cb := math.Sincos(lat)
	x := dist * cb * cl
	y := dist * cb * sl
	z := dist * sb
	return precessToJ2000Ecliptic(x, y, z, T0)
}

// precessToJ2000Ecliptic applies the quadratic-polynomial precession rotation
// parameterized by the two small ecliptic drift angles p and q (each a
// five-term polynomial in T), mapping mean-of-date ecliptic rectangular
// coordinates into the inertial mean ecliptic J2000 frame.
func precessToJ2000Ecliptic(x, y, z, T float64) []float64 {
	p := (0.10180391e-4 + T*(0.47020439e-6+T*(-0.5417367e-9+T*(-0.2507948e-11+T*0.463486e-14)))) * T
	q := (-0.113469002e-3 + T*(0.12372674e-6+T*(0.1265417e-8+T*(-0.1371808e-11-T*0.320334e-14)))) * T
	sq := math.Sqrt(1 - p*p - q*q)
	return []float64{
		(1-2*p*p)*x + 2*p*q*y + 2*p*sq*z,
		2*p*q*x + (1-2*q*q)*y - 2*q*sq*z,
		-2*p*sq*x + 2*q*sq*y + (1-2*p*p-2*q*q)*z,
	}
}
