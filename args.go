package ephemeris

import "math"

// TPowers holds the powers T⁰..T⁵ of the time distance from the reference
// epoch, precomputed once per evaluation call.
type TPowers [6]float64

// NewTPowers returns the powers of t (Julian centuries or millennia from
// J2000, theory-dependent).
func NewTPowers(t float64) TPowers {
	p := TPowers{1, t}
	for i := 2; i < 6; i++ {
		p[i] = p[i-1] * t
	}
	return p
}

// polyval evaluates Σ c[i]·T^i for up to five coefficients.
func polyval(p TPowers, c ...float64) float64 {
	s := 0.0
	for i, ci := range c {
		s += ci * p[i]
	}
	return s
}

// pmod reduces x into [0, 2π).
func pmod(x float64) float64 {
	x = math.Mod(x, 2*math.Pi)
	if x < 0 {
		x += 2 * math.Pi
	}
	return x
}

// Arguments are the fundamental astronomical arguments of the trigonometric
// theories at a given epoch: the Delaunay-style lunar set, the additive
// perturbation angles, the eccentricity envelope of the Earth's orbit, the
// eight planetary mean longitudes and the accumulated general precession.
// All angles in radians, reduced into [0, 2π).
type Arguments struct {
	T TPowers // powers of Julian centuries from J2000

	LMoon float64 // W: mean longitude of the Moon, equinox of date
	D     float64 // mean elongation of the Moon from the Sun
	MSun  float64 // mean anomaly of the Sun
	MMoon float64 // mean anomaly of the Moon
	F     float64 // argument of latitude of the Moon

	A1, A2, A3 float64 // additive perturbation angles (Venus, Jupiter, flattening)

	E, E2 float64 // eccentricity correction factor of the solar anomaly and its square

	Planet     [8]float64 // mean longitudes, Mercury..Neptune
	PlanetRate [8]float64 // linear rates, rad/century

	Precession float64 // accumulated general precession in longitude
}

// Mean longitudes of the planets at J2000 and their rates, radians and
// radians per Julian century. The linear term is all the planetary
// perturbation series need.
var planetLon0 = [8]float64{
	4.4026088424029615, 3.1761466969075944, 1.7534703418688963, 6.2034809133999449,
	0.59954649738867349, 0.87401675651848076, 5.4812938716049908, 5.3118862867834666,
}

var planetLonRate = [8]float64{
	2608.7903141574106, 1021.3285546211089, 628.30758496215537, 334.06124314922965,
	52.969096509472053, 21.329909543800007, 7.4781598567143535, 3.8133035637584562,
}

// accumulatedPrecession returns the general precession in longitude
// accumulated since J2000, radians, for T Julian centuries. This is the
// equinox shift that separates of-date longitudes from inertial J2000 ones.
func accumulatedPrecession(T float64) float64 {
	return (5029.0966 + (1.11113-0.000006*T)*T) * T * s2r
}

// precessionRateDaily is the time derivative of accumulatedPrecession in
// radians per day.
func precessionRateDaily(T float64) float64 {
	return (5029.0966 + (2*1.11113-3*0.000006*T)*T) * s2r / JulianCentury
}

// NewArguments computes all fundamental arguments for T Julian centuries
// from J2000. Pure function of T; no error conditions.
func NewArguments(T float64) *Arguments {
	p := NewTPowers(T)
	a := &Arguments{T: p}

	// Lunar arguments, equinox of date (degrees converted below).
	a.LMoon = pmod(d2r * polyval(p, 218.3164477, 481267.88123421, -0.0015786, 1/538841.0, -1/65194000.0))
	a.D = pmod(d2r * polyval(p, 297.8501921, 445267.1114034, -0.0018819, 1/545868.0, -1/113065000.0))
	a.MSun = pmod(d2r * polyval(p, 357.5291092, 35999.0502909, -0.0001536, 1/24490000.0))
	a.MMoon = pmod(d2r * polyval(p, 134.9633964, 477198.8675055, 0.0087414, 1/69699.0, -1/14712000.0))
	a.F = pmod(d2r * polyval(p, 93.2720950, 483202.0175233, -0.0036539, -1/3526000.0, 1/863310000.0))

	a.A1 = pmod(d2r * polyval(p, 119.75, 131.849))
	a.A2 = pmod(d2r * polyval(p, 53.09, 479264.290))
	a.A3 = pmod(d2r * polyval(p, 313.45, 481266.484))

	a.E = 1 - 0.002516*T - 0.0000074*T*T
	a.E2 = a.E * a.E

	for i := range a.Planet {
		a.Planet[i] = pmod(planetLon0[i] + planetLonRate[i]*T)
		a.PlanetRate[i] = planetLonRate[i]
	}

	a.Precession = accumulatedPrecession(T)
	return a
}

// LunarVector lays out the argument targets of the lunar multiplier vectors:
// the four Delaunay-style arguments for the main-problem families, extended
// by the additive angles and the mean longitude for the planetary
// perturbation families.
func (a *Arguments) LunarVector() []float64 {
	return []float64{a.D, a.MSun, a.MMoon, a.F, a.A1, a.A2, a.A3, a.LMoon}
}

// PlanetaryVector lays out the argument targets of the 11-length multiplier
// vectors of the planetary perturbation series: the eight planetary mean
// longitudes followed by D, M' and F.
func (a *Arguments) PlanetaryVector() []float64 {
	return []float64{
		a.Planet[0], a.Planet[1], a.Planet[2], a.Planet[3],
		a.Planet[4], a.Planet[5], a.Planet[6], a.Planet[7],
		a.D, a.MMoon, a.F,
	}
}
