package ephemeris

import (
	"fmt"
	"math"
)

// vsopTerm is one harmonic of the planetary theory: amplitude a, phase b and
// frequency c, evaluated as a·cos(b + c·τ) with τ in Julian millennia.
type vsopTerm struct {
	a, b, c float64
}

// vsopSeries partitions one coordinate's terms by power of τ.
type vsopSeries [6][]vsopTerm

// PlanetTable holds the full series of one body, partitioned by coordinate
// axis and time power. Spherical tables carry (L, B, R); Cartesian tables
// carry (X, Y, Z) directly. The orchestrator tracks which through the
// Spherical flag. OfDate marks spherical tables whose angles are referred to
// the mean equinox of date; those are rotated into the J2000 ecliptic after
// evaluation.
type PlanetTable struct {
	Body      Body
	Spherical bool
	OfDate    bool
	Series    [3]vsopSeries
}

// evalAxis sums one axis' series and its analytic time derivative. The
// derivative runs through both the polynomial envelope and the trigonometric
// argument: d/dτ [a·cos(b+cτ)·τ^p] = p·τ^(p-1)·a·cos(b+cτ) − τ^p·a·c·sin(b+cτ).
func (pt *PlanetTable) evalAxis(axis int, τp TPowers, threshold float64) (pos, vel float64) {
	for p, terms := range pt.Series[axis] {
		for i := range terms {
			t := &terms[i]
			if threshold > 0 && math.Abs(t.a) < threshold {
				continue
			}
			s, c := math.Sincos(t.b + t.c*τp[1])
			pos += t.a * c * τp[p]
			if p > 0 {
				vel += float64(p) * τp[p-1] * t.a * c
			}
			vel -= τp[p] * t.a * t.c * s
		}
	}
	vel /= JulianMillennium // per millennium to per day
	return
}

// PlanetaryTheory evaluates the full planetary series theory: heliocentric
// rectangular position and velocity, mean ecliptic and equinox J2000.
type PlanetaryTheory struct {
	provider  *TableProvider
	threshold float64 // amplitude floor applied to every series; 0 = full theory
}

// NewPlanetaryTheory returns a planetary theory reading per-body tables from
// p. A zero truncation threshold evaluates the full theory.
func NewPlanetaryTheory(p *TableProvider, threshold float64) *PlanetaryTheory {
	return &PlanetaryTheory{provider: p, threshold: threshold}
}

// Name identifies the theory in the orchestrator's strategy chain.
func (t *PlanetaryTheory) Name() string { return "planetary-series" }

// Heliocentric returns the heliocentric state of body at jd (TDB), mean
// ecliptic and equinox J2000. The Sun returns the zero vector. Bodies the
// theory does not carry fail with ErrInvalidTarget.
func (t *PlanetaryTheory) Heliocentric(body Body, jd float64) (*RectangularState, error) {
	if body == Sun {
		return zeroState(MeanEclipticJ2000, jd), nil
	}
	if !body.HasPlanetarySeries() {
		return nil, fmt.Errorf("planetary series for %s: %w", body, ErrInvalidTarget)
	}
	tb := t.provider.Planetary(body)
	if tb == nil {
		return nil, fmt.Errorf("planetary series for %s: %w", body, ErrTableMissing)
	}

	τ := (jd - J2000) / JulianMillennium
	τp := NewTPowers(τ)

	var pos, vel [3]float64
	for axis := 0; axis < 3; axis++ {
		pos[axis], vel[axis] = tb.evalAxis(axis, τp, t.threshold)
	}

	if !tb.Spherical {
		return newState(pos[:], vel[:], MeanEclipticJ2000, jd), nil
	}

	// Spherical tables encode an angular first axis; normalize the
	// longitude into [0, 2π) and map (L, B, R) to rectangular.
	l, b, r := pmod(pos[0]), pos[1], pos[2]
	dl, db, dr := vel[0], vel[1], vel[2]
	var T float64
	if tb.OfDate {
		// of-date longitudes carry the accumulated equinox shift; remove it
		// before the plane rotation, which only handles the ecliptic tilt
		T = τ * 10
		l = pmod(l - accumulatedPrecession(T))
		dl -= precessionRateDaily(T)
	}
	sl, cl := math.Sincos(l)
	sb, cb := math.Sincos(b)

	x := r * cb * cl
	y := r * cb * sl
	z := r * sb
	vx := dr*cb*cl - r*db*sb*cl - r*dl*cb*sl
	vy := dr*cb*sl - r*db*sb*sl + r*dl*cb*cl
	vz := dr*sb + r*db*cb

	rp := []float64{x, y, z}
	rv := []float64{vx, vy, vz}
	if tb.OfDate {
		// The rotation's own time derivative is far below the series
		// truncation and is ignored for the velocity.
		rp = precessToJ2000Ecliptic(rp[0], rp[1], rp[2], T)
		rv = precessToJ2000Ecliptic(rv[0], rv[1], rv[2], T)
	}
	return newState(rp, rv, MeanEclipticJ2000, jd), nil
}
