package ephemeris

import (
	"fmt"
	"math"
)

// PoissonTerm is one frequency line of the restricted-range fit: a harmonic
// index against the record's frequency scale, an x-power envelope and one
// cosine/sine amplitude pair per block.
type PoissonTerm struct {
	Freq   int
	Power  int
	CT, ST []float64 // length = block count
}

// OuterFitRecord is the fixed data block of one body in the restricted-range
// outer-planet fit: block geometry, a secular polynomial per coordinate and
// the Poisson terms. Immutable once loaded.
type OuterFitRecord struct {
	Body      Body
	Start     float64 // Julian day of the first block
	Spacing   float64 // days per block
	Blocks    int
	FreqScale float64 // radians per harmonic per unit of the local coordinate
	Secular   [3][]float64
	Poisson   [3][]PoissonTerm
}

// Validity windows of the fit, Julian days. Body-specific; everything not
// listed uses the default window.
var outerFitWindows = map[Body][2]float64{
	Pluto:   {2341972.5, 2488092.5},
	Neptune: {2396758.5, 2488092.5},
}

var outerFitDefaultWindow = [2]float64{2415020.5, 2488092.5}

// OuterFitWindow returns the valid Julian day interval of the fit for a body.
func OuterFitWindow(b Body) (from, to float64) {
	if w, ok := outerFitWindows[b]; ok {
		return w[0], w[1]
	}
	return outerFitDefaultWindow[0], outerFitDefaultWindow[1]
}

func checkOuterFitRange(b Body, jd float64) error {
	from, to := OuterFitWindow(b)
	if jd < from || jd > to {
		return &DateRangeError{Body: b, JD: jd, From: from, To: to}
	}
	return nil
}

// OuterPlanetTheory evaluates the block-fitted outer-planet theory. It is
// only valid inside a fixed date interval per body and fails with
// ErrInvalidDateRange outside it.
type OuterPlanetTheory struct {
	provider *TableProvider
}

// NewOuterPlanetTheory returns an outer-planet fit reading records from p.
func NewOuterPlanetTheory(p *TableProvider) *OuterPlanetTheory {
	return &OuterPlanetTheory{provider: p}
}

// Name identifies the theory in the orchestrator's strategy chain.
func (t *OuterPlanetTheory) Name() string { return "outer-planet-fit" }

// Heliocentric returns the heliocentric state of body at jd (TDB), mean
// ecliptic and equinox J2000. The range check runs before any table access,
// so an out-of-window epoch fails identically whether or not the body's
// record is loaded.
func (t *OuterPlanetTheory) Heliocentric(body Body, jd float64) (*RectangularState, error) {
	if body == Sun {
		return zeroState(MeanEclipticJ2000, jd), nil
	}
	if err := checkOuterFitRange(body, jd); err != nil {
		return nil, err
	}
	rec := t.provider.OuterFit(body)
	if rec == nil {
		return nil, fmt.Errorf("outer-planet fit for %s: %w", body, ErrTableMissing)
	}
	pos, vel := rec.eval(jd)
	return newState(pos, vel, MeanEclipticJ2000, jd), nil
}

// eval computes position and analytic velocity at jd, assumed in range.
func (r *OuterFitRecord) eval(jd float64) (pos, vel []float64) {
	block := int((jd - r.Start) / r.Spacing)
	if block < 0 {
		block = 0
	}
	if block >= r.Blocks {
		block = r.Blocks - 1
	}
	blockStart := r.Start + float64(block)*r.Spacing
	// local coordinate in [-1, 1]
	x := 2*(jd-blockStart)/r.Spacing - 1
	dxdt := 2 / r.Spacing

	pos = make([]float64, 3)
	vel = make([]float64, 3)
	for axis := 0; axis < 3; axis++ {
		// secular power series in x
		var p, dp float64
		for m := len(r.Secular[axis]) - 1; m >= 0; m-- {
			dp = dp*x + p
			p = p*x + r.Secular[axis][m]
		}
		// Poisson terms: (CT·cos + ST·sin)·x^m, differentiated through
		// both the envelope and the trigonometric argument.
		for i := range r.Poisson[axis] {
			pt := &r.Poisson[axis][i]
			ω := float64(pt.Freq) * r.FreqScale
			s, c := math.Sincos(ω * x)
			ct, st := pt.CT[block], pt.ST[block]
			xm := math.Pow(x, float64(pt.Power))
			osc := ct*c + st*s
			p += osc * xm
			if pt.Power > 0 {
				dp += float64(pt.Power) * math.Pow(x, float64(pt.Power-1)) * osc
			}
			dp += xm * ω * (st*c - ct*s)
		}
		pos[axis] = p
		vel[axis] = dp * dxdt
	}
	return
}

// Earth–Moon barycenter offset: a fixed low-order series of the lunar
// motion scaled by the Moon's mass fraction. Valid at any epoch; no
// interval restriction applies.

// earthMoonMassRatio is the Earth/Moon mass ratio.
const earthMoonMassRatio = 81.30059

type embTerm struct {
	mul  [4]int8 // D, M, M', F
	amp  float64 // arcsec in longitude/latitude, km in distance
	quan Quantity
}

var embSeries = []embTerm{
	{[4]int8{0, 0, 1, 0}, 22639.586, Longitude},
	{[4]int8{2, 0, -1, 0}, 4586.438, Longitude},
	{[4]int8{2, 0, 0, 0}, 2369.914, Longitude},
	{[4]int8{0, 0, 2, 0}, 769.026, Longitude},
	{[4]int8{0, 1, 0, 0}, -666.418, Longitude},
	{[4]int8{0, 0, 0, 2}, -411.596, Longitude},
	{[4]int8{0, 0, 0, 1}, 18461.24, Latitude},
	{[4]int8{0, 0, 1, 1}, 1010.17, Latitude},
	{[4]int8{0, 0, 1, -1}, 999.69, Latitude},
	{[4]int8{0, 0, 1, 0}, -20905.355, Distance},
	{[4]int8{2, 0, -1, 0}, -3699.111, Distance},
	{[4]int8{2, 0, 0, 0}, -2955.968, Distance},
}

// Barycenter returns the offset from the Earth's center to the Earth–Moon
// barycenter at jd, mean ecliptic J2000, AU and AU/day. The velocity is a
// symmetric finite difference over a small time step rather than an analytic
// derivative, an intentional approximation the full planetary theory does
// not share.
func (t *OuterPlanetTheory) Barycenter(jd float64) *RectangularState {
	r := embOffset(jd)
	const h = 0.05
	rm := embOffset(jd - h)
	rp := embOffset(jd + h)
	v := []float64{(rp[0] - rm[0]) / (2 * h), (rp[1] - rm[1]) / (2 * h), (rp[2] - rm[2]) / (2 * h)}
	return newState(r, v, MeanEclipticJ2000, jd)
}

func embOffset(jd float64) []float64 {
	T := (jd - J2000) / JulianCentury
	args := NewArguments(T)
	vecArgs := []float64{args.D, args.MSun, args.MMoon, args.F}
	var lon, lat, dist float64
	for i := range embSeries {
		t := &embSeries[i]
		phase := 0.0
		for k, m := range t.mul {
			phase += float64(m) * vecArgs[k]
		}
		switch t.quan {
		case Longitude:
			lon += t.amp * math.Sin(phase)
		case Latitude:
			lat += t.amp * math.Sin(phase)
		case Distance:
			dist += t.amp * math.Cos(phase)
		}
	}
	λ := pmod(args.LMoon + lon*s2r - args.Precession)
	β := lat * s2r
	Δ := (moonMeanDistance + dist) / AU
	sl, cl := math.Sincos(λ)
	sb, cb := math.Sincos(β)
	f := 1 / (1 + earthMoonMassRatio)
	moon := precessToJ2000Ecliptic(Δ*cb*cl, Δ*cb*sl, Δ*sb, T)
	return []float64{moon[0] * f, moon[1] * f, moon[2] * f}
}
