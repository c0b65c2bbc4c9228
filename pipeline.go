package ephemeris

import (
	"errors"
	"fmt"
	"math"

	kitlog "github.com/go-kit/kit/log"
	"github.com/soniakeys/meeus/v3/sidereal"
)

// speedOfLight in AU per day.
const speedOfLight = 173.144632674240

// CoordinateType selects how far down the correction chain a position goes.
type CoordinateType int

const (
	// Geometric is the instantaneous true position.
	Geometric CoordinateType = iota
	// Astrometric is light-time corrected only.
	Astrometric
	// Apparent adds gravitational deflection and annual aberration.
	Apparent
)

// Equinox selects the equinox the output is referred to.
type Equinox int

const (
	EquinoxJ2000 Equinox = iota
	EquinoxOfDate
)

// Request describes one ephemeris computation.
type Request struct {
	JD       float64 // epoch, Julian day, dynamical time scale
	Target   Body
	Observer Observer
	Type     CoordinateType
	// Frame is the output frame: EquatorialFK5 (default), EquatorialFK4 or
	// ICRF. Theory-native frames are not valid outputs and fall back to FK5.
	Frame       Frame
	Equinox     Equinox
	Reduction   ReductionMethod
	Topocentric bool
	PolarMotion bool
	Horizontal  bool
	Refraction  bool
	// SatelliteOffset, when non-nil, is a 3-vector added to the target's
	// position just before the spherical conversion, expressed in the
	// output frame and equinox. It replaces the out-of-band offset store
	// the satellite-relative corrections used to rely on: the offset is
	// now threaded explicitly through every pipeline call.
	SatelliteOffset []float64
}

// Result is the computed apparent ephemeris. Angles in radians, distances in
// AU, light time in days.
type Result struct {
	RightAscension float64
	Declination    float64
	Distance       float64

	HeliocentricEclipticLongitude float64
	HeliocentricEclipticLatitude  float64
	DistanceFromSun               float64
	LightTime                     float64

	Elongation    float64
	PhaseAngle    float64
	Illumination  float64
	AngularRadius float64
	Magnitude     float64

	Azimuth   float64 // set when Horizontal was requested
	Elevation float64

	Frame   Frame
	Equinox Equinox
}

// Theory produces heliocentric states for the pipeline. The pipeline tries
// its theories in order and falls back on range or table failures; this
// replaces the exception-driven retry of older designs with an explicit
// result-or-error chain.
type Theory interface {
	Name() string
	Heliocentric(b Body, jd float64) (*RectangularState, error)
}

// Pipeline composes the three series theories with the correction chain.
// It is safe for concurrent use: all mutable state lives in the call.
type Pipeline struct {
	lunar      *LunarTheory
	strategies []Theory
	logger     kitlog.Logger
	maxIter    int
	polarX     float64 // radians
	polarY     float64
}

// Option tunes a Pipeline at construction.
type Option func(*Pipeline)

// WithLogger attaches a logger; the default discards everything.
func WithLogger(l kitlog.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

// WithLightTimeCap overrides the light-time iteration cap.
func WithLightTimeCap(n int) Option {
	return func(p *Pipeline) { p.maxIter = n }
}

// WithTheories overrides the planetary strategy order.
func WithTheories(ts ...Theory) Option {
	return func(p *Pipeline) { p.strategies = ts }
}

// WithPolarOffsets sets the pole offsets used by the polar-motion rotation,
// arcseconds.
func WithPolarOffsets(xp, yp float64) Option {
	return func(p *Pipeline) {
		p.polarX = xp * s2r
		p.polarY = yp * s2r
	}
}

// New builds a pipeline over a table provider. The provider must carry at
// least the lunar main-problem families.
func New(provider *TableProvider, opts ...Option) (*Pipeline, error) {
	c := LoadConfig()
	lunar, err := NewLunarTheory(provider, c.MoonSecularAcceleration)
	if err != nil {
		return nil, err
	}
	planetary := NewPlanetaryTheory(provider, c.Truncation)
	outer := NewOuterPlanetTheory(provider)
	strategies := []Theory{planetary, outer}
	if c.PreferOuterFit {
		strategies = []Theory{outer, planetary}
	}
	p := &Pipeline{
		lunar:      lunar,
		strategies: strategies,
		logger:     kitlog.NewNopLogger(),
		maxIter:    c.LightTimeIterations,
		polarX:     c.PolarX * s2r,
		polarY:     c.PolarY * s2r,
	}
	for _, o := range opts {
		o(p)
	}
	return p, nil
}

// helio walks the strategy chain for a heliocentric state.
func (p *Pipeline) helio(b Body, jd float64) (*RectangularState, error) {
	var lastErr error
	for _, s := range p.strategies {
		st, err := s.Heliocentric(b, jd)
		if err == nil {
			return st, nil
		}
		lastErr = err
		if errors.Is(err, ErrInvalidDateRange) || errors.Is(err, ErrTableMissing) || errors.Is(err, ErrInvalidTarget) {
			p.logger.Log("stage", "heliocentric", "theory", s.Name(), "body", b.String(), "fallback", err.Error())
			continue
		}
		return nil, err
	}
	return nil, lastErr
}

// geocentric returns the observer-body-centered state of target in the FK5
// equatorial J2000 frame, together with the heliocentric state of the Earth
// at the observation epoch (also FK5).
func (p *Pipeline) geocentric(target Body, jdEmit float64, earthFK5 *RectangularState) (*RectangularState, error) {
	switch target {
	case Moon:
		// the lunar series gives moon(t-τ) − earth(t-τ); antedating that vector
		// whole would fold the observer's velocity in twice once aberration is
		// applied, so rebuild moon(t-τ) − earth(t) from the heliocentric parts
		moon := toFK5(p.lunar.Geocentric(jdEmit))
		if jdEmit == earthFK5.Epoch {
			return moon, nil
		}
		emit, err := p.helio(Earth, jdEmit)
		if err != nil {
			return nil, err
		}
		emitFK5 := toFK5(emit)
		st := newState(
			[]float64{moon.R[0] + emitFK5.R[0] - earthFK5.R[0], moon.R[1] + emitFK5.R[1] - earthFK5.R[1], moon.R[2] + emitFK5.R[2] - earthFK5.R[2]},
			[]float64{moon.V[0] + emitFK5.V[0] - earthFK5.V[0], moon.V[1] + emitFK5.V[1] - earthFK5.V[1], moon.V[2] + emitFK5.V[2] - earthFK5.V[2]},
			EquatorialFK5, jdEmit)
		return st, nil
	case Sun:
		st := newState(
			[]float64{-earthFK5.R[0], -earthFK5.R[1], -earthFK5.R[2]},
			[]float64{-earthFK5.V[0], -earthFK5.V[1], -earthFK5.V[2]},
			EquatorialFK5, jdEmit)
		return st, nil
	}
	tgt, err := p.helio(target, jdEmit)
	if err != nil {
		return nil, err
	}
	tgtFK5 := toFK5(tgt)
	geo := newState(
		[]float64{tgtFK5.R[0] - earthFK5.R[0], tgtFK5.R[1] - earthFK5.R[1], tgtFK5.R[2] - earthFK5.R[2]},
		[]float64{tgtFK5.V[0] - earthFK5.V[0], tgtFK5.V[1] - earthFK5.V[1], tgtFK5.V[2] - earthFK5.V[2]},
		EquatorialFK5, jdEmit)
	return geo, nil
}

// Ephemeris runs the full pipeline for one request.
func (p *Pipeline) Ephemeris(req Request) (*Result, error) {
	obs := req.Observer
	if obs.MotherBody == Sun {
		// zero-value observers are Earth-based
		obs.MotherBody = Earth
	}
	if req.Target == obs.MotherBody {
		return nil, fmt.Errorf("%s as seen from %s: %w", req.Target, obs.MotherBody, ErrInvalidTarget)
	}
	if obs.MotherBody != Earth {
		return nil, fmt.Errorf("observers on %s are not supported: %w", obs.MotherBody, ErrInvalidTarget)
	}

	earth, err := p.helio(Earth, req.JD)
	if err != nil {
		return nil, err
	}
	earthFK5 := toFK5(earth)
	gast := sidereal.Apparent(req.JD).Rad()

	// observer's geocentric position, rotated from the true equator of date
	// back to FK5 J2000 for the light-time distance
	var obsJ2000 []float64
	if req.Topocentric {
		o := observerGeocentric(obs, gast)
		o = MTxV33(nutationMatrix(req.JD), o)
		obsJ2000 = MTxV33(precessionMatrix(req.JD, req.Reduction), o)
	}

	// geometric position, then the light-time convergence loop
	st, err := p.geocentric(req.Target, req.JD, earthFK5)
	if err != nil {
		return nil, err
	}
	lightTime := 0.0
	if req.Type != Geometric {
		converged := false
		for i := 0; i < p.maxIter; i++ {
			st, err = p.geocentric(req.Target, req.JD-lightTime, earthFK5)
			if err != nil {
				return nil, err
			}
			d := st.R
			if obsJ2000 != nil {
				d = []float64{st.R[0] - obsJ2000[0], st.R[1] - obsJ2000[1], st.R[2] - obsJ2000[2]}
			}
			next := Norm(d) * LightTimePerAU
			if math.Abs(next-lightTime)*86400 < 1e-6 {
				lightTime = next
				converged = true
				p.logger.Log("stage", "light-time", "body", req.Target.String(), "iterations", i+1, "days", lightTime)
				break
			}
			lightTime = next
		}
		if !converged {
			return nil, fmt.Errorf("%s after %d iterations: %w", req.Target, p.maxIter, ErrConvergence)
		}
		st.LightTimeCorrected = true
	}

	// heliocentric state of the target at emission, FK5: needed by the
	// deflection geometry and the physical ephemeris
	helioFK5 := []float64{earthFK5.R[0] + st.R[0], earthFK5.R[1] + st.R[1], earthFK5.R[2] + st.R[2]}
	if req.Target == Sun {
		helioFK5 = []float64{0, 0, 0}
	}

	if req.Type == Apparent {
		if req.Target != Sun {
			st.R = deflect(st.R, helioFK5, earthFK5.R)
		}
		st.R = aberrate(st.R, earthFK5.V)
	}

	// frame conversion; theory-native tags are not valid outputs
	outFrame := req.Frame
	if outFrame != EquatorialFK4 && outFrame != ICRF {
		outFrame = EquatorialFK5
	}
	pos := st.R
	switch outFrame {
	case EquatorialFK4:
		pos = MxV33(fk5ToFK4, pos)
	case ICRF:
		pos = MxV33(fk5ToICRF, pos)
	}

	// precession to the requested equinox, then nutation, strictly in that
	// order, then the optional polar-motion rotation about the true pole
	if req.Equinox == EquinoxOfDate {
		pos = MxV33(precessionMatrix(req.JD, req.Reduction), pos)
		pos = MxV33(nutationMatrix(req.JD), pos)
		if req.PolarMotion {
			pos = MxV33(polarMotionMatrix(p.polarX, p.polarY, gast), pos)
		}
	}

	if req.SatelliteOffset != nil {
		pos = []float64{pos[0] + req.SatelliteOffset[0], pos[1] + req.SatelliteOffset[1], pos[2] + req.SatelliteOffset[2]}
	}

	// topocentric correction wants the of-date observer vector expressed in
	// the same frame as pos
	if req.Topocentric {
		var o []float64
		if req.Equinox == EquinoxOfDate {
			o = observerGeocentric(obs, gast)
		} else {
			o = obsJ2000
			switch outFrame {
			case EquatorialFK4:
				o = MxV33(fk5ToFK4, o)
			case ICRF:
				o = MxV33(fk5ToICRF, o)
			}
		}
		pos = []float64{pos[0] - o[0], pos[1] - o[1], pos[2] - o[2]}
	}

	res := &Result{
		Frame:     outFrame,
		Equinox:   req.Equinox,
		LightTime: lightTime,
	}
	res.Distance = Norm(pos)
	res.RightAscension = pmod(math.Atan2(pos[1], pos[0]))
	res.Declination = math.Asin(pos[2] / res.Distance)

	// heliocentric ecliptic coordinates and the physical ephemeris
	helioEcl := MTxV33(planetaryToFK5, helioFK5)
	res.DistanceFromSun = Norm(helioEcl)
	if res.DistanceFromSun > 0 {
		res.HeliocentricEclipticLongitude = pmod(math.Atan2(helioEcl[1], helioEcl[0]))
		res.HeliocentricEclipticLatitude = math.Asin(helioEcl[2] / res.DistanceFromSun)
	}
	res.AngularRadius = angularRadius(req.Target, res.Distance)
	res.Elongation, res.PhaseAngle, res.Illumination = phaseGeometry(st.R, helioFK5)
	res.Magnitude = visualMagnitude(req.Target, res.DistanceFromSun, res.Distance, res.PhaseAngle)

	if req.Horizontal {
		// horizontal coordinates always reduce through the true equator and
		// equinox of date, whatever the requested output frame
		hd := MxV33(precessionMatrix(req.JD, req.Reduction), st.R)
		hd = MxV33(nutationMatrix(req.JD), hd)
		if req.Topocentric {
			hd = topocentricCorrection(hd, obs, gast)
		}
		ra := pmod(math.Atan2(hd[1], hd[0]))
		dec := math.Asin(hd[2] / Norm(hd))
		res.Azimuth, res.Elevation = horizontal(ra, dec, obs, gast)
		if req.Refraction {
			res.Elevation += refraction(res.Elevation)
		}
	}
	return res, nil
}

// deflect bends the observer→body direction around the Sun. p is the
// geocentric position, q the heliocentric position of the body and e the
// heliocentric position of the Earth, all AU in the same frame.
func deflect(p, q, e []float64) []float64 {
	E := Norm(e)
	if E == 0 || Norm(q) == 0 {
		return p
	}
	up := unit(p)
	uq := unit(q)
	ue := unit([]float64{-e[0], -e[1], -e[2]}) // Earth→Sun
	// 2μ☉/c² in AU
	g1 := 1.974126e-8 / E
	g2 := 1 + dot(uq, ue)
	if g2 < 1e-9 {
		return p // body behind the Sun's center; the limit is singular
	}
	d := Norm(p)
	f := g1 / g2
	// dot(up,uq)·ue − dot(ue,up)·uq as a triple product
	b := cross(up, cross(ue, uq))
	return []float64{
		d * (up[0] + f*b[0]),
		d * (up[1] + f*b[1]),
		d * (up[2] + f*b[2]),
	}
}

// aberrate applies annual aberration for an observer moving at v (AU/day):
// the apparent direction is the unit sum of the true direction and v/c.
func aberrate(p []float64, v []float64) []float64 {
	d := Norm(p)
	if d == 0 {
		return p
	}
	return []float64{
		p[0] + d*v[0]/speedOfLight,
		p[1] + d*v[1]/speedOfLight,
		p[2] + d*v[2]/speedOfLight,
	}
}
