package ephemeris

import (
	"math"

	"github.com/gonum/floats"
	"github.com/gonum/matrix/mat64"
	"github.com/soniakeys/meeus/v3/nutation"
)

const (
	r2d = 180 / math.Pi
	d2r = 1 / r2d
	s2r = d2r / 3600 // arcseconds to radians
)

// Frame tags the reference frame of a rectangular state.
type Frame int

const (
	// MeanEclipticJ2000 is the native frame of the planetary series theory:
	// heliocentric mean ecliptic and equinox J2000.
	MeanEclipticJ2000 Frame = iota
	// LunarInertialJ2000 is the native frame of the lunar theory: mean
	// inertial ecliptic J2000. It differs from MeanEclipticJ2000 at the
	// sub-milliarcsecond level; the two are not interchangeable.
	LunarInertialJ2000
	// EquatorialFK5 is the mean equator and equinox J2000 (FK5).
	EquatorialFK5
	// EquatorialFK4 is the mean equator and equinox B1950 (FK4, e-terms neglected).
	EquatorialFK4
	// ICRF is the International Celestial Reference Frame.
	ICRF
)

var frameNames = []string{"MeanEclipticJ2000", "LunarInertialJ2000", "EquatorialFK5", "EquatorialFK4", "ICRF"}

func (f Frame) String() string {
	if f < 0 || int(f) >= len(frameNames) {
		return "Frame(?)"
	}
	return frameNames[f]
}

// RectangularState is a position/velocity pair tagged with its frame and
// epoch. Positions in AU, velocities in AU/day. Every state must declare its
// frame; no transform here silently mixes frames.
type RectangularState struct {
	R, V               []float64
	Frame              Frame
	Epoch              float64 // Julian day, dynamical time
	LightTimeCorrected bool
}

func newState(r, v []float64, frame Frame, jd float64) *RectangularState {
	return &RectangularState{R: r, V: v, Frame: frame, Epoch: jd}
}

func zeroState(frame Frame, jd float64) *RectangularState {
	return newState([]float64{0, 0, 0}, []float64{0, 0, 0}, frame, jd)
}

// Norm returns the norm of a 3x1 vector.
func Norm(v []float64) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// unit returns the unit vector of a given vector.
func unit(a []float64) (b []float64) {
	n := Norm(a)
	if floats.EqualWithinAbs(n, 0, 1e-15) {
		return []float64{0, 0, 0}
	}
	b = make([]float64, len(a))
	for i, val := range a {
		b[i] = val / n
	}
	return
}

// dot performs the inner product.
func dot(a, b []float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// cross performs the cross product.
func cross(a, b []float64) []float64 {
	return []float64{a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0]}
}

// R1 rotation about the 1st axis.
func R1(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{1, 0, 0, 0, c, s, 0, -s, c})
}

// R2 rotation about the 2nd axis.
func R2(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{c, 0, -s, 0, 1, 0, s, 0, c})
}

// R3 rotation about the 3rd axis.
func R3(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{c, s, 0, -s, c, 0, 0, 0, 1})
}

// MxV33 multiplies a 3x3 matrix with a vector. Note that there is no dimension check!
func MxV33(m *mat64.Dense, v []float64) []float64 {
	vVec := mat64.NewVector(len(v), v)
	var rVec mat64.Vector
	rVec.MulVec(m, vVec)
	return []float64{rVec.At(0, 0), rVec.At(1, 0), rVec.At(2, 0)}
}

// MTxV33 multiplies the transpose of a 3x3 matrix with a vector (the inverse
// rotation for orthonormal matrices).
func MTxV33(m *mat64.Dense, v []float64) []float64 {
	vVec := mat64.NewVector(len(v), v)
	var rVec mat64.Vector
	rVec.MulVec(m.T(), vVec)
	return []float64{rVec.At(0, 0), rVec.At(1, 0), rVec.At(2, 0)}
}

// The two theory-specific rotations from the theory's native ecliptic frame
// to the FK5 mean equator and equinox J2000. The entries are very close but
// distinct: each theory's native frame differs subtly from the nominal mean
// equator, so the matrices must never be interchanged.
var (
	lunarToFK5 = mat64.NewDense(3, 3, []float64{
		1.000000000000, 0.000000437913, -0.000000189859,
		-0.000000477299, 0.917482137607, -0.397776981701,
		0.000000000000, 0.397776981701, 0.917482137607,
	})
	planetaryToFK5 = mat64.NewDense(3, 3, []float64{
		1.000000000000, 0.000000440360, -0.000000190919,
		-0.000000479966, 0.917482137087, -0.397776982902,
		0.000000000000, 0.397776982902, 0.917482137087,
	})
)

// fk5ToFK4 rotates a mean-J2000 equatorial vector to B1950 (FK4), e-terms of
// aberration neglected.
var fk5ToFK4 = mat64.NewDense(3, 3, []float64{
	0.9999256795, 0.0111814828, 0.0048590039,
	-0.0111814828, 0.9999374849, -0.0000271771,
	-0.0048590040, -0.0000271557, 0.9999881946,
})

// fk5ToICRF is the frame bias rotation built from the IAU offsets of the FK5
// pole and equinox relative to the ICRS (η0, ξ0, dα0).
var fk5ToICRF = func() *mat64.Dense {
	const (
		η0  = -0.0068192 * s2r
		ξ0  = -0.0166170 * s2r
		dα0 = -0.01460 * s2r
	)
	var m, t mat64.Dense
	t.Mul(R2(ξ0), R3(dα0))
	m.Mul(R1(-η0), &t)
	return mat64.DenseCopyOf(&m)
}()

// toFK5 rotates a state from its theory's native ecliptic frame into the FK5
// equatorial J2000 frame. States already in FK5 pass through.
func toFK5(st *RectangularState) *RectangularState {
	var m *mat64.Dense
	switch st.Frame {
	case EquatorialFK5:
		return st
	case LunarInertialJ2000:
		m = lunarToFK5
	case MeanEclipticJ2000:
		m = planetaryToFK5
	default:
		panic("ephemeris: no native rotation to FK5 from " + st.Frame.String())
	}
	out := newState(MxV33(m, st.R), MxV33(m, st.V), EquatorialFK5, st.Epoch)
	out.LightTimeCorrected = st.LightTimeCorrected
	return out
}

// ReductionMethod selects the precession polynomial set used for mean-place
// reductions.
type ReductionMethod int

const (
	// ReductionIAU2006 uses the IAU 2006 (Capitaine et al.) precession angles.
	ReductionIAU2006 ReductionMethod = iota
	// ReductionIAU2009 pairs the 2009 resolutions' constants with the
	// Lieske 1977 angle set retained for FK5-based work.
	ReductionIAU2009
)

// precessionMatrix returns the rotation from the mean equator and equinox of
// J2000 to the mean equator and equinox of jd, R3(-z)·R2(θ)·R3(-ζ).
func precessionMatrix(jd float64, method ReductionMethod) *mat64.Dense {
	t := (jd - J2000) / JulianCentury
	var ζ, z, θ float64
	switch method {
	case ReductionIAU2009:
		ζ = (2306.2181 + (0.30188+0.017998*t)*t) * t * s2r
		z = (2306.2181 + (1.09468+0.018203*t)*t) * t * s2r
		θ = (2004.3109 + (-0.42665-0.041833*t)*t) * t * s2r
	default: // IAU 2006
		ζ = (2.650545 + (2306.083227+(0.2988499+(0.01801828+(-0.000005971-0.0000003173*t)*t)*t)*t)*t) * s2r
		z = (-2.650545 + (2306.077181+(1.0927348+(0.01826837+(-0.000028596-0.0000002904*t)*t)*t)*t)*t) * s2r
		θ = (2004.191903 + (-0.4294934+(-0.04182264+(-0.000007089-0.0000001274*t)*t)*t)*t) * t * s2r
	}
	var m, tmp mat64.Dense
	tmp.Mul(R2(θ), R3(-ζ))
	m.Mul(R3(-z), &tmp)
	return mat64.DenseCopyOf(&m)
}

// nutationMatrix returns the rotation from the mean to the true equator and
// equinox of jd: R1(-ε)·R3(-Δψ)·R1(ε0). Nutation itself is delegated.
func nutationMatrix(jd float64) *mat64.Dense {
	Δψ, Δε := nutation.Nutation(jd)
	ε0 := nutation.MeanObliquity(jd)
	var m, tmp mat64.Dense
	tmp.Mul(R3(-Δψ.Rad()), R1(ε0.Rad()))
	m.Mul(R1(-(ε0.Rad()+Δε.Rad())), &tmp)
	return mat64.DenseCopyOf(&m)
}

// polarMotionMatrix rotates about the instantaneous celestial pole. The pole
// offsets xp, yp are in radians and gast is the Greenwich apparent sidereal
// time used as the rotation pivot.
func polarMotionMatrix(xp, yp, gast float64) *mat64.Dense {
	var m, t1, t2 mat64.Dense
	t1.Mul(R2(-xp), R3(gast))
	t2.Mul(R1(-yp), &t1)
	m.Mul(R3(-gast), &t2)
	return mat64.DenseCopyOf(&m)
}

// meanObliquityJ2000 is the obliquity of the ecliptic at J2000 (IAU 1976), radians.
const meanObliquityJ2000 = 23.4392911111111 * d2r

// eclipticToEquatorial rotates an ecliptic-of-J2000 vector onto the mean
// equator of J2000 without any theory-specific frame adjustment.
func eclipticToEquatorial(v []float64) []float64 {
	return MxV33(R1(-meanObliquityJ2000), v)
}
