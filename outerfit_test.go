package ephemeris

import (
	"errors"
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestOuterFitWindows(t *testing.T) {
	cases := []struct {
		body     Body
		from, to float64
	}{
		{Pluto, 2341972.5, 2488092.5},
		{Neptune, 2396758.5, 2488092.5},
		{Mercury, 2415020.5, 2488092.5},
		{Jupiter, 2415020.5, 2488092.5},
	}
	for _, c := range cases {
		from, to := OuterFitWindow(c.body)
		if from != c.from || to != c.to {
			t.Fatalf("%s window [%f, %f] expected [%f, %f]", c.body, from, to, c.from, c.to)
		}
	}
}

func TestOuterFitRangeCheckedBeforeTables(t *testing.T) {
	// no record loaded: an out-of-window epoch must still fail on the range,
	// not on the missing table
	th := NewOuterPlanetTheory(NewTableProvider(nil, nil, nil))
	_, err := th.Heliocentric(Pluto, 2300000.5)
	if !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
	var dre *DateRangeError
	if !errors.As(err, &dre) {
		t.Fatalf("expected a DateRangeError, got %T", err)
	}
	if dre.Body != Pluto || dre.From != 2341972.5 || dre.To != 2488092.5 {
		t.Fatalf("bad range error: %+v", dre)
	}
	// inside the window the missing table shows through
	if _, err := th.Heliocentric(Pluto, 2451545.0); !errors.Is(err, ErrTableMissing) {
		t.Fatalf("expected ErrTableMissing, got %v", err)
	}
}

func TestOuterFitEdgeEpochsAccepted(t *testing.T) {
	for _, b := range []Body{Pluto, Neptune, Mars} {
		from, to := OuterFitWindow(b)
		if err := checkOuterFitRange(b, from); err != nil {
			t.Fatalf("%s at window start: %v", b, err)
		}
		if err := checkOuterFitRange(b, to); err != nil {
			t.Fatalf("%s at window end: %v", b, err)
		}
		if err := checkOuterFitRange(b, from-1e-6); err == nil {
			t.Fatalf("%s just before the window must fail", b)
		}
	}
}

func syntheticRecord() *OuterFitRecord {
	return &OuterFitRecord{
		Body:      Mars,
		Start:     2451000.5,
		Spacing:   100,
		Blocks:    2,
		FreqScale: 0.7,
		Secular: [3][]float64{
			{2, 3},
			{-1, 0, 4},
			{0.5},
		},
		Poisson: [3][]PoissonTerm{
			{{Freq: 0, Power: 0, CT: []float64{1.5, 2.5}, ST: []float64{0, 0}}},
			nil,
			nil,
		},
	}
}

func TestOuterFitSecularEvaluation(t *testing.T) {
	rec := syntheticRecord()
	// jd 30 days into the first block: x = -0.4
	pos, vel := rec.eval(2451030.5)
	x := -0.4
	if !floats.EqualWithinAbs(pos[0], 2+3*x+1.5, 1e-12) {
		t.Fatalf("axis 0: got %.12f", pos[0])
	}
	if !floats.EqualWithinAbs(pos[1], -1+4*x*x, 1e-12) {
		t.Fatalf("axis 1: got %.12f", pos[1])
	}
	if !floats.EqualWithinAbs(pos[2], 0.5, 1e-12) {
		t.Fatalf("axis 2: got %.12f", pos[2])
	}
	dxdt := 2 / rec.Spacing
	if !floats.EqualWithinAbs(vel[0], 3*dxdt, 1e-12) {
		t.Fatalf("axis 0 velocity: got %.12f", vel[0])
	}
	if !floats.EqualWithinAbs(vel[1], 8*x*dxdt, 1e-12) {
		t.Fatalf("axis 1 velocity: got %.12f", vel[1])
	}
}

func TestOuterFitBlockSelection(t *testing.T) {
	rec := syntheticRecord()
	// the constant Poisson term carries a different amplitude per block
	p0, _ := rec.eval(2451030.5) // block 0
	p1, _ := rec.eval(2451130.5) // block 1
	if !floats.EqualWithinAbs(p0[0]-(2+3*-0.4), 1.5, 1e-12) {
		t.Fatalf("block 0 amplitude: got %.12f", p0[0]-(2+3*-0.4))
	}
	if !floats.EqualWithinAbs(p1[0]-(2+3*-0.4), 2.5, 1e-12) {
		t.Fatalf("block 1 amplitude: got %.12f", p1[0]-(2+3*-0.4))
	}
	// epochs at or past the last block clamp instead of indexing out
	end, _ := rec.eval(2451200.5)
	if math.IsNaN(end[0]) {
		t.Fatal("clamped evaluation produced NaN")
	}
}

func TestOuterFitPoissonVelocityConsistency(t *testing.T) {
	rec := syntheticRecord()
	rec.Poisson[0] = append(rec.Poisson[0], PoissonTerm{
		Freq: 2, Power: 1,
		CT: []float64{0.3, 0.1},
		ST: []float64{-0.2, 0.4},
	})
	const h = 0.01
	jd := 2451042.25
	pos, vel := rec.eval(jd)
	pm, _ := rec.eval(jd - h)
	pp, _ := rec.eval(jd + h)
	for i := 0; i < 3; i++ {
		fd := (pp[i] - pm[i]) / (2 * h)
		if !floats.EqualWithinAbs(vel[i], fd, 1e-8) {
			t.Fatalf("axis %d: analytic %.12g vs finite difference %.12g", i, vel[i], fd)
		}
	}
	_ = pos
}

func TestOuterFitHeliocentric(t *testing.T) {
	th := NewOuterPlanetTheory(NewTableProvider(nil, nil, []*OuterFitRecord{syntheticRecord()}))
	st, err := th.Heliocentric(Mars, 2451030.5)
	if err != nil {
		t.Fatal(err)
	}
	if st.Frame != MeanEclipticJ2000 {
		t.Fatalf("frame %s", st.Frame)
	}
	if _, err := th.Heliocentric(Mars, 2300000.5); !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
	sun, err := th.Heliocentric(Sun, 2451030.5)
	if err != nil || Norm(sun.R) != 0 {
		t.Fatalf("Sun: %v %v", sun, err)
	}
}

func TestBarycenterOffset(t *testing.T) {
	th := NewOuterPlanetTheory(NewTableProvider(nil, nil, nil))
	st := th.Barycenter(2451545.0)
	// the barycenter sits inside the Earth, about 4670 km from its center
	r := Norm(st.R) * AU
	if r < 4300 || r > 5000 {
		t.Fatalf("barycenter offset %.1f km", r)
	}
	// velocity against a coarser central difference
	rm := embOffset(2451545.0 - 0.5)
	rp := embOffset(2451545.0 + 0.5)
	for i := 0; i < 3; i++ {
		fd := rp[i] - rm[i]
		if !floats.EqualWithinAbs(st.V[i], fd, 1e-7) {
			t.Fatalf("axis %d: %.3g vs %.3g", i, st.V[i], fd)
		}
	}
}
