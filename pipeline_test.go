package ephemeris

import (
	"errors"
	"math"
	"testing"

	"github.com/gonum/floats"
)

func testPipeline(t *testing.T, opts ...Option) *Pipeline {
	t.Helper()
	p, err := New(Builtin(), opts...)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestNewRequiresLunarTables(t *testing.T) {
	if _, err := New(NewTableProvider(nil, builtinPlanetaryTables(), nil)); !errors.Is(err, ErrTableMissing) {
		t.Fatalf("expected ErrTableMissing, got %v", err)
	}
}

func TestEphemerisRejectsObserverMotherBody(t *testing.T) {
	p := testPipeline(t)
	_, err := p.Ephemeris(Request{JD: J2000, Target: Earth})
	if !errors.Is(err, ErrInvalidTarget) {
		t.Fatalf("Earth from an Earth observer: expected ErrInvalidTarget, got %v", err)
	}
	obs := NewObserver("x", 0, 0, 0)
	obs.MotherBody = Mars
	if _, err := p.Ephemeris(Request{JD: J2000, Target: Venus, Observer: obs}); !errors.Is(err, ErrInvalidTarget) {
		t.Fatalf("Mars observer: expected ErrInvalidTarget, got %v", err)
	}
}

func TestEphemerisDeterministic(t *testing.T) {
	p := testPipeline(t)
	req := Request{JD: 2448724.5, Target: Moon, Type: Apparent, Equinox: EquinoxOfDate}
	a, err := p.Ephemeris(req)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		b, err := p.Ephemeris(req)
		if err != nil {
			t.Fatal(err)
		}
		if a.RightAscension != b.RightAscension || a.Declination != b.Declination ||
			a.Distance != b.Distance || a.LightTime != b.LightTime {
			t.Fatalf("run %d produced different bits", i)
		}
	}
}

// 1992 April 12.0 TD. Reference apparent place of the Moon:
// α=134.688470°, δ=13.768368°. The astrometric request with the of-date
// equinox matches it to the accuracy of the abridged tables plus the
// aberration convention.
func TestMoonPlaceReferenceEpoch(t *testing.T) {
	p := testPipeline(t)
	res, err := p.Ephemeris(Request{
		JD:      2448724.5,
		Target:  Moon,
		Type:    Apparent,
		Equinox: EquinoxOfDate,
	})
	if err != nil {
		t.Fatal(err)
	}
	// published apparent place for 1992 April 12.0 TD; the light-time
	// retardation shifts the series place by under an arcsecond
	if !floats.EqualWithinAbs(res.RightAscension*r2d, 134.688470, 0.005) {
		t.Fatalf("RA %.6f° expected 134.688470°", res.RightAscension*r2d)
	}
	if !floats.EqualWithinAbs(res.Declination*r2d, 13.768368, 0.005) {
		t.Fatalf("Dec %.6f° expected 13.768368°", res.Declination*r2d)
	}
	if !floats.EqualWithinAbs(res.Distance*AU, 368409.7, 60) {
		t.Fatalf("distance %.1f km", res.Distance*AU)
	}
	if res.Equinox != EquinoxOfDate || res.Frame != EquatorialFK5 {
		t.Fatalf("tags %v %v", res.Frame, res.Equinox)
	}
}

func TestMoonApparentAberration(t *testing.T) {
	p := testPipeline(t)
	const jd = J2000
	res, err := p.Ephemeris(Request{JD: jd, Target: Moon, Type: Apparent})
	if err != nil {
		t.Fatal(err)
	}
	// rebuild the convention by hand: the lunar series yields
	// moon(t-τ) − earth(t-τ), so the earth-velocity term it carries must be
	// swapped for earth(t), then deflection and aberration applied once
	τ := res.LightTime
	earth, err := p.helio(Earth, jd)
	if err != nil {
		t.Fatal(err)
	}
	emit, err := p.helio(Earth, jd-τ)
	if err != nil {
		t.Fatal(err)
	}
	earthFK5 := toFK5(earth)
	emitFK5 := toFK5(emit)
	moon := toFK5(p.lunar.Geocentric(jd - τ))
	pv := []float64{
		moon.R[0] + emitFK5.R[0] - earthFK5.R[0],
		moon.R[1] + emitFK5.R[1] - earthFK5.R[1],
		moon.R[2] + emitFK5.R[2] - earthFK5.R[2],
	}
	helio := []float64{earthFK5.R[0] + pv[0], earthFK5.R[1] + pv[1], earthFK5.R[2] + pv[2]}
	pv = deflect(pv, helio, earthFK5.R)
	pv = aberrate(pv, earthFK5.V)
	ra := pmod(math.Atan2(pv[1], pv[0]))
	dec := math.Asin(pv[2] / Norm(pv))
	if !floats.EqualWithinAbs(res.RightAscension, ra, 1e-9) {
		t.Fatalf("RA %.9f differs from composed %.9f by %.2g rad", res.RightAscension, ra, res.RightAscension-ra)
	}
	if !floats.EqualWithinAbs(res.Declination, dec, 1e-9) {
		t.Fatalf("Dec %.9f differs from composed %.9f by %.2g rad", res.Declination, dec, res.Declination-dec)
	}
	if !floats.EqualWithinAbs(res.Distance, Norm(pv), 1e-12) {
		t.Fatalf("distance %.12f vs composed %.12f", res.Distance, Norm(pv))
	}
}

func TestSunApparentPlace(t *testing.T) {
	p := testPipeline(t)
	res, err := p.Ephemeris(Request{JD: J2000, Target: Sun, Type: Apparent, Equinox: EquinoxOfDate})
	if err != nil {
		t.Fatal(err)
	}
	// at the January solstice season the Sun sits near RA 281°, Dec -23°
	if !floats.EqualWithinAbs(res.RightAscension*r2d, 281.29, 0.2) {
		t.Fatalf("solar RA %.4f°", res.RightAscension*r2d)
	}
	if !floats.EqualWithinAbs(res.Declination*r2d, -23.03, 0.2) {
		t.Fatalf("solar Dec %.4f°", res.Declination*r2d)
	}
	if !floats.EqualWithinAbs(res.Distance, 0.98333, 1e-3) {
		t.Fatalf("solar distance %.5f AU", res.Distance)
	}
	if res.Illumination != 1 {
		t.Fatalf("solar illumination %g", res.Illumination)
	}
	if res.Magnitude > -26 {
		t.Fatalf("solar magnitude %.2f", res.Magnitude)
	}
	if res.DistanceFromSun != 0 {
		t.Fatalf("the Sun is %g AU from itself", res.DistanceFromSun)
	}
}

func TestLightTimeConsistency(t *testing.T) {
	p := testPipeline(t)
	res, err := p.Ephemeris(Request{JD: 2451545.0, Target: Mars, Type: Astrometric})
	if err != nil {
		t.Fatal(err)
	}
	if res.LightTime <= 0 {
		t.Fatal("light time missing")
	}
	if !floats.EqualWithinAbs(res.LightTime, res.Distance*LightTimePerAU, 1e-9) {
		t.Fatalf("light time %.9f vs distance %.9f AU", res.LightTime, res.Distance)
	}
	if res.LightTime < 0.002 || res.LightTime > 0.016 {
		t.Fatalf("Mars light time %.5f d implausible", res.LightTime)
	}
}

func TestLightTimeIterationCap(t *testing.T) {
	p := testPipeline(t, WithLightTimeCap(1))
	if _, err := p.Ephemeris(Request{JD: J2000, Target: Moon, Type: Apparent}); !errors.Is(err, ErrConvergence) {
		t.Fatalf("expected ErrConvergence, got %v", err)
	}
}

func TestGeometricSkipsLightTime(t *testing.T) {
	p := testPipeline(t)
	res, err := p.Ephemeris(Request{JD: 2451545.0, Target: Mars, Type: Geometric})
	if err != nil {
		t.Fatal(err)
	}
	if res.LightTime != 0 {
		t.Fatalf("geometric request computed light time %g", res.LightTime)
	}
}

func TestApparentDiffersFromGeometric(t *testing.T) {
	p := testPipeline(t)
	geo, err := p.Ephemeris(Request{JD: 2451545.0, Target: Mars, Type: Geometric})
	if err != nil {
		t.Fatal(err)
	}
	app, err := p.Ephemeris(Request{JD: 2451545.0, Target: Mars, Type: Apparent})
	if err != nil {
		t.Fatal(err)
	}
	d := math.Abs(app.RightAscension - geo.RightAscension)
	if d == 0 {
		t.Fatal("apparent and geometric places are identical")
	}
	// aberration tops out near 20", light time adds a comparable shift
	if d > 2e-3 {
		t.Fatalf("apparent corrections moved RA by %.6f rad", d)
	}
}

func TestEquinoxOfDateDiffers(t *testing.T) {
	p := testPipeline(t)
	j2000, _ := p.Ephemeris(Request{JD: 2448724.5, Target: Moon, Type: Apparent})
	ofDate, _ := p.Ephemeris(Request{JD: 2448724.5, Target: Moon, Type: Apparent, Equinox: EquinoxOfDate})
	// 7.7 years of precession shifts the place by several arcminutes
	if math.Abs(j2000.RightAscension-ofDate.RightAscension) < 1e-4 {
		t.Fatal("of-date equinox did not move the place")
	}
	if !floats.EqualWithinAbs(j2000.Distance, ofDate.Distance, 1e-12) {
		t.Fatal("equinox reduction must not change the distance")
	}
}

func TestFrameBias(t *testing.T) {
	p := testPipeline(t)
	fk5, _ := p.Ephemeris(Request{JD: 2451545.0, Target: Mars, Type: Astrometric, Frame: EquatorialFK5})
	icrf, _ := p.Ephemeris(Request{JD: 2451545.0, Target: Mars, Type: Astrometric, Frame: ICRF})
	fk4, _ := p.Ephemeris(Request{JD: 2451545.0, Target: Mars, Type: Astrometric, Frame: EquatorialFK4})
	if fk5.RightAscension == icrf.RightAscension {
		t.Fatal("ICRF bias did not move the place")
	}
	if math.Abs(fk5.RightAscension-icrf.RightAscension) > 1e-5 {
		t.Fatal("ICRF bias is tens of milliarcseconds, not more")
	}
	// FK4 differs by half a century of precession
	if math.Abs(fk5.RightAscension-fk4.RightAscension)*r2d < 0.1 {
		t.Fatal("FK4 reduction must move the place substantially")
	}
	if icrf.Frame != ICRF || fk4.Frame != EquatorialFK4 {
		t.Fatalf("frame tags %v %v", icrf.Frame, fk4.Frame)
	}
}

func TestTopocentricParallax(t *testing.T) {
	p := testPipeline(t)
	obs := NewObserver("palomar", 33.356, -116.863, 1706)
	geo, err := p.Ephemeris(Request{JD: 2448724.5, Target: Moon, Type: Apparent, Equinox: EquinoxOfDate})
	if err != nil {
		t.Fatal(err)
	}
	topo, err := p.Ephemeris(Request{JD: 2448724.5, Target: Moon, Type: Apparent, Equinox: EquinoxOfDate,
		Observer: obs, Topocentric: true})
	if err != nil {
		t.Fatal(err)
	}
	sep := math.Hypot((topo.RightAscension-geo.RightAscension)*math.Cos(geo.Declination),
		topo.Declination-geo.Declination)
	// lunar parallax reaches a degree at the horizon
	if sep < 1e-4 || sep > 0.02 {
		t.Fatalf("parallax displacement %.6f rad implausible", sep)
	}
}

func TestHorizontalCoordinates(t *testing.T) {
	p := testPipeline(t)
	obs := NewObserver("x", 48.86, 2.35, 50)
	res, err := p.Ephemeris(Request{JD: 2448724.5, Target: Moon, Type: Apparent, Equinox: EquinoxOfDate,
		Observer: obs, Topocentric: true, Horizontal: true})
	if err != nil {
		t.Fatal(err)
	}
	if res.Azimuth < 0 || res.Azimuth >= 2*math.Pi {
		t.Fatalf("azimuth %.6f out of range", res.Azimuth)
	}
	if math.Abs(res.Elevation) > math.Pi/2 {
		t.Fatalf("elevation %.6f out of range", res.Elevation)
	}
	refr, err := p.Ephemeris(Request{JD: 2448724.5, Target: Moon, Type: Apparent, Equinox: EquinoxOfDate,
		Observer: obs, Topocentric: true, Horizontal: true, Refraction: true})
	if err != nil {
		t.Fatal(err)
	}
	if refr.Elevation <= res.Elevation {
		t.Fatal("refraction must raise the apparent elevation")
	}
}

func TestSatelliteOffset(t *testing.T) {
	p := testPipeline(t)
	plain, _ := p.Ephemeris(Request{JD: 2451545.0, Target: Mars, Type: Astrometric})
	off, _ := p.Ephemeris(Request{JD: 2451545.0, Target: Mars, Type: Astrometric,
		SatelliteOffset: []float64{1e-5, 0, 0}})
	if plain.RightAscension == off.RightAscension && plain.Distance == off.Distance {
		t.Fatal("satellite offset had no effect")
	}
}

func TestPlutoWithoutFitRecord(t *testing.T) {
	p := testPipeline(t)
	// in the fit window but with no record loaded
	if _, err := p.Ephemeris(Request{JD: 2451545.0, Target: Pluto, Type: Astrometric}); !errors.Is(err, ErrTableMissing) {
		t.Fatalf("expected ErrTableMissing, got %v", err)
	}
	// outside the window the range failure wins
	_, err := p.Ephemeris(Request{JD: 2300000.5, Target: Pluto, Type: Astrometric})
	if !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
	var dre *DateRangeError
	if !errors.As(err, &dre) || dre.Body != Pluto {
		t.Fatalf("expected a Pluto DateRangeError, got %v", err)
	}
}

func TestOuterFitFallback(t *testing.T) {
	// a Mars fit record and no planetary series: the chain must fall through
	// to the restricted-range fit
	rec := syntheticRecord()
	provider := NewTableProvider([]*TermTable{
		builtinLunarLongitude, builtinLunarLatitude, builtinLunarDistance,
	}, []*PlanetTable{Builtin().Planetary(Earth)}, []*OuterFitRecord{rec})
	p, err := New(provider)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Ephemeris(Request{JD: 2451030.5, Target: Mars, Type: Geometric}); err != nil {
		t.Fatalf("fallback to the fit failed: %v", err)
	}
}

func TestHeliocentricResultFields(t *testing.T) {
	p := testPipeline(t)
	res, err := p.Ephemeris(Request{JD: 2451545.0, Target: Mars, Type: Astrometric})
	if err != nil {
		t.Fatal(err)
	}
	if res.DistanceFromSun < 1.3 || res.DistanceFromSun > 1.7 {
		t.Fatalf("Mars heliocentric distance %.4f AU", res.DistanceFromSun)
	}
	if res.HeliocentricEclipticLongitude < 0 || res.HeliocentricEclipticLongitude >= 2*math.Pi {
		t.Fatalf("heliocentric longitude %.6f out of range", res.HeliocentricEclipticLongitude)
	}
	if math.Abs(res.HeliocentricEclipticLatitude) > 4*d2r {
		t.Fatalf("Mars ecliptic latitude %.4f°", res.HeliocentricEclipticLatitude*r2d)
	}
	if res.AngularRadius <= 0 {
		t.Fatal("angular radius missing")
	}
	if res.Illumination < 0.8 || res.Illumination > 1 {
		t.Fatalf("Mars illumination %.4f", res.Illumination)
	}
}
