package ephemeris

import "math"

// Apparent-disk and illumination quantities, derived from the geocentric and
// heliocentric geometry already computed by the pipeline.

// angularRadius returns the apparent angular radius of a body at a distance
// in AU.
func angularRadius(b Body, distAU float64) float64 {
	if distAU <= 0 {
		return 0
	}
	return math.Asin(b.Radius() / (distAU * AU))
}

// phaseGeometry returns the solar elongation, the phase angle and the
// illuminated fraction from the observer→body and sun→body vectors.
func phaseGeometry(geo, helio []float64) (elong, phase, illum float64) {
	d := Norm(geo)
	r := Norm(helio)
	if d == 0 || r == 0 {
		return 0, 0, 1
	}
	// Earth→Sun = Earth→body − Sun→body
	es := []float64{geo[0] - helio[0], geo[1] - helio[1], geo[2] - helio[2]}
	e := Norm(es)
	if e == 0 {
		return 0, 0, 1
	}
	elong = math.Acos(clamp1(dot(geo, es) / (d * e)))
	phase = math.Acos(clamp1(dot(geo, helio) / (d * r)))
	illum = (1 + math.Cos(phase)) / 2
	return
}

func clamp1(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}

// visualMagnitude implements the standard planetary magnitude laws as a
// function of heliocentric distance r, geocentric distance d (AU) and phase
// angle i (radians). Saturn's ring contribution is not modeled.
func visualMagnitude(b Body, r, d, i float64) float64 {
	if d <= 0 {
		return 0
	}
	if b == Sun {
		return -26.74 + 5*math.Log10(d)
	}
	if r <= 0 {
		return 0
	}
	m := 5 * math.Log10(r*d)
	iDeg := i * r2d
	switch b {
	case Mercury:
		return m - 0.42 + 0.0380*iDeg - 0.000273*iDeg*iDeg + 2e-6*iDeg*iDeg*iDeg
	case Venus:
		return m - 4.40 + 0.0009*iDeg + 0.000239*iDeg*iDeg - 6.5e-7*iDeg*iDeg*iDeg
	case Mars:
		return m - 1.52 + 0.016*iDeg
	case Jupiter:
		return m - 9.40 + 0.005*iDeg
	case Saturn:
		return m - 8.88
	case Uranus:
		return m - 7.19
	case Neptune:
		return m - 6.87
	case Pluto:
		return m - 1.00
	case Moon:
		return m + 0.23 + 0.026*iDeg + 4.06e-9*iDeg*iDeg*iDeg*iDeg
	}
	return 0
}
