package ephemeris

import "math"

// Earth reference ellipsoid (IAU 1976).
const (
	earthEquatorialRadiusKm = 6378.140
	earthFlattening         = 1 / 298.257
)

// geocentricFactors returns ρ·sinφ′ and ρ·cosφ′ for an observer, the
// geocentric latitude factors in units of the equatorial radius. These drive
// the diurnal parallax.
func geocentricFactors(o Observer) (ρsinφ, ρcosφ float64) {
	u := math.Atan((1 - earthFlattening) * math.Tan(o.Lat))
	su, cu := math.Sincos(u)
	h := o.Height / 1000 / earthEquatorialRadiusKm
	ρsinφ = (1-earthFlattening)*su + h*math.Sin(o.Lat)
	ρcosφ = cu + h*math.Cos(o.Lat)
	return
}

// observerGeocentric returns the observer's geocentric position in the true
// equator and equinox frame of date, AU. gast is the Greenwich apparent
// sidereal time in radians.
func observerGeocentric(o Observer, gast float64) []float64 {
	ρsinφ, ρcosφ := geocentricFactors(o)
	θ := gast + o.Lon // local apparent sidereal time
	s, c := math.Sincos(θ)
	r := earthEquatorialRadiusKm / AU
	return []float64{r * ρcosφ * c, r * ρcosφ * s, r * ρsinφ}
}

// topocentricCorrection shifts a geocentric of-date equatorial vector to the
// observer's location.
func topocentricCorrection(geo []float64, o Observer, gast float64) []float64 {
	obs := observerGeocentric(o, gast)
	return []float64{geo[0] - obs[0], geo[1] - obs[1], geo[2] - obs[2]}
}

// horizontal converts right ascension and declination (true equinox of date)
// to azimuth and elevation for an observer. Azimuth is measured from North
// through East. gast in radians.
func horizontal(ra, dec float64, o Observer, gast float64) (az, el float64) {
	H := pmod(gast + o.Lon - ra) // hour angle
	sH, cH := math.Sincos(H)
	sφ, cφ := math.Sincos(o.Lat)
	sδ, cδ := math.Sincos(dec)
	el = math.Asin(sφ*sδ + cφ*cδ*cH)
	// measured from South through West, then flipped to the North origin;
	// both atan2 arguments carry cδ so the celestial poles stay finite
	az = pmod(math.Atan2(sH*cδ, cH*cδ*sφ-sδ*cφ) + math.Pi)
	return
}

// refraction returns the Bennett atmospheric refraction for a true elevation,
// radians, at standard pressure and temperature. Elevations below the horizon
// get the horizon value.
func refraction(el float64) float64 {
	hDeg := el * r2d
	if hDeg < 0 {
		hDeg = 0
	}
	rArcmin := 1 / math.Tan((hDeg+7.31/(hDeg+4.4))*d2r)
	return rArcmin / 60 * d2r
}
