package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	kitlog "github.com/go-kit/kit/log"
	"github.com/soniakeys/meeus/v3/julian"

	ephemeris "github.com/awhawks/jparsec-sub019"
)

// ephcalc prints an apparent place for a body at a given Julian day, using the
// built-in abridged tables.

var (
	jd      float64
	date    string
	target  string
	kind    string
	ofDate  bool
	latDeg  float64
	lonDeg  float64
	height  float64
	azel    bool
	verbose bool
)

func init() {
	flag.Float64Var(&jd, "jd", 2451545.0, "Julian day, dynamical time")
	flag.StringVar(&date, "date", "", "epoch as 2006-01-02T15:04:05 (overrides -jd)")
	flag.StringVar(&target, "body", "Moon", "target body (Sun, Mercury..Neptune, Moon)")
	flag.StringVar(&kind, "type", "apparent", "geometric | astrometric | apparent")
	flag.BoolVar(&ofDate, "ofdate", false, "refer the place to the equinox of date instead of J2000")
	flag.Float64Var(&latDeg, "lat", math.NaN(), "observer latitude, degrees (enables topocentric place)")
	flag.Float64Var(&lonDeg, "lon", 0, "observer longitude, degrees east")
	flag.Float64Var(&height, "height", 0, "observer height, meters")
	flag.BoolVar(&azel, "azel", false, "also print azimuth and elevation (needs -lat)")
	flag.BoolVar(&verbose, "v", false, "log pipeline stages to stderr")
}

func bodyFromName(name string) (ephemeris.Body, bool) {
	for b := ephemeris.Sun; b <= ephemeris.Moon; b++ {
		if strings.EqualFold(b.String(), name) {
			return b, true
		}
	}
	return ephemeris.Sun, false
}

func hms(rad float64) string {
	h := rad * 12 / math.Pi
	hh := math.Floor(h)
	m := (h - hh) * 60
	mm := math.Floor(m)
	return fmt.Sprintf("%02.0fh%02.0fm%06.3fs", hh, mm, (m-mm)*60)
}

func dms(rad float64) string {
	sign := "+"
	d := rad * 180 / math.Pi
	if d < 0 {
		sign = "-"
		d = -d
	}
	dd := math.Floor(d)
	m := (d - dd) * 60
	mm := math.Floor(m)
	return fmt.Sprintf("%s%02.0f°%02.0f'%05.2f\"", sign, dd, mm, (m-mm)*60)
}

func main() {
	flag.Parse()
	if date != "" {
		parsed, err := time.Parse("2006-01-02T15:04:05", date)
		if err != nil {
			parsed, err = time.Parse("2006-01-02", date)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot parse date %q\n", date)
			os.Exit(1)
		}
		jd = julian.TimeToJD(parsed)
	}
	body, ok := bodyFromName(target)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown body %q\n", target)
		os.Exit(1)
	}

	var opts []ephemeris.Option
	if verbose {
		opts = append(opts, ephemeris.WithLogger(kitlog.NewLogfmtLogger(os.Stderr)))
	}
	pipe, err := ephemeris.New(ephemeris.Builtin(), opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pipeline: %s\n", err)
		os.Exit(1)
	}

	req := ephemeris.Request{
		JD:     jd,
		Target: body,
		Frame:  ephemeris.EquatorialFK5,
	}
	switch strings.ToLower(kind) {
	case "geometric":
		req.Type = ephemeris.Geometric
	case "astrometric":
		req.Type = ephemeris.Astrometric
	default:
		req.Type = ephemeris.Apparent
	}
	if ofDate {
		req.Equinox = ephemeris.EquinoxOfDate
	}
	if !math.IsNaN(latDeg) {
		req.Observer = ephemeris.NewObserver("cli", latDeg, lonDeg, height)
		req.Topocentric = true
		if azel {
			req.Horizontal = true
			req.Refraction = true
		}
	} else {
		req.Observer = ephemeris.NewObserver("geocenter", 0, 0, 0)
	}

	res, err := pipe.Ephemeris(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ephemeris: %s\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s at JD %.5f (%s, %s equinox)\n", body, jd, kind,
		map[bool]string{false: "J2000", true: "of-date"}[ofDate])
	fmt.Printf("  RA   %s\n", hms(res.RightAscension))
	fmt.Printf("  Dec  %s\n", dms(res.Declination))
	fmt.Printf("  dist %.8f AU  (light time %.6f d)\n", res.Distance, res.LightTime)
	fmt.Printf("  elongation %6.2f°  phase %6.2f°  illuminated %5.1f%%\n",
		res.Elongation*180/math.Pi, res.PhaseAngle*180/math.Pi, res.Illumination*100)
	fmt.Printf("  angular radius %.2f\"  magnitude %+.2f\n",
		res.AngularRadius*180/math.Pi*3600, res.Magnitude)
	if req.Horizontal {
		fmt.Printf("  az %7.3f°  el %+7.3f°\n", res.Azimuth*180/math.Pi, res.Elevation*180/math.Pi)
	}
}
