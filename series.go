package ephemeris

import "math"

// Quantity identifies the physical quantity a term table contributes to.
type Quantity int

const (
	Longitude Quantity = iota
	Latitude
	Distance
)

func (q Quantity) String() string {
	switch q {
	case Longitude:
		return "longitude"
	case Latitude:
		return "latitude"
	case Distance:
		return "distance"
	}
	return "Quantity(?)"
}

// Term is one line of a trigonometric series: an integer multiplier vector
// applied against the fundamental arguments, plus amplitude, constant phase
// and period. Loaders map the serialized coefficient layouts — (amplitude,
// phase, period) for the main-problem sets, (phase, amplitude, period) for
// the perturbation sets — onto these named fields; in memory there is a
// single layout. Immutable once loaded.
type Term struct {
	Mul    []int8  // multiplier vector, length 4-11 depending on family
	Amp    float64 // amplitude: arcsec for angles, km for distances
	Phase  float64 // constant phase offset, radians
	Period float64 // period in days, informational only
}

// TermTable is an ordered sequence of terms identified by theory family and
// quantity. Tables are read-only after construction and may be shared across
// concurrent evaluations without locking.
type TermTable struct {
	Family   Family
	Quantity Quantity
	Terms    []Term
}

// Rule describes how one term family is reduced: which accumulator it feeds,
// its truncation threshold, whether the cosine variant applies (distances),
// the secular T-power factor of the family and whether amplitudes carry the
// eccentricity envelope of the solar anomaly.
type Rule struct {
	Quantity  Quantity
	Threshold float64 // absolute amplitude floor; 0 evaluates the full table
	UseCos    bool
	TPower    int  // family sum is multiplied by T^TPower
	EFactor   bool // scale amplitudes by E^|mul(M)|
}

// Sum evaluates the series against the given argument vector:
// Σ amplitude·sin(Σ mul[k]·vec[k] + phase), or the cosine variant. Terms
// whose amplitude magnitude falls below the threshold are skipped; a zero
// threshold forces full-theory evaluation. Summation runs strictly in table
// order: floating-point addition is not associative and reference outputs
// are reproduced bit for bit only at fixed order.
func (tb *TermTable) Sum(vec []float64, args *Arguments, rule Rule) float64 {
	acc := 0.0
	for i := range tb.Terms {
		t := &tb.Terms[i]
		amp := t.Amp
		if rule.Threshold > 0 && math.Abs(amp) < rule.Threshold {
			continue
		}
		if rule.EFactor {
			switch m := t.Mul[1]; {
			case m == 1 || m == -1:
				amp *= args.E
			case m == 2 || m == -2:
				amp *= args.E2
			}
		}
		phase := t.Phase
		for k, m := range t.Mul {
			if m != 0 {
				phase += float64(m) * vec[k]
			}
		}
		phase = pmod(phase)
		if rule.UseCos {
			acc += amp * math.Cos(phase)
		} else {
			acc += amp * math.Sin(phase)
		}
	}
	return acc
}

// Retained returns how many terms survive a given truncation threshold.
// Raising the threshold is monotonic: it never adds terms.
func (tb *TermTable) Retained(threshold float64) int {
	if threshold <= 0 {
		return len(tb.Terms)
	}
	n := 0
	for i := range tb.Terms {
		if math.Abs(tb.Terms[i].Amp) >= threshold {
			n++
		}
	}
	return n
}

// DroppedAmplitude returns the sum of |amplitude| of the terms a threshold
// discards, an upper bound on the truncation error of Sum.
func (tb *TermTable) DroppedAmplitude(threshold float64) float64 {
	if threshold <= 0 {
		return 0
	}
	s := 0.0
	for i := range tb.Terms {
		if a := math.Abs(tb.Terms[i].Amp); a < threshold {
			s += a
		}
	}
	return s
}
