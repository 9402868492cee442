// SPDX-License-Identifier: MIT
// normal.go — standard-normal CDF, approximated by the Abramowitz-Stegun
// 26.2.17 rational polynomial (spec.md §4.4(a)), and the safe logarithm
// used throughout the package.
package score

import "math"

// asCoefficients are the fixed 5-term Abramowitz-Stegun 26.2.17
// coefficients, in order b1..b5.
var asCoefficients = [5]float64{
	0.319381530,
	-0.356563782,
	1.781477937,
	-1.821255978,
	1.330274429,
}

const (
	asP    = 0.2316419
	asTail = 0.3989423
)

// phi approximates the standard-normal CDF at |x|, Φ(|x|), via the
// Abramowitz-Stegun rational polynomial; it drops the sign of a negative
// x itself (the length term only ever needs Φ(|δ|)).
func phi(x float64) float64 {
	if x < 0 {
		x = -x
	}
	t := 1.0 / (1.0 + asP*x)
	poly := t * (asCoefficients[0] + t*(asCoefficients[1]+t*(asCoefficients[2]+t*(asCoefficients[3]+t*asCoefficients[4]))))
	tail := asTail * math.Exp(-x*x/2)
	return 1.0 - tail*poly
}

// minPD is the floor spec.md §4.4(a)/§7 mandates on the two-tailed
// probability, preventing -log(pd) from reaching +Inf.
const minPD = 1e-24

// logSafe returns log(x), treating x <= 0 as minPD to keep every
// downstream penalty/cost finite (spec.md §7: "no NaN or infinity may
// leave the score function").
func logSafe(x float64) float64 {
	if x <= 0 {
		x = minPD
	}
	return math.Log(x)
}
