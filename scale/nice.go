// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "math"

// Nice returns a "nice" number approximately equal to x, of the form
// f*10^e where f is 1, 2, 5, or 10.
//
// If round is true, Nice picks the f closest to the mantissa of x.
// Otherwise it picks the smallest f at least as large as the mantissa,
// so Nice(x, false) >= x.
//
// x must be positive and finite. Otherwise, Nice returns NaN.
func Nice(x float64, round bool) float64 {
	if !(x > 0) || math.IsInf(x, 0) {
		return math.NaN()
	}

	expt := int(math.Floor(math.Log10(x)))
	frac := x / math.Pow10(expt)
	// Log10 can be off by an ulp near powers of ten.
	if frac >= 10 {
		expt++
		frac = x / math.Pow10(expt)
	} else if frac < 1 {
		expt--
		frac = x / math.Pow10(expt)
	}

	var nice float64
	if round {
		switch {
		case frac < 1.5:
			nice = 1
		case frac < 3:
			nice = 2
		case frac < 7:
			nice = 5
		default:
			nice = 10
		}
	} else {
		// Mantissas like 2.0000000000000004 still count as 2.
		const slop = 1 + 1e-10
		switch {
		case frac <= 1*slop:
			nice = 1
		case frac <= 2*slop:
			nice = 2
		case frac <= 5*slop:
			nice = 5
		default:
			nice = 10
		}
	}
	return nice * math.Pow10(expt)
}
