// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "math"

// Log10 returns log10(|x|). Unlike math.Log10, Log10(0) is 0 rather
// than -Inf so that zero values still land somewhere on a
// logarithmic axis.
func Log10(x float64) float64 {
	if x == 0 {
		return 0
	}
	x = math.Abs(x)
	y := math.Log10(x)
	// math.Log10 can miss exact powers of ten by an ulp, which
	// would push them into the wrong decade.
	if r := math.Round(y); r != y && math.Abs(r-y) < 1e-9 && math.Pow(10, r) == x {
		return r
	}
	return y
}

// Exp10 returns 10**y.
func Exp10(y float64) float64 {
	return math.Pow(10, y)
}
