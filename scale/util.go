// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "math"

// clamp clamps x to the range [0, 1].
func clamp(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// UFloor rounds x down to a multiple of unit.
func UFloor(x, unit float64) float64 {
	return math.Floor(x/unit)*unit + 0.0
}

// UCeil rounds x up to a multiple of unit.
func UCeil(x, unit float64) float64 {
	return math.Ceil(x/unit)*unit + 0.0
}

// URound rounds x to the nearest multiple of unit.
func URound(x, unit float64) float64 {
	return math.Round(x/unit)*unit + 0.0
}
