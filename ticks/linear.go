// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import (
	"math"

	"github.com/aclements/go-axis/scale"
)

// Linear computes ticks for a linear axis.
//
// The major step is a nice number near (Max-Min)/ReqMajor, or ReqStep
// halved until at least two intervals fit in the range. Major ticks
// fall on multiples of the step from the step-aligned floor of Min to
// the step-aligned ceiling of Max.
func Linear(o Options) Result {
	o = o.withDefaults()
	res := Result{
		Major:   Sweep{ScaleType: scale.Linear, Step: 1},
		Minor:   noMinor(scale.Linear),
		AxisMin: o.Min,
		AxisMax: o.Max,
	}
	if !o.valid() {
		return res
	}
	step := linearStep(o.Max-o.Min, o.ReqMajor, o.ReqStep)
	if step <= 0 || math.IsNaN(step) {
		return res
	}
	// Steps within a few ulps of the limits would round adjacent
	// ticks to the same value.
	if floor := 4 * scale.Epsilon * math.Max(math.Abs(o.Min), math.Abs(o.Max)); step < floor {
		step = scale.Nice(floor, false)
	}
	lo, hi, step, n := lattice(o.Min, o.Max, step)
	res.Major = Sweep{
		ScaleType: scale.Linear,
		Step:      step,
		Initial:   lo,
		NumSteps:  n,
		Range:     hi - lo,
	}
	res.AxisMin, res.AxisMax = o.bounds(lo, hi, o.Min, o.Max)
	if o.ReqStep <= 0 {
		res.Minor = fractionMinor(scale.Linear, o.ReqMinor)
	}
	return res
}

// linearStep returns the major tick interval for a span of rng.
func linearStep(rng float64, reqMajor int, reqStep float64) float64 {
	if reqStep > 0 && !math.IsInf(reqStep, 0) {
		step := reqStep
		for 2*step >= rng {
			step *= 0.5
		}
		return step
	}
	return scale.Nice(scale.Nice(rng, false)/float64(reqMajor), true)
}
