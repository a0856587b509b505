// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import (
	"math"

	"github.com/aclements/go-axis/scale"
)

// logTable[i] is log10(i+2). These place minor ticks at 2x through 9x
// of each decade.
var logTable = [...]float64{
	0.301029995663981, 0.477121254719662, 0.602059991327962,
	0.698970004336019, 0.778151250383644, 0.845098040014257,
	0.903089986991944, 0.954242509439325,
}

// maxDecades is the widest log axis that gets a tick on every power
// of ten.
const maxDecades = 10

// Log computes ticks for a logarithmic axis. The sweeps and axis
// limits of the result are in log10 space.
//
// Up to ten decades, there is a major tick at every power of ten and
// minor ticks at 2 through 9 times each. Beyond that, major ticks use a
// nice step in decades and minor ticks fall on whole decades.
func Log(o Options) Result {
	o = o.withDefaults()
	min, max := scale.Log10(o.Min), scale.Log10(o.Max)
	if min > max {
		// Both limits were negative.
		min, max = max, min
	}
	res := Result{
		Major:   Sweep{ScaleType: scale.Log, Step: 1},
		Minor:   noMinor(scale.Log),
		AxisMin: min,
		AxisMax: max,
	}
	if !o.valid() || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return res
	}

	lo, hi := math.Floor(min), math.Ceil(max)
	if lo == hi {
		hi++
	}
	if hi-lo <= maxDecades {
		res.Major = Sweep{
			ScaleType: scale.Log,
			Step:      1,
			Initial:   lo,
			NumSteps:  int(hi-lo) + 1,
			Range:     hi - lo,
		}
		if o.ReqMinor > 0 {
			res.Minor = Sweep{
				ScaleType: scale.Log,
				Decade:    true,
				NumSteps:  len(logTable),
				Range:     1,
			}
		}
	} else {
		step := scale.Nice(scale.Nice(hi-lo, false)/float64(o.ReqMajor), true)
		var n int
		lo, hi, step, n = lattice(lo, hi, step)
		res.Major = Sweep{
			ScaleType: scale.Log,
			Step:      step,
			Initial:   lo,
			NumSteps:  n,
			Range:     hi - lo,
		}
		if o.ReqMinor > 0 {
			res.Minor = decadeMinor(step)
		}
	}
	res.AxisMin, res.AxisMax = o.bounds(lo, hi, min, max)
	return res
}

// decadeMinor returns the minor sweep for a log axis whose major
// ticks are step decades apart. Minor ticks fall on whole powers of
// ten where possible. If the major step is itself a power of ten, the
// interval is split into fifths instead.
func decadeMinor(step float64) Sweep {
	minor := decadeFloor(step)
	if math.Abs(minor-step) <= 1e-9*step {
		return Sweep{ScaleType: scale.Log, Step: 0.2, NumSteps: 4}
	}
	n := int(math.Round(step/minor)) - 1
	return Sweep{ScaleType: scale.Log, Step: minor / step, NumSteps: n}
}

// decadeFloor returns the largest power of ten <= x, tolerating
// rounding error in log10 when x is itself a power of ten.
func decadeFloor(x float64) float64 {
	e := math.Floor(math.Log10(x))
	if scale.Exp10(e+1) <= x*(1+1e-9) {
		e++
	}
	return scale.Exp10(e)
}
