// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ticks computes major and minor tick marks for linear,
// logarithmic, and calendar time axes.
//
// A generator (Linear, Log, or Time) reduces an axis range to a pair
// of Sweeps, which describe the tick lattice compactly. An Iter then
// replays a Sweep into concrete tick values one at a time. Minor
// sweeps describe the ticks within a single major interval and are
// re-seeded for each pair of adjacent major ticks with Sweep.Between.
package ticks // import "github.com/aclements/go-axis/ticks"

import (
	"fmt"
	"math"
	"time"

	"github.com/aclements/go-axis/scale"
)

// MaxTicks is the most ticks any sweep will produce.
const MaxTicks = 10001

// Policy determines whether an axis bound snaps out to the nearest
// major tick or stays at the data bound.
type Policy int

const (
	// Tight bounds sit exactly on the data.
	Tight Policy = iota
	// Loose bounds snap out to the next major tick, unless the
	// user requested an explicit limit for that bound.
	Loose
	// AlwaysLoose bounds snap out even if the user requested a
	// limit.
	AlwaysLoose
)

func (p Policy) String() string {
	switch p {
	case Tight:
		return "tight"
	case Loose:
		return "loose"
	case AlwaysLoose:
		return "always"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy returns the Policy named by s, as returned by
// Policy.String.
func ParsePolicy(s string) (Policy, bool) {
	for _, p := range []Policy{Tight, Loose, AlwaysLoose} {
		if p.String() == s {
			return p, true
		}
	}
	return 0, false
}

// snaps reports whether a bound with policy p moves out to the outer
// major tick. override is whether the user set this bound.
func (p Policy) snaps(override bool) bool {
	switch p {
	case Tight:
		return false
	case Loose:
		return !override
	}
	return true
}

// TimeUnit is the calendar granularity of a time sweep.
type TimeUnit int

const (
	NoUnit TimeUnit = iota
	Years
	Months
	Weeks
	Days
	Hours
	Minutes
	Seconds
	Subseconds
)

var timeUnitNames = [...]string{"none", "years", "months", "weeks", "days", "hours", "minutes", "seconds", "subseconds"}

func (u TimeUnit) String() string {
	if u >= 0 && int(u) < len(timeUnitNames) {
		return timeUnitNames[u]
	}
	return fmt.Sprintf("TimeUnit(%d)", int(u))
}

// A Sweep describes a sequence of ticks.
//
// For major sweeps, tick i is at Initial + i*Step in the axis's
// internal space (log10 space for Log sweeps), except for Years and
// Months time sweeps, which walk the calendar from Year and Month.
//
// For minor sweeps, Initial and Range are the start and width of the
// enclosing major interval, filled in by Between. Tick i is at
// Initial + Range*(i+1)*Step, Initial + Range*log10(i+2) if Decade is
// set, or, for Years, Months, and Weeks time sweeps, at successive
// calendar boundaries inside the interval.
type Sweep struct {
	ScaleType scale.Mode
	Step      float64
	Initial   float64
	NumSteps  int
	Range     float64

	// TimeUnit is the unit of Step for Time sweeps. For Hours and
	// finer, Step is a count of TimeUnits. For minor sweeps finer
	// than Weeks, Step is a fraction of the major interval and
	// TimeUnit records the nominal granularity.
	TimeUnit TimeUnit

	// Custom, if non-nil, replaces the generated ticks. For major
	// sweeps these are data values. For minor sweeps they are
	// fractions of each major interval.
	Custom []float64

	// Decade indicates a minor log sweep with ticks at 2 through 9
	// times each power of ten.
	Decade bool

	// Year and Month anchor Years and Months major sweeps.
	Year, Month int

	// WeekStart is the first day of the week for Weeks sweeps.
	WeekStart time.Weekday
}

// noMinor is the minor sweep that produces no ticks. Step is left
// non-zero so a zero-valued Step never stands in for "no ticks".
func noMinor(mode scale.Mode) Sweep {
	return Sweep{ScaleType: mode, Step: 0.5}
}

// fractionMinor returns a minor sweep that divides each major
// interval into n equal parts.
func fractionMinor(mode scale.Mode, n int) Sweep {
	if n < 2 {
		return noMinor(mode)
	}
	if n > MaxTicks {
		n = MaxTicks
	}
	return Sweep{ScaleType: mode, Step: 1 / float64(n), NumSteps: n - 1}
}

// Options are the inputs to a tick generator.
type Options struct {
	// Min and Max are the resolved axis limits in data space.
	Min, Max float64

	// ReqMajor is the approximate number of major ticks wanted.
	// If <= 0, it defaults to 10.
	ReqMajor int

	// ReqMinor is the number of minor intervals per major
	// interval. If 0, there are no minor ticks.
	ReqMinor int

	LooseMin, LooseMax Policy

	// MinOverride and MaxOverride indicate that Min and Max came
	// from explicit user requests rather than the data.
	MinOverride, MaxOverride bool

	// ReqStep, if > 0, is the requested major tick interval.
	ReqStep float64

	// MajorValues and MinorValues, if non-nil, are custom ticks.
	// See Sweep.Custom.
	MajorValues, MinorValues []float64

	// WeekStart is the first day of the week on time axes.
	WeekStart time.Weekday
}

func (o Options) withDefaults() Options {
	if o.ReqMajor <= 0 {
		o.ReqMajor = 10
	}
	if o.ReqMinor < 0 {
		o.ReqMinor = 0
	}
	return o
}

// valid reports whether o describes a non-empty finite range.
func (o Options) valid() bool {
	return o.Min < o.Max && !math.IsInf(o.Min, 0) && !math.IsInf(o.Max, 0) && !math.IsInf(o.Max-o.Min, 0)
}

// bounds returns the displayed axis limits. Each is either the outer
// tick or the raw limit, depending on its Policy.
func (o Options) bounds(tickMin, tickMax, min, max float64) (float64, float64) {
	if o.LooseMin.snaps(o.MinOverride) {
		min = tickMin
	}
	if o.LooseMax.snaps(o.MaxOverride) {
		max = tickMax
	}
	return min, max
}

// Result is the output of a tick generator.
type Result struct {
	Major, Minor Sweep

	// AxisMin and AxisMax are the displayed limits of the axis in
	// its internal space.
	AxisMin, AxisMax float64
}

// Generate computes ticks for an axis with the given scale mode. It
// fails only if a time axis lies outside the years the calendar
// package supports.
func Generate(mode scale.Mode, o Options) (Result, error) {
	var res Result
	switch mode {
	case scale.Log:
		res = Log(o)
	case scale.Time:
		var err error
		if res, err = Time(o); err != nil {
			return res, err
		}
	default:
		res = Linear(o)
	}
	if o.MajorValues != nil {
		res.Major.Custom = limit(o.MajorValues)
		res.Major.NumSteps = len(res.Major.Custom)
	}
	if o.MinorValues != nil {
		res.Minor.Custom = limit(o.MinorValues)
		res.Minor.NumSteps = len(res.Minor.Custom)
	}
	return res, nil
}

func limit(xs []float64) []float64 {
	if len(xs) > MaxTicks {
		xs = xs[:MaxTicks]
	}
	return append([]float64(nil), xs...)
}

// lattice returns the multiples of step that bracket [min, max] and
// the number of ticks between them, inclusive. If that would exceed
// MaxTicks, lattice coarsens step until it does not.
func lattice(min, max, step float64) (lo, hi, newStep float64, n int) {
	for {
		lo, hi = scale.UFloor(min, step), scale.UCeil(max, step)
		count := math.Round((hi-lo)/step) + 1
		if count <= MaxTicks {
			return lo, hi, step, int(count)
		}
		// Flooring and ceiling add at most one step at each
		// end, so this always satisfies MaxTicks.
		step = math.Max(2*step, scale.Nice((max-min)/(MaxTicks-3), false))
	}
}
