// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package axis implements a plot axis: its configuration, the data it
// must show, and the limits, ticks, and screen mapping derived from
// them.
//
// The typical cycle is to observe the data, call Resolve, and then
// read the ticks and map values to screen coordinates:
//
//	a := axis.New()
//	a.ObserveAll(xs)
//	if _, err := a.Resolve(); err != nil { ... }
//	for _, v := range a.MajorTicks() {
//		x := a.ToScreen(v, vp)
//		...
//	}
//
// Configuration fields may be changed at any time. They take effect
// at the next Resolve.
package axis // import "github.com/aclements/go-axis/axis"

import (
	"fmt"
	"math"
	"time"

	"github.com/aclements/go-axis/scale"
	"github.com/aclements/go-axis/ticks"
	"github.com/aclements/go-axis/viewport"
	"github.com/aclements/go-moremath/stats"
)

// Axis is a single plot axis.
type Axis struct {
	// Scale is the kind of scale. Time axes show seconds since
	// the Unix epoch in UTC.
	Scale scale.Mode

	// ReqMin and ReqMax are the requested limits. NaN means the
	// limit is computed from the data.
	ReqMin, ReqMax float64

	// LooseMin and LooseMax determine whether the displayed
	// limits snap out to the outer major ticks.
	LooseMin, LooseMax ticks.Policy

	// Decreasing reverses the direction of the axis.
	Decreasing bool

	Orientation scale.Orientation

	// ReqMajorTicks is the approximate number of major ticks.
	// ReqMinorTicks is the number of minor intervals in each
	// major interval. Zero means no minor ticks.
	ReqMajorTicks, ReqMinorTicks int

	// ReqStep, if > 0, fixes the major tick interval.
	ReqStep float64

	// MajorValues and MinorValues, if non-nil, replace the
	// generated ticks. MinorValues are fractions of each major
	// interval.
	MajorValues, MinorValues []float64

	// WindowSize and ShiftBy implement auto-scrolling. See
	// viewport.Request.
	WindowSize, ShiftBy float64

	// ScrollMin and ScrollMax, if not NaN, bound the scroll region
	// in place of the data range.
	ScrollMin, ScrollMax float64

	// ScrollUnit is the distance moved by ScrollUnits(1), as a
	// fraction of the scroll region.
	ScrollUnit float64

	// WeekStart is the first day of the week on Time axes.
	WeekStart time.Weekday

	// The fields below are set by Resolve.

	// Min and Max are the resolved limits in data space.
	Min, Max float64

	// ValueRange is the data range after repair.
	ValueRange viewport.Bounds

	// AxisRange is the displayed range in the scale's internal
	// space (log10 for Log axes). With loose limits it extends to
	// the outer major ticks.
	AxisRange scale.Range

	Major, Minor ticks.Sweep

	data stats.StreamStats
	prev viewport.Bounds
}

// New returns an Axis with the default configuration: a linear,
// horizontal axis with loose limits computed from the data, about 10
// major ticks, and 2 minor intervals per major interval.
func New() *Axis {
	nan := math.NaN()
	return &Axis{
		ReqMin:        nan,
		ReqMax:        nan,
		LooseMin:      ticks.Loose,
		LooseMax:      ticks.Loose,
		ReqMajorTicks: 10,
		ReqMinorTicks: 2,
		ScrollMin:     nan,
		ScrollMax:     nan,
		ScrollUnit:    0.1,
		Min:           nan,
		Max:           nan,
		prev:          viewport.Bounds{Min: nan, Max: nan},
	}
}

// Observe adds x to the data shown on a. Non-finite values are
// ignored, as are non-positive values on Log axes.
func (a *Axis) Observe(x float64) {
	if math.IsNaN(x) || math.IsInf(x, 0) || (a.Scale == scale.Log && x <= 0) {
		return
	}
	a.data.Add(x)
}

// ObserveAll adds each of xs to the data shown on a.
func (a *Axis) ObserveAll(xs []float64) {
	for _, x := range xs {
		a.Observe(x)
	}
}

// ResetData forgets all observed data.
func (a *Axis) ResetData() {
	a.data = stats.StreamStats{}
}

// DataBounds returns the extent of the observed data and whether any
// data has been observed.
func (a *Axis) DataBounds() (min, max float64, ok bool) {
	if a.data.Count == 0 {
		return math.NaN(), math.NaN(), false
	}
	return a.data.Min, a.data.Max, true
}

// SetLimits sets the requested limits. Either may be NaN.
func (a *Axis) SetLimits(min, max float64) {
	a.ReqMin, a.ReqMax = min, max
}

// ClearLimits returns both limits to being computed from the data.
func (a *Axis) ClearLimits() {
	a.SetLimits(math.NaN(), math.NaN())
}

// Resolve recomputes a's limits and ticks from its configuration and
// data. It reports whether the limits changed since the last Resolve.
//
// Resolve only fails if a is a Time axis whose limits fall outside the
// calendar. In that case the limits are still updated but the ticks
// are not.
func (a *Axis) Resolve() (dirty bool, err error) {
	req := viewport.Request{
		ReqMin:     a.ReqMin,
		ReqMax:     a.ReqMax,
		Log:        a.Scale == scale.Log,
		WindowSize: a.WindowSize,
		ShiftBy:    a.ShiftBy,
	}
	req.ValueMin, req.ValueMax, req.HaveData = a.DataBounds()
	fix := viewport.FixRange(req, a.prev)
	a.prev = fix.Bounds
	a.Min, a.Max = fix.Min, fix.Max
	a.ValueRange = fix.ValueRange

	res, err := ticks.Generate(a.Scale, ticks.Options{
		Min:         a.Min,
		Max:         a.Max,
		ReqMajor:    a.ReqMajorTicks,
		ReqMinor:    a.ReqMinorTicks,
		LooseMin:    a.LooseMin,
		LooseMax:    a.LooseMax,
		MinOverride: fix.MinOverride,
		MaxOverride: fix.MaxOverride,
		ReqStep:     a.ReqStep,
		MajorValues: a.MajorValues,
		MinorValues: a.MinorValues,
		WeekStart:   a.WeekStart,
	})
	if err != nil {
		return fix.Dirty, fmt.Errorf("resolving %s axis [%v, %v]: %w", a.Scale, a.Min, a.Max, err)
	}
	a.Major, a.Minor = res.Major, res.Minor
	a.AxisRange = scale.NewRange(res.AxisMin, res.AxisMax)
	return fix.Dirty, nil
}
