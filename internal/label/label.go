// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package label formats tick values as axis labels.
package label

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/aclements/go-axis/scale"
	"github.com/aclements/go-axis/ticks"
	"github.com/dustin/go-humanize"
	"github.com/tebeka/strftime"
)

// maxDecimals bounds the fractional digits of a linear label.
const maxDecimals = 9

// A Formatter formats the major ticks of one resolved axis. Every
// label of a linear axis uses the same SI prefix and number of
// decimals, so labels line up.
type Formatter struct {
	mode     scale.Mode
	unit     ticks.TimeUnit
	decimals int
	factor   float64
	prefix   string
}

// New returns a Formatter for the major sweep s of an axis whose
// displayed range is [min, max].
func New(s ticks.Sweep, min, max float64) *Formatter {
	f := &Formatter{mode: s.ScaleType, unit: s.TimeUnit, factor: 1}
	switch s.ScaleType {
	case scale.Log:
		return f
	case scale.Time:
		if f.unit == ticks.NoUnit {
			f.unit = ticks.MajorTimeUnit(min, max)
		}
		if f.unit != ticks.Subseconds {
			return f
		}
	}

	mag := math.Max(math.Abs(min), math.Abs(max))
	if s.ScaleType == scale.Linear && (mag >= 1e4 || mag < 1e-3) && mag != 0 && !math.IsInf(mag, 0) {
		v, prefix := humanize.ComputeSI(mag)
		if prefix != "" {
			f.factor = math.Pow(10, math.Round(math.Log10(mag/v)))
			f.prefix = prefix
		}
	}
	if s.Custom != nil {
		for _, v := range s.Custom {
			if d := decimals(v / f.factor); d > f.decimals {
				f.decimals = d
			}
		}
	} else {
		f.decimals = decimals(s.Step / f.factor)
	}
	return f
}

// decimals returns the fewest fractional digits that represent x to
// within a small relative error.
func decimals(x float64) int {
	x = math.Abs(x)
	if x == 0 || math.IsInf(x, 0) || math.IsNaN(x) {
		return 0
	}
	for d := 0; d < maxDecimals; d++ {
		y := x * math.Pow(10, float64(d))
		if math.Abs(y-math.Round(y)) <= 1e-6*y {
			return d
		}
	}
	return maxDecimals
}

// Format returns the label for tick value v.
func (f *Formatter) Format(v float64) string {
	switch f.mode {
	case scale.Log:
		return logLabel(v)
	case scale.Time:
		return f.timeLabel(v)
	}
	s := strconv.FormatFloat(v/f.factor, 'f', f.decimals, 64)
	if strings.TrimLeft(s, "-0.") == "" {
		return strings.TrimPrefix(s, "-")
	}
	return s + f.prefix
}

// FormatAll returns the labels for vs.
func (f *Formatter) FormatAll(vs []float64) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = f.Format(v)
	}
	return out
}

// logLabel labels powers of ten and their multiples with SI prefixes
// where one exists.
func logLabel(v float64) string {
	if a := math.Abs(v); a < 1e-24 || a >= 1e27 {
		return strconv.FormatFloat(v, 'g', 3, 64)
	}
	x, prefix := humanize.ComputeSI(v)
	return humanize.Ftoa(x) + prefix
}

var timeLayouts = map[ticks.TimeUnit]string{
	ticks.Years:      "%Y",
	ticks.Months:     "%b %Y",
	ticks.Weeks:      "%b %d",
	ticks.Days:       "%b %d",
	ticks.Hours:      "%H:%M",
	ticks.Minutes:    "%H:%M",
	ticks.Seconds:    "%H:%M:%S",
	ticks.Subseconds: "%H:%M:%S",
}

// timeLabel formats v, in seconds since the Unix epoch, in UTC.
func (f *Formatter) timeLabel(v float64) string {
	if f.unit == ticks.Subseconds {
		// Round before splitting so a carry reaches the seconds.
		p := math.Pow(10, float64(f.decimals))
		v = math.Round(v*p) / p
	}
	sec := math.Floor(v)
	t := time.Unix(int64(sec), int64(math.Round((v-sec)*1e9))).UTC()
	layout := timeLayouts[f.unit]
	if f.unit == ticks.Hours && t.Hour() == 0 && t.Minute() == 0 {
		// Mark day boundaries on hourly axes.
		layout = "%b %d"
	}
	s, err := strftime.Format(layout, t)
	if err != nil {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	if f.unit == ticks.Subseconds && f.decimals > 0 {
		frac := strconv.FormatFloat(v-sec, 'f', f.decimals, 64)
		s += strings.TrimPrefix(frac, "0")
	}
	return s
}
