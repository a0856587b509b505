// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "fmt"

// Mode is the kind of scale an axis uses. It determines both the
// tick generator and the transform between data values and the
// axis's internal coordinate space.
type Mode int

const (
	Linear Mode = iota
	Log
	Time
)

func (m Mode) String() string {
	switch m {
	case Linear:
		return "linear"
	case Log:
		return "log"
	case Time:
		return "time"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode returns the Mode named by s, as returned by Mode.String.
func ParseMode(s string) (Mode, bool) {
	for _, m := range []Mode{Linear, Log, Time} {
		if m.String() == s {
			return m, true
		}
	}
	return 0, false
}

// Transform maps x from the data domain into the axis's internal
// space. For Log scales this is log10(|x|), with 0 mapping to 0. For
// Linear and Time scales it is the identity.
func (m Mode) Transform(x float64) float64 {
	if m == Log {
		return Log10(x)
	}
	return x
}

// Untransform is the inverse of Transform.
func (m Mode) Untransform(y float64) float64 {
	if m == Log {
		return Exp10(y)
	}
	return y
}

// Orientation selects between the two viewport conventions. On a
// Horizontal axis, increasing values map to increasing coordinates.
// On a Vertical axis, coordinates grow downward, so increasing values
// map to decreasing coordinates.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}
