// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/aclements/go-axis/scale"
	"github.com/aclements/go-axis/ticks"
)

// Config is the TOML form of an axis's configuration. For example:
//
//	scale = "log"
//	min = 1.0
//	loose = "always"
//	minor-ticks = 0
//
// Keys that are absent leave the corresponding Axis field alone. In a
// Config built in Go, nil pointers, nil slices, and empty strings are
// absent; any other value, including zero, is applied.
type Config struct {
	Scale       string    `toml:"scale,omitempty"`
	Orientation string    `toml:"orientation,omitempty"`
	Decreasing  *bool     `toml:"decreasing"`
	Min         *float64  `toml:"min"`
	Max         *float64  `toml:"max"`
	Loose       string    `toml:"loose,omitempty"`
	LooseMin    string    `toml:"loose-min,omitempty"`
	LooseMax    string    `toml:"loose-max,omitempty"`
	MajorTicks  *int      `toml:"major-ticks"`
	MinorTicks  *int      `toml:"minor-ticks"`
	Step        *float64  `toml:"step"`
	MajorValues []float64 `toml:"major-values,omitempty"`
	MinorValues []float64 `toml:"minor-values,omitempty"`
	WindowSize  *float64  `toml:"window-size"`
	ShiftBy     *float64  `toml:"shift-by"`
	ScrollMin   *float64  `toml:"scroll-min"`
	ScrollMax   *float64  `toml:"scroll-max"`
	ScrollUnit  *float64  `toml:"scroll-unit"`
	WeekStart   string    `toml:"week-start,omitempty"`
}

// A ConfigError reports an invalid key or value in a Config.
type ConfigError struct {
	Key string
	Msg string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("axis config: %s: %s", e.Key, e.Msg)
}

// DecodeConfig reads a TOML axis configuration from r.
func DecodeConfig(r io.Reader) (*Config, error) {
	c := new(Config)
	md, err := toml.DecodeReader(r, c)
	if err != nil {
		return nil, fmt.Errorf("axis config: %w", err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return nil, &ConfigError{undec[0].String(), "unknown key"}
	}
	return c, nil
}

// LoadConfig reads a TOML axis configuration from the named file.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// ConfigOf returns the configuration of a.
func ConfigOf(a *Axis) *Config {
	c := &Config{
		Scale:       a.Scale.String(),
		Orientation: a.Orientation.String(),
		Decreasing:  ref(a.Decreasing),
		Min:         optional(a.ReqMin),
		Max:         optional(a.ReqMax),
		LooseMin:    a.LooseMin.String(),
		LooseMax:    a.LooseMax.String(),
		MajorTicks:  ref(a.ReqMajorTicks),
		MinorTicks:  ref(a.ReqMinorTicks),
		Step:        ref(a.ReqStep),
		MajorValues: a.MajorValues,
		MinorValues: a.MinorValues,
		WindowSize:  ref(a.WindowSize),
		ShiftBy:     ref(a.ShiftBy),
		ScrollMin:   optional(a.ScrollMin),
		ScrollMax:   optional(a.ScrollMax),
		ScrollUnit:  ref(a.ScrollUnit),
		WeekStart:   a.WeekStart.String(),
	}
	return c
}

func optional(x float64) *float64 {
	if math.IsNaN(x) {
		return nil
	}
	return &x
}

func ref[T any](v T) *T {
	return &v
}

// Encode writes c to w as TOML.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Apply sets the fields of a named by c. It validates all of c before
// changing a, so on error a is unchanged.
func (c *Config) Apply(a *Axis) error {
	b := *a
	if c.Scale != "" {
		m, ok := scale.ParseMode(c.Scale)
		if !ok {
			return &ConfigError{"scale", fmt.Sprintf("unknown scale %q", c.Scale)}
		}
		b.Scale = m
	}
	if c.Orientation != "" {
		switch c.Orientation {
		case "horizontal", "x":
			b.Orientation = scale.Horizontal
		case "vertical", "y":
			b.Orientation = scale.Vertical
		default:
			return &ConfigError{"orientation", fmt.Sprintf("unknown orientation %q", c.Orientation)}
		}
	}
	if c.Decreasing != nil {
		b.Decreasing = *c.Decreasing
	}
	if c.Min != nil {
		b.ReqMin = *c.Min
	}
	if c.Max != nil {
		b.ReqMax = *c.Max
	}
	for _, p := range []struct {
		key  string
		val  string
		dest []*ticks.Policy
	}{
		{"loose", c.Loose, []*ticks.Policy{&b.LooseMin, &b.LooseMax}},
		{"loose-min", c.LooseMin, []*ticks.Policy{&b.LooseMin}},
		{"loose-max", c.LooseMax, []*ticks.Policy{&b.LooseMax}},
	} {
		if p.val == "" {
			continue
		}
		pol, ok := ticks.ParsePolicy(p.val)
		if !ok {
			return &ConfigError{p.key, fmt.Sprintf("unknown policy %q (want tight, loose, or always)", p.val)}
		}
		for _, d := range p.dest {
			*d = pol
		}
	}
	if c.MajorTicks != nil {
		if *c.MajorTicks < 1 {
			return &ConfigError{"major-ticks", fmt.Sprintf("%d is not positive", *c.MajorTicks)}
		}
		b.ReqMajorTicks = *c.MajorTicks
	}
	if c.MinorTicks != nil {
		if *c.MinorTicks < 0 {
			return &ConfigError{"minor-ticks", fmt.Sprintf("%d is negative", *c.MinorTicks)}
		}
		b.ReqMinorTicks = *c.MinorTicks
	}
	if c.Step != nil {
		if *c.Step < 0 {
			return &ConfigError{"step", fmt.Sprintf("%v is negative", *c.Step)}
		}
		b.ReqStep = *c.Step
	}
	if c.MajorValues != nil {
		b.MajorValues = c.MajorValues
	}
	if c.MinorValues != nil {
		for _, f := range c.MinorValues {
			if !(f > 0 && f < 1) {
				return &ConfigError{"minor-values", fmt.Sprintf("%v is not a fraction in (0, 1)", f)}
			}
		}
		b.MinorValues = c.MinorValues
	}
	if c.WindowSize != nil {
		b.WindowSize = *c.WindowSize
	}
	if c.ShiftBy != nil {
		b.ShiftBy = *c.ShiftBy
	}
	if c.ScrollMin != nil {
		b.ScrollMin = *c.ScrollMin
	}
	if c.ScrollMax != nil {
		b.ScrollMax = *c.ScrollMax
	}
	if c.ScrollUnit != nil {
		if !(*c.ScrollUnit > 0) {
			return &ConfigError{"scroll-unit", fmt.Sprintf("%v is not positive", *c.ScrollUnit)}
		}
		b.ScrollUnit = *c.ScrollUnit
	}
	if c.WeekStart != "" {
		wd, ok := parseWeekday(c.WeekStart)
		if !ok {
			return &ConfigError{"week-start", fmt.Sprintf("unknown weekday %q", c.WeekStart)}
		}
		b.WeekStart = wd
	}
	*a = b
	return nil
}

func parseWeekday(s string) (time.Weekday, bool) {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		name := wd.String()
		if strings.EqualFold(s, name) || strings.EqualFold(s, name[:3]) {
			return wd, true
		}
	}
	return 0, false
}
