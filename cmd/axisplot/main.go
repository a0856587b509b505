// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command axisplot draws a sample function on a pair of axes as SVG
// or PNG. It exercises the axis package end to end: data collection,
// range fixing, tick generation, labeling, and screen mapping.
//
// The output format is chosen by the extension of the -o file.
//
// For example, to plot an exponential on a log y axis:
//
//	axisplot -f exp -y log -xlo 0 -xhi 20 -o exp.svg
//
// Axis settings may also be read from TOML files with -xconfig and
// -yconfig. See axis.Config for the keys.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aclements/go-axis/axis"
	"github.com/aclements/go-axis/scale"
	"github.com/aclements/go-moremath/vec"
	log "github.com/sirupsen/logrus"
)

var funcs = map[string]func(float64) float64{
	"line":   func(x float64) float64 { return x },
	"square": func(x float64) float64 { return x * x },
	"exp":    math.Exp,
	"sqrt":   math.Sqrt,
	"sin":    math.Sin,
}

func main() {
	var (
		flagOut     = flag.String("o", "plot.svg", "write plot to `file` (.svg or .png)")
		flagWidth   = flag.Int("w", 640, "output width")
		flagHeight  = flag.Int("h", 480, "output height")
		flagFunc    = flag.String("f", "line", "`function` to plot; one of: "+strings.Join(funcNames(), ", "))
		flagN       = flag.Int("n", 200, "number of samples")
		flagXLo     = flag.Float64("xlo", 0, "first x value")
		flagXHi     = flag.Float64("xhi", 10, "last x value")
		flagXScale  = flag.String("x", "linear", "x axis `scale`")
		flagYScale  = flag.String("y", "linear", "y axis `scale`")
		flagXConfig = flag.String("xconfig", "", "read x axis configuration from TOML `file`")
		flagYConfig = flag.String("yconfig", "", "read y axis configuration from TOML `file`")
	)
	flag.Parse()
	fn, ok := funcs[*flagFunc]
	if flag.NArg() > 0 || !ok || *flagN < 2 {
		flag.Usage()
		os.Exit(1)
	}

	xa, err := newAxis(*flagXScale, *flagXConfig, scale.Horizontal)
	if err != nil {
		log.Fatal(err)
	}
	ya, err := newAxis(*flagYScale, *flagYConfig, scale.Vertical)
	if err != nil {
		log.Fatal(err)
	}

	var xs []float64
	if xa.Scale == scale.Log {
		if *flagXLo <= 0 || *flagXHi <= 0 {
			log.Fatal("log x axis requires positive -xlo and -xhi")
		}
		xs = vec.Logspace(math.Log10(*flagXLo), math.Log10(*flagXHi), *flagN, 10)
	} else {
		xs = vec.Linspace(*flagXLo, *flagXHi, *flagN)
	}
	ys := vec.Map(fn, xs)

	xa.ObserveAll(xs)
	ya.ObserveAll(ys)
	for _, a := range []*axis.Axis{xa, ya} {
		if _, err := a.Resolve(); err != nil {
			log.Fatal(err)
		}
		log.WithFields(log.Fields{
			"orientation": a.Orientation,
			"scale":       a.Scale,
			"min":         a.Min,
			"max":         a.Max,
			"majors":      len(a.MajorTicks()),
		}).Debug("resolved axis")
	}

	f, err := os.Create(*flagOut)
	if err != nil {
		log.Fatal(err)
	}
	bw := bufio.NewWriter(f)
	var c Canvas
	switch ext := strings.ToLower(filepath.Ext(*flagOut)); ext {
	case ".svg":
		c = NewSVG(bw, *flagWidth, *flagHeight)
	case ".png":
		c, err = NewPNG(bw, *flagWidth, *flagHeight)
		if err != nil {
			log.Fatal(err)
		}
	default:
		log.Fatalf("unknown output format %q", ext)
	}

	const left, right, top, bottom = 80, 20, 20, 40
	Plot(c, xa, ya, xs, ys, left, top,
		float64(*flagWidth-left-right), float64(*flagHeight-top-bottom))

	if err := c.Done(); err != nil {
		log.Fatal(err)
	}
	if err := bw.Flush(); err != nil {
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
}

func newAxis(mode, config string, o scale.Orientation) (*axis.Axis, error) {
	a := axis.New()
	a.Orientation = o
	m, ok := scale.ParseMode(mode)
	if !ok {
		return nil, fmt.Errorf("unknown scale %q", mode)
	}
	a.Scale = m
	if config != "" {
		c, err := axis.LoadConfig(config)
		if err != nil {
			return nil, err
		}
		if err := c.Apply(a); err != nil {
			return nil, fmt.Errorf("%s: %w", config, err)
		}
	}
	return a, nil
}

func funcNames() []string {
	var names []string
	for name := range funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
