// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command axisdump resolves an axis over a set of data values and
// prints its limits and tick marks.
//
// Data values are read one per line from the named files, or from
// standard input if there are none. Blank lines and lines starting
// with # are ignored.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/aclements/go-axis/axis"
	"github.com/aclements/go-axis/internal/label"
	"github.com/aclements/go-axis/scale"
	"github.com/aclements/go-axis/ticks"
	log "github.com/sirupsen/logrus"
)

func main() {
	var (
		flagConfig  = flag.String("config", "", "read axis configuration from TOML `file`")
		flagScale   = flag.String("scale", "linear", "axis `scale`; one of: linear, log, time")
		flagMin     = flag.Float64("min", math.NaN(), "requested axis minimum")
		flagMax     = flag.Float64("max", math.NaN(), "requested axis maximum")
		flagLoose   = flag.String("loose", "loose", "bound `policy`; one of: tight, loose, always")
		flagMajor   = flag.Int("ticks", 10, "approximate number of major ticks")
		flagMinor   = flag.Int("minor", 2, "minor intervals per major interval")
		flagStep    = flag.Float64("step", 0, "major tick interval, or 0 to choose one")
		flagDumpCfg = flag.Bool("dump-config", false, "print the effective configuration as TOML")
		flagVerbose = flag.Bool("v", false, "log resolution details")
	)
	flag.Parse()
	if *flagVerbose {
		log.SetLevel(log.DebugLevel)
	}

	a := axis.New()
	if *flagConfig != "" {
		c, err := axis.LoadConfig(*flagConfig)
		if err != nil {
			log.Fatal(err)
		}
		if err := c.Apply(a); err != nil {
			log.Fatalf("%s: %v", *flagConfig, err)
		}
	}

	// Flags given explicitly override the configuration file.
	var usageErr error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scale":
			m, ok := scale.ParseMode(*flagScale)
			if !ok {
				usageErr = fmt.Errorf("unknown scale %q", *flagScale)
			}
			a.Scale = m
		case "min":
			a.ReqMin = *flagMin
		case "max":
			a.ReqMax = *flagMax
		case "loose":
			p, ok := ticks.ParsePolicy(*flagLoose)
			if !ok {
				usageErr = fmt.Errorf("unknown policy %q", *flagLoose)
			}
			a.LooseMin, a.LooseMax = p, p
		case "ticks":
			a.ReqMajorTicks = *flagMajor
		case "minor":
			a.ReqMinorTicks = *flagMinor
		case "step":
			a.ReqStep = *flagStep
		}
	})
	if usageErr != nil {
		fmt.Fprintln(os.Stderr, usageErr)
		flag.Usage()
		os.Exit(2)
	}

	if flag.NArg() == 0 {
		if err := readValues(a, os.Stdin); err != nil {
			log.Fatal(err)
		}
	}
	for _, path := range flag.Args() {
		f, err := os.Open(path)
		if err != nil {
			log.Fatal(err)
		}
		err = readValues(a, f)
		f.Close()
		if err != nil {
			log.Fatalf("%s: %v", path, err)
		}
	}

	if _, err := a.Resolve(); err != nil {
		log.Fatal(err)
	}
	if lo, hi, ok := a.DataBounds(); ok {
		log.WithFields(log.Fields{"min": lo, "max": hi}).Debug("data bounds")
	}
	log.WithFields(log.Fields{
		"unit":  a.Major.TimeUnit,
		"step":  a.Major.Step,
		"count": a.Major.NumSteps,
	}).Debug("major sweep")

	if *flagDumpCfg {
		if err := axis.ConfigOf(a).Encode(os.Stdout); err != nil {
			log.Fatal(err)
		}
		fmt.Println()
	}

	lf := label.New(a.Major, a.Min, a.Max)
	fmt.Printf("scale:      %v\n", a.Scale)
	fmt.Printf("limits:     [%v, %v]\n", a.Min, a.Max)
	fmt.Printf("axis range: [%v, %v]\n", a.AxisRange.Min, a.AxisRange.Max)
	fmt.Printf("major:\n")
	for _, v := range a.MajorTicks() {
		fmt.Printf("  %-24v %s\n", v, lf.Format(v))
	}
	if minors := a.MinorTicks(); len(minors) > 0 {
		fmt.Printf("minor:\n")
		for _, v := range minors {
			fmt.Printf("  %v\n", v)
		}
	}
}

func readValues(a *axis.Axis, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		x, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		a.Observe(x)
	}
	return scanner.Err()
}
