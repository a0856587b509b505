// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/aclements/go-axis/axis"
	"github.com/aclements/go-axis/internal/label"
	"github.com/aclements/go-axis/scale"
	"github.com/aclements/go-axis/ticks"
	log "github.com/sirupsen/logrus"
)

const defaultLen = 500

type ticksHandler struct {
	base *axis.Config
}

// ticksReply is the JSON form of a resolved axis. The X slices are
// screen coordinates of the corresponding ticks.
type ticksReply struct {
	Scale            string
	Min, Max         float64
	AxisMin, AxisMax float64
	TimeUnit         string `json:",omitempty"`

	MajorTicks, MajorTicksX []float64
	MajorLabels             []string
	MinorTicks, MinorTicksX []float64
}

func (h *ticksHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	qs, err := url.ParseQuery(req.URL.RawQuery)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	a := axis.New()
	if err := h.base.Apply(a); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if req.Method == http.MethodPost {
		c, err := axis.DecodeConfig(req.Body)
		if err == nil {
			err = c.Apply(a)
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	length, err := applyQuery(a, qs)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := a.Resolve(); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	vp := scale.NewViewport(0, length)
	major, minor := a.MajorTicks(), a.MinorTicks()
	reply := ticksReply{
		Scale:       a.Scale.String(),
		Min:         a.Min,
		Max:         a.Max,
		AxisMin:     a.AxisRange.Min,
		AxisMax:     a.AxisRange.Max,
		MajorTicks:  major,
		MajorTicksX: a.ToScreenAll(major, vp),
		MajorLabels: label.New(a.Major, a.Min, a.Max).FormatAll(major),
		MinorTicks:  minor,
		MinorTicksX: a.ToScreenAll(minor, vp),
	}
	if a.Scale == scale.Time {
		reply.TimeUnit = a.Major.TimeUnit.String()
	}
	log.WithFields(log.Fields{
		"scale":  reply.Scale,
		"min":    reply.Min,
		"max":    reply.Max,
		"majors": len(major),
	}).Debug("ticks")

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(reply); err != nil {
		log.Print(err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// applyQuery sets the fields of a named by the query qs and observes
// its data. It returns the requested axis length in pixels.
func applyQuery(a *axis.Axis, qs url.Values) (float64, error) {
	num := func(key string) (float64, bool, error) {
		s := qs.Get(key)
		if s == "" {
			return 0, false, nil
		}
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false, fmt.Errorf("bad %s: %w", key, err)
		}
		return x, true, nil
	}

	if s := qs.Get("scale"); s != "" {
		m, ok := scale.ParseMode(s)
		if !ok {
			return 0, fmt.Errorf("unknown scale %q", s)
		}
		a.Scale = m
	}
	if s := qs.Get("loose"); s != "" {
		p, ok := ticks.ParsePolicy(s)
		if !ok {
			return 0, fmt.Errorf("unknown policy %q", s)
		}
		a.LooseMin, a.LooseMax = p, p
	}
	for _, f := range []struct {
		key string
		set func(float64)
	}{
		{"min", func(x float64) { a.ReqMin = x }},
		{"max", func(x float64) { a.ReqMax = x }},
		{"ticks", func(x float64) { a.ReqMajorTicks = int(x) }},
		{"minor", func(x float64) { a.ReqMinorTicks = int(x) }},
		{"step", func(x float64) { a.ReqStep = x }},
	} {
		x, ok, err := num(f.key)
		if err != nil {
			return 0, err
		}
		if ok {
			f.set(x)
		}
	}

	length := float64(defaultLen)
	if x, ok, err := num("len"); err != nil {
		return 0, err
	} else if ok {
		if !(x > 0) {
			return 0, fmt.Errorf("bad len %v", x)
		}
		length = x
	}

	if s := qs.Get("data"); s != "" {
		for _, field := range strings.Split(s, ",") {
			x, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return 0, fmt.Errorf("bad data: %w", err)
			}
			a.Observe(x)
		}
	}
	return length, nil
}

type configHandler struct {
	base *axis.Config
}

func (h *configHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	a := axis.New()
	if err := h.base.Apply(a); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/toml")
	if err := axis.ConfigOf(a).Encode(w); err != nil {
		log.Print(err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
