// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewport

import (
	"math"
	"testing"

	"github.com/aclements/go-axis/scale"
)

var nan = math.NaN()

func auto(min, max float64) Request {
	return Request{ValueMin: min, ValueMax: max, HaveData: true, ReqMin: nan, ReqMax: nan}
}

func TestFixRange(t *testing.T) {
	logReq := func(r Request) Request {
		r.Log = true
		return r
	}
	reqs := func(r Request, min, max float64) Request {
		r.ReqMin, r.ReqMax = min, max
		return r
	}
	window := func(r Request, size, shift float64) Request {
		r.WindowSize, r.ShiftBy = size, shift
		return r
	}

	for _, test := range []struct {
		name string
		req  Request
		want Bounds
	}{
		{"plain", auto(3, 97), Bounds{3, 97}},
		{"degenerate", auto(5, 5), Bounds{4.5, 5.5}},
		{"degenerate zero", auto(0, 0), Bounds{-0.5, 0.5}},
		{"degenerate negative", auto(-10, -10), Bounds{-11, -9}},
		{"no data", Request{ReqMin: nan, ReqMax: nan}, Bounds{0, 1}},
		{"no data log", Request{ReqMin: nan, ReqMax: nan, Log: true}, Bounds{0.001, 1}},
		{"no data request", Request{ReqMin: 2, ReqMax: 8}, Bounds{2, 8}},
		{"no data min request", Request{ReqMin: 5, ReqMax: nan}, Bounds{5, 5.5}},
		{"requests", reqs(auto(0, 100), 10, 20), Bounds{10, 20}},
		{"inverted request", reqs(auto(0, 100), 10, 5), Bounds{0, 100}},
		{"equal request", reqs(auto(0, 100), 10, 10), Bounds{0, 100}},
		{"min beyond data", reqs(auto(0, 10), 20, nan), Bounds{20, 22}},
		{"max beyond data", reqs(auto(0, 10), nan, -5), Bounds{-5.5, -5}},
		{"log non-positive", logReq(reqs(auto(1, 100), -1, nan)), Bounds{1, 100}},
		{"log zero max", logReq(reqs(auto(1, 100), nan, 0)), Bounds{1, 100}},
		{"infinite request", reqs(auto(1, 100), math.Inf(-1), nan), Bounds{1, 100}},
		{"infinite data", Request{ValueMin: 0, ValueMax: math.Inf(1), HaveData: true, ReqMin: nan, ReqMax: nan}, Bounds{0, 1}},
		{"window", window(auto(0, 1000), 60, 10), Bounds{940, 1000}},
		{"window shift", window(auto(0, 995), 60, 10), Bounds{940, 1000}},
		{"window no shift", window(auto(0, 995), 60, 0), Bounds{935, 995}},
		{"window negative shift", window(auto(0, 995), 60, -10), Bounds{935, 995}},
		{"window wider than data", window(auto(0, 30), 60, 10), Bounds{0, 60}},
		{"window with request", window(reqs(auto(0, 1000), nan, 500), 60, 10), Bounds{0, 500}},
	} {
		got := FixRange(test.req, Bounds{})
		if got.Bounds != test.want {
			t.Errorf("%s: FixRange(%+v) = %v, want %v", test.name, test.req, got.Bounds, test.want)
		}
		if !(got.Min < got.Max) {
			t.Errorf("%s: FixRange(%+v) = %v is empty", test.name, test.req, got.Bounds)
		}
	}
}

func TestFixRangeDiscard(t *testing.T) {
	req := auto(0, 100)
	req.ReqMin, req.ReqMax = 10, 5
	res := FixRange(req, Bounds{})
	if !res.DiscardedMin || !res.DiscardedMax || res.MinOverride || res.MaxOverride {
		t.Errorf("inverted request: got %+v, want both discarded", res)
	}

	req.ReqMin, req.ReqMax, req.Log = -1, 50, true
	res = FixRange(req, Bounds{})
	if !res.DiscardedMin || res.DiscardedMax || !res.MaxOverride {
		t.Errorf("non-positive log request: got %+v, want only min discarded", res)
	}
	if res.Bounds != (Bounds{0, 50}) {
		t.Errorf("non-positive log request: bounds %v, want {0 50}", res.Bounds)
	}
}

func TestFixRangeDirty(t *testing.T) {
	req := auto(5, 5)
	first := FixRange(req, Bounds{nan, nan})
	if !first.Dirty {
		t.Errorf("first FixRange not dirty")
	}
	second := FixRange(req, first.Bounds)
	if second.Dirty || second.Bounds != first.Bounds {
		t.Errorf("second FixRange = %+v, want %v and clean", second, first.Bounds)
	}
	req.ValueMax = 6
	if third := FixRange(req, second.Bounds); !third.Dirty {
		t.Errorf("FixRange after data change not dirty")
	}
}

func TestAdjustViewport(t *testing.T) {
	for _, test := range []struct {
		offset, size, want float64
	}{
		{0.5, 0.3, 0.5},
		{0.8, 0.3, 0.7},
		{-0.1, 0.3, 0},
		{0, 1, 0},
		{0.2, 2, 0},
		{-2, 2, -1},
		{-0.5, 2, -0.5},
	} {
		if got := AdjustViewport(test.offset, test.size); math.Abs(got-test.want) > 1e-12 {
			t.Errorf("AdjustViewport(%v, %v) = %v, want %v", test.offset, test.size, got, test.want)
		}
	}
}

func near(a, b Bounds) bool {
	const eps = 1e-9
	return math.Abs(a.Min-b.Min) <= eps*math.Max(1, math.Abs(b.Min)) &&
		math.Abs(a.Max-b.Max) <= eps*math.Max(1, math.Abs(b.Max))
}

func TestScroll(t *testing.T) {
	s := NewScroll(Bounds{0, 100}, nan, nan, Bounds{20, 40}, scale.Linear, scale.Horizontal, false)
	if first, last := s.Fractions(); math.Abs(first-0.2) > 1e-12 || math.Abs(last-0.4) > 1e-12 {
		t.Errorf("Fractions() = %v, %v, want 0.2, 0.4", first, last)
	}
	for _, test := range []struct {
		name string
		got  Bounds
		want Bounds
	}{
		{"MoveTo(0.5)", s.MoveTo(0.5), Bounds{50, 70}},
		{"MoveTo(0.9)", s.MoveTo(0.9), Bounds{80, 100}},
		{"MoveTo(-1)", s.MoveTo(-1), Bounds{0, 20}},
		{"ScrollPages(1)", s.ScrollPages(1), Bounds{40, 60}},
		{"ScrollUnits(-1)", s.ScrollUnits(-1, 0.1), Bounds{10, 30}},
	} {
		if !near(test.got, test.want) {
			t.Errorf("%s = %v, want %v", test.name, test.got, test.want)
		}
	}

	// Vertical axes scroll from the top, which is the maximum.
	v := NewScroll(Bounds{0, 100}, nan, nan, Bounds{20, 40}, scale.Linear, scale.Vertical, false)
	if first, last := v.Fractions(); math.Abs(first-0.6) > 1e-12 || math.Abs(last-0.8) > 1e-12 {
		t.Errorf("vertical Fractions() = %v, %v, want 0.6, 0.8", first, last)
	}
	if got := v.MoveTo(0); !near(got, Bounds{80, 100}) {
		t.Errorf("vertical MoveTo(0) = %v, want {80 100}", got)
	}
	// Unless they are decreasing.
	vd := NewScroll(Bounds{0, 100}, nan, nan, Bounds{20, 40}, scale.Linear, scale.Vertical, true)
	if first, _ := vd.Fractions(); math.Abs(first-0.2) > 1e-12 {
		t.Errorf("decreasing vertical first fraction = %v, want 0.2", first)
	}
}

func TestScrollRegion(t *testing.T) {
	s := NewScroll(Bounds{0, 100}, nan, 200, Bounds{-50, 50}, scale.Linear, scale.Horizontal, false)
	if s.World != (Bounds{0, 200}) || s.View != (Bounds{0, 50}) {
		t.Errorf("NewScroll = %+v, want world {0 200} and view clipped to {0 50}", s)
	}
	if first, last := s.Fractions(); first != 0 || last != 0.25 {
		t.Errorf("Fractions() = %v, %v, want 0, 0.25", first, last)
	}

	// An empty region cannot scroll.
	e := NewScroll(Bounds{5, 5}, nan, nan, Bounds{5, 5}, scale.Linear, scale.Horizontal, false)
	if first, last := e.Fractions(); first != 0 || last != 1 {
		t.Errorf("empty Fractions() = %v, %v, want 0, 1", first, last)
	}
	if got := e.MoveTo(0.5); got != (Bounds{5, 5}) {
		t.Errorf("empty MoveTo = %v, want {5 5}", got)
	}
}

func TestScrollLog(t *testing.T) {
	s := NewScroll(Bounds{1, 1e4}, nan, nan, Bounds{10, 100}, scale.Log, scale.Horizontal, false)
	if first, last := s.Fractions(); math.Abs(first-0.25) > 1e-12 || math.Abs(last-0.5) > 1e-12 {
		t.Errorf("Fractions() = %v, %v, want 0.25, 0.5", first, last)
	}
	if got := s.MoveTo(0.5); !near(got, Bounds{100, 1000}) {
		t.Errorf("MoveTo(0.5) = %v, want {100 1000}", got)
	}
}

func TestZoom(t *testing.T) {
	if got := Zoom(Bounds{0, 100}, 2, 50, scale.Linear); !near(got, Bounds{25, 75}) {
		t.Errorf("Zoom in = %v, want {25 75}", got)
	}
	if got := Zoom(Bounds{0, 100}, 0.5, 0, scale.Linear); !near(got, Bounds{0, 200}) {
		t.Errorf("Zoom out = %v, want {0 200}", got)
	}
	if got := Zoom(Bounds{1, 1e4}, 2, 100, scale.Log); !near(got, Bounds{10, 1000}) {
		t.Errorf("log Zoom = %v, want {10 1000}", got)
	}
	for _, f := range []float64{0, -1, nan, math.Inf(1)} {
		if got := Zoom(Bounds{0, 100}, f, 50, scale.Linear); got != (Bounds{0, 100}) {
			t.Errorf("Zoom by %v = %v, want unchanged", f, got)
		}
	}
}
