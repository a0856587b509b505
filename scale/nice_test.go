// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"
	"math/rand"
	"sort"
	"testing"
)

func TestNice(t *testing.T) {
	for _, test := range []struct {
		x     float64
		round bool
		want  float64
	}{
		{97, false, 100},
		{100, false, 100},
		{10, true, 10},
		{1, true, 1},
		{1.4, true, 1},
		{1.5, true, 2},
		{2.9, true, 2},
		{3, true, 5},
		{6.9, true, 5},
		{7, true, 10},
		{1.01, false, 2},
		{2, false, 2},
		{2.5, false, 5},
		{5.5, false, 10},
		{0.04, true, 0.05},
		{0.3, false, 0.5},
		{1000, true, 1000},
		{1000, false, 1000},
		{4.3e-7, true, 5e-7},
		{2.1e12, false, 5e12},
	} {
		got := Nice(test.x, test.round)
		if math.Abs(got-test.want) > 1e-12*test.want {
			t.Errorf("Nice(%v, %v) = %v, want %v", test.x, test.round, got, test.want)
		}
	}
}

func TestNiceInvalid(t *testing.T) {
	for _, x := range []float64{0, -1, math.Inf(1), math.NaN()} {
		if got := Nice(x, true); !math.IsNaN(got) {
			t.Errorf("Nice(%v, true) = %v, want NaN", x, got)
		}
	}
}

func TestNiceMonotonic(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	xs := make([]float64, 5000)
	for i := range xs {
		xs[i] = math.Pow(10, r.Float64()*20-10)
	}
	// Include exact powers and mantissa breakpoints.
	for e := -3; e <= 3; e++ {
		for _, f := range []float64{1, 1.5, 2, 3, 5, 7, 10} {
			xs = append(xs, f*math.Pow10(e))
		}
	}
	sort.Float64s(xs)
	for _, round := range []bool{false, true} {
		prev := 0.0
		for _, x := range xs {
			n := Nice(x, round)
			if n < prev {
				t.Fatalf("Nice(%v, %v) = %v, less than %v for a smaller input", x, round, n, prev)
			}
			if !round && n < x*(1-1e-9) {
				t.Errorf("Nice(%v, false) = %v, want >= x", x, n)
			}
			prev = n
		}
	}
}
