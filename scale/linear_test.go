// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"
	"testing"
)

func TestNewRange(t *testing.T) {
	r := NewRange(2, 6)
	if r.Span != 4 || r.InvSpan != 0.25 {
		t.Errorf("NewRange(2, 6) = %+v, want span 4", r)
	}
	if got := r.Norm(3); got != 0.25 {
		t.Errorf("Norm(3) = %v, want 0.25", got)
	}
	if got := r.Denorm(0.5); got != 4 {
		t.Errorf("Denorm(0.5) = %v, want 4", got)
	}

	// Degenerate ranges get a unit span.
	r = NewRange(5, 5)
	if r.Span != 1 || r.InvSpan != 1 {
		t.Errorf("NewRange(5, 5) = %+v, want span 1", r)
	}

	// Reversed ranges are allowed.
	r = NewRange(10, 0)
	if r.Span != -10 {
		t.Errorf("NewRange(10, 0).Span = %v, want -10", r.Span)
	}
}

func TestInRange(t *testing.T) {
	r := NewRange(0, 10)
	for _, test := range []struct {
		x    float64
		want bool
	}{
		{-1, false}, {0, true}, {5, true}, {10, true}, {10.001, false},
		{-1e-16, true},
	} {
		if got := r.InRange(test.x); got != test.want {
			t.Errorf("%+v.InRange(%v) = %v, want %v", r, test.x, got, test.want)
		}
	}

	d := NewRange(3, 3)
	if d.InRange(3) {
		t.Errorf("degenerate range contains its max")
	}
	if !d.InRange(100) {
		t.Errorf("degenerate range does not contain 100")
	}
}

func TestUnitRounding(t *testing.T) {
	if got := UFloor(-0.5, 1); got != -1 {
		t.Errorf("UFloor(-0.5, 1) = %v", got)
	}
	if got := UCeil(97, 10); got != 100 {
		t.Errorf("UCeil(97, 10) = %v", got)
	}
	if got := URound(0.29, 0.1); math.Abs(got-0.3) > 1e-12 {
		t.Errorf("URound(0.29, 0.1) = %v", got)
	}
	if got := UCeil(-0.5, 1); got != 0 || 1/got < 0 {
		t.Errorf("UCeil(-0.5, 1) = %v, want +0", got)
	}
}
