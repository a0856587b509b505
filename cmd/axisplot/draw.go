// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image/color"

	"github.com/aclements/go-axis/axis"
	"github.com/aclements/go-axis/internal/label"
	"github.com/aclements/go-axis/scale"
)

// Canvas is a drawing surface in pixel coordinates with the origin at
// the top left.
type Canvas interface {
	SetColor(c color.Color)
	Line(x0, y0, x1, y1 float64)
	Polyline(xs, ys []float64)
	ClipRect(x, y, w, h float64)
	ResetClip()
	Text(x, y float64, opts TextOpts, text string)
	Done() error
}

type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

type Baseline int

const (
	BaselineAuto Baseline = iota
	BaselineMiddle
	BaselineHanging
)

type TextOpts struct {
	Anchor   Anchor
	Baseline Baseline
}

type TicksFormat struct {
	tickLen, minorTickLen, textSep float64
	tickColor, gridColor           color.Color
}

// Ticks draws a's ticks and labels along the edge of the plot area at
// pos, which is a y coordinate for horizontal axes and an x
// coordinate for vertical axes. Ticks point away from the plot area.
// If gridColor is set, major ticks also extend across the plot area
// for span pixels.
func (f *TicksFormat) Ticks(c Canvas, a *axis.Axis, vp scale.Viewport, pos, span float64) {
	vp.Crop()
	major, minor := a.MajorTicks(), a.MinorTicks()
	horiz := a.Orientation == scale.Horizontal

	tick := func(v, length float64) {
		p := a.ToScreen(v, vp)
		if horiz {
			c.Line(p, pos, p, pos+length)
		} else {
			c.Line(pos, p, pos-length, p)
		}
	}

	if f.gridColor != nil {
		c.SetColor(f.gridColor)
		for _, v := range major {
			tick(v, -span)
		}
	}
	c.SetColor(f.tickColor)
	for _, v := range major {
		tick(v, f.tickLen)
	}
	for _, v := range minor {
		tick(v, f.minorTickLen)
	}

	lf := label.New(a.Major, a.Min, a.Max)
	for _, v := range major {
		p := a.ToScreen(v, vp)
		if horiz {
			c.Text(p, pos+f.tickLen+f.textSep, TextOpts{Anchor: AnchorMiddle, Baseline: BaselineHanging}, lf.Format(v))
		} else {
			c.Text(pos-f.tickLen-f.textSep, p, TextOpts{Anchor: AnchorEnd, Baseline: BaselineMiddle}, lf.Format(v))
		}
	}
}

// Plot draws the series ys against xs in the rectangle (x, y, w, h),
// framed and with ticks on the left and bottom edges.
func Plot(c Canvas, xa, ya *axis.Axis, xs, ys []float64, x, y, w, h float64) {
	xvp, yvp := scale.NewViewport(x, w), scale.NewViewport(y, h)
	f := &TicksFormat{
		tickLen:      6,
		minorTickLen: 3,
		textSep:      3,
		tickColor:    color.Black,
		gridColor:    color.Gray{Y: 0xe0},
	}
	f.Ticks(c, xa, xvp, y+h, h)
	f.Ticks(c, ya, yvp, x, w)

	c.SetColor(color.Black)
	right, bottom := xvp.Max(), yvp.Max()
	c.Line(x, y, right, y)
	c.Line(right, y, right, bottom)
	c.Line(right, bottom, x, bottom)
	c.Line(x, bottom, x, y)

	c.ClipRect(x, y, w, h)
	c.SetColor(color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff})
	c.Polyline(xa.ToScreenAll(xs, xvp), ya.ToScreenAll(ys, yvp))
	c.ResetClip()
}
