// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// PNG is a canvas that rasterizes to an image and encodes it as PNG.
type PNG struct {
	w    io.Writer
	img  *image.NRGBA
	col  color.Color
	face font.Face
	clip image.Rectangle
}

func NewPNG(w io.Writer, width, height int) (*PNG, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return &PNG{
		w:    w,
		img:  img,
		col:  color.Black,
		face: truetype.NewFace(f, &truetype.Options{Size: 12, DPI: 72, Hinting: font.HintingFull}),
		clip: img.Bounds(),
	}, nil
}

func (p *PNG) SetColor(c color.Color) {
	p.col = c
}

func (p *PNG) set(x, y int) {
	if image.Pt(x, y).In(p.clip) {
		p.img.Set(x, y, p.col)
	}
}

// Line draws a one pixel wide line by stepping along its longer
// dimension.
func (p *PNG) Line(x0, y0, x1, y1 float64) {
	dx, dy := x1-x0, y1-y0
	n := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if n == 0 {
		p.set(int(x0), int(y0))
		return
	}
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		p.set(int(math.Round(x0+t*dx)), int(math.Round(y0+t*dy)))
	}
}

func (p *PNG) Polyline(xs, ys []float64) {
	for i := 1; i < len(xs); i++ {
		p.Line(xs[i-1], ys[i-1], xs[i], ys[i])
	}
}

func (p *PNG) ClipRect(x, y, w, h float64) {
	r := image.Rect(int(math.Floor(x)), int(math.Floor(y)), int(math.Ceil(x+w))+1, int(math.Ceil(y+h))+1)
	p.clip = r.Intersect(p.img.Bounds())
}

func (p *PNG) ResetClip() {
	p.clip = p.img.Bounds()
}

func (p *PNG) Text(x, y float64, opts TextOpts, text string) {
	d := &font.Drawer{Dst: p.img, Src: image.NewUniform(p.col), Face: p.face}
	adv := d.MeasureString(text)
	switch opts.Anchor {
	case AnchorMiddle:
		x -= float64(adv) / 64 / 2
	case AnchorEnd:
		x -= float64(adv) / 64
	}
	m := p.face.Metrics()
	switch opts.Baseline {
	case BaselineMiddle:
		y += float64(m.Ascent-m.Descent) / 64 / 2
	case BaselineHanging:
		y += float64(m.Ascent) / 64
	}
	d.Dot = fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
	d.DrawString(text)
}

func (p *PNG) Done() error {
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	return enc.Encode(p.w, p.img)
}
