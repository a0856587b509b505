// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"
)

// SVG is a canvas that writes an SVG document.
type SVG struct {
	w   io.Writer
	err error

	stroke    string
	lineWidth string
	clipPath  string

	id int
}

func NewSVG(w io.Writer, width, height int) *SVG {
	s := &SVG{w: w}
	s.fprintf("<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" font-family=\"sans-serif\" font-size=\"12\">\n", width, height)
	s.fprintf("<rect width=\"100%%\" height=\"100%%\" fill=\"white\"/>\n")
	s.SetColor(color.Black)
	return s
}

type svglen float64

func (v svglen) String() string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

func colorToCSS(c color.Color) string {
	cc := color.NRGBAModel.Convert(c).(color.NRGBA)
	if cc.A == 0xff {
		return fmt.Sprintf("rgb(%d,%d,%d)", cc.R, cc.G, cc.B)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%f)", cc.R, cc.G, cc.B, float64(cc.A)/0xff)
}

func (s *SVG) fprintf(format string, a ...interface{}) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, a...)
}

func (s *SVG) SetColor(c color.Color) {
	s.stroke = colorToCSS(c)
}

func (s *SVG) SetLineWidth(lw float64) {
	s.lineWidth = fmt.Sprintf("stroke-width:%v", svglen(lw))
}

func style(parts ...string) string {
	val, sep := "", ""
	for _, part := range parts {
		if part != "" {
			val += sep + part
			sep = ";"
		}
	}
	if val == "" {
		return ""
	}
	return " style=\"" + val + "\""
}

func (s *SVG) Line(x0, y0, x1, y1 float64) {
	s.fprintf("<path d=\"M%v %vL%v %v\"%s/>\n", svglen(x0), svglen(y0), svglen(x1), svglen(y1),
		style("fill:none", "stroke:"+s.stroke, s.lineWidth, s.clipPath))
}

func (s *SVG) Polyline(xs, ys []float64) {
	if len(xs) == 0 {
		return
	}
	path := make([]string, len(xs))
	for i := range xs {
		op := "L"
		if i == 0 {
			op = "M"
		}
		path[i] = fmt.Sprintf("%s%v %v", op, svglen(xs[i]), svglen(ys[i]))
	}
	s.fprintf("<path d=\"%s\"%s/>\n", strings.Join(path, ""),
		style("fill:none", "stroke:"+s.stroke, s.lineWidth, s.clipPath))
}

// ClipRect limits subsequent lines to the given rectangle.
func (s *SVG) ClipRect(x, y, w, h float64) {
	s.fprintf("<clipPath id=\"i%d\"><rect x=\"%v\" y=\"%v\" width=\"%v\" height=\"%v\"/></clipPath>\n",
		s.id, svglen(x), svglen(y), svglen(w), svglen(h))
	s.clipPath = fmt.Sprintf("clip-path:url(#i%d)", s.id)
	s.id++
}

func (s *SVG) ResetClip() {
	s.clipPath = ""
}

func (s *SVG) Text(x, y float64, opts TextOpts, text string) {
	astr := map[Anchor]string{
		AnchorStart:  "",
		AnchorMiddle: " text-anchor=\"middle\"",
		AnchorEnd:    " text-anchor=\"end\"",
	}[opts.Anchor]
	bstr := map[Baseline]string{
		BaselineAuto:    "",
		BaselineMiddle:  " dominant-baseline=\"middle\"",
		BaselineHanging: " dominant-baseline=\"hanging\"",
	}[opts.Baseline]
	s.fprintf("<text x=\"%v\" y=\"%v\"%s%s fill=\"%s\">", svglen(x), svglen(y), astr, bstr, s.stroke)
	if s.err == nil {
		s.err = xml.EscapeText(s.w, []byte(text))
	}
	s.fprintf("</text>\n")
}

func (s *SVG) Done() error {
	s.fprintf("</svg>\n")
	return s.err
}
