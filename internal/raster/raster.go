// seehuhn.de/go/canvas - a fluent 2D drawing surface
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package raster converts paths into anti-aliased pixel coverage.
//
// Paths are given in user space and mapped to device space by the CTM.
// Coverage is delivered one scanline at a time to an emit callback, so
// the caller decides how coverage turns into colour.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of scanline y, starting at pixel xMin.
// The slice is only valid for the duration of the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) top() float64    { return min(e.y0, e.y1) }
func (e *edge) bottom() float64 { return max(e.y0, e.y1) }

// Rasterizer turns paths into coverage values between 0 (outside) and 1
// (inside). Internal buffers are kept between calls, so one Rasterizer
// should be reused for many paths.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space.
	CTM matrix.Matrix

	// Clip bounds the output, in device pixels.
	Clip rect.Rect

	// Flatness is the curve approximation tolerance in device pixels.
	Flatness float64

	// Width is the stroke width in user space.
	Width float64

	// Cap is the style used at the ends of open subpaths.
	Cap graphics.LineCapStyle

	// Join is the style used where two segments meet.
	Join graphics.LineJoinStyle

	// MiterLimit bounds the length of miter joins, relative to Width.
	MiterLimit float64

	cover     []float32
	area      []float32
	edges     []edge
	active    []int
	crossings []float64

	bboxEmpty      bool
	bboxX0, bboxX1 float64
	bboxY0, bboxY1 float64

	// stroke buffers
	points   []vec.Vec2
	subpaths []subpath
	poly     []vec.Vec2
}

// Default parameter values. They match the defaults of an HTML canvas.
const (
	DefaultFlatness   = 0.25
	DefaultMiterLimit = 10.0
)

const (
	horizontalEdgeThreshold = 1e-10
	zeroLengthThreshold     = 1e-10
	collinearThreshold      = 1e-6
)

// NewRasterizer returns a Rasterizer for the given clip rectangle with an
// identity CTM, a line width of 1, butt caps and miter joins.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	r := &Rasterizer{}
	r.Reset(clip)
	return r
}

// Reset restores all parameters to their defaults and sets a new clip
// rectangle. Buffer capacity is kept.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = DefaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = DefaultMiterLimit
}

// FillNonZero fills p using the nonzero winding rule.
func (r *Rasterizer) FillNonZero(p *path.Data, emit EmitFunc) {
	r.beginEdges()
	r.walk(p, r.addEdge)
	r.scan(nonZero, emit)
}

// FillEvenOdd fills p using the even-odd rule.
func (r *Rasterizer) FillEvenOdd(p *path.Data, emit EmitFunc) {
	r.beginEdges()
	r.walk(p, r.addEdge)
	r.scan(evenOdd, emit)
}

type fillRule int

const (
	nonZero fillRule = iota
	evenOdd
)

// walk flattens p and reports every straight segment in user space,
// including the implicit closing segment of closed subpaths.
func (r *Rasterizer) walk(p *path.Data, seg func(a, b vec.Vec2)) {
	if p == nil {
		return
	}
	var cur, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			// filling closes every subpath implicitly
			if cur != start {
				seg(cur, start)
			}
			cur = p.Coords[k]
			start = cur
			k++
		case path.CmdLineTo:
			seg(cur, p.Coords[k])
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(cur, p.Coords[k], p.Coords[k+1], seg)
			cur = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2], seg)
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if cur != start {
				seg(cur, start)
			}
			cur = start
		}
	}
	if cur != start {
		seg(cur, start)
	}
}

// deviceLength returns the length of the linear part of the CTM applied
// to v, used for tolerance checks.
func (r *Rasterizer) deviceLength(v vec.Vec2) float64 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}.Length()
}

func (r *Rasterizer) flatness() float64 {
	if !(r.Flatness > 0) {
		return DefaultFlatness
	}
	return r.Flatness
}

func (r *Rasterizer) flattenQuadratic(p0, p1, p2 vec.Vec2, seg func(a, b vec.Vec2)) {
	dev := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))
	n := 1
	if tol := r.flatness(); dev > tol {
		n = int(math.Ceil(math.Sqrt(dev / tol)))
	}
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		seg(prev, pt)
		prev = pt
	}
}

// flattenCubic uses Wang's formula to choose the number of segments.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, seg func(a, b vec.Vec2)) {
	d1 := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.deviceLength(p1.Sub(p2.Mul(2)).Add(p3))
	n := 1
	if m := max(d1, d2); m > 0 {
		if f := math.Sqrt(3 * m / (4 * r.flatness())); f > 1 {
			n = int(math.Ceil(f))
		}
	}
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		seg(prev, pt)
		prev = pt
	}
}

func (r *Rasterizer) beginEdges() {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
}

// addEdge maps a user space segment to device space and records it.
func (r *Rasterizer) addEdge(p0, p1 vec.Vec2) {
	m := r.CTM
	x0 := m[0]*p0.X + m[2]*p0.Y + m[4]
	y0 := m[1]*p0.X + m[3]*p0.Y + m[5]
	x1 := m[0]*p1.X + m[2]*p1.Y + m[4]
	y1 := m[1]*p1.X + m[3]*p1.Y + m[5]

	if !isFinite(x0) || !isFinite(y0) || !isFinite(x1) || !isFinite(y1) {
		return
	}
	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})

	if r.bboxEmpty {
		r.bboxX0, r.bboxX1 = min(x0, x1), max(x0, x1)
		r.bboxY0, r.bboxY1 = min(y0, y1), max(y0, y1)
		r.bboxEmpty = false
		return
	}
	r.bboxX0 = min(r.bboxX0, x0, x1)
	r.bboxX1 = max(r.bboxX1, x0, x1)
	r.bboxY0 = min(r.bboxY0, y0, y1)
	r.bboxY1 = max(r.bboxY1, y0, y1)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// coordLimit bounds device coordinates before they are converted to
// pixel indices.
const coordLimit = 1 << 30

// pixel returns the index of the pixel column or row containing x.
func pixel(x float64) int {
	return int(math.Floor(max(-coordLimit, min(coordLimit, x))))
}

// bounds returns the pixel range touched by the collected edges,
// clamped to the clip rectangle.
func (r *Rasterizer) bounds() (xMin, xMax, yMin, yMax int, ok bool) {
	if r.bboxEmpty {
		return 0, 0, 0, 0, false
	}
	xMin = max(pixel(r.bboxX0), pixel(r.Clip.LLx))
	xMax = min(pixel(r.bboxX1)+1, pixel(r.Clip.URx))
	yMin = max(pixel(r.bboxY0), pixel(r.Clip.LLy))
	yMax = min(pixel(r.bboxY1)+1, pixel(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// scan runs the active edge list over all scanlines touched by the
// collected edges.
//
// For every pixel two values are accumulated: cover, the signed vertical
// extent of the edges crossing the pixel, and area, the part of that
// extent lying to the right of the crossing. Summing cover from the left
// and adding area gives the signed area of the path inside the pixel.
func (r *Rasterizer) scan(rule fillRule, emit EmitFunc) {
	xMin, xMax, yMin, yMax, ok := r.bounds()
	if !ok {
		return
	}
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.top(), b.top())
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yf, yfNext := float64(y), float64(y+1)

		for next < len(r.edges) && r.edges[next].top() < yfNext {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.bottom() <= yf {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			if r.accumulate(e, y, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		if rule == nonZero {
			integrateNonZero(r.cover, r.area)
		} else {
			integrateEvenOdd(r.cover, r.area)
		}
		if cov, off := trimZeros(r.cover); cov != nil {
			emit(y, xMin+off, cov)
		}
	}
}

// accumulate adds the contribution of e to scanline y. It reports
// whether anything was added.
func (r *Rasterizer) accumulate(e *edge, y, xMin, xMax int) bool {
	yTop := max(float64(y), e.top())
	yBot := min(float64(y+1), e.bottom())
	if yBot <= yTop {
		return false
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xa := e.x0 + e.dxdy*(yTop-e.y0)
	xb := e.x0 + e.dxdy*(yBot-e.y0)
	left, right := min(xa, xb), max(xa, xb)
	pixLeft := pixel(left)
	pixRight := pixel(right)

	if pixLeft >= xMax {
		return false
	}
	if pixRight < xMin {
		// everything to the right is covered
		c := sign * float32(yBot-yTop)
		r.cover[0] += c
		r.area[0] += c
		return true
	}
	if pixLeft == pixRight {
		r.deposit(e, yTop, yBot, sign, pixLeft, xMin, xMax)
		return true
	}

	// split the edge where it crosses vertical pixel boundaries; pieces
	// outside [xMin, xMax) only need to be kept apart from the inside
	r.crossings = append(r.crossings[:0], yTop, yBot)
	dydx := 1 / e.dxdy
	for x := max(pixLeft+1, xMin); x <= min(pixRight, xMax); x++ {
		yx := e.y0 + dydx*(float64(x)-e.x0)
		if yx > yTop && yx < yBot {
			r.crossings = append(r.crossings, yx)
		}
	}
	slices.Sort(r.crossings)
	for i := range len(r.crossings) - 1 {
		y0, y1 := r.crossings[i], r.crossings[i+1]
		if y1 <= y0 {
			continue
		}
		xMid := e.x0 + e.dxdy*((y0+y1)/2-e.y0)
		r.deposit(e, y0, y1, sign, pixel(xMid), xMin, xMax)
	}
	return true
}

// deposit adds the part of e between y0 and y1, which lies inside pixel
// column pix, to the accumulation buffers.
func (r *Rasterizer) deposit(e *edge, y0, y1 float64, sign float32, pix, xMin, xMax int) {
	c := sign * float32(y1-y0)
	switch {
	case pix < xMin:
		r.cover[0] += c
		r.area[0] += c
	case pix < xMax:
		xMid := e.x0 + e.dxdy*((y0+y1)/2-e.y0)
		frac := xMid - float64(pix)
		i := pix - xMin
		r.cover[i] += c
		r.area[i] += c * float32(1-frac)
	}
}

// integrateNonZero turns accumulated cover/area values into coverage,
// in place.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// integrateEvenOdd folds accumulated winding into [0, 1], in place.
func integrateEvenOdd(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		v -= 2 * float32(int(v/2))
		cover[i] = 1 - abs32(1-v)
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// trimZeros strips zero coverage from both ends of a scanline.
func trimZeros(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}
