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

package canvas

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/canvas/internal/raster"
)

// coverageFunc runs the rasteriser for one shape.
type coverageFunc func(r *raster.Rasterizer, emit raster.EmitFunc)

// sourceFunc returns the colour painted at device pixel (x, y).
type sourceFunc func(x, y int) Color

func rectFor(size Size) rect.Rect {
	return rect.Rect{URx: float64(size.Width), URy: float64(size.Height)}
}

// rectPath returns a closed rectangle path.
func rectPath(x, y, w, h float64) *path.Data {
	return &path.Data{
		Cmds: []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose},
		Coords: []vec.Vec2{
			{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y + h}, {X: x, Y: y + h},
		},
	}
}

// fillPath fills p with the fill style of st.
func (s *Surface) fillPath(p *path.Data, st *Style, evenOdd bool) {
	s.render(st, s.paintSource(&st.fill, st), func(r *raster.Rasterizer, emit raster.EmitFunc) {
		if evenOdd {
			r.FillEvenOdd(p, emit)
		} else {
			r.FillNonZero(p, emit)
		}
	})
}

// strokePath strokes p with the stroke style and line settings of st.
func (s *Surface) strokePath(p *path.Data, st *Style) {
	s.render(st, s.paintSource(&st.stroke, st), func(r *raster.Rasterizer, emit raster.EmitFunc) {
		r.Width = st.lineWidth
		r.Cap = st.lineCap
		r.Join = st.lineJoin
		r.MiterLimit = st.miterLimit
		r.Stroke(p, emit)
	})
}

// fillDevice fills p, given in device pixels, with the current fill
// style.
func (s *Surface) fillDevice(p *path.Data) {
	ctm := s.ctm
	s.ctm = matrix.Identity
	s.fillPath(p, &s.style, false)
	s.ctm = ctm
}

// paintSource returns the colour source for a fill or stroke style.
// Gradients are evaluated at pixel centres, mapped back to user space.
func (s *Surface) paintSource(p *paint, st *Style) sourceFunc {
	if p.grad == nil {
		c := p.color
		return func(int, int) Color { return c }
	}
	inv, ok := invert(s.ctm)
	if !ok {
		return func(int, int) Color { return Color{} }
	}
	g := p.grad
	return func(x, y int) Color {
		dx, dy := float64(x)+0.5, float64(y)+0.5
		return g.ColorAt(
			inv[0]*dx+inv[2]*dy+inv[4],
			inv[1]*dx+inv[3]*dy+inv[5])
	}
}

// render paints the coverage produced by cover with colours from src,
// using the alpha, shadow and compositing settings of st.
func (s *Surface) render(st *Style, src sourceFunc, cover coverageFunc) {
	w, h := s.Width(), s.Height()
	if w == 0 || h == 0 {
		return
	}
	r := s.ras
	r.Reset(rectFor(s.Size()))
	r.CTM = s.ctm
	r.Flatness = s.opts.flatness

	if !st.hasShadow() {
		cover(r, func(y, xMin int, coverage []float32) {
			row := s.img.Pix[y*s.img.Stride+4*xMin:]
			for i, c := range coverage {
				if c == 0 {
					continue
				}
				col := src(xMin+i, y)
				composite(row[4*i:4*i+4], col, col.A*st.globalAlpha, c, st.blend)
			}
		})
		return
	}

	mask := s.scratch(w * h)
	cover(r, func(y, xMin int, coverage []float32) {
		copy(mask[y*w+xMin:], coverage)
	})
	s.paintShadow(st, mask, src)
	for y := range h {
		row := s.img.Pix[y*s.img.Stride:]
		for x, c := range mask[y*w : (y+1)*w] {
			if c == 0 {
				continue
			}
			col := src(x, y)
			composite(row[4*x:4*x+4], col, col.A*st.globalAlpha, c, st.blend)
		}
	}
}

// scratch returns the zeroed mask buffer with n entries.
func (s *Surface) scratch(n int) []float32 {
	if cap(s.mask) < n {
		s.mask = make([]float32, n)
	}
	s.mask = s.mask[:n]
	clear(s.mask)
	return s.mask
}

// paintShadow paints the shadow of a shape with coverage mask. The
// shadow is the shape's alpha, blurred and offset in device space.
func (s *Surface) paintShadow(st *Style, mask []float32, src sourceFunc) {
	w, h := s.Width(), s.Height()
	if cap(s.tmp) < 2*w*h {
		s.tmp = make([]float32, 2*w*h)
	}
	shadow := s.tmp[:w*h]
	tmp := s.tmp[w*h : 2*w*h]

	for y := range h {
		for x := range w {
			i := y*w + x
			shadow[i] = 0
			if c := mask[i]; c != 0 {
				shadow[i] = c * float32(src(x, y).A)
			}
		}
	}
	// canvas blur levels are twice the standard deviation
	blurMask(shadow, tmp, w, h, st.shadowBlur/2)

	const offsetLimit = 1 << 30
	dx := int(math.Round(max(-offsetLimit, min(offsetLimit, st.shadowOffset.X))))
	dy := int(math.Round(max(-offsetLimit, min(offsetLimit, st.shadowOffset.Y))))
	sc := st.shadowColor.color
	for y := range h {
		sy := y - dy
		if sy < 0 || sy >= h {
			continue
		}
		row := s.img.Pix[y*s.img.Stride:]
		for x := range w {
			sx := x - dx
			if sx < 0 || sx >= w {
				continue
			}
			if c := shadow[sy*w+sx]; c > 0 {
				composite(row[4*x:4*x+4], sc, sc.A*st.globalAlpha, c, st.blend)
			}
		}
	}
}
