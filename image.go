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
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/canvas/internal/raster"
)

// DrawImage draws img centred on (x, y), scaled to w×h and rotated by
// rotation degrees around its centre. A width or height of zero
// selects the size of img. Negative sizes mirror the image. The
// current transform is unchanged afterwards.
func (s *Surface) DrawImage(img image.Image, x, y, w, h, rotation float64) *Surface {
	if img == nil {
		return s
	}
	b := img.Bounds()
	if w == 0 || math.IsNaN(w) {
		w = float64(b.Dx())
	}
	if h == 0 || math.IsNaN(h) {
		h = float64(b.Dy())
	}

	s.Save()
	defer s.Restore()
	s.Translate(x, y)
	s.transform(matrix.RotateDeg(rotation))
	s.drawImageRect(img, -w/2, -h/2, w, h)
	return s
}

// DrawCanvas draws the current content of other into the rectangle
// with top left corner (x, y) and size w×h. Later changes to other do
// not affect this surface.
func (s *Surface) DrawCanvas(other *Surface, x, y, w, h float64) *Surface {
	if other == nil || other.Width() == 0 || other.Height() == 0 {
		return s
	}
	s.drawImageRect(other.Image(), x, y, w, h)
	return s
}

// drawImageRect maps the bounds of img onto the user space rectangle
// (x, y, w, h) and composites the result using the current style.
func (s *Surface) drawImageRect(img image.Image, x, y, w, h float64) {
	b := img.Bounds()
	if b.Empty() {
		return
	}
	sx := w / float64(b.Dx())
	sy := h / float64(b.Dy())
	local := matrix.Matrix{sx, 0, 0, sy, x - float64(b.Min.X)*sx, y - float64(b.Min.Y)*sy}
	m := local.Mul(s.ctm)
	det := m[0]*m[3] - m[1]*m[2]
	if det == 0 || !isFinite(det) || !isFinite(m[4]) || !isFinite(m[5]) {
		return
	}

	area := deviceBounds(m, b).Intersect(s.img.Rect)
	if area.Empty() {
		return
	}
	layer := image.NewRGBA(area)
	aff := f64.Aff3{m[0], m[2], m[4], m[1], m[3], m[5]}
	draw.BiLinear.Transform(layer, aff, img, b, draw.Src, nil)

	src := func(x, y int) Color {
		return colorFrom(layer.RGBAAt(x, y))
	}
	ones := make([]float32, area.Dx())
	for i := range ones {
		ones[i] = 1
	}
	s.render(&s.style, src, func(_ *raster.Rasterizer, emit raster.EmitFunc) {
		for y := area.Min.Y; y < area.Max.Y; y++ {
			emit(y, area.Min.X, ones)
		}
	})
}

// deviceBounds returns the pixel rectangle covering the image of b
// under m.
func deviceBounds(m matrix.Matrix, b image.Rectangle) image.Rectangle {
	corners := [4][2]float64{
		{float64(b.Min.X), float64(b.Min.Y)},
		{float64(b.Max.X), float64(b.Min.Y)},
		{float64(b.Min.X), float64(b.Max.Y)},
		{float64(b.Max.X), float64(b.Max.Y)},
	}
	xMin, yMin := math.Inf(1), math.Inf(1)
	xMax, yMax := math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		x := m[0]*c[0] + m[2]*c[1] + m[4]
		y := m[1]*c[0] + m[3]*c[1] + m[5]
		xMin, xMax = min(xMin, x), max(xMax, x)
		yMin, yMax = min(yMin, y), max(yMax, y)
	}
	const limit = 1 << 30
	clamp := func(v float64) int {
		return int(max(-limit, min(limit, v)))
	}
	return image.Rect(
		clamp(math.Floor(xMin)), clamp(math.Floor(yMin)),
		clamp(math.Ceil(xMax)), clamp(math.Ceil(yMax)))
}
