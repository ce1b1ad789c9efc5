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

import "math"

// ReadPixels returns the pixels of the surface in row-major order,
// starting at the top left corner. The result is also kept as the read
// cache used by ReadPixelAt. Drawing does not update the cache.
func (s *Surface) ReadPixels() []Pixel {
	w, h := s.Width(), s.Height()
	pixels := make([]Pixel, w*h)
	for y := range h {
		row := s.img.Pix[y*s.img.Stride : y*s.img.Stride+4*w]
		for x := range w {
			pixels[y*w+x] = Pixel{R: row[4*x], G: row[4*x+1], B: row[4*x+2], A: row[4*x+3]}
		}
	}
	s.cache = pixels
	return pixels
}

// ReadPixelAt returns the pixel at (x, y). The coordinates are rounded
// down and combined into the index x + y·width. If the index lies
// outside the surface, ok is false. Negative x or x ≥ width therefore
// address a pixel in a neighbouring row.
//
// If useCache is set and pixels have been read before, the cached
// pixels are used, even if the surface has been drawn to since.
// Otherwise the pixels are read afresh.
func (s *Surface) ReadPixelAt(x, y float64, useCache bool) (pixel Pixel, ok bool) {
	if !useCache || s.cache == nil {
		s.ReadPixels()
	}
	fx, fy := math.Floor(x), math.Floor(y)
	if !isFinite(fx) || !isFinite(fy) {
		return Pixel{}, false
	}
	idx := fx + fy*float64(s.Width())
	if idx < 0 || idx >= float64(len(s.cache)) {
		return Pixel{}, false
	}
	return s.cache[int(idx)], true
}

// WritePixels replaces the whole surface with the given pixels, in
// row-major order. Surplus pixels are ignored, and if too few pixels
// are given, the rest of the surface becomes transparent black. The
// read cache is left unchanged.
func (s *Surface) WritePixels(pixels []Pixel) *Surface {
	w, h := s.Width(), s.Height()
	pix := make([]uint8, len(s.img.Pix))
	for i, p := range pixels[:min(len(pixels), w*h)] {
		x, y := i%w, i/w
		o := y*s.img.Stride + 4*x
		pix[o], pix[o+1], pix[o+2], pix[o+3] = p.R, p.G, p.B, p.A
	}
	s.img.Pix = pix
	return s
}

// RawPixels returns a copy of the pixel data as a flat sequence of
// R, G, B, A channel values, in row-major order.
func (s *Surface) RawPixels() []uint8 {
	w, h := s.Width(), s.Height()
	res := make([]uint8, 0, 4*w*h)
	for y := range h {
		res = append(res, s.img.Pix[y*s.img.Stride:y*s.img.Stride+4*w]...)
	}
	return res
}
