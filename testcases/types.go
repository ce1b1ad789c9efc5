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

// Package testcases holds drawing scenes for testing surfaces.
//
// Each scene draws onto a fresh surface and lists probe pixels with
// their expected values. The scenes serve as regression tests, and the
// export command renders them to PNG files for visual inspection.
package testcases

import (
	"seehuhn.de/go/canvas"
	"seehuhn.de/go/geom/vec"
)

// Scene is a named drawing.
type Scene struct {
	Name   string // lowercase a-z and _ only
	Width  int    // surface width in pixels
	Height int    // surface height in pixels

	// Draw renders the scene onto an empty surface of the given size.
	Draw func(s *canvas.Surface)

	// Probes list pixels with known values.
	Probes []Probe

	// MinInk is the minimum number of pixels with non-zero alpha.
	MinInk int
}

// Probe is a pixel with a known value.
type Probe struct {
	X, Y      float64
	Want      canvas.Pixel
	Tolerance uint8 // maximum difference per channel
}

// Check reads the probe pixel from s. It returns the pixel found and
// whether it matches.
func (p Probe) Check(s *canvas.Surface) (canvas.Pixel, bool) {
	got, ok := s.ReadPixelAt(p.X, p.Y, true)
	if !ok {
		return got, false
	}
	near := func(a, b uint8) bool {
		if a > b {
			a, b = b, a
		}
		return b-a <= p.Tolerance
	}
	return got, near(got.R, p.Want.R) && near(got.G, p.Want.G) &&
		near(got.B, p.Want.B) && near(got.A, p.Want.A)
}

// Render draws sc onto a new surface.
func (sc *Scene) Render(opts ...canvas.Option) *canvas.Surface {
	s := canvas.New(sc.Width, sc.Height, opts...)
	sc.Draw(s)
	s.ReadPixels()
	return s
}

// Ink counts the pixels of s with non-zero alpha.
func Ink(s *canvas.Surface) int {
	n := 0
	for _, p := range s.ReadPixels() {
		if p.A > 0 {
			n++
		}
	}
	return n
}

var (
	transparent = canvas.Pixel{}
	white       = canvas.Pixel{R: 255, G: 255, B: 255, A: 255}
	black       = canvas.Pixel{A: 255}
	red         = canvas.Pixel{R: 255, A: 255}
	green       = canvas.Pixel{G: 255, A: 255}
	blue        = canvas.Pixel{B: 255, A: 255}
)

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
