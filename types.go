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
	"image/color"
	"math"
	"strconv"
)

// Point is a position in surface coordinates.
type Point struct {
	X, Y float64
}

// Size is the extent of a surface in pixels.
type Size struct {
	Width, Height int
}

// Color is a colour with channels in the range [0, 1].
// The alpha channel is not premultiplied.
type Color struct {
	R, G, B, A float64
}

// RGB returns an opaque colour.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Pixel converts c to storage representation. Colour channels are
// scaled by 255 and truncated, alpha is scaled by 255 and rounded.
// Out-of-range values are clamped.
func (c Color) Pixel() Pixel {
	return Pixel{
		R: floorChannel(c.R),
		G: floorChannel(c.G),
		B: floorChannel(c.B),
		A: roundChannel(c.A),
	}
}

// String formats c the way colour setters store it, for example
// "rgba(255, 0, 0, 0.5)".
func (c Color) String() string {
	return "rgba(" + formatChannel(c.R) + ", " + formatChannel(c.G) + ", " +
		formatChannel(c.B) + ", " + strconv.FormatFloat(c.A, 'g', -1, 64) + ")"
}

// formatChannel scales x to the range 0-255 without clamping.
// Adding zero turns -0 into 0.
func formatChannel(x float64) string {
	return strconv.FormatFloat(math.Floor(255*x)+0, 'f', -1, 64)
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.nrgba().RGBA()
}

func (c Color) nrgba() color.NRGBA {
	return color.NRGBA{
		R: roundChannel(c.R),
		G: roundChannel(c.G),
		B: roundChannel(c.B),
		A: roundChannel(c.A),
	}
}

// colorFrom converts any color.Color to a Color.
func colorFrom(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pixel(n).Color()
}

// Pixel is a non-premultiplied RGBA pixel as stored in the surface buffer.
type Pixel struct {
	R, G, B, A uint8
}

// Color converts p to the [0, 1] channel range.
func (p Pixel) Color() Color {
	return Color{
		R: float64(p.R) / 255,
		G: float64(p.G) / 255,
		B: float64(p.B) / 255,
		A: float64(p.A) / 255,
	}
}

// RGBA implements the color.Color interface.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	return color.NRGBA(p).RGBA()
}

func floorChannel(x float64) uint8 {
	switch {
	case !(x > 0):
		return 0
	case x >= 1:
		return 255
	}
	return uint8(math.Floor(255 * x))
}

func roundChannel(x float64) uint8 {
	switch {
	case !(x > 0):
		return 0
	case x >= 1:
		return 255
	}
	return uint8(math.Round(255 * x))
}
