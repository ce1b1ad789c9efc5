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

// Package canvas provides a fluent, stateful 2D drawing surface.
//
// A [Surface] owns an RGBA pixel buffer together with the current drawing
// attributes (colours, line width, font, shadow and compositing mode) and
// a transformation. Drawing methods return the surface, so that calls can
// be chained:
//
//	s := canvas.New(100, 100)
//	s.SetFillColor(1, 0, 0, 1).
//		FillRectangle(0, 0, 10, 10).
//		SetDrawColor(0, 0, 1, 1).
//		DrawCircle(50, 50, 20)
//
// Drawing methods do not return errors. Invalid numeric input gives
// degenerate shapes, while invalid style strings and degenerate polygons
// are recorded and can be retrieved with [Surface.Err].
//
// A surface can be attached to a host element, see [Open] and [Attach].
// Input events from the host are converted to surface coordinates and
// delivered to handlers registered with the Add*Handler methods.
//
// A Surface is not safe for concurrent use.
package canvas

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"math"

	"golang.org/x/image/font/sfnt"
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/canvas/internal/raster"
)

// Default size of a canvas element created by the surface factory.
const (
	DefaultWidth  = 300
	DefaultHeight = 150
)

// ErrorHandler receives errors which cannot be returned to a caller,
// such as panics recovered from event handlers.
type ErrorHandler func(error)

// Surface is a drawing surface. Use [New], [Open] or [Attach] to create one.
type Surface struct {
	host Host
	img  *image.NRGBA

	style Style
	ctm   matrix.Matrix
	stack []savedState

	// cache holds the pixels captured by the last ReadPixels call.
	// Drawing does not invalidate it.
	cache []Pixel

	opts    options
	ras     *raster.Rasterizer
	fontBuf sfnt.Buffer
	mask    []float32
	tmp     []float32

	err error
}

// savedState is an entry of the Save/Restore stack.
type savedState struct {
	style Style
	ctm   matrix.Matrix
}

// New returns a surface of the given size which is not attached to any
// host element. Events can still be delivered through the host returned
// by [Surface.Host].
func New(width, height int, opts ...Option) *Surface {
	o := collectOptions(opts)
	s := newSurface(&detachedHost{}, Size{Width: width, Height: height}, o)
	if o.err != nil {
		s.fail(o.err)
	}
	return s
}

func collectOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func newSurface(host Host, size Size, o options) *Surface {
	s := &Surface{
		host: host,
		opts: o,
		ras:  raster.NewRasterizer(rectFor(size)),
	}
	s.reset(size)
	if o.font != DefaultFont {
		s.SetFont(o.font)
	}
	Logger().Debug("surface created", "width", s.Width(), "height", s.Height())
	return s
}

// reset allocates a cleared buffer and restores the default drawing state.
func (s *Surface) reset(size Size) {
	size.Width = max(size.Width, 0)
	size.Height = max(size.Height, 0)
	s.img = image.NewNRGBA(image.Rect(0, 0, size.Width, size.Height))
	s.style = DefaultStyle()
	s.ctm = matrix.Identity
	s.stack = s.stack[:0]
	if r, ok := s.host.(Resizer); ok {
		r.Resize(size)
	}
}

// Host returns the element the surface is attached to.
func (s *Surface) Host() Host {
	return s.host
}

// Width returns the width of the surface in pixels.
func (s *Surface) Width() int {
	return s.img.Rect.Dx()
}

// Height returns the height of the surface in pixels.
func (s *Surface) Height() int {
	return s.img.Rect.Dy()
}

// Size returns the size of the surface in pixels.
func (s *Surface) Size() Size {
	return Size{Width: s.Width(), Height: s.Height()}
}

// SetWidth changes the width of the surface. As for any size change,
// the buffer is cleared and all drawing attributes and the
// transformation are reset.
func (s *Surface) SetWidth(width int) *Surface {
	return s.SetSize(width, s.Height())
}

// SetHeight changes the height of the surface, see SetWidth.
func (s *Surface) SetHeight(height int) *Surface {
	return s.SetSize(s.Width(), height)
}

// SetSize changes the size of the surface, see SetWidth.
func (s *Surface) SetSize(width, height int) *Surface {
	Logger().Debug("surface resized",
		"from", s.Size(), "to", Size{Width: width, Height: height})
	s.reset(Size{Width: width, Height: height})
	return s
}

// Err returns the first error recorded by a drawing or style operation
// since the surface was created or ClearErr was called.
func (s *Surface) Err() error {
	return s.err
}

// ClearErr forgets the recorded error.
func (s *Surface) ClearErr() {
	s.err = nil
}

// fail records err, unless an earlier error is already recorded.
func (s *Surface) fail(err error) {
	Logger().Warn("canvas operation failed", "error", err)
	if s.err == nil {
		s.err = err
	}
}

// SetErrorHandler sets the function which receives panics recovered from
// event handlers, wrapped in an *Error with code HandlerPanic.
func (s *Surface) SetErrorHandler(h ErrorHandler) *Surface {
	s.opts.onError = h
	return s
}

// Save pushes the drawing attributes and the transformation onto a stack.
func (s *Surface) Save() *Surface {
	s.stack = append(s.stack, savedState{style: s.style, ctm: s.ctm})
	return s
}

// Restore pops the state saved by the matching Save call. Without a
// saved state, Restore does nothing.
func (s *Surface) Restore() *Surface {
	if n := len(s.stack); n > 0 {
		s.style = s.stack[n-1].style
		s.ctm = s.stack[n-1].ctm
		s.stack = s.stack[:n-1]
	}
	return s
}

// Translate moves the origin of the user coordinate system.
func (s *Surface) Translate(dx, dy float64) *Surface {
	return s.transform(matrix.Matrix{1, 0, 0, 1, dx, dy})
}

// Scale scales the user coordinate system.
func (s *Surface) Scale(sx, sy float64) *Surface {
	return s.transform(matrix.Scale(sx, sy))
}

// Rotate rotates the user coordinate system clockwise by deg degrees
// around the point (x, y). The rotation stays in effect for all later
// drawing operations.
func (s *Surface) Rotate(deg, x, y float64) *Surface {
	return s.Translate(x, y).
		transform(matrix.RotateDeg(deg)).
		Translate(-x, -y)
}

// ResetTransform restores the identity transformation.
func (s *Surface) ResetTransform() *Surface {
	s.ctm = matrix.Identity
	return s
}

// Transform returns the current transformation from user coordinates to
// device pixels.
func (s *Surface) Transform() matrix.Matrix {
	return s.ctm
}

// transform applies m before the current transformation.
func (s *Surface) transform(m matrix.Matrix) *Surface {
	s.ctm = m.Mul(s.ctm)
	return s
}

// invert returns the inverse of m, and false if m is singular.
func invert(m matrix.Matrix) (matrix.Matrix, bool) {
	det := m[0]*m[3] - m[1]*m[2]
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return matrix.Matrix{}, false
	}
	return matrix.Matrix{
		m[3] / det,
		-m[1] / det,
		-m[2] / det,
		m[0] / det,
		(m[2]*m[5] - m[3]*m[4]) / det,
		(m[1]*m[4] - m[0]*m[5]) / det,
	}, true
}

// Clear makes every pixel of the surface fully transparent. The drawing
// attributes and the transformation are not used.
func (s *Surface) Clear() *Surface {
	clear(s.img.Pix)
	return s
}

// FillBackground fills the whole surface. If c is not nil, the fill
// colour is first set to c. The transformation is not used.
func (s *Surface) FillBackground(c *Color) *Surface {
	if c != nil {
		s.SetFillColor(c.R, c.G, c.B, c.A)
	}
	s.fillDevice(rectPath(0, 0, float64(s.Width()), float64(s.Height())))
	return s
}

// FillBackgroundWhite fills the whole surface with opaque white.
func (s *Surface) FillBackgroundWhite() *Surface {
	return s.FillBackground(&Color{R: 1, G: 1, B: 1, A: 1})
}

// FillBackgroundBlack fills the whole surface with opaque black.
func (s *Surface) FillBackgroundBlack() *Surface {
	return s.FillBackground(&Color{A: 1})
}

// Image returns a copy of the surface content.
func (s *Surface) Image() *image.NRGBA {
	img := image.NewNRGBA(s.img.Rect)
	copy(img.Pix, s.img.Pix)
	return img
}

// ToDataURL encodes the surface content as a PNG data URL. An empty
// surface gives "data:,".
func (s *Surface) ToDataURL() (string, error) {
	if s.Width() == 0 || s.Height() == 0 {
		return "data:,", nil
	}
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, s.img); err != nil {
		return "", &Error{ErrorCode: Undefined, Detail: "encoding PNG", Err: err}
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
