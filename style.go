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
	"fmt"
	"image/color"
	"math"

	"seehuhn.de/go/pdf/graphics"
)

// DefaultRandomAlpha is the alpha value used by the random colour setters
// when none is given.
const DefaultRandomAlpha = 0.75

// DefaultFont is the font of a new surface.
const DefaultFont = "10px sans-serif"

// Style holds the current drawing attributes of a surface.
// The zero value is not useful; surfaces start with [DefaultStyle].
type Style struct {
	stroke paint
	fill   paint

	lineWidth  float64
	lineCap    graphics.LineCapStyle
	lineJoin   graphics.LineJoinStyle
	miterLimit float64

	font string
	face fontSpec

	globalAlpha float64

	shadowBlur   float64
	shadowColor  paint
	shadowOffset Point

	blendName string
	blend     compositeOp
}

// DefaultStyle returns the attributes of a freshly created surface.
func DefaultStyle() Style {
	black := solidPaint("#000000", Color{A: 1})
	face, _ := parseFont(DefaultFont)
	return Style{
		stroke:      black,
		fill:        black,
		lineWidth:   1,
		lineCap:     graphics.LineCapButt,
		lineJoin:    graphics.LineJoinMiter,
		miterLimit:  10,
		font:        DefaultFont,
		face:        face,
		globalAlpha: 1,
		shadowColor: solidPaint("rgba(0, 0, 0, 0)", Color{}),
		blendName:   "source-over",
		blend:       opSourceOver,
	}
}

// StrokeStyle returns the stroke style: a colour string or a *Gradient.
func (st *Style) StrokeStyle() any { return st.stroke.value() }

// FillStyle returns the fill style: a colour string or a *Gradient.
func (st *Style) FillStyle() any { return st.fill.value() }

// LineWidth returns the stroke width in user space units.
func (st *Style) LineWidth() float64 { return st.lineWidth }

// LineCap returns the style used at the ends of open lines.
func (st *Style) LineCap() graphics.LineCapStyle { return st.lineCap }

// LineJoin returns the style used where lines meet.
func (st *Style) LineJoin() graphics.LineJoinStyle { return st.lineJoin }

// MiterLimit returns the miter limit ratio.
func (st *Style) MiterLimit() float64 { return st.miterLimit }

// Font returns the CSS font string.
func (st *Style) Font() string { return st.font }

// GlobalAlpha returns the alpha value applied to everything drawn.
func (st *Style) GlobalAlpha() float64 { return st.globalAlpha }

// ShadowBlur returns the shadow blur level.
func (st *Style) ShadowBlur() float64 { return st.shadowBlur }

// ShadowColor returns the shadow colour string.
func (st *Style) ShadowColor() string { return st.shadowColor.css }

// ShadowOffset returns the shadow offset in device pixels.
func (st *Style) ShadowOffset() Point { return st.shadowOffset }

// BlendMode returns the name of the compositing operation.
func (st *Style) BlendMode() string { return st.blendName }

// hasShadow reports whether shapes drawn with st cast a visible shadow.
func (st *Style) hasShadow() bool {
	return st.shadowColor.color.A > 0 &&
		(st.shadowBlur > 0 || st.shadowOffset.X != 0 || st.shadowOffset.Y != 0)
}

// Style returns a copy of the current drawing attributes.
func (s *Surface) Style() Style {
	return s.style
}

// SetStyle replaces all drawing attributes.
func (s *Surface) SetStyle(st Style) *Surface {
	s.style = st
	return s
}

// SetDrawColor sets the stroke colour. Channels are in [0, 1].
func (s *Surface) SetDrawColor(r, g, b, a float64) *Surface {
	if p, ok := s.colorPaint(Color{R: r, G: g, B: b, A: a}); ok {
		s.style.stroke = p
	}
	return s
}

// SetFillColor sets the fill colour. Channels are in [0, 1].
func (s *Surface) SetFillColor(r, g, b, a float64) *Surface {
	if p, ok := s.colorPaint(Color{R: r, G: g, B: b, A: a}); ok {
		s.style.fill = p
	}
	return s
}

// SetRandomColor sets a random stroke colour with the given alpha, or
// with [DefaultRandomAlpha] if alpha is omitted.
func (s *Surface) SetRandomColor(alpha ...float64) *Surface {
	c := s.randomColor(alpha)
	return s.SetDrawColor(c.R, c.G, c.B, c.A)
}

// SetRandomFillColor sets a random fill colour with the given alpha, or
// with [DefaultRandomAlpha] if alpha is omitted.
func (s *Surface) SetRandomFillColor(alpha ...float64) *Surface {
	c := s.randomColor(alpha)
	return s.SetFillColor(c.R, c.G, c.B, c.A)
}

func (s *Surface) randomColor(alpha []float64) Color {
	a := DefaultRandomAlpha
	if len(alpha) > 0 {
		a = alpha[0]
	}
	return Color{R: s.opts.random.Rand(), G: s.opts.random.Rand(), B: s.opts.random.Rand(), A: a}
}

// colorPaint converts c to its formatted string and back, so that the
// stored colour is exactly what the string describes.
func (s *Surface) colorPaint(c Color) (paint, bool) {
	css := c.String()
	parsed, err := ParseColor(css)
	if err != nil {
		Logger().Warn("colour ignored", "color", css)
		return paint{}, false
	}
	return solidPaint(css, parsed), true
}

// SetFillStyle sets the fill style. The style may be a CSS colour string,
// a Color, any color.Color, or a *Gradient. Invalid styles leave the fill
// unchanged and are recorded in Err.
func (s *Surface) SetFillStyle(style any) *Surface {
	if p, ok := s.toPaint(style); ok {
		s.style.fill = p
	}
	return s
}

// SetStrokeStyle sets the stroke style, see SetFillStyle.
func (s *Surface) SetStrokeStyle(style any) *Surface {
	if p, ok := s.toPaint(style); ok {
		s.style.stroke = p
	}
	return s
}

func (s *Surface) toPaint(style any) (paint, bool) {
	switch v := style.(type) {
	case string:
		c, err := ParseColor(v)
		if err != nil {
			s.fail(err)
			return paint{}, false
		}
		return solidPaint(v, c), true
	case *Gradient:
		if v == nil {
			break
		}
		return paint{grad: v}, true
	case Color:
		return s.colorPaint(v)
	case color.Color:
		return s.colorPaint(colorFrom(v))
	}
	s.fail(&Error{ErrorCode: InvalidStyle, Detail: fmt.Sprintf("unsupported style %T", style)})
	return paint{}, false
}

// SetFillGradientColorHorizontal fills with a two-stop gradient running
// from the left edge to the right edge of the surface.
func (s *Surface) SetFillGradientColorHorizontal(start, end string) *Surface {
	return s.setFillGradient(NewLinearGradient(0, 0, float64(s.Width()), 0), start, end)
}

// SetFillGradientColorVertical fills with a two-stop gradient running
// from the top edge to the bottom edge of the surface.
func (s *Surface) SetFillGradientColorVertical(start, end string) *Surface {
	return s.setFillGradient(NewLinearGradient(0, 0, 0, float64(s.Height())), start, end)
}

func (s *Surface) setFillGradient(g *Gradient, start, end string) *Surface {
	if err := g.AddColorStop(0, start); err != nil {
		s.fail(err)
		return s
	}
	if err := g.AddColorStop(1, end); err != nil {
		s.fail(err)
		return s
	}
	s.style.fill = paint{grad: g}
	return s
}

// SetLineWidth sets the stroke width. Values which are not positive and
// finite are ignored.
func (s *Surface) SetLineWidth(w float64) *Surface {
	if w > 0 && !math.IsInf(w, 0) {
		s.style.lineWidth = w
	}
	return s
}

// SetLineCap sets the style used at the ends of open lines.
func (s *Surface) SetLineCap(c graphics.LineCapStyle) *Surface {
	switch c {
	case graphics.LineCapButt, graphics.LineCapRound, graphics.LineCapSquare:
		s.style.lineCap = c
	}
	return s
}

// SetLineJoin sets the style used where lines meet.
func (s *Surface) SetLineJoin(j graphics.LineJoinStyle) *Surface {
	switch j {
	case graphics.LineJoinMiter, graphics.LineJoinRound, graphics.LineJoinBevel:
		s.style.lineJoin = j
	}
	return s
}

// SetMiterLimit sets the miter limit ratio. Values which are not
// positive and finite are ignored.
func (s *Surface) SetMiterLimit(limit float64) *Surface {
	if limit > 0 && !math.IsInf(limit, 0) {
		s.style.miterLimit = limit
	}
	return s
}

// SetFont sets the font from a CSS font string such as "20pt Times" or
// "bold 12px monospace". Strings which cannot be parsed are ignored and
// recorded in Err.
func (s *Surface) SetFont(font string) *Surface {
	face, err := parseFont(font)
	if err != nil {
		s.fail(err)
		return s
	}
	s.style.font = font
	s.style.face = face
	return s
}

// ChangeGlobalAlpha sets the alpha applied to everything drawn.
// Values outside [0, 1] are ignored.
func (s *Surface) ChangeGlobalAlpha(alpha float64) *Surface {
	if alpha >= 0 && alpha <= 1 {
		s.style.globalAlpha = alpha
	}
	return s
}

// SetShadowBlur sets the shadow blur level and colour.
func (s *Surface) SetShadowBlur(blur float64, css string) *Surface {
	if blur >= 0 && !math.IsInf(blur, 0) {
		s.style.shadowBlur = blur
	}
	c, err := ParseColor(css)
	if err != nil {
		s.fail(err)
		return s
	}
	s.style.shadowColor = solidPaint(css, c)
	return s
}

// SetShadowOffset sets the shadow offset in device pixels.
func (s *Surface) SetShadowOffset(dx, dy float64) *Surface {
	if !math.IsNaN(dx) && !math.IsInf(dx, 0) {
		s.style.shadowOffset.X = dx
	}
	if !math.IsNaN(dy) && !math.IsInf(dy, 0) {
		s.style.shadowOffset.Y = dy
	}
	return s
}

// RemoveShadowBlur sets the shadow blur level to zero. The shadow colour
// is kept.
func (s *Surface) RemoveShadowBlur() *Surface {
	s.style.shadowBlur = 0
	return s
}

// SetBlendMode sets the compositing operation by its canvas name, for
// example "source-over", "lighter", "multiply" or "xor". Unknown names
// are ignored.
func (s *Surface) SetBlendMode(mode string) *Surface {
	op, ok := parseCompositeOp(mode)
	if !ok {
		Logger().Warn("blend mode ignored", "mode", mode)
		return s
	}
	s.style.blendName = mode
	s.style.blend = op
	return s
}

// StrokeStyle returns the stroke style: a colour string or a *Gradient.
func (s *Surface) StrokeStyle() any { return s.style.StrokeStyle() }

// DrawStyle is the same as StrokeStyle.
func (s *Surface) DrawStyle() any { return s.style.StrokeStyle() }

// FillStyle returns the fill style: a colour string or a *Gradient.
func (s *Surface) FillStyle() any { return s.style.FillStyle() }

// LineWidth returns the stroke width.
func (s *Surface) LineWidth() float64 { return s.style.lineWidth }

// Font returns the CSS font string.
func (s *Surface) Font() string { return s.style.font }

// GlobalAlpha returns the alpha applied to everything drawn.
func (s *Surface) GlobalAlpha() float64 { return s.style.globalAlpha }

// ShadowBlur returns the shadow blur level.
func (s *Surface) ShadowBlur() float64 { return s.style.shadowBlur }

// ShadowColor returns the shadow colour string.
func (s *Surface) ShadowColor() string { return s.style.shadowColor.css }

// BlendMode returns the name of the compositing operation.
func (s *Surface) BlendMode() string { return s.style.blendName }
