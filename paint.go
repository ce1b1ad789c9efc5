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
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// Gradient is a colour gradient usable as fill or stroke style.
// Gradient coordinates are interpreted in the user space that is current
// when a shape is painted.
type Gradient struct {
	pattern gg.Pattern
	add     func(offset float64, c gg.RGBA)
}

// NewLinearGradient returns a gradient along the line from (x0, y0) to
// (x1, y1). Without colour stops the gradient is transparent black.
func NewLinearGradient(x0, y0, x1, y1 float64) *Gradient {
	b := gg.NewLinearGradientBrush(x0, y0, x1, y1)
	return &Gradient{
		pattern: b,
		add:     func(offset float64, c gg.RGBA) { b.AddColorStop(offset, c) },
	}
}

// NewRadialGradient returns a gradient between the circle (x0, y0, r0)
// and the circle (x1, y1, r1).
func NewRadialGradient(x0, y0, r0, x1, y1, r1 float64) *Gradient {
	b := gg.NewRadialGradientBrush(x1, y1, r0, r1).SetFocus(x0, y0)
	return &Gradient{
		pattern: b,
		add:     func(offset float64, c gg.RGBA) { b.AddColorStop(offset, c) },
	}
}

// AddColorStop adds a stop with a CSS colour at offset in [0, 1].
func (g *Gradient) AddColorStop(offset float64, css string) error {
	if !(offset >= 0 && offset <= 1) {
		return &Error{ErrorCode: InvalidStyle, Detail: fmt.Sprintf("colour stop offset %g", offset)}
	}
	c, err := ParseColor(css)
	if err != nil {
		return err
	}
	g.add(offset, gg.RGBA(c))
	return nil
}

// ColorAt returns the gradient colour at (x, y) in gradient space.
func (g *Gradient) ColorAt(x, y float64) Color {
	return Color(g.pattern.ColorAt(x, y))
}

// paint is a fill or stroke style: either a solid colour or a gradient.
type paint struct {
	css   string
	color Color
	grad  *Gradient
}

func solidPaint(css string, c Color) paint {
	return paint{css: css, color: c}
}

// value returns the style in the representation reported by getters.
func (p paint) value() any {
	if p.grad != nil {
		return p.grad
	}
	return p.css
}

var errUnknownColor = errors.New("unknown colour")

// ParseColor parses a CSS colour: "#rgb", "#rgba", "#rrggbb",
// "#rrggbbaa", rgb(), rgba(), hsl(), hsla(), "transparent" and the CSS
// colour keywords.
func ParseColor(css string) (Color, error) {
	s := strings.ToLower(strings.TrimSpace(css))
	fail := func(err error) (Color, error) {
		return Color{}, &Error{ErrorCode: InvalidStyle, Detail: strconv.Quote(css), Err: err}
	}

	switch {
	case strings.HasPrefix(s, "#"):
		c, err := gg.ParseHex(s)
		if err != nil {
			return fail(err)
		}
		return Color(c), nil
	case s == "transparent":
		return Color{}, nil
	case strings.HasSuffix(s, ")"):
		name, args, ok := strings.Cut(strings.TrimSuffix(s, ")"), "(")
		if !ok {
			return fail(errUnknownColor)
		}
		var c Color
		var err error
		switch strings.TrimSpace(name) {
		case "rgb", "rgba":
			c, err = parseRGBArgs(args)
		case "hsl", "hsla":
			c, err = parseHSLArgs(args)
		default:
			err = errUnknownColor
		}
		if err != nil {
			return fail(err)
		}
		return c, nil
	}

	if rgba, ok := colornames.Map[s]; ok {
		return colorFrom(rgba), nil
	}
	return fail(errUnknownColor)
}

// splitArgs splits the arguments of a CSS colour function. Both the
// comma form "1, 2, 3, 0.5" and the space form "1 2 3 / 0.5" are allowed.
func splitArgs(args string) []string {
	var parts []string
	if strings.Contains(args, ",") {
		parts = strings.Split(args, ",")
	} else {
		args = strings.Replace(args, "/", " ", 1)
		parts = strings.Fields(args)
	}
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func parseNumber(s string, percentScale float64) (float64, error) {
	scale := 1.0
	if t, ok := strings.CutSuffix(s, "%"); ok {
		s = t
		scale = percentScale / 100
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return x * scale, nil
}

func parseAlpha(args []string, i int) (float64, error) {
	if len(args) <= i {
		return 1, nil
	}
	a, err := parseNumber(args[i], 1)
	if err != nil {
		return 0, err
	}
	return min(max(a, 0), 1), nil
}

func parseRGBArgs(s string) (Color, error) {
	args := splitArgs(s)
	if len(args) != 3 && len(args) != 4 {
		return Color{}, fmt.Errorf("need 3 or 4 arguments, got %d", len(args))
	}
	var ch [3]float64
	for i := range ch {
		v, err := parseNumber(args[i], 255)
		if err != nil {
			return Color{}, err
		}
		ch[i] = math.Round(min(max(v, 0), 255)) / 255
	}
	a, err := parseAlpha(args, 3)
	if err != nil {
		return Color{}, err
	}
	return Color{R: ch[0], G: ch[1], B: ch[2], A: a}, nil
}

func parseHSLArgs(s string) (Color, error) {
	args := splitArgs(s)
	if len(args) != 3 && len(args) != 4 {
		return Color{}, fmt.Errorf("need 3 or 4 arguments, got %d", len(args))
	}
	h, err := parseNumber(strings.TrimSuffix(args[0], "deg"), 360)
	if err != nil {
		return Color{}, err
	}
	sat, err := parseNumber(args[1], 1)
	if err != nil {
		return Color{}, err
	}
	light, err := parseNumber(args[2], 1)
	if err != nil {
		return Color{}, err
	}
	a, err := parseAlpha(args, 3)
	if err != nil {
		return Color{}, err
	}

	sat = min(max(sat, 0), 1)
	light = min(max(light, 0), 1)
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	h /= 360

	var m2 float64
	if light <= 0.5 {
		m2 = light * (sat + 1)
	} else {
		m2 = light + sat - light*sat
	}
	m1 := 2*light - m2
	hue := func(t float64) float64 {
		t -= math.Floor(t)
		switch {
		case t*6 < 1:
			return m1 + (m2-m1)*t*6
		case t*2 < 1:
			return m2
		case t*3 < 2:
			return m1 + (m2-m1)*(2.0/3-t)*6
		}
		return m1
	}
	c := Color{R: hue(h + 1.0/3), G: hue(h), B: hue(h - 1.0/3), A: a}
	// quantise to 8 bits, like any colour held by the surface
	p := color.NRGBA{R: roundChannel(c.R), G: roundChannel(c.G), B: roundChannel(c.B), A: 255}
	q := Pixel(p).Color()
	q.A = a
	return q, nil
}
