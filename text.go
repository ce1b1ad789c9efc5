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
	"math"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// fontSpec is a parsed CSS font string.
type fontSpec struct {
	families  []string
	size      float64 // in pixels
	bold      bool
	italic    bool
	smallCaps bool
}

// maxFontSize bounds the glyph scale so that 26.6 fixed point
// coordinates do not overflow.
const maxFontSize = 4096

var absoluteSizes = map[string]float64{
	"xx-small": 9,
	"x-small":  10,
	"small":    13,
	"medium":   16,
	"large":    18,
	"x-large":  24,
	"xx-large": 32,
}

// parseFont parses the CSS font shorthand:
// [style] [variant] [weight] [stretch] size[/line-height] family[, family...]
func parseFont(css string) (fontSpec, error) {
	fail := func(msg string) (fontSpec, error) {
		return fontSpec{}, &Error{ErrorCode: InvalidStyle, Detail: fmt.Sprintf("font %q: %s", css, msg)}
	}

	var spec fontSpec
	fields := strings.Fields(css)
	i := 0
prefix:
	for ; i < len(fields); i++ {
		switch tok := strings.ToLower(fields[i]); tok {
		case "normal", "oblique", "lighter", "ultra-condensed", "extra-condensed",
			"condensed", "semi-condensed", "semi-expanded", "expanded",
			"extra-expanded", "ultra-expanded":
		case "italic":
			spec.italic = true
		case "small-caps":
			spec.smallCaps = true
		case "bold", "bolder":
			spec.bold = true
		default:
			if w, err := strconv.Atoi(tok); err == nil && w >= 1 && w <= 1000 {
				spec.bold = w >= 600
				continue
			}
			break prefix
		}
	}
	if i >= len(fields) {
		return fail("missing size")
	}

	sizeTok, _, _ := strings.Cut(fields[i], "/")
	size, ok := parseFontSize(strings.ToLower(sizeTok))
	if !ok {
		return fail("invalid size")
	}
	spec.size = min(size, maxFontSize)

	for _, fam := range strings.Split(strings.Join(fields[i+1:], " "), ",") {
		fam = strings.Trim(strings.TrimSpace(fam), `"'`)
		if fam != "" {
			spec.families = append(spec.families, strings.ToLower(fam))
		}
	}
	if len(spec.families) == 0 {
		return fail("missing family")
	}
	return spec, nil
}

func parseFontSize(tok string) (float64, bool) {
	if v, ok := absoluteSizes[tok]; ok {
		return v, true
	}
	units := []struct {
		suffix string
		scale  float64
	}{
		{"px", 1},
		{"pt", 4.0 / 3},
		{"pc", 16},
		{"rem", 16},
		{"em", 16},
		{"in", 96},
		{"cm", 96 / 2.54},
		{"mm", 96 / 25.4},
		{"%", 16.0 / 100},
	}
	for _, u := range units {
		num, ok := strings.CutSuffix(tok, u.suffix)
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(num, 64)
		if err != nil || !(v >= 0) || math.IsInf(v, 0) {
			return 0, false
		}
		return v * u.scale, true
	}
	return 0, false
}

// faceKey selects one of the built-in Go fonts.
type faceKey struct {
	mono, smallCaps bool
	bold, italic    bool
}

func goFontData(key faceKey) []byte {
	switch {
	case key.mono && key.bold && key.italic:
		return gomonobolditalic.TTF
	case key.mono && key.bold:
		return gomonobold.TTF
	case key.mono && key.italic:
		return gomonoitalic.TTF
	case key.mono:
		return gomono.TTF
	case key.smallCaps && key.italic:
		return gosmallcapsitalic.TTF
	case key.smallCaps:
		return gosmallcaps.TTF
	case key.bold && key.italic:
		return gobolditalic.TTF
	case key.bold:
		return gobold.TTF
	case key.italic:
		return goitalic.TTF
	}
	return goregular.TTF
}

var monoFamilies = map[string]bool{
	"monospace":   true,
	"mono":        true,
	"go mono":     true,
	"courier":     true,
	"courier new": true,
	"consolas":    true,
	"menlo":       true,
}

var (
	goFontsMu sync.Mutex
	goFonts   = map[faceKey]*sfnt.Font{}
)

// builtinFont returns the parsed Go font for key.
func builtinFont(key faceKey) *sfnt.Font {
	goFontsMu.Lock()
	defer goFontsMu.Unlock()

	if f, ok := goFonts[key]; ok {
		return f
	}
	f, err := sfnt.Parse(goFontData(key))
	if err != nil {
		// the embedded fonts are known to be valid
		panic(err)
	}
	goFonts[key] = f
	return f
}

// selectFont returns the font for spec. Families registered with
// WithFontFamily take precedence over the built-in fonts.
func (s *Surface) selectFont(spec fontSpec) *sfnt.Font {
	for _, fam := range spec.families {
		if f, ok := s.opts.families[fam]; ok {
			return f
		}
	}
	key := faceKey{bold: spec.bold, italic: spec.italic}
	for _, fam := range spec.families {
		if monoFamilies[fam] {
			key.mono = true
			break
		}
	}
	if spec.smallCaps && !key.mono {
		key.smallCaps = true
		key.bold = false
	}
	return builtinFont(key)
}

// textPath lays out msg on a single line starting at (x, y) on the
// alphabetic baseline and returns the glyph outlines.
func (s *Surface) textPath(x, y float64, msg string) (*path.Data, float64) {
	spec := s.style.face
	f := s.selectFont(spec)
	ppem := fixed.Int26_6(math.Round(spec.size * 64))
	buf := &s.fontBuf

	p := &path.Data{}
	pen := x
	var prev sfnt.GlyphIndex
	for i, r := range msg {
		gid, err := f.GlyphIndex(buf, r)
		if err != nil {
			continue
		}
		if i > 0 {
			if k, err := f.Kern(buf, prev, gid, ppem, font.HintingNone); err == nil {
				pen += fixedToFloat(k)
			}
		}
		prev = gid

		if segs, err := f.LoadGlyph(buf, gid, ppem, nil); err == nil {
			appendGlyph(p, segs, pen, y)
		}
		if adv, err := f.GlyphAdvance(buf, gid, ppem, font.HintingNone); err == nil {
			pen += fixedToFloat(adv)
		}
	}
	return p, pen - x
}

func appendGlyph(p *path.Data, segs sfnt.Segments, dx, dy float64) {
	pt := func(a fixed.Point26_6) vec.Vec2 {
		return vec.Vec2{X: dx + fixedToFloat(a.X), Y: dy + fixedToFloat(a.Y)}
	}
	open := false
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				p.Cmds = append(p.Cmds, path.CmdClose)
			}
			p.Cmds = append(p.Cmds, path.CmdMoveTo)
			p.Coords = append(p.Coords, pt(seg.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			p.Cmds = append(p.Cmds, path.CmdLineTo)
			p.Coords = append(p.Coords, pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			p.Cmds = append(p.Cmds, path.CmdQuadTo)
			p.Coords = append(p.Coords, pt(seg.Args[0]), pt(seg.Args[1]))
		case sfnt.SegmentOpCubeTo:
			p.Cmds = append(p.Cmds, path.CmdCubeTo)
			p.Coords = append(p.Coords, pt(seg.Args[0]), pt(seg.Args[1]), pt(seg.Args[2]))
		}
	}
	if open {
		p.Cmds = append(p.Cmds, path.CmdClose)
	}
}

func fixedToFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64
}

// FillString fills msg with the current font and fill style. (x, y) is
// the start of the alphabetic baseline.
func (s *Surface) FillString(x, y float64, msg string) *Surface {
	p, _ := s.textPath(x, y, msg)
	s.fillPath(p, &s.style, false)
	return s
}

// DrawString strokes the outline of msg with the current font and
// stroke style.
func (s *Surface) DrawString(x, y float64, msg string) *Surface {
	p, _ := s.textPath(x, y, msg)
	s.strokePath(p, &s.style)
	return s
}

// FillStringWithShadow fills msg with a dark, slightly offset shadow.
// The shadow settings of the surface are not changed.
func (s *Surface) FillStringWithShadow(x, y float64, msg string) *Surface {
	st := s.style
	st.shadowColor = solidPaint("#111", Color{R: 0x11 / 255.0, G: 0x11 / 255.0, B: 0x11 / 255.0, A: 1})
	st.shadowOffset = Point{X: 1, Y: 1}
	st.shadowBlur = 7

	p, _ := s.textPath(x, y, msg)
	s.fillPath(p, &st, false)
	return s
}

// MeasureString returns the advance width of msg in the current font.
func (s *Surface) MeasureString(msg string) float64 {
	_, w := s.textPath(0, 0, msg)
	return w
}
