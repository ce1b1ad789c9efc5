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
	"math"
	"testing"

	"golang.org/x/image/font/gofont/gomono"
)

func TestParseFont(t *testing.T) {
	cases := []struct {
		in   string
		want fontSpec
	}{
		{"10px sans-serif", fontSpec{families: []string{"sans-serif"}, size: 10}},
		{"bold 12px monospace", fontSpec{families: []string{"monospace"}, size: 12, bold: true}},
		{"italic small-caps 700 15pt/2 \"Go Mono\", serif",
			fontSpec{families: []string{"go mono", "serif"}, size: 20, bold: true, italic: true, smallCaps: true}},
		{"large Arial", fontSpec{families: []string{"arial"}, size: 18}},
		{"2em x", fontSpec{families: []string{"x"}, size: 32}},
		{"1in x", fontSpec{families: []string{"x"}, size: 96}},
		{"1e9px x", fontSpec{families: []string{"x"}, size: maxFontSize}},
	}
	for _, c := range cases {
		got, err := parseFont(c.in)
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
			continue
		}
		if got.size != c.want.size || got.bold != c.want.bold || got.italic != c.want.italic ||
			got.smallCaps != c.want.smallCaps || len(got.families) != len(c.want.families) {
			t.Errorf("%q: got %+v, want %+v", c.in, got, c.want)
			continue
		}
		for i := range got.families {
			if got.families[i] != c.want.families[i] {
				t.Errorf("%q: family %d is %q, want %q", c.in, i, got.families[i], c.want.families[i])
			}
		}
	}

	for _, bad := range []string{"", "bold", "12px", "twelve px serif", "-3px serif"} {
		if _, err := parseFont(bad); !errors.Is(err, ErrInvalidStyle) {
			t.Errorf("%q: got %v", bad, err)
		}
	}
}

func TestFillString(t *testing.T) {
	s := New(100, 40)
	s.SetFont("20px sans-serif").SetFillColor(0, 0, 0, 1).FillString(5, 30, "Hello")

	painted := 0
	for y := range 40 {
		for x := range 100 {
			if p, _ := s.ReadPixelAt(float64(x), float64(y), true); p.A > 0 {
				painted++
				if y > 35 || x < 4 {
					t.Fatalf("text paints (%d, %d)", x, y)
				}
			}
		}
	}
	if painted < 50 {
		t.Errorf("only %d pixels painted", painted)
	}
}

func TestDrawStringAndShadow(t *testing.T) {
	a := New(100, 40)
	a.SetFont("bold 24px serif").FillString(5, 30, "W")
	b := New(100, 40)
	b.SetFont("bold 24px serif").FillStringWithShadow(5, 30, "W")

	if b.ShadowBlur() != 0 || b.ShadowColor() != "rgba(0, 0, 0, 0)" {
		t.Errorf("shadow state leaked: %g %q", b.ShadowBlur(), b.ShadowColor())
	}
	na, nb := 0, 0
	for i, v := range a.RawPixels() {
		if i%4 == 3 && v > 0 {
			na++
		}
	}
	for i, v := range b.RawPixels() {
		if i%4 == 3 && v > 0 {
			nb++
		}
	}
	if nb <= na {
		t.Errorf("shadow adds no pixels: %d vs %d", nb, na)
	}

	c := New(100, 40)
	c.SetFont("24px sans-serif").SetLineWidth(1).DrawString(5, 30, "O")
	if p, _ := c.ReadPixelAt(12, 21, false); p.A != 0 {
		t.Errorf("outlined O is filled: %v", p)
	}
}

func TestMeasureString(t *testing.T) {
	s := New(10, 10)
	s.SetFont("10px sans-serif")
	w1 := s.MeasureString("abc")
	w2 := s.MeasureString("abcabc")
	if !(w1 > 0) || math.Abs(w2-2*w1) > 1 {
		t.Errorf("widths %g and %g", w1, w2)
	}
	s.SetFont("20px sans-serif")
	if w := s.MeasureString("abc"); math.Abs(w-2*w1) > 0.5 {
		t.Errorf("doubling the size gives width %g, want about %g", w, 2*w1)
	}
	if w := s.MeasureString(""); w != 0 {
		t.Errorf("empty string has width %g", w)
	}

	// monospace glyphs all have the same advance
	s.SetFont("10px monospace")
	if wi, wm := s.MeasureString("iii"), s.MeasureString("mmm"); wi != wm {
		t.Errorf("monospace widths %g and %g", wi, wm)
	}
}

func TestFontFamilyOption(t *testing.T) {
	s := New(10, 10, WithFontFamily("Fixed", gomono.TTF), WithFont("10px fixed"))
	if s.Err() != nil {
		t.Fatal(s.Err())
	}
	if wi, wm := s.MeasureString("iii"), s.MeasureString("mmm"); wi != wm {
		t.Errorf("registered family not used: %g and %g", wi, wm)
	}

	s = New(10, 10, WithFontFamily("broken", []byte("not a font")))
	if !errors.Is(s.Err(), ErrInvalidStyle) {
		t.Errorf("got %v", s.Err())
	}
}
