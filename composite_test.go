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
	"testing"
)

func TestBlendModes(t *testing.T) {
	cases := []struct {
		mode string
		bg   Color
		fg   Color
		want Pixel
	}{
		{"source-over", RGB(1, 1, 1), RGB(1, 0, 0), Pixel{255, 0, 0, 255}},
		{"multiply", RGB(1, 1, 1), RGB(1, 0, 0), Pixel{255, 0, 0, 255}},
		{"multiply", RGB(0, 1, 0), RGB(1, 1, 0), Pixel{0, 255, 0, 255}},
		{"screen", RGB(0, 0, 1), RGB(1, 0, 0), Pixel{255, 0, 255, 255}},
		{"darken", RGB(0, 1, 1), RGB(1, 1, 0), Pixel{0, 255, 0, 255}},
		{"lighten", RGB(0, 1, 0), RGB(1, 0, 0), Pixel{255, 255, 0, 255}},
		{"difference", RGB(1, 1, 1), RGB(1, 0, 0), Pixel{0, 255, 255, 255}},
		{"destination-out", RGB(1, 1, 1), RGB(1, 0, 0), Pixel{}},
		{"destination-over", RGB(0, 0, 1), RGB(1, 0, 0), Pixel{0, 0, 255, 255}},
		{"xor", RGB(0, 0, 1), RGB(1, 0, 0), Pixel{}},
		{"copy", Color{B: 1, A: 1}, Color{R: 1, A: 0.5}, Pixel{255, 0, 0, 128}},
		{"lighter", Color{R: 100.0 / 255, A: 1}, Color{R: 100.0 / 255, A: 1}, Pixel{200, 0, 0, 255}},
	}
	for _, c := range cases {
		s := New(4, 4)
		s.FillBackground(&c.bg)
		s.SetBlendMode(c.mode)
		s.SetFillStyle(c.fg).FillRectangle(0, 0, 4, 4)
		if p, _ := s.ReadPixelAt(1, 1, false); p != c.want {
			t.Errorf("%s: got %v, want %v", c.mode, p, c.want)
		}
	}
}

func TestBlendOnlyWithinShape(t *testing.T) {
	s := New(10, 10)
	s.FillBackgroundWhite()
	s.SetBlendMode("copy").SetFillColor(1, 0, 0, 1).FillRectangle(0, 0, 5, 10)
	if p, _ := s.ReadPixelAt(8, 5, false); p != (Pixel{255, 255, 255, 255}) {
		t.Errorf("outside the shape: %v", p)
	}
}

func TestGlobalAlpha(t *testing.T) {
	s := New(4, 4)
	s.ChangeGlobalAlpha(0.5).SetFillColor(0, 0, 1, 1).FillRectangle(0, 0, 4, 4)
	if p, _ := s.ReadPixelAt(1, 1, false); p != (Pixel{0, 0, 255, 128}) {
		t.Errorf("got %v", p)
	}
}

func TestShadow(t *testing.T) {
	s := New(40, 40)
	s.SetShadowBlur(0, "#00ff00").SetShadowOffset(5, 5)
	s.SetFillColor(0, 0, 0, 1).FillRectangle(10, 10, 10, 10)

	cases := []struct {
		x, y float64
		want Pixel
	}{
		{15, 15, Pixel{0, 0, 0, 255}},
		{22, 22, Pixel{0, 255, 0, 255}},
		{12, 22, Pixel{}},
		{30, 30, Pixel{}},
	}
	for _, c := range cases {
		if p, _ := s.ReadPixelAt(c.x, c.y, false); p != c.want {
			t.Errorf("(%g, %g): got %v, want %v", c.x, c.y, p, c.want)
		}
	}
}

func TestShadowBlur(t *testing.T) {
	s := New(60, 60)
	s.SetShadowBlur(8, "black").SetShadowOffset(0, 20)
	s.SetFillColor(1, 1, 1, 1).FillRectangle(20, 10, 20, 10)

	// the blurred shadow fades out across its edge
	inner, _ := s.ReadPixelAt(30, 35, false)
	edge, _ := s.ReadPixelAt(30, 40, true)
	outer, _ := s.ReadPixelAt(30, 46, true)
	if !(inner.A > edge.A && edge.A > outer.A && outer.A > 0) {
		t.Errorf("shadow alpha %d, %d, %d is not decreasing", inner.A, edge.A, outer.A)
	}

	// no shadow without blur or offset
	s = New(20, 20)
	s.SetShadowBlur(0, "black").SetFillColor(1, 0, 0, 1).FillRectangle(5, 5, 5, 5)
	if p, _ := s.ReadPixelAt(11, 11, false); p.A != 0 {
		t.Errorf("unexpected shadow %v", p)
	}
}

func TestGaussianKernel(t *testing.T) {
	for _, sigma := range []float64{0.5, 1, 3.5} {
		k := gaussianKernel(sigma, 100)
		var sum float64
		for _, v := range k {
			sum += float64(v)
		}
		if math.Abs(sum-1) > 1e-5 {
			t.Errorf("sigma %g: kernel sums to %g", sigma, sum)
		}
		for i := range len(k) / 2 {
			if k[i] != k[len(k)-1-i] {
				t.Errorf("sigma %g: kernel is not symmetric", sigma)
				break
			}
		}
	}
	if k := gaussianKernel(0, 100); len(k) != 1 || k[0] != 1 {
		t.Errorf("sigma 0: %v", k)
	}
}

func TestGaussianKernelTruncated(t *testing.T) {
	for _, sigma := range []float64{50, 5e3, 5e11} {
		k := gaussianKernel(sigma, 10)
		if len(k) != 21 {
			t.Fatalf("sigma %g: kernel length %d, want 21", sigma, len(k))
		}
		var sum float64
		for _, v := range k {
			sum += float64(v)
		}
		if !(sum > 0 && sum < 1) {
			t.Errorf("sigma %g: truncated kernel sums to %g", sigma, sum)
		}
		if k[0] > k[10] {
			t.Errorf("sigma %g: kernel is not peaked at the centre", sigma)
		}
	}

	// a kernel which fits is not changed by the bound
	a, b := gaussianKernel(2, 6), gaussianKernel(2, 100)
	if len(a) != len(b) {
		t.Fatalf("kernel length %d, want %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("tap %d: %g != %g", i, a[i], b[i])
		}
	}
}

func TestHugeShadowBlur(t *testing.T) {
	s := New(20, 20)
	s.SetShadowBlur(1e12, "#000").SetShadowOffset(2, 2)
	s.SetFillColor(1, 0, 0, 1).FillRectangle(5, 5, 10, 10)
	if err := s.Err(); err != nil {
		t.Fatal(err)
	}
	if p, _ := s.ReadPixelAt(10, 10, false); p != (Pixel{R: 255, A: 255}) {
		t.Errorf("shape pixel %v, want opaque red", p)
	}
	// the shadow is spread so thin that nothing is left
	if p, _ := s.ReadPixelAt(16, 16, true); p.A != 0 {
		t.Errorf("shadow pixel %v, want transparent", p)
	}

	s = New(20, 20)
	s.SetShadowBlur(0, "#000").SetShadowOffset(1e30, -1e30)
	s.SetFillColor(1, 0, 0, 1).FillRectangle(5, 5, 10, 10)
	if p, _ := s.ReadPixelAt(2, 18, false); p.A != 0 {
		t.Errorf("far shadow pixel %v, want transparent", p)
	}
	if p, _ := s.ReadPixelAt(10, 10, false); p != (Pixel{R: 255, A: 255}) {
		t.Errorf("shape pixel %v, want opaque red", p)
	}
}
