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

package raster

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// grid collects the coverage emitted for a w×h clip rectangle.
type grid struct {
	w, h int
	pix  []float32
}

func newGrid(w, h int) *grid {
	return &grid{w: w, h: h, pix: make([]float32, w*h)}
}

func (g *grid) emit(y, xMin int, coverage []float32) {
	if y < 0 || y >= g.h || xMin < 0 || xMin+len(coverage) > g.w {
		panic("coverage outside of clip rectangle")
	}
	copy(g.pix[y*g.w+xMin:], coverage)
}

func (g *grid) at(x, y int) float32 {
	return g.pix[y*g.w+x]
}

func (g *grid) clip() rect.Rect {
	return rect.Rect{LLx: 0, LLy: 0, URx: float64(g.w), URy: float64(g.h)}
}

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func polygon(pts ...vec.Vec2) *path.Data {
	p := &path.Data{}
	for i, pt := range pts {
		if i == 0 {
			p.Cmds = append(p.Cmds, path.CmdMoveTo)
		} else {
			p.Cmds = append(p.Cmds, path.CmdLineTo)
		}
		p.Coords = append(p.Coords, pt)
	}
	return p
}

func closed(p *path.Data) *path.Data {
	p.Cmds = append(p.Cmds, path.CmdClose)
	return p
}

// TestTriangleCoverage verifies exact coverage values for a simple triangle.
// The triangle (0,0)→(10,0)→(10,1) has a diagonal edge y = x/10, so pixel
// X has coverage (2X+1)/20.
func TestTriangleCoverage(t *testing.T) {
	g := newGrid(10, 1)
	r := NewRasterizer(g.clip())
	r.FillNonZero(closed(polygon(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 0}, vec.Vec2{X: 10, Y: 1})), g.emit)

	for x := range 10 {
		expected := float32(2*x+1) / 20
		if got := g.at(x, 0); !near(got, expected) {
			t.Errorf("pixel %d: expected coverage %.4f, got %.4f", x, expected, got)
		}
	}
}

func TestRectangleCoverage(t *testing.T) {
	g := newGrid(8, 4)
	r := NewRasterizer(g.clip())
	r.FillNonZero(polygon(vec.Vec2{X: 2, Y: 1}, vec.Vec2{X: 6, Y: 1}, vec.Vec2{X: 6, Y: 3}, vec.Vec2{X: 2, Y: 3}), g.emit)

	for y := range 4 {
		for x := range 8 {
			var expected float32
			if x >= 2 && x < 6 && y >= 1 && y < 3 {
				expected = 1
			}
			if got := g.at(x, y); !near(got, expected) {
				t.Errorf("pixel (%d,%d): expected %g, got %g", x, y, expected, got)
			}
		}
	}
}

func TestHalfPixelEdges(t *testing.T) {
	g := newGrid(4, 1)
	r := NewRasterizer(g.clip())
	r.FillNonZero(polygon(vec.Vec2{X: 0.5, Y: 0}, vec.Vec2{X: 2.5, Y: 0}, vec.Vec2{X: 2.5, Y: 1}, vec.Vec2{X: 0.5, Y: 1}), g.emit)

	expected := []float32{0.5, 1, 0.5, 0}
	for x, want := range expected {
		if got := g.at(x, 0); !near(got, want) {
			t.Errorf("pixel %d: expected %g, got %g", x, want, got)
		}
	}
}

func TestFillRules(t *testing.T) {
	// two nested squares with the same orientation
	p := closed(polygon(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 6, Y: 0}, vec.Vec2{X: 6, Y: 6}, vec.Vec2{X: 0, Y: 6}))
	p.Cmds = append(p.Cmds, path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose)
	p.Coords = append(p.Coords, vec.Vec2{X: 2, Y: 2}, vec.Vec2{X: 4, Y: 2}, vec.Vec2{X: 4, Y: 4}, vec.Vec2{X: 2, Y: 4})

	nz := newGrid(6, 6)
	NewRasterizer(nz.clip()).FillNonZero(p, nz.emit)
	eo := newGrid(6, 6)
	NewRasterizer(eo.clip()).FillEvenOdd(p, eo.emit)

	if got := nz.at(3, 3); !near(got, 1) {
		t.Errorf("nonzero: centre coverage %g, expected 1", got)
	}
	if got := eo.at(3, 3); !near(got, 0) {
		t.Errorf("even-odd: centre coverage %g, expected 0", got)
	}
	for _, rule := range []*grid{nz, eo} {
		if got := rule.at(0, 0); !near(got, 1) {
			t.Errorf("ring coverage %g, expected 1", got)
		}
	}
}

func TestClipLeft(t *testing.T) {
	g := newGrid(4, 1)
	r := NewRasterizer(g.clip())
	r.FillNonZero(polygon(vec.Vec2{X: -5, Y: 0}, vec.Vec2{X: 3, Y: 0}, vec.Vec2{X: 3, Y: 1}, vec.Vec2{X: -5, Y: 1}), g.emit)

	expected := []float32{1, 1, 1, 0}
	for x, want := range expected {
		if got := g.at(x, 0); !near(got, want) {
			t.Errorf("pixel %d: expected %g, got %g", x, want, got)
		}
	}
}

func TestHugeCoordinates(t *testing.T) {
	shapes := []*path.Data{
		polygon(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 1e30, Y: 0}, vec.Vec2{X: 1e30, Y: 10}, vec.Vec2{X: 0, Y: 10}),
		polygon(vec.Vec2{X: -1e30, Y: -1e30}, vec.Vec2{X: 1e30, Y: -1e30}, vec.Vec2{X: 1e30, Y: 1e30}, vec.Vec2{X: -1e30, Y: 1e30}),
		polygon(vec.Vec2{X: -1e12, Y: -1e12}, vec.Vec2{X: 1e12, Y: -1e12}, vec.Vec2{X: 0, Y: 1e12}),
	}
	for i, p := range shapes {
		g := newGrid(8, 4)
		r := NewRasterizer(g.clip())
		r.FillNonZero(p, g.emit)
		for y := range 4 {
			for x := range 8 {
				if got := g.at(x, y); !near(got, 1) {
					t.Errorf("shape %d: pixel (%d,%d): expected 1, got %g", i, x, y, got)
				}
			}
		}
	}
}

func TestCTM(t *testing.T) {
	g := newGrid(4, 4)
	r := NewRasterizer(g.clip())
	r.CTM = matrix.Scale(2, 2)
	r.FillNonZero(polygon(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 1, Y: 0}, vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 0, Y: 1}), g.emit)

	for y := range 4 {
		for x := range 4 {
			var expected float32
			if x < 2 && y < 2 {
				expected = 1
			}
			if got := g.at(x, y); !near(got, expected) {
				t.Errorf("pixel (%d,%d): expected %g, got %g", x, y, expected, got)
			}
		}
	}
}

func TestCurveFlattening(t *testing.T) {
	// quarter circle of radius 8 filled against the corner
	const k = 0.5522847498 * 8
	p := &path.Data{
		Cmds: []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdCubeTo, path.CmdClose},
		Coords: []vec.Vec2{
			{X: 0, Y: 0}, {X: 8, Y: 0},
			{X: 8, Y: k}, {X: k, Y: 8}, {X: 0, Y: 8},
		},
	}
	g := newGrid(8, 8)
	NewRasterizer(g.clip()).FillNonZero(p, g.emit)

	var total float64
	for _, c := range g.pix {
		total += float64(c)
	}
	if want := math.Pi * 16; total > want || total < want-2 {
		t.Errorf("area %.3f, expected about %.3f", total, want)
	}
}

func TestDegenerateInput(t *testing.T) {
	g := newGrid(4, 4)
	r := NewRasterizer(g.clip())
	fail := func(int, int, []float32) { t.Error("unexpected output") }

	r.FillNonZero(nil, fail)
	r.FillNonZero(&path.Data{}, fail)
	r.FillNonZero(polygon(vec.Vec2{X: 1, Y: 1}), fail)
	r.FillNonZero(polygon(vec.Vec2{X: math.NaN(), Y: 1}, vec.Vec2{X: 3, Y: 3}, vec.Vec2{X: 1, Y: 3}), func(y, xMin int, coverage []float32) {
		for _, c := range coverage {
			if math.IsNaN(float64(c)) {
				t.Fatal("NaN coverage")
			}
		}
	})

	r.Width = 0
	r.Stroke(polygon(vec.Vec2{X: 0, Y: 1}, vec.Vec2{X: 4, Y: 1}), fail)
	r.Width = 2
	r.Stroke(polygon(vec.Vec2{X: 2, Y: 2}, vec.Vec2{X: 2, Y: 2}), fail)
}

func strokeLine(cp graphics.LineCapStyle) *grid {
	g := newGrid(10, 4)
	r := NewRasterizer(g.clip())
	r.Width = 2
	r.Cap = cp
	r.Stroke(polygon(vec.Vec2{X: 1, Y: 2}, vec.Vec2{X: 9, Y: 2}), g.emit)
	return g
}

func TestStrokeCaps(t *testing.T) {
	butt := strokeLine(graphics.LineCapButt)
	square := strokeLine(graphics.LineCapSquare)
	round := strokeLine(graphics.LineCapRound)

	for _, y := range []int{1, 2} {
		for x := 1; x < 9; x++ {
			for _, g := range []*grid{butt, square, round} {
				if got := g.at(x, y); !near(got, 1) {
					t.Errorf("pixel (%d,%d): expected 1, got %g", x, y, got)
				}
			}
		}
		if got := butt.at(0, y); !near(got, 0) {
			t.Errorf("butt cap: pixel (0,%d) = %g, expected 0", y, got)
		}
		if got := square.at(0, y); !near(got, 1) {
			t.Errorf("square cap: pixel (0,%d) = %g, expected 1", y, got)
		}
		if got := square.at(9, y); !near(got, 1) {
			t.Errorf("square cap: pixel (9,%d) = %g, expected 1", y, got)
		}
		// a quarter disc of radius 1
		if got := round.at(0, y); got < 0.7 || got > 0.8 {
			t.Errorf("round cap: pixel (0,%d) = %g, expected about 0.785", y, got)
		}
	}
	for _, g := range []*grid{butt, square, round} {
		if got := g.at(4, 0); !near(got, 0) {
			t.Errorf("pixel above the line covered: %g", got)
		}
	}
}

func strokeSquare(join graphics.LineJoinStyle) *grid {
	g := newGrid(10, 10)
	r := NewRasterizer(g.clip())
	r.Width = 2
	r.Join = join
	r.Stroke(closed(polygon(vec.Vec2{X: 2, Y: 2}, vec.Vec2{X: 8, Y: 2}, vec.Vec2{X: 8, Y: 8}, vec.Vec2{X: 2, Y: 8})), g.emit)
	return g
}

func TestStrokeJoins(t *testing.T) {
	cases := []struct {
		join     graphics.LineJoinStyle
		min, max float32
	}{
		{graphics.LineJoinMiter, 1, 1},
		{graphics.LineJoinBevel, 0.5, 0.5},
		{graphics.LineJoinRound, 0.7, 0.8},
	}
	for _, tc := range cases {
		g := strokeSquare(tc.join)
		// every corner, including the one where the path is closed
		corners := [][2]int{{1, 1}, {8, 1}, {8, 8}, {1, 8}}
		for _, c := range corners {
			got := g.at(c[0], c[1])
			if got < tc.min-1e-5 || got > tc.max+1e-5 {
				t.Errorf("join %v: corner pixel %v = %g, expected [%g, %g]",
					tc.join, c, got, tc.min, tc.max)
			}
		}
		if got := g.at(5, 5); !near(got, 0) {
			t.Errorf("join %v: interior covered (%g)", tc.join, got)
		}
		if got := g.at(5, 2); !near(got, 1) {
			t.Errorf("join %v: edge pixel = %g, expected 1", tc.join, got)
		}
	}
}

func TestMiterLimit(t *testing.T) {
	// a sharp turn with a miter length of about ten line widths
	p := polygon(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 1}, vec.Vec2{X: 0, Y: 2})

	tipCoverage := func(limit float64) float32 {
		g := newGrid(20, 3)
		r := NewRasterizer(g.clip())
		r.Width = 1
		r.MiterLimit = limit
		r.Stroke(p, g.emit)
		return g.at(13, 0) + g.at(13, 1)
	}

	if got := tipCoverage(20); got <= 0 {
		t.Errorf("miter limit 20: tip not drawn")
	}
	if got := tipCoverage(1); got != 0 {
		t.Errorf("miter limit 1: tip drawn (%g)", got)
	}
}

func TestStrokeOverlap(t *testing.T) {
	// a path crossing itself must not paint more than full coverage
	g := newGrid(8, 8)
	r := NewRasterizer(g.clip())
	r.Width = 2
	r.Stroke(polygon(vec.Vec2{X: 0, Y: 4}, vec.Vec2{X: 8, Y: 4}, vec.Vec2{X: 4, Y: 0}, vec.Vec2{X: 4, Y: 8}), g.emit)
	for i, c := range g.pix {
		if c > 1 {
			t.Fatalf("pixel %d has coverage %g", i, c)
		}
	}
	if got := g.at(4, 4); !near(got, 1) {
		t.Errorf("crossing pixel = %g, expected 1", got)
	}
}
