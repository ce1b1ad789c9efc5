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

package testcases

import (
	"math"

	"seehuhn.de/go/canvas"
	"seehuhn.de/go/geom/path"
)

var pathScenes = []Scene{
	{
		Name:   "star_nonzero",
		Width:  100,
		Height: 100,
		Draw: func(s *canvas.Surface) {
			s.SetFillColor(0, 0, 0, 1).FillPath(star(50, 50, 45), false)
		},
		Probes: []Probe{
			{X: 50, Y: 50, Want: black},
			{X: 2, Y: 2, Want: transparent},
		},
	},
	{
		Name:   "star_evenodd",
		Width:  100,
		Height: 100,
		Draw: func(s *canvas.Surface) {
			s.SetFillColor(0, 0, 0, 1).FillPath(star(50, 50, 45), true)
		},
		Probes: []Probe{
			{X: 50, Y: 50, Want: transparent},
			{X: 50, Y: 15, Want: black},
		},
	},
	{
		Name:   "ring",
		Width:  100,
		Height: 100,
		Draw: func(s *canvas.Surface) {
			p := circle(50, 50, 40)
			inner := circle(50, 50, 20)
			p.Cmds = append(p.Cmds, inner.Cmds...)
			p.Coords = append(p.Coords, inner.Coords...)
			s.SetFillColor(1, 0, 0, 1).FillPath(p, true)
		},
		Probes: []Probe{
			{X: 50, Y: 50, Want: transparent},
			{X: 50, Y: 20, Want: red},
			{X: 5, Y: 5, Want: transparent},
		},
	},
	{
		Name:   "quadratic",
		Width:  100,
		Height: 60,
		Draw: func(s *canvas.Surface) {
			p := (&path.Data{}).
				MoveTo(pt(10, 50)).
				QuadTo(pt(50, -10), pt(90, 50)).
				Close()
			s.SetFillColor(0, 0, 1, 1).FillPath(p, false)
		},
		Probes: []Probe{
			{X: 50, Y: 40, Want: blue},
			{X: 50, Y: 10, Want: transparent},
			{X: 5, Y: 55, Want: transparent},
		},
	},
}

// star builds a five-pointed star as a single self-intersecting polygon.
func star(cx, cy, r float64) *path.Data {
	p := &path.Data{}
	for i := range 5 {
		// every second corner of a regular pentagon
		angle := -math.Pi/2 + float64(2*i)*2*math.Pi/5
		v := pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
		if i == 0 {
			p = p.MoveTo(v)
		} else {
			p = p.LineTo(v)
		}
	}
	return p.Close()
}

// circle builds a circle from four cubic Bézier curves.
func circle(cx, cy, r float64) *path.Data {
	const kappa = 0.5522847498
	k := r * kappa
	return (&path.Data{}).
		MoveTo(pt(cx+r, cy)).
		CubeTo(pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r)).
		CubeTo(pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)).
		CubeTo(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy)).
		Close()
}

// openPath connects the points by straight lines.
func openPath(pts []canvas.Point) *path.Data {
	p := &path.Data{}
	for i, q := range pts {
		if i == 0 {
			p = p.MoveTo(pt(q.X, q.Y))
		} else {
			p = p.LineTo(pt(q.X, q.Y))
		}
	}
	return p
}
