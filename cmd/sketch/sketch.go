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

package main

import (
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/canvas"
)

// sketch connects the mouse handlers of a surface to a simple pen.
type sketch struct {
	s       *canvas.Surface
	present func(*canvas.Surface)
	last    canvas.Point
	strokes int
}

func newSketch(s *canvas.Surface, present func(*canvas.Surface)) *sketch {
	sk := &sketch{s: s, present: present}
	s.AddMouseDownHandler(func(ev canvas.MouseEvent) {
		sk.last = canvas.Point{X: float64(ev.X), Y: float64(ev.Y)}
	})
	s.AddMouseDragHandler(func(ev canvas.MouseEvent) {
		p := canvas.Point{X: float64(ev.X), Y: float64(ev.Y)}
		sk.s.DrawLine(sk.last.X, sk.last.Y, p.X, p.Y)
		sk.last = p
		sk.strokes++
		sk.present(sk.s)
	})
	s.AddMouseDoubleClickHandler(func(canvas.MouseEvent) {
		sk.clear()
	})
	return sk
}

// setPen sets the colour and width used for drawing.
func (sk *sketch) setPen(css string, width float64) error {
	if _, err := canvas.ParseColor(css); err != nil {
		return err
	}
	sk.s.SetStrokeStyle(css).SetLineWidth(width).SetLineCap(graphics.LineCapRound)
	return sk.s.Err()
}

func (sk *sketch) clear() {
	sk.s.Clear().FillBackgroundWhite()
	sk.strokes = 0
	sk.present(sk.s)
}
