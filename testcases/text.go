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

import "seehuhn.de/go/canvas"

var textScenes = []Scene{
	{
		Name:   "fill_string",
		Width:  200,
		Height: 60,
		Draw: func(s *canvas.Surface) {
			s.SetFont("32px sans-serif").SetFillColor(0, 0, 0, 1).FillString(10, 40, "Hello")
		},
		Probes: []Probe{
			{X: 190, Y: 30, Want: transparent},
			{X: 5, Y: 5, Want: transparent},
			{X: 100, Y: 55, Want: transparent},
		},
		MinInk: 150,
	},
	{
		Name:   "draw_string",
		Width:  200,
		Height: 60,
		Draw: func(s *canvas.Surface) {
			s.SetFont("bold 32px serif").SetDrawColor(0, 0, 1, 1).SetLineWidth(1)
			s.DrawString(10, 40, "Outline")
		},
		Probes: []Probe{
			{X: 5, Y: 5, Want: transparent},
		},
		MinInk: 150,
	},
	{
		Name:   "string_shadow",
		Width:  200,
		Height: 60,
		Draw: func(s *canvas.Surface) {
			s.FillBackgroundWhite()
			s.SetFont("24px monospace").SetFillColor(1, 0, 0, 1).FillStringWithShadow(10, 40, "Shade")
		},
		Probes: []Probe{
			{X: 195, Y: 5, Want: white},
		},
		MinInk: 200 * 60,
	},
	{
		Name:   "measured_box",
		Width:  200,
		Height: 60,
		Draw: func(s *canvas.Surface) {
			s.SetFont("italic 20px sans-serif")
			w := s.MeasureString("boxed")
			s.SetDrawColor(0, 0, 0, 1).SetLineWidth(1).DrawRectangle(10, 15, w, 30)
			s.SetFillColor(0, 0.5, 0, 1).FillString(10, 38, "boxed")
		},
		Probes: []Probe{
			{X: 150, Y: 5, Want: transparent},
		},
		MinInk: 100,
	},
}
