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

var transformScenes = []Scene{
	{
		Name:   "rotate_square",
		Width:  100,
		Height: 100,
		Draw: func(s *canvas.Surface) {
			s.Rotate(45, 50, 50).SetFillColor(0, 0, 0, 1).FillRectangle(30, 30, 40, 40)
		},
		Probes: []Probe{
			{X: 50, Y: 50, Want: black},
			{X: 50, Y: 25, Want: black},
			{X: 32, Y: 32, Want: transparent},
		},
	},
	{
		Name:   "scale",
		Width:  60,
		Height: 60,
		Draw: func(s *canvas.Surface) {
			s.Scale(2, 2).SetFillColor(0, 0, 0, 1).FillRectangle(10, 10, 10, 10)
		},
		Probes: []Probe{
			{X: 20, Y: 20, Want: black},
			{X: 39, Y: 39, Want: black},
			{X: 41, Y: 41, Want: transparent},
			{X: 15, Y: 15, Want: transparent},
		},
	},
	{
		Name:   "translate_save_restore",
		Width:  100,
		Height: 40,
		Draw: func(s *canvas.Surface) {
			s.Save().Translate(50, 0)
			s.SetFillColor(1, 0, 0, 1).FillRectangle(0, 0, 20, 20)
			s.Restore()
			s.FillRectangle(0, 0, 20, 20)
		},
		Probes: []Probe{
			// the fill colour is restored together with the transform
			{X: 10, Y: 10, Want: black},
			{X: 60, Y: 10, Want: red},
			{X: 30, Y: 10, Want: transparent},
		},
	},
	{
		Name:   "reset_transform",
		Width:  40,
		Height: 40,
		Draw: func(s *canvas.Surface) {
			s.Translate(100, 100).Scale(3, 3).ResetTransform()
			s.SetFillColor(0, 1, 0, 1).FillRectangle(0, 0, 10, 10)
		},
		Probes: []Probe{
			{X: 5, Y: 5, Want: green},
			{X: 15, Y: 15, Want: transparent},
		},
	},
	{
		Name:   "background_ignores_transform",
		Width:  40,
		Height: 40,
		Draw: func(s *canvas.Surface) {
			s.Scale(0.25, 0.25).FillBackgroundWhite()
		},
		Probes: []Probe{
			{X: 0, Y: 0, Want: white},
			{X: 39, Y: 39, Want: white},
		},
	},
}
