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
	"seehuhn.de/go/canvas"
)

var primitiveScenes = []Scene{
	{
		Name:   "filled_rectangle",
		Width:  100,
		Height: 100,
		Draw: func(s *canvas.Surface) {
			s.SetFillColor(1, 0, 0, 1).FillRectangle(0, 0, 10, 10)
		},
		Probes: []Probe{
			{X: 5, Y: 5, Want: red},
			{X: 50, Y: 50, Want: transparent},
		},
	},
	{
		Name:   "rectangle_outline",
		Width:  64,
		Height: 64,
		Draw: func(s *canvas.Surface) {
			s.SetDrawColor(0, 0, 1, 1).SetLineWidth(4).DrawRectangle(12, 12, 40, 40)
		},
		Probes: []Probe{
			{X: 12, Y: 30, Want: blue},
			{X: 30, Y: 51, Want: blue},
			{X: 30, Y: 30, Want: transparent},
			{X: 5, Y: 5, Want: transparent},
		},
	},
	{
		Name:   "rounded_rectangle",
		Width:  80,
		Height: 50,
		Draw: func(s *canvas.Surface) {
			s.SetFillColor(0, 0, 1, 1).SetDrawColor(0, 0, 0, 1).SetLineWidth(2)
			s.FillRoundedRectangle(10, 10, 60, 30, 8, true)
		},
		Probes: []Probe{
			{X: 40, Y: 25, Want: blue},
			{X: 40, Y: 10, Want: black},
			{X: 10, Y: 10, Want: transparent},
			{X: 69, Y: 39, Want: transparent},
		},
	},
	{
		Name:   "circle",
		Width:  100,
		Height: 100,
		Draw: func(s *canvas.Surface) {
			s.SetFillColor(0, 1, 0, 1).FillCircle(50, 50, 30)
			s.SetDrawColor(0, 0, 0, 1).SetLineWidth(2).DrawCircle(50, 50, 40)
		},
		Probes: []Probe{
			{X: 50, Y: 50, Want: green},
			{X: 50, Y: 85, Want: transparent},
			{X: 50, Y: 10, Want: black},
			{X: 5, Y: 5, Want: transparent},
		},
	},
	{
		Name:   "ellipse",
		Width:  100,
		Height: 100,
		Draw: func(s *canvas.Surface) {
			s.SetDrawColor(0, 0, 0, 1).SetLineWidth(3)
			s.DrawEllipse(50, 50, 40, 20, 0, 0, 0.05)
		},
		Probes: []Probe{
			{X: 89, Y: 50, Want: black, Tolerance: 8},
			{X: 50, Y: 50, Want: transparent},
			{X: 50, Y: 20, Want: transparent},
		},
		MinInk: 300,
	},
	{
		Name:   "skewed_ellipse",
		Width:  100,
		Height: 100,
		Draw: func(s *canvas.Surface) {
			s.SetDrawColor(0.5, 0, 0.5, 1).SetLineWidth(2)
			s.DrawEllipse(50, 50, 40, 40, 0, 0.8, 0.02)
		},
		Probes: []Probe{
			{X: 2, Y: 2, Want: transparent},
		},
		MinInk: 200,
	},
	{
		Name:   "bezier",
		Width:  100,
		Height: 60,
		Draw: func(s *canvas.Surface) {
			s.SetDrawColor(0, 0, 0, 1).SetLineWidth(4)
			s.DrawBezier(
				canvas.Point{X: 10, Y: 50}, canvas.Point{X: 90, Y: 50},
				canvas.Point{X: 30, Y: 10}, canvas.Point{X: 70, Y: 10})
		},
		Probes: []Probe{
			{X: 50, Y: 20, Want: black},
			{X: 50, Y: 40, Want: transparent},
		},
	},
	{
		Name:   "polygon",
		Width:  100,
		Height: 100,
		Draw: func(s *canvas.Surface) {
			pts := []canvas.Point{{X: 50, Y: 10}, {X: 90, Y: 90}, {X: 10, Y: 90}}
			s.SetFillColor(1, 1, 0, 1).FillPolygon(pts)
			s.SetDrawColor(0, 0, 0, 1).SetLineWidth(2).DrawPolygon(pts)
		},
		Probes: []Probe{
			{X: 50, Y: 60, Want: canvas.Pixel{R: 255, G: 255, A: 255}},
			{X: 50, Y: 90, Want: black},
			{X: 10, Y: 10, Want: transparent},
		},
	},
	{
		Name:   "lines",
		Width:  100,
		Height: 100,
		Draw: func(s *canvas.Surface) {
			s.FillBackgroundBlack()
			s.SetDrawColor(1, 1, 1, 1).SetLineWidth(2)
			for i := range 5 {
				y := 10 + 20*float64(i)
				s.DrawLine(10, y, 90, y)
			}
		},
		Probes: []Probe{
			{X: 50, Y: 49, Want: white},
			{X: 50, Y: 60, Want: black},
			{X: 5, Y: 50, Want: black},
		},
	},
	{
		Name:   "random_lines",
		Width:  100,
		Height: 100,
		Draw: func(s *canvas.Surface) {
			s.SetRandomColor(1).SetLineWidth(1.5).DrawRandomLines(30)
		},
		MinInk: 500,
	},
}
