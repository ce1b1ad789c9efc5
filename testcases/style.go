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
	"seehuhn.de/go/pdf/graphics"
)

var styleScenes = []Scene{
	{
		Name:   "gradient_horizontal",
		Width:  100,
		Height: 20,
		Draw: func(s *canvas.Surface) {
			s.SetFillGradientColorHorizontal("#ff0000", "#0000ff").FillRectangle(0, 0, 100, 20)
		},
		Probes: []Probe{
			// stops are interpolated in linear light
			{X: 1, Y: 10, Want: red, Tolerance: 40},
			{X: 49, Y: 10, Want: canvas.Pixel{R: 187, B: 187, A: 255}, Tolerance: 4},
			{X: 98, Y: 10, Want: blue, Tolerance: 40},
		},
	},
	{
		Name:   "gradient_vertical",
		Width:  20,
		Height: 100,
		Draw: func(s *canvas.Surface) {
			s.SetFillGradientColorVertical("white", "black").FillRectangle(0, 0, 20, 100)
		},
		Probes: []Probe{
			{X: 10, Y: 1, Want: white, Tolerance: 40},
			{X: 10, Y: 49, Want: canvas.Pixel{R: 187, G: 187, B: 187, A: 255}, Tolerance: 4},
			{X: 10, Y: 98, Want: black, Tolerance: 40},
		},
	},
	{
		Name:   "radial_gradient",
		Width:  100,
		Height: 100,
		Draw: func(s *canvas.Surface) {
			g := canvas.NewRadialGradient(50, 50, 0, 50, 50, 50)
			g.AddColorStop(0, "yellow")
			g.AddColorStop(1, "rgba(255, 0, 0, 0)")
			s.SetFillStyle(g).FillRectangle(0, 0, 100, 100)
		},
		Probes: []Probe{
			{X: 50, Y: 50, Want: canvas.Pixel{R: 255, G: 255, A: 255}, Tolerance: 12},
		},
	},
	{
		Name:   "global_alpha",
		Width:  40,
		Height: 40,
		Draw: func(s *canvas.Surface) {
			s.FillBackgroundWhite()
			s.ChangeGlobalAlpha(0.5).SetFillColor(0, 0, 1, 1).FillRectangle(10, 10, 20, 20)
		},
		Probes: []Probe{
			{X: 20, Y: 20, Want: canvas.Pixel{R: 128, G: 128, B: 255, A: 255}, Tolerance: 1},
			{X: 5, Y: 5, Want: white},
		},
	},
	{
		Name:   "shadow",
		Width:  60,
		Height: 60,
		Draw: func(s *canvas.Surface) {
			s.SetShadowBlur(0, "#00ff00").SetShadowOffset(8, 8)
			s.SetFillColor(0, 0, 0, 1).FillRectangle(10, 10, 30, 30)
		},
		Probes: []Probe{
			{X: 20, Y: 20, Want: black},
			{X: 44, Y: 44, Want: green},
			{X: 12, Y: 44, Want: transparent},
		},
	},
	{
		Name:   "soft_shadow",
		Width:  80,
		Height: 80,
		Draw: func(s *canvas.Surface) {
			s.FillBackgroundWhite()
			s.SetShadowBlur(10, "rgba(0, 0, 0, 0.8)").SetShadowOffset(6, 6)
			s.SetFillColor(1, 0.5, 0, 1).FillRoundedRectangle(15, 15, 40, 40, 6, false)
		},
		Probes: []Probe{
			{X: 35, Y: 35, Want: canvas.Pixel{R: 255, G: 127, A: 255}},
			{X: 2, Y: 2, Want: white, Tolerance: 2},
		},
	},
	{
		Name:   "line_caps",
		Width:  100,
		Height: 90,
		Draw: func(s *canvas.Surface) {
			s.SetDrawColor(0, 0, 0, 1).SetLineWidth(10)
			caps := []graphics.LineCapStyle{graphics.LineCapButt, graphics.LineCapRound, graphics.LineCapSquare}
			for i, c := range caps {
				y := 20 + 25*float64(i)
				s.SetLineCap(c).DrawLine(20, y, 80, y)
			}
		},
		Probes: []Probe{
			{X: 50, Y: 20, Want: black},
			{X: 17, Y: 20, Want: transparent},
			{X: 16, Y: 45, Want: black},
			{X: 15, Y: 40, Want: transparent},
			{X: 16, Y: 66, Want: black},
			{X: 83, Y: 74, Want: black},
		},
	},
	{
		Name:   "line_joins",
		Width:  150,
		Height: 70,
		Draw: func(s *canvas.Surface) {
			s.SetDrawColor(0, 0, 0.5, 1).SetLineWidth(8)
			joins := []graphics.LineJoinStyle{graphics.LineJoinMiter, graphics.LineJoinRound, graphics.LineJoinBevel}
			for i, j := range joins {
				x := 15 + 45*float64(i)
				pts := []canvas.Point{{X: x, Y: 55}, {X: x + 15, Y: 15}, {X: x + 30, Y: 55}}
				s.SetLineJoin(j).StrokePath(openPath(pts))
			}
		},
		MinInk: 1000,
	},
}
