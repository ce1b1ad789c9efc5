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
	"image"
	"image/color"

	"seehuhn.de/go/canvas"
)

var compositeScenes = []Scene{
	{
		Name:   "multiply",
		Width:  80,
		Height: 80,
		Draw: func(s *canvas.Surface) {
			s.SetFillColor(1, 0, 0, 1).FillRectangle(10, 10, 40, 40)
			s.SetBlendMode("multiply")
			s.SetFillColor(0, 0, 1, 1).FillRectangle(30, 30, 40, 40)
		},
		Probes: []Probe{
			{X: 40, Y: 40, Want: black},
			{X: 20, Y: 20, Want: red},
			{X: 60, Y: 60, Want: blue},
		},
	},
	{
		Name:   "destination_out",
		Width:  100,
		Height: 100,
		Draw: func(s *canvas.Surface) {
			s.SetFillColor(1, 0, 0, 1).FillRectangle(10, 10, 80, 80)
			s.SetBlendMode("destination-out").FillCircle(50, 50, 20)
		},
		Probes: []Probe{
			{X: 50, Y: 50, Want: transparent},
			{X: 15, Y: 15, Want: red},
			{X: 5, Y: 5, Want: transparent},
		},
	},
	{
		Name:   "destination_over",
		Width:  80,
		Height: 80,
		Draw: func(s *canvas.Surface) {
			s.SetFillColor(0, 0, 1, 1).FillRectangle(20, 20, 40, 40)
			s.SetBlendMode("destination-over")
			s.SetFillColor(1, 0, 0, 1).FillRectangle(0, 0, 80, 80)
		},
		Probes: []Probe{
			{X: 40, Y: 40, Want: blue},
			{X: 5, Y: 5, Want: red},
		},
	},
	{
		Name:   "draw_canvas",
		Width:  80,
		Height: 80,
		Draw: func(s *canvas.Surface) {
			tile := canvas.New(10, 10)
			tile.SetFillColor(0, 1, 0, 1).FillRectangle(0, 0, 10, 10)
			s.DrawCanvas(tile, 20, 20, 40, 40)
		},
		Probes: []Probe{
			{X: 40, Y: 40, Want: green},
			{X: 21, Y: 58, Want: green},
			{X: 10, Y: 10, Want: transparent},
			{X: 61, Y: 61, Want: transparent},
		},
	},
	{
		Name:   "draw_image",
		Width:  100,
		Height: 100,
		Draw: func(s *canvas.Surface) {
			s.DrawImage(halves(), 50, 50, 40, 40, 0)
		},
		Probes: []Probe{
			{X: 35, Y: 50, Want: red},
			{X: 65, Y: 50, Want: blue},
			{X: 10, Y: 10, Want: transparent},
		},
	},
	{
		Name:   "draw_image_rotated",
		Width:  100,
		Height: 100,
		Draw: func(s *canvas.Surface) {
			s.DrawImage(halves(), 50, 50, 40, 40, 90)
		},
		Probes: []Probe{
			{X: 50, Y: 35, Want: red},
			{X: 50, Y: 65, Want: blue},
			{X: 35, Y: 10, Want: transparent},
		},
	},
}

// halves returns a 10×10 image with a red left half and a blue right
// half.
func halves() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := range 10 {
		for x := range 10 {
			c := color.RGBA{R: 255, A: 255}
			if x >= 5 {
				c = color.RGBA{B: 255, A: 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
