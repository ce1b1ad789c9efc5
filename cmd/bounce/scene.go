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
	"fmt"
	"image"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"seehuhn.de/go/canvas"
)

// animation draws the frames of one scene.
type animation interface {
	step(s *canvas.Surface, frame int)
}

var scenes = map[string]func(cfg *config, s *canvas.Surface) animation{
	"balls":  newBalls,
	"lines":  newLines,
	"sample": newSample,
}

const ballSize = 32

type ball struct {
	x, y   float64
	vx, vy float64
	angle  float64
	spin   float64
	sprite image.Image
}

// balls moves rotated sprites around the surface. Clicking adds a ball.
type balls struct {
	bg    *canvas.Color
	items []*ball
	speed distuv.Uniform
	seed  uint64
}

func newBalls(cfg *config, s *canvas.Surface) animation {
	b := &balls{
		speed: distuv.Uniform{Min: -4, Max: 4, Src: rand.NewSource(cfg.Seed)},
		seed:  cfg.Seed,
	}
	if bg, err := canvas.ParseColor(cfg.Background); err == nil {
		b.bg = &bg
	}
	for range cfg.Balls {
		x := ballSize/2 + (float64(s.Width())-ballSize)*(b.speed.Rand()+4)/8
		y := ballSize/2 + (float64(s.Height())-ballSize)*(b.speed.Rand()+4)/8
		b.add(x, y)
	}
	s.AddMouseClickHandler(func(ev canvas.MouseEvent) {
		b.add(float64(ev.X), float64(ev.Y))
	})
	return b
}

func (b *balls) add(x, y float64) {
	b.items = append(b.items, &ball{
		x:      x,
		y:      y,
		vx:     b.speed.Rand(),
		vy:     b.speed.Rand(),
		spin:   2 * b.speed.Rand(),
		sprite: b.sprite(len(b.items)),
	})
}

func (b *balls) sprite(i int) image.Image {
	const r = ballSize / 2
	sp := canvas.New(ballSize, ballSize, canvas.WithSeed(b.seed+uint64(i)))
	sp.SetRandomFillColor().FillCircle(r, r, r-1)
	sp.SetFillColor(1, 1, 1, 0.8).FillRectangle(r-2, 3, 4, r-3)
	return sp.Image()
}

func (b *balls) step(s *canvas.Surface, frame int) {
	w, h := float64(s.Width()), float64(s.Height())
	s.Clear()
	if b.bg != nil {
		s.FillBackground(b.bg)
	}
	for _, it := range b.items {
		s.DrawImage(it.sprite, it.x, it.y, ballSize, ballSize, it.angle)

		it.x += it.vx
		it.y += it.vy
		it.angle += it.spin
		if it.x < ballSize/2 || it.x > w-ballSize/2 {
			it.vx = -it.vx
		}
		if it.y < ballSize/2 || it.y > h-ballSize/2 {
			it.vy = -it.vy
		}
	}
}

// lines keeps adding random lines while the older ones fade out.
type lines struct{}

func newLines(cfg *config, s *canvas.Surface) animation {
	if bg, err := canvas.ParseColor(cfg.Background); err == nil {
		s.FillBackground(&bg)
	}
	return lines{}
}

func (lines) step(s *canvas.Surface, frame int) {
	s.SetFillStyle("rgba(255, 255, 255, 0.1)")
	s.FillRectangle(0, 0, float64(s.Width()), float64(s.Height()))
	s.SetRandomColor().SetLineWidth(2).DrawRandomLines(3)
}

// sample shows most drawing operations, with a rotating ellipse.
type sample struct{}

func newSample(cfg *config, s *canvas.Surface) animation {
	return sample{}
}

func (sample) step(s *canvas.Surface, frame int) {
	w, h := float64(s.Width()), float64(s.Height())

	s.Clear()
	s.SetFillGradientColorVertical("#def", "#fff")
	s.FillRectangle(0, 0, w, h)

	s.SetFillColor(0.2, 0.4, 0.8, 1).SetDrawColor(0, 0, 0, 1).SetLineWidth(2)
	s.FillRoundedRectangle(10, 10, w/3, h/4, 8, true)

	s.Save()
	s.Rotate(float64(6*frame), w/2, h/2)
	s.SetDrawColor(0.8, 0.1, 0.1, 1).SetLineWidth(3)
	s.DrawEllipse(w/2, h/2, 60, 30, 0, 0, 0.05)
	s.Restore()

	s.Save()
	s.SetShadowBlur(4, "rgba(0, 0, 0, 0.5)").SetShadowOffset(2, 2)
	s.SetFillColor(1, 0.8, 0, 1).FillCircle(w-40, 40, 20)
	s.Restore()

	s.SetFont("bold 16px sans-serif").SetFillColor(0, 0, 0, 1)
	s.FillString(10, h-10, fmt.Sprintf("frame %d", frame))
}
