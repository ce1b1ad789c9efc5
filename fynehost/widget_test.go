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

package fynehost

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"

	"seehuhn.de/go/canvas"
)

func mouseAt(x, y, ox, oy float32) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{
			Position:         fyne.NewPos(x, y),
			AbsolutePosition: fyne.NewPos(x+ox, y+oy),
		},
		Button: desktop.MouseButtonPrimary,
	}
}

func TestWidgetIsHost(t *testing.T) {
	test.NewApp()

	w := New(40, 30)
	s, err := canvas.Attach(nil, w, canvas.WithSize(40, 30))
	if err != nil {
		t.Fatal(err)
	}
	if s.Host() != canvas.Host(w) {
		t.Error("surface does not use the widget")
	}

	var downs, drags []canvas.MouseEvent
	s.AddMouseDownHandler(func(ev canvas.MouseEvent) { downs = append(downs, ev) })
	s.AddMouseDragHandler(func(ev canvas.MouseEvent) { drags = append(drags, ev) })

	w.MouseMoved(mouseAt(1, 1, 100, 200))
	w.MouseDown(mouseAt(5.5, 6, 100, 200))
	w.MouseMoved(mouseAt(7, 8, 100, 200))
	w.MouseUp(mouseAt(7, 8, 100, 200))

	if len(downs) != 1 || downs[0].X != 5 || downs[0].Y != 6 || downs[0].Target != w {
		t.Errorf("downs %+v", downs)
	}
	if len(drags) != 1 || drags[0].X != 7 || drags[0].Y != 8 {
		t.Errorf("drags %+v", drags)
	}
	if o := w.Origin(); o != (canvas.Point{X: 100, Y: 200}) {
		t.Errorf("origin %v", o)
	}
}

func TestWidgetTaps(t *testing.T) {
	test.NewApp()

	w := New(10, 10)
	s, err := canvas.Attach(nil, w)
	if err != nil {
		t.Fatal(err)
	}
	clicks, doubles := 0, 0
	s.AddMouseClickHandler(func(canvas.MouseEvent) { clicks++ })
	s.AddMouseDoubleClickHandler(func(canvas.MouseEvent) { doubles++ })

	w.Tapped(&fyne.PointEvent{Position: fyne.NewPos(1, 1)})
	w.DoubleTapped(&fyne.PointEvent{Position: fyne.NewPos(1, 1)})
	if clicks != 1 || doubles != 1 {
		t.Errorf("got %d clicks and %d double clicks", clicks, doubles)
	}
}

func TestPresent(t *testing.T) {
	test.NewApp()

	w := New(10, 10)
	if w.Image() != nil {
		t.Error("image before Present")
	}
	if img := w.draw(3, 2); img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Errorf("placeholder bounds %v", img.Bounds())
	}

	s := canvas.New(4, 4)
	s.FillBackgroundWhite()
	w.Present(s)
	s.Clear()

	img := w.Image()
	if img == nil {
		t.Fatal("no image presented")
	}
	if _, _, _, a := img.At(2, 2).RGBA(); a != 0xffff {
		t.Errorf("presented image alpha %d", a)
	}
}
