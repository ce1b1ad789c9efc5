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

package headless

import (
	"seehuhn.de/go/canvas"
)

// Canvas is a canvas element. It serves as the host of a drawing
// surface, and test code can feed it mouse and touch input.
type Canvas struct {
	Element
	canvas.Listeners

	origin canvas.Point
	size   canvas.Size
}

// NewCanvas returns a detached canvas element at the client origin.
func NewCanvas() *Canvas {
	return &Canvas{Element: Element{tag: "canvas"}}
}

// Origin returns the top left corner of c in client coordinates.
func (c *Canvas) Origin() canvas.Point {
	return c.origin
}

// SetOrigin moves c within the client area.
func (c *Canvas) SetOrigin(x, y float64) {
	c.origin = canvas.Point{X: x, Y: y}
}

// Size returns the pixel size of c. It is zero until a surface is
// attached or SetSize is called.
func (c *Canvas) Size() canvas.Size {
	return c.size
}

// SetSize sets the intrinsic size which a surface attached later will
// use.
func (c *Canvas) SetSize(width, height int) {
	c.size = canvas.Size{Width: width, Height: height}
}

// Resize records the size of the attached surface.
func (c *Canvas) Resize(sz canvas.Size) {
	c.size = sz
}

// Mouse delivers a mouse event at client position (x, y) and returns
// it, so that callers can inspect whether the default was prevented.
func (c *Canvas) Mouse(t canvas.EventType, x, y float64) *canvas.RawEvent {
	ev := &canvas.RawEvent{Type: t, Target: c, ClientX: x, ClientY: y}
	c.Dispatch(ev)
	return ev
}

// Touch delivers a touch event with the given contacts in client
// coordinates.
func (c *Canvas) Touch(t canvas.EventType, touches ...canvas.Point) *canvas.RawEvent {
	ev := &canvas.RawEvent{Type: t, Target: c, Touches: touches}
	c.Dispatch(ev)
	return ev
}

// Click delivers the events of a single click at (x, y).
func (c *Canvas) Click(x, y float64) {
	c.Mouse(canvas.MouseDown, x, y)
	c.Mouse(canvas.MouseUp, x, y)
	c.Mouse(canvas.MouseClick, x, y)
}

// Drag delivers a button press at the first point, moves through the
// remaining points, and releases the button at the last point.
func (c *Canvas) Drag(points ...canvas.Point) {
	if len(points) == 0 {
		return
	}
	c.Mouse(canvas.MouseDown, points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.Mouse(canvas.MouseMove, p.X, p.Y)
	}
	last := points[len(points)-1]
	c.Mouse(canvas.MouseUp, last.X, last.Y)
}

var (
	_ canvas.Host     = (*Canvas)(nil)
	_ canvas.Sizer    = (*Canvas)(nil)
	_ canvas.Resizer  = (*Canvas)(nil)
	_ canvas.Document = (*Document)(nil)
	_ canvas.Element  = (*Element)(nil)
)
