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

// Package fynehost shows a drawing surface in a fyne window.
//
// A [Widget] is a canvas element and drawing host at the same time: pass
// it to canvas.Attach to create a surface, draw, and call Present to put
// the result on screen. Mouse input on the widget reaches the handlers
// registered on the surface.
package fynehost

import (
	"image"
	"sync"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"seehuhn.de/go/canvas"
)

// Widget displays the last presented surface image.
type Widget struct {
	widget.BaseWidget
	canvas.Listeners

	raster *fynecanvas.Raster

	mu     sync.Mutex
	img    image.Image
	origin canvas.Point
}

// New returns a widget with a minimum size of width×height.
func New(width, height int) *Widget {
	w := &Widget{}
	w.raster = fynecanvas.NewRaster(w.draw)
	w.raster.ScaleMode = fynecanvas.ImageScalePixels
	w.raster.SetMinSize(fyne.NewSize(float32(width), float32(height)))
	w.ExtendBaseWidget(w)
	return w
}

// CreateRenderer implements fyne.Widget.
func (w *Widget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(w.raster)
}

// TagName returns "canvas".
func (w *Widget) TagName() string {
	return "canvas"
}

// AppendChild is a no-op, a canvas has no child elements.
func (w *Widget) AppendChild(child canvas.Element) {
	canvas.Logger().Warn("cannot append to a fyne canvas", "tag", child.TagName())
}

// Origin returns the position of the widget in the window, as seen by
// the most recent mouse event.
func (w *Widget) Origin() canvas.Point {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.origin
}

// Present shows the current content of s.
func (w *Widget) Present(s *canvas.Surface) {
	img := s.Image()
	w.mu.Lock()
	w.img = img
	w.mu.Unlock()
	w.raster.SetMinSize(fyne.NewSize(float32(img.Rect.Dx()), float32(img.Rect.Dy())))
	w.raster.Refresh()
}

// Image returns the last presented image, or nil.
func (w *Widget) Image() image.Image {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.img
}

func (w *Widget) draw(width, height int) image.Image {
	if img := w.Image(); img != nil {
		return img
	}
	return image.NewNRGBA(image.Rect(0, 0, width, height))
}

// dispatch converts a fyne point event into a raw event. Fyne reports
// positions relative to the widget, the absolute position serves as the
// client position.
func (w *Widget) dispatch(t canvas.EventType, ev *fyne.PointEvent) {
	w.mu.Lock()
	w.origin = canvas.Point{
		X: float64(ev.AbsolutePosition.X - ev.Position.X),
		Y: float64(ev.AbsolutePosition.Y - ev.Position.Y),
	}
	w.mu.Unlock()

	w.Dispatch(&canvas.RawEvent{
		Type:    t,
		Target:  w,
		ClientX: float64(ev.AbsolutePosition.X),
		ClientY: float64(ev.AbsolutePosition.Y),
	})
}

// Tapped implements fyne.Tappable.
func (w *Widget) Tapped(ev *fyne.PointEvent) {
	w.dispatch(canvas.MouseClick, ev)
}

// DoubleTapped implements fyne.DoubleTappable.
func (w *Widget) DoubleTapped(ev *fyne.PointEvent) {
	w.dispatch(canvas.MouseDoubleClick, ev)
}

// MouseDown implements desktop.Mouseable.
func (w *Widget) MouseDown(ev *desktop.MouseEvent) {
	w.dispatch(canvas.MouseDown, &ev.PointEvent)
}

// MouseUp implements desktop.Mouseable.
func (w *Widget) MouseUp(ev *desktop.MouseEvent) {
	w.dispatch(canvas.MouseUp, &ev.PointEvent)
}

// MouseIn implements desktop.Hoverable.
func (w *Widget) MouseIn(*desktop.MouseEvent) {}

// MouseMoved implements desktop.Hoverable.
func (w *Widget) MouseMoved(ev *desktop.MouseEvent) {
	w.dispatch(canvas.MouseMove, &ev.PointEvent)
}

// MouseOut implements desktop.Hoverable.
func (w *Widget) MouseOut() {}

var (
	_ canvas.Host         = (*Widget)(nil)
	_ canvas.Element      = (*Widget)(nil)
	_ fyne.Tappable       = (*Widget)(nil)
	_ fyne.DoubleTappable = (*Widget)(nil)
	_ desktop.Mouseable   = (*Widget)(nil)
	_ desktop.Hoverable   = (*Widget)(nil)
	_ fyne.Widget         = (*Widget)(nil)
)
