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

package canvas

import "math"

// EventType identifies a kind of raw input event.
type EventType int

// These are the raw event types a Host delivers.
const (
	MouseClick EventType = iota
	MouseDoubleClick
	MouseMove
	MouseDown
	MouseUp
	TouchStart
	TouchMove
	TouchEnd
)

func (t EventType) String() string {
	switch t {
	case MouseClick:
		return "click"
	case MouseDoubleClick:
		return "dblclick"
	case MouseMove:
		return "mousemove"
	case MouseDown:
		return "mousedown"
	case MouseUp:
		return "mouseup"
	case TouchStart:
		return "touchstart"
	case TouchMove:
		return "touchmove"
	case TouchEnd:
		return "touchend"
	default:
		return "unknown"
	}
}

// RawEvent is an input event as delivered by a Host, in client
// coordinates.
type RawEvent struct {
	Type   EventType
	Target any

	// ClientX and ClientY give the pointer position for mouse events.
	ClientX, ClientY float64

	// Touches lists the active contacts for touch events.
	Touches []Point

	defaultPrevented bool
}

// PreventDefault asks the host to skip its default action, such as
// scrolling, for this event.
func (ev *RawEvent) PreventDefault() {
	ev.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault has been called.
func (ev *RawEvent) DefaultPrevented() bool {
	return ev.defaultPrevented
}

// MouseEvent is a mouse event in surface pixel coordinates.
type MouseEvent struct {
	Target any
	X, Y   int
}

// TouchEvent lists the touch points of a touch event in surface
// coordinates, floored to whole pixels like mouse positions. The order of
// the points follows the host and may change between events.
type TouchEvent struct {
	Target      any
	TouchPoints []Point
}

// MouseHandler is called for normalised mouse events.
type MouseHandler func(MouseEvent)

// TouchHandler is called for normalised touch events.
type TouchHandler func(TouchEvent)

// AddMouseClickHandler registers h for clicks. The returned function
// removes the registration.
func (s *Surface) AddMouseClickHandler(h MouseHandler) func() {
	return s.listenMouse(MouseClick, h)
}

// AddMouseDoubleClickHandler registers h for double clicks.
func (s *Surface) AddMouseDoubleClickHandler(h MouseHandler) func() {
	return s.listenMouse(MouseDoubleClick, h)
}

// AddMouseMoveHandler registers h for pointer movement, whether or not a
// button is pressed.
func (s *Surface) AddMouseMoveHandler(h MouseHandler) func() {
	return s.listenMouse(MouseMove, h)
}

// AddMouseDownHandler registers h for button presses.
func (s *Surface) AddMouseDownHandler(h MouseHandler) func() {
	return s.listenMouse(MouseDown, h)
}

// AddMouseUpHandler registers h for button releases.
func (s *Surface) AddMouseUpHandler(h MouseHandler) func() {
	return s.listenMouse(MouseUp, h)
}

// AddMouseDragHandler registers h for pointer movement between a button
// press and the following release. Each registration tracks the button
// state separately, starting with the button released.
func (s *Surface) AddMouseDragHandler(h MouseHandler) func() {
	d := &dragTracker{}
	removeDown := s.host.Listen(MouseDown, func(ev *RawEvent) {
		ev.PreventDefault()
		d.pressed = true
	})
	removeUp := s.host.Listen(MouseUp, func(ev *RawEvent) {
		ev.PreventDefault()
		d.pressed = false
	})
	removeMove := s.host.Listen(MouseMove, func(ev *RawEvent) {
		ev.PreventDefault()
		if !d.pressed {
			return
		}
		me := s.mouseEvent(ev)
		s.invoke("drag", func() { h(me) })
	})
	return func() {
		removeDown()
		removeUp()
		removeMove()
	}
}

// dragTracker is the button state of one drag registration.
type dragTracker struct {
	pressed bool
}

// AddTouchStartHandler registers h for new contacts.
func (s *Surface) AddTouchStartHandler(h TouchHandler) func() {
	return s.listenTouch(TouchStart, h)
}

// AddTouchMoveHandler registers h for moving contacts.
func (s *Surface) AddTouchMoveHandler(h TouchHandler) func() {
	return s.listenTouch(TouchMove, h)
}

// AddTouchEndHandler registers h for lifted contacts.
func (s *Surface) AddTouchEndHandler(h TouchHandler) func() {
	return s.listenTouch(TouchEnd, h)
}

func (s *Surface) listenMouse(t EventType, h MouseHandler) func() {
	return s.host.Listen(t, func(ev *RawEvent) {
		ev.PreventDefault()
		me := s.mouseEvent(ev)
		s.invoke(t.String(), func() { h(me) })
	})
}

func (s *Surface) listenTouch(t EventType, h TouchHandler) func() {
	return s.host.Listen(t, func(ev *RawEvent) {
		ev.PreventDefault()
		te := s.touchEvent(ev)
		s.invoke(t.String(), func() { h(te) })
	})
}

func (s *Surface) mouseEvent(ev *RawEvent) MouseEvent {
	o := s.host.Origin()
	return MouseEvent{
		Target: ev.Target,
		X:      int(math.Floor(ev.ClientX - o.X)),
		Y:      int(math.Floor(ev.ClientY - o.Y)),
	}
}

func (s *Surface) touchEvent(ev *RawEvent) TouchEvent {
	o := s.host.Origin()
	pts := make([]Point, 0, len(ev.Touches))
	for _, t := range ev.Touches {
		p := Point{X: math.Floor(t.X - o.X), Y: math.Floor(t.Y - o.Y)}
		if !isFinite(p.X) || !isFinite(p.Y) {
			continue
		}
		pts = append(pts, p)
	}
	return TouchEvent{Target: ev.Target, TouchPoints: pts}
}

// invoke runs a user handler. A panic is logged and passed to the
// error handler of the surface instead of unwinding into the host.
func (s *Surface) invoke(op string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			err := newPanicError(op, r)
			Logger().Warn("event handler panicked", "op", op, "panic", r)
			if h := s.opts.onError; h != nil {
				h(err)
			}
		}
	}()
	fn()
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
