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

import (
	"fmt"
	"sync"
)

// Host is the element a Surface draws into. It reports where the
// element sits within the client area and delivers raw input events.
type Host interface {
	// Origin returns the top-left corner of the element in client
	// coordinates.
	Origin() Point

	// Listen registers fn for events of type t. The returned function
	// removes the registration.
	Listen(t EventType, fn func(*RawEvent)) func()
}

// A Sizer is a Host which has an intrinsic size.
type Sizer interface {
	Size() Size
}

// A Resizer is a Host which wants to learn about changes of the surface
// size.
type Resizer interface {
	Resize(Size)
}

// Element is a node of a document tree.
type Element interface {
	TagName() string
	AppendChild(child Element)
}

// Document is a tree of elements a Surface can be attached to.
type Document interface {
	// QuerySelector returns the first element matching selector, or nil.
	QuerySelector(selector string) Element

	// CreateElement returns a new, detached element with the given tag.
	CreateElement(tag string) Element
}

// Open finds the element matching selector in doc and attaches a new
// surface to it, see Attach.
func Open(doc Document, selector string, opts ...Option) (*Surface, error) {
	if doc == nil {
		return nil, &Error{ErrorCode: NoRootElement, Detail: "no document"}
	}
	el := doc.QuerySelector(selector)
	if el == nil {
		return nil, &Error{ErrorCode: NoRootElement, Detail: fmt.Sprintf("selector %q", selector)}
	}
	return Attach(doc, el, opts...)
}

// Attach creates a surface for el. If el is a Host, for example a
// canvas element, the surface draws into el directly. Otherwise a new
// canvas element is created and appended to el.
//
// The surface size is taken from WithSize if given, then from the
// intrinsic size of the host, and defaults to 300×150 pixels.
func Attach(doc Document, el Element, opts ...Option) (*Surface, error) {
	if el == nil {
		return nil, ErrNoRootElement
	}
	o := collectOptions(opts)
	if o.err != nil {
		return nil, o.err
	}

	host, ok := el.(Host)
	if !ok {
		if doc == nil {
			return nil, &Error{ErrorCode: NoRootElement, Detail: "cannot create canvas element"}
		}
		child := doc.CreateElement("canvas")
		host, ok = child.(Host)
		if !ok {
			return nil, &Error{
				ErrorCode: NoRootElement,
				Detail:    fmt.Sprintf("%T is not a drawing host", child),
			}
		}
		el.AppendChild(child)
	}

	size := Size{Width: DefaultWidth, Height: DefaultHeight}
	if o.sizeSet {
		size = o.size
	} else if sz, ok := host.(Sizer); ok {
		if hs := sz.Size(); hs.Width > 0 && hs.Height > 0 {
			size = hs
		}
	}
	return newSurface(host, size, o), nil
}

// Listeners keeps track of event listeners. Hosts can embed it to
// implement the Listen method, and call Dispatch to deliver events.
// The zero value is ready to use.
type Listeners struct {
	mu     sync.Mutex
	nextID int
	byType map[EventType][]listener
}

type listener struct {
	id int
	fn func(*RawEvent)
}

// Listen registers fn for events of type t.
func (l *Listeners) Listen(t EventType, fn func(*RawEvent)) func() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.byType == nil {
		l.byType = make(map[EventType][]listener)
	}
	l.nextID++
	id := l.nextID
	l.byType[t] = append(l.byType[t], listener{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() { l.remove(t, id) })
	}
}

func (l *Listeners) remove(t EventType, id int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ll := l.byType[t]
	for i, e := range ll {
		if e.id == id {
			l.byType[t] = append(ll[:i:i], ll[i+1:]...)
			return
		}
	}
}

// Dispatch calls all listeners registered for ev.Type, in the order of
// registration. Listeners may add or remove listeners while running.
func (l *Listeners) Dispatch(ev *RawEvent) {
	l.mu.Lock()
	ll := append([]listener(nil), l.byType[ev.Type]...)
	l.mu.Unlock()

	for _, e := range ll {
		e.fn(ev)
	}
}

// Len returns the number of listeners registered for t.
func (l *Listeners) Len(t EventType) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.byType[t])
}

// detachedHost backs surfaces which are not part of a document.
// Events can still be delivered through Dispatch.
type detachedHost struct {
	Listeners
}

func (*detachedHost) Origin() Point {
	return Point{}
}

// Dispatch delivers ev to the handlers registered on s. For surfaces
// attached to a document the host normally does this.
func (s *Surface) Dispatch(ev *RawEvent) {
	if d, ok := s.host.(interface{ Dispatch(*RawEvent) }); ok {
		d.Dispatch(ev)
	}
}
