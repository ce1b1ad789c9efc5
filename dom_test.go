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
	"errors"
	"testing"
)

type fakeElement struct {
	tag      string
	children []Element
}

func (e *fakeElement) TagName() string { return e.tag }

func (e *fakeElement) AppendChild(child Element) {
	e.children = append(e.children, child)
}

type fakeCanvas struct {
	fakeElement
	testHost
}

type fakeDocument struct {
	byID    map[string]Element
	created []Element
	noHost  bool
}

func (d *fakeDocument) QuerySelector(sel string) Element {
	if e, ok := d.byID[sel]; ok {
		return e
	}
	return nil
}

func (d *fakeDocument) CreateElement(tag string) Element {
	var e Element
	if tag == "canvas" && !d.noHost {
		e = &fakeCanvas{fakeElement: fakeElement{tag: tag}, testHost: testHost{size: Size{Width: 640, Height: 480}}}
	} else {
		e = &fakeElement{tag: tag}
	}
	d.created = append(d.created, e)
	return e
}

func TestOpenMissingElement(t *testing.T) {
	doc := &fakeDocument{}
	if _, err := Open(doc, "#nothing"); !errors.Is(err, ErrNoRootElement) {
		t.Errorf("got %v", err)
	}
	if _, err := Open(nil, "#x"); !errors.Is(err, ErrNoRootElement) {
		t.Errorf("nil document: %v", err)
	}
	if _, err := Attach(doc, nil); !errors.Is(err, ErrNoRootElement) {
		t.Errorf("nil element: %v", err)
	}
}

func TestOpenCreatesCanvas(t *testing.T) {
	root := &fakeElement{tag: "div"}
	doc := &fakeDocument{byID: map[string]Element{"#root": root}}

	s, err := Open(doc, "#root")
	if err != nil {
		t.Fatal(err)
	}
	if len(root.children) != 1 || root.children[0].TagName() != "canvas" {
		t.Fatalf("children %v", root.children)
	}
	if s.Host() != root.children[0].(Host) {
		t.Error("surface does not draw into the new canvas")
	}
	if s.Size() != (Size{Width: 640, Height: 480}) {
		t.Errorf("size %v, want the host size", s.Size())
	}
}

func TestAttachExistingCanvas(t *testing.T) {
	cv := &fakeCanvas{fakeElement: fakeElement{tag: "canvas"}}
	doc := &fakeDocument{byID: map[string]Element{"#c": cv}}

	s, err := Open(doc, "#c", WithSize(32, 16))
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.created) != 0 || len(cv.children) != 0 {
		t.Error("a new element was created")
	}
	if s.Size() != (Size{Width: 32, Height: 16}) || cv.size != s.Size() {
		t.Errorf("size %v, host size %v", s.Size(), cv.size)
	}

	// without WithSize and without a host size the default applies
	bare := &fakeCanvas{fakeElement: fakeElement{tag: "canvas"}}
	s, err = Attach(doc, bare)
	if err != nil {
		t.Fatal(err)
	}
	if s.Size() != (Size{Width: DefaultWidth, Height: DefaultHeight}) {
		t.Errorf("default size %v", s.Size())
	}
}

func TestAttachNonHostCanvas(t *testing.T) {
	root := &fakeElement{tag: "div"}
	doc := &fakeDocument{noHost: true}
	if _, err := Attach(doc, root); !errors.Is(err, ErrNoRootElement) {
		t.Errorf("got %v", err)
	}
	if len(root.children) != 0 {
		t.Error("unusable element was appended")
	}
}

func TestAttachOptionError(t *testing.T) {
	cv := &fakeCanvas{fakeElement: fakeElement{tag: "canvas"}}
	_, err := Attach(nil, cv, WithFontFamily("x", nil))
	if !errors.Is(err, ErrInvalidStyle) {
		t.Errorf("got %v", err)
	}
}

func TestListenersDuringDispatch(t *testing.T) {
	var l Listeners
	var order []int
	var remove2 func()
	l.Listen(MouseClick, func(*RawEvent) {
		order = append(order, 1)
		remove2()
		l.Listen(MouseClick, func(*RawEvent) { order = append(order, 3) })
	})
	remove2 = l.Listen(MouseClick, func(*RawEvent) { order = append(order, 2) })

	l.Dispatch(&RawEvent{Type: MouseClick})
	l.Dispatch(&RawEvent{Type: MouseClick})

	want := []int{1, 2, 1, 3}
	if len(order) != len(want) {
		t.Fatalf("got %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("got %v, want %v", order, want)
		}
	}
}
