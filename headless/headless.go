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

// Package headless provides an in-memory document for drawing surfaces.
//
// The document holds a tree of elements which can be looked up by "#id",
// by tag name, or by "tag#id". Canvas elements act as drawing hosts: they
// have a position within the client area and deliver synthetic input
// events to the handlers of attached surfaces.
package headless

import (
	"strings"

	"seehuhn.de/go/canvas"
)

// Document is a tree of elements rooted at a body element.
type Document struct {
	body *Element
}

// NewDocument returns a document with an empty body.
func NewDocument() *Document {
	return &Document{body: &Element{tag: "body"}}
}

// Body returns the root element of d.
func (d *Document) Body() *Element {
	return d.body
}

// CreateElement returns a new element which is not yet part of the
// tree. The tag "canvas" gives a *Canvas.
func (d *Document) CreateElement(tag string) canvas.Element {
	tag = strings.ToLower(tag)
	if tag == "canvas" {
		return NewCanvas()
	}
	return &Element{tag: tag}
}

// QuerySelector returns the first element in document order which
// matches sel, or nil if there is none.
func (d *Document) QuerySelector(sel string) canvas.Element {
	tag, id, ok := parseSelector(sel)
	if !ok {
		canvas.Logger().Warn("unsupported selector", "selector", sel)
		return nil
	}
	var found canvas.Element
	var walk func(e canvas.Element) bool
	walk = func(e canvas.Element) bool {
		n := nodeOf(e)
		if n == nil {
			return false
		}
		if (tag == "" || n.tag == tag) && (id == "" || n.id == id) {
			found = e
			return true
		}
		for _, c := range n.children {
			if walk(c) {
				return true
			}
		}
		return false
	}
	walk(d.body)
	return found
}

// parseSelector splits selectors of the forms "tag", "#id" and "tag#id".
func parseSelector(sel string) (tag, id string, ok bool) {
	sel = strings.TrimSpace(sel)
	if sel == "" || strings.ContainsAny(sel, " .>[:,") {
		return "", "", false
	}
	tag, id, _ = strings.Cut(sel, "#")
	return strings.ToLower(tag), id, tag != "" || id != ""
}

// Element is a plain node of the document tree.
type Element struct {
	tag      string
	id       string
	parent   *Element
	children []canvas.Element
}

// NewElement returns a detached element.
func NewElement(tag, id string) *Element {
	return &Element{tag: strings.ToLower(tag), id: id}
}

// TagName returns the lower case tag of e.
func (e *Element) TagName() string {
	return e.tag
}

// ID returns the id attribute of e.
func (e *Element) ID() string {
	return e.id
}

// SetID sets the id attribute of e.
func (e *Element) SetID(id string) {
	e.id = id
}

// Parent returns the element containing e, or nil.
func (e *Element) Parent() *Element {
	return e.parent
}

// Children returns the child elements of e.
func (e *Element) Children() []canvas.Element {
	return e.children
}

// AppendChild adds child as the last child of e. Elements from other
// implementations are ignored.
func (e *Element) AppendChild(child canvas.Element) {
	n := nodeOf(child)
	if n == nil {
		canvas.Logger().Warn("foreign element not appended", "tag", child.TagName())
		return
	}
	n.parent = e
	e.children = append(e.children, child)
}

func (e *Element) node() *Element {
	return e
}

func nodeOf(e canvas.Element) *Element {
	if n, ok := e.(interface{ node() *Element }); ok {
		return n.node()
	}
	return nil
}
