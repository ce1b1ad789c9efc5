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

// Sketch opens a window with a drawing surface. Drag the mouse to draw,
// double click to clear the surface.
package main

import (
	"flag"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"seehuhn.de/go/canvas"
	"seehuhn.de/go/canvas/fynehost"
)

func main() {
	width := flag.Int("width", 640, "surface width")
	height := flag.Int("height", 480, "surface height")
	pen := flag.String("pen", "#000", "pen colour")
	lineWidth := flag.Float64("line-width", 3, "pen width")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	canvas.SetLogger(logger)

	a := app.New()
	view := fynehost.New(*width, *height)
	s, err := canvas.Attach(nil, view, canvas.WithSize(*width, *height))
	if err != nil {
		logger.Error("cannot create surface", "error", err)
		os.Exit(1)
	}
	s.SetErrorHandler(func(err error) {
		logger.Warn("event handler failed", "error", err)
	})

	sk := newSketch(s, view.Present)
	if err := sk.setPen(*pen, *lineWidth); err != nil {
		logger.Error("invalid pen", "error", err)
		os.Exit(1)
	}
	sk.clear()

	win := a.NewWindow("Sketch")
	win.SetContent(view)
	win.Resize(fyne.NewSize(float32(*width), float32(*height)))
	win.ShowAndRun()
}
