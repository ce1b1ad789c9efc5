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
	"strings"

	"golang.org/x/exp/rand"
	"golang.org/x/image/font/sfnt"
	"gonum.org/v1/gonum/stat/distuv"

	"seehuhn.de/go/canvas/internal/raster"
)

// Option configures a Surface during creation.
//
// Example:
//
//	s := canvas.New(640, 480, canvas.WithFont("12px monospace"), canvas.WithSeed(1))
type Option func(*options)

// options holds the settings collected from Option values.
type options struct {
	size     Size
	sizeSet  bool
	font     string
	random   distuv.Uniform
	flatness float64
	families map[string]*sfnt.Font
	onError  ErrorHandler
	err      error
}

func defaultOptions() options {
	return options{
		font:     DefaultFont,
		random:   distuv.UnitUniform,
		flatness: raster.DefaultFlatness,
		families: map[string]*sfnt.Font{},
	}
}

// WithSize sets the initial size of a surface created by Open or Attach.
// Without it, the size of an existing canvas element is used, or
// 300×150 for a new element.
func WithSize(width, height int) Option {
	return func(o *options) {
		o.size = Size{Width: max(width, 0), Height: max(height, 0)}
		o.sizeSet = true
	}
}

// WithFont sets the initial font, given as a CSS font string.
func WithFont(css string) Option {
	return func(o *options) {
		o.font = css
	}
}

// WithSeed makes the random colour and line operations deterministic.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.random = distuv.Uniform{Min: 0, Max: 1, Src: rand.NewSource(seed)}
	}
}

// WithFlatness sets the curve approximation tolerance in device pixels.
// Smaller values give smoother curves at a higher cost.
func WithFlatness(tolerance float64) Option {
	return func(o *options) {
		if tolerance > 0 {
			o.flatness = tolerance
		}
	}
}

// WithFontFamily registers a TrueType or OpenType font under a family
// name, for use in font strings. Family names are case insensitive.
func WithFontFamily(name string, data []byte) Option {
	return func(o *options) {
		f, err := sfnt.Parse(data)
		if err != nil {
			if o.err == nil {
				o.err = &Error{ErrorCode: InvalidStyle, Detail: fmt.Sprintf("font family %q", name), Err: err}
			}
			return
		}
		o.families[strings.ToLower(name)] = f
	}
}

// WithErrorHandler sets the function which receives errors raised by
// event handlers, see [Surface.SetErrorHandler].
func WithErrorHandler(h ErrorHandler) Option {
	return func(o *options) {
		o.onError = h
	}
}
