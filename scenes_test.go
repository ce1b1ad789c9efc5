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

package canvas_test

import (
	"encoding/base64"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"seehuhn.de/go/canvas"
	"seehuhn.de/go/canvas/testcases"
)

func TestScenes(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			name := category + "_" + sc.Name
			t.Run(name, func(t *testing.T) {
				s := sc.Render()
				if err := s.Err(); err != nil {
					t.Fatalf("unexpected error: %v", err)
				}

				failed := false
				for _, p := range sc.Probes {
					got, ok := p.Check(s)
					if !ok {
						t.Errorf("pixel (%g, %g): got %v, want %v", p.X, p.Y, got, p.Want)
						failed = true
					}
				}
				if ink := testcases.Ink(s); ink < sc.MinInk {
					t.Errorf("only %d pixels painted, want at least %d", ink, sc.MinInk)
					failed = true
				}
				if failed {
					writeDebugImage(name, s)
				}
			})
		}
	}
}

func TestScenesDataURL(t *testing.T) {
	sc := testcases.All["primitive"][0]
	s := sc.Render()

	url, err := s.ToDataURL()
	if err != nil {
		t.Fatal(err)
	}
	const prefix = "data:image/png;base64,"
	if !strings.HasPrefix(url, prefix) {
		t.Fatalf("unexpected prefix in %.40q", url)
	}
	data, err := base64.StdEncoding.DecodeString(url[len(prefix):])
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(strings.NewReader(string(data)))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != sc.Width || b.Dy() != sc.Height {
		t.Errorf("decoded size %dx%d, want %dx%d", b.Dx(), b.Dy(), sc.Width, sc.Height)
	}
}

func writeDebugImage(name string, s *canvas.Surface) {
	os.MkdirAll("debug", 0755)

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return
	}
	defer f.Close()
	png.Encode(f, s.Image())
}
