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

// Export renders all scenes to PNG files and writes an index describing
// the probes of each scene, for comparison with other canvas
// implementations.
package main

import (
	"encoding/json"
	"flag"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/canvas/testcases"
)

func main() {
	outDir := flag.String("o", "testdata/scenes", "output directory")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		panic(err)
	}

	var out struct {
		Scenes []jsonScene `json:"scenes"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			name := category + "_" + sc.Name
			file := name + ".png"
			if err := writePNG(filepath.Join(*outDir, file), &sc); err != nil {
				panic(err)
			}
			out.Scenes = append(out.Scenes, toJSON(name, file, &sc))
		}
	}

	f, err := os.Create(filepath.Join(*outDir, "index.json"))
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

func writePNG(fname string, sc *testcases.Scene) error {
	s := sc.Render()
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := png.Encode(f, s.Image()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

type jsonScene struct {
	Name   string      `json:"name"`
	File   string      `json:"file"`
	Width  int         `json:"width"`
	Height int         `json:"height"`
	MinInk int         `json:"min_ink,omitempty"`
	Probes []jsonProbe `json:"probes,omitempty"`
}

type jsonProbe struct {
	X         float64  `json:"x"`
	Y         float64  `json:"y"`
	RGBA      [4]uint8 `json:"rgba"`
	Tolerance uint8    `json:"tolerance,omitempty"`
}

func toJSON(name, file string, sc *testcases.Scene) jsonScene {
	js := jsonScene{
		Name:   name,
		File:   file,
		Width:  sc.Width,
		Height: sc.Height,
		MinInk: sc.MinInk,
	}
	for _, p := range sc.Probes {
		js.Probes = append(js.Probes, jsonProbe{
			X:         p.X,
			Y:         p.Y,
			RGBA:      [4]uint8{p.Want.R, p.Want.G, p.Want.B, p.Want.A},
			Tolerance: p.Tolerance,
		})
	}
	return js
}
