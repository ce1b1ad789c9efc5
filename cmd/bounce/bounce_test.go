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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seehuhn.de/go/canvas"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fname, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return fname
}

func TestLoadConfig(t *testing.T) {
	yamlFile := writeFile(t, "bounce.yaml", `
width: 100
height: 80
frames: 3
scene: lines
seed: 7
clicks:
  - frame: 1
    x: 20
    y: 30
`)
	tomlFile := writeFile(t, "bounce.toml", `
width = 100
height = 80
frames = 3
scene = "lines"
seed = 7

[[clicks]]
frame = 1
x = 20.0
y = 30.0
`)

	for _, fname := range []string{yamlFile, tomlFile} {
		cfg, err := loadConfig(fname)
		if err != nil {
			t.Fatalf("%s: %v", filepath.Base(fname), err)
		}
		if cfg.Width != 100 || cfg.Height != 80 || cfg.Frames != 3 {
			t.Errorf("%s: wrong size or frames: %+v", filepath.Base(fname), cfg)
		}
		if cfg.Scene != "lines" || cfg.Seed != 7 {
			t.Errorf("%s: wrong scene or seed: %+v", filepath.Base(fname), cfg)
		}
		// unset values keep their defaults
		if cfg.Balls != 5 || cfg.Background != "#fff" {
			t.Errorf("%s: defaults lost: %+v", filepath.Base(fname), cfg)
		}
		if len(cfg.Clicks) != 1 || cfg.Clicks[0] != (click{Frame: 1, X: 20, Y: 30}) {
			t.Errorf("%s: wrong clicks %v", filepath.Base(fname), cfg.Clicks)
		}
	}
}

func TestLoadConfigMissing(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "none.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	def := defaultConfig()
	if cfg.Width != def.Width || cfg.Height != def.Height || cfg.Frames != def.Frames ||
		cfg.Scene != def.Scene || cfg.Balls != def.Balls || cfg.Clicks != nil {
		t.Errorf("got %+v, want defaults", cfg)
	}

	cfg, err = loadConfig("")
	if err != nil || cfg.Scene != "balls" {
		t.Errorf("empty name: %+v, %v", cfg, err)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	cases := []struct {
		name, content, msg string
	}{
		{"a.json", `{}`, "unsupported"},
		{"b.yaml", "width: [", "failed to parse"},
		{"c.yaml", "width: -1", "invalid size"},
		{"d.toml", `scene = "nope"`, "unknown scene"},
		{"e.yaml", "frames: 0", "frames"},
		{"f.yaml", "frames: 2\nclicks:\n  - frame: 5\n", "outside"},
	}
	for _, c := range cases {
		_, err := loadConfig(writeFile(t, c.name, c.content))
		if err == nil {
			t.Errorf("%s: no error", c.name)
			continue
		}
		if !strings.Contains(err.Error(), c.msg) {
			t.Errorf("%s: error %q does not mention %q", c.name, err, c.msg)
		}
	}
}

func TestRunScenes(t *testing.T) {
	for name := range scenes {
		t.Run(name, func(t *testing.T) {
			cfg := defaultConfig()
			cfg.Width, cfg.Height = 120, 90
			cfg.Frames = 4
			cfg.Scene = name

			frames := 0
			err := run(cfg, func(frame int, s *canvas.Surface) error {
				if frame != frames {
					t.Errorf("got frame %d, want %d", frame, frames)
				}
				frames++
				if s.Width() != 120 || s.Height() != 90 {
					t.Errorf("wrong size %dx%d", s.Width(), s.Height())
				}
				return nil
			})
			if err != nil {
				t.Fatal(err)
			}
			if frames != cfg.Frames {
				t.Errorf("got %d frames, want %d", frames, cfg.Frames)
			}
		})
	}
}

func TestClickAddsBall(t *testing.T) {
	cfg := defaultConfig()
	cfg.Width, cfg.Height = 200, 200
	cfg.Balls = 0
	cfg.Frames = 2
	cfg.Background = "#fff"
	cfg.Clicks = []click{{Frame: 1, X: 100 + clientOffset, Y: 100 + clientOffset}}

	var last canvas.Pixel
	err := run(cfg, func(frame int, s *canvas.Surface) error {
		p, _ := s.ReadPixelAt(100, 100, false)
		if frame == 0 && p != (canvas.Pixel{R: 255, G: 255, B: 255, A: 255}) {
			t.Errorf("frame 0: got %v, want white", p)
		}
		last = p
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if last == (canvas.Pixel{R: 255, G: 255, B: 255, A: 255}) {
		t.Error("click did not add a ball at the click position")
	}
}
