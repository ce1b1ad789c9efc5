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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// config describes one run of the demo.
type config struct {
	Width      int     `yaml:"width" toml:"width"`
	Height     int     `yaml:"height" toml:"height"`
	Frames     int     `yaml:"frames" toml:"frames"`
	Scene      string  `yaml:"scene" toml:"scene"`
	Balls      int     `yaml:"balls" toml:"balls"`
	Seed       uint64  `yaml:"seed" toml:"seed"`
	Background string  `yaml:"background" toml:"background"`
	Clicks     []click `yaml:"clicks,omitempty" toml:"clicks,omitempty"`
}

// click is a scripted mouse click, in client coordinates.
type click struct {
	Frame int     `yaml:"frame" toml:"frame"`
	X     float64 `yaml:"x" toml:"x"`
	Y     float64 `yaml:"y" toml:"y"`
}

func defaultConfig() *config {
	return &config{
		Width:      320,
		Height:     240,
		Frames:     60,
		Scene:      "balls",
		Balls:      5,
		Seed:       1,
		Background: "#fff",
	}
}

// loadConfig reads the configuration file at fname. The format is
// chosen by the file extension. A missing file gives the defaults.
func loadConfig(fname string) (*config, error) {
	cfg := defaultConfig()
	if fname == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(fname)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", fname, err)
	}

	switch ext := strings.ToLower(filepath.Ext(fname)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		_, err = toml.Decode(string(data), cfg)
	default:
		return nil, fmt.Errorf("%s: unsupported config format %q", fname, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", fname, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return cfg, nil
}

func (c *config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d", c.Width, c.Height)
	}
	if c.Frames < 1 {
		return fmt.Errorf("frames must be positive (got %d)", c.Frames)
	}
	if c.Balls < 0 {
		return fmt.Errorf("balls must not be negative (got %d)", c.Balls)
	}
	if _, ok := scenes[c.Scene]; !ok {
		return fmt.Errorf("unknown scene %q", c.Scene)
	}
	for _, cl := range c.Clicks {
		if cl.Frame < 0 || cl.Frame >= c.Frames {
			return fmt.Errorf("click at frame %d outside 0..%d", cl.Frame, c.Frames-1)
		}
	}
	return nil
}
