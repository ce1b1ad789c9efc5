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

// Bounce renders a short animation on a headless canvas and writes the
// frames as PNG files.
//
// Usage:
//
//	bounce [-config file.yaml|file.toml] [-o dir] [-v]
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"seehuhn.de/go/canvas"
	"seehuhn.de/go/canvas/headless"
)

func main() {
	configFile := flag.String("config", "", "YAML or TOML configuration file")
	outDir := flag.String("o", "frames", "output directory")
	verbose := flag.Bool("v", false, "log canvas internals")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	if *verbose {
		canvas.SetLogger(logger)
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		logger.Error("cannot load config", "error", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		logger.Error("cannot create output directory", "error", err)
		os.Exit(1)
	}

	err = run(cfg, func(frame int, s *canvas.Surface) error {
		fname := filepath.Join(*outDir, fmt.Sprintf("frame%04d.png", frame))
		logger.Debug("writing frame", "file", fname)
		return writePNG(fname, s)
	})
	if err != nil {
		logger.Error("rendering failed", "error", err)
		os.Exit(1)
	}
	logger.Info("done", "frames", cfg.Frames, "scene", cfg.Scene, "dir", *outDir)
}

// clientOffset is the position of the canvas inside the headless page.
const clientOffset = 8

// run renders all frames of cfg and passes each one to emit.
func run(cfg *config, emit func(frame int, s *canvas.Surface) error) error {
	doc := headless.NewDocument()
	stage := headless.NewCanvas()
	stage.SetID("stage")
	stage.SetOrigin(clientOffset, clientOffset)
	doc.Body().AppendChild(stage)

	s, err := canvas.Open(doc, "#stage",
		canvas.WithSize(cfg.Width, cfg.Height),
		canvas.WithSeed(cfg.Seed))
	if err != nil {
		return err
	}

	anim := scenes[cfg.Scene](cfg, s)
	for frame := range cfg.Frames {
		for _, cl := range cfg.Clicks {
			if cl.Frame == frame {
				stage.Click(cl.X, cl.Y)
			}
		}

		anim.step(s, frame)
		if err := s.Err(); err != nil {
			return fmt.Errorf("frame %d: %w", frame, err)
		}
		if err := emit(frame, s); err != nil {
			return err
		}
	}
	return nil
}

func writePNG(fname string, s *canvas.Surface) error {
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
