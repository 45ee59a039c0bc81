// seehuhn.de/go/riemann - an interactive Riemann sum explorer
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

// Package explorer holds the state of a running explorer session and
// turns user actions and elapsed time into rendered frames.
package explorer

import (
	"fmt"
	"image"
	"math"
	"time"

	"github.com/rs/zerolog"

	"seehuhn.de/go/riemann"
	"seehuhn.de/go/riemann/internal/settings"
	"seehuhn.de/go/riemann/raster"
)

// Explorer combines the current settings with a pipeline and a canvas.
// It is not safe for concurrent use.
type Explorer struct {
	cfg      riemann.Config
	function string
	pipeline *riemann.Pipeline
	canvas   *raster.Canvas
	log      zerolog.Logger

	editing bool // seed editing mode
}

// New creates an explorer from finished settings.
func New(s *settings.Settings, log zerolog.Logger) (*Explorer, error) {
	e, err := riemann.Lookup(s.Function)
	if err != nil {
		return nil, err
	}
	vp := s.Viewport()
	w, h := int(math.Round(vp.Width)), int(math.Round(vp.Height))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("window %dx%d: %w", w, h, riemann.ErrViewport)
	}
	return &Explorer{
		cfg:      s.Explorer,
		function: s.Function,
		pipeline: riemann.NewPipeline(e, vp),
		canvas:   raster.NewCanvas(w, h),
		log:      log,
	}, nil
}

// Config returns the current settings.
func (x *Explorer) Config() riemann.Config {
	return x.cfg
}

// Size returns the size of the rendered image in pixels.
func (x *Explorer) Size() (int, int) {
	b := x.canvas.Img.Bounds()
	return b.Dx(), b.Dy()
}

// Apply performs the action and reports whether the settings changed.
func (x *Explorer) Apply(a Action) bool {
	next := applyAction(x.cfg, a)
	if next == x.cfg {
		return false
	}
	x.cfg = next
	x.log.Debug().
		Stringer("action", a).
		Int("n", next.N).
		Float64("a", next.A).
		Float64("b", next.B).
		Stringer("pick", next.Pick).
		Float64("custom", next.CustomFraction).
		Float64("zoom", next.Zoom).
		Msg("settings changed")
	return true
}

// Editing reports whether typed characters currently go to the seed.
func (x *Explorer) Editing() bool {
	return x.editing
}

// ToggleEditing switches seed editing mode on or off.
func (x *Explorer) ToggleEditing() {
	x.editing = !x.editing
	if !x.editing {
		x.log.Debug().Str("seed", x.cfg.Seed).Msg("seed changed")
	}
}

// Type edits the seed while in seed editing mode.
func (x *Explorer) Type(typed []rune, backspaces int) {
	if !x.editing {
		return
	}
	x.cfg.Seed = editSeed(x.cfg.Seed, typed, backspaces)
}

// Render computes the frame for the given animation time and draws it
// into the explorer's image.
func (x *Explorer) Render(elapsed time.Duration) (*riemann.Frame, error) {
	f, err := x.pipeline.Frame(x.cfg, elapsed)
	if err != nil {
		return nil, err
	}
	x.canvas.Draw(f.Display)
	return f, nil
}

// Image returns the most recently rendered image.
// The image is overwritten by the next call to Render.
func (x *Explorer) Image() *image.RGBA {
	return x.canvas.Img
}

// Reference returns the reference integral for the current settings.
func (x *Explorer) Reference() (float64, error) {
	return x.pipeline.Reference(x.cfg)
}

// Status returns a one-line summary of the frame.
func (x *Explorer) Status(f *riemann.Frame) string {
	cfg := f.Config
	pick := cfg.Pick.String()
	if cfg.Pick == riemann.Custom {
		pick = fmt.Sprintf("%s %.2f", pick, cfg.CustomFraction)
	}
	seed := ""
	if cfg.Pick == riemann.Random || x.editing {
		seed = fmt.Sprintf("  seed %q", cfg.Seed)
		if x.editing {
			seed += " (editing)"
		}
	}
	return fmt.Sprintf("f=%s  n=%d  [%.2f, %.2f]  %s  zoom %.1f  area %.4f%s",
		x.function, cfg.N, cfg.A, cfg.B, pick, cfg.Zoom, f.Area.Total, seed)
}
