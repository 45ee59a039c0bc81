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

package explorer

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"seehuhn.de/go/riemann/pdfout"
	"seehuhn.de/go/riemann/raster"
)

// HeadlessConfig controls the no-window runner.
type HeadlessConfig struct {
	Hz     float64 // frame rate
	Frames int     // stop after this many frames, 0 = run until cancelled
	OutDir string  // PNG files are written here
	PDF    bool    // also write PDF files
}

// RunHeadless renders frames at a fixed rate and writes them to files.
// The animation time of frame i is i/Hz, independent of how long
// rendering takes. It returns ctx.Err() when ctx is cancelled.
func (x *Explorer) RunHeadless(ctx context.Context, cfg HeadlessConfig) error {
	if !(cfg.Hz > 0) {
		return fmt.Errorf("invalid headless hz: %g", cfg.Hz)
	}
	if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
		return err
	}

	d := time.Duration(float64(time.Second) / cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %g", cfg.Hz)
	}

	ref, err := x.Reference()
	if err != nil {
		return err
	}
	x.log.Info().
		Str("function", x.function).
		Int("n", x.cfg.N).
		Float64("a", x.cfg.A).
		Float64("b", x.cfg.B).
		Stringer("pick", x.cfg.Pick).
		Float64("reference", ref).
		Str("out", cfg.OutDir).
		Msg("headless rendering started")

	t := time.NewTicker(d)
	defer t.Stop()

	var frame int
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			elapsed := time.Duration(frame) * d
			f, err := x.Render(elapsed)
			if err != nil {
				return err
			}

			base := filepath.Join(cfg.OutDir, fmt.Sprintf("frame_%05d", frame))
			if err := writePNG(base+".png", x.canvas); err != nil {
				return err
			}
			if cfg.PDF {
				if err := pdfout.Write(base+".pdf", f.Display); err != nil {
					return err
				}
			}

			x.log.Debug().
				Int("frame", frame).
				Dur("elapsed", elapsed).
				Float64("area", f.Area.Total).
				Float64("error", f.Area.Total-ref).
				Msg("frame written")

			frame++
			if cfg.Frames > 0 && frame >= cfg.Frames {
				x.log.Info().
					Int("frames", frame).
					Float64("area", f.Area.Total).
					Float64("reference", ref).
					Float64("error", f.Area.Total-ref).
					Float64("relative_error", relErr(f.Area.Total, ref)).
					Msg("headless rendering finished")
				return nil
			}
		}
	}
}

func relErr(approx, exact float64) float64 {
	if exact == 0 {
		return math.Abs(approx)
	}
	return math.Abs((approx - exact) / exact)
}

func writePNG(fname string, c *raster.Canvas) (err error) {
	out, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	return raster.WritePNG(out, c.Img)
}
