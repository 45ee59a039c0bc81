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

// Package riemann computes Riemann-sum approximations of the integral of a
// real function and turns them into drawing primitives.
//
// Every frame is computed from scratch from a [Config] snapshot and the
// elapsed time: partition points are generated, moved inside their
// subintervals according to a [PickStrategy], evaluated, summed to a
// signed area, and mapped to screen space. The result is a [DisplayList]
// which a rendering backend (see package seehuhn.de/go/riemann/raster)
// turns into pixels.
package riemann

import (
	"time"

	"gonum.org/v1/gonum/integrate"
)

// Pipeline computes frames for a fixed function and viewport.
// A Pipeline has no mutable state and can be used concurrently.
type Pipeline struct {
	eval     Evaluator
	viewport Viewport
}

// NewPipeline returns a pipeline for the function e, drawing into a
// viewport of the given size.
func NewPipeline(e Evaluator, vp Viewport) *Pipeline {
	return &Pipeline{eval: e, viewport: vp}
}

// Viewport returns the viewport the pipeline draws into.
func (p *Pipeline) Viewport() Viewport {
	return p.viewport
}

// Frame holds all intermediate and final results for one frame.
type Frame struct {
	Config     Config
	Elapsed    time.Duration
	Boundaries []float64
	Samples    []Sample
	Area       AreaResult
	View       ViewTransform
	Display    *DisplayList
}

// Frame runs the full pipeline for one frame.
// The result only depends on cfg and elapsed.
func (p *Pipeline) Frame(cfg Config, elapsed time.Duration) (*Frame, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	bounds, err := Boundaries(cfg.A, cfg.B, cfg.N)
	if err != nil {
		return nil, err
	}
	xs, err := Samples(cfg)
	if err != nil {
		return nil, err
	}
	samples := Evaluate(p.eval, xs)
	area := Accumulate(samples)

	view, err := NewViewTransform(cfg.A, cfg.B, cfg.Zoom, MaxAbs(samples), p.viewport)
	if err != nil {
		return nil, err
	}

	return &Frame{
		Config:     cfg,
		Elapsed:    elapsed,
		Boundaries: bounds,
		Samples:    samples,
		Area:       area,
		View:       view,
		Display:    present(cfg, p.viewport, view, samples, area, elapsed.Seconds()),
	}, nil
}

// referencePanels is the number of trapezoids used by Reference.
const referencePanels = 4096

// Reference approximates the integral of the function over [cfg.A, cfg.B]
// with the trapezoidal rule on a fine uniform grid. Points where the
// function is undefined count as zero, like in the Riemann sum.
func (p *Pipeline) Reference(cfg Config) (float64, error) {
	xs, err := Boundaries(cfg.A, cfg.B, referencePanels)
	if err != nil {
		return 0, err
	}
	samples := Evaluate(p.eval, xs)
	ys := make([]float64, len(samples))
	for i, s := range samples {
		ys[i] = s.Y
	}
	return integrate.Trapezoidal(xs, ys), nil
}
