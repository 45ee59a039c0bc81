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

package riemann

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// MinMaxAbs is used in place of the largest absolute function value when
// no sample has a non-zero value. It keeps the vertical scale finite.
const MinMaxAbs = 1e-6

// Sample is a point where the function was evaluated.
type Sample struct {
	X       float64
	Y       float64 // zero if undefined
	Defined bool
}

// Evaluate evaluates e at every point of xs.
func Evaluate(e Evaluator, xs []float64) []Sample {
	res := make([]Sample, len(xs))
	for i, x := range xs {
		y, ok := e.Evaluate(x)
		if !ok {
			y = 0
		}
		res[i] = Sample{X: x, Y: y, Defined: ok}
	}
	return res
}

// Segment is the rectangle belonging to one pair of consecutive samples.
type Segment struct {
	X0     float64 // x-coordinate of the left sample
	Width  float64 // x1 - x0, negative if the samples are out of order
	Height float64 // function value at X0, zero if undefined

	// Contribution is |Width| * Height. Its sign is the sign of Height.
	Contribution float64
}

// AreaResult is the outcome of a Riemann summation.
type AreaResult struct {
	Total    float64
	Segments []Segment
}

// Accumulate computes the Riemann sum over the len(samples)-1 pairs of
// consecutive samples. Each pair contributes the value at its first
// sample times the distance between the two samples. Undefined samples
// contribute zero.
func Accumulate(samples []Sample) AreaResult {
	if len(samples) < 2 {
		return AreaResult{}
	}

	segs := make([]Segment, len(samples)-1)
	contrib := make([]float64, len(segs))
	for i := range segs {
		s0, s1 := samples[i], samples[i+1]
		width := s1.X - s0.X
		height := 0.0
		if s0.Defined {
			height = s0.Y
		}
		c := math.Abs(width) * height
		segs[i] = Segment{X0: s0.X, Width: width, Height: height, Contribution: c}
		contrib[i] = c
	}

	return AreaResult{
		Total:    floats.Sum(contrib),
		Segments: segs,
	}
}

// MaxAbs returns the largest |y| over the defined samples.
// If no defined sample has a non-zero value, MinMaxAbs is returned.
func MaxAbs(samples []Sample) float64 {
	m := 0.0
	for _, s := range samples {
		if s.Defined {
			m = max(m, math.Abs(s.Y))
		}
	}
	if m == 0 {
		return MinMaxAbs
	}
	return m
}
