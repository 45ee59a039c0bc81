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
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCubicThreePanels(t *testing.T) {
	cfg := DefaultConfig()
	cfg.A, cfg.B, cfg.N, cfg.Pick = -1, 2, 3, Low

	xs, err := Samples(cfg)
	require.NoError(t, err)
	require.Equal(t, []float64{-1, 0, 1, 2}, xs)

	samples := Evaluate(Cubic, xs)
	ys := make([]float64, len(samples))
	for i, s := range samples {
		require.True(t, s.Defined)
		ys[i] = s.Y
	}
	assert.Equal(t, []float64{-1, 0, 1, -4}, ys)

	res := Accumulate(samples)
	require.Len(t, res.Segments, 3)
	for _, seg := range res.Segments {
		assert.Equal(t, 1.0, seg.Width)
	}
	assert.Equal(t, -1.0, res.Segments[0].Contribution)
	assert.Equal(t, 0.0, res.Segments[1].Contribution)
	assert.Equal(t, 1.0, res.Segments[2].Contribution)
	assert.Equal(t, 0.0, res.Total)

	assert.Equal(t, 4.0, MaxAbs(samples))
}

// TestLowSumFromTable uses a function given by its values at the
// partition boundaries.
func TestLowSumFromTable(t *testing.T) {
	table := map[float64]float64{-1: 1, 0: 0, 1: 1, 2: -4}
	f := Func(func(x float64) (float64, bool) {
		y, ok := table[x]
		return y, ok
	})

	cfg := DefaultConfig()
	cfg.A, cfg.B, cfg.N, cfg.Pick = -1, 2, 3, Low
	xs, err := Samples(cfg)
	require.NoError(t, err)

	res := Accumulate(Evaluate(f, xs))
	require.Len(t, res.Segments, 3)
	assert.Equal(t, []float64{1, 0, 1},
		[]float64{res.Segments[0].Contribution, res.Segments[1].Contribution, res.Segments[2].Contribution})
	assert.Equal(t, 2.0, res.Total)
}

func TestAreaIsLinear(t *testing.T) {
	for _, pick := range []PickStrategy{Low, High, Random, Custom} {
		cfg := DefaultConfig()
		cfg.N = 57
		cfg.Pick = pick

		xs, err := Samples(cfg)
		require.NoError(t, err)
		base := Accumulate(Evaluate(Cubic, xs)).Total
		for _, k := range []float64{-2, 0, 0.5, 3} {
			scaled := Accumulate(Evaluate(Scale(Cubic, k), xs)).Total
			assert.InDelta(t, k*base, scaled, 1e-9, "%s, k=%g", pick, k)
		}
	}
}

func TestAllUndefined(t *testing.T) {
	nowhere := Func(func(float64) (float64, bool) { return 0, false })

	cfg := DefaultConfig()
	xs, err := Samples(cfg)
	require.NoError(t, err)
	samples := Evaluate(nowhere, xs)

	res := Accumulate(samples)
	assert.Equal(t, 0.0, res.Total)
	assert.Len(t, res.Segments, cfg.N)
	assert.Equal(t, MinMaxAbs, MaxAbs(samples))

	p := NewPipeline(nowhere, DefaultViewport)
	frame, err := p.Frame(cfg, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, frame.Area.Total)
	assert.Empty(t, frame.Display.Curve)
	assert.False(t, math.IsInf(frame.View.ScaleY, 0))
	assert.False(t, math.IsNaN(frame.View.ScaleY))
}

func TestTooFewSamples(t *testing.T) {
	assert.Equal(t, AreaResult{}, Accumulate(nil))
	assert.Equal(t, AreaResult{}, Accumulate([]Sample{{X: 1, Y: 2, Defined: true}}))
	assert.Equal(t, MinMaxAbs, MaxAbs(nil))
}

func TestUndefinedContributesZero(t *testing.T) {
	reciprocal, err := Lookup("reciprocal")
	require.NoError(t, err)

	samples := Evaluate(reciprocal, []float64{-1, 0, 1, 2})
	assert.False(t, samples[1].Defined)
	assert.Equal(t, 0.0, samples[1].Y)

	res := Accumulate(samples)
	assert.Equal(t, -1.0, res.Segments[0].Contribution)
	assert.Equal(t, 0.0, res.Segments[1].Contribution)
	assert.Equal(t, 1.0, res.Segments[2].Contribution)
	assert.Equal(t, 0.0, res.Total)
}

func TestReversedWidthKeepsSign(t *testing.T) {
	samples := []Sample{
		{X: 1, Y: 3, Defined: true},
		{X: 0.5, Y: -1, Defined: true},
		{X: 0.75, Y: -1, Defined: true},
	}
	res := Accumulate(samples)
	assert.Equal(t, -0.5, res.Segments[0].Width)
	assert.Equal(t, 1.5, res.Segments[0].Contribution)
	assert.Equal(t, -0.25, res.Segments[1].Contribution)
	assert.Equal(t, 1.25, res.Total)
}

func TestConstantConverges(t *testing.T) {
	const c = 2.5
	cfg := DefaultConfig()
	cfg.Pick = Low
	for _, n := range []int{10, 100, 1000} {
		cfg.N = n
		xs, err := Samples(cfg)
		require.NoError(t, err)
		total := Accumulate(Evaluate(Constant(c), xs)).Total
		assert.InDelta(t, c*(cfg.B-cfg.A), total, 1/float64(n), "n=%d", n)
	}
}

func TestCubicConverges(t *testing.T) {
	// ∫_{-1}^{2} (-x³ + 2x) dx = -3/4
	const exact = -0.75

	cfg := DefaultConfig()
	cfg.Pick = Low
	prev := math.Inf(1)
	for _, n := range []int{10, 100, 1000} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			cfg.N = n
			xs, err := Samples(cfg)
			require.NoError(t, err)
			total := Accumulate(Evaluate(Cubic, xs)).Total
			e := math.Abs(total - exact)
			assert.Less(t, e, 10/float64(n))
			assert.Less(t, e, prev)
			prev = e
		})
	}
}
