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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threePanelConfig() Config {
	cfg := DefaultConfig()
	cfg.A, cfg.B, cfg.N, cfg.Pick, cfg.Zoom = -1, 2, 3, Low, 1
	return cfg
}

func TestFrame(t *testing.T) {
	p := NewPipeline(Cubic, DefaultViewport)
	f, err := p.Frame(threePanelConfig(), 0)
	require.NoError(t, err)

	assert.Equal(t, []float64{-1, 0, 1, 2}, f.Boundaries)
	assert.Len(t, f.Samples, 4)
	assert.Equal(t, 0.0, f.Area.Total)
	assert.InDelta(t, 1600.0/3, f.View.ScaleX, 1e-9)
	assert.Equal(t, 118.75, f.View.ScaleY)

	dl := f.Display
	assert.Equal(t, 1600.0, dl.Width)
	assert.Equal(t, 950.0, dl.Height)
	assert.Len(t, dl.Grid, 1) // x-axis only
	assert.Empty(t, dl.GridLabels)
	assert.Len(t, dl.Curve, 3)
	require.Len(t, dl.Bars, 3)

	// first bar: x from -1 to 0, height f(-1) = -1, hanging below the axis
	b := dl.Bars[0]
	assert.InDelta(t, -800, b.Min.X, 1e-9)
	assert.InDelta(t, 1600.0/3, b.Width, 1e-9)
	assert.Equal(t, -118.75, b.Min.Y)
	assert.Equal(t, 118.75, b.Height)
	assert.Equal(t, BarColor(-1, 3, -1, 0), b.Color)

	// second bar has zero height and is red
	assert.Equal(t, 0.0, dl.Bars[1].Height)
	assert.Equal(t, BarColor(0, 3, 0, 0), dl.Bars[1].Color)

	require.NotNil(t, dl.AreaLabel)
	assert.Equal(t, "0.000", dl.AreaLabel.Text)
	assert.Equal(t, Point{0, -455}, dl.AreaLabel.At)
	require.NotNil(t, dl.AreaLabel.Box)
	assert.Equal(t, Point{-50, -475}, dl.AreaLabel.Box.Min)
	assert.Equal(t, Black, dl.AreaLabel.Box.Color)

	first := dl.Curve[0]
	assert.InDelta(t, -800, first.From.X, 1e-9)
	assert.Equal(t, -118.75, first.From.Y)
	assert.InDelta(t, -800+1600.0/3, first.To.X, 1e-9)
	assert.Equal(t, 0.0, first.To.Y)
	assert.Equal(t, CurveColor(-1, 3, 0), first.Color)
}

func TestNegativeBars(t *testing.T) {
	cfg := threePanelConfig()
	cfg.A = 1.5 // f < 0 on [1.5, 2]
	cfg.N = 4

	f, err := NewPipeline(Cubic, DefaultViewport).Frame(cfg, time.Second)
	require.NoError(t, err)
	require.Less(t, f.Area.Total, 0.0)
	for i, b := range f.Display.Bars {
		seg := f.Area.Segments[i]
		assert.Less(t, seg.Contribution, 0.0)
		assert.GreaterOrEqual(t, b.Height, 0.0)
		assert.InDelta(t, f.View.ScreenY(seg.Height), b.Min.Y, 1e-9)
		assert.Equal(t, BarColor(seg.X0, 0.5, seg.Contribution, 1), b.Color)
	}
}

func TestFrameHelpers(t *testing.T) {
	cfg := threePanelConfig()
	cfg.ShowHelpers = true

	f, err := NewPipeline(Cubic, DefaultViewport).Frame(cfg, 0)
	require.NoError(t, err)
	dl := f.Display

	// x-axis, y-axis, 21 horizontal and 20 vertical ticks
	assert.Len(t, dl.Grid, 1+1+21+20)
	assert.Len(t, dl.GridLabels, 11+10)

	yAxis := dl.Grid[1]
	assert.InDelta(t, f.View.OriginOffsetX, yAxis.From.X, 1e-9)
	assert.Equal(t, -475.0, yAxis.From.Y)
	assert.Equal(t, 475.0, yAxis.To.Y)

	assert.Equal(t, "-1.50", dl.GridLabels[0].Text)
	assert.Equal(t, "1.50", dl.GridLabels[10].Text)
	assert.Equal(t, "-4.00", dl.GridLabels[11].Text)
	assert.Equal(t, "4.00", dl.GridLabels[20].Text)
	for _, l := range dl.GridLabels {
		assert.Equal(t, Guide, l.Color)
	}
}

func TestFrameWithoutArea(t *testing.T) {
	cfg := threePanelConfig()
	cfg.ShowArea = false

	f, err := NewPipeline(Cubic, DefaultViewport).Frame(cfg, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, f.Area.Total)
	assert.Empty(t, f.Display.Bars)
	assert.Nil(t, f.Display.AreaLabel)
	assert.Len(t, f.Display.Curve, 3)
}

func TestFrameBreaksCurveAtUndefined(t *testing.T) {
	reciprocal, err := Lookup("reciprocal")
	require.NoError(t, err)

	f, err := NewPipeline(reciprocal, DefaultViewport).Frame(threePanelConfig(), 0)
	require.NoError(t, err)
	assert.Len(t, f.Display.Curve, 1)
	assert.Equal(t, 0.0, f.Area.Total)
	assert.Equal(t, 1.0, f.View.VerticalExtent/2)
}

func TestFrameIsReproducible(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pick = Random
	p := NewPipeline(Cubic, DefaultViewport)

	f1, err := p.Frame(cfg, 1500*time.Millisecond)
	require.NoError(t, err)
	f2, err := p.Frame(cfg, 1500*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, f1, f2)

	// time only changes colors
	f3, err := p.Frame(cfg, 2500*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, f1.Area, f3.Area)
	assert.NotEqual(t, f1.Display.Bars[0].Color, f3.Display.Bars[0].Color)
}

func TestFrameRejectsInvalidConfig(t *testing.T) {
	p := NewPipeline(Cubic, DefaultViewport)

	cfg := DefaultConfig()
	cfg.B = cfg.A
	_, err := p.Frame(cfg, 0)
	assert.ErrorIs(t, err, ErrDegenerateInterval)

	cfg = DefaultConfig()
	cfg.Zoom = 0
	_, err = p.Frame(cfg, 0)
	assert.ErrorIs(t, err, ErrZoom)

	_, err = NewPipeline(Cubic, Viewport{}).Frame(DefaultConfig(), 0)
	assert.ErrorIs(t, err, ErrViewport)
}

func TestReference(t *testing.T) {
	p := NewPipeline(Cubic, DefaultViewport)
	ref, err := p.Reference(DefaultConfig())
	require.NoError(t, err)
	assert.InDelta(t, -0.75, ref, 1e-5)

	cfg := DefaultConfig()
	cfg.B = cfg.A
	_, err = p.Reference(cfg)
	assert.ErrorIs(t, err, ErrDegenerateInterval)
}
