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

package raster

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// coverageGrid collects emitted coverage into a w×h buffer.
type coverageGrid struct {
	w, h int
	pix  []float32
}

func newCoverageGrid(w, h int) *coverageGrid {
	return &coverageGrid{w: w, h: h, pix: make([]float32, w*h)}
}

func (g *coverageGrid) emit(y, xMin int, coverage []float32) {
	copy(g.pix[y*g.w+xMin:], coverage)
}

func (g *coverageGrid) at(x, y int) float32 {
	return g.pix[y*g.w+x]
}

func (g *coverageGrid) total() float64 {
	var sum float64
	for _, c := range g.pix {
		sum += float64(c)
	}
	return sum
}

// polyline returns a single subpath through pts, closed if requested.
func polyline(closed bool, pts ...vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for i, pt := range pts {
			cmd := path.CmdLineTo
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			if !yield(cmd, []vec.Vec2{pt}) {
				return
			}
		}
		if closed {
			yield(path.CmdClose, nil)
		}
	}
}

// join concatenates the subpaths of several paths.
func join(ps ...path.Path) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, p := range ps {
			for cmd, pts := range p {
				if !yield(cmd, pts) {
					return
				}
			}
		}
	}
}

// TestTriangleCoverage verifies exact coverage values for a simple triangle.
// The triangle (0,0)→(10,0)→(10,1)→close has a diagonal edge y = x/10.
// Each pixel X should have coverage (2X+1)/20: 0.05, 0.15, ..., 0.95.
func TestTriangleCoverage(t *testing.T) {
	triangle := polyline(true,
		vec.Vec2{X: 0, Y: 0},
		vec.Vec2{X: 10, Y: 0},
		vec.Vec2{X: 10, Y: 1})

	r := NewRasteriser(rect.Rect{URx: 10, URy: 1})
	g := newCoverageGrid(10, 1)
	r.FillNonZero(triangle, g.emit)

	const epsilon = 1e-6
	for x := range 10 {
		expected := float32(2*x+1) / 20
		if math.Abs(float64(g.at(x, 0)-expected)) > epsilon {
			t.Errorf("pixel %d: expected coverage %.4f, got %.4f", x, expected, g.at(x, 0))
		}
	}
}

func TestFillAlignedRect(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 10, URy: 10})
	g := newCoverageGrid(10, 10)
	r.FillNonZero(rectangle(2, 3, 6, 5), g.emit)

	for y := range 10 {
		for x := range 10 {
			var want float32
			if x >= 2 && x < 6 && y >= 3 && y < 5 {
				want = 1
			}
			if got := g.at(x, y); math.Abs(float64(got-want)) > 1e-6 {
				t.Errorf("pixel (%d,%d): expected %.2f, got %.4f", x, y, want, got)
			}
		}
	}
}

func TestFillHalfPixel(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 4, URy: 2})
	g := newCoverageGrid(4, 2)
	r.FillNonZero(rectangle(0, 0.5, 2.5, 1.5), g.emit)

	cases := []struct {
		x, y int
		want float32
	}{
		{0, 0, 0.5}, {1, 0, 0.5}, {2, 0, 0.25}, {3, 0, 0},
		{0, 1, 0.5}, {1, 1, 0.5}, {2, 1, 0.25}, {3, 1, 0},
	}
	for _, tc := range cases {
		if got := g.at(tc.x, tc.y); math.Abs(float64(got-tc.want)) > 1e-6 {
			t.Errorf("pixel (%d,%d): expected %.2f, got %.4f", tc.x, tc.y, tc.want, got)
		}
	}
}

// TestAreaConservation checks that the total coverage of a shape inside
// the clip region equals its area.
func TestAreaConservation(t *testing.T) {
	shapes := []struct {
		name string
		path path.Path
		area float64
	}{
		{"triangle", polyline(true,
			vec.Vec2{X: 1.3, Y: 1.1},
			vec.Vec2{X: 17.7, Y: 4.2},
			vec.Vec2{X: 6.1, Y: 18.9}), 0.5 * math.Abs((17.7-1.3)*(18.9-1.1)-(6.1-1.3)*(4.2-1.1))},
		{"open_rect", polyline(false,
			vec.Vec2{X: 2.5, Y: 2.5},
			vec.Vec2{X: 12.25, Y: 2.5},
			vec.Vec2{X: 12.25, Y: 7.75},
			vec.Vec2{X: 2.5, Y: 7.75}), 9.75 * 5.25},
	}
	for _, s := range shapes {
		t.Run(s.name, func(t *testing.T) {
			r := NewRasteriser(rect.Rect{URx: 20, URy: 20})
			g := newCoverageGrid(20, 20)
			r.FillNonZero(s.path, g.emit)
			if got := g.total(); math.Abs(got-s.area) > 1e-3 {
				t.Errorf("expected area %.4f, got %.4f", s.area, got)
			}
		})
	}
}

func TestFillRules(t *testing.T) {
	// two overlapping squares with the same orientation
	p := join(rectangle(0, 0, 4, 4), rectangle(2, 0, 6, 4))

	r := NewRasteriser(rect.Rect{URx: 6, URy: 4})

	nz := newCoverageGrid(6, 4)
	r.FillNonZero(p, nz.emit)
	eo := newCoverageGrid(6, 4)
	r.FillEvenOdd(p, eo.emit)

	for x := range 6 {
		overlap := x >= 2 && x < 4
		if got := nz.at(x, 1); math.Abs(float64(got-1)) > 1e-6 {
			t.Errorf("nonzero pixel %d: expected 1, got %.4f", x, got)
		}
		want := float32(1)
		if overlap {
			want = 0
		}
		if got := eo.at(x, 1); math.Abs(float64(got-want)) > 1e-6 {
			t.Errorf("even-odd pixel %d: expected %.0f, got %.4f", x, want, got)
		}
	}
}

func TestClipLeft(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 10, URy: 2})
	g := newCoverageGrid(10, 2)
	r.FillNonZero(rectangle(-5, 0, 3, 2), g.emit)

	for x := range 10 {
		var want float32
		if x < 3 {
			want = 1
		}
		if got := g.at(x, 0); math.Abs(float64(got-want)) > 1e-6 {
			t.Errorf("pixel %d: expected %.0f, got %.4f", x, want, got)
		}
	}
	if got := g.total(); math.Abs(got-6) > 1e-5 {
		t.Errorf("expected total 6, got %.4f", got)
	}
}

func TestCTM(t *testing.T) {
	// flip the y-axis and move the origin to the center of a 10×10 image
	r := NewRasteriser(rect.Rect{URx: 10, URy: 10})
	r.CTM = matrix.Matrix{1, 0, 0, -1, 5, 5}
	g := newCoverageGrid(10, 10)
	r.FillNonZero(rectangle(0, 1, 2, 3), g.emit)

	// user y in [1, 3] maps to device rows 2 and 3
	for y := range 10 {
		var want float32
		if y == 2 || y == 3 {
			want = 1
		}
		if got := g.at(5, y); math.Abs(float64(got-want)) > 1e-6 {
			t.Errorf("row %d: expected %.0f, got %.4f", y, want, got)
		}
	}
}

func TestStrokeLine(t *testing.T) {
	// the 24-gon approximating a unit disc
	disc := 0.5 * roundCapSteps * math.Sin(2*math.Pi/roundCapSteps)

	cases := []struct {
		name string
		cap  graphics.LineCapStyle
		area float64
	}{
		{"butt", graphics.LineCapButt, 16},
		{"square", graphics.LineCapSquare, 20},
		{"round", graphics.LineCapRound, 16 + disc},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewRasteriser(rect.Rect{URx: 12, URy: 10})
			r.Width = 2
			r.Cap = tc.cap
			g := newCoverageGrid(12, 10)
			r.StrokeLine(vec.Vec2{X: 2, Y: 5}, vec.Vec2{X: 10, Y: 5}, g.emit)

			if got := g.total(); math.Abs(got-tc.area) > 1e-3 {
				t.Errorf("expected area %.4f, got %.4f", tc.area, got)
			}
			if got := g.at(6, 4); math.Abs(float64(got-1)) > 1e-6 {
				t.Errorf("center pixel: expected 1, got %.4f", got)
			}
		})
	}
}

func TestStrokePath(t *testing.T) {
	// an L-shaped polyline; the pieces overlap in the corner square
	p := polyline(false,
		vec.Vec2{X: 1, Y: 5},
		vec.Vec2{X: 8, Y: 5},
		vec.Vec2{X: 8, Y: 1})

	r := NewRasteriser(rect.Rect{URx: 10, URy: 10})
	r.Width = 2
	r.Cap = graphics.LineCapSquare
	g := newCoverageGrid(10, 10)
	r.Stroke(p, g.emit)

	// horizontal piece [0,9]×[4,6], vertical piece [7,9]×[0,6]
	want := 9.0*2 + 2*6 - 2*2
	if got := g.total(); math.Abs(got-want) > 1e-3 {
		t.Errorf("expected area %.1f, got %.4f", want, got)
	}
	if got := g.at(7, 4); math.Abs(float64(got-1)) > 1e-6 {
		t.Errorf("corner pixel: expected 1, got %.4f", got)
	}
}

func TestZeroLengthStroke(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 10, URy: 10})
	r.Width = 2
	called := false
	r.StrokeLine(vec.Vec2{X: 5, Y: 5}, vec.Vec2{X: 5, Y: 5}, func(int, int, []float32) {
		called = true
	})
	if called {
		t.Error("zero-length segment with butt caps produced output")
	}
}
