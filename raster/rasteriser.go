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

// Package raster draws display lists into images.
//
// The [Rasteriser] computes anti-aliased pixel coverage for filled paths
// and stroked line segments. A [Canvas] uses it to paint a
// [riemann.DisplayList] into an [image.RGBA].
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// edge is a non-horizontal line segment in device coordinates,
// stored with y0 < y1.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
	dir    float32 // +1 if the original segment pointed down, -1 if up
}

func (e *edge) xAt(y float64) float64 {
	return e.x0 + (y-e.y0)*e.dxdy
}

// Rasteriser converts paths to pixel coverage values, the fraction of
// each pixel covered by the shape, in the range 0 to 1.
//
// Internal buffers are reused between calls, so that a single Rasteriser
// can draw many shapes without allocating. A Rasteriser is not safe for
// concurrent use.
type Rasteriser struct {
	// CTM maps user space to device space. It must be non-singular.
	CTM matrix.Matrix

	// Clip restricts the output to this device-space rectangle.
	// Coordinates must be integers.
	Clip rect.Rect

	// Width is the stroke width in user-space units.
	Width float64

	// Cap is the style used for the ends of stroked segments.
	Cap graphics.LineCapStyle

	cover  []float32 // per-pixel change of the winding number
	area   []float32 // per-pixel partial coverage
	edges  []edge
	active []int
	poly   []vec.Vec2

	xMin, xMax, yMin, yMax float64 // device bounding box of edges
}

// NewRasteriser returns a Rasteriser for the given clip rectangle, with
// identity CTM, unit stroke width and butt caps.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffer capacity is kept.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.edges = r.edges[:0]
	r.active = r.active[:0]
	r.poly = r.poly[:0]
}

// FillNonZero fills the path using the nonzero winding rule.
// The emit callback receives coverage row by row; the slice is only valid
// during the call.
func (r *Rasteriser) FillNonZero(p path.Path, emit func(y, xMin int, coverage []float32)) {
	r.beginEdges()
	r.addPath(p)
	r.scan(false, emit)
}

// FillEvenOdd fills the path using the even-odd rule.
// The emit callback receives coverage row by row; the slice is only valid
// during the call.
func (r *Rasteriser) FillEvenOdd(p path.Path, emit func(y, xMin int, coverage []float32)) {
	r.beginEdges()
	r.addPath(p)
	r.scan(true, emit)
}

func (r *Rasteriser) beginEdges() {
	r.edges = r.edges[:0]
	r.xMin, r.yMin = math.Inf(1), math.Inf(1)
	r.xMax, r.yMax = math.Inf(-1), math.Inf(-1)
}

// curveSteps is the number of line segments used for each Bézier curve.
const curveSteps = 16

// addPath adds the edges of all subpaths of p. Open subpaths are closed
// implicitly.
func (r *Rasteriser) addPath(p path.Path) {
	var cur, start vec.Vec2
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = pts[0]
			start = cur
		case path.CmdLineTo:
			r.addEdge(cur, pts[0])
			cur = pts[0]
		case path.CmdQuadTo:
			p0, p1, p2 := cur, pts[0], pts[1]
			for i := 1; i <= curveSteps; i++ {
				t := float64(i) / curveSteps
				s := 1 - t
				next := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
				r.addEdge(cur, next)
				cur = next
			}
		case path.CmdCubeTo:
			p0, p1, p2, p3 := cur, pts[0], pts[1], pts[2]
			for i := 1; i <= curveSteps; i++ {
				t := float64(i) / curveSteps
				s := 1 - t
				next := p0.Mul(s * s * s).Add(p1.Mul(3 * s * s * t)).
					Add(p2.Mul(3 * s * t * t)).Add(p3.Mul(t * t * t))
				r.addEdge(cur, next)
				cur = next
			}
		case path.CmdClose:
			r.addEdge(cur, start)
			cur = start
		}
	}
	if cur != start {
		r.addEdge(cur, start)
	}
}

// addPolygon adds the edges of a closed polygon given in user space.
func (r *Rasteriser) addPolygon(pts []vec.Vec2) {
	if len(pts) < 3 {
		return
	}
	prev := pts[len(pts)-1]
	for _, pt := range pts {
		r.addEdge(prev, pt)
		prev = pt
	}
}

// addEdge transforms a user-space segment to device space and records it.
// Horizontal segments do not change coverage and are dropped.
func (r *Rasteriser) addEdge(a, b vec.Vec2) {
	m := r.CTM
	ax := m[0]*a.X + m[2]*a.Y + m[4]
	ay := m[1]*a.X + m[3]*a.Y + m[5]
	bx := m[0]*b.X + m[2]*b.Y + m[4]
	by := m[1]*b.X + m[3]*b.Y + m[5]

	if math.Abs(by-ay) < horizontalEdgeThreshold {
		return
	}

	e := edge{x0: ax, y0: ay, x1: bx, y1: by, dir: 1}
	if by < ay {
		e = edge{x0: bx, y0: by, x1: ax, y1: ay, dir: -1}
	}
	e.dxdy = (e.x1 - e.x0) / (e.y1 - e.y0)
	r.edges = append(r.edges, e)

	r.xMin = min(r.xMin, ax, bx)
	r.xMax = max(r.xMax, ax, bx)
	r.yMin = min(r.yMin, e.y0)
	r.yMax = max(r.yMax, e.y1)
}

// scan walks the scanlines covered by the collected edges, using an
// active edge list, and emits the coverage of each non-empty row.
func (r *Rasteriser) scan(evenOdd bool, emit func(y, xMin int, coverage []float32)) {
	if len(r.edges) == 0 {
		return
	}

	x0 := max(int(math.Floor(r.xMin)), int(r.Clip.LLx))
	x1 := min(int(math.Floor(r.xMax))+1, int(r.Clip.URx))
	y0 := max(int(math.Floor(r.yMin)), int(r.Clip.LLy))
	y1 := min(int(math.Floor(r.yMax))+1, int(r.Clip.URy))
	if x0 >= x1 || y0 >= y1 {
		return
	}
	width := x1 - x0

	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.y0, b.y0)
	})
	r.active = r.active[:0]
	next := 0

	for y := y0; y < y1; y++ {
		top := float64(y)
		bot := top + 1

		for next < len(r.edges) && r.edges[next].y0 < bot {
			r.active = append(r.active, next)
			next++
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.y1 <= top {
				r.active[i] = r.active[len(r.active)-1]
				r.active = r.active[:len(r.active)-1]
				continue
			}
			if r.addSpan(e, top, bot, x0, x1) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		if evenOdd {
			integrateEvenOdd(r.cover, r.area)
		} else {
			integrateNonZero(r.cover, r.area)
		}
		if row, offs := trimZeros(r.cover); row != nil {
			emit(y, x0+offs, row)
		}
	}
}

// addSpan accumulates the part of e inside the scanline [top, bot).
// Pixel columns x0, ..., x1-1 are stored at cover[0], ..., cover[x1-x0-1].
// The return value reports whether anything was added.
func (r *Rasteriser) addSpan(e *edge, top, bot float64, x0, x1 int) bool {
	ya := max(top, e.y0)
	yb := min(bot, e.y1)
	if yb <= ya {
		return false
	}
	xa, xb := e.xAt(ya), e.xAt(yb)
	dy := yb - ya

	lo, hi := min(xa, xb), max(xa, xb)
	first, last := int(math.Floor(lo)), int(math.Floor(hi))
	if first == last || hi-lo < 1e-12 {
		r.addCell(first, (lo+hi)/2, e.dir*float32(dy), x0, x1)
		return true
	}

	// the segment crosses pixel columns: split it at the column
	// boundaries and give each piece its share of dy
	for px := first; px <= last; px++ {
		l := max(lo, float64(px))
		h := min(hi, float64(px+1))
		if h <= l {
			continue
		}
		r.addCell(px, (l+h)/2, e.dir*float32(dy*(h-l)/(hi-lo)), x0, x1)
	}
	return true
}

// addCell records a piece of edge with vertical extent c (signed) crossing
// pixel column px at mean x-coordinate xMid.
func (r *Rasteriser) addCell(px int, xMid float64, c float32, x0, x1 int) {
	switch {
	case px >= x1:
		// right of the clip region: no effect on visible pixels
	case px < x0:
		// left of the clip region: everything visible is covered
		r.cover[0] += c
		r.area[0] += c
	default:
		i := px - x0
		r.cover[i] += c
		r.area[i] += c * float32(1-(xMid-float64(px)))
	}
}

// integrateNonZero turns accumulated cover/area values into coverage,
// in place, using the nonzero winding rule.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// integrateEvenOdd turns accumulated cover/area values into coverage,
// in place, using the even-odd rule.
func integrateEvenOdd(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		v -= 2 * float32(math.Floor(float64(v/2)))
		if v > 1 {
			v = 2 - v
		}
		cover[i] = v
	}
}

// trimZeros returns the part of coverage between the first and last
// non-zero entries, together with its offset. All-zero rows give nil.
func trimZeros(coverage []float32) ([]float32, int) {
	lo := 0
	for lo < len(coverage) && coverage[lo] == 0 {
		lo++
	}
	if lo == len(coverage) {
		return nil, 0
	}
	hi := len(coverage)
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

const (
	// horizontalEdgeThreshold is the smallest device-space height of an
	// edge which still contributes to coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the shortest stroked segment which is drawn.
	zeroLengthThreshold = 1e-10
)
