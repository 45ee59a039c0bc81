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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// strokeSegment is a straight piece of a stroked path with precomputed
// geometry.
type strokeSegment struct {
	A, B vec.Vec2 // endpoints
	T    vec.Vec2 // unit tangent from A to B
	N    vec.Vec2 // unit normal, T rotated 90° anticlockwise
}

func newStrokeSegment(a, b vec.Vec2) (strokeSegment, bool) {
	d := b.Sub(a)
	l := d.Length()
	if l < zeroLengthThreshold {
		return strokeSegment{}, false
	}
	t := d.Mul(1 / l)
	return strokeSegment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}}, true
}

// roundCapSteps is the number of polygon vertices used for a round cap.
const roundCapSteps = 24

// StrokeLine strokes the segment from a to b using r.Width and r.Cap.
// Zero-length segments are only drawn for round caps.
func (r *Rasteriser) StrokeLine(a, b vec.Vec2, emit func(y, xMin int, coverage []float32)) {
	r.beginEdges()
	r.addLine(a, b)
	r.scan(false, emit)
}

// Stroke strokes every segment of the path. Curves are replaced by their
// chords. Segments are capped individually and no joins are drawn.
func (r *Rasteriser) Stroke(p path.Path, emit func(y, xMin int, coverage []float32)) {
	r.beginEdges()
	var cur, start vec.Vec2
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			cur = pts[0]
			start = cur
		case path.CmdLineTo, path.CmdQuadTo, path.CmdCubeTo:
			end := pts[len(pts)-1]
			r.addLine(cur, end)
			cur = end
		case path.CmdClose:
			r.addLine(cur, start)
			cur = start
		}
	}
	r.scan(false, emit)
}

// addLine adds the outline of one stroked segment. All outlines are
// clockwise, so that overlapping pieces merge under the nonzero rule.
func (r *Rasteriser) addLine(a, b vec.Vec2) {
	d := r.Width / 2
	if d <= 0 {
		return
	}

	seg, ok := newStrokeSegment(a, b)
	if !ok {
		if r.Cap == graphics.LineCapRound {
			r.addDisc(a, d)
		}
		return
	}

	if r.Cap == graphics.LineCapSquare {
		seg.A = seg.A.Sub(seg.T.Mul(d))
		seg.B = seg.B.Add(seg.T.Mul(d))
	}
	off := seg.N.Mul(d)
	r.poly = append(r.poly[:0],
		seg.A.Add(off),
		seg.B.Add(off),
		seg.B.Sub(off),
		seg.A.Sub(off),
	)
	r.addPolygon(r.poly)

	if r.Cap == graphics.LineCapRound {
		r.addDisc(seg.A, d)
		r.addDisc(seg.B, d)
	}
}

// addDisc adds a clockwise polygon approximating a circle.
func (r *Rasteriser) addDisc(c vec.Vec2, radius float64) {
	r.poly = r.poly[:0]
	for i := range roundCapSteps {
		phi := -2 * math.Pi * float64(i) / roundCapSteps
		r.poly = append(r.poly, vec.Vec2{
			X: c.X + radius*math.Cos(phi),
			Y: c.Y + radius*math.Sin(phi),
		})
	}
	r.addPolygon(r.poly)
}
