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
	"image"
	"image/png"
	"io"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/riemann"
)

// Canvas paints display lists into an RGBA image.
//
// Display list coordinates have the origin at the image center and the
// y-axis pointing up. If the display list size differs from the image
// size, the drawing is scaled to fill the image.
type Canvas struct {
	Img *image.RGBA

	r    *Rasteriser
	face font.Face
	mask *image.Alpha
}

// NewCanvas allocates a canvas with a width×height pixel image.
func NewCanvas(width, height int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	return &Canvas{
		Img:  img,
		r:    NewRasteriser(rect.Rect{URx: float64(width), URy: float64(height)}),
		face: basicfont.Face7x13,
	}
}

// Draw paints the display list, replacing the previous image content.
func (c *Canvas) Draw(dl *riemann.DisplayList) {
	b := c.Img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())

	c.r.Reset(rect.Rect{URx: w, URy: h})
	sx, sy := 1.0, 1.0
	if dl.Width > 0 && dl.Height > 0 {
		sx, sy = w/dl.Width, h/dl.Height
	}
	c.r.CTM = matrix.Matrix{sx, 0, 0, -sy, w / 2, h / 2}

	c.clear(dl.Background)
	for _, l := range dl.Grid {
		c.strokeLine(l)
	}
	for _, l := range dl.GridLabels {
		c.drawLabel(l)
	}
	for _, l := range dl.Curve {
		c.strokeLine(l)
	}
	for _, bar := range dl.Bars {
		c.fillRect(bar)
	}
	if dl.AreaLabel != nil {
		c.drawLabel(*dl.AreaLabel)
	}
}

func (c *Canvas) clear(col riemann.Color) {
	col = col.Over(riemann.Black)
	px := c.Img.Pix
	r, g, b := to8(col.R), to8(col.G), to8(col.B)
	for i := 0; i+3 < len(px); i += 4 {
		px[i], px[i+1], px[i+2], px[i+3] = r, g, b, 255
	}
}

func (c *Canvas) strokeLine(l riemann.Line) {
	c.r.Width = l.Width
	c.r.Cap = graphics.LineCapButt
	from := vec.Vec2{X: l.From.X, Y: l.From.Y}
	to := vec.Vec2{X: l.To.X, Y: l.To.Y}
	c.r.StrokeLine(from, to, c.blender(l.Color))
}

func (c *Canvas) fillRect(rc riemann.Rect) {
	if rc.Width <= 0 || rc.Height <= 0 {
		return
	}
	x0, y0 := rc.Min.X, rc.Min.Y
	x1, y1 := x0+rc.Width, y0+rc.Height

	c.r.FillNonZero(rectangle(x0, y0, x1, y1), c.blender(rc.Color))
}

// rectangle returns the closed path of an axis-aligned rectangle.
func rectangle(x0, y0, x1, y1 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [1]vec.Vec2
		buf[0] = vec.Vec2{X: x0, Y: y0}
		if !yield(path.CmdMoveTo, buf[:]) {
			return
		}
		buf[0] = vec.Vec2{X: x1, Y: y0}
		if !yield(path.CmdLineTo, buf[:]) {
			return
		}
		buf[0] = vec.Vec2{X: x1, Y: y1}
		if !yield(path.CmdLineTo, buf[:]) {
			return
		}
		buf[0] = vec.Vec2{X: x0, Y: y1}
		if !yield(path.CmdLineTo, buf[:]) {
			return
		}
		yield(path.CmdClose, nil)
	}
}

// drawLabel renders the text with the bitmap face, scales it to the
// requested size and composites it centered on the anchor point.
func (c *Canvas) drawLabel(l riemann.Label) {
	if l.Box != nil {
		c.fillRect(*l.Box)
	}
	if l.Text == "" || l.Size <= 0 {
		return
	}

	m := c.face.Metrics()
	tw := font.MeasureString(c.face, l.Text).Ceil()
	th := m.Height.Ceil()
	if tw <= 0 || th <= 0 {
		return
	}
	src := image.NewAlpha(image.Rect(0, 0, tw, th))
	d := &font.Drawer{
		Dst:  src,
		Src:  image.Opaque,
		Face: c.face,
		Dot:  fixed.Point26_6{Y: m.Ascent},
	}
	d.DrawString(l.Text)

	ctm := c.r.CTM
	scale := l.Size * math.Abs(ctm[3]) / float64(th)
	dw := max(int(math.Round(float64(tw)*scale)), 1)
	dh := max(int(math.Round(float64(th)*scale)), 1)
	if c.mask == nil || c.mask.Rect.Dx() != dw || c.mask.Rect.Dy() != dh {
		c.mask = image.NewAlpha(image.Rect(0, 0, dw, dh))
	}
	xdraw.BiLinear.Scale(c.mask, c.mask.Rect, src, src.Rect, xdraw.Src, nil)

	cx := ctm[0]*l.At.X + ctm[2]*l.At.Y + ctm[4]
	cy := ctm[1]*l.At.X + ctm[3]*l.At.Y + ctm[5]
	left := int(math.Round(cx - float64(dw)/2))
	top := int(math.Round(cy - float64(dh)/2))

	emit := c.blender(l.Color)
	row := make([]float32, dw)
	for y := range dh {
		for x := range dw {
			row[x] = float32(c.mask.Pix[y*c.mask.Stride+x]) / 255
		}
		emitClipped(top+y, left, row, c.Img.Rect, emit)
	}
}

// emitClipped passes the visible part of a coverage row to emit.
func emitClipped(y, xMin int, row []float32, clip image.Rectangle, emit func(y, xMin int, coverage []float32)) {
	if y < clip.Min.Y || y >= clip.Max.Y {
		return
	}
	if xMin < clip.Min.X {
		skip := clip.Min.X - xMin
		if skip >= len(row) {
			return
		}
		row = row[skip:]
		xMin = clip.Min.X
	}
	if n := clip.Max.X - xMin; n < len(row) {
		if n <= 0 {
			return
		}
		row = row[:n]
	}
	emit(y, xMin, row)
}

// blender returns an emit callback which composites col over the image
// using the given coverage as an additional alpha factor.
func (c *Canvas) blender(col riemann.Color) func(y, xMin int, coverage []float32) {
	a := float32(col.A)
	sr, sg, sb := float32(col.R)*a, float32(col.G)*a, float32(col.B)*a
	img := c.Img
	return func(y, xMin int, coverage []float32) {
		off := img.PixOffset(xMin, y)
		for _, cv := range coverage {
			if cv > 0 {
				k := 1 - a*cv
				px := img.Pix[off : off+4 : off+4]
				px[0] = blendByte(sr*cv, px[0], k)
				px[1] = blendByte(sg*cv, px[1], k)
				px[2] = blendByte(sb*cv, px[2], k)
				px[3] = blendByte(a*cv, px[3], k)
			}
			off += 4
		}
	}
}

// blendByte computes src + dst*k, with src in [0, 1] and dst in [0, 255].
func blendByte(src float32, dst uint8, k float32) uint8 {
	v := src*255 + float32(dst)*k
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

func to8(v float64) uint8 {
	return uint8(math.Round(math.Min(math.Max(v, 0), 1) * 255))
}

// WritePNG encodes the image as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
