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

// Package pdfout writes display lists as single-page PDF files.
//
// Lines and rectangles become vector graphics. Colors with alpha below 1
// are blended with the page background before writing. Text labels are
// not included; use the raster package for images with text.
package pdfout

import (
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/riemann"
)

// Write creates a PDF file at path showing the display list.
// One display list unit is one PDF point.
func Write(path string, dl *riemann.DisplayList) error {
	if dl.Width <= 0 || dl.Height <= 0 {
		return fmt.Errorf("pdfout: %w: %gx%g", riemann.ErrViewport, dl.Width, dl.Height)
	}

	paper := &pdf.Rectangle{URx: dl.Width, URy: dl.Height}
	page, err := document.CreateSinglePage(path, paper, pdf.V1_7, nil)
	if err != nil {
		return fmt.Errorf("pdfout: %w", err)
	}

	bg := dl.Background.Over(riemann.Black)
	page.SetFillColor(deviceColor(bg))
	page.Rectangle(0, 0, dl.Width, dl.Height)
	page.Fill()

	// PDF user space already has y pointing up; only move the origin
	// to the page center.
	page.Transform(matrix.Matrix{1, 0, 0, 1, dl.Width / 2, dl.Height / 2})

	page.SetLineCap(graphics.LineCapButt)
	for _, l := range dl.Grid {
		strokeLine(page, l, bg)
	}
	for _, l := range dl.Curve {
		strokeLine(page, l, bg)
	}
	for _, r := range dl.Bars {
		fillRect(page, r, bg)
	}
	if dl.AreaLabel != nil && dl.AreaLabel.Box != nil {
		fillRect(page, *dl.AreaLabel.Box, bg)
	}

	if err := page.Close(); err != nil {
		return fmt.Errorf("pdfout: %w", err)
	}
	return nil
}

func strokeLine(page *document.Page, l riemann.Line, bg riemann.Color) {
	if l.Width <= 0 {
		return
	}
	page.SetLineWidth(l.Width)
	page.SetStrokeColor(deviceColor(l.Color.Over(bg)))
	page.MoveTo(l.From.X, l.From.Y)
	page.LineTo(l.To.X, l.To.Y)
	page.Stroke()
}

func fillRect(page *document.Page, r riemann.Rect, bg riemann.Color) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	page.SetFillColor(deviceColor(r.Color.Over(bg)))
	page.Rectangle(r.Min.X, r.Min.Y, r.Width, r.Height)
	page.Fill()
}

func deviceColor(c riemann.Color) color.Color {
	return color.DeviceRGB{c.R, c.G, c.B}
}
