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
)

// Viewport is the size of the drawing area in pixels.
type Viewport struct {
	Width, Height float64
}

// DefaultViewport is the size of the application window.
var DefaultViewport = Viewport{Width: 1600, Height: 950}

// ViewTransform maps domain/range coordinates to screen coordinates.
//
// Screen coordinates have their origin in the center of the viewport,
// with x pointing right and y pointing up. The center of the integration
// interval is mapped to screen x = 0, and y = 0 is mapped to screen y = 0.
type ViewTransform struct {
	ScaleX float64 // pixels per domain unit
	ScaleY float64 // pixels per range unit

	// OriginOffsetX is the screen x-coordinate of domain value 0.
	OriginOffsetX float64

	Center         float64 // domain value shown at screen x = 0
	DomainWidth    float64 // b - a
	VerticalExtent float64 // 2 * max |y|
}

// NewViewTransform computes the transform which fits the interval [a, b]
// and the range [-maxAbsY, maxAbsY] into the viewport.
// Larger zoom values show a wider slice of both, so the graph appears
// smaller.
func NewViewTransform(a, b, zoom, maxAbsY float64, vp Viewport) (ViewTransform, error) {
	if !(a < b) {
		return ViewTransform{}, fmt.Errorf("[%g, %g]: %w", a, b, ErrDegenerateInterval)
	}
	if !(zoom > 0) {
		return ViewTransform{}, fmt.Errorf("zoom=%g: %w", zoom, ErrZoom)
	}
	if !(vp.Width > 0 && vp.Height > 0) {
		return ViewTransform{}, fmt.Errorf("%gx%g: %w", vp.Width, vp.Height, ErrViewport)
	}
	if !(maxAbsY > 0) || math.IsInf(maxAbsY, 0) {
		maxAbsY = MinMaxAbs
	}

	domainWidth := b - a
	verticalExtent := 2 * maxAbsY
	center := domainWidth/2 + a
	scaleX := vp.Width / (zoom * domainWidth)
	scaleY := vp.Height / (zoom * verticalExtent)

	return ViewTransform{
		ScaleX:         scaleX,
		ScaleY:         scaleY,
		OriginOffsetX:  -center * scaleX,
		Center:         center,
		DomainWidth:    domainWidth,
		VerticalExtent: verticalExtent,
	}, nil
}

// ScreenX maps a domain value to a screen x-coordinate.
func (v ViewTransform) ScreenX(x float64) float64 {
	return (x - v.Center) * v.ScaleX
}

// ScreenY maps a range value to a screen y-coordinate.
func (v ViewTransform) ScreenY(y float64) float64 {
	return y * v.ScaleY
}

// ToScreen maps a point in domain/range space to screen space.
func (v ViewTransform) ToScreen(x, y float64) Point {
	return Point{X: v.ScreenX(x), Y: v.ScreenY(y)}
}

// ToDomain is the inverse of ToScreen.
func (v ViewTransform) ToDomain(p Point) (x, y float64) {
	return p.X/v.ScaleX + v.Center, p.Y / v.ScaleY
}
