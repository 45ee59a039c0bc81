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
	"image/color"
	"math"
)

// Color is a non-premultiplied sRGB color with alpha.
// All components are in the range [0, 1].
type Color struct {
	R float64 `json:"r" msgpack:"r"`
	G float64 `json:"g" msgpack:"g"`
	B float64 `json:"b" msgpack:"b"`
	A float64 `json:"a" msgpack:"a"`
}

// Some fixed colors.
var (
	Black = Color{0, 0, 0, 1}
	White = Color{1, 1, 1, 1}

	// Guide is used for the axis, the helper lines and their labels.
	Guide = Color{1, 1, 1, 0.5}
)

// HSLA converts a color in HSL representation to a Color.
// The hue h is measured in full turns; values outside [0, 1) wrap around.
func HSLA(h, s, l, a float64) Color {
	h -= math.Floor(h)
	s = clamp(s, 0, 1)
	l = clamp(l, 0, 1)

	c := (1 - math.Abs(2*l-1)) * s
	hp := h * 6
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))

	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	m := l - c/2
	return Color{R: r + m, G: g + m, B: b + m, A: clamp(a, 0, 1)}
}

// NRGBA converts c to an 8-bit color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(c.A),
	}
}

// Over composites c on top of an opaque background and returns the
// resulting opaque color.
func (c Color) Over(bg Color) Color {
	return Color{
		R: c.R*c.A + bg.R*(1-c.A),
		G: c.G*c.A + bg.G*(1-c.A),
		B: c.B*c.A + bg.B*(1-c.A),
		A: 1,
	}
}

func to8(v float64) uint8 {
	return uint8(math.Round(clamp(v, 0, 1) * 255))
}

// Hues of the area bars, in turns.
const (
	PositiveHue = 120.0 / 360.0
	NegativeHue = 7.0 / 360.0
)

// CurveColor returns the color of the curve at domain value x.
// The hue rotates with the horizontal position and with time t (seconds).
func CurveColor(x, domainWidth, t float64) Color {
	return HSLA(x/domainWidth-0.1*t, 0.7, 0.5, 1)
}

// BarColor returns the color of the bar starting at x0.
// Positive contributions are green, all others red. The lightness pulses
// with time t (seconds) and the position of the bar.
func BarColor(x0, domainWidth, contribution, t float64) Color {
	hue := NegativeHue
	if contribution > 0 {
		hue = PositiveHue
	}
	l := math.Sin(t-x0/domainWidth)/4 + 0.25
	return HSLA(hue, 0.7, l, 0.5)
}
