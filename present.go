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

import "fmt"

// Point is a location in screen space.
type Point struct {
	X float64 `json:"x" msgpack:"x"`
	Y float64 `json:"y" msgpack:"y"`
}

// Line is a straight, colored line segment.
type Line struct {
	From  Point   `json:"from" msgpack:"from"`
	To    Point   `json:"to" msgpack:"to"`
	Width float64 `json:"width" msgpack:"width"`
	Color Color   `json:"color" msgpack:"color"`
}

// Rect is an axis-aligned filled rectangle.
// Min is the corner with the smallest coordinates; Width and Height are
// never negative.
type Rect struct {
	Min    Point   `json:"min" msgpack:"min"`
	Width  float64 `json:"width" msgpack:"width"`
	Height float64 `json:"height" msgpack:"height"`
	Color  Color   `json:"color" msgpack:"color"`
}

// Label is a line of text centered on At.
// If Box is set, the box is painted before the text.
type Label struct {
	At    Point   `json:"at" msgpack:"at"`
	Text  string  `json:"text" msgpack:"text"`
	Size  float64 `json:"size" msgpack:"size"` // pixel height
	Color Color   `json:"color" msgpack:"color"`
	Box   *Rect   `json:"box,omitempty" msgpack:"box,omitempty"`
}

// DisplayList holds everything needed to draw one frame.
// The fields are painted in declaration order, and the elements of each
// slice in slice order.
type DisplayList struct {
	Width      float64 `json:"width" msgpack:"width"`
	Height     float64 `json:"height" msgpack:"height"`
	Background Color   `json:"background" msgpack:"background"`

	Grid       []Line  `json:"grid" msgpack:"grid"`
	GridLabels []Label `json:"grid_labels,omitempty" msgpack:"grid_labels,omitempty"`
	Curve      []Line  `json:"curve" msgpack:"curve"`
	Bars       []Rect  `json:"bars,omitempty" msgpack:"bars,omitempty"`
	AreaLabel  *Label  `json:"area_label,omitempty" msgpack:"area_label,omitempty"`
}

// Presentation constants, in pixels.
const (
	lineWidth     = 2.0
	helperTicks   = 20
	tickLabelSize = 20.0
	areaLabelSize = 30.0
	areaBoxWidth  = 100.0
	areaBoxHeight = 40.0
)

// present converts the results of a frame into drawing primitives.
// The time t (in seconds) drives the color animation.
func present(cfg Config, vp Viewport, view ViewTransform, samples []Sample, area AreaResult, t float64) *DisplayList {
	dl := &DisplayList{
		Width:      vp.Width,
		Height:     vp.Height,
		Background: Black,
	}
	halfW, halfH := vp.Width/2, vp.Height/2

	dl.Grid = append(dl.Grid, Line{
		From:  Point{-halfW, 0},
		To:    Point{halfW, 0},
		Width: lineWidth,
		Color: Guide,
	})
	if cfg.ShowHelpers {
		addHelpers(dl, view, halfH)
	}

	for i := 0; i+1 < len(samples); i++ {
		s0, s1 := samples[i], samples[i+1]
		if !s0.Defined || !s1.Defined {
			continue
		}
		dl.Curve = append(dl.Curve, Line{
			From:  view.ToScreen(s0.X, s0.Y),
			To:    view.ToScreen(s1.X, s1.Y),
			Width: lineWidth,
			Color: CurveColor(s0.X, view.DomainWidth, t),
		})
	}

	if !cfg.ShowArea {
		return dl
	}

	dl.Bars = make([]Rect, len(area.Segments))
	for i, seg := range area.Segments {
		x := view.ScreenX(seg.X0)
		w := seg.Width * view.ScaleX
		if w < 0 {
			x, w = x+w, -w
		}
		y := 0.0
		h := view.ScreenY(seg.Height)
		if h < 0 {
			y, h = h, -h
		}
		dl.Bars[i] = Rect{
			Min:    Point{x, y},
			Width:  w,
			Height: h,
			Color:  BarColor(seg.X0, view.DomainWidth, seg.Contribution, t),
		}
	}

	anchor := Point{0, -halfH + areaBoxHeight/2}
	dl.AreaLabel = &Label{
		At:    anchor,
		Text:  fmt.Sprintf("%.3f", area.Total),
		Size:  areaLabelSize,
		Color: White,
		Box: &Rect{
			Min:    Point{anchor.X - areaBoxWidth/2, anchor.Y - areaBoxHeight/2},
			Width:  areaBoxWidth,
			Height: areaBoxHeight,
			Color:  Black,
		},
	}
	return dl
}

// addHelpers adds the y-axis and tick marks on both axes.
// Tick labels are attached to every second tick.
func addHelpers(dl *DisplayList, view ViewTransform, halfH float64) {
	zeroX := view.OriginOffsetX

	dl.Grid = append(dl.Grid, Line{
		From:  Point{zeroX, -halfH},
		To:    Point{zeroX, halfH},
		Width: lineWidth,
		Color: Guide,
	})

	for i := 0; i <= helperTicks; i++ {
		x := float64(i-helperTicks/2) * view.DomainWidth / helperTicks
		xPos := view.ScreenX(x)
		dl.Grid = append(dl.Grid, Line{
			From:  Point{xPos, -5},
			To:    Point{xPos, 5},
			Width: lineWidth,
			Color: Guide,
		})
		if i%2 == 0 {
			dl.GridLabels = append(dl.GridLabels, Label{
				At:    Point{xPos, 10},
				Text:  fmt.Sprintf("%.2f", x),
				Size:  tickLabelSize,
				Color: Guide,
			})
		}
	}

	for i := 0; i <= helperTicks; i++ {
		if i == helperTicks/2 {
			continue // zero is on the x-axis
		}
		y := float64(i-helperTicks/2) * view.VerticalExtent / helperTicks
		yPos := view.ScreenY(y)
		dl.Grid = append(dl.Grid, Line{
			From:  Point{zeroX - 4, yPos},
			To:    Point{zeroX + 4, yPos},
			Width: lineWidth,
			Color: Guide,
		})
		if i%2 == 0 {
			dl.GridLabels = append(dl.GridLabels, Label{
				At:    Point{zeroX - 40, yPos},
				Text:  fmt.Sprintf("%.2f", y),
				Size:  tickLabelSize,
				Color: Guide,
			})
		}
	}
}
