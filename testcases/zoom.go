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

package testcases

import (
	"time"

	"seehuhn.de/go/riemann"
)

var zoomCases = []Scenario{
	{
		Name:     "zoom_min",
		Function: "cubic",
		Config: config(func(c *riemann.Config) {
			c.Zoom = riemann.MinZoom
		}),
	},
	{
		Name:     "zoom_max",
		Function: "cubic",
		Config: config(func(c *riemann.Config) {
			c.Zoom = riemann.MaxZoom
		}),
	},
	{
		Name:     "narrow_interval",
		Function: "cubic",
		Config: config(func(c *riemann.Config) {
			c.A, c.B = 0.4, 0.5
		}),
	},
	{
		Name:     "wide_interval",
		Function: "cubic",
		Config: config(func(c *riemann.Config) {
			c.A, c.B, c.N = riemann.MinBound, riemann.MaxBound, 400
		}),
		Elapsed: 5 * time.Second,
	},
	{
		Name:     "small_window",
		Function: "cubic",
		Config:   riemann.DefaultConfig(),
		Viewport: riemann.Viewport{Width: 320, Height: 200},
	},
	{
		Name:     "constant",
		Function: "constant",
		Config: config(func(c *riemann.Config) {
			c.A, c.B, c.N = 0, 1, 100
		}),
	},
}
