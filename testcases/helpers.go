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

var helperCases = []Scenario{
	{
		Name:     "cubic",
		Function: "cubic",
		Config: config(func(c *riemann.Config) {
			c.ShowHelpers = true
		}),
	},
	{
		Name:     "curve_only",
		Function: "cubic",
		Config: config(func(c *riemann.Config) {
			c.ShowHelpers, c.ShowArea = true, false
		}),
	},
	{
		Name:     "sine_animated",
		Function: "sine",
		Config: config(func(c *riemann.Config) {
			c.A, c.B, c.N = -6, 6, 60
			c.ShowHelpers = true
		}),
		Elapsed: 3500 * time.Millisecond,
	},
	{
		Name:     "bare",
		Function: "cubic",
		Config: config(func(c *riemann.Config) {
			c.ShowArea = false
		}),
	},
}
