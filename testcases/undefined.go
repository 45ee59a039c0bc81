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
	"seehuhn.de/go/riemann"
)

var undefinedCases = []Scenario{
	{
		Name:     "log",
		Function: "log",
		Config: config(func(c *riemann.Config) {
			c.A, c.B, c.N = -2, 5, 35
			c.ShowHelpers = true
		}),
	},
	{
		Name:     "reciprocal",
		Function: "reciprocal",
		Config: config(func(c *riemann.Config) {
			c.A, c.B, c.N = -1, 2, 3
			c.Zoom = 1
		}),
	},
	{
		Name:     "sqrt_high",
		Function: "sqrt",
		Config: config(func(c *riemann.Config) {
			c.A, c.B, c.N, c.Pick = -3, 4, 70, riemann.High
		}),
	},
	{
		Name:     "log_all_undefined",
		Function: "log",
		Config: config(func(c *riemann.Config) {
			c.A, c.B = -5, -1
		}),
	},
}
