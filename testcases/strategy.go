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

var strategyCases = []Scenario{
	{
		Name:     "default",
		Function: "cubic",
		Config:   riemann.DefaultConfig(),
	},
	{
		Name:     "low_n3",
		Function: "cubic",
		Config: config(func(c *riemann.Config) {
			c.N, c.Zoom = 3, 1
		}),
	},
	{
		Name:     "high_n3",
		Function: "cubic",
		Config: config(func(c *riemann.Config) {
			c.N, c.Zoom, c.Pick = 3, 1, riemann.High
		}),
	},
	{
		Name:     "random_n50",
		Function: "cubic",
		Config: config(func(c *riemann.Config) {
			c.N, c.Pick = 50, riemann.Random
		}),
		Elapsed: 2 * time.Second,
	},
	{
		Name:     "random_other_seed",
		Function: "cubic",
		Config: config(func(c *riemann.Config) {
			c.N, c.Pick, c.Seed = 50, riemann.Random, "another seed"
		}),
		Elapsed: 2 * time.Second,
	},
	{
		Name:     "custom_midpoint",
		Function: "cubic",
		Config: config(func(c *riemann.Config) {
			c.N, c.Pick, c.CustomFraction = 10, riemann.Custom, 0.5
		}),
	},
	{
		Name:     "custom_sine_n2000",
		Function: "sine",
		Config: config(func(c *riemann.Config) {
			c.A, c.B = -10, 10
			c.N, c.Pick, c.CustomFraction = riemann.MaxPartitions, riemann.Custom, 0.3
		}),
	},
	{
		Name:     "single_panel",
		Function: "cubic",
		Config: config(func(c *riemann.Config) {
			c.N = 1
		}),
	},
}
