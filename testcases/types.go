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

// Package testcases is a catalogue of explorer settings used for tests
// and for generating reference output.
package testcases

import (
	"time"

	"seehuhn.de/go/riemann"
)

// Scenario defines one frame of the explorer.
type Scenario struct {
	Name     string           // lowercase a-z, 0-9 and _ only
	Function string           // name of a built-in function, see [riemann.Lookup]
	Config   riemann.Config   // explorer settings
	Viewport riemann.Viewport // zero value means riemann.DefaultViewport
	Elapsed  time.Duration    // animation time
}

// Frame computes the frame described by the scenario.
func (s Scenario) Frame() (*riemann.Frame, error) {
	e, err := riemann.Lookup(s.Function)
	if err != nil {
		return nil, err
	}
	vp := s.Viewport
	if vp == (riemann.Viewport{}) {
		vp = riemann.DefaultViewport
	}
	return riemann.NewPipeline(e, vp).Frame(s.Config, s.Elapsed)
}

// config returns the default settings, modified by fn.
func config(fn func(c *riemann.Config)) riemann.Config {
	c := riemann.DefaultConfig()
	fn(&c)
	return c
}
