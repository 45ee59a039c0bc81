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
	"strings"
)

// PickStrategy selects which x-value within a subinterval represents the
// subinterval.
type PickStrategy int

// These are the supported pick strategies.
const (
	Low    PickStrategy = iota // left end of the subinterval
	High                       // right end of the subinterval
	Random                     // uniformly random inside the subinterval
	Custom                     // fixed fraction of the subinterval width
)

var strategyNames = [...]string{"LOW", "HIGH", "RANDOM", "CUSTOM"}

func (p PickStrategy) String() string {
	if p < 0 || int(p) >= len(strategyNames) {
		return fmt.Sprintf("PickStrategy(%d)", int(p))
	}
	return strategyNames[p]
}

// Next returns the strategy following p, wrapping around after Custom.
func (p PickStrategy) Next() PickStrategy {
	return (p + 1) % PickStrategy(len(strategyNames))
}

// ParsePickStrategy converts a strategy name (case-insensitive) into a
// PickStrategy.
func ParsePickStrategy(s string) (PickStrategy, error) {
	for i, name := range strategyNames {
		if strings.EqualFold(s, name) {
			return PickStrategy(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownStrategy)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (p PickStrategy) MarshalText() ([]byte, error) {
	if p < 0 || int(p) >= len(strategyNames) {
		return nil, fmt.Errorf("%d: %w", int(p), ErrUnknownStrategy)
	}
	return []byte(strategyNames[p]), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (p *PickStrategy) UnmarshalText(text []byte) error {
	v, err := ParsePickStrategy(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Limits of the configuration surface.
const (
	MaxPartitions = 2000

	MinBound = -10.0
	MaxBound = 10.0

	// MinGap is the smallest distance the host keeps between the
	// interval bounds.
	MinGap = 0.1

	MinZoom = 0.1
	MaxZoom = 10.0
)

// Config is a snapshot of all user-adjustable parameters.
// The host owns and mutates its copy; the pipeline only reads the
// snapshot it is given for a frame.
type Config struct {
	N              int          `yaml:"n"`
	A              float64      `yaml:"a"`
	B              float64      `yaml:"b"`
	Pick           PickStrategy `yaml:"pick"`
	CustomFraction float64      `yaml:"custom_fraction"`
	Seed           string       `yaml:"seed"`
	Zoom           float64      `yaml:"zoom"` // larger values show more of the graph
	ShowArea       bool         `yaml:"show_area"`
	ShowHelpers    bool         `yaml:"show_helpers"`
}

// DefaultConfig returns the start-up configuration.
func DefaultConfig() Config {
	return Config{
		N:              20,
		A:              -1,
		B:              2,
		Pick:           Low,
		CustomFraction: 0.5,
		Seed:           "integrali blin(",
		Zoom:           1.1,
		ShowArea:       true,
		ShowHelpers:    false,
	}
}

// Validate checks that the configuration can be fed to the pipeline.
func (c Config) Validate() error {
	if math.IsNaN(c.A) || math.IsInf(c.A, 0) || math.IsNaN(c.B) || math.IsInf(c.B, 0) {
		return fmt.Errorf("bounds [%g, %g] are not finite: %w", c.A, c.B, ErrDegenerateInterval)
	}
	if c.A >= c.B {
		return fmt.Errorf("lower bound %g is not below upper bound %g: %w", c.A, c.B, ErrDegenerateInterval)
	}
	if c.N < 1 || c.N > MaxPartitions {
		return fmt.Errorf("n=%d outside [1, %d]: %w", c.N, MaxPartitions, ErrPartitionCount)
	}
	if !(c.Zoom > 0) || math.IsInf(c.Zoom, 0) {
		return fmt.Errorf("zoom=%g: %w", c.Zoom, ErrZoom)
	}
	return nil
}

// SetN sets the partition count, clamped to [1, MaxPartitions].
func (c *Config) SetN(n int) {
	c.N = min(max(n, 1), MaxPartitions)
}

// SetLower sets the lower bound. The value is clamped so that the lower
// bound stays at least MinGap below the upper bound.
func (c *Config) SetLower(a float64) {
	c.A = clamp(a, MinBound, c.B-MinGap)
}

// SetUpper sets the upper bound. The value is clamped so that the upper
// bound stays at least MinGap above the lower bound.
func (c *Config) SetUpper(b float64) {
	c.B = clamp(b, c.A+MinGap, MaxBound)
}

// SetZoom sets the zoom factor, clamped to [MinZoom, MaxZoom].
func (c *Config) SetZoom(z float64) {
	c.Zoom = clamp(z, MinZoom, MaxZoom)
}

// SetCustomFraction sets the fraction used by the Custom strategy,
// clamped to [0, 1].
func (c *Config) SetCustomFraction(f float64) {
	c.CustomFraction = clamp(f, 0, 1)
}

// Clamped returns a copy of c with every field moved into its allowed
// range. Bounds which cross are resolved by moving the upper bound.
func (c Config) Clamped() Config {
	c.SetN(c.N)
	c.SetZoom(c.Zoom)
	c.SetCustomFraction(c.CustomFraction)
	if c.Pick < Low || c.Pick > Custom {
		c.Pick = Low
	}
	c.A = clamp(c.A, MinBound, MaxBound-MinGap)
	c.B = clamp(c.B, c.A+MinGap, MaxBound)
	return c
}

// clamp restricts v to [lo, hi]. NaN is mapped to lo.
func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
