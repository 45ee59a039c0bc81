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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, cfg, cfg.Clamped())
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"equal_bounds", func(c *Config) { c.B = c.A }, ErrDegenerateInterval},
		{"crossed_bounds", func(c *Config) { c.A, c.B = 2, 1 }, ErrDegenerateInterval},
		{"nan_bound", func(c *Config) { c.A = math.NaN() }, ErrDegenerateInterval},
		{"zero_n", func(c *Config) { c.N = 0 }, ErrPartitionCount},
		{"large_n", func(c *Config) { c.N = MaxPartitions + 1 }, ErrPartitionCount},
		{"zero_zoom", func(c *Config) { c.Zoom = 0 }, ErrZoom},
		{"nan_zoom", func(c *Config) { c.Zoom = math.NaN() }, ErrZoom},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.modify(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tc.want)
		})
	}
}

func TestBoundsNeverCross(t *testing.T) {
	cfg := DefaultConfig() // a=-1, b=2

	cfg.SetLower(5)
	assert.InDelta(t, 2-MinGap, cfg.A, 1e-12)
	require.NoError(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.SetUpper(-5)
	assert.InDelta(t, -1+MinGap, cfg.B, 1e-12)
	require.NoError(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.SetLower(-50)
	assert.Equal(t, MinBound, cfg.A)
	cfg.SetUpper(50)
	assert.Equal(t, MaxBound, cfg.B)
}

func TestSetters(t *testing.T) {
	cfg := DefaultConfig()

	cfg.SetN(0)
	assert.Equal(t, 1, cfg.N)
	cfg.SetN(5000)
	assert.Equal(t, MaxPartitions, cfg.N)

	cfg.SetZoom(0)
	assert.Equal(t, MinZoom, cfg.Zoom)
	cfg.SetZoom(100)
	assert.Equal(t, MaxZoom, cfg.Zoom)

	cfg.SetCustomFraction(-1)
	assert.Equal(t, 0.0, cfg.CustomFraction)
	cfg.SetCustomFraction(2)
	assert.Equal(t, 1.0, cfg.CustomFraction)
}

func TestClamped(t *testing.T) {
	cfg := Config{N: -3, A: 3, B: 1, Pick: 9, CustomFraction: 7, Zoom: -1}
	c := cfg.Clamped()
	require.NoError(t, c.Validate())
	assert.Equal(t, 1, c.N)
	assert.Equal(t, 3.0, c.A)
	assert.InDelta(t, 3+MinGap, c.B, 1e-12)
	assert.Equal(t, Low, c.Pick)
	assert.Equal(t, 1.0, c.CustomFraction)
	assert.Equal(t, MinZoom, c.Zoom)
}

func TestPickStrategy(t *testing.T) {
	for _, p := range []PickStrategy{Low, High, Random, Custom} {
		q, err := ParsePickStrategy(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, q)
	}
	q, err := ParsePickStrategy("random")
	require.NoError(t, err)
	assert.Equal(t, Random, q)

	_, err = ParsePickStrategy("middle")
	assert.ErrorIs(t, err, ErrUnknownStrategy)

	assert.Equal(t, High, Low.Next())
	assert.Equal(t, Low, Custom.Next())
}

func TestConfigYAML(t *testing.T) {
	in := `
n: 100
a: -2
b: 3.5
pick: random
custom_fraction: 0.25
seed: hello
zoom: 2
show_area: false
show_helpers: true
`
	var cfg Config
	require.NoError(t, yaml.Unmarshal([]byte(in), &cfg))
	assert.Equal(t, Config{
		N:              100,
		A:              -2,
		B:              3.5,
		Pick:           Random,
		CustomFraction: 0.25,
		Seed:           "hello",
		Zoom:           2,
		ShowArea:       false,
		ShowHelpers:    true,
	}, cfg)

	out, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(out), "pick: RANDOM")

	err = yaml.Unmarshal([]byte("pick: middle"), &cfg)
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}
