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
	"math/rand/v2"
)

// SeedFromString reduces a seed string to an integer by summing its byte
// values.
//
// Permutations of the same characters give the same seed.
func SeedFromString(s string) uint64 {
	var seed uint64
	for i := 0; i < len(s); i++ {
		seed += uint64(s[i])
	}
	return seed
}

// Boundaries returns the n+1 partition points a + i*(b-a)/n, i = 0, ..., n.
func Boundaries(a, b float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("n=%d: %w", n, ErrPartitionCount)
	}
	if !(a < b) {
		return nil, fmt.Errorf("[%g, %g]: %w", a, b, ErrDegenerateInterval)
	}

	xs := make([]float64, n+1)
	for i := range xs {
		xs[i] = a + (b-a)*float64(i)/float64(n)
	}
	return xs, nil
}

// Samples returns the n+1 evaluation points for the configuration: one
// point per boundary point, moved inside the subinterval to its right
// according to the pick strategy.
//
// For the Random strategy, a generator is seeded from cfg.Seed on every
// call, and one value is drawn per boundary point in order. Identical
// configurations therefore give identical samples.
//
// The result is indexed like the boundaries and is never reordered. For
// very small step sizes rounding can make consecutive High or Random
// samples non-monotonic.
func Samples(cfg Config) ([]float64, error) {
	xs, err := Boundaries(cfg.A, cfg.B, cfg.N)
	if err != nil {
		return nil, err
	}
	h := (cfg.B - cfg.A) / float64(cfg.N)

	switch cfg.Pick {
	case Low:
		// boundary points as they are
	case High:
		for i := range xs {
			xs[i] += h
		}
	case Random:
		seed := SeedFromString(cfg.Seed)
		rng := rand.New(rand.NewPCG(seed, seed))
		for i := range xs {
			xs[i] += rng.Float64() * h
		}
	case Custom:
		for i := range xs {
			xs[i] += cfg.CustomFraction * h
		}
	default:
		return nil, fmt.Errorf("%s: %w", cfg.Pick, ErrUnknownStrategy)
	}
	return xs, nil
}
