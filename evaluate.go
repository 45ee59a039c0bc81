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
	"maps"
	"math"
	"slices"
)

// Evaluator is a real function of one variable which may be undefined at
// some points. Implementations must be pure.
type Evaluator interface {
	// Evaluate returns f(x). If f is undefined at x, ok is false.
	Evaluate(x float64) (y float64, ok bool)
}

// Func adapts an ordinary function to the Evaluator interface.
type Func func(x float64) (float64, bool)

// Evaluate implements the [Evaluator] interface.
func (f Func) Evaluate(x float64) (float64, bool) {
	return f(x)
}

// Real adapts a float64 function to the Evaluator interface.
// NaN and infinite results are reported as undefined.
type Real func(x float64) float64

// Evaluate implements the [Evaluator] interface.
func (f Real) Evaluate(x float64) (float64, bool) {
	y := f(x)
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, false
	}
	return y, true
}

// Cubic is the default function, f(x) = -x³ + 2x.
var Cubic Evaluator = Real(func(x float64) float64 {
	return -x*x*x + 2*x
})

// Scale returns an evaluator for k·f(x).
func Scale(e Evaluator, k float64) Evaluator {
	return Func(func(x float64) (float64, bool) {
		y, ok := e.Evaluate(x)
		if !ok {
			return 0, false
		}
		return k * y, true
	})
}

// Constant returns an evaluator for f(x) = c.
func Constant(c float64) Evaluator {
	return Func(func(float64) (float64, bool) { return c, true })
}

var builtin = map[string]Evaluator{
	"cubic":    Cubic,
	"sine":     Real(math.Sin),
	"constant": Constant(1),
	"log": Func(func(x float64) (float64, bool) {
		if x <= 0 {
			return 0, false
		}
		return math.Log(x), true
	}),
	"reciprocal": Func(func(x float64) (float64, bool) {
		if x == 0 {
			return 0, false
		}
		return 1 / x, true
	}),
	"sqrt": Func(func(x float64) (float64, bool) {
		if x < 0 {
			return 0, false
		}
		return math.Sqrt(x), true
	}),
}

// Lookup returns the built-in function with the given name.
func Lookup(name string) (Evaluator, error) {
	e, ok := builtin[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownFunction)
	}
	return e, nil
}

// Names lists the built-in function names in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(builtin))
}
