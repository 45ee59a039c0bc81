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

package explorer

import (
	"strings"
	"unicode/utf8"

	"seehuhn.de/go/riemann"
)

// Action is a change of the explorer settings triggered by the user.
type Action int

// These are the supported actions.
const (
	NoAction Action = iota
	MorePartitions
	FewerPartitions
	DoublePartitions
	HalvePartitions
	LowerBoundDown
	LowerBoundUp
	UpperBoundDown
	UpperBoundUp
	NextStrategy
	FractionDown
	FractionUp
	ZoomIn
	ZoomOut
	ToggleArea
	ToggleHelpers
	Reset
)

// Step sizes for the actions.
const (
	BoundStep    = 0.1
	FractionStep = 0.05
	ZoomStep     = 0.1
)

var actionNames = [...]string{
	NoAction:         "none",
	MorePartitions:   "n+1",
	FewerPartitions:  "n-1",
	DoublePartitions: "n*2",
	HalvePartitions:  "n/2",
	LowerBoundDown:   "a-",
	LowerBoundUp:     "a+",
	UpperBoundDown:   "b-",
	UpperBoundUp:     "b+",
	NextStrategy:     "pick",
	FractionDown:     "custom-",
	FractionUp:       "custom+",
	ZoomIn:           "zoom+",
	ZoomOut:          "zoom-",
	ToggleArea:       "area",
	ToggleHelpers:    "helpers",
	Reset:            "reset",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// applyAction returns the settings after performing a.
// All changes go through the clamping setters of [riemann.Config], so the
// result is always valid if cfg was.
func applyAction(cfg riemann.Config, a Action) riemann.Config {
	switch a {
	case MorePartitions:
		cfg.SetN(cfg.N + 1)
	case FewerPartitions:
		cfg.SetN(cfg.N - 1)
	case DoublePartitions:
		cfg.SetN(cfg.N * 2)
	case HalvePartitions:
		cfg.SetN(cfg.N / 2)
	case LowerBoundDown:
		cfg.SetLower(cfg.A - BoundStep)
	case LowerBoundUp:
		cfg.SetLower(cfg.A + BoundStep)
	case UpperBoundDown:
		cfg.SetUpper(cfg.B - BoundStep)
	case UpperBoundUp:
		cfg.SetUpper(cfg.B + BoundStep)
	case NextStrategy:
		cfg.Pick = cfg.Pick.Next()
	case FractionDown:
		cfg.SetCustomFraction(cfg.CustomFraction - FractionStep)
	case FractionUp:
		cfg.SetCustomFraction(cfg.CustomFraction + FractionStep)
	case ZoomIn:
		cfg.SetZoom(cfg.Zoom - ZoomStep)
	case ZoomOut:
		cfg.SetZoom(cfg.Zoom + ZoomStep)
	case ToggleArea:
		cfg.ShowArea = !cfg.ShowArea
	case ToggleHelpers:
		cfg.ShowHelpers = !cfg.ShowHelpers
	case Reset:
		cfg = riemann.DefaultConfig()
	}
	return cfg
}

// maxSeedLen limits the length of the seed text, in runes.
const maxSeedLen = 64

// editSeed appends the typed characters to seed and then removes
// backspaces runes from its end. Control characters are ignored.
func editSeed(seed string, typed []rune, backspaces int) string {
	var b strings.Builder
	b.WriteString(seed)
	n := utf8.RuneCountInString(seed)
	for _, r := range typed {
		if r < ' ' || r == 0x7f || n >= maxSeedLen {
			continue
		}
		b.WriteRune(r)
		n++
	}
	res := []rune(b.String())
	res = res[:max(len(res)-backspaces, 0)]
	return string(res)
}
