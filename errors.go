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

import "errors"

// Errors returned by the pipeline. Callers should compare with
// [errors.Is], since most of them are returned wrapped with details.
var (
	// ErrDegenerateInterval is returned when the lower bound of the
	// integration interval is not strictly below the upper bound.
	ErrDegenerateInterval = errors.New("degenerate interval")

	// ErrPartitionCount is returned for a partition count outside
	// [1, MaxPartitions].
	ErrPartitionCount = errors.New("invalid partition count")

	// ErrZoom is returned for a non-positive zoom factor.
	ErrZoom = errors.New("invalid zoom factor")

	// ErrViewport is returned for an empty viewport.
	ErrViewport = errors.New("invalid viewport")

	ErrUnknownFunction = errors.New("unknown function")
	ErrUnknownStrategy = errors.New("unknown pick strategy")
	ErrUnknownFormat   = errors.New("unknown display list format")
)
