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
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Format selects the wire format for display lists.
type Format int

// These are the supported formats.
const (
	FormatJSON Format = iota
	FormatMsgpack
)

// ParseFormat converts "json" or "msgpack" into a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "json":
		return FormatJSON, nil
	case "msgpack":
		return FormatMsgpack, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownFormat)
}

// Ext returns the file name extension for the format.
func (f Format) Ext() string {
	if f == FormatMsgpack {
		return ".msgpack"
	}
	return ".json"
}

// EncodeDisplayList writes dl to w, so that an external renderer can
// draw the frame.
func EncodeDisplayList(w io.Writer, dl *DisplayList, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(dl)
	case FormatMsgpack:
		return msgpack.NewEncoder(w).Encode(dl)
	}
	return fmt.Errorf("format %d: %w", int(f), ErrUnknownFormat)
}

// DecodeDisplayList reads a display list written by EncodeDisplayList.
func DecodeDisplayList(r io.Reader, f Format) (*DisplayList, error) {
	dl := &DisplayList{}
	var err error
	switch f {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(dl)
	case FormatMsgpack:
		err = msgpack.NewDecoder(r).Decode(dl)
	default:
		return nil, fmt.Errorf("format %d: %w", int(f), ErrUnknownFormat)
	}
	if err != nil {
		return nil, err
	}
	return dl, nil
}
