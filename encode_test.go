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
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayListEncoding(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ShowHelpers = true
	f, err := NewPipeline(Cubic, DefaultViewport).Frame(cfg, 700*time.Millisecond)
	require.NoError(t, err)

	for _, name := range []string{"json", "msgpack"} {
		t.Run(name, func(t *testing.T) {
			format, err := ParseFormat(name)
			require.NoError(t, err)

			buf := &bytes.Buffer{}
			require.NoError(t, EncodeDisplayList(buf, f.Display, format))
			dl, err := DecodeDisplayList(buf, format)
			require.NoError(t, err)
			assert.Equal(t, f.Display, dl)
		})
	}

	_, err = ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.ErrorIs(t, EncodeDisplayList(&bytes.Buffer{}, f.Display, Format(5)), ErrUnknownFormat)
}
