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

// Command export writes the display list of every scenario to a file,
// so that external renderers can be tested against the same frames.
package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/rs/zerolog/log"

	"seehuhn.de/go/riemann"
	"seehuhn.de/go/riemann/internal/logger"
	"seehuhn.de/go/riemann/testcases"
)

func main() {
	formatName := flag.String("format", "json", "output format: json or msgpack")
	outDir := flag.String("out", "testdata/displaylists", "output directory")
	flag.Parse()

	logger.SetGlobalLogger(logger.New(logger.Config{Level: "info", Pretty: true}))

	if err := run(*formatName, *outDir); err != nil {
		log.Fatal().Err(err).Msg("export failed")
	}
}

func run(formatName, outDir string) error {
	format, err := riemann.ParseFormat(formatName)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	count := 0
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			name := category + "_" + sc.Name
			fname := filepath.Join(outDir, name+format.Ext())
			if err := export(sc, fname, format); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			log.Debug().Str("file", fname).Msg("written")
			count++
		}
	}
	log.Info().Int("scenarios", count).Str("dir", outDir).Msg("export complete")
	return nil
}

func export(sc testcases.Scenario, fname string, format riemann.Format) (err error) {
	f, err := sc.Frame()
	if err != nil {
		return err
	}

	out, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	return riemann.EncodeDisplayList(out, f.Display, format)
}
