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

// Command genpdf renders every scenario as PDF and PNG.
// With -gs, the PDF files are also rendered with Ghostscript, which gives
// an independent rendering to compare the PNG output against.
package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"github.com/rs/zerolog/log"

	"seehuhn.de/go/riemann/internal/logger"
	"seehuhn.de/go/riemann/pdfout"
	"seehuhn.de/go/riemann/raster"
	"seehuhn.de/go/riemann/testcases"
)

func main() {
	outDir := flag.String("out", "testdata/reference", "output directory")
	useGS := flag.Bool("gs", false, "also render the PDF files with Ghostscript")
	flag.Parse()

	logger.SetGlobalLogger(logger.New(logger.Config{Level: "info", Pretty: true}))

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatal().Err(err).Msg("cannot create output directory")
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			name := category + "_" + sc.Name
			if err := generate(sc, filepath.Join(*outDir, name), *useGS); err != nil {
				log.Fatal().Err(err).Str("scenario", name).Msg("generation failed")
			}
			log.Info().Str("scenario", name).Msg("rendered")
		}
	}
}

func generate(sc testcases.Scenario, base string, useGS bool) error {
	f, err := sc.Frame()
	if err != nil {
		return err
	}

	pdfPath := base + ".pdf"
	if err := pdfout.Write(pdfPath, f.Display); err != nil {
		return err
	}

	c := raster.NewCanvas(int(f.Display.Width), int(f.Display.Height))
	c.Draw(f.Display)
	if err := writePNG(base+".png", c); err != nil {
		return err
	}

	if useGS {
		return renderGS(pdfPath, base+"_gs.png")
	}
	return nil
}

func writePNG(fname string, c *raster.Canvas) (err error) {
	out, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	return raster.WritePNG(out, c.Img)
}

func renderGS(pdfPath, pngPath string) error {
	// -r72: one PDF point is one pixel
	// -dGraphicsAlphaBits=4: anti-aliasing comparable to ours
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=png16m",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ghostscript: %w", err)
	}
	return nil
}
