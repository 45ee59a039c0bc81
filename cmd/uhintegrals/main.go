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

// Command uhintegrals is an interactive Riemann sum explorer.
//
// By default it opens a window showing the function, the Riemann
// rectangles and the approximated area. With -headless, frames are
// rendered to PNG (and optionally PDF) files instead.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"

	"seehuhn.de/go/riemann/internal/explorer"
	"seehuhn.de/go/riemann/internal/logger"
	"seehuhn.de/go/riemann/internal/settings"
)

func main() {
	flags := settings.NewFlags(flag.CommandLine)
	flag.Parse()

	s, err := settings.Load(flags.ConfigFile(), flags.EnvFile())
	if err == nil {
		err = flags.Apply(s)
	}
	if err != nil {
		logger.SetGlobalLogger(logger.New(logger.Config{Pretty: true}))
		log.Fatal().Err(err).Msg("cannot read settings")
	}

	changed, err := s.Finish()
	logger.SetGlobalLogger(logger.New(logger.Config{Level: s.LogLevel, Pretty: s.LogPretty}))
	if err != nil {
		log.Fatal().Err(err).Msg("invalid settings")
	}
	if changed {
		log.Warn().Msg("settings were moved into their allowed ranges")
	}
	log.Info().
		Str("function", s.Function).
		Int("n", s.Explorer.N).
		Float64("a", s.Explorer.A).
		Float64("b", s.Explorer.B).
		Stringer("pick", s.Explorer.Pick).
		Float64("zoom", s.Explorer.Zoom).
		Bool("headless", s.Headless).
		Msg("starting")

	x, err := explorer.New(s, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create explorer")
	}

	if s.Headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err := x.RunHeadless(ctx, explorer.HeadlessConfig{
			Hz:     s.Hz,
			Frames: s.Frames,
			OutDir: s.OutDir,
			PDF:    s.PDF,
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Msg("headless rendering failed")
			stop()
			os.Exit(1)
		}
		return
	}

	if err := runWindow(x); err != nil {
		log.Fatal().Err(err).Msg("window closed with error")
	}
}
