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

package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"

	"seehuhn.de/go/riemann/internal/explorer"
)

// keyActions maps keys to explorer actions.
var keyActions = []struct {
	key    ebiten.Key
	action explorer.Action
}{
	{ebiten.KeyArrowUp, explorer.MorePartitions},
	{ebiten.KeyArrowDown, explorer.FewerPartitions},
	{ebiten.KeyPageUp, explorer.DoublePartitions},
	{ebiten.KeyPageDown, explorer.HalvePartitions},
	{ebiten.KeyA, explorer.LowerBoundDown},
	{ebiten.KeyS, explorer.LowerBoundUp},
	{ebiten.KeyK, explorer.UpperBoundDown},
	{ebiten.KeyL, explorer.UpperBoundUp},
	{ebiten.KeyP, explorer.NextStrategy},
	{ebiten.KeyBracketLeft, explorer.FractionDown},
	{ebiten.KeyBracketRight, explorer.FractionUp},
	{ebiten.KeyZ, explorer.ZoomIn},
	{ebiten.KeyX, explorer.ZoomOut},
	{ebiten.KeyR, explorer.ToggleArea},
	{ebiten.KeyH, explorer.ToggleHelpers},
	{ebiten.Key0, explorer.Reset},
}

const helpText = "up/down n+-1  pgup/pgdn n*2 n/2  a/s lower  k/l upper  p pick  [ ] custom  z/x zoom  r area  h helpers  0 reset  tab seed"

// runWindow opens the explorer window. It blocks until the window closes.
func runWindow(x *explorer.Explorer) error {
	w, h := x.Size()
	g := &game{x: x, start: time.Now()}
	ebiten.SetWindowTitle("uhIntegrals")
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type game struct {
	x     *explorer.Explorer
	start time.Time
	img   *ebiten.Image
	err   error
}

func (g *game) Update() error {
	if g.err != nil {
		return g.err
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) || (g.x.Editing() && inpututil.IsKeyJustPressed(ebiten.KeyEnter)) {
		g.x.ToggleEditing()
		return nil
	}
	if g.x.Editing() {
		backspaces := 0
		if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
			backspaces = 1
		}
		g.x.Type(ebiten.AppendInputChars(nil), backspaces)
		return nil
	}

	for _, ka := range keyActions {
		if inpututil.IsKeyJustPressed(ka.key) || repeating(ka.key) {
			g.x.Apply(ka.action)
		}
	}
	return nil
}

// repeating reports whether a held key should fire again.
func repeating(key ebiten.Key) bool {
	const delay, interval = 30, 3 // ticks
	d := inpututil.KeyPressDuration(key)
	return d > delay && (d-delay)%interval == 0
}

func (g *game) Draw(screen *ebiten.Image) {
	f, err := g.x.Render(time.Since(g.start))
	if err != nil {
		log.Error().Err(err).Msg("cannot render frame")
		g.err = err
		return
	}

	w, h := g.x.Size()
	if g.img == nil {
		g.img = ebiten.NewImage(w, h)
	}
	g.img.WritePixels(g.x.Image().Pix)
	screen.DrawImage(g.img, nil)

	ebitenutil.DebugPrint(screen, g.x.Status(f)+"\n"+helpText)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.x.Size()
}
