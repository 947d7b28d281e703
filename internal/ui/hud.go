//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"golife/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Height is the vertical space the HUD occupies below the board.
const Height = 36

type statsProvider interface {
	Generation() int
	Population() int
	Strategy() string
}

// HUD renders a status strip below the simulation view.
type HUD struct {
	sim   core.Sim
	stats statsProvider
	bg    color.Color
	fg    color.Color
	strip *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	h := &HUD{sim: sim, bg: color.RGBA{R: 24, G: 24, B: 32, A: 255}, fg: color.White}
	if sp, ok := sim.(statsProvider); ok {
		h.stats = sp
	}
	return h
}

// Draw paints the status strip at vertical offset top.
func (h *HUD) Draw(screen *ebiten.Image, top int, rate int, paused bool) {
	w := screen.Bounds().Dx()
	if h.strip == nil || h.strip.Bounds().Dx() != w {
		h.strip = ebiten.NewImage(w, Height)
	}
	strip := h.strip
	strip.Fill(h.bg)

	line1 := h.sim.Name()
	if h.stats != nil {
		line1 = fmt.Sprintf("%s  gen %d  alive %d  [%s]", h.sim.Name(), h.stats.Generation(), h.stats.Population(), h.stats.Strategy())
	}
	state := "running"
	if paused {
		state = "paused"
	}
	line2 := fmt.Sprintf("%s  %d gen/s  space n r s +/- q", state, rate)

	text.Draw(strip, line1, basicfont.Face7x13, 4, 14, h.fg)
	text.Draw(strip, line2, basicfont.Face7x13, 4, 30, h.fg)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(top))
	screen.DrawImage(strip, op)
}
