//go:build !ebiten

package ui

import "golife/pkg/core"

// Height is the vertical space the HUD occupies below the board.
const Height = 0

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(core.Sim) *HUD { return nil }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int, bool) {}
