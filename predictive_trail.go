package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"cannonfire/game"
)

// drawPreview draws the published trajectory preview as dots that fade
// along the arc. Samples below the ground are skipped.
func (a *App) drawPreview(screen *ebiten.Image, snap game.Snapshot) {
	samples := a.effects.Preview()
	if len(samples) < 2 {
		return
	}
	groundTop := snap.Ground.Y + snap.GroundExtent.Y

	for i, p := range samples {
		if p.Y < groundTop {
			break
		}
		progress := float64(i) / float64(len(samples)-1)
		clr := colorPreview
		clr.A = uint8(float64(clr.A) * (1 - progress*0.8))

		sx, sy := a.camera.WorldToScreen(p)
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), previewDotRadius, clr, true)
	}
}
