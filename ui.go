package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"cannonfire/game"
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

// drawLines prints lines top-left aligned at x, y
func drawLines(screen *ebiten.Image, x, y float64, lines []string, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = hudLineHeight
	text.Draw(screen, strings.Join(lines, "\n"), hudFace, op)
}

// drawHUD draws score, ammo and reload state
func (a *App) drawHUD(screen *ebiten.Image, snap game.Snapshot) {
	status := "ready"
	if snap.Reloading {
		status = "reloading"
		if snap.ReloadDeadline > snap.Tick {
			status = fmt.Sprintf("reloading %.1fs", float64(snap.ReloadDeadline-snap.Tick)*a.game.Config().Dt())
		}
	}

	lines := []string{
		fmt.Sprintf("Score: %d", snap.Score),
		fmt.Sprintf("Ammo: %d/%d", snap.AmmoRemaining, snap.MaxAmmo),
		fmt.Sprintf("Cannon: %s", status),
		fmt.Sprintf("Targets: %d", len(snap.Targets)),
	}
	if snap.AimMode == game.AimFixedAngle {
		lines = append(lines, fmt.Sprintf("Angle: %.0f deg (up/down)", snap.AimAngle))
	}
	if snap.AmmoRemaining == 0 && !snap.Reloading {
		lines = append(lines, "Out of ammo, press R to restart")
	}
	if a.notice != "" && snap.Tick < a.noticeUntil {
		lines = append(lines, a.notice)
	}
	drawLines(screen, hudMargin, hudMargin, lines, colorHUD)
}

// drawDebug draws the F1 overlay
func (a *App) drawDebug(screen *ebiten.Image, snap game.Snapshot) {
	lines := []string{
		fmt.Sprintf("TPS: %.1f  FPS: %.1f", ebiten.ActualTPS(), ebiten.ActualFPS()),
		fmt.Sprintf("Tick: %d", snap.Tick),
		fmt.Sprintf("Session: %s", snap.Session),
		fmt.Sprintf("Projectiles: %d  Particles: %d", len(snap.Projectiles), len(a.effects.Particles())),
	}
	if w, ok := a.game.Physics().(interface{ Len() int }); ok {
		lines = append(lines, fmt.Sprintf("Bodies: %d", w.Len()))
	}
	for _, p := range snap.Projectiles {
		lines = append(lines, fmt.Sprintf("  #%d pos=(%.1f, %.1f) vel=(%.1f, %.1f)", p.ID, p.Position.X, p.Position.Y, p.Velocity.X, p.Velocity.Y))
	}
	for _, t := range snap.Targets {
		lines = append(lines, fmt.Sprintf("  %s hp=%.0f/%.0f", t.Name, t.Health, t.MaxHealth))
	}
	drawLines(screen, float64(screenWidth)-360, hudMargin, lines, colorDebug)
}
