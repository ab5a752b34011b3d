package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"cannonfire/game"
	"cannonfire/vmath"
)

var (
	styleHUD        = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleGround     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleCannon     = tcell.StyleDefault.Foreground(tcell.ColorSilver).Bold(true)
	styleReloading  = tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true)
	styleProjectile = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleTrail      = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleTrailOld   = tcell.StyleDefault.Foreground(tcell.ColorOlive).Dim(true)
	stylePreview    = tcell.StyleDefault.Foreground(tcell.ColorLightBlue)
	styleExplosion  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleDebris     = tcell.StyleDefault.Foreground(tcell.ColorTan)
	styleNotice     = tcell.StyleDefault.Foreground(tcell.ColorOrange)
)

// cell maps a world point to a terminal cell below the HUD row
func (t *terminal) cell(p vmath.Vec2) (int, int) {
	sx, sy := t.camera.WorldToScreen(p)
	return int(math.Floor(sx)), int(math.Floor(sy/2)) + 1
}

func (t *terminal) put(p vmath.Vec2, r rune, style tcell.Style) {
	x, y := t.cell(p)
	cols, rows := t.screen.Size()
	if x < 0 || y < 1 || x >= cols || y >= rows {
		return
	}
	t.screen.SetContent(x, y, r, nil, style)
}

func (t *terminal) text(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

// fill covers a world box with r
func (t *terminal) fill(center, half vmath.Vec2, r rune, style tcell.Style) {
	x0, y0 := t.cell(vmath.V(center.X-half.X, center.Y+half.Y))
	x1, y1 := t.cell(vmath.V(center.X+half.X, center.Y-half.Y))
	cols, rows := t.screen.Size()
	for y := max(y0, 1); y <= min(y1, rows-1); y++ {
		for x := max(x0, 0); x <= min(x1, cols-1); x++ {
			t.screen.SetContent(x, y, r, nil, style)
		}
	}
}

func (t *terminal) draw() {
	t.screen.Clear()
	snap := t.game.Snapshot()

	if snap.GroundExtent != vmath.Zero {
		t.fill(snap.Ground, snap.GroundExtent, '▒', styleGround)
	}

	for _, tv := range snap.Targets {
		style := tcell.StyleDefault.Foreground(healthColor(tv.Health / tv.MaxHealth))
		if f, ok := t.effects.Flash(tv.ID); ok && f.Strength() > 0.5 {
			style = style.Reverse(true)
		}
		t.fill(tv.Position, tv.HalfExtents, '#', style)
	}

	for i, p := range t.effects.Preview() {
		if i%2 == 0 {
			t.put(p, '·', stylePreview)
		}
	}

	cannon := styleCannon
	if snap.Reloading {
		cannon = styleReloading
	}
	dir := vmath.FromAngle(vmath.Deg2Rad(snap.AimAngle))
	t.put(snap.Cannon.Add(dir.Scale(0.6)), '/', cannon)
	t.put(snap.Cannon, 'C', cannon)

	for _, tr := range t.effects.Trails() {
		for _, p := range tr.Points {
			if p.Alpha() > 0.5 {
				t.put(p.Pos, '•', styleTrail)
			} else {
				t.put(p.Pos, '.', styleTrailOld)
			}
		}
	}

	for _, p := range snap.Projectiles {
		t.put(p.Position, 'o', styleProjectile)
	}

	for _, r := range t.effects.Rings() {
		if r.Kind != game.EffectExplosion {
			continue
		}
		radius := r.Radius()
		for a := 0.0; a < 2*math.Pi; a += math.Pi / 8 {
			t.put(r.Center.Add(vmath.FromAngle(a).Scale(radius)), '*', styleExplosion)
		}
	}
	for _, p := range t.effects.Particles() {
		t.put(p.Pos, '.', styleDebris)
	}

	status := "ready"
	if snap.Reloading {
		status = "reloading"
	}
	hud := fmt.Sprintf("score %d  ammo %d/%d  %s  angle %.0f  targets %d  [space] fire [up/down] aim [r] reset [q] quit",
		snap.Score, snap.AmmoRemaining, snap.MaxAmmo, status, snap.AimAngle, len(snap.Targets))
	t.text(0, 0, hud, styleHUD)
	if t.notice != "" && snap.Tick-t.noticeAt < uint64(t.game.Config().TickRate) {
		cols, _ := t.screen.Size()
		t.text(max(cols-len(t.notice)-1, 0), 1, t.notice, styleNotice)
	}

	t.screen.Show()
}

// healthColor fades from green to red as health drops
func healthColor(frac float64) tcell.Color {
	frac = vmath.Clamp(frac, 0, 1)
	return tcell.NewRGBColor(int32(255*(1-frac)), int32(200*frac), 40)
}
