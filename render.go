package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"cannonfire/game"
	"cannonfire/vmath"
)

// fillBox draws a filled world-space box given its center and half extents
func (a *App) fillBox(dst *ebiten.Image, center, half vmath.Vec2, clr color.Color) {
	x, y := a.camera.WorldToScreen(vmath.V(center.X-half.X, center.Y+half.Y))
	w, h := a.camera.Length(half.X*2), a.camera.Length(half.Y*2)
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (a *App) strokeBox(dst *ebiten.Image, center, half vmath.Vec2, clr color.Color) {
	x, y := a.camera.WorldToScreen(vmath.V(center.X-half.X, center.Y+half.Y))
	w, h := a.camera.Length(half.X*2), a.camera.Length(half.Y*2)
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), 1, clr, false)
}

func (a *App) fillCircle(dst *ebiten.Image, center vmath.Vec2, radius float64, clr color.Color) {
	sx, sy := a.camera.WorldToScreen(center)
	r := math.Max(a.camera.Length(radius), 1)
	vector.DrawFilledCircle(dst, float32(sx), float32(sy), float32(r), clr, true)
}

func (a *App) line(dst *ebiten.Image, from, to vmath.Vec2, width float64, clr color.Color) {
	x0, y0 := a.camera.WorldToScreen(from)
	x1, y1 := a.camera.WorldToScreen(to)
	vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}

// drawWorld renders the ground, targets, the cannon and projectiles
func (a *App) drawWorld(screen *ebiten.Image, snap game.Snapshot) {
	pc := a.game.Config().Physics
	size := vmath.V(pc.Width, pc.Height)
	a.fillBox(screen, pc.Min.Add(size.Scale(0.5)), size.Scale(0.5), colorWorld)

	if snap.GroundExtent != vmath.Zero {
		a.fillBox(screen, snap.Ground, snap.GroundExtent, colorGround)
	}

	for _, t := range snap.Targets {
		if a.sprites != nil {
			tint := colorWhite
			if f, ok := a.effects.Flash(t.ID); ok {
				tint = blend(colorWhite, f.Color, f.Strength())
			}
			a.drawSprite(screen, a.sprites.crate, t.Position, t.HalfExtents, tint)
		} else {
			clr := colorTarget
			if f, ok := a.effects.Flash(t.ID); ok {
				clr = blend(colorTarget, f.Color, f.Strength())
			}
			a.fillBox(screen, t.Position, t.HalfExtents, clr)
			a.strokeBox(screen, t.Position, t.HalfExtents, colorTargetEdge)
		}
		if t.Health < t.MaxHealth {
			a.drawHealthBar(screen, t)
		}
	}

	a.drawCannon(screen, snap)
	a.drawTrails(screen)

	for _, p := range snap.Projectiles {
		a.fillCircle(screen, p.Position, p.Radius, colorProjectile)
	}
}

// drawSprite stretches img over a world box and multiplies it by tint
func (a *App) drawSprite(dst, img *ebiten.Image, center, half vmath.Vec2, tint color.Color) {
	x, y := a.camera.WorldToScreen(vmath.V(center.X-half.X, center.Y+half.Y))
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(a.camera.Length(half.X*2)/float64(b.Dx()), a.camera.Length(half.Y*2)/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(tint)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

// drawHealthBar draws a bar above a damaged target
func (a *App) drawHealthBar(screen *ebiten.Image, t game.TargetView) {
	x, y := a.camera.WorldToScreen(vmath.V(t.Position.X-t.HalfExtents.X, t.Position.Y+t.HalfExtents.Y))
	w := a.camera.Length(t.HalfExtents.X * 2)
	y -= healthBarHeight + 2

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), healthBarHeight, colorHealthBack, false)
	frac := vmath.Clamp(t.Health/t.MaxHealth, 0, 1)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w*frac), healthBarHeight, colorHealth, false)
}

// drawCannon draws the base, the click zone and a barrel along the launch direction
func (a *App) drawCannon(screen *ebiten.Image, snap game.Snapshot) {
	cfg := a.game.Config()

	if !cfg.ClickAnywhere {
		sx, sy := a.camera.WorldToScreen(snap.Cannon)
		vector.StrokeCircle(screen, float32(sx), float32(sy), float32(a.camera.Length(cfg.ClickRadius)), 1, colorClickZone, true)
	}

	intent := a.game.Aimer().FixedIntent()
	if snap.Dragging {
		intent = a.game.Aimer().DragIntent()
	}
	dir, ok := a.game.FireControl().Launch(intent).Velocity.Normalize()
	if !ok {
		dir = vmath.FromAngle(vmath.Deg2Rad(snap.AimAngle))
	}
	barrel := cfg.MuzzleOffset.Len()
	a.line(screen, snap.Cannon, snap.Cannon.Add(dir.Scale(barrel)), a.camera.Length(0.35), colorBarrel)

	switch {
	case a.sprites == nil && snap.Reloading:
		a.fillCircle(screen, snap.Cannon, 0.5, colorReloading)
	case a.sprites == nil:
		a.fillCircle(screen, snap.Cannon, 0.5, colorCannon)
	case snap.Reloading:
		a.drawSprite(screen, a.sprites.cannon, snap.Cannon, vmath.V(0.7, 0.7), colorReloading)
	default:
		a.drawSprite(screen, a.sprites.cannon, snap.Cannon, vmath.V(0.7, 0.7), colorWhite)
	}

	if snap.Dragging {
		a.line(screen, snap.DragStart, snap.DragEnd, 2, colorDrag)
	}
}

// drawEffects renders explosion rings and debris from the tracker
func (a *App) drawEffects(screen *ebiten.Image) {
	for _, r := range a.effects.Rings() {
		clr := colorExplosion
		if r.Kind == game.EffectMuzzleFlash {
			clr = colorMuzzle
		}
		clr.A = uint8(float64(clr.A) * r.Alpha())
		sx, sy := a.camera.WorldToScreen(r.Center)
		radius := math.Max(a.camera.Length(r.Radius()), 1)
		vector.StrokeCircle(screen, float32(sx), float32(sy), float32(radius), 3, clr, true)
	}

	for _, p := range a.effects.Particles() {
		clr := p.Color
		clr.A = uint8(float64(clr.A) * p.Alpha())
		a.fillCircle(screen, p.Pos, p.Size, clr)
	}
}

// drawTrails connects each projectile's recent positions, fading with age
func (a *App) drawTrails(screen *ebiten.Image) {
	for _, tr := range a.effects.Trails() {
		for i := 1; i < len(tr.Points); i++ {
			clr := colorTrail
			clr.A = uint8(float64(clr.A) * tr.Points[i-1].Alpha())
			a.line(screen, tr.Points[i-1].Pos, tr.Points[i].Pos, 2, clr)
		}
	}
}

// blend mixes base toward tint by t in [0,1]
func blend(base color.NRGBA, tint color.Color, t float64) color.NRGBA {
	r, g, b, _ := tint.RGBA()
	mix := func(from uint8, to uint32) uint8 {
		return uint8(float64(from) + (float64(to>>8)-float64(from))*t)
	}
	return color.NRGBA{R: mix(base.R, r), G: mix(base.G, g), B: mix(base.B, b), A: base.A}
}
