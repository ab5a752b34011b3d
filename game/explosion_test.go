package game_test

import (
	"testing"

	"cannonfire/game"
	"cannonfire/physics"
	"cannonfire/vmath"
)

func newTestWorld() *physics.World {
	cfg := physics.DefaultConfig()
	cfg.Gravity = vmath.Zero
	return physics.NewWorld(cfg)
}

func placeTarget(t *testing.T, w *physics.World, cfg game.Config, spec game.TargetSpec) *game.Target {
	t.Helper()
	tgt, err := game.NewTarget(cfg, spec, w, nil, nil, nil)
	if err != nil {
		t.Fatalf("NewTarget: %v", err)
	}
	return tgt
}

// Half-meter crates keep the far crate's near face at 1.75 m, outside the 1.5 m blast.
func TestExplosionRadiusBoundary(t *testing.T) {
	w := newTestWorld()
	cfg := game.DefaultConfig()

	near := placeTarget(t, w, cfg, game.TargetSpec{Name: "near", Position: vmath.V(6, 5), Width: 0.5, Height: 0.5, Static: true})
	far := placeTarget(t, w, cfg, game.TargetSpec{Name: "far", Position: vmath.V(7, 5), Width: 0.5, Height: 0.5, Static: true})

	r := game.NewExplosionResolver(w, nil)
	n := r.Resolve(game.ExplosionEvent{
		Center: vmath.V(5, 5),
		Radius: 1.5,
		Damage: 10,
		Mask:   cfg.TargetMask,
	})

	if n != 1 {
		t.Errorf("affected = %d, want 1", n)
	}
	if near.Health() != 20 {
		t.Errorf("near health = %g, want 20", near.Health())
	}
	if far.Health() != 30 {
		t.Errorf("far health = %g, want untouched 30", far.Health())
	}
}

func TestExplosionTouchingEdgeIsInside(t *testing.T) {
	w := newTestWorld()
	cfg := game.DefaultConfig()

	// Box edge at x=6.5, exactly on the blast radius
	edge := placeTarget(t, w, cfg, game.TargetSpec{Position: vmath.V(6.75, 5), Width: 0.5, Height: 0.5, Static: true})

	r := game.NewExplosionResolver(w, nil)
	r.Resolve(game.ExplosionEvent{Center: vmath.V(5, 5), Radius: 1.5, Damage: 10, Mask: cfg.TargetMask})

	if edge.Health() != 20 {
		t.Errorf("health = %g, want 20 for a volume touching the radius", edge.Health())
	}
}

func TestExplosionDamagesLargeBodyOnce(t *testing.T) {
	w := newTestWorld()
	cfg := game.DefaultConfig()

	wide := placeTarget(t, w, cfg, game.TargetSpec{Position: vmath.V(10, 5), Width: 6, Height: 3, Static: true})

	r := game.NewExplosionResolver(w, nil)
	r.Resolve(game.ExplosionEvent{Center: vmath.V(10, 5), Radius: 4, Damage: 10, Mask: cfg.TargetMask})

	if wide.Health() != 20 {
		t.Errorf("health = %g, want one hit of 10", wide.Health())
	}
}

func TestExplosionImpulse(t *testing.T) {
	w := newTestWorld()
	cfg := game.DefaultConfig()

	right := placeTarget(t, w, cfg, game.TargetSpec{Position: vmath.V(6, 5), Width: 0.5, Height: 0.5})
	center := placeTarget(t, w, cfg, game.TargetSpec{Position: vmath.V(5, 8), Width: 0.5, Height: 0.5})
	wall := physics.NewBox(vmath.V(5, 4), 0.5, 0.5, physics.CategoryProp)
	wall.Static = true
	w.Add(wall)

	r := game.NewExplosionResolver(w, nil)
	n := r.Resolve(game.ExplosionEvent{Center: vmath.V(5, 5), Radius: 1.5, Impulse: 10, Mask: cfg.TargetMask})

	if n != 1 {
		t.Errorf("affected = %d, want 1 (static and non-damageable bodies are skipped)", n)
	}
	if v := right.Body().Vel; v != vmath.V(10, 0) {
		t.Errorf("velocity = %v, want (10, 0)", v)
	}
	if v := center.Body().Vel; v != vmath.Zero {
		t.Errorf("out-of-range body moved: %v", v)
	}
	if right.Health() != right.MaxHealth() {
		t.Errorf("zero-damage blast changed health to %g", right.Health())
	}
}

func TestExplosionCoincidentCenterGetsNoImpulse(t *testing.T) {
	w := newTestWorld()
	cfg := game.DefaultConfig()

	tgt := placeTarget(t, w, cfg, game.TargetSpec{Position: vmath.V(5, 5), Width: 0.5, Height: 0.5})

	r := game.NewExplosionResolver(w, nil)
	n := r.Resolve(game.ExplosionEvent{Center: vmath.V(5, 5), Radius: 1, Damage: 10, Impulse: 10, Mask: cfg.TargetMask})

	if n != 1 {
		t.Errorf("affected = %d, want 1", n)
	}
	if v := tgt.Body().Vel; v != vmath.Zero {
		t.Errorf("velocity = %v, want zero", v)
	}
	if tgt.Health() != 20 {
		t.Errorf("health = %g, want 20", tgt.Health())
	}
}

func TestExplosionMaskFilters(t *testing.T) {
	w := newTestWorld()
	cfg := game.DefaultConfig()

	tgt := placeTarget(t, w, cfg, game.TargetSpec{Position: vmath.V(6, 5), Width: 0.5, Height: 0.5, Static: true})

	r := game.NewExplosionResolver(w, nil)
	n := r.Resolve(game.ExplosionEvent{Center: vmath.V(5, 5), Radius: 1.5, Damage: 10, Mask: physics.CategoryGround})

	if n != 0 || tgt.Health() != 30 {
		t.Errorf("masked-out target hit: affected=%d health=%g", n, tgt.Health())
	}
}

// Default 1 m crates at 1 m and 2 m: the far crate's near face lies exactly on
// the 1.5 m radius, so volume contact counts it as inside.
func TestExplosionDefaultSizeCratesOnRadius(t *testing.T) {
	w := newTestWorld()
	cfg := game.DefaultConfig()

	near := placeTarget(t, w, cfg, game.TargetSpec{Name: "near", Position: vmath.V(6, 5), Static: true})
	far := placeTarget(t, w, cfg, game.TargetSpec{Name: "far", Position: vmath.V(7, 5), Static: true})
	out := placeTarget(t, w, cfg, game.TargetSpec{Name: "out", Position: vmath.V(8.5, 5), Static: true})

	r := game.NewExplosionResolver(w, nil)
	n := r.Resolve(game.ExplosionEvent{Center: vmath.V(5, 5), Radius: 1.5, Damage: 10, Mask: cfg.TargetMask})

	if n != 2 {
		t.Errorf("affected = %d, want 2", n)
	}
	if near.Health() != 20 || far.Health() != 20 {
		t.Errorf("health near=%g far=%g, want 20 each", near.Health(), far.Health())
	}
	if out.Health() != 30 {
		t.Errorf("out health = %g, want untouched 30", out.Health())
	}
}
