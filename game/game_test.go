package game_test

import (
	"errors"
	"image/color"
	"testing"

	"cannonfire/game"
	"cannonfire/vmath"
)

type recorder struct {
	effects []game.EffectKind
	sounds  []game.SoundClip
	flashes int
	preview []vmath.Vec2
	updates int
	cleared int
}

func (r *recorder) SpawnEffect(kind game.EffectKind, _ vmath.Vec2, _ float64) {
	r.effects = append(r.effects, kind)
}

func (r *recorder) PlaySound(clip game.SoundClip, _ vmath.Vec2) {
	r.sounds = append(r.sounds, clip)
}

func (r *recorder) UpdateTrajectoryPreview(samples []vmath.Vec2) {
	r.preview = samples
	r.updates++
}

func (r *recorder) FlashColor(game.EntityID, color.Color, float64) {
	r.flashes++
}

func (r *recorder) ClearEffects() {
	r.cleared++
}

func (r *recorder) count(kind game.EffectKind) int {
	n := 0
	for _, k := range r.effects {
		if k == kind {
			n++
		}
	}
	return n
}

// flatConfig fires straight along the ground line with no drop
func flatConfig() game.Config {
	cfg := game.DefaultConfig()
	cfg.AimMode = game.AimFixedAngle
	cfg.FireAngle = 0
	cfg.ProjectileGravityScale = 0
	return cfg
}

func newGame(t *testing.T, cfg game.Config) (*game.Game, *recorder) {
	t.Helper()
	rec := &recorder{}
	g, err := game.NewGame(cfg, game.WithPresenter(rec))
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g, rec
}

func stepUntilIdle(t *testing.T, g *game.Game, limit int) int {
	t.Helper()
	for i := 1; i <= limit; i++ {
		g.Step()
		if len(g.Projectiles()) == 0 {
			return i
		}
	}
	t.Fatalf("projectile still in flight after %d ticks", limit)
	return 0
}

func TestGameShotsDestroyTarget(t *testing.T) {
	cfg := flatConfig()
	g, rec := newGame(t, cfg)

	tgt, err := g.AddTarget(game.TargetSpec{Name: "crate", Position: vmath.V(10, 1.5), Static: true})
	if err != nil {
		t.Fatal(err)
	}

	if err := g.HandleInput(game.InputEvent{Kind: game.KeyPress, Key: game.KeyFire}); err != nil {
		t.Fatalf("fire: %v", err)
	}
	stepUntilIdle(t, g, 120)

	if tgt.Health() != 10 {
		t.Fatalf("health after first shot = %g, want 10 (direct hit plus splash)", tgt.Health())
	}
	if rec.count(game.EffectExplosion) != 1 {
		t.Errorf("explosion effects = %d, want 1", rec.count(game.EffectExplosion))
	}
	if g.Ledger().Remaining() != cfg.MaxAmmo-1 {
		t.Errorf("remaining = %d, want %d", g.Ledger().Remaining(), cfg.MaxAmmo-1)
	}

	if err := g.HandleInput(game.InputEvent{Kind: game.KeyPress, Key: game.KeyFire}); !errors.Is(err, game.ErrReloading) {
		t.Fatalf("fire during cooldown: err = %v, want ErrReloading", err)
	}
	g.StepN(int(cfg.Ticks(cfg.ReloadCooldown)))
	if !g.FireControl().Ready() {
		t.Fatal("not ready after cooldown")
	}

	if err := g.HandleInput(game.InputEvent{Kind: game.KeyPress, Key: game.KeyFire}); err != nil {
		t.Fatalf("second fire: %v", err)
	}
	stepUntilIdle(t, g, 120)

	if !tgt.Destroyed() {
		t.Fatalf("target survived with health %g", tgt.Health())
	}
	if g.Ledger().Score() != cfg.TargetPoints {
		t.Errorf("score = %d, want %d", g.Ledger().Score(), cfg.TargetPoints)
	}
	if len(g.Targets()) != 0 {
		t.Errorf("targets = %d, want 0", len(g.Targets()))
	}
	if rec.count(game.EffectDebris) != 1 {
		t.Errorf("debris effects = %d, want 1", rec.count(game.EffectDebris))
	}
}

func TestGameLifetimeExpirySignalsOnce(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.AimMode = game.AimFixedAngle
	cfg.MaxAngle = 90
	cfg.FireAngle = 90
	cfg.FireForce = 2
	cfg.ProjectileGravityScale = 0
	g, rec := newGame(t, cfg)

	if _, err := g.Fire(g.Aimer().FixedIntent()); err != nil {
		t.Fatal(err)
	}
	life := int(cfg.Ticks(cfg.ProjectileLifetime))
	g.StepN(life - 1)
	if len(g.Projectiles()) != 1 {
		t.Fatalf("projectile gone before its lifetime")
	}
	g.Step()
	if len(g.Projectiles()) != 0 {
		t.Fatalf("projectile alive after %d ticks", life)
	}
	if rec.count(game.EffectExplosion) != 0 {
		t.Error("expiry produced an explosion")
	}
	if g.FireControl().Ready() {
		t.Fatal("ready without cooldown")
	}
	g.StepN(int(cfg.Ticks(cfg.ReloadCooldown)))
	if !g.FireControl().Ready() {
		t.Fatal("not ready after expiry and cooldown")
	}
}

func TestGameProjectileLeavesWorld(t *testing.T) {
	cfg := flatConfig()
	cfg.FireForce = 30
	g, rec := newGame(t, cfg)

	if _, err := g.Fire(g.Aimer().FixedIntent()); err != nil {
		t.Fatal(err)
	}
	p := g.Projectiles()[0]
	stepUntilIdle(t, g, int(cfg.Ticks(cfg.ProjectileLifetime))-1)

	if p.EndReason() != game.EndOutOfBounds {
		t.Errorf("end reason = %v, want out-of-bounds", p.EndReason())
	}
	if rec.count(game.EffectExplosion) != 0 {
		t.Error("bounds exit produced an explosion")
	}
}

func TestGameDragInput(t *testing.T) {
	cfg := game.DefaultConfig()
	g, rec := newGame(t, cfg)

	err := g.HandleInput(game.InputEvent{Kind: game.PointerDown, Pos: vmath.V(20, 10)})
	if !errors.Is(err, game.ErrNoFireIntent) {
		t.Fatalf("click away from cannon: err = %v, want ErrNoFireIntent", err)
	}

	if err := g.HandleInput(game.InputEvent{Kind: game.PointerDown, Pos: cfg.CannonPosition}); err != nil {
		t.Fatal(err)
	}
	if len(rec.preview) != cfg.TrajectorySteps {
		t.Fatalf("preview len = %d, want %d", len(rec.preview), cfg.TrajectorySteps)
	}
	end := cfg.CannonPosition.Sub(vmath.V(2, 0))
	if err := g.HandleInput(game.InputEvent{Kind: game.PointerDrag, Pos: end}); err != nil {
		t.Fatal(err)
	}
	if !g.Aimer().Dragging() {
		t.Fatal("drag not active")
	}
	if err := g.HandleInput(game.InputEvent{Kind: game.PointerUp, Pos: end}); err != nil {
		t.Fatalf("release: %v", err)
	}

	ps := g.Projectiles()
	if len(ps) != 1 {
		t.Fatalf("projectiles = %d, want 1", len(ps))
	}
	if v := ps[0].Velocity(); v != vmath.V(10, 0) {
		t.Errorf("launch velocity = %v, want (10, 0)", v)
	}
	if len(rec.preview) != 0 {
		t.Errorf("preview not cleared on release: %d samples", len(rec.preview))
	}
	if g.Snapshot().AmmoRemaining != cfg.MaxAmmo-1 {
		t.Errorf("snapshot ammo = %d", g.Snapshot().AmmoRemaining)
	}
}

func TestGameFixedAngleKeys(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.AimMode = game.AimFixedAngle
	g, rec := newGame(t, cfg)

	if len(rec.preview) == 0 {
		t.Fatal("fixed mode starts without a preview")
	}
	before := rec.updates
	g.HandleInput(game.InputEvent{Kind: game.KeyPress, Key: game.KeyAimUp})
	if got, want := g.Aimer().Angle(), cfg.FireAngle+cfg.AngleStep; got != want {
		t.Errorf("angle = %g, want %g", got, want)
	}
	if rec.updates != before+1 {
		t.Errorf("preview updates = %d, want %d", rec.updates, before+1)
	}

	if err := g.HandleInput(game.InputEvent{Kind: game.PointerDown, Pos: cfg.CannonPosition.Add(vmath.V(1, 1))}); err != nil {
		t.Fatalf("click on cannon: %v", err)
	}
	if len(g.Projectiles()) != 1 {
		t.Fatal("click on cannon did not fire in fixed mode")
	}
}

func TestGameResetAndRestart(t *testing.T) {
	cfg := flatConfig()
	g, _ := newGame(t, cfg)

	layout := []game.TargetSpec{
		{Name: "a", Position: vmath.V(20, 1.5)},
		{Name: "b", Position: vmath.V(24, 1.5)},
	}
	if err := g.LoadLayout(layout); err != nil {
		t.Fatal(err)
	}
	if _, err := g.Fire(g.Aimer().FixedIntent()); err != nil {
		t.Fatal(err)
	}
	g.StepN(5)

	g.Reset()
	if len(g.Projectiles()) != 0 || len(g.Targets()) != 0 {
		t.Fatalf("after reset: %d projectiles, %d targets", len(g.Projectiles()), len(g.Targets()))
	}
	if !g.FireControl().Ready() || g.Ledger().AmmoUsed() != 0 {
		t.Fatalf("after reset: ready=%v used=%d", g.FireControl().Ready(), g.Ledger().AmmoUsed())
	}
	if g.Physics().(interface{ Len() int }).Len() != 1 {
		t.Errorf("only the ground should remain in the world")
	}

	g.HandleInput(game.InputEvent{Kind: game.KeyPress, Key: game.KeyReset})
	if len(g.Targets()) != len(layout) {
		t.Errorf("restart placed %d targets, want %d", len(g.Targets()), len(layout))
	}
}

func TestGameResetClearsEffects(t *testing.T) {
	g, rec := newGame(t, flatConfig())
	if _, err := g.Fire(g.Aimer().FixedIntent()); err != nil {
		t.Fatal(err)
	}
	if rec.cleared != 0 {
		t.Fatalf("effects cleared before reset")
	}

	g.HandleInput(game.InputEvent{Kind: game.KeyPress, Key: game.KeyReset})
	if rec.cleared != 1 {
		t.Errorf("ClearEffects calls = %d, want 1", rec.cleared)
	}
	if len(rec.preview) == 0 {
		t.Error("fixed-angle preview not republished after reset")
	}
}

func TestGameCancelAim(t *testing.T) {
	cfg := game.DefaultConfig()
	g, rec := newGame(t, cfg)

	if g.CancelAim() {
		t.Error("CancelAim reported a drag when none was active")
	}
	if err := g.HandleInput(game.InputEvent{Kind: game.PointerDown, Pos: cfg.CannonPosition}); err != nil {
		t.Fatal(err)
	}
	if len(rec.preview) == 0 {
		t.Fatal("drag started without a preview")
	}

	if !g.CancelAim() {
		t.Fatal("CancelAim did not drop the drag")
	}
	if g.Aimer().Dragging() || len(rec.preview) != 0 {
		t.Errorf("after cancel: dragging=%v preview=%d", g.Aimer().Dragging(), len(rec.preview))
	}

	err := g.HandleInput(game.InputEvent{Kind: game.PointerUp, Pos: cfg.CannonPosition.Sub(vmath.V(2, 0))})
	if err != nil || len(g.Projectiles()) != 0 {
		t.Errorf("release after cancel fired: err=%v projectiles=%d", err, len(g.Projectiles()))
	}
}

func TestGameDebugPoke(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.DebugPoke = true
	g, _ := newGame(t, cfg)

	tgt, err := g.AddTarget(game.TargetSpec{Position: vmath.V(15, 1.5)})
	if err != nil {
		t.Fatal(err)
	}
	if err := g.HandleInput(game.InputEvent{Kind: game.PointerDown, Pos: vmath.V(15.2, 1.6)}); err != nil {
		t.Fatal(err)
	}
	if tgt.Health() != cfg.TargetHealth-cfg.PokeDamage {
		t.Errorf("health = %g, want %g", tgt.Health(), cfg.TargetHealth-cfg.PokeDamage)
	}
	if len(g.Projectiles()) != 0 {
		t.Error("poke fired the cannon")
	}
}

func TestNewGameRejectsBadConfig(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.TickRate = 0
	if _, err := game.NewGame(cfg); !errors.Is(err, game.ErrConfiguration) {
		t.Fatalf("err = %v, want ErrConfiguration", err)
	}
}

func TestGameMissingProjectilePrototype(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.ProjectileRadius = 0
	g, _ := newGame(t, cfg)

	_, err := g.Fire(g.Aimer().FixedIntent())
	if !errors.Is(err, game.ErrConfiguration) {
		t.Fatalf("err = %v, want ErrConfiguration", err)
	}
	if !g.FireControl().Ready() || g.Ledger().AmmoUsed() != 0 {
		t.Error("failed fire changed state")
	}
}
