package game

import (
	"fmt"
	"log/slog"

	"cannonfire/physics"
	"cannonfire/vmath"
)

// EndReason records how a projectile finished
type EndReason int

const (
	EndNone EndReason = iota
	EndExploded
	EndExpired
	EndOutOfBounds
	EndCleared
)

func (r EndReason) String() string {
	switch r {
	case EndNone:
		return "none"
	case EndExploded:
		return "exploded"
	case EndExpired:
		return "expired"
	case EndOutOfBounds:
		return "out-of-bounds"
	case EndCleared:
		return "cleared"
	default:
		return fmt.Sprintf("EndReason(%d)", int(r))
	}
}

// Contact is one collision seen from a projectile
type Contact struct {
	Other *physics.Body
	Point vmath.Vec2
}

// ProjectileConfig is the per-shot payload copied from Config at spawn
type ProjectileConfig struct {
	Damage          float64
	ExplosionRadius float64
	Impulse         float64
	TargetMask      physics.Category
	ExplodeOn       physics.Category
	LifetimeTicks   uint64
	Dt              float64
}

// Projectile returns the per-shot payload of this config
func (cfg Config) Projectile() ProjectileConfig {
	return ProjectileConfig{
		Damage:          cfg.Damage,
		ExplosionRadius: cfg.ExplosionRadius,
		Impulse:         cfg.ExplosionImpulse,
		TargetMask:      cfg.TargetMask,
		ExplodeOn:       cfg.ExplodeOn,
		LifetimeTicks:   max(cfg.Ticks(cfg.ProjectileLifetime), 1),
		Dt:              cfg.Dt(),
	}
}

// Projectile is one shot in flight. It ends exactly once and signals
// reload exactly once, whichever way it ends.
type Projectile struct {
	id       EntityID
	shot     uint64
	body     *physics.Body
	cfg      ProjectileConfig
	world    PhysicsService
	resolver *ExplosionResolver
	reload   ReloadNotifier
	fx       Presenter
	log      *slog.Logger

	ageTicks uint64
	exploded bool
	finished bool
	reason   EndReason
}

// NewProjectile wraps a body that has already been added to world
func NewProjectile(shot uint64, body *physics.Body, cfg ProjectileConfig, world PhysicsService,
	resolver *ExplosionResolver, reload ReloadNotifier, fx Presenter, log *slog.Logger) *Projectile {
	if fx == nil {
		fx = NopPresenter{}
	}
	if log == nil {
		log = slog.Default()
	}
	id := generateEntityID()
	p := &Projectile{
		id:       id,
		shot:     shot,
		body:     body,
		cfg:      cfg,
		world:    world,
		resolver: resolver,
		reload:   reload,
		fx:       fx,
		log:      log.With("component", "projectile", "projectile", id, "shot", shot),
	}
	body.Data = p
	return p
}

func (p *Projectile) ID() EntityID { return p.id }
func (p *Projectile) Shot() uint64 { return p.shot }
func (p *Projectile) Body() *physics.Body { return p.body }
func (p *Projectile) Position() vmath.Vec2 { return p.body.Pos }
func (p *Projectile) Velocity() vmath.Vec2 { return p.body.Vel }
func (p *Projectile) Alive() bool { return !p.finished }
func (p *Projectile) Exploded() bool { return p.exploded }
func (p *Projectile) EndReason() EndReason { return p.reason }

// Age returns the time in flight in seconds
func (p *Projectile) Age() float64 {
	return float64(p.ageTicks) * p.cfg.Dt
}

// OnCollision applies direct-hit damage and explodes on trigger categories
func (p *Projectile) OnCollision(c Contact) {
	if p.exploded || p.finished || c.Other == nil {
		return
	}

	if d, ok := AsDamageable(c.Other); ok {
		d.TakeDamage(p.cfg.Damage)
		p.log.Debug("direct hit", "body", c.Other.ID, "damage", p.cfg.Damage)
	}

	if c.Other.Category.Has(p.cfg.ExplodeOn) {
		p.Explode(c.Point)
	}
}

// Explode detonates at the given point. It reports whether this call
// produced the explosion; later calls are no-ops.
func (p *Projectile) Explode(at vmath.Vec2) bool {
	if p.exploded {
		p.log.Debug("explode ignored", "reason", "already exploded")
		return false
	}
	if p.finished {
		p.log.Debug("explode ignored", "reason", p.reason.String())
		return false
	}
	p.exploded = true

	affected := 0
	if p.resolver != nil {
		affected = p.resolver.Resolve(ExplosionEvent{
			Center:  at,
			Radius:  p.cfg.ExplosionRadius,
			Damage:  p.cfg.Damage,
			Mask:    p.cfg.TargetMask,
			Impulse: p.cfg.Impulse,
		})
	}
	p.fx.SpawnEffect(EffectExplosion, at, p.cfg.ExplosionRadius)
	p.fx.PlaySound(SoundExplosion, at)
	p.log.Info("exploded", "at", at, "affected", affected)

	p.finish(EndExploded)
	return true
}

// OnBoundsExit ends the flight without an explosion
func (p *Projectile) OnBoundsExit() {
	if p.finished {
		return
	}
	p.log.Info("left the world", "at", p.body.Pos)
	p.finish(EndOutOfBounds)
}

// Update ages the projectile by one tick and expires it at its lifetime
func (p *Projectile) Update() {
	if p.finished {
		return
	}
	p.ageTicks++
	if p.ageTicks >= p.cfg.LifetimeTicks {
		p.log.Info("expired", "age", p.Age())
		p.finish(EndExpired)
	}
}

// Clear ends the flight without signalling reload, used on reset
func (p *Projectile) Clear() {
	p.finish(EndCleared)
}

func (p *Projectile) finish(reason EndReason) {
	if p.finished {
		return
	}
	p.finished = true
	p.reason = reason
	if p.world != nil {
		p.world.Remove(p.body.ID)
	}
	if reason != EndCleared && p.reload != nil {
		p.reload.CompleteReload(p.shot)
	}
}
