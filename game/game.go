package game

import (
	"errors"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"cannonfire/physics"
	"cannonfire/vmath"
)

// PhysicsService is the black-box physics engine the core drives.
// *physics.World implements it.
type PhysicsService interface {
	AreaPhysics
	Add(b *physics.Body) physics.BodyID
	Remove(id physics.BodyID) bool
	Body(id physics.BodyID) (*physics.Body, bool)
	Step(dt float64) []physics.Contact
	InBounds(p vmath.Vec2, margin float64) bool
}

// Option configures a Game
type Option func(*Game)

// WithPresenter routes presentation requests to p
func WithPresenter(p Presenter) Option {
	return func(g *Game) {
		if p != nil {
			g.fx = p
		}
	}
}

// WithLogger sets the base logger
func WithLogger(l *slog.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithPhysics replaces the built-in physics world
func WithPhysics(ps PhysicsService) Option {
	return func(g *Game) {
		if ps != nil {
			g.world = ps
		}
	}
}

// Game represents the main game state: one cannon, its projectiles and the
// targets it shoots at. It is driven by HandleInput and Step from a single
// goroutine.
type Game struct {
	config  Config
	session uuid.UUID
	log     *slog.Logger
	fx      Presenter

	world    PhysicsService
	sched    *Scheduler
	ledger   *Ledger
	fire     *FireControl
	resolver *ExplosionResolver
	aimer    *Aimer

	ground      *physics.Body
	projectiles []*Projectile
	targets     []*Target
	layout      []TargetSpec
	wasReady    bool
}

// NewGame creates a new game instance
func NewGame(config Config, opts ...Option) (*Game, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		config:   config,
		session:  uuid.New(),
		log:      slog.Default(),
		fx:       NopPresenter{},
		wasReady: true,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.world == nil {
		g.world = physics.NewWorld(config.Physics)
	}
	g.log = g.log.With("session", g.session.String())

	g.sched = NewScheduler()
	g.ledger = NewLedger(config.MaxAmmo, g.log)
	g.fire = NewFireControl(config, g.ledger, g, g.sched, g.log)
	g.resolver = NewExplosionResolver(g.world, g.log)
	g.aimer = NewAimer(config)

	if config.GroundHeight > 0 {
		w := config.Physics.Width
		h := config.GroundHeight
		g.ground = physics.NewBox(config.Physics.Min.Add(vmath.V(w/2, h/2)), w, h, physics.CategoryGround)
		g.ground.Static = true
		g.world.Add(g.ground)
	}

	g.log.Info("game created", "aim", config.AimMode.String(), "reload", config.ReloadPolicy.String(), "ammo", config.MaxAmmo)
	g.publishFixedPreview()
	return g, nil
}

func (g *Game) Config() Config { return g.config }
func (g *Game) SessionID() uuid.UUID { return g.session }
func (g *Game) Ledger() *Ledger { return g.ledger }
func (g *Game) FireControl() *FireControl { return g.fire }
func (g *Game) Aimer() *Aimer { return g.aimer }
func (g *Game) Physics() PhysicsService { return g.world }
func (g *Game) Ground() *physics.Body { return g.ground }
func (g *Game) Tick() uint64 { return g.sched.Now() }
func (g *Game) Targets() []*Target { return slices.Clone(g.targets) }
func (g *Game) Projectiles() []*Projectile { return slices.Clone(g.projectiles) }

// AddTarget places a destructible target
func (g *Game) AddTarget(spec TargetSpec) (*Target, error) {
	t, err := NewTarget(g.config, spec, g.world, g.ledger, g.fx, g.log)
	if err != nil {
		g.log.Error("add target", "name", spec.Name, "err", err)
		return nil, err
	}
	t.onDestroyed = g.removeTarget
	g.targets = append(g.targets, t)
	return t, nil
}

// LoadLayout places every target of a layout and remembers it for Restart.
// Targets placed before a failing spec stay in the world.
func (g *Game) LoadLayout(specs []TargetSpec) error {
	g.layout = slices.Clone(specs)

	var errs []error
	for _, spec := range specs {
		if _, err := g.AddTarget(spec); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (g *Game) removeTarget(t *Target) {
	g.targets = slices.DeleteFunc(g.targets, func(o *Target) bool { return o == t })
}

// Spawn creates the projectile for one shot. It is the FireControl's spawner.
func (g *Game) Spawn(shot uint64, launch LaunchSpec) error {
	if g.config.ProjectileRadius <= 0 {
		return configError("projectile radius must be positive, got %g", g.config.ProjectileRadius)
	}

	body := physics.NewCircle(launch.Position, g.config.ProjectileRadius, physics.CategoryProjectile)
	body.Vel = launch.Velocity
	body.Mass = g.config.ProjectileMass
	body.GravityScale = g.config.ProjectileGravityScale
	body.LinearDamping = g.config.ProjectileDamping
	body.CollidesWith = physics.CategoryAll &^ physics.CategoryProjectile

	p := NewProjectile(shot, body, g.config.Projectile(), g.world, g.resolver, g.fire, g.fx, g.log)
	g.world.Add(body)
	g.projectiles = append(g.projectiles, p)

	g.fx.SpawnEffect(EffectMuzzleFlash, launch.Position, g.config.ProjectileRadius)
	g.fx.PlaySound(SoundFire, launch.Position)
	return nil
}

// Fire asks the fire control to fire and clears the preview on success
func (g *Game) Fire(intent FireIntent) (LaunchSpec, error) {
	launch, err := g.fire.Fire(intent)
	if err != nil {
		return launch, err
	}
	g.wasReady = false
	g.fx.UpdateTrajectoryPreview(nil)
	return launch, nil
}

// HandleInput maps one input event onto the cannon. It returns the fire
// error when the event was a fire attempt that did not happen.
func (g *Game) HandleInput(ev InputEvent) error {
	switch ev.Kind {
	case PointerDown:
		if g.config.DebugPoke && g.poke(ev.Pos) {
			return nil
		}
		if !g.aimer.IsFireIntent(ev.Pos) {
			g.log.Debug("click ignored", "at", ev.Pos, "distance", ev.Pos.Dist(g.config.CannonPosition))
			return ErrNoFireIntent
		}
		if g.config.AimMode == AimDrag {
			g.aimer.BeginDrag(ev.Pos)
			g.publishPreview(g.aimer.DragIntent())
			return nil
		}
		_, err := g.Fire(g.aimer.FixedIntent())
		return err

	case PointerDrag:
		if g.aimer.MoveDrag(ev.Pos) {
			g.publishPreview(g.aimer.DragIntent())
		}
		return nil

	case PointerUp:
		intent, ok := g.aimer.EndDrag(ev.Pos)
		if !ok {
			return nil
		}
		g.fx.UpdateTrajectoryPreview(nil)
		_, err := g.Fire(intent)
		return err

	case KeyPress:
		switch ev.Key {
		case KeyFire:
			_, err := g.Fire(g.aimer.FixedIntent())
			return err
		case KeyAimUp:
			if g.aimer.Adjust(1) {
				g.publishPreview(g.aimer.FixedIntent())
			}
		case KeyAimDown:
			if g.aimer.Adjust(-1) {
				g.publishPreview(g.aimer.FixedIntent())
			}
		case KeyReset:
			g.Restart()
		}
	}
	return nil
}

// CancelAim drops a drag in progress without firing, for example when the
// window loses focus. It reports whether a drag was dropped.
func (g *Game) CancelAim() bool {
	if !g.aimer.Dragging() {
		return false
	}
	g.aimer.CancelDrag()
	g.fx.UpdateTrajectoryPreview(nil)
	g.log.Debug("aim cancelled")
	return true
}

// poke applies debug damage to the target under p
func (g *Game) poke(p vmath.Vec2) bool {
	for _, t := range g.targets {
		if t.Contains(p) {
			g.log.Debug("poke", "target", t.id)
			t.TakeDamage(g.config.PokeDamage)
			return true
		}
	}
	return false
}

func (g *Game) publishPreview(intent FireIntent) {
	launch := g.fire.Launch(intent)
	g.fx.UpdateTrajectoryPreview(launch.Trajectory(g.config.TrajectorySteps, g.config.TrajectoryStep))
}

func (g *Game) publishFixedPreview() {
	if g.config.AimMode == AimFixedAngle {
		g.publishPreview(g.aimer.FixedIntent())
	}
}

// Step advances the simulation by one fixed tick
func (g *Game) Step() {
	g.sched.Advance()
	if ready := g.fire.Ready(); ready != g.wasReady {
		g.wasReady = ready
		if ready {
			g.publishFixedPreview()
		}
	}

	contacts := g.world.Step(g.config.Dt())
	for _, c := range contacts {
		if p, ok := c.A.Data.(*Projectile); ok {
			p.OnCollision(Contact{Other: c.B, Point: c.Point})
		}
	}

	for _, p := range g.projectiles {
		p.Update()
		if p.Alive() && !g.world.InBounds(p.Position(), g.config.BoundsMargin) {
			p.OnBoundsExit()
		}
	}
	g.projectiles = slices.DeleteFunc(g.projectiles, func(p *Projectile) bool { return !p.Alive() })

	var lost []*Target
	for _, t := range g.targets {
		if !g.world.InBounds(t.Position(), g.config.BoundsMargin) {
			lost = append(lost, t)
		}
	}
	for _, t := range lost {
		t.log.Info("target lost", "at", t.Position())
		g.world.Remove(t.body.ID)
		g.removeTarget(t)
	}
}

// StepN advances n ticks
func (g *Game) StepN(n int) {
	for range n {
		g.Step()
	}
}

// Reset zeroes the ledger, reopens the gate and clears all projectiles and targets
func (g *Game) Reset() {
	g.ledger.ResetAll()
	g.fire.Reset()
	g.aimer.Reset()

	for _, p := range g.projectiles {
		p.Clear()
	}
	g.projectiles = nil

	for _, t := range g.targets {
		g.world.Remove(t.body.ID)
	}
	g.targets = nil

	g.wasReady = true
	if c, ok := g.fx.(EffectClearer); ok {
		c.ClearEffects()
	}
	g.fx.UpdateTrajectoryPreview(nil)
	g.publishFixedPreview()
	g.log.Info("game reset")
}

// Restart resets and reloads the last layout
func (g *Game) Restart() {
	g.Reset()
	if err := g.LoadLayout(g.layout); err != nil {
		g.log.Error("reload layout", "err", err)
	}
}

// Idle reports whether nothing is in flight and the gate is ready
func (g *Game) Idle() bool {
	return len(g.projectiles) == 0 && g.fire.Ready()
}
