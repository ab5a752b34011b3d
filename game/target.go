package game

import (
	"image/color"
	"log/slog"

	"cannonfire/physics"
	"cannonfire/vmath"
)

// Damageable is implemented by anything an explosion or direct hit can hurt
type Damageable interface {
	// TakeDamage applies damage and reports whether it had any effect
	TakeDamage(amount float64) bool
}

// AsDamageable returns the damage capability attached to a body, if any
func AsDamageable(b *physics.Body) (Damageable, bool) {
	if b == nil || b.Data == nil {
		return nil, false
	}
	d, ok := b.Data.(Damageable)
	return d, ok
}

// TargetSpec describes a target to place. Zero sizes, health and points
// take the config defaults.
type TargetSpec struct {
	Name      string           `json:"name"`
	Position  vmath.Vec2       `json:"position"`
	Width     float64          `json:"width"`
	Height    float64          `json:"height"`
	MaxHealth float64          `json:"maxHealth"`
	Points    int              `json:"points"`
	Static    bool             `json:"static"`
	Category  physics.Category `json:"-"`
}

// Target is a destructible body worth points
type Target struct {
	id        EntityID
	name      string
	body      *physics.Body
	maxHealth float64
	health    float64
	points    int
	destroyed bool

	world         PhysicsService
	score         ScoreSink
	fx            Presenter
	flashColor    color.Color
	flashDuration float64
	onDestroyed   func(*Target)
	log           *slog.Logger
}

// NewTarget builds a target from spec and adds its body to world
func NewTarget(cfg Config, spec TargetSpec, world PhysicsService, score ScoreSink, fx Presenter, log *slog.Logger) (*Target, error) {
	if spec.Width == 0 {
		spec.Width = cfg.TargetSize
	}
	if spec.Height == 0 {
		spec.Height = cfg.TargetSize
	}
	if spec.MaxHealth == 0 {
		spec.MaxHealth = cfg.TargetHealth
	}
	if spec.Points == 0 {
		spec.Points = cfg.TargetPoints
	}
	if spec.Category == physics.CategoryNone {
		spec.Category = physics.CategoryTarget
	}
	if spec.Name == "" {
		spec.Name = "target"
	}

	switch {
	case spec.Width < 0 || spec.Height < 0:
		return nil, configError("target %q has negative size", spec.Name)
	case spec.MaxHealth < 0:
		return nil, configError("target %q has negative health", spec.Name)
	case world != nil && !world.InBounds(spec.Position, 0):
		return nil, configError("target %q at %v is outside the world", spec.Name, spec.Position)
	}

	if fx == nil {
		fx = NopPresenter{}
	}
	if log == nil {
		log = slog.Default()
	}

	body := physics.NewBox(spec.Position, spec.Width, spec.Height, spec.Category)
	body.Static = spec.Static || !cfg.TargetsDynamic
	body.Mass = cfg.TargetMass
	body.CollidesWith = physics.CategoryGround | physics.CategoryTarget | physics.CategoryEnemy | physics.CategoryProp

	t := &Target{
		id:            generateEntityID(),
		name:          spec.Name,
		body:          body,
		maxHealth:     spec.MaxHealth,
		health:        spec.MaxHealth,
		points:        spec.Points,
		world:         world,
		score:         score,
		fx:            fx,
		flashColor:    cfg.FlashColor,
		flashDuration: cfg.FlashDuration,
	}
	t.log = log.With("component", "target", "target", t.id, "name", t.name)
	body.Data = t
	if world != nil {
		world.Add(body)
	}

	t.log.Debug("target added", "at", spec.Position, "health", spec.MaxHealth, "points", spec.Points)
	return t, nil
}

func (t *Target) ID() EntityID { return t.id }
func (t *Target) Name() string { return t.name }
func (t *Target) Body() *physics.Body { return t.body }
func (t *Target) Position() vmath.Vec2 { return t.body.Pos }
func (t *Target) HalfExtents() vmath.Vec2 { return t.body.HalfExtents }
func (t *Target) Health() float64 { return t.health }
func (t *Target) MaxHealth() float64 { return t.maxHealth }
func (t *Target) Points() int { return t.points }
func (t *Target) Destroyed() bool { return t.destroyed }
func (t *Target) Alive() bool { return !t.destroyed }

// TakeDamage lowers health and destroys the target when it reaches zero.
// Health may go negative. Damage after destruction is ignored.
func (t *Target) TakeDamage(amount float64) bool {
	if t.destroyed {
		t.log.Debug("damage ignored", "reason", "destroyed")
		return false
	}
	if amount <= 0 {
		return false
	}

	t.health -= amount
	t.fx.FlashColor(t.id, t.flashColor, t.flashDuration)
	t.log.Debug("damaged", "amount", amount, "health", t.health)

	if t.health <= 0 {
		t.destroy()
	}
	return true
}

func (t *Target) destroy() {
	t.destroyed = true
	pos := t.body.Pos

	if t.score != nil {
		t.score.AddScore(t.points)
	}
	t.fx.SpawnEffect(EffectDebris, pos, max(t.body.HalfExtents.X, t.body.HalfExtents.Y))
	t.fx.PlaySound(SoundTargetDestroyed, pos)
	if t.world != nil {
		t.world.Remove(t.body.ID)
	}
	t.log.Info("destroyed", "points", t.points, "at", pos)

	if t.onDestroyed != nil {
		t.onDestroyed(t)
	}
}

// Contains reports whether a world point lies on the target
func (t *Target) Contains(p vmath.Vec2) bool {
	return !t.destroyed && t.body.IntersectsCircle(p, 0)
}
