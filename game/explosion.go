package game

import (
	"log/slog"

	"cannonfire/physics"
	"cannonfire/vmath"
)

// ExplosionEvent describes one area-of-effect blast
type ExplosionEvent struct {
	Center  vmath.Vec2
	Radius  float64
	Damage  float64
	Mask    physics.Category
	Impulse float64
}

// AreaPhysics is the part of the physics service an explosion needs
type AreaPhysics interface {
	SpatialQuery(center vmath.Vec2, radius float64, mask physics.Category) []*physics.Body
	ApplyImpulse(id physics.BodyID, impulse vmath.Vec2) bool
}

// ExplosionResolver applies blast damage and knockback to everything in range
type ExplosionResolver struct {
	space AreaPhysics
	log   *slog.Logger
}

// NewExplosionResolver creates a resolver over space
func NewExplosionResolver(space AreaPhysics, log *slog.Logger) *ExplosionResolver {
	if log == nil {
		log = slog.Default()
	}
	return &ExplosionResolver{space: space, log: log.With("component", "explosion")}
}

// Resolve damages every damageable body whose volume touches the blast
// circle and pushes dynamic ones outward. Each body is visited once.
// It returns the number of bodies that took damage or an impulse.
func (r *ExplosionResolver) Resolve(ev ExplosionEvent) int {
	if ev.Radius < 0 {
		return 0
	}

	bodies := r.space.SpatialQuery(ev.Center, ev.Radius, ev.Mask)
	affected := 0
	for _, b := range bodies {
		hit := false

		if d, ok := AsDamageable(b); ok && d.TakeDamage(ev.Damage) {
			hit = true
		}

		if !b.Static && ev.Impulse != 0 {
			// Coincident centers have no outward direction
			if dir, ok := b.Pos.Sub(ev.Center).Normalize(); ok {
				if r.space.ApplyImpulse(b.ID, dir.Scale(ev.Impulse)) {
					hit = true
				}
			}
		}

		if hit {
			affected++
		}
	}

	r.log.Debug("resolved", "center", ev.Center, "radius", ev.Radius, "candidates", len(bodies), "affected", affected)
	return affected
}
