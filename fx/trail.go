package fx

import (
	"maps"
	"slices"

	"cannonfire/game"
	"cannonfire/vmath"
)

// TrailDuration is how long a trail point stays visible
const TrailDuration = 1.0

// TrailPoint is one remembered projectile position
type TrailPoint struct {
	Pos vmath.Vec2
	Age float64
}

// Alpha fades linearly from 1 to 0 over TrailDuration
func (p TrailPoint) Alpha() float64 {
	return 1 - vmath.Clamp(p.Age/TrailDuration, 0, 1)
}

// Trail is the recent path of one projectile, oldest point first
type Trail struct {
	ID     game.EntityID
	Points []TrailPoint
}

// TrackProjectiles records the current position of every live projectile.
// Front ends call it once per simulation step.
func (t *Tracker) TrackProjectiles(views []game.ProjectileView) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, v := range views {
		t.trails[v.ID] = append(t.trails[v.ID], TrailPoint{Pos: v.Position})
	}
}

// ageTrails drops points older than TrailDuration and empty trails.
// The caller holds t.mu.
func (t *Tracker) ageTrails(dt float64) {
	for id, pts := range t.trails {
		kept := pts[:0]
		for _, p := range pts {
			p.Age += dt
			if p.Age < TrailDuration {
				kept = append(kept, p)
			}
		}
		if len(kept) == 0 {
			delete(t.trails, id)
			continue
		}
		t.trails[id] = kept
	}
}

// Trails returns a copy of every trail ordered by projectile id
func (t *Tracker) Trails() []Trail {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Trail, 0, len(t.trails))
	for _, id := range slices.Sorted(maps.Keys(t.trails)) {
		out = append(out, Trail{ID: id, Points: slices.Clone(t.trails[id])})
	}
	return out
}
