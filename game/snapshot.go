package game

import "cannonfire/vmath"

// TargetView is the read model of one target
type TargetView struct {
	ID          EntityID
	Name        string
	Position    vmath.Vec2
	HalfExtents vmath.Vec2
	Health      float64
	MaxHealth   float64
}

// ProjectileView is the read model of one projectile
type ProjectileView struct {
	ID       EntityID
	Position vmath.Vec2
	Velocity vmath.Vec2
	Radius   float64
}

// Snapshot is everything a front end needs to draw one frame
type Snapshot struct {
	Session string
	Tick    uint64

	Cannon    vmath.Vec2
	Muzzle    vmath.Vec2
	AimMode   AimMode
	AimAngle  float64
	Dragging  bool
	DragStart vmath.Vec2
	DragEnd   vmath.Vec2

	Ground       vmath.Vec2 // center
	GroundExtent vmath.Vec2 // half extents

	Score          int
	AmmoRemaining  int
	MaxAmmo        int
	Reloading      bool
	ReloadDeadline uint64

	Targets     []TargetView
	Projectiles []ProjectileView
}

// Snapshot copies the current state into a read model
func (g *Game) Snapshot() Snapshot {
	st := g.fire.State()
	start, end := g.aimer.Drag()

	s := Snapshot{
		Session:        g.session.String(),
		Tick:           g.sched.Now(),
		Cannon:         g.config.CannonPosition,
		Muzzle:         g.config.Muzzle(),
		AimMode:        g.config.AimMode,
		AimAngle:       g.aimer.Angle(),
		Dragging:       g.aimer.Dragging(),
		DragStart:      start,
		DragEnd:        end,
		Score:          g.ledger.Score(),
		AmmoRemaining:  st.AmmoRemaining,
		MaxAmmo:        g.ledger.MaxAmmo(),
		Reloading:      st.Reloading,
		ReloadDeadline: st.ReloadDeadline,
		Targets:        make([]TargetView, 0, len(g.targets)),
		Projectiles:    make([]ProjectileView, 0, len(g.projectiles)),
	}
	if g.ground != nil {
		s.Ground = g.ground.Pos
		s.GroundExtent = g.ground.HalfExtents
	}

	for _, t := range g.targets {
		s.Targets = append(s.Targets, TargetView{
			ID:          t.id,
			Name:        t.name,
			Position:    t.body.Pos,
			HalfExtents: t.body.HalfExtents,
			Health:      t.health,
			MaxHealth:   t.maxHealth,
		})
	}
	for _, p := range g.projectiles {
		if !p.Alive() {
			continue
		}
		s.Projectiles = append(s.Projectiles, ProjectileView{
			ID:       p.id,
			Position: p.body.Pos,
			Velocity: p.body.Vel,
			Radius:   p.body.Radius,
		})
	}
	return s
}
