// Package fx keeps presentation-side effect state: explosion rings, debris,
// hit flashes, projectile trails, the trajectory preview and sound dispatch. It never touches
// game state.
package fx

import (
	"image/color"
	"math/rand"
	"sync"

	"cannonfire/game"
	"cannonfire/vmath"
)

// RingDuration is how long an explosion ring takes to reach full size
const RingDuration = 0.3

// maxParticles bounds the debris pool
const maxParticles = 512

// SoundPlayer plays a requested clip. Front ends provide one.
type SoundPlayer interface {
	Play(clip game.SoundClip, pos vmath.Vec2)
}

// Ring is an expanding, fading explosion circle
type Ring struct {
	Kind      game.EffectKind
	Center    vmath.Vec2
	MaxRadius float64
	Age       float64
	Duration  float64
}

// Radius is the current ring radius
func (r Ring) Radius() float64 {
	return r.MaxRadius * vmath.Clamp(r.Age/r.Duration, 0, 1)
}

// Alpha fades out as the ring grows
func (r Ring) Alpha() float64 {
	return 1 - vmath.Clamp(r.Age/r.Duration, 0, 1)
}

// Flash is a timed tint on an entity
type Flash struct {
	Color     color.Color
	Remaining float64
	Duration  float64
}

// Strength is 1 when the flash starts and 0 when it ends
func (f Flash) Strength() float64 {
	if f.Duration <= 0 {
		return 0
	}
	return vmath.Clamp(f.Remaining/f.Duration, 0, 1)
}

// Tracker implements game.Presenter by recording effects for a renderer
type Tracker struct {
	mu        sync.Mutex
	rings     []Ring
	particles *pool
	flashes   map[game.EntityID]Flash
	trails    map[game.EntityID][]TrailPoint
	preview   []vmath.Vec2
	sound     SoundPlayer
	rng       *rand.Rand
}

var _ game.Presenter = (*Tracker)(nil)

// NewTracker creates a tracker. sound may be nil.
func NewTracker(sound SoundPlayer, seed int64) *Tracker {
	return &Tracker{
		particles: newPool(maxParticles),
		flashes:   make(map[game.EntityID]Flash),
		trails:    make(map[game.EntityID][]TrailPoint),
		sound:     sound,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// SpawnEffect records a visual effect
func (t *Tracker) SpawnEffect(kind game.EffectKind, pos vmath.Vec2, radius float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch kind {
	case game.EffectExplosion:
		t.rings = append(t.rings, Ring{Kind: kind, Center: pos, MaxRadius: radius, Duration: RingDuration})
	case game.EffectDebris:
		t.particles.emit(t.rng, DebrisBurst, pos, radius)
	case game.EffectMuzzleFlash:
		t.rings = append(t.rings, Ring{Kind: kind, Center: pos, MaxRadius: radius * 1.5, Duration: RingDuration / 2})
		t.particles.emit(t.rng, SparkBurst, pos, radius)
	}
}

// PlaySound forwards to the sound player
func (t *Tracker) PlaySound(clip game.SoundClip, pos vmath.Vec2) {
	t.mu.Lock()
	s := t.sound
	t.mu.Unlock()

	if s != nil {
		s.Play(clip, pos)
	}
}

// UpdateTrajectoryPreview replaces the preview polyline
func (t *Tracker) UpdateTrajectoryPreview(samples []vmath.Vec2) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.preview = append(t.preview[:0], samples...)
}

// FlashColor starts or restarts a tint on an entity
func (t *Tracker) FlashColor(entity game.EntityID, c color.Color, seconds float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.flashes[entity] = Flash{Color: c, Remaining: seconds, Duration: seconds}
}

// Update ages every effect by dt and drops the finished ones
func (t *Tracker) Update(dt float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	rings := t.rings[:0]
	for _, r := range t.rings {
		r.Age += dt
		if r.Age < r.Duration {
			rings = append(rings, r)
		}
	}
	t.rings = rings

	t.particles.update(dt)

	for id, f := range t.flashes {
		f.Remaining -= dt
		if f.Remaining <= 0 {
			delete(t.flashes, id)
			continue
		}
		t.flashes[id] = f
	}

	t.ageTrails(dt)
}

// Rings returns a copy of the live rings
func (t *Tracker) Rings() []Ring {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Ring(nil), t.rings...)
}

// Particles returns a copy of the live particles
func (t *Tracker) Particles() []Particle {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Particle(nil), t.particles.particles...)
}

// Flash returns the active tint of an entity
func (t *Tracker) Flash(entity game.EntityID) (Flash, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	f, ok := t.flashes[entity]
	return f, ok
}

// Preview returns a copy of the trajectory preview
func (t *Tracker) Preview() []vmath.Vec2 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]vmath.Vec2(nil), t.preview...)
}

// ClearEffects drops every effect
func (t *Tracker) ClearEffects() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rings = nil
	t.particles = newPool(maxParticles)
	t.flashes = make(map[game.EntityID]Flash)
	t.trails = make(map[game.EntityID][]TrailPoint)
	t.preview = nil
}
