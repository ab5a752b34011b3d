package fx

import (
	"image/color"
	"math"
	"math/rand"

	"cannonfire/vmath"
)

// Particle is one debris fragment in world space
type Particle struct {
	Pos      vmath.Vec2
	Vel      vmath.Vec2
	Age      float64
	Lifetime float64
	Size     float64
	Color    color.NRGBA
}

// Alive reports whether the particle is still visible
func (p *Particle) Alive() bool {
	return p.Age < p.Lifetime
}

// Alpha fades from 1 to 0 over the lifetime
func (p *Particle) Alpha() float64 {
	if p.Lifetime <= 0 {
		return 0
	}
	return math.Max(0, 1-p.Age/p.Lifetime)
}

// Burst describes a one-shot particle emission
type Burst struct {
	Count       int
	SpeedMin    float64
	SpeedMax    float64
	LifetimeMin float64
	LifetimeMax float64
	SizeMin     float64
	SizeMax     float64
	Base        color.NRGBA
	Variation   color.NRGBA
}

// DebrisBurst is the burst spawned where a target breaks
var DebrisBurst = Burst{
	Count:       24,
	SpeedMin:    1.5,
	SpeedMax:    5,
	LifetimeMin: 0.4,
	LifetimeMax: 1.0,
	SizeMin:     0.08,
	SizeMax:     0.2,
	Base:        color.NRGBA{R: 150, G: 110, B: 70, A: 255},
	Variation:   color.NRGBA{R: 40, G: 30, B: 20},
}

// SparkBurst is the burst spawned at the muzzle
var SparkBurst = Burst{
	Count:       8,
	SpeedMin:    1,
	SpeedMax:    3,
	LifetimeMin: 0.1,
	LifetimeMax: 0.25,
	SizeMin:     0.05,
	SizeMax:     0.1,
	Base:        color.NRGBA{R: 255, G: 200, B: 90, A: 255},
	Variation:   color.NRGBA{R: 0, G: 40, B: 40},
}

// pool is a bounded particle buffer that overwrites the oldest slot when full
type pool struct {
	max       int
	particles []Particle
	next      int
}

func newPool(capacity int) *pool {
	return &pool{max: capacity, particles: make([]Particle, 0, capacity)}
}

func (p *pool) add(pt Particle) {
	if len(p.particles) < p.max {
		p.particles = append(p.particles, pt)
		return
	}
	if p.next >= p.max {
		p.next = 0
	}
	p.particles[p.next] = pt
	p.next++
}

// emit spawns a burst at pos scaled by radius
func (p *pool) emit(rng *rand.Rand, b Burst, pos vmath.Vec2, radius float64) {
	scale := math.Max(radius, 0.25)
	for range b.Count {
		angle := rng.Float64() * 2 * math.Pi
		speed := (b.SpeedMin + rng.Float64()*(b.SpeedMax-b.SpeedMin)) * scale
		p.add(Particle{
			Pos:      pos,
			Vel:      vmath.FromAngle(angle).Scale(speed),
			Lifetime: b.LifetimeMin + rng.Float64()*(b.LifetimeMax-b.LifetimeMin),
			Size:     b.SizeMin + rng.Float64()*(b.SizeMax-b.SizeMin),
			Color:    vary(rng, b.Base, b.Variation),
		})
	}
}

func (p *pool) update(dt float64) {
	alive := p.particles[:0]
	for _, pt := range p.particles {
		pt.Age += dt
		pt.Pos = pt.Pos.Add(pt.Vel.Scale(dt))
		if pt.Alive() {
			alive = append(alive, pt)
		}
	}
	p.particles = alive
	if p.next > len(p.particles) {
		p.next = 0
	}
}

func vary(rng *rand.Rand, base, v color.NRGBA) color.NRGBA {
	ch := func(b, v uint8) uint8 {
		return uint8(vmath.Clamp(float64(b)+(rng.Float64()*2-1)*float64(v), 0, 255))
	}
	return color.NRGBA{R: ch(base.R, v.R), G: ch(base.G, v.G), B: ch(base.B, v.B), A: base.A}
}
