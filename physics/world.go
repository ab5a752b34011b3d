package physics

import (
	"math"
	"sort"

	"cannonfire/vmath"

	"github.com/solarlune/resolv"
)

// contactIterations bounds the bisection used to find the time of impact
const contactIterations = 12

// Contact describes a moving body A touching body B during a step
type Contact struct {
	A *Body
	B *Body

	// Point is the point on B nearest to A at the moment of contact
	Point vmath.Vec2

	// Normal points from B towards A along the blocked axis
	Normal vmath.Vec2
}

// World is the 2D physics service: it integrates dynamic bodies, reports contacts
// and answers spatial queries. A World is not safe for concurrent use.
type World struct {
	// Configuration
	Config Config

	space  *resolv.Space
	probe  *resolv.Object
	bodies map[BodyID]*Body

	// All bodies in insertion (and therefore id) order
	order  []*Body
	nextID BodyID
}

// NewWorld creates a world with a broad-phase space covering the configured bounds
func NewWorld(config Config) *World {
	if config.Resolution <= 0 {
		config.Resolution = 1
	}
	if config.CellSize <= 0 {
		config.CellSize = 1
	}
	cell := int(math.Max(1, math.Round(config.CellSize*config.Resolution)))
	space := resolv.NewSpace(
		config.CellCountX()*cell,
		config.CellCountY()*cell,
		cell,
		cell,
	)

	return &World{
		Config: config,
		space:  space,
		probe:  resolv.NewObject(0, 0, 1, 1),
		bodies: make(map[BodyID]*Body),
		order:  make([]*Body, 0, 64),
	}
}

// Add registers a body, assigns its id and returns it
func (w *World) Add(b *Body) BodyID {
	w.nextID++
	b.ID = w.nextID
	if b.Mass <= 0 {
		b.Mass = 1
	}

	ext := b.Extents()
	b.obj = resolv.NewObject(0, 0, 2*ext.X*w.Config.Resolution, 2*ext.Y*w.Config.Resolution, b.Category.Tags()...)
	b.obj.Data = b
	w.space.Add(b.obj)
	w.sync(b)

	w.bodies[b.ID] = b
	w.order = append(w.order, b)
	return b.ID
}

// Remove unregisters a body. Removing an unknown id is a no-op and returns false.
func (w *World) Remove(id BodyID) bool {
	b, ok := w.bodies[id]
	if !ok {
		return false
	}
	w.space.Remove(b.obj)
	delete(w.bodies, id)
	for i, o := range w.order {
		if o == b {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
	return true
}

// Body looks up a registered body
func (w *World) Body(id BodyID) (*Body, bool) {
	b, ok := w.bodies[id]
	return b, ok
}

// Len returns the number of registered bodies
func (w *World) Len() int {
	return len(w.order)
}

// ApplyImpulse changes the velocity of a dynamic body by impulse/mass
func (w *World) ApplyImpulse(id BodyID, impulse vmath.Vec2) bool {
	b, ok := w.bodies[id]
	if !ok || b.Static {
		return false
	}
	b.Vel = b.Vel.Add(impulse.Scale(1 / b.Mass))
	return true
}

// InBounds reports whether p lies inside the world grown by margin on every side
func (w *World) InBounds(p vmath.Vec2, margin float64) bool {
	lo := w.Config.Min
	hi := w.Config.Max()
	return p.X >= lo.X-margin && p.X <= hi.X+margin &&
		p.Y >= lo.Y-margin && p.Y <= hi.Y+margin
}

// SpatialQuery returns every body in mask whose volume intersects the circle
// (boundary inclusive), each once, ordered by id
func (w *World) SpatialQuery(center vmath.Vec2, radius float64, mask Category) []*Body {
	if mask == CategoryNone || radius < 0 {
		return nil
	}

	res := w.Config.Resolution
	origin := w.toSpace(center.Sub(vmath.V(radius, radius)))
	// Grown by one unit per side so volumes touching the edge share a cell
	w.probe.X = origin.X - 1
	w.probe.Y = origin.Y - 1
	w.probe.W = 2*radius*res + 2
	w.probe.H = 2*radius*res + 2
	w.space.Add(w.probe)
	collision := w.probe.Check(0, 0, mask.Tags()...)
	w.space.Remove(w.probe)

	if collision == nil {
		return nil
	}

	seen := make(map[BodyID]bool, len(collision.Objects))
	found := make([]*Body, 0, len(collision.Objects))
	for _, obj := range collision.Objects {
		b, ok := obj.Data.(*Body)
		if !ok || seen[b.ID] {
			continue
		}
		seen[b.ID] = true
		if !b.Category.Has(mask) {
			continue
		}
		if b.IntersectsCircle(center, radius) {
			found = append(found, b)
		}
	}

	sort.Slice(found, func(i, j int) bool { return found[i].ID < found[j].ID })
	return found
}

// Step integrates every dynamic body by dt and returns the contacts found.
// Bodies are moved one axis at a time and stop at the first obstacle on that axis.
func (w *World) Step(dt float64) []Contact {
	var contacts []Contact
	for _, b := range w.order {
		if b.Static {
			continue
		}

		b.Vel = b.Vel.Add(w.Config.Gravity.Scale(b.GravityScale * dt))
		if b.LinearDamping > 0 {
			b.Vel = b.Vel.Scale(1 / (1 + b.LinearDamping*dt))
		}

		if c, hit := w.moveAxis(b, vmath.V(b.Vel.X*dt, 0)); hit {
			b.Vel.X = 0
			contacts = append(contacts, c)
		}
		if c, hit := w.moveAxis(b, vmath.V(0, b.Vel.Y*dt)); hit {
			b.Vel.Y = 0
			contacts = append(contacts, c)
		}
	}
	return contacts
}

// moveAxis moves b by d in sub-steps no longer than its smallest half extent
func (w *World) moveAxis(b *Body, d vmath.Vec2) (Contact, bool) {
	dist := d.Len()
	if dist == 0 {
		return Contact{}, false
	}

	ext := b.Extents()
	maxStep := math.Max(math.Min(ext.X, ext.Y), 1/w.Config.Resolution)
	steps := int(math.Ceil(dist / maxStep))
	step := d.Scale(1 / float64(steps))

	for i := 0; i < steps; i++ {
		other, t := w.firstHit(b, step)
		if other == nil {
			b.Pos = b.Pos.Add(step)
			w.sync(b)
			continue
		}

		touch := b.Pos.Add(step.Scale(t))
		normal, _ := step.Scale(-1).Normalize()
		contact := Contact{
			A:      b,
			B:      other,
			Point:  other.ClosestPoint(touch),
			Normal: normal,
		}
		b.Pos = touch
		w.sync(b)
		return contact, true
	}
	return Contact{}, false
}

// firstHit finds the body b would enter first when moved by d, and the
// fraction of d at which it touches
func (w *World) firstHit(b *Body, d vmath.Vec2) (*Body, float64) {
	if b.CollidesWith == CategoryNone {
		return nil, 0
	}
	res := w.Config.Resolution
	collision := b.obj.Check(d.X*res, d.Y*res, b.CollidesWith.Tags()...)
	if collision == nil {
		return nil, 0
	}

	dest := b.Pos.Add(d)
	var best *Body
	bestT := math.Inf(1)
	for _, obj := range collision.Objects {
		other, ok := obj.Data.(*Body)
		if !ok || other == b || !b.CollidesWith.Has(other.Category) {
			continue
		}
		// Already overlapping at the start: let the body move out
		if overlaps(b, b.Pos, other) || !overlaps(b, dest, other) {
			continue
		}
		t := w.freeFraction(b, d, other)
		if t < bestT || (t == bestT && best != nil && other.ID < best.ID) {
			best = other
			bestT = t
		}
	}
	if best == nil {
		return nil, 0
	}
	return best, bestT
}

// freeFraction returns the largest fraction of d that keeps b clear of other
func (w *World) freeFraction(b *Body, d vmath.Vec2, other *Body) float64 {
	lo, hi := 0.0, 1.0
	for i := 0; i < contactIterations; i++ {
		mid := (lo + hi) / 2
		if overlaps(b, b.Pos.Add(d.Scale(mid)), other) {
			hi = mid
		} else {
			lo = mid
		}
	}
	return lo
}

// sync mirrors the body's bounds into the broad-phase space
func (w *World) sync(b *Body) {
	ext := b.Extents()
	p := w.toSpace(b.Pos.Sub(ext))
	b.obj.X = p.X
	b.obj.Y = p.Y
	b.obj.Update()
}

func (w *World) toSpace(p vmath.Vec2) vmath.Vec2 {
	return p.Sub(w.Config.Min).Scale(w.Config.Resolution)
}
