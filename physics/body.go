package physics

import (
	"math"

	"cannonfire/vmath"

	"github.com/solarlune/resolv"
)

// BodyID identifies a body inside a World
type BodyID uint64

// Shape selects the collision volume of a body
type Shape int

const (
	ShapeCircle Shape = iota
	ShapeBox
)

// Body is a rigid body owned by the World.
// Pos is the center of the collision volume.
type Body struct {
	ID  BodyID
	Pos vmath.Vec2
	Vel vmath.Vec2

	Shape       Shape
	Radius      float64    // ShapeCircle
	HalfExtents vmath.Vec2 // ShapeBox

	Mass          float64
	GravityScale  float64
	LinearDamping float64

	// Static bodies never move and ignore impulses
	Static bool

	Category     Category
	CollidesWith Category

	// Data carries the owning game object; callers type-assert capabilities from it
	Data any

	obj *resolv.Object
}

// NewCircle creates a dynamic circular body with unit mass and full gravity
func NewCircle(pos vmath.Vec2, radius float64, category Category) *Body {
	return &Body{
		Pos:          pos,
		Shape:        ShapeCircle,
		Radius:       radius,
		Mass:         1,
		GravityScale: 1,
		Category:     category,
	}
}

// NewBox creates a dynamic axis-aligned box body with unit mass and full gravity
func NewBox(pos vmath.Vec2, width, height float64, category Category) *Body {
	return &Body{
		Pos:          pos,
		Shape:        ShapeBox,
		HalfExtents:  vmath.V(width/2, height/2),
		Mass:         1,
		GravityScale: 1,
		Category:     category,
	}
}

// Extents returns the half size of the body's bounding box
func (b *Body) Extents() vmath.Vec2 {
	if b.Shape == ShapeCircle {
		return vmath.V(b.Radius, b.Radius)
	}
	return b.HalfExtents
}

// ClosestPoint returns the point of the body's volume nearest to p
func (b *Body) ClosestPoint(p vmath.Vec2) vmath.Vec2 {
	return closestPoint(b, b.Pos, p)
}

// IntersectsCircle reports whether the body's volume touches the circle (boundary inclusive)
func (b *Body) IntersectsCircle(center vmath.Vec2, radius float64) bool {
	switch b.Shape {
	case ShapeCircle:
		return b.Pos.Dist(center) <= radius+b.Radius
	default:
		return closestPoint(b, b.Pos, center).Dist(center) <= radius
	}
}

func closestPoint(b *Body, at, p vmath.Vec2) vmath.Vec2 {
	if b.Shape == ShapeCircle {
		dir, ok := p.Sub(at).Normalize()
		if !ok {
			return at
		}
		if p.Dist(at) <= b.Radius {
			return p
		}
		return at.Add(dir.Scale(b.Radius))
	}
	return vmath.V(
		vmath.Clamp(p.X, at.X-b.HalfExtents.X, at.X+b.HalfExtents.X),
		vmath.Clamp(p.Y, at.Y-b.HalfExtents.Y, at.Y+b.HalfExtents.Y),
	)
}

// overlaps tests a placed at aPos against b at its current position.
// Touching volumes do not overlap.
func overlaps(a *Body, aPos vmath.Vec2, b *Body) bool {
	switch {
	case a.Shape == ShapeCircle && b.Shape == ShapeCircle:
		return aPos.Dist(b.Pos) < a.Radius+b.Radius
	case a.Shape == ShapeBox && b.Shape == ShapeBox:
		return math.Abs(aPos.X-b.Pos.X) < a.HalfExtents.X+b.HalfExtents.X &&
			math.Abs(aPos.Y-b.Pos.Y) < a.HalfExtents.Y+b.HalfExtents.Y
	case a.Shape == ShapeCircle:
		return closestPoint(b, b.Pos, aPos).Dist(aPos) < a.Radius
	default:
		return closestPoint(a, aPos, b.Pos).Dist(b.Pos) < b.Radius
	}
}
