package physics

import (
	"math"
	"testing"

	"cannonfire/vmath"
)

func newGroundedWorld() (*World, *Body) {
	w := NewWorld(DefaultConfig())
	ground := NewBox(vmath.V(16, 0.5), 32, 1, CategoryGround)
	ground.Static = true
	w.Add(ground)
	return w, ground
}

func TestSpatialQuery_InclusiveBoundary(t *testing.T) {
	w := NewWorld(DefaultConfig())
	touching := NewCircle(vmath.V(3, 5), 0.5, CategoryTarget)
	outside := NewCircle(vmath.V(3.01, 8), 0.5, CategoryTarget)
	w.Add(touching)
	w.Add(outside)

	got := w.SpatialQuery(vmath.V(1, 5), 1.5, CategoryAll)
	if len(got) != 1 || got[0] != touching {
		t.Fatalf("SpatialQuery returned %d bodies, want only the touching one", len(got))
	}
}

func TestSpatialQuery_MaskFilter(t *testing.T) {
	w := NewWorld(DefaultConfig())
	target := NewBox(vmath.V(5, 5), 1, 1, CategoryTarget)
	prop := NewBox(vmath.V(5.5, 5), 1, 1, CategoryProp)
	w.Add(target)
	w.Add(prop)

	got := w.SpatialQuery(vmath.V(5, 5), 1, CategoryTarget)
	if len(got) != 1 || got[0] != target {
		t.Fatalf("mask filter returned %v, want only target", got)
	}
	if got := w.SpatialQuery(vmath.V(5, 5), 1, CategoryNone); got != nil {
		t.Errorf("empty mask returned %d bodies, want none", len(got))
	}
}

func TestSpatialQuery_LargeBodyVisitedOnce(t *testing.T) {
	w, ground := newGroundedWorld()

	got := w.SpatialQuery(vmath.V(16, 1), 6, CategoryAll)
	if len(got) != 1 || got[0] != ground {
		t.Fatalf("got %d bodies, want the ground exactly once", len(got))
	}
}

func TestSpatialQuery_OrderedByID(t *testing.T) {
	w := NewWorld(DefaultConfig())
	var ids []BodyID
	for i := 0; i < 4; i++ {
		ids = append(ids, w.Add(NewCircle(vmath.V(10+float64(i)*0.5, 10), 0.2, CategoryTarget)))
	}
	got := w.SpatialQuery(vmath.V(11, 10), 2, CategoryTarget)
	if len(got) != len(ids) {
		t.Fatalf("got %d bodies, want %d", len(got), len(ids))
	}
	for i, b := range got {
		if b.ID != ids[i] {
			t.Errorf("result[%d] = %d, want %d", i, b.ID, ids[i])
		}
	}
}

func TestStep_FallsOntoGround(t *testing.T) {
	w, ground := newGroundedWorld()
	ball := NewCircle(vmath.V(5, 3), 0.25, CategoryProjectile)
	ball.CollidesWith = CategoryGround
	w.Add(ball)

	var hit *Contact
	for i := 0; i < 120 && hit == nil; i++ {
		for _, c := range w.Step(1.0 / 60) {
			c := c
			if c.A == ball {
				hit = &c
			}
		}
	}
	if hit == nil {
		t.Fatal("ball never touched the ground")
	}
	if hit.B != ground {
		t.Errorf("contact with body %d, want ground %d", hit.B.ID, ground.ID)
	}
	if math.Abs(hit.Point.Y-1) > 1e-6 {
		t.Errorf("contact point y = %f, want 1 (ground top)", hit.Point.Y)
	}
	if ball.Pos.Y < 1.25-1e-6 || ball.Pos.Y > 1.26 {
		t.Errorf("ball rests at y = %f, want just above 1.25", ball.Pos.Y)
	}
	if ball.Vel.Y != 0 {
		t.Errorf("ball vy = %f, want 0 after contact", ball.Vel.Y)
	}
}

func TestStep_StaticBodiesDoNotMove(t *testing.T) {
	w, ground := newGroundedWorld()
	before := ground.Pos
	w.Step(1)
	if ground.Pos != before {
		t.Errorf("static ground moved from %v to %v", before, ground.Pos)
	}
}

func TestApplyImpulse(t *testing.T) {
	w, ground := newGroundedWorld()
	box := NewBox(vmath.V(5, 5), 1, 1, CategoryTarget)
	box.Mass = 2
	w.Add(box)

	if !w.ApplyImpulse(box.ID, vmath.V(10, 0)) {
		t.Fatal("impulse on dynamic body rejected")
	}
	if box.Vel.X != 5 {
		t.Errorf("vx = %f, want 5 (impulse/mass)", box.Vel.X)
	}
	if w.ApplyImpulse(ground.ID, vmath.V(10, 0)) {
		t.Error("impulse on static body accepted")
	}
	if w.ApplyImpulse(999, vmath.V(1, 0)) {
		t.Error("impulse on unknown body accepted")
	}
}

func TestRemove(t *testing.T) {
	w := NewWorld(DefaultConfig())
	b := NewCircle(vmath.V(4, 4), 0.5, CategoryTarget)
	id := w.Add(b)

	if !w.Remove(id) {
		t.Fatal("Remove returned false for a registered body")
	}
	if w.Remove(id) {
		t.Error("second Remove returned true")
	}
	if got := w.SpatialQuery(vmath.V(4, 4), 1, CategoryAll); len(got) != 0 {
		t.Errorf("removed body still returned by query")
	}
	if w.Len() != 0 {
		t.Errorf("Len = %d, want 0", w.Len())
	}
}

func TestInBounds(t *testing.T) {
	w := NewWorld(DefaultConfig())
	tests := []struct {
		p    vmath.Vec2
		want bool
	}{
		{vmath.V(16, 9), true},
		{vmath.V(-1, 9), true},
		{vmath.V(-2.5, 9), false},
		{vmath.V(16, 20.5), false},
	}
	for _, tt := range tests {
		if got := w.InBounds(tt.p, 2); got != tt.want {
			t.Errorf("InBounds(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestParseCategory(t *testing.T) {
	c, ok := ParseCategory("ground|target, enemy")
	if !ok {
		t.Fatal("ParseCategory failed")
	}
	if c != CategoryGround|CategoryTarget|CategoryEnemy {
		t.Errorf("got %v", c)
	}
	if _, ok := ParseCategory("lava"); ok {
		t.Error("unknown category accepted")
	}
}
