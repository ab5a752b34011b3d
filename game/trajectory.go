package game

import "cannonfire/vmath"

// LaunchSpec is the immutable launch state of one fire event
type LaunchSpec struct {
	Position vmath.Vec2
	Velocity vmath.Vec2
	Gravity  vmath.Vec2
}

// Predict samples the closed-form ballistic path
//
//	p(i) = origin + v*t + 0.5*g*t^2, t = i*dt
//
// for i in [0, steps). It has no side effects and is only meant for preview:
// the physics service adds damping and collisions, so real flight diverges slightly.
func Predict(origin, velocity, gravity vmath.Vec2, steps int, dt float64) []vmath.Vec2 {
	if steps <= 0 {
		return []vmath.Vec2{}
	}

	positions := make([]vmath.Vec2, steps)
	for i := range positions {
		t := float64(i) * dt
		positions[i] = origin.
			Add(velocity.Scale(t)).
			Add(gravity.Scale(0.5 * t * t))
	}
	return positions
}

// Trajectory predicts the path of this launch
func (l LaunchSpec) Trajectory(steps int, dt float64) []vmath.Vec2 {
	return Predict(l.Position, l.Velocity, l.Gravity, steps, dt)
}
