package game

import (
	"fmt"

	"cannonfire/vmath"
)

// InputKind is the kind of an input event
type InputKind int

const (
	PointerDown InputKind = iota
	PointerDrag
	PointerUp
	KeyPress
)

func (k InputKind) String() string {
	switch k {
	case PointerDown:
		return "pointer-down"
	case PointerDrag:
		return "pointer-drag"
	case PointerUp:
		return "pointer-up"
	case KeyPress:
		return "key"
	default:
		return fmt.Sprintf("InputKind(%d)", int(k))
	}
}

// Key is a logical key the core understands
type Key int

const (
	KeyNone Key = iota
	KeyFire
	KeyAimUp
	KeyAimDown
	KeyReset
)

// InputEvent is one input in world coordinates. Front ends do the projection.
type InputEvent struct {
	Kind InputKind
	Pos  vmath.Vec2
	Key  Key
}

// Aimer tracks the aim angle and the drag gesture
type Aimer struct {
	cfg    Config
	cannon vmath.Vec2
	angle  float64

	dragging    bool
	dragStart   vmath.Vec2
	dragCurrent vmath.Vec2
}

// NewAimer creates an aimer at the configured fire angle
func NewAimer(cfg Config) *Aimer {
	return &Aimer{
		cfg:    cfg,
		cannon: cfg.CannonPosition,
		angle:  vmath.Clamp(cfg.FireAngle, cfg.MinAngle, cfg.MaxAngle),
	}
}

// IsFireIntent reports whether a pointer at p counts as aiming at the cannon
func (a *Aimer) IsFireIntent(p vmath.Vec2) bool {
	return a.cfg.ClickAnywhere || p.Dist(a.cannon) < a.cfg.ClickRadius
}

// Angle returns the fixed aim angle in degrees
func (a *Aimer) Angle() float64 {
	return a.angle
}

// Adjust turns the fixed aim by steps of AngleStep, clamped to the allowed range.
// It reports whether the angle changed.
func (a *Aimer) Adjust(steps int) bool {
	next := vmath.Clamp(a.angle+float64(steps)*a.cfg.AngleStep, a.cfg.MinAngle, a.cfg.MaxAngle)
	if next == a.angle {
		return false
	}
	a.angle = next
	return true
}

// BeginDrag starts a drag gesture at p
func (a *Aimer) BeginDrag(p vmath.Vec2) {
	a.dragging = true
	a.dragStart = p
	a.dragCurrent = p
}

// MoveDrag updates the drag gesture. It reports whether a drag is active.
func (a *Aimer) MoveDrag(p vmath.Vec2) bool {
	if !a.dragging {
		return false
	}
	a.dragCurrent = p
	return true
}

// EndDrag finishes the gesture and returns its fire intent
func (a *Aimer) EndDrag(p vmath.Vec2) (FireIntent, bool) {
	if !a.dragging {
		return FireIntent{}, false
	}
	a.dragCurrent = p
	a.dragging = false
	return a.DragIntent(), true
}

// CancelDrag drops the gesture without firing
func (a *Aimer) CancelDrag() {
	a.dragging = false
}

// Dragging reports whether a drag is active
func (a *Aimer) Dragging() bool {
	return a.dragging
}

// Drag returns the start and current drag points
func (a *Aimer) Drag() (start, current vmath.Vec2) {
	return a.dragStart, a.dragCurrent
}

// DragIntent is the fire intent of the current drag
func (a *Aimer) DragIntent() FireIntent {
	return FireIntent{
		Mapping:   MappingDrag,
		Angle:     a.angle,
		DragStart: a.dragStart,
		DragEnd:   a.dragCurrent,
	}
}

// FixedIntent is the fire intent of the fixed aim
func (a *Aimer) FixedIntent() FireIntent {
	return FireIntent{Mapping: MappingFixedAngle, Angle: a.angle}
}

// Reset restores the configured angle and drops any drag
func (a *Aimer) Reset() {
	a.angle = vmath.Clamp(a.cfg.FireAngle, a.cfg.MinAngle, a.cfg.MaxAngle)
	a.dragging = false
}
