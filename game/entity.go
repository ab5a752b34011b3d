package game

import (
	"sync/atomic"

	"cannonfire/vmath"
)

// EntityID is a unique identifier for any entity in the game.
// IDs are never reused, so a stale reference can only miss, never alias.
type EntityID uint64

var nextEntityID uint64

// generateEntityID creates a new unique entity ID
func generateEntityID() EntityID {
	return EntityID(atomic.AddUint64(&nextEntityID, 1))
}

// Entity is the base interface for projectiles and targets
type Entity interface {
	ID() EntityID
	Position() vmath.Vec2
	Alive() bool
}

var (
	_ Entity = (*Projectile)(nil)
	_ Entity = (*Target)(nil)
)
