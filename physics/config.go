package physics

import (
	"math"

	"cannonfire/vmath"
)

// Config holds physics world configuration
type Config struct {
	// Min is the lower-left corner of the world in world units
	Min vmath.Vec2

	// Width is the total width of the world
	Width float64

	// Height is the total height of the world
	Height float64

	// Gravity is the acceleration applied to every dynamic body, scaled per body
	Gravity vmath.Vec2

	// CellSize is the edge of a broad-phase cell in world units
	CellSize float64

	// Resolution is the number of broad-phase units per world unit
	Resolution float64
}

// DefaultConfig returns a 32x18 world with earth gravity
func DefaultConfig() Config {
	return Config{
		Min:        vmath.Zero,
		Width:      32,
		Height:     18,
		Gravity:    vmath.V(0, -9.81),
		CellSize:   1,
		Resolution: 32,
	}
}

// CellCountX returns the number of cells in the X direction
func (c Config) CellCountX() int {
	return int(math.Ceil(c.Width / c.CellSize))
}

// CellCountY returns the number of cells in the Y direction
func (c Config) CellCountY() int {
	return int(math.Ceil(c.Height / c.CellSize))
}

// Max returns the upper-right corner of the world
func (c Config) Max() vmath.Vec2 {
	return c.Min.Add(vmath.V(c.Width, c.Height))
}
