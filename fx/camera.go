package fx

import (
	"math"

	"cannonfire/vmath"
)

// Camera maps the y-up world rectangle onto a y-down screen, letterboxed
// and centered
type Camera struct {
	Min    vmath.Vec2 // world corner shown at the bottom-left
	Size   vmath.Vec2 // world extent in meters
	Width  float64    // screen width in pixels
	Height float64    // screen height in pixels
	Zoom   float64    // pixels per meter
	offset vmath.Vec2
}

// NewCamera fits the world rectangle into a width x height screen
func NewCamera(origin, size vmath.Vec2, width, height float64) *Camera {
	c := &Camera{Min: origin, Size: size}
	c.Resize(width, height)
	return c
}

// Resize refits the camera to a new screen size
func (c *Camera) Resize(width, height float64) {
	c.Width, c.Height = width, height
	c.Zoom = 1
	if c.Size.X > 0 && c.Size.Y > 0 {
		c.Zoom = math.Min(width/c.Size.X, height/c.Size.Y)
	}
	c.offset = vmath.V((width-c.Size.X*c.Zoom)/2, (height-c.Size.Y*c.Zoom)/2)
}

// WorldToScreen converts world coordinates to screen coordinates
func (c *Camera) WorldToScreen(p vmath.Vec2) (float64, float64) {
	sx := (p.X-c.Min.X)*c.Zoom + c.offset.X
	sy := c.Height - c.offset.Y - (p.Y-c.Min.Y)*c.Zoom
	return sx, sy
}

// ScreenToWorld converts screen coordinates to world coordinates
func (c *Camera) ScreenToWorld(sx, sy float64) vmath.Vec2 {
	return vmath.V(
		(sx-c.offset.X)/c.Zoom+c.Min.X,
		(c.Height-c.offset.Y-sy)/c.Zoom+c.Min.Y,
	)
}

// Length converts a world distance to pixels
func (c *Camera) Length(d float64) float64 {
	return d * c.Zoom
}
