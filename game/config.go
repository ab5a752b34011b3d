package game

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"strings"

	"cannonfire/physics"
	"cannonfire/vmath"
)

// AimMode selects how pointer input maps to a launch vector
type AimMode int

const (
	// AimDrag fires on release of a drag that started on the cannon
	AimDrag AimMode = iota
	// AimFixedAngle fires at the configured angle on a click near the cannon
	AimFixedAngle
)

func (m AimMode) String() string {
	switch m {
	case AimDrag:
		return "drag"
	case AimFixedAngle:
		return "fixed"
	default:
		return fmt.Sprintf("AimMode(%d)", int(m))
	}
}

// ParseAimMode converts "drag" or "fixed" to an AimMode
func ParseAimMode(s string) (AimMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "drag":
		return AimDrag, true
	case "fixed", "fixed-angle", "angle":
		return AimFixedAngle, true
	}
	return AimDrag, false
}

// ResolveAimMode parses a command-line aim mode. An empty value keeps fallback.
func ResolveAimMode(s string, fallback AimMode) (AimMode, error) {
	if strings.TrimSpace(s) == "" {
		return fallback, nil
	}
	m, ok := ParseAimMode(s)
	if !ok {
		return fallback, configError("unknown aim mode %q", s)
	}
	return m, nil
}

// ReloadPolicy decides when the reload cooldown starts
type ReloadPolicy int

const (
	// ReloadAfterImpact waits for the projectile to finish, then cools down
	ReloadAfterImpact ReloadPolicy = iota
	// ReloadOnTimer starts the cooldown at fire and ignores the projectile
	ReloadOnTimer
)

func (p ReloadPolicy) String() string {
	switch p {
	case ReloadAfterImpact:
		return "after-impact"
	case ReloadOnTimer:
		return "timer"
	default:
		return fmt.Sprintf("ReloadPolicy(%d)", int(p))
	}
}

// ParseReloadPolicy converts "after-impact" or "timer" to a ReloadPolicy
func ParseReloadPolicy(s string) (ReloadPolicy, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "after-impact", "impact":
		return ReloadAfterImpact, true
	case "timer":
		return ReloadOnTimer, true
	}
	return ReloadAfterImpact, false
}

// Config holds game configuration. Distances are meters, times seconds,
// angles degrees.
type Config struct {
	// Physics describes the simulated world
	Physics physics.Config

	// TickRate is the number of fixed simulation steps per second
	TickRate int

	// GroundHeight is the thickness of the static ground strip at the bottom of the world
	GroundHeight float64

	// BoundsMargin is how far outside the world a projectile may fly before it is dropped
	BoundsMargin float64

	// Cannon
	CannonPosition  vmath.Vec2
	MuzzleOffset    vmath.Vec2
	ClickRadius     float64
	ClickAnywhere   bool
	AimMode         AimMode
	FireAngle       float64
	AngleStep       float64
	MinAngle        float64
	MaxAngle        float64
	FireForce       float64
	DragSensitivity float64
	MinForce        float64
	MaxForce        float64

	// Reload and ammo
	MaxAmmo        int
	ReloadCooldown float64
	ReloadPolicy   ReloadPolicy

	// Projectile
	ProjectileRadius       float64
	ProjectileMass         float64
	ProjectileGravityScale float64
	ProjectileDamping      float64
	ProjectileLifetime     float64
	Damage                 float64
	ExplosionRadius        float64
	ExplosionImpulse       float64
	TargetMask             physics.Category // bodies an explosion affects
	ExplodeOn              physics.Category // contacts that detonate

	// Targets
	TargetHealth   float64
	TargetPoints   int
	TargetSize     float64
	TargetMass     float64
	TargetsDynamic bool
	FlashColor     color.RGBA
	FlashDuration  float64
	DebugPoke      bool
	PokeDamage     float64

	// Trajectory preview
	TrajectorySteps int
	TrajectoryStep  float64

	LogLevel slog.Level
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		Physics:      physics.DefaultConfig(),
		TickRate:     60,
		GroundHeight: 1.0,
		BoundsMargin: 2.0,

		CannonPosition:  vmath.V(3, 1.5),
		MuzzleOffset:    vmath.V(1, 0),
		ClickRadius:     3.0,
		AimMode:         AimDrag,
		FireAngle:       30.0,
		AngleStep:       5.0,
		MinAngle:        0.0,
		MaxAngle:        85.0,
		FireForce:       12.5,
		DragSensitivity: 5.0,
		MinForce:        5.0,
		MaxForce:        30.0,

		MaxAmmo:        10,
		ReloadCooldown: 0.5,
		ReloadPolicy:   ReloadAfterImpact,

		ProjectileRadius:       0.3,
		ProjectileMass:         1.0,
		ProjectileGravityScale: 0.5,
		ProjectileDamping:      0.1,
		ProjectileLifetime:     5.0,
		Damage:                 10.0,
		ExplosionRadius:        1.5,
		ExplosionImpulse:       10.0,
		TargetMask:             physics.CategoryAll &^ physics.CategoryProjectile,
		ExplodeOn:              physics.CategoryGround | physics.CategoryEnemy | physics.CategoryTarget | physics.CategoryProp,

		TargetHealth:   30.0,
		TargetPoints:   100,
		TargetSize:     1.0,
		TargetMass:     1.0,
		TargetsDynamic: true,
		FlashColor:     color.RGBA{R: 0xff, G: 0x30, B: 0x30, A: 0xff},
		FlashDuration:  0.2,
		PokeDamage:     10.0,

		TrajectorySteps: 50,
		TrajectoryStep:  0.1,

		LogLevel: slog.LevelInfo,
	}
}

// Dt returns the fixed step length in seconds
func (c Config) Dt() float64 {
	return 1.0 / float64(c.TickRate)
}

// Ticks converts a duration in seconds to whole ticks, rounding up
func (c Config) Ticks(seconds float64) uint64 {
	if seconds <= 0 {
		return 0
	}
	// Trim float noise so 0.5s at 60Hz is 30 ticks, not 31
	n := seconds*float64(c.TickRate) - 1e-9
	return uint64(math.Ceil(n))
}

// Muzzle returns the spawn point of projectiles
func (c Config) Muzzle() vmath.Vec2 {
	return c.CannonPosition.Add(c.MuzzleOffset)
}

// ProjectileGravity returns the gravity a projectile actually feels
func (c Config) ProjectileGravity() vmath.Vec2 {
	return c.Physics.Gravity.Scale(c.ProjectileGravityScale)
}

// Validate reports the first setting that cannot work
func (c Config) Validate() error {
	switch {
	case c.TickRate <= 0:
		return configError("tick rate must be positive, got %d", c.TickRate)
	case c.Physics.Width <= 0 || c.Physics.Height <= 0:
		return configError("world size must be positive, got %gx%g", c.Physics.Width, c.Physics.Height)
	case c.Physics.CellSize <= 0 || c.Physics.Resolution <= 0:
		return configError("physics cell size and resolution must be positive")
	case c.MaxAmmo < 0:
		return configError("max ammo must not be negative, got %d", c.MaxAmmo)
	case c.ReloadCooldown < 0:
		return configError("reload cooldown must not be negative, got %g", c.ReloadCooldown)
	case c.ProjectileMass <= 0:
		return configError("projectile mass must be positive, got %g", c.ProjectileMass)
	case c.ProjectileLifetime <= 0:
		return configError("projectile lifetime must be positive, got %g", c.ProjectileLifetime)
	case c.ExplosionRadius < 0:
		return configError("explosion radius must not be negative, got %g", c.ExplosionRadius)
	case c.MinForce > c.MaxForce:
		return configError("min force %g exceeds max force %g", c.MinForce, c.MaxForce)
	case c.MinAngle > c.MaxAngle:
		return configError("min angle %g exceeds max angle %g", c.MinAngle, c.MaxAngle)
	case c.TrajectoryStep <= 0:
		return configError("trajectory step must be positive, got %g", c.TrajectoryStep)
	case c.TargetHealth <= 0:
		return configError("target health must be positive, got %g", c.TargetHealth)
	case c.TargetSize <= 0:
		return configError("target size must be positive, got %g", c.TargetSize)
	case c.GroundHeight < 0:
		return configError("ground height must not be negative, got %g", c.GroundHeight)
	}
	return nil
}
