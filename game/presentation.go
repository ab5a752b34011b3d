package game

import (
	"fmt"
	"image/color"

	"cannonfire/vmath"
)

//go:generate go tool mockgen -destination=./mocks/collaborators_mock.go -package=mocks . Presenter,ScoreSink,ReloadNotifier,ProjectileSpawner,AmmoGate

// EffectKind names a visual effect the core can request
type EffectKind int

const (
	EffectMuzzleFlash EffectKind = iota
	EffectExplosion
	EffectDebris
)

func (k EffectKind) String() string {
	switch k {
	case EffectMuzzleFlash:
		return "muzzle-flash"
	case EffectExplosion:
		return "explosion"
	case EffectDebris:
		return "debris"
	default:
		return fmt.Sprintf("EffectKind(%d)", int(k))
	}
}

// SoundClip names a sound the core can request
type SoundClip int

const (
	SoundFire SoundClip = iota
	SoundExplosion
	SoundTargetDestroyed
)

func (c SoundClip) String() string {
	switch c {
	case SoundFire:
		return "fire"
	case SoundExplosion:
		return "explosion"
	case SoundTargetDestroyed:
		return "target-destroyed"
	default:
		return fmt.Sprintf("SoundClip(%d)", int(c))
	}
}

// Presenter receives fire-and-forget presentation requests. Implementations
// must not call back into the core.
type Presenter interface {
	SpawnEffect(kind EffectKind, pos vmath.Vec2, radius float64)
	PlaySound(clip SoundClip, pos vmath.Vec2)
	// UpdateTrajectoryPreview replaces the preview; an empty slice clears it
	UpdateTrajectoryPreview(samples []vmath.Vec2)
	FlashColor(entity EntityID, c color.Color, seconds float64)
}

// EffectClearer is a Presenter holding timed effects. Game.Reset clears them.
type EffectClearer interface {
	ClearEffects()
}

// NopPresenter discards every request
type NopPresenter struct{}

func (NopPresenter) SpawnEffect(EffectKind, vmath.Vec2, float64) {}
func (NopPresenter) PlaySound(SoundClip, vmath.Vec2) {}
func (NopPresenter) UpdateTrajectoryPreview([]vmath.Vec2) {}
func (NopPresenter) FlashColor(EntityID, color.Color, float64) {}
