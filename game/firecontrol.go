package game

import (
	"fmt"
	"log/slog"
	"sync"

	"cannonfire/vmath"
)

// ReloadNotifier receives a projectile's reload-complete signal
type ReloadNotifier interface {
	CompleteReload(shot uint64)
}

// ProjectileSpawner creates the projectile for one shot
type ProjectileSpawner interface {
	Spawn(shot uint64, launch LaunchSpec) error
}

// LaunchMapping selects how a FireIntent becomes a launch vector
type LaunchMapping int

const (
	MappingFixedAngle LaunchMapping = iota
	MappingDrag
)

// FireIntent is a validated request to fire
type FireIntent struct {
	Mapping LaunchMapping

	// Angle in degrees, used by MappingFixedAngle and as the drag fallback
	Angle float64

	// DragStart and DragEnd in world coordinates, used by MappingDrag
	DragStart vmath.Vec2
	DragEnd   vmath.Vec2
}

// FireControlState is a read-only view of the gate
type FireControlState struct {
	AmmoRemaining  int
	Reloading      bool
	ReloadDeadline uint64 // tick the cooldown ends, zero while waiting on the projectile or ready
	Shot           uint64
}

// FireControl gates firing: one projectile in flight, then a cooldown.
type FireControl struct {
	mu      sync.Mutex
	cfg     Config
	ammo    AmmoGate
	spawner ProjectileSpawner
	sched   *Scheduler
	log     *slog.Logger

	reloading bool
	shot      uint64
	cooldown  TaskID
	deadline  uint64
}

// NewFireControl creates a ready gate. A nil spawner is allowed; every fire
// attempt then fails with ErrConfiguration.
func NewFireControl(cfg Config, ammo AmmoGate, spawner ProjectileSpawner, sched *Scheduler, log *slog.Logger) *FireControl {
	if log == nil {
		log = slog.Default()
	}
	return &FireControl{
		cfg:     cfg,
		ammo:    ammo,
		spawner: spawner,
		sched:   sched,
		log:     log.With("component", "firecontrol"),
	}
}

// LaunchVelocity maps an intent to the initial projectile velocity.
// Force is an impulse, so velocity is force over mass.
func LaunchVelocity(cfg Config, intent FireIntent) vmath.Vec2 {
	dir := vmath.FromAngle(vmath.Deg2Rad(intent.Angle))
	force := cfg.FireForce

	if intent.Mapping == MappingDrag {
		drag := intent.DragStart.Sub(intent.DragEnd)
		if d, ok := drag.Normalize(); ok {
			dir = d
			force = vmath.Clamp(drag.Len()*cfg.DragSensitivity, cfg.MinForce, cfg.MaxForce)
		}
	}
	return dir.Scale(force / cfg.ProjectileMass)
}

// Launch builds the launch state for an intent without firing
func (fc *FireControl) Launch(intent FireIntent) LaunchSpec {
	return LaunchSpec{
		Position: fc.cfg.Muzzle(),
		Velocity: LaunchVelocity(fc.cfg, intent),
		Gravity:  fc.cfg.ProjectileGravity(),
	}
}

// Fire spawns one projectile if the gate is ready and ammo remains.
// On any error no state changes.
func (fc *FireControl) Fire(intent FireIntent) (LaunchSpec, error) {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	if fc.reloading {
		fc.log.Info("fire rejected", "reason", "reloading", "shot", fc.shot)
		return LaunchSpec{}, ErrReloading
	}
	if fc.ammo == nil || !fc.ammo.CanFire() {
		fc.log.Info("fire rejected", "reason", "out of ammo")
		return LaunchSpec{}, ErrOutOfAmmo
	}
	if fc.spawner == nil {
		err := configError("no projectile spawner")
		fc.log.Error("fire aborted", "err", err)
		return LaunchSpec{}, err
	}

	launch := fc.Launch(intent)
	shot := fc.shot + 1
	if err := fc.spawner.Spawn(shot, launch); err != nil {
		fc.log.Error("fire aborted", "shot", shot, "err", err)
		return LaunchSpec{}, fmt.Errorf("spawn projectile: %w", err)
	}

	fc.shot = shot
	fc.reloading = true
	if !fc.ammo.UseAmmo() {
		fc.log.Warn("ammo mismatch", "shot", shot, "reason", "gate refused ammo after allowing fire")
	}
	fc.log.Info("fired", "shot", shot, "velocity", launch.Velocity, "ammo", fc.ammo.Remaining())

	if fc.cfg.ReloadPolicy == ReloadOnTimer {
		fc.startCooldown()
	}
	return launch, nil
}

// CompleteReload starts the cooldown for the given shot. Signals for an old
// shot, duplicates and signals while ready are ignored.
func (fc *FireControl) CompleteReload(shot uint64) {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	switch {
	case !fc.reloading:
		fc.log.Debug("reload signal ignored", "reason", "ready", "shot", shot)
	case shot != fc.shot:
		fc.log.Debug("reload signal ignored", "reason", "stale", "shot", shot, "current", fc.shot)
	case fc.cooldown != 0:
		fc.log.Debug("reload signal ignored", "reason", "cooldown running", "shot", shot)
	default:
		fc.startCooldown()
	}
}

// startCooldown must be called with mu held
func (fc *FireControl) startCooldown() {
	delay := fc.cfg.Ticks(fc.cfg.ReloadCooldown)
	shot := fc.shot
	fc.cooldown = fc.sched.After(delay, func() { fc.finishReload(shot) })
	fc.deadline = fc.sched.Now() + max(delay, 1)
	fc.log.Debug("reload cooldown", "shot", shot, "ticks", delay)
}

func (fc *FireControl) finishReload(shot uint64) {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	if shot != fc.shot || !fc.reloading {
		return
	}
	fc.reloading = false
	fc.cooldown = 0
	fc.deadline = 0
	fc.log.Info("reloaded", "shot", shot, "ammo", fc.ammo.Remaining())
}

// Reset returns to ready and drops any pending cooldown. Signals from
// projectiles fired before the reset are ignored afterwards.
func (fc *FireControl) Reset() {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	if fc.cooldown != 0 {
		fc.sched.Cancel(fc.cooldown)
	}
	fc.cooldown = 0
	fc.deadline = 0
	fc.reloading = false
	// Burn a shot number so late signals never match
	fc.shot++
}

// Ready reports whether a fire attempt would pass the reload gate
func (fc *FireControl) Ready() bool {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return !fc.reloading
}

// State returns a snapshot of the gate
func (fc *FireControl) State() FireControlState {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	st := FireControlState{
		Reloading:      fc.reloading,
		ReloadDeadline: fc.deadline,
		Shot:           fc.shot,
	}
	if fc.ammo != nil {
		st.AmmoRemaining = fc.ammo.Remaining()
	}
	return st
}
