package game

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"cannonfire/physics"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "CANNON_"

// LoadConfig starts from DefaultConfig, loads the given .env files (missing
// files are skipped, variables already set in the process win) and applies
// CANNON_* overrides. Values that do not parse are logged and ignored.
func LoadConfig(envFiles ...string) (Config, error) {
	cfg := DefaultConfig()

	for _, path := range envFiles {
		if path == "" {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				slog.Debug("env file not found", "path", path)
				continue
			}
			return cfg, fmt.Errorf("load env file %s: %w", path, err)
		}
		slog.Debug("loaded env file", "path", path)
	}

	applyEnv(&cfg, os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

type lookupFunc func(key string) (string, bool)

func applyEnv(cfg *Config, lookup lookupFunc) {
	floats := map[string]*float64{
		"WORLD_WIDTH":              &cfg.Physics.Width,
		"WORLD_HEIGHT":             &cfg.Physics.Height,
		"GRAVITY_X":                &cfg.Physics.Gravity.X,
		"GRAVITY_Y":                &cfg.Physics.Gravity.Y,
		"GROUND_HEIGHT":            &cfg.GroundHeight,
		"BOUNDS_MARGIN":            &cfg.BoundsMargin,
		"CANNON_X":                 &cfg.CannonPosition.X,
		"CANNON_Y":                 &cfg.CannonPosition.Y,
		"CLICK_RADIUS":             &cfg.ClickRadius,
		"FIRE_ANGLE":               &cfg.FireAngle,
		"ANGLE_STEP":               &cfg.AngleStep,
		"FIRE_FORCE":               &cfg.FireForce,
		"DRAG_SENSITIVITY":         &cfg.DragSensitivity,
		"MIN_FORCE":                &cfg.MinForce,
		"MAX_FORCE":                &cfg.MaxForce,
		"RELOAD_COOLDOWN":          &cfg.ReloadCooldown,
		"PROJECTILE_RADIUS":        &cfg.ProjectileRadius,
		"PROJECTILE_MASS":          &cfg.ProjectileMass,
		"PROJECTILE_GRAVITY_SCALE": &cfg.ProjectileGravityScale,
		"PROJECTILE_DAMPING":       &cfg.ProjectileDamping,
		"PROJECTILE_LIFETIME":      &cfg.ProjectileLifetime,
		"DAMAGE":                   &cfg.Damage,
		"EXPLOSION_RADIUS":         &cfg.ExplosionRadius,
		"EXPLOSION_IMPULSE":        &cfg.ExplosionImpulse,
		"TARGET_HEALTH":            &cfg.TargetHealth,
		"TARGET_SIZE":              &cfg.TargetSize,
		"TARGET_MASS":              &cfg.TargetMass,
		"FLASH_DURATION":           &cfg.FlashDuration,
		"POKE_DAMAGE":              &cfg.PokeDamage,
		"TRAJECTORY_STEP":          &cfg.TrajectoryStep,
	}
	ints := map[string]*int{
		"TICK_RATE":        &cfg.TickRate,
		"MAX_AMMO":         &cfg.MaxAmmo,
		"TARGET_POINTS":    &cfg.TargetPoints,
		"TRAJECTORY_STEPS": &cfg.TrajectorySteps,
	}
	bools := map[string]*bool{
		"CLICK_ANYWHERE":  &cfg.ClickAnywhere,
		"TARGETS_DYNAMIC": &cfg.TargetsDynamic,
		"DEBUG_POKE":      &cfg.DebugPoke,
	}

	for key, dst := range floats {
		if raw, ok := lookup(EnvPrefix + key); ok {
			v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
			if err != nil {
				slog.Warn("ignoring invalid config value", "key", EnvPrefix+key, "value", raw)
				continue
			}
			*dst = v
		}
	}
	for key, dst := range ints {
		if raw, ok := lookup(EnvPrefix + key); ok {
			v, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil {
				slog.Warn("ignoring invalid config value", "key", EnvPrefix+key, "value", raw)
				continue
			}
			*dst = v
		}
	}
	for key, dst := range bools {
		if raw, ok := lookup(EnvPrefix + key); ok {
			v, err := strconv.ParseBool(strings.TrimSpace(raw))
			if err != nil {
				slog.Warn("ignoring invalid config value", "key", EnvPrefix+key, "value", raw)
				continue
			}
			*dst = v
		}
	}

	if raw, ok := lookup(EnvPrefix + "AIM_MODE"); ok {
		if m, ok := ParseAimMode(raw); ok {
			cfg.AimMode = m
		} else {
			slog.Warn("ignoring invalid config value", "key", EnvPrefix+"AIM_MODE", "value", raw)
		}
	}
	if raw, ok := lookup(EnvPrefix + "RELOAD_POLICY"); ok {
		if p, ok := ParseReloadPolicy(raw); ok {
			cfg.ReloadPolicy = p
		} else {
			slog.Warn("ignoring invalid config value", "key", EnvPrefix+"RELOAD_POLICY", "value", raw)
		}
	}
	for key, dst := range map[string]*physics.Category{
		"TARGET_MASK": &cfg.TargetMask,
		"EXPLODE_ON":  &cfg.ExplodeOn,
	} {
		if raw, ok := lookup(EnvPrefix + key); ok {
			if c, ok := physics.ParseCategory(raw); ok {
				*dst = c
			} else {
				slog.Warn("ignoring invalid config value", "key", EnvPrefix+key, "value", raw)
			}
		}
	}
	if raw, ok := lookup(EnvPrefix + "LOG_LEVEL"); ok {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
			slog.Warn("ignoring invalid config value", "key", EnvPrefix+"LOG_LEVEL", "value", raw)
		} else {
			cfg.LogLevel = lvl
		}
	}
}
