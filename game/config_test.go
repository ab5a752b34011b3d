package game

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"cannonfire/physics"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero tick rate", func(c *Config) { c.TickRate = 0 }},
		{"negative ammo", func(c *Config) { c.MaxAmmo = -1 }},
		{"zero mass", func(c *Config) { c.ProjectileMass = 0 }},
		{"zero lifetime", func(c *Config) { c.ProjectileLifetime = 0 }},
		{"force range", func(c *Config) { c.MinForce, c.MaxForce = 10, 5 }},
		{"angle range", func(c *Config) { c.MinAngle, c.MaxAngle = 50, 10 }},
		{"trajectory step", func(c *Config) { c.TrajectoryStep = 0 }},
		{"target health", func(c *Config) { c.TargetHealth = 0 }},
		{"world size", func(c *Config) { c.Physics.Width = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrConfiguration) {
				t.Fatalf("Validate() = %v, want ErrConfiguration", err)
			}
		})
	}
}

func TestConfigTicks(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		seconds float64
		want    uint64
	}{
		{0, 0},
		{-1, 0},
		{0.5, 30},
		{5, 300},
		{0.01, 1},
		{1.0 / 60, 1},
	}
	for _, tt := range tests {
		if got := cfg.Ticks(tt.seconds); got != tt.want {
			t.Errorf("Ticks(%g) = %d, want %d", tt.seconds, got, tt.want)
		}
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"CANNON_MAX_AMMO":         "3",
		"CANNON_FIRE_ANGLE":       "45",
		"CANNON_AIM_MODE":         "fixed",
		"CANNON_RELOAD_POLICY":    "timer",
		"CANNON_CLICK_ANYWHERE":   "true",
		"CANNON_EXPLODE_ON":       "ground|target",
		"CANNON_LOG_LEVEL":        "debug",
		"CANNON_EXPLOSION_RADIUS": "not-a-number",
	}
	cfg := DefaultConfig()
	applyEnv(&cfg, func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})

	if cfg.MaxAmmo != 3 {
		t.Errorf("MaxAmmo = %d, want 3", cfg.MaxAmmo)
	}
	if cfg.FireAngle != 45 {
		t.Errorf("FireAngle = %g, want 45", cfg.FireAngle)
	}
	if cfg.AimMode != AimFixedAngle {
		t.Errorf("AimMode = %v, want fixed", cfg.AimMode)
	}
	if cfg.ReloadPolicy != ReloadOnTimer {
		t.Errorf("ReloadPolicy = %v, want timer", cfg.ReloadPolicy)
	}
	if !cfg.ClickAnywhere {
		t.Error("ClickAnywhere = false, want true")
	}
	if want := physics.CategoryGround | physics.CategoryTarget; cfg.ExplodeOn != want {
		t.Errorf("ExplodeOn = %v, want %v", cfg.ExplodeOn, want)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
	}
	if cfg.ExplosionRadius != DefaultConfig().ExplosionRadius {
		t.Errorf("invalid value applied: ExplosionRadius = %g", cfg.ExplosionRadius)
	}
}

func TestLoadConfigFromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cannon.env")
	if err := os.WriteFile(path, []byte("CANNON_TARGET_POINTS=250\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("CANNON_TARGET_POINTS") })

	cfg, err := LoadConfig(path, filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.TargetPoints != 250 {
		t.Errorf("TargetPoints = %d, want 250", cfg.TargetPoints)
	}
}

func TestParseAimMode(t *testing.T) {
	tests := []struct {
		in   string
		want AimMode
		ok   bool
	}{
		{"drag", AimDrag, true},
		{"FIXED", AimFixedAngle, true},
		{" angle ", AimFixedAngle, true},
		{"joystick", AimDrag, false},
	}
	for _, tt := range tests {
		got, ok := ParseAimMode(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseAimMode(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestResolveAimMode(t *testing.T) {
	tests := []struct {
		in      string
		want    AimMode
		wantErr bool
	}{
		{"", AimFixedAngle, false},
		{"drag", AimDrag, false},
		{"fixed", AimFixedAngle, false},
		{"sideways", AimFixedAngle, true},
	}
	for _, tt := range tests {
		got, err := ResolveAimMode(tt.in, AimFixedAngle)
		if (err != nil) != tt.wantErr {
			t.Errorf("ResolveAimMode(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, ErrConfiguration) {
			t.Errorf("ResolveAimMode(%q) err = %v, want ErrConfiguration", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ResolveAimMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
