package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"cannonfire/game"
	"cannonfire/level"
	"cannonfire/profile"
	"cannonfire/vmath"
)

// counter tallies presentation requests of a headless run
type counter struct {
	game.NopPresenter
	explosions int
	shots      int
}

func (c *counter) SpawnEffect(kind game.EffectKind, _ vmath.Vec2, _ float64) {
	switch kind {
	case game.EffectExplosion:
		c.explosions++
	case game.EffectMuzzleFlash:
		c.shots++
	}
}

func main() {
	os.Exit(cli())
}

func cli() int {
	shots := flag.Int("shots", 3, "number of shots to fire")
	angle := flag.Float64("angle", -1, "fire angle in degrees (default from config)")
	force := flag.Float64("force", 0, "launch force (default from config)")
	levelPath := flag.String("level", "", "layout file (.js or .json)")
	envFile := flag.String("env", ".env", "dotenv file with CANNON_* settings")
	maxTicks := flag.Int("max-ticks", 60*60, "give up after this many ticks")
	profileDir := flag.String("profile", "", "write a CPU profile and trace into this directory")
	asJSON := flag.Bool("json", false, "print the final snapshot as JSON")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	cfg, err := game.LoadConfig(*envFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		return 2
	}
	if *verbose {
		cfg.LogLevel = slog.LevelDebug
	}
	if *angle >= 0 {
		cfg.FireAngle = *angle
	}
	if *force > 0 {
		cfg.FireForce = *force
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	if *profileDir != "" {
		p, err := profile.New(*profileDir, log)
		if err != nil {
			log.Error("profiler", "err", err)
			return 1
		}
		stop, err := p.Start("cannonsim")
		if err != nil {
			log.Error("profiler", "err", err)
			return 1
		}
		defer stop()
	}

	fx := &counter{}
	g, err := game.NewGame(cfg, game.WithPresenter(fx), game.WithLogger(log))
	if err != nil {
		log.Error("create game", "err", err)
		return 2
	}
	if err := level.Populate(g, *levelPath); err != nil {
		log.Warn("layout", "err", err)
	}

	code := run(g, *shots, *maxTicks, log)

	snap := g.Snapshot()
	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(snap); err != nil {
			log.Error("encode snapshot", "err", err)
		}
	} else {
		fmt.Printf("ticks=%d shots=%d explosions=%d score=%d ammo=%d/%d targets=%d\n",
			snap.Tick, fx.shots, fx.explosions, snap.Score, snap.AmmoRemaining, snap.MaxAmmo, len(snap.Targets))
	}
	return code
}

// run fires shots at the fixed angle, waiting for each reload, then lets the
// last projectile finish
func run(g *game.Game, shots, maxTicks int, log *slog.Logger) int {
	budget := maxTicks
	waitReady := func() bool {
		for !g.FireControl().Ready() {
			if budget == 0 {
				return false
			}
			g.Step()
			budget--
		}
		return true
	}

	for i := range shots {
		if !waitReady() {
			log.Error("timed out waiting for reload", "shot", i+1)
			return 1
		}
		if _, err := g.Fire(g.Aimer().FixedIntent()); err != nil {
			if errors.Is(err, game.ErrOutOfAmmo) {
				log.Warn("out of ammo", "fired", i)
				break
			}
			log.Error("fire", "shot", i+1, "err", err)
			return 1
		}
	}

	for !g.Idle() {
		if budget == 0 {
			log.Error("timed out waiting for the last shot")
			return 1
		}
		g.Step()
		budget--
	}
	return 0
}
