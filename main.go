package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"cannonfire/fx"
	"cannonfire/game"
	"cannonfire/level"
	"cannonfire/profile"
)

func main() {
	mode := flag.String("mode", "", "aim mode: drag or fixed (default from config)")
	levelPath := flag.String("level", "", "layout file (.js or .json)")
	envFile := flag.String("env", ".env", "dotenv file with CANNON_* settings")
	anywhere := flag.Bool("anywhere", false, "accept clicks anywhere as fire intent")
	poke := flag.Bool("poke", false, "clicking a target damages it")
	mute := flag.Bool("mute", false, "disable sound")
	profileDir := flag.String("profile", "", "capture profiles here when the tick rate drops")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	cfg, err := game.LoadConfig(*envFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}
	if cfg.AimMode, err = game.ResolveAimMode(*mode, cfg.AimMode); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cfg.ClickAnywhere = cfg.ClickAnywhere || *anywhere
	cfg.DebugPoke = cfg.DebugPoke || *poke
	if *verbose {
		cfg.LogLevel = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	var sound fx.SoundPlayer
	if !*mute {
		sound = newSoundPlayer(fx.NewBank(fx.SampleRate), log)
	}
	effects := fx.NewTracker(sound, time.Now().UnixNano())

	g, err := game.NewGame(cfg, game.WithPresenter(effects), game.WithLogger(log))
	if err != nil {
		log.Error("create game", "err", err)
		os.Exit(2)
	}
	if err := level.Populate(g, *levelPath); err != nil {
		log.Warn("layout", "err", err)
	}

	var prof *profile.Profiler
	if *profileDir != "" {
		if prof, err = profile.New(*profileDir, log); err != nil {
			log.Warn("profiler disabled", "err", err)
		}
	}

	sp, err := loadSprites(log)
	if err != nil {
		log.Warn("sprites disabled", "err", err)
	}

	ebiten.SetTPS(cfg.TickRate)
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Cannon")
	ebiten.SetWindowResizable(true)

	if err := ebiten.RunGame(NewApp(g, effects, sp, prof, log)); err != nil {
		log.Error("run", "err", err)
		os.Exit(1)
	}
}
