package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"cannonfire/fx"
	"cannonfire/game"
	"cannonfire/level"
	"cannonfire/vmath"
)

// terminal runs the cannon in a text screen
type terminal struct {
	screen  tcell.Screen
	game    *game.Game
	effects *fx.Tracker
	camera  *fx.Camera
	log     *slog.Logger

	mouseDown bool
	notice    string
	noticeAt  uint64
}

func main() {
	mode := flag.String("mode", "fixed", "aim mode: drag or fixed")
	levelPath := flag.String("level", "", "layout file (.js or .json)")
	envFile := flag.String("env", ".env", "dotenv file with CANNON_* settings")
	mute := flag.Bool("mute", false, "disable sound")
	logPath := flag.String("log", "", "write logs to this file")
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

	// The screen owns stdout, so logs go to a file or nowhere
	logOut := os.Stderr
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "log:", err)
			os.Exit(2)
		}
		defer f.Close()
		logOut = f
	}
	logLevel := cfg.LogLevel
	if *logPath == "" {
		logLevel = slog.LevelError + 4
	}
	log := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: logLevel}))

	var sound fx.SoundPlayer
	if !*mute {
		s, err := newOtoSound(fx.NewBank(fx.SampleRate), log)
		if err != nil {
			log.Warn("audio disabled", "err", err)
		} else {
			sound = s
		}
	}
	effects := fx.NewTracker(sound, time.Now().UnixNano())

	g, err := game.NewGame(cfg, game.WithPresenter(effects), game.WithLogger(log))
	if err != nil {
		fmt.Fprintln(os.Stderr, "game:", err)
		os.Exit(2)
	}
	if err := level.Populate(g, *levelPath); err != nil {
		log.Warn("layout", "err", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, "screen:", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "screen:", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.EnableFocus()
	defer screen.Fini()

	t := &terminal{screen: screen, game: g, effects: effects, log: log}
	t.resize()
	t.run()
}

func (t *terminal) resize() {
	cols, rows := t.screen.Size()
	pc := t.game.Config().Physics
	// Two vertical subpixels per cell keep the aspect ratio near square
	t.camera = fx.NewCamera(pc.Min, vmath.V(pc.Width, pc.Height), float64(cols), float64((rows-1)*2))
}

func (t *terminal) run() {
	ticker := time.NewTicker(time.Second / time.Duration(t.game.Config().TickRate))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev := <-events:
			if !t.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			t.game.Step()
			t.effects.Update(t.game.Config().Dt())
			t.effects.TrackProjectiles(t.game.Snapshot().Projectiles)
			t.draw()
		}
	}
}

// handleEvent returns false when the user quits
func (t *terminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.screen.Sync()
		t.resize()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			t.send(game.InputEvent{Kind: game.KeyPress, Key: game.KeyAimUp})
		case tcell.KeyDown:
			t.send(game.InputEvent{Kind: game.KeyPress, Key: game.KeyAimDown})
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ', 'f':
				t.send(game.InputEvent{Kind: game.KeyPress, Key: game.KeyFire})
			case 'r':
				t.send(game.InputEvent{Kind: game.KeyPress, Key: game.KeyReset})
			}
		}
	case *tcell.EventFocus:
		if !ev.Focused {
			t.game.CancelAim()
			t.mouseDown = false
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		pos := t.camera.ScreenToWorld(float64(x)+0.5, float64(y-1)*2+1)
		down := ev.Buttons()&tcell.Button1 != 0
		switch {
		case down && !t.mouseDown:
			t.send(game.InputEvent{Kind: game.PointerDown, Pos: pos})
		case down:
			t.send(game.InputEvent{Kind: game.PointerDrag, Pos: pos})
		case t.mouseDown:
			t.send(game.InputEvent{Kind: game.PointerUp, Pos: pos})
		}
		t.mouseDown = down
	}
	return true
}

func (t *terminal) send(ev game.InputEvent) {
	err := t.game.HandleInput(ev)
	if err == nil || errors.Is(err, game.ErrNoFireIntent) {
		return
	}
	t.notice = err.Error()
	t.noticeAt = t.game.Tick()
}
