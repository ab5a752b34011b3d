package main

import (
	"errors"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"cannonfire/fx"
	"cannonfire/game"
	"cannonfire/profile"
	"cannonfire/vmath"
)

// App is the desktop front end: it feeds ebiten input into the game, steps
// it once per tick and draws the snapshot plus the effect tracker.
type App struct {
	game     *game.Game
	effects  *fx.Tracker
	camera   *fx.Camera
	sprites  *sprites
	profiler *profile.Profiler
	log      *slog.Logger

	debug        bool
	prevAltEnter bool
	notice       string
	noticeUntil  uint64
}

// NewApp wires a front end around g. sp and prof may be nil.
func NewApp(g *game.Game, effects *fx.Tracker, sp *sprites, prof *profile.Profiler, log *slog.Logger) *App {
	pc := g.Config().Physics
	return &App{
		game:     g,
		effects:  effects,
		camera:   fx.NewCamera(pc.Min, vmath.V(pc.Width, pc.Height), float64(screenWidth), float64(screenHeight)),
		sprites:  sp,
		profiler: prof,
		log:      log.With("component", "desktop"),
	}
}

// Update advances one fixed tick
func (a *App) Update() error {
	a.handleWindowKeys()

	if !ebiten.IsFocused() && a.game.CancelAim() {
		a.log.Debug("window lost focus, aim dropped")
	}

	for _, ev := range pollInput(a.camera) {
		err := a.game.HandleInput(ev)
		switch {
		case err == nil, errors.Is(err, game.ErrNoFireIntent):
		case errors.Is(err, game.ErrStateViolation):
			a.show(err.Error())
		default:
			a.log.Error("input", "kind", ev.Kind.String(), "err", err)
			a.show(err.Error())
		}
	}

	a.game.Step()
	a.effects.Update(a.game.Config().Dt())
	a.effects.TrackProjectiles(a.game.Snapshot().Projectiles)

	if a.profiler != nil && a.game.Tick() > 120 {
		if tps := ebiten.ActualTPS(); tps > 0 && tps < tpsDropThreshold {
			if err := a.profiler.Capture("tps-drop"); err == nil {
				a.log.Warn("tick rate dropped, profiling", "tps", tps)
			}
		}
	}
	return nil
}

// show puts a short message on the HUD for one second
func (a *App) show(msg string) {
	a.notice = msg
	a.noticeUntil = a.game.Tick() + uint64(a.game.Config().TickRate)
}

// Draw renders the current frame
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	snap := a.game.Snapshot()

	a.drawWorld(screen, snap)
	a.drawPreview(screen, snap)
	a.drawEffects(screen)
	a.drawHUD(screen, snap)
	if a.debug {
		a.drawDebug(screen, snap)
	}
}

// Layout keeps the logical screen equal to the window and refits the camera
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != screenWidth || outsideHeight != screenHeight {
		screenWidth, screenHeight = outsideWidth, outsideHeight
		a.camera.Resize(float64(screenWidth), float64(screenHeight))
	}
	return screenWidth, screenHeight
}
