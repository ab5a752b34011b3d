package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"cannonfire/fx"
	"cannonfire/game"
)

// keyBindings maps keyboard keys to cannon keys
var keyBindings = map[ebiten.Key]game.Key{
	ebiten.KeySpace: game.KeyFire,
	ebiten.KeyUp:    game.KeyAimUp,
	ebiten.KeyW:     game.KeyAimUp,
	ebiten.KeyDown:  game.KeyAimDown,
	ebiten.KeyS:     game.KeyAimDown,
	ebiten.KeyR:     game.KeyReset,
}

// pollInput turns this tick's mouse and keyboard state into game events
func pollInput(cam *fx.Camera) []game.InputEvent {
	var events []game.InputEvent

	x, y := ebiten.CursorPosition()
	pos := cam.ScreenToWorld(float64(x), float64(y))

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		events = append(events, game.InputEvent{Kind: game.PointerDown, Pos: pos})
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		events = append(events, game.InputEvent{Kind: game.PointerUp, Pos: pos})
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		events = append(events, game.InputEvent{Kind: game.PointerDrag, Pos: pos})
	}

	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if key, ok := keyBindings[k]; ok {
			events = append(events, game.InputEvent{Kind: game.KeyPress, Key: key})
		}
	}
	return events
}

// handleWindowKeys processes keys that belong to the window, not the game
func (a *App) handleWindowKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		a.debug = !a.debug
	}

	altPressed := ebiten.IsKeyPressed(ebiten.KeyAlt)
	altEnter := altPressed && ebiten.IsKeyPressed(ebiten.KeyEnter)
	if altEnter && !a.prevAltEnter {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		if !fullscreen {
			w, h := ebiten.ScreenSizeInFullscreen()
			ebiten.SetWindowSize(int(float64(w)*windowedSizeRatio), int(float64(h)*windowedSizeRatio))
		}
	}
	a.prevAltEnter = altEnter
}
