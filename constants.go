package main

import "image/color"

var (
	screenWidth  = 1280
	screenHeight = 720
)

// Display constants
const (
	windowedSizeRatio = 0.9
	tpsDropThreshold  = 45.0 // capture a profile when ticks/s falls below this
	hudMargin         = 8.0
	hudLineHeight     = 16.0
	healthBarHeight   = 4.0
	previewDotRadius  = 2.5
	soundVolume       = 0.6
	maxVoices         = 8
)

// Color constants
var (
	colorWhite      = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	colorBackground = color.NRGBA{R: 18, G: 22, B: 34, A: 255}
	colorWorld      = color.NRGBA{R: 30, G: 40, B: 62, A: 255}
	colorGround     = color.NRGBA{R: 70, G: 90, B: 60, A: 255}
	colorCannon     = color.NRGBA{R: 170, G: 170, B: 180, A: 255}
	colorBarrel     = color.NRGBA{R: 120, G: 120, B: 135, A: 255}
	colorReloading  = color.NRGBA{R: 200, G: 120, B: 60, A: 255}
	colorClickZone  = color.NRGBA{R: 255, G: 255, B: 255, A: 40}
	colorProjectile = color.NRGBA{R: 255, G: 230, B: 120, A: 255}
	colorTrail      = color.NRGBA{R: 255, G: 255, B: 0, A: 255}
	colorTarget     = color.NRGBA{R: 150, G: 110, B: 70, A: 255}
	colorTargetEdge = color.NRGBA{R: 90, G: 60, B: 35, A: 255}
	colorHealthBack = color.NRGBA{R: 100, G: 0, B: 0, A: 255}
	colorHealth     = color.NRGBA{R: 0, G: 220, B: 0, A: 255}
	colorExplosion  = color.NRGBA{R: 255, G: 150, B: 40, A: 255}
	colorMuzzle     = color.NRGBA{R: 255, G: 240, B: 180, A: 255}
	colorPreview    = color.NRGBA{R: 220, G: 235, B: 255, A: 230}
	colorDrag       = color.NRGBA{R: 120, G: 210, B: 255, A: 200}
	colorHUD        = color.NRGBA{R: 230, G: 230, B: 230, A: 255}
	colorDebug      = color.NRGBA{R: 120, G: 255, B: 160, A: 255}
)
