package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed assets/cannon.svg
var cannonSVG []byte

//go:embed assets/crate.svg
var crateSVG []byte

const spriteSize = 64

// sprites holds rasterized SVG assets
type sprites struct {
	cannon *ebiten.Image
	crate  *ebiten.Image
}

// loadSprites rasterizes the embedded SVGs. Set DEBUG_SPRITES=1 to also
// write them as PNGs to the working directory.
func loadSprites(log *slog.Logger) (*sprites, error) {
	cannon, err := svgToImage(cannonSVG, spriteSize, spriteSize)
	if err != nil {
		return nil, fmt.Errorf("cannon sprite: %w", err)
	}
	crate, err := svgToImage(crateSVG, spriteSize, spriteSize)
	if err != nil {
		return nil, fmt.Errorf("crate sprite: %w", err)
	}

	if os.Getenv("DEBUG_SPRITES") == "1" {
		saveDebugPNG(cannon, "debug_cannon.png", log)
		saveDebugPNG(crate, "debug_crate.png", log)
	}
	return &sprites{
		cannon: ebiten.NewImageFromImage(cannon),
		crate:  ebiten.NewImageFromImage(crate),
	}, nil
}

// svgToImage renders SVG data into an RGBA image of the given size
func svgToImage(data []byte, width, height int) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1.0)
	return img, nil
}

func saveDebugPNG(img image.Image, filename string, log *slog.Logger) {
	f, err := os.Create(filename)
	if err != nil {
		log.Warn("debug sprite", "file", filename, "err", err)
		return
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Warn("debug sprite", "file", filename, "err", err)
	}
}
