package renderer

import (
	"fmt"
	"image/color"
	"os"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Fonts holds the faces used for labels and clocks
type Fonts struct {
	Small font.Face
	Large font.Face
}

// DefaultFonts uses the built-in bitmap face for everything
func DefaultFonts() Fonts {
	return Fonts{Small: basicfont.Face7x13, Large: basicfont.Face7x13}
}

// LoadFonts parses a TrueType file. The clock face is twice the label size.
// An empty path returns DefaultFonts.
func LoadFonts(path string, size float64) (Fonts, error) {
	if path == "" {
		return DefaultFonts(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultFonts(), fmt.Errorf("read font %s: %w", path, err)
	}
	ttf, err := truetype.Parse(data)
	if err != nil {
		return DefaultFonts(), fmt.Errorf("parse font %s: %w", path, err)
	}
	return Fonts{
		Small: truetype.NewFace(ttf, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull}),
		Large: truetype.NewFace(ttf, &truetype.Options{Size: size * 2, DPI: 72, Hinting: font.HintingFull}),
	}, nil
}

// drawCentered draws s centered on (cx, cy)
func drawCentered(dst *ebiten.Image, s string, face font.Face, cx, cy int, clr color.Color) {
	b := text.BoundString(face, s)
	x := cx - b.Dx()/2 - b.Min.X
	y := cy - b.Dy()/2 - b.Min.Y
	text.Draw(dst, s, face, x, y, clr)
}

// drawLeft draws s with its left edge at x, vertically centered on cy
func drawLeft(dst *ebiten.Image, s string, face font.Face, x, cy int, clr color.Color) {
	b := text.BoundString(face, s)
	text.Draw(dst, s, face, x-b.Min.X, cy-b.Dy()/2-b.Min.Y, clr)
}

// drawRight draws s with its right edge at x, vertically centered on cy
func drawRight(dst *ebiten.Image, s string, face font.Face, x, cy int, clr color.Color) {
	b := text.BoundString(face, s)
	text.Draw(dst, s, face, x-b.Dx()-b.Min.X, cy-b.Dy()/2-b.Min.Y, clr)
}
