package common

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ErrBadHexColor is returned by ParseHexColor for malformed input
var ErrBadHexColor = errors.New("bad hex color")

// Board colors
var (
	LightSquareColor = color.RGBA{240, 217, 181, 255}
	DarkSquareColor  = color.RGBA{181, 136, 99, 255}
	LabelColor       = color.RGBA{90, 70, 50, 255}
)

// Highlight colors
var (
	SelectedColor  = color.RGBA{246, 246, 105, 170}
	LastMoveColor  = color.RGBA{205, 210, 106, 120}
	CheckColor     = color.RGBA{220, 38, 38, 150}
	LegalDotColor  = color.RGBA{20, 20, 20, 70}
	LegalRingColor = color.RGBA{20, 20, 20, 90}
)

// UI colors
var (
	BackgroundColor = color.RGBA{30, 41, 59, 255}
	PanelColor      = color.RGBA{51, 65, 85, 255}
	ActivePanel     = color.RGBA{71, 85, 105, 255}
	TextColor       = color.RGBA{241, 245, 249, 255}
	MutedTextColor  = color.RGBA{148, 163, 184, 255}
	LowTimeColor    = color.RGBA{248, 113, 113, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 160}
	ButtonColor     = color.RGBA{59, 130, 246, 255}
)

// ConfettiColors cycles through the confetti burst on game over
var ConfettiColors = []color.RGBA{
	{239, 68, 68, 255},
	{234, 179, 8, 255},
	{34, 197, 94, 255},
	{59, 130, 246, 255},
	{168, 85, 247, 255},
}

// ParseHexColor parses #rgb or #rrggbb into an opaque color
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrBadHexColor, s)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrBadHexColor, s)
	}
	return color.RGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 255}, nil
}

// MustParseHexColor is ParseHexColor for compile-time constants
func MustParseHexColor(s string) color.RGBA {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// WithAlpha returns c with its alpha replaced
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}
