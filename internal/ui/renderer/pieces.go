package renderer

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/mitchelldurbincs/BaoChess/internal/game/core"
)

// Panda-theme piece artwork on a 45x45 view box. FILL and STROKE are
// substituted per side.
var pieceBodies = map[core.PieceKind]string{
	core.Pawn: `
<circle cx="12" cy="12" r="5" fill="STROKE"/>
<circle cx="33" cy="12" r="5" fill="STROKE"/>
<circle cx="22.5" cy="24" r="14" fill="FILL" stroke="STROKE" stroke-width="2"/>
<ellipse cx="16" cy="22" rx="4" ry="5" fill="STROKE"/>
<ellipse cx="29" cy="22" rx="4" ry="5" fill="STROKE"/>
<circle cx="16" cy="21" r="1.5" fill="EYE"/>
<circle cx="29" cy="21" r="1.5" fill="EYE"/>
<ellipse cx="22.5" cy="28" rx="2.5" ry="1.5" fill="STROKE"/>`,
	core.Rook: `
<path d="M10 38h25" stroke="STROKE" stroke-width="3" stroke-linecap="round" fill="none"/>
<rect x="13" y="24" width="19" height="14" fill="FILL" stroke="STROKE" stroke-width="2"/>
<path d="M9 24h27l-3-6H12z" fill="FILL" stroke="STROKE" stroke-width="2"/>
<path d="M12 18h21l-3-6H15z" fill="FILL" stroke="STROKE" stroke-width="2"/>
<path d="M15 12h15l-3-4H18z" fill="FILL" stroke="STROKE" stroke-width="2"/>
<path d="M20 38v-8h5v8z" fill="STROKE"/>`,
	core.Knight: `
<path d="M13,36 L33,36 L36,14 C36,14 36,9 32,6 C28,3 21,4 19,7 C16,5 11,6 10,12 C9,15 13,17 14,18 C12,21 11,26 13,36 Z" fill="FILL" stroke="STROKE" stroke-width="2" stroke-linejoin="round"/>
<path d="M31 7c2 2 4 6 4 9" stroke="STROKE" stroke-width="2" fill="none"/>
<path d="M28 6c1 1 2 3 2 5" stroke="STROKE" stroke-width="1.5" fill="none"/>
<circle cx="22" cy="13" r="1.5" fill="STROKE"/>
<path d="M14 18c-2 1-3 4-1 6" stroke="STROKE" stroke-width="1.5" fill="none"/>`,
	core.Bishop: `
<path d="M22.5 9c-4 0-8 4-8 10 0 8 8 17 8 17s8-9 8-17c0-6-4-10-8-10z" fill="FILL" stroke="STROKE" stroke-width="2"/>
<path d="M22.5 9v27" stroke="STROKE" stroke-width="1.5" fill="none"/>
<path d="M14.5 19c0 0 4-3 8-3s8 3 8 3" stroke="STROKE" stroke-width="1.5" fill="none"/>
<circle cx="22.5" cy="6" r="3" fill="FILL" stroke="STROKE" stroke-width="2"/>
<path d="M16 38h13" stroke="STROKE" stroke-width="3" stroke-linecap="round" fill="none"/>`,
	core.Queen: `
<path d="M12 34h21l-2 4H14z" fill="FILL" stroke="STROKE" stroke-width="2"/>
<path d="M10 34L8 12l7 8 7.5-10 7.5 10 7-8-2 22H10z" fill="FILL" stroke="STROKE" stroke-width="2" stroke-linejoin="round"/>
<circle cx="8" cy="12" r="2" fill="STROKE"/>
<circle cx="22.5" cy="10" r="2" fill="STROKE"/>
<circle cx="37" cy="12" r="2" fill="STROKE"/>
<circle cx="15" cy="20" r="1.5" fill="STROKE"/>
<circle cx="30" cy="20" r="1.5" fill="STROKE"/>`,
	core.King: `
<path d="M13 33h19v4H13z" fill="FILL" stroke="STROKE" stroke-width="2"/>
<path d="M13 33c0-12 6-20 9.5-20 3.5 0 9.5 8 9.5 20z" fill="FILL" stroke="STROKE" stroke-width="2"/>
<path d="M22.5 13v20" stroke="STROKE" stroke-width="1.5" fill="none"/>
<path d="M22.5 7v6M19.5 10h6" stroke="STROKE" stroke-width="3" stroke-linecap="round" fill="none"/>`,
}

// PieceSVG returns the SVG document for a piece
func PieceSVG(p core.Piece) (string, error) {
	body, ok := pieceBodies[p.Kind]
	if !ok {
		return "", fmt.Errorf("no artwork for %s", p.Kind)
	}
	fill, stroke, eye := "#ffffff", "#1a1a1a", "#ffffff"
	if p.Side == core.Black {
		fill, stroke, eye = "#1a1a1a", "#ffffff", "#000000"
	}
	body = strings.NewReplacer("FILL", fill, "STROKE", stroke, "EYE", eye).Replace(body)
	return `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 45 45" width="45" height="45">` + body + `</svg>`, nil
}

// RasterizePiece draws a piece into a size x size RGBA image
func RasterizePiece(p core.Piece, size int) (*image.RGBA, error) {
	doc, err := PieceSVG(p)
	if err != nil {
		return nil, err
	}
	icon, err := oksvg.ReadIconStream(strings.NewReader(doc))
	if err != nil {
		return nil, fmt.Errorf("parse %s svg: %w", p.Kind, err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Transparent), image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)
	return img, nil
}

type spriteKey struct {
	piece core.Piece
	size  int
}

// PieceSprites caches rasterized pieces as ebiten images
type PieceSprites struct {
	cache map[spriteKey]*ebiten.Image
}

// NewPieceSprites returns an empty sprite cache
func NewPieceSprites() *PieceSprites {
	return &PieceSprites{cache: make(map[spriteKey]*ebiten.Image)}
}

// Get returns the sprite for a piece at size pixels, rasterizing on first use
func (ps *PieceSprites) Get(p core.Piece, size int) (*ebiten.Image, error) {
	key := spriteKey{piece: p, size: size}
	if img, ok := ps.cache[key]; ok {
		return img, nil
	}
	raw, err := RasterizePiece(p, size)
	if err != nil {
		return nil, err
	}
	img := ebiten.NewImageFromImage(raw)
	ps.cache[key] = img
	return img, nil
}
