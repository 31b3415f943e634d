package renderer

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/BaoChess/internal/common"
	"github.com/mitchelldurbincs/BaoChess/internal/game"
	"github.com/mitchelldurbincs/BaoChess/internal/game/core"
)

// Theme is the pair of square colors
type Theme struct {
	Light color.RGBA
	Dark  color.RGBA
}

// DefaultTheme is the classic brown board
func DefaultTheme() Theme {
	return Theme{Light: common.LightSquareColor, Dark: common.DarkSquareColor}
}

// BoardRenderer draws squares, highlights and pieces
type BoardRenderer struct {
	layout          Layout
	theme           Theme
	fonts           Fonts
	sprites         *PieceSprites
	showCoordinates bool
	logger          zerolog.Logger
}

// NewBoardRenderer returns a renderer ready to use.
func NewBoardRenderer(layout Layout, theme Theme, fonts Fonts, logger zerolog.Logger) *BoardRenderer {
	return &BoardRenderer{
		layout:          layout,
		theme:           theme,
		fonts:           fonts,
		sprites:         NewPieceSprites(),
		showCoordinates: true,
		logger:          logger.With().Str("component", "board_renderer").Logger(),
	}
}

// SetTheme swaps the square colors
func (br *BoardRenderer) SetTheme(theme Theme) {
	br.theme = theme
}

// SetShowCoordinates toggles the file and rank labels
func (br *BoardRenderer) SetShowCoordinates(show bool) {
	br.showCoordinates = show
}

// Sprites exposes the piece cache so panels share rasterized pieces
func (br *BoardRenderer) Sprites() *PieceSprites {
	return br.sprites
}

// SquareColor returns the fill for a square
func (br *BoardRenderer) SquareColor(sq core.Square) color.RGBA {
	if sq.IsDark() {
		return br.theme.Dark
	}
	return br.theme.Light
}

// Draw renders the board on the supplied Ebiten screen.
func (br *BoardRenderer) Draw(screen *ebiten.Image, v game.View) {
	ts := float32(br.layout.TileSize)

	for y := 0; y < core.BoardSize; y++ {
		for x := 0; x < core.BoardSize; x++ {
			cell := core.NewCoordinate(x, y)
			sq := v.Orientation.ToSquare(cell)
			ox, oy := br.layout.CellOrigin(cell)
			fx, fy := float32(ox), float32(oy)

			vector.DrawFilledRect(screen, fx, fy, ts, ts, br.SquareColor(sq), false)

			// last move
			if v.LastMove != nil && (v.LastMove.From == sq || v.LastMove.To == sq) {
				vector.DrawFilledRect(screen, fx, fy, ts, ts, common.LastMoveColor, false)
			}

			// king in check
			if v.CheckSquare == sq {
				vector.DrawFilledCircle(screen, fx+ts/2, fy+ts/2, ts*0.48, common.CheckColor, true)
			}

			// selection
			if v.Selection.IsSelected(sq) {
				vector.DrawFilledRect(screen, fx, fy, ts, ts, common.SelectedColor, false)
			}

			br.drawPiece(screen, v, sq, ox, oy)

			// legal destinations: dot on empty squares, ring on captures
			if v.Selection.Legal[sq] {
				if _, occupied := v.Snapshot.PieceAt(sq); occupied {
					vector.StrokeCircle(screen, fx+ts/2, fy+ts/2, ts*0.44, ts*0.08, common.LegalRingColor, true)
				} else {
					vector.DrawFilledCircle(screen, fx+ts/2, fy+ts/2, ts*0.15, common.LegalDotColor, true)
				}
			}

			if br.showCoordinates {
				br.drawLabels(screen, cell, sq, ox, oy)
			}
		}
	}
}

func (br *BoardRenderer) drawPiece(screen *ebiten.Image, v game.View, sq core.Square, ox, oy float64) {
	p, ok := v.Snapshot.PieceAt(sq)
	if !ok {
		return
	}
	sprite, err := br.sprites.Get(p, br.layout.TileSize)
	if err != nil {
		br.logger.Error().Err(err).Str("square", sq.String()).Msg("Failed to rasterize piece")
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(ox, oy)
	screen.DrawImage(sprite, op)
}

// drawLabels puts the file letter on the bottom row and the rank number on
// the left column, in the opposite square color
func (br *BoardRenderer) drawLabels(screen *ebiten.Image, cell core.Coordinate, sq core.Square, ox, oy float64) {
	ts := br.layout.TileSize
	clr := br.theme.Light
	if !sq.IsDark() {
		clr = br.theme.Dark
	}
	face := br.fonts.Small
	if cell.Y == core.BoardSize-1 {
		file := string(rune('a' + sq.File))
		drawRight(screen, file, face, int(ox)+ts-3, int(oy)+ts-8, clr)
	}
	if cell.X == 0 {
		rank := string(rune('1' + sq.Rank))
		drawLeft(screen, rank, face, int(ox)+3, int(oy)+9, clr)
	}
}
