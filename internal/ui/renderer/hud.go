package renderer

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/mitchelldurbincs/BaoChess/internal/common"
	"github.com/mitchelldurbincs/BaoChess/internal/game"
	"github.com/mitchelldurbincs/BaoChess/internal/game/clock"
	"github.com/mitchelldurbincs/BaoChess/internal/game/core"
)

// HUDRenderer draws the player panels, sidebar and game-over modal
type HUDRenderer struct {
	layout  Layout
	fonts   Fonts
	sprites *PieceSprites
}

// NewHUDRenderer shares the board's sprite cache for captured pieces
func NewHUDRenderer(layout Layout, fonts Fonts, sprites *PieceSprites) *HUDRenderer {
	return &HUDRenderer{layout: layout, fonts: fonts, sprites: sprites}
}

// Draw renders both panels and the sidebar
func (h *HUDRenderer) Draw(screen *ebiten.Image, v game.View) {
	bottom := v.Orientation.Bottom()
	h.drawPanel(screen, h.layout.TopPanel(), bottom.Other(), v)
	h.drawPanel(screen, h.layout.BottomPanel(), bottom, v)
	h.drawSidebar(screen, v)
}

func fillRect(dst *ebiten.Image, r image.Rectangle, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), clr, false)
}

func (h *HUDRenderer) drawPanel(screen *ebiten.Image, r image.Rectangle, side core.Side, v game.View) {
	active := v.Status.CanReceiveMoves() && v.SideToMove == side
	bg := common.PanelColor
	if active {
		bg = common.ActivePanel
	}
	fillRect(screen, r, bg)
	if active {
		vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, common.ButtonColor, false)
	}

	cy := r.Min.Y + r.Dy()/2
	name := strings.ToUpper(side.String())
	drawLeft(screen, name, h.fonts.Small, r.Min.X+12, r.Min.Y+14, common.MutedTextColor)

	// pieces this side has taken are the ones the opponent lost
	taken := v.Inventory.Lost(side.Other())
	size := h.layout.PanelHeight / 2
	x := r.Min.X + 8
	for _, kind := range taken {
		sprite, err := h.sprites.Get(core.Piece{Side: side.Other(), Kind: kind}, size)
		if err != nil {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(x), float64(r.Max.Y-size-4))
		screen.DrawImage(sprite, op)
		x += size * 2 / 3
	}
	if adv := MaterialLead(v, side); adv > 0 {
		drawLeft(screen, fmt.Sprintf("+%d", adv), h.fonts.Small, x+size/2+4, r.Max.Y-size/2-4, common.MutedTextColor)
	}

	remaining := v.Timers.Remaining(side)
	drawRight(screen, clock.FormatSeconds(remaining), h.fonts.Large, r.Max.X-12, cy, TimerColor(remaining, active))
}

// TimerColor picks the clock color: red when running low on the active
// side, muted when the clock is not running
func TimerColor(remaining int, active bool) color.RGBA {
	switch {
	case !active:
		return common.MutedTextColor
	case clock.IsLow(remaining):
		return common.LowTimeColor
	default:
		return common.TextColor
	}
}

// MaterialLead is how far side is ahead on captured material
func MaterialLead(v game.View, side core.Side) int {
	return v.Inventory.Material(side.Other()) - v.Inventory.Material(side)
}

// ButtonLabel is the caption drawn on a sidebar button
func ButtonLabel(id ButtonID, v game.View) string {
	switch id {
	case ButtonNewGame:
		return "New Game (R)"
	case ButtonFlip:
		return "Flip Board (F)"
	case ButtonAutoFlip:
		if v.AutoFlip {
			return "Auto-flip: On (A)"
		}
		return "Auto-flip: Off (A)"
	default:
		return ""
	}
}

func (h *HUDRenderer) drawSidebar(screen *ebiten.Image, v game.View) {
	for _, b := range h.layout.Buttons() {
		clr := common.ButtonColor
		if b.ID == ButtonAutoFlip && !v.AutoFlip {
			clr = common.PanelColor
		}
		fillRect(screen, b.Rect, clr)
		drawCentered(screen, ButtonLabel(b.ID, v), h.fonts.Small, b.Rect.Min.X+b.Rect.Dx()/2, b.Rect.Min.Y+b.Rect.Dy()/2, common.TextColor)
	}

	s := h.layout.Sidebar()
	y := h.layout.Buttons()[len(h.layout.Buttons())-1].Rect.Max.Y + h.layout.Margin*2
	lines := []string{
		"Turn: " + strings.ToUpper(v.SideToMove.String()),
		fmt.Sprintf("Move: %d", v.Snapshot.Ply()/2+1),
		"Captures: " + fmt.Sprint(v.Captures),
	}
	if v.LastMove != nil {
		lines = append(lines, "Last: "+v.LastMove.SAN)
	}
	if v.CheckSquare.IsValid() && v.Status.CanReceiveMoves() {
		lines = append(lines, "Check!")
	}
	for _, line := range lines {
		drawLeft(screen, line, h.fonts.Small, s.Min.X, y, common.TextColor)
		y += 20
	}
}

// Headline summarizes a finished game
func Headline(v game.View) (title, subtitle string) {
	if !v.Status.IsTerminal() {
		return "", ""
	}
	if winner, ok := v.Winner(); ok {
		title = strings.ToUpper(winner.String()[:1]) + winner.String()[1:] + " wins"
	} else {
		title = "Draw"
	}
	subtitle = "by " + v.StatusReason
	if v.StatusReason == "" {
		subtitle = ""
	}
	return title, subtitle
}

// DrawGameOver dims the board and shows the result with a restart hint
func (h *HUDRenderer) DrawGameOver(screen *ebiten.Image, v game.View) {
	title, subtitle := Headline(v)
	if title == "" {
		return
	}
	board := h.layout.BoardRect()
	fillRect(screen, board, common.OverlayColor)

	w, ht := board.Dx()*2/3, board.Dy()/3
	cx, cy := board.Min.X+board.Dx()/2, board.Min.Y+board.Dy()/2
	modal := image.Rect(cx-w/2, cy-ht/2, cx+w/2, cy+ht/2)
	fillRect(screen, modal, common.BackgroundColor)
	vector.StrokeRect(screen, float32(modal.Min.X), float32(modal.Min.Y), float32(modal.Dx()), float32(modal.Dy()), 2, common.ButtonColor, false)

	drawCentered(screen, title, h.fonts.Large, cx, cy-ht/5, common.TextColor)
	if subtitle != "" {
		drawCentered(screen, subtitle, h.fonts.Small, cx, cy+4, common.MutedTextColor)
	}
	drawCentered(screen, "Press R for a new game", h.fonts.Small, cx, cy+ht/4, common.MutedTextColor)
}

type confettiPiece struct {
	x, y, vx, vy float64
	size         float32
	clr          color.RGBA
}

// Confetti is a burst of falling squares played on checkmate
type Confetti struct {
	pieces []confettiPiece
	height float64
}

// NewConfetti scatters n pieces across the top of a width x height area
func NewConfetti(rng *rand.Rand, n, width, height int) *Confetti {
	c := &Confetti{pieces: make([]confettiPiece, n), height: float64(height)}
	for i := range c.pieces {
		c.pieces[i] = confettiPiece{
			x:    rng.Float64() * float64(width),
			y:    -rng.Float64() * float64(height) / 2,
			vx:   (rng.Float64() - 0.5) * 2,
			vy:   2 + rng.Float64()*3,
			size: float32(4 + rng.Intn(5)),
			clr:  common.ConfettiColors[i%len(common.ConfettiColors)],
		}
	}
	return c
}

// Step moves every piece one frame and reports whether any is still visible
func (c *Confetti) Step() bool {
	visible := false
	for i := range c.pieces {
		p := &c.pieces[i]
		p.x += p.vx
		p.y += p.vy
		p.vy += 0.05
		if p.y < c.height {
			visible = true
		}
	}
	return visible
}

// Draw renders the confetti
func (c *Confetti) Draw(screen *ebiten.Image) {
	for _, p := range c.pieces {
		vector.DrawFilledRect(screen, float32(p.x), float32(p.y), p.size, p.size*0.6, p.clr, false)
	}
}
