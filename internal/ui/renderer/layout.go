package renderer

import (
	"image"

	"github.com/mitchelldurbincs/BaoChess/internal/game/core"
)

// ButtonID names a sidebar button
type ButtonID int

const (
	ButtonNewGame ButtonID = iota
	ButtonFlip
	ButtonAutoFlip
)

func (b ButtonID) String() string {
	switch b {
	case ButtonNewGame:
		return "new_game"
	case ButtonFlip:
		return "flip"
	case ButtonAutoFlip:
		return "auto_flip"
	default:
		return "unknown"
	}
}

// Button is a clickable sidebar rectangle
type Button struct {
	ID   ButtonID
	Rect image.Rectangle
}

// Layout places the board, the two player panels and the sidebar. All
// positions derive from the tile size.
type Layout struct {
	TileSize     int
	Margin       int
	PanelHeight  int
	SidebarWidth int
	ButtonHeight int
}

// NewLayout returns the layout for tileSize pixel squares
func NewLayout(tileSize int) Layout {
	return Layout{
		TileSize:     tileSize,
		Margin:       16,
		PanelHeight:  56,
		SidebarWidth: 200,
		ButtonHeight: 40,
	}
}

// BoardSize is the board edge in pixels
func (l Layout) BoardSize() int {
	return core.BoardSize * l.TileSize
}

// BoardOrigin is the top-left corner of the board
func (l Layout) BoardOrigin() image.Point {
	return image.Pt(l.Margin, l.Margin*2+l.PanelHeight)
}

// BoardRect is the board's screen rectangle
func (l Layout) BoardRect() image.Rectangle {
	o := l.BoardOrigin()
	return image.Rect(o.X, o.Y, o.X+l.BoardSize(), o.Y+l.BoardSize())
}

// Width is the logical screen width
func (l Layout) Width() int {
	return l.Margin*3 + l.BoardSize() + l.SidebarWidth
}

// Height is the logical screen height
func (l Layout) Height() int {
	return l.Margin*4 + l.PanelHeight*2 + l.BoardSize()
}

// TopPanel holds the player drawn at the top of the board
func (l Layout) TopPanel() image.Rectangle {
	return image.Rect(l.Margin, l.Margin, l.Margin+l.BoardSize(), l.Margin+l.PanelHeight)
}

// BottomPanel holds the player drawn nearest the viewer
func (l Layout) BottomPanel() image.Rectangle {
	b := l.BoardRect()
	return image.Rect(b.Min.X, b.Max.Y+l.Margin, b.Max.X, b.Max.Y+l.Margin+l.PanelHeight)
}

// Sidebar is the column right of the board
func (l Layout) Sidebar() image.Rectangle {
	b := l.BoardRect()
	x := b.Max.X + l.Margin
	return image.Rect(x, b.Min.Y, x+l.SidebarWidth, b.Max.Y)
}

// Buttons lists the sidebar buttons top to bottom
func (l Layout) Buttons() []Button {
	s := l.Sidebar()
	ids := []ButtonID{ButtonNewGame, ButtonFlip, ButtonAutoFlip}
	buttons := make([]Button, len(ids))
	for i, id := range ids {
		y := s.Min.Y + i*(l.ButtonHeight+l.Margin/2)
		buttons[i] = Button{ID: id, Rect: image.Rect(s.Min.X, y, s.Max.X, y+l.ButtonHeight)}
	}
	return buttons
}

// ButtonAt returns the button under the point
func (l Layout) ButtonAt(x, y int) (ButtonID, bool) {
	p := image.Pt(x, y)
	for _, b := range l.Buttons() {
		if p.In(b.Rect) {
			return b.ID, true
		}
	}
	return 0, false
}

// CellAt returns the board cell under the point
func (l Layout) CellAt(x, y int) (core.Coordinate, bool) {
	p := image.Pt(x, y)
	if !p.In(l.BoardRect()) {
		return core.Coordinate{}, false
	}
	o := l.BoardOrigin()
	c := core.NewCoordinate((x-o.X)/l.TileSize, (y-o.Y)/l.TileSize)
	return c, c.IsValid()
}

// CellOrigin is the top-left pixel of a cell
func (l Layout) CellOrigin(c core.Coordinate) (float64, float64) {
	o := l.BoardOrigin()
	return float64(o.X + c.X*l.TileSize), float64(o.Y + c.Y*l.TileSize)
}

// CellCenter is the center pixel of a cell
func (l Layout) CellCenter(c core.Coordinate) (float64, float64) {
	x, y := l.CellOrigin(c)
	half := float64(l.TileSize) / 2
	return x + half, y + half
}
