// Package input turns raw mouse, touch and keyboard state into game actions.
package input

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/mitchelldurbincs/BaoChess/internal/game/core"
	"github.com/mitchelldurbincs/BaoChess/internal/ui/renderer"
)

// ActionKind is what the player asked for
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionClickCell
	ActionNewGame
	ActionFlip
	ActionToggleAutoFlip
	ActionClearSelection
)

func (k ActionKind) String() string {
	switch k {
	case ActionNone:
		return "none"
	case ActionClickCell:
		return "click_cell"
	case ActionNewGame:
		return "new_game"
	case ActionFlip:
		return "flip"
	case ActionToggleAutoFlip:
		return "toggle_auto_flip"
	case ActionClearSelection:
		return "clear_selection"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Action is one player intent. Cell is set for ActionClickCell.
type Action struct {
	Kind ActionKind
	Cell core.Coordinate
}

// keyBindings maps shortcut keys to actions
var keyBindings = map[ebiten.Key]ActionKind{
	ebiten.KeyR:      ActionNewGame,
	ebiten.KeyN:      ActionNewGame,
	ebiten.KeyF:      ActionFlip,
	ebiten.KeyA:      ActionToggleAutoFlip,
	ebiten.KeyEscape: ActionClearSelection,
}

// buttonActions maps sidebar buttons to actions
var buttonActions = map[renderer.ButtonID]ActionKind{
	renderer.ButtonNewGame:  ActionNewGame,
	renderer.ButtonFlip:     ActionFlip,
	renderer.ButtonAutoFlip: ActionToggleAutoFlip,
}

// Handler collects the actions produced by one frame of input
type Handler struct {
	layout renderer.Layout

	// Mouse state
	mouseX, mouseY int

	actions []Action
}

// NewHandler returns a handler that hit-tests against layout
func NewHandler(layout renderer.Layout) *Handler {
	return &Handler{layout: layout, actions: make([]Action, 0, 4)}
}

// Update polls ebiten and returns this frame's actions in the order they
// should be applied. The returned slice is reused on the next call.
func (h *Handler) Update() []Action {
	h.actions = h.actions[:0]
	h.mouseX, h.mouseY = GetCursorPosition()

	if x, y, ok := JustPressedPoint(); ok {
		if a, ok := h.Click(x, y); ok {
			h.actions = append(h.actions, a)
		}
	}
	if IsRightClickJustPressed() {
		h.actions = append(h.actions, Action{Kind: ActionClearSelection})
	}
	for _, key := range inpututil.AppendJustPressedKeys(nil) {
		if a, ok := h.Key(key); ok {
			h.actions = append(h.actions, a)
		}
	}
	return h.actions
}

// Click resolves a press at (x, y) to a board cell or sidebar button
func (h *Handler) Click(x, y int) (Action, bool) {
	if cell, ok := h.layout.CellAt(x, y); ok {
		return Action{Kind: ActionClickCell, Cell: cell}, true
	}
	if id, ok := h.layout.ButtonAt(x, y); ok {
		return Action{Kind: buttonActions[id]}, true
	}
	return Action{}, false
}

// Key resolves a shortcut key
func (h *Handler) Key(key ebiten.Key) (Action, bool) {
	kind, ok := keyBindings[key]
	if !ok {
		return Action{}, false
	}
	return Action{Kind: kind}, true
}

// HoveredCell returns the board cell under the mouse
func (h *Handler) HoveredCell() (core.Coordinate, bool) {
	return h.layout.CellAt(h.mouseX, h.mouseY)
}
