// Package capture tracks lost pieces and the effects played when a piece is taken
package capture

import (
	"github.com/mitchelldurbincs/BaoChess/internal/game/core"
	"github.com/mitchelldurbincs/BaoChess/internal/game/rules"
)

// Inventory lists, per side, the pieces that side has lost in capture order
type Inventory map[core.Side][]core.PieceKind

// NewInventory returns an inventory with an empty list for each side
func NewInventory() Inventory {
	return Inventory{
		core.White: []core.PieceKind{},
		core.Black: []core.PieceKind{},
	}
}

// BuildInventory replays the full history. A capture made by one side is
// charged to the other.
func BuildInventory(history []rules.MoveRecord) Inventory {
	inv := NewInventory()
	for _, rec := range history {
		if !rec.IsCapture() {
			continue
		}
		loser := rec.Side.Other()
		inv[loser] = append(inv[loser], rec.Captured)
	}
	return inv
}

// Lost returns the pieces side has lost
func (inv Inventory) Lost(side core.Side) []core.PieceKind {
	return inv[side]
}

// Count returns the number of pieces side has lost
func (inv Inventory) Count(side core.Side) int {
	return len(inv[side])
}

// Material is the standard point value of the pieces side has lost
func (inv Inventory) Material(side core.Side) int {
	total := 0
	for _, k := range inv[side] {
		total += k.Value()
	}
	return total
}
