package game

import (
	"github.com/mitchelldurbincs/BaoChess/internal/game/capture"
	"github.com/mitchelldurbincs/BaoChess/internal/game/clock"
	"github.com/mitchelldurbincs/BaoChess/internal/game/core"
	"github.com/mitchelldurbincs/BaoChess/internal/game/rules"
	"github.com/mitchelldurbincs/BaoChess/internal/game/selection"
	"github.com/mitchelldurbincs/BaoChess/internal/game/states"
)

// View is everything the presentation layer needs to draw one frame
type View struct {
	GameID       string
	Snapshot     rules.Snapshot
	SideToMove   core.Side
	Selection    selection.State
	Effects      []capture.EffectRequest
	Timers       clock.TimerState
	Status       states.Status
	StatusReason string
	Orientation  core.Orientation
	AutoFlip     bool
	FlipPending  bool
	Inventory    capture.Inventory
	LastMove     *rules.MoveRecord
	CheckSquare  core.Square
	Captures     int
}

// Winner returns the winning side of a decided game
func (v View) Winner() (core.Side, bool) {
	return v.Status.Winner()
}

// View assembles the current frame state
func (e *Engine) View() View {
	v := View{
		GameID:       e.gameID,
		Snapshot:     e.snapshot,
		SideToMove:   e.snapshot.SideToMove(),
		Selection:    e.selection.State(),
		Effects:      e.effects.List(),
		Timers:       e.clock.State(),
		Status:       e.Status(),
		StatusReason: e.stateMachine.LastReason(),
		Orientation:  e.orientation.Current(),
		AutoFlip:     e.orientation.AutoFlip(),
		FlipPending:  e.orientation.FlipPending(),
		Inventory:    e.inventory,
		LastMove:     e.lastMove,
		CheckSquare:  e.checkSquare,
		Captures:     e.captures,
	}
	return v
}

// refreshHighlights recomputes the last-move and in-check markers. Called
// whenever the snapshot changes so View stays cheap.
func (e *Engine) refreshHighlights() {
	e.lastMove = nil
	if last, ok := e.snapshot.LastMove(); ok {
		e.lastMove = &last
	}
	e.checkSquare = core.NoSquare
	if e.snapshot.IsCheck() {
		if king, ok := e.snapshot.KingSquare(e.snapshot.SideToMove()); ok {
			e.checkSquare = king
		}
	}
}
