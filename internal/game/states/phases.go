package states

import (
	"fmt"

	"github.com/mitchelldurbincs/BaoChess/internal/game/core"
)

// Status is the authoritative outcome of a game
type Status int

const (
	// StatusActive - moves and clock ticks are accepted
	StatusActive Status = iota

	// StatusWhiteWon - by checkmate or on time
	StatusWhiteWon

	// StatusBlackWon - by checkmate or on time
	StatusBlackWon

	// StatusDraw - any drawn ending
	StatusDraw
)

// Reasons recorded with status transitions
const (
	ReasonCheckmate            = "checkmate"
	ReasonStalemate            = "stalemate"
	ReasonThreefoldRepetition  = "threefold repetition"
	ReasonFiftyMoveRule        = "fifty-move rule"
	ReasonInsufficientMaterial = "insufficient material"
	ReasonDraw                 = "draw"
	ReasonTimeForfeit          = "time forfeit"
	ReasonNewGame              = "new game"
)

// String returns the string representation of a Status
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusWhiteWon:
		return "white_won"
	case StatusBlackWon:
		return "black_won"
	case StatusDraw:
		return "draw"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// IsTerminal returns true once the game has been decided
func (s Status) IsTerminal() bool {
	return s != StatusActive
}

// CanReceiveMoves returns true if the board accepts input in this status
func (s Status) CanReceiveMoves() bool {
	return s == StatusActive
}

// Winner returns the winning side for a decisive result
func (s Status) Winner() (core.Side, bool) {
	switch s {
	case StatusWhiteWon:
		return core.White, true
	case StatusBlackWon:
		return core.Black, true
	default:
		return core.White, false
	}
}

// WinFor returns the status in which side has won
func WinFor(side core.Side) Status {
	if side == core.Black {
		return StatusBlackWon
	}
	return StatusWhiteWon
}

// AllowedTransitions returns the statuses reachable from this one. A decided
// game only returns to active through a reset.
func (s Status) AllowedTransitions() []Status {
	switch s {
	case StatusActive:
		return []Status{StatusWhiteWon, StatusBlackWon, StatusDraw}
	case StatusWhiteWon, StatusBlackWon, StatusDraw:
		return []Status{StatusActive}
	default:
		return []Status{}
	}
}

// CanTransitionTo checks if a transition from this status to target is allowed
func (s Status) CanTransitionTo(target Status) bool {
	for _, status := range s.AllowedTransitions() {
		if status == target {
			return true
		}
	}
	return false
}

// ParseStatus converts a string to a Status
func ParseStatus(s string) Status {
	switch s {
	case "white_won":
		return StatusWhiteWon
	case "black_won":
		return StatusBlackWon
	case "draw":
		return StatusDraw
	default:
		return StatusActive
	}
}
