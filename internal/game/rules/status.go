package rules

import (
	chess "github.com/corentings/chess/v2"
)

// IsCheck reports whether the side to move is in check
func (s Snapshot) IsCheck() bool {
	if s.IsCheckmate() {
		return true
	}
	last, ok := s.LastMove()
	return ok && last.Check
}

// IsCheckmate reports whether the side to move has been mated
func (s Snapshot) IsCheckmate() bool {
	return s.game.Position().Status() == chess.Checkmate
}

// IsStalemate reports whether the side to move has no legal move and is not in check
func (s Snapshot) IsStalemate() bool {
	return s.game.Position().Status() == chess.Stalemate
}

// IsThreefoldRepetition reports whether the current position occurred three times
func (s Snapshot) IsThreefoldRepetition() bool {
	return s.eligible(chess.ThreefoldRepetition)
}

// IsFiftyMoveRule reports whether fifty moves passed without capture or pawn move
func (s Snapshot) IsFiftyMoveRule() bool {
	return s.eligible(chess.FiftyMoveRule)
}

// IsInsufficientMaterial reports whether neither side can still mate
func (s Snapshot) IsInsufficientMaterial() bool {
	return s.game.Outcome() == chess.Draw && s.game.Method() == chess.InsufficientMaterial
}

// IsDraw covers every drawn ending: stalemate, insufficient material, the
// fifty-move rule and repetition, including the draws the library enforces
// on its own (fivefold repetition, seventy-five move rule).
func (s Snapshot) IsDraw() bool {
	if s.game.Outcome() == chess.Draw {
		return true
	}
	return s.IsStalemate() || s.IsThreefoldRepetition() || s.IsFiftyMoveRule()
}

// IsGameOver reports whether the rules library considers the game decided
func (s Snapshot) IsGameOver() bool {
	return s.game.Outcome() != chess.NoOutcome || s.IsCheckmate() || s.IsDraw()
}

// DrawReason names the draw condition that holds, or "" when none does
func (s Snapshot) DrawReason() string {
	switch {
	case s.IsStalemate():
		return "stalemate"
	case s.IsInsufficientMaterial():
		return "insufficient material"
	case s.IsThreefoldRepetition():
		return "threefold repetition"
	case s.IsFiftyMoveRule():
		return "fifty-move rule"
	case s.game.Outcome() == chess.Draw:
		return "draw"
	default:
		return ""
	}
}

func (s Snapshot) eligible(method chess.Method) bool {
	for _, m := range s.game.EligibleDraws() {
		if m == method {
			return true
		}
	}
	return false
}
