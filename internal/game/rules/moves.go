package rules

import (
	"fmt"

	chess "github.com/corentings/chess/v2"

	"github.com/mitchelldurbincs/BaoChess/internal/game/core"
)

// MoveRecord describes one applied half-move
type MoveRecord struct {
	Ply       int
	Side      core.Side
	Piece     core.PieceKind
	From      core.Square
	To        core.Square
	Captured  core.PieceKind
	Promotion core.PieceKind
	EnPassant bool
	Check     bool
	SAN       string
	UCI       string
}

// IsCapture reports whether the move removed an opposing piece
func (r MoveRecord) IsCapture() bool {
	return r.Captured != core.NoPiece
}

// LegalDestinations returns every square the piece on from may move to.
// Squares without a piece of the side to move yield an empty set.
func (s Snapshot) LegalDestinations(from core.Square) map[core.Square]bool {
	targets := make(map[core.Square]bool)
	if !from.IsValid() || s.game.Outcome() != chess.NoOutcome {
		return targets
	}
	origin := toChessSquare(from)
	for _, m := range s.game.ValidMoves() {
		if m.S1() == origin {
			targets[fromChessSquare(m.S2())] = true
		}
	}
	return targets
}

// IsPromotion reports whether moving from -> to is a pawn reaching the last rank
func (s Snapshot) IsPromotion(from, to core.Square) bool {
	p, ok := s.PieceAt(from)
	if !ok || p.Kind != core.Pawn {
		return false
	}
	return (p.Side == core.White && to.Rank == core.BoardSize-1) ||
		(p.Side == core.Black && to.Rank == 0)
}

// findMove returns the legal library move matching from, to and promo.
// A non-promoting move matches regardless of promo.
func (s Snapshot) findMove(from, to core.Square, promo core.PieceKind) (*chess.Move, bool) {
	origin, target := toChessSquare(from), toChessSquare(to)
	want := toChessPieceType(promo)
	moves := s.game.ValidMoves()
	for i := range moves {
		m := moves[i]
		if m.S1() != origin || m.S2() != target {
			continue
		}
		if m.Promo() != chess.NoPieceType && m.Promo() != want {
			continue
		}
		return &m, true
	}
	return nil, false
}

// TryMove validates and applies a move, returning the resulting snapshot and
// a record of the move. The receiver is left untouched in every case.
func (s Snapshot) TryMove(from, to core.Square, promo core.PieceKind) (Snapshot, MoveRecord, error) {
	if s.game.Outcome() != chess.NoOutcome {
		return s, MoveRecord{}, ErrGameOver
	}
	if !from.IsValid() || !to.IsValid() {
		return s, MoveRecord{}, fmt.Errorf("%w: %s-%s", core.ErrInvalidSquare, from, to)
	}
	if _, ok := s.PieceAt(from); !ok {
		return s, MoveRecord{}, fmt.Errorf("%w: %s", ErrNoPiece, from)
	}
	mv, ok := s.findMove(from, to, promo)
	if !ok {
		return s, MoveRecord{}, fmt.Errorf("%w: %s-%s", ErrIllegalMove, from, to)
	}

	pos := s.game.Position()
	rec := recordFor(pos, mv, len(s.moves)+1)

	next := make([]string, len(s.moves), len(s.moves)+1)
	copy(next, s.moves)
	next = append(next, rec.UCI)

	game, err := replay(s.startFEN, next)
	if err != nil {
		return s, MoveRecord{}, fmt.Errorf("apply %s: %w", rec.UCI, err)
	}
	return Snapshot{startFEN: s.startFEN, moves: next, game: game}, rec, nil
}

// History returns a record for every move played, oldest first
func (s Snapshot) History() []MoveRecord {
	moves := s.game.Moves()
	positions := s.game.Positions()
	history := make([]MoveRecord, 0, len(moves))
	for i, mv := range moves {
		if i >= len(positions) {
			break
		}
		history = append(history, recordFor(positions[i], mv, i+1))
	}
	return history
}

// LastMove returns the most recent move, if any
func (s Snapshot) LastMove() (MoveRecord, bool) {
	moves := s.game.Moves()
	positions := s.game.Positions()
	n := len(moves)
	if n == 0 || n > len(positions) {
		return MoveRecord{}, false
	}
	return recordFor(positions[n-1], moves[n-1], n), true
}

// tagged returns the generated legal move equal to mv. Moves decoded from
// notation do not always carry the full tag set.
func tagged(pos *chess.Position, mv *chess.Move) *chess.Move {
	legal := pos.ValidMoves()
	for i := range legal {
		if legal[i].S1() == mv.S1() && legal[i].S2() == mv.S2() && legal[i].Promo() == mv.Promo() {
			return &legal[i]
		}
	}
	return mv
}

// recordFor builds a MoveRecord from the position the move was played in
func recordFor(pos *chess.Position, mv *chess.Move, ply int) MoveRecord {
	mv = tagged(pos, mv)
	board := pos.Board()
	mover := board.Piece(mv.S1())

	rec := MoveRecord{
		Ply:       ply,
		Side:      fromChessColor(pos.Turn()),
		Piece:     fromChessPieceType(mover.Type()),
		From:      fromChessSquare(mv.S1()),
		To:        fromChessSquare(mv.S2()),
		Promotion: fromChessPieceType(mv.Promo()),
		SAN:       chess.AlgebraicNotation{}.Encode(pos, mv),
		UCI:       chess.UCINotation{}.Encode(pos, mv),
		Check:     mv.HasTag(chess.Check),
	}

	if target := board.Piece(mv.S2()); target != chess.NoPiece && target.Color() != mover.Color() {
		rec.Captured = fromChessPieceType(target.Type())
	} else if mv.HasTag(chess.EnPassant) {
		rec.Captured = core.Pawn
		rec.EnPassant = true
	}
	return rec
}
