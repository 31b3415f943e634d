// Package rules adapts the chess rules library to the game core. Every value
// handed out is an immutable Snapshot: applying a move never alters the
// receiver, it builds a fresh game from the recorded move list.
package rules

import (
	"errors"
	"fmt"

	chess "github.com/corentings/chess/v2"

	"github.com/mitchelldurbincs/BaoChess/internal/game/core"
)

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrGameOver    = errors.New("game already decided")
	ErrNoPiece     = errors.New("no piece on square")
)

// Snapshot is a complete, read-only game position together with the move
// history that produced it. Use NewSnapshot or SnapshotFromFEN; the zero
// value is not usable.
type Snapshot struct {
	startFEN string
	moves    []string
	game     *chess.Game
}

// NewSnapshot returns the standard starting position
func NewSnapshot() Snapshot {
	return Snapshot{game: chess.NewGame()}
}

// SnapshotFromFEN returns a snapshot starting from the given position
func SnapshotFromFEN(fen string) (Snapshot, error) {
	if fen == "" {
		return NewSnapshot(), nil
	}
	game, err := replay(fen, nil)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{startFEN: fen, game: game}, nil
}

// replay rebuilds a library game from a start position and UCI move list
func replay(startFEN string, moves []string) (*chess.Game, error) {
	game := chess.NewGame()
	if startFEN != "" {
		opt, err := chess.FEN(startFEN)
		if err != nil {
			return nil, fmt.Errorf("parse fen %q: %w", startFEN, err)
		}
		game = chess.NewGame(opt)
	}
	for i, mv := range moves {
		if err := game.PushNotationMove(mv, chess.UCINotation{}, nil); err != nil {
			return nil, fmt.Errorf("replay ply %d (%s): %w", i+1, mv, err)
		}
	}
	return game, nil
}

// FEN serializes the current position
func (s Snapshot) FEN() string {
	return s.game.FEN()
}

// StartFEN returns the custom start position, or "" for the standard one
func (s Snapshot) StartFEN() string {
	return s.startFEN
}

// Ply returns the number of half-moves played since the start position
func (s Snapshot) Ply() int {
	return len(s.moves)
}

// MovesUCI returns a copy of the move list in UCI notation
func (s Snapshot) MovesUCI() []string {
	out := make([]string, len(s.moves))
	copy(out, s.moves)
	return out
}

// SideToMove returns the side whose turn it is
func (s Snapshot) SideToMove() core.Side {
	return fromChessColor(s.game.Position().Turn())
}

// PieceAt returns the piece standing on sq, if any
func (s Snapshot) PieceAt(sq core.Square) (core.Piece, bool) {
	if !sq.IsValid() {
		return core.Piece{}, false
	}
	p := s.game.Position().Board().Piece(toChessSquare(sq))
	if p == chess.NoPiece {
		return core.Piece{}, false
	}
	return core.Piece{Side: fromChessColor(p.Color()), Kind: fromChessPieceType(p.Type())}, true
}

// IsOwnPiece reports whether sq holds a piece of the side to move
func (s Snapshot) IsOwnPiece(sq core.Square) bool {
	p, ok := s.PieceAt(sq)
	return ok && p.Side == s.SideToMove()
}

// KingSquare locates the king of the given side
func (s Snapshot) KingSquare(side core.Side) (core.Square, bool) {
	board := s.game.Position().Board()
	want := toChessColor(side)
	for idx := 0; idx < core.BoardSize*core.BoardSize; idx++ {
		sq := chess.Square(idx)
		p := board.Piece(sq)
		if p != chess.NoPiece && p.Type() == chess.King && p.Color() == want {
			return fromChessSquare(sq), true
		}
	}
	return core.NoSquare, false
}
