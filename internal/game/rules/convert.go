package rules

import (
	chess "github.com/corentings/chess/v2"

	"github.com/mitchelldurbincs/BaoChess/internal/game/core"
)

func toChessSquare(sq core.Square) chess.Square {
	return chess.NewSquare(chess.File(sq.File), chess.Rank(sq.Rank))
}

func fromChessSquare(sq chess.Square) core.Square {
	return core.NewSquare(int(sq.File()), int(sq.Rank()))
}

func fromChessColor(c chess.Color) core.Side {
	if c == chess.Black {
		return core.Black
	}
	return core.White
}

func toChessColor(s core.Side) chess.Color {
	if s == core.Black {
		return chess.Black
	}
	return chess.White
}

func fromChessPieceType(pt chess.PieceType) core.PieceKind {
	switch pt {
	case chess.Pawn:
		return core.Pawn
	case chess.Knight:
		return core.Knight
	case chess.Bishop:
		return core.Bishop
	case chess.Rook:
		return core.Rook
	case chess.Queen:
		return core.Queen
	case chess.King:
		return core.King
	default:
		return core.NoPiece
	}
}

func toChessPieceType(k core.PieceKind) chess.PieceType {
	switch k {
	case core.Pawn:
		return chess.Pawn
	case core.Knight:
		return chess.Knight
	case core.Bishop:
		return chess.Bishop
	case core.Rook:
		return chess.Rook
	case core.Queen:
		return chess.Queen
	case core.King:
		return chess.King
	default:
		return chess.NoPieceType
	}
}
