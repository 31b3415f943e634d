package core

// PieceKind is the type of a chess piece, independent of colour
type PieceKind int

const (
	NoPiece PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// PieceKinds lists every real piece kind
var PieceKinds = []PieceKind{Pawn, Knight, Bishop, Rook, Queen, King}

// Token returns the lowercase single-letter token used in notation
func (k PieceKind) Token() string {
	switch k {
	case Pawn:
		return "p"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	default:
		return ""
	}
}

// Value returns the conventional material value; the king has none
func (k PieceKind) Value() int {
	switch k {
	case Pawn:
		return 1
	case Knight, Bishop:
		return 3
	case Rook:
		return 5
	case Queen:
		return 9
	default:
		return 0
	}
}

// ParsePieceKind converts a token such as "q" back into a PieceKind
func ParsePieceKind(token string) PieceKind {
	for _, k := range PieceKinds {
		if k.Token() == token {
			return k
		}
	}
	return NoPiece
}

func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "none"
	}
}

// Piece is a coloured piece standing on a square
type Piece struct {
	Side Side
	Kind PieceKind
}
