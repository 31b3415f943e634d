package core

import "fmt"

// BoardSize is the number of files and ranks on the board
const BoardSize = 8

// Square identifies a board square by file (0 = a) and rank (0 = 1)
type Square struct {
	File, Rank int
}

// NoSquare is the zero-value sentinel used when no square applies
var NoSquare = Square{File: -1, Rank: -1}

// NewSquare creates a new square with the given file and rank
func NewSquare(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// ParseSquare converts algebraic notation such as "e4" into a Square
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	sq := Square{File: int(s[0] - 'a'), Rank: int(s[1] - '1')}
	if !sq.IsValid() {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	return sq, nil
}

// MustSquare is ParseSquare for constants known to be valid
func MustSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// IsValid checks if the square is on the board
func (s Square) IsValid() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// IsDark reports whether the square is a dark square (a1 is dark)
func (s Square) IsDark() bool {
	return (s.File+s.Rank)%2 == 0
}

// Index returns the 0..63 index with a1 = 0 and h8 = 63
func (s Square) Index() int {
	return s.Rank*BoardSize + s.File
}

// String returns the algebraic name of the square
func (s Square) String() string {
	if !s.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+s.File, s.Rank+1)
}

// Coordinate is a board cell as laid out on screen: X is the column from the
// left, Y is the row from the top, both in 0..7
type Coordinate struct {
	X, Y int
}

// NewCoordinate creates a new coordinate with the given x and y values
func NewCoordinate(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// IsValid checks if the coordinate is within the board
func (c Coordinate) IsValid() bool {
	return c.X >= 0 && c.X < BoardSize && c.Y >= 0 && c.Y < BoardSize
}

// Equal checks if two coordinates are equal
func (c Coordinate) Equal(other Coordinate) bool {
	return c.X == other.X && c.Y == other.Y
}

// String returns a string representation of the coordinate
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
