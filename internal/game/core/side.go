package core

import "fmt"

// Side is one of the two players. White always moves first.
type Side int

const (
	White Side = iota
	Black
)

// Sides lists both sides in move order
var Sides = [2]Side{White, Black}

// Other returns the opponent
func (s Side) Other() Side {
	if s == White {
		return Black
	}
	return White
}

func (s Side) String() string {
	switch s {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Token returns the single-letter side token ("w" or "b")
func (s Side) Token() string {
	if s == White {
		return "w"
	}
	return "b"
}
