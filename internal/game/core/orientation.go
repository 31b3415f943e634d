package core

// Orientation decides which side's pieces are drawn nearest the viewer
type Orientation int

const (
	WhiteBottom Orientation = iota
	BlackBottom
)

// Facing returns the orientation that puts side at the bottom of the board
func Facing(side Side) Orientation {
	if side == Black {
		return BlackBottom
	}
	return WhiteBottom
}

// Bottom returns the side drawn nearest the viewer
func (o Orientation) Bottom() Side {
	if o == BlackBottom {
		return Black
	}
	return White
}

// Flipped returns the opposite orientation
func (o Orientation) Flipped() Orientation {
	if o == WhiteBottom {
		return BlackBottom
	}
	return WhiteBottom
}

func (o Orientation) String() string {
	if o == BlackBottom {
		return "black"
	}
	return "white"
}

// ToCoordinate maps a square to the screen cell it occupies under o
func (o Orientation) ToCoordinate(sq Square) Coordinate {
	if o == BlackBottom {
		return Coordinate{X: BoardSize - 1 - sq.File, Y: sq.Rank}
	}
	return Coordinate{X: sq.File, Y: BoardSize - 1 - sq.Rank}
}

// ToSquare maps a screen cell back to the square drawn there under o
func (o Orientation) ToSquare(c Coordinate) Square {
	if o == BlackBottom {
		return Square{File: BoardSize - 1 - c.X, Rank: c.Y}
	}
	return Square{File: c.X, Rank: BoardSize - 1 - c.Y}
}
