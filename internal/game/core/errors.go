package core

import "errors"

var (
	ErrInvalidSquare     = errors.New("invalid square")
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrGameOver          = errors.New("game is over")
)
