package capture

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mitchelldurbincs/BaoChess/internal/game/core"
	"github.com/mitchelldurbincs/BaoChess/internal/game/rules"
)

// Color tokens for capture effects, keyed by the side that lost the piece
const (
	ColorBlackLost = "#0f172a"
	ColorWhiteLost = "#f8fafc"
)

// EffectKind selects which animation plays for a capture
type EffectKind int

const (
	EffectGeneric EffectKind = iota
	EffectPawn
	EffectKnight
	EffectBishop
	EffectRook
	EffectQueen
	EffectKing
)

func (k EffectKind) String() string {
	switch k {
	case EffectPawn:
		return "pawn"
	case EffectKnight:
		return "knight"
	case EffectBishop:
		return "bishop"
	case EffectRook:
		return "rook"
	case EffectQueen:
		return "queen"
	case EffectKing:
		return "king"
	case EffectGeneric:
		return "generic"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// KindFor maps the capturing piece to its animation
func KindFor(piece core.PieceKind) EffectKind {
	switch piece {
	case core.Pawn:
		return EffectPawn
	case core.Knight:
		return EffectKnight
	case core.Bishop:
		return EffectBishop
	case core.Rook:
		return EffectRook
	case core.Queen:
		return EffectQueen
	case core.King:
		return EffectKing
	default:
		return EffectGeneric
	}
}

// Shape is the primitive an animation layer draws
type Shape int

const (
	ShapeSplash Shape = iota
	ShapeCrater
	ShapeDust
	ShapeCrush
	ShapeSlash
	ShapeDashedRing
	ShapeBlur
	ShapeRing
	ShapeParticles
)

// Layer is one element of an effect animation
type Layer struct {
	Shape     Shape
	Duration  time.Duration
	Delay     time.Duration
	Particles int
}

// Descriptor fully describes an effect animation
type Descriptor struct {
	Kind   EffectKind
	Layers []Layer
}

// Duration is the time until the last layer finishes
func (d Descriptor) Duration() time.Duration {
	var total time.Duration
	for _, l := range d.Layers {
		if end := l.Delay + l.Duration; end > total {
			total = end
		}
	}
	return total
}

var descriptors = map[EffectKind]Descriptor{
	EffectPawn: {Kind: EffectPawn, Layers: []Layer{
		{Shape: ShapeSplash, Duration: 500 * time.Millisecond, Particles: 8},
	}},
	EffectKnight: {Kind: EffectKnight, Layers: []Layer{
		{Shape: ShapeCrater, Duration: 400 * time.Millisecond},
		{Shape: ShapeDust, Duration: 600 * time.Millisecond, Particles: 8},
	}},
	EffectRook: {Kind: EffectRook, Layers: []Layer{
		{Shape: ShapeCrush, Duration: 400 * time.Millisecond},
	}},
	EffectBishop: {Kind: EffectBishop, Layers: []Layer{
		{Shape: ShapeSlash, Duration: 300 * time.Millisecond},
		{Shape: ShapeSlash, Duration: 300 * time.Millisecond, Delay: 50 * time.Millisecond},
	}},
	EffectQueen: {Kind: EffectQueen, Layers: []Layer{
		{Shape: ShapeDashedRing, Duration: 600 * time.Millisecond},
		{Shape: ShapeBlur, Duration: 600 * time.Millisecond},
	}},
	EffectKing: {Kind: EffectKing, Layers: []Layer{
		{Shape: ShapeRing, Duration: 800 * time.Millisecond},
		{Shape: ShapeRing, Duration: 800 * time.Millisecond, Delay: 100 * time.Millisecond},
	}},
	EffectGeneric: {Kind: EffectGeneric, Layers: []Layer{
		{Shape: ShapeParticles, Duration: 500 * time.Millisecond, Particles: 12},
	}},
}

// Describe returns the animation for kind, falling back to the generic burst
func Describe(kind EffectKind) Descriptor {
	if d, ok := descriptors[kind]; ok {
		return d
	}
	return descriptors[EffectGeneric]
}

// EffectRequest asks the renderer to play one capture animation
type EffectRequest struct {
	ID    uuid.UUID
	At    core.Coordinate
	Color string
	Piece core.PieceKind
	Kind  EffectKind
}

// Descriptor returns the animation for the request
func (r EffectRequest) Descriptor() Descriptor {
	return Describe(r.Kind)
}

// ColorFor returns the color token for a capture that cost loser a piece
func ColorFor(loser core.Side) string {
	if loser == core.Black {
		return ColorBlackLost
	}
	return ColorWhiteLost
}

// NewEffect builds the request for a capturing move. The destination is
// mapped through the orientation in force when the move lands.
func NewEffect(rec rules.MoveRecord, orientation core.Orientation) EffectRequest {
	return EffectRequest{
		ID:    uuid.New(),
		At:    orientation.ToCoordinate(rec.To),
		Color: ColorFor(rec.Side.Other()),
		Piece: rec.Piece,
		Kind:  KindFor(rec.Piece),
	}
}
