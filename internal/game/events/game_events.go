package events

import (
	"github.com/mitchelldurbincs/BaoChess/internal/game/core"
)

// Event type constants
const (
	TypeGameStarted        = "game.started"
	TypeGameReset          = "game.reset"
	TypeMoveApplied        = "move.applied"
	TypeMoveRejected       = "move.rejected"
	TypePieceCaptured      = "piece.captured"
	TypeEffectRequested    = "effect.requested"
	TypeEffectCompleted    = "effect.completed"
	TypeClockExpired       = "clock.expired"
	TypeStatusChanged      = "status.changed"
	TypeOrientationFlipped = "orientation.flipped"
)

// GameStartedEvent is published when a fresh game is set up
type GameStartedEvent struct {
	BaseEvent
	StartFEN  string `json:"start_fen"`
	Allowance int    `json:"allowance_seconds"`
	AutoFlip  bool   `json:"auto_flip"`
}

// NewGameStartedEvent creates a new GameStartedEvent
func NewGameStartedEvent(gameID, startFEN string, allowance int, autoFlip bool) *GameStartedEvent {
	return &GameStartedEvent{
		BaseEvent: newBase(TypeGameStarted, gameID),
		StartFEN:  startFEN,
		Allowance: allowance,
		AutoFlip:  autoFlip,
	}
}

// GameResetEvent is published when a game in progress is thrown away
type GameResetEvent struct {
	BaseEvent
	PreviousStatus string `json:"previous_status"`
	Ply            int    `json:"ply"`
}

// NewGameResetEvent creates a new GameResetEvent
func NewGameResetEvent(gameID, previousStatus string, ply int) *GameResetEvent {
	return &GameResetEvent{
		BaseEvent:      newBase(TypeGameReset, gameID),
		PreviousStatus: previousStatus,
		Ply:            ply,
	}
}

// MoveAppliedEvent is published after a move is committed
type MoveAppliedEvent struct {
	BaseEvent
	Ply       int            `json:"ply"`
	Side      core.Side      `json:"side"`
	Piece     core.PieceKind `json:"piece"`
	From      string         `json:"from"`
	To        string         `json:"to"`
	SAN       string         `json:"san"`
	Captured  core.PieceKind `json:"captured"`
	Promotion core.PieceKind `json:"promotion"`
	Check     bool           `json:"check"`
	FEN       string         `json:"fen"`
}

// NewMoveAppliedEvent creates a new MoveAppliedEvent
func NewMoveAppliedEvent(gameID string, ply int, side core.Side, piece core.PieceKind, from, to core.Square, san string) *MoveAppliedEvent {
	return &MoveAppliedEvent{
		BaseEvent: newBase(TypeMoveApplied, gameID),
		Ply:       ply,
		Side:      side,
		Piece:     piece,
		From:      from.String(),
		To:        to.String(),
		SAN:       san,
	}
}

// MoveRejectedEvent is published when a move attempt is refused
type MoveRejectedEvent struct {
	BaseEvent
	From   string `json:"from"`
	To     string `json:"to"`
	Reason string `json:"reason"`
}

// NewMoveRejectedEvent creates a new MoveRejectedEvent
func NewMoveRejectedEvent(gameID string, from, to core.Square, reason string) *MoveRejectedEvent {
	return &MoveRejectedEvent{
		BaseEvent: newBase(TypeMoveRejected, gameID),
		From:      from.String(),
		To:        to.String(),
		Reason:    reason,
	}
}

// PieceCapturedEvent is published when a move removes a piece
type PieceCapturedEvent struct {
	BaseEvent
	Capturer  core.Side      `json:"capturer"`
	Piece     core.PieceKind `json:"piece"`
	Captured  core.PieceKind `json:"captured"`
	Square    string         `json:"square"`
	LostCount int            `json:"lost_count"`
}

// NewPieceCapturedEvent creates a new PieceCapturedEvent
func NewPieceCapturedEvent(gameID string, capturer core.Side, piece, captured core.PieceKind, sq core.Square, lostCount int) *PieceCapturedEvent {
	return &PieceCapturedEvent{
		BaseEvent: newBase(TypePieceCaptured, gameID),
		Capturer:  capturer,
		Piece:     piece,
		Captured:  captured,
		Square:    sq.String(),
		LostCount: lostCount,
	}
}

// EffectRequestedEvent is published when a capture animation is queued
type EffectRequestedEvent struct {
	BaseEvent
	EffectID string          `json:"effect_id"`
	Kind     string          `json:"kind"`
	At       core.Coordinate `json:"at"`
	Color    string          `json:"color"`
}

// NewEffectRequestedEvent creates a new EffectRequestedEvent
func NewEffectRequestedEvent(gameID, effectID, kind string, at core.Coordinate, color string) *EffectRequestedEvent {
	return &EffectRequestedEvent{
		BaseEvent: newBase(TypeEffectRequested, gameID),
		EffectID:  effectID,
		Kind:      kind,
		At:        at,
		Color:     color,
	}
}

// EffectCompletedEvent is published when a capture animation finishes
type EffectCompletedEvent struct {
	BaseEvent
	EffectID string `json:"effect_id"`
}

// NewEffectCompletedEvent creates a new EffectCompletedEvent
func NewEffectCompletedEvent(gameID, effectID string) *EffectCompletedEvent {
	return &EffectCompletedEvent{
		BaseEvent: newBase(TypeEffectCompleted, gameID),
		EffectID:  effectID,
	}
}

// ClockExpiredEvent is published when a side runs out of time
type ClockExpiredEvent struct {
	BaseEvent
	Side core.Side `json:"side"`
}

// NewClockExpiredEvent creates a new ClockExpiredEvent
func NewClockExpiredEvent(gameID string, side core.Side) *ClockExpiredEvent {
	return &ClockExpiredEvent{
		BaseEvent: newBase(TypeClockExpired, gameID),
		Side:      side,
	}
}

// StatusChangedEvent is published on every game status transition
type StatusChangedEvent struct {
	BaseEvent
	From   string `json:"from"`
	To     string `json:"to"`
	Reason string `json:"reason"`
}

// NewStatusChangedEvent creates a new StatusChangedEvent
func NewStatusChangedEvent(gameID, from, to, reason string) *StatusChangedEvent {
	return &StatusChangedEvent{
		BaseEvent: newBase(TypeStatusChanged, gameID),
		From:      from,
		To:        to,
		Reason:    reason,
	}
}

// OrientationFlippedEvent is published when the board turns around
type OrientationFlippedEvent struct {
	BaseEvent
	From string `json:"from"`
	To   string `json:"to"`
	Auto bool   `json:"auto"`
}

// NewOrientationFlippedEvent creates a new OrientationFlippedEvent
func NewOrientationFlippedEvent(gameID string, from, to core.Orientation, auto bool) *OrientationFlippedEvent {
	return &OrientationFlippedEvent{
		BaseEvent: newBase(TypeOrientationFlipped, gameID),
		From:      from.String(),
		To:        to.String(),
		Auto:      auto,
	}
}
