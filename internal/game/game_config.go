package game

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/BaoChess/internal/game/events"
	"github.com/mitchelldurbincs/BaoChess/internal/game/sched"
)

// GameConfig holds everything needed to build an Engine
type GameConfig struct {
	// GameID names the first game; later games get fresh IDs
	GameID string

	// StartFEN is the position every game starts from; empty means standard
	StartFEN string

	// StartingSeconds is each side's clock allowance
	StartingSeconds int

	// TickInterval is how often the side to move is charged one second
	TickInterval time.Duration

	// AutoFlip turns the board toward the side to move after each move
	AutoFlip bool

	// FlipDelay is the wait before an automatic flip
	FlipDelay time.Duration

	// Logger is the parent logger for the engine and its components
	Logger zerolog.Logger

	// EventBus receives game events; one is created when nil
	EventBus *events.EventBus

	// Scheduler runs the clock tick and auto-flip; one is created when nil
	Scheduler *sched.Scheduler

	// Now supplies the current time; nil means time.Now
	Now func() time.Time
}

// Settings are the values that may change while the program runs
type Settings struct {
	StartingSeconds int
	TickInterval    time.Duration
	FlipDelay       time.Duration
}
