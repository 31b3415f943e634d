package states

import (
	"time"

	"github.com/rs/zerolog"
)

// GameContext provides game-specific information to states
type GameContext struct {
	// GameID uniquely identifies this game instance
	GameID string

	// Logger for state-specific logging
	Logger zerolog.Logger

	// StartTime is when the current game became active
	StartTime time.Time

	// EndTime is when the game was decided
	EndTime time.Time

	// Reason is the reason given for the latest transition
	Reason string

	// Ply is the number of half-moves played, kept current by the engine
	Ply int

	// Clock supplies the current time; nil means time.Now
	Clock func() time.Time
}

// NewGameContext creates a new game context
func NewGameContext(gameID string, logger zerolog.Logger) *GameContext {
	return &GameContext{
		GameID: gameID,
		Logger: logger.With().Str("game_id", gameID).Logger(),
	}
}

// SetGameID moves the context to a new game
func (gc *GameContext) SetGameID(gameID string, logger zerolog.Logger) {
	gc.GameID = gameID
	gc.Logger = logger.With().Str("game_id", gameID).Logger()
}

func (gc *GameContext) now() time.Time {
	if gc.Clock != nil {
		return gc.Clock()
	}
	return time.Now()
}

// GetElapsedTime returns how long the game ran, up to now or its end
func (gc *GameContext) GetElapsedTime(now time.Time) time.Duration {
	if gc.StartTime.IsZero() {
		return 0
	}
	if !gc.EndTime.IsZero() {
		return gc.EndTime.Sub(gc.StartTime)
	}
	return now.Sub(gc.StartTime)
}
