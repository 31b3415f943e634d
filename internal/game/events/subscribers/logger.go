package subscribers

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/BaoChess/internal/game/events"
)

// LoggerSubscriber logs events to structured logs
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	logLevel        zerolog.Level
	eventTypeFilter map[string]bool // If non-nil, only log these event types
	devMode         bool            // If true, log full event details
}

// NewLoggerSubscriber creates a new logger subscriber
func NewLoggerSubscriber(id string, logger zerolog.Logger, logLevel zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:       id,
		logger:   logger.With().Str("subscriber", "event_logger").Logger(),
		logLevel: logLevel,
	}
}

// ID returns the subscriber's unique identifier
func (ls *LoggerSubscriber) ID() string {
	return ls.id
}

// SetEventFilter sets which event types to log (nil means log all)
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}

	ls.eventTypeFilter = make(map[string]bool)
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// SetDevMode enables or disables development mode logging
func (ls *LoggerSubscriber) SetDevMode(enabled bool) {
	ls.devMode = enabled
}

// InterestedIn returns true if the subscriber wants to receive this event type
func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent processes an event by logging it
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	eventLogger := ls.logger.With().
		Str("event_type", event.Type()).
		Str("game_id", event.GameID()).
		Time("timestamp", event.Timestamp()).
		Logger()

	logEvent := eventLogger.WithLevel(ls.logLevel)
	if ls.logLevel == zerolog.NoLevel || ls.logLevel == zerolog.Disabled {
		logEvent = eventLogger.Info()
	}

	switch e := event.(type) {
	case *events.GameStartedEvent:
		logEvent.
			Str("start_fen", e.StartFEN).
			Int("allowance", e.Allowance).
			Bool("auto_flip", e.AutoFlip)

	case *events.GameResetEvent:
		logEvent.
			Str("previous_status", e.PreviousStatus).
			Int("ply", e.Ply)

	case *events.MoveAppliedEvent:
		logEvent.
			Int("ply", e.Ply).
			Str("side", e.Side.String()).
			Str("piece", e.Piece.String()).
			Str("from", e.From).
			Str("to", e.To).
			Str("san", e.SAN).
			Bool("check", e.Check)

	case *events.MoveRejectedEvent:
		logEvent.
			Str("from", e.From).
			Str("to", e.To).
			Str("reason", e.Reason)

	case *events.PieceCapturedEvent:
		logEvent.
			Str("capturer", e.Capturer.String()).
			Str("piece", e.Piece.String()).
			Str("captured", e.Captured.String()).
			Str("square", e.Square).
			Int("lost_count", e.LostCount)

	case *events.EffectRequestedEvent:
		logEvent.
			Str("effect_id", e.EffectID).
			Str("kind", e.Kind).
			Int("x", e.At.X).
			Int("y", e.At.Y).
			Str("color", e.Color)

	case *events.EffectCompletedEvent:
		logEvent.Str("effect_id", e.EffectID)

	case *events.ClockExpiredEvent:
		logEvent.Str("side", e.Side.String())

	case *events.StatusChangedEvent:
		logEvent.
			Str("from", e.From).
			Str("to", e.To).
			Str("reason", e.Reason)

	case *events.OrientationFlippedEvent:
		logEvent.
			Str("from", e.From).
			Str("to", e.To).
			Bool("auto", e.Auto)
	}

	// In dev mode, also log the full event as JSON
	if ls.devMode {
		if jsonData, err := json.Marshal(event); err == nil {
			logEvent.RawJSON("event_data", jsonData)
		}
	}

	logEvent.Msg("Game event")
}
