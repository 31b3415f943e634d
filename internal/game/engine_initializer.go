package game

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/BaoChess/internal/game/capture"
	"github.com/mitchelldurbincs/BaoChess/internal/game/clock"
	"github.com/mitchelldurbincs/BaoChess/internal/game/core"
	"github.com/mitchelldurbincs/BaoChess/internal/game/events"
	"github.com/mitchelldurbincs/BaoChess/internal/game/orientation"
	"github.com/mitchelldurbincs/BaoChess/internal/game/rules"
	"github.com/mitchelldurbincs/BaoChess/internal/game/sched"
	"github.com/mitchelldurbincs/BaoChess/internal/game/selection"
	"github.com/mitchelldurbincs/BaoChess/internal/game/states"
)

// EngineInitializer handles the construction of a game engine
type EngineInitializer struct {
	config GameConfig
	logger zerolog.Logger
}

// NewEngineInitializer creates a new engine initializer
func NewEngineInitializer(cfg GameConfig) *EngineInitializer {
	logger := cfg.Logger.With().Str("component", "GameEngine").Logger()
	return &EngineInitializer{
		config: cfg,
		logger: logger,
	}
}

// NewEngine is shorthand for NewEngineInitializer(cfg).Initialize
func NewEngine(ctx context.Context, cfg GameConfig) (*Engine, error) {
	return NewEngineInitializer(cfg).Initialize(ctx)
}

// Initialize creates an engine and starts its first game
func (ei *EngineInitializer) Initialize(ctx context.Context) (*Engine, error) {
	select {
	case <-ctx.Done():
		ei.logger.Error().Err(ctx.Err()).Msg("Engine creation cancelled before it started")
		return nil, ctx.Err()
	default:
	}

	ei.setupDefaults()

	start, err := rules.SnapshotFromFEN(ei.config.StartFEN)
	if err != nil {
		return nil, fmt.Errorf("start position: %w", err)
	}

	engine := ei.createEngine(start)
	ei.setupEventHandling(engine)

	if err := engine.startGame(ei.config.GameID); err != nil {
		return nil, fmt.Errorf("start game: %w", err)
	}

	ei.logger.Info().
		Str("game_id", engine.gameID).
		Int("starting_seconds", ei.config.StartingSeconds).
		Bool("auto_flip", ei.config.AutoFlip).
		Msg("Engine created successfully")

	return engine, nil
}

// setupDefaults fills in missing configuration
func (ei *EngineInitializer) setupDefaults() {
	if ei.config.Now == nil {
		ei.config.Now = time.Now
	}
	if ei.config.StartingSeconds <= 0 {
		ei.config.StartingSeconds = clock.DefaultAllowance
	}
	if ei.config.TickInterval <= 0 {
		ei.config.TickInterval = time.Second
	}
	if ei.config.FlipDelay <= 0 {
		ei.config.FlipDelay = orientation.DefaultFlipDelay
	}
	if ei.config.GameID == "" {
		ei.config.GameID = uuid.NewString()
	}
	if ei.config.EventBus == nil {
		ei.config.EventBus = events.NewEventBus()
	}
	if ei.config.Scheduler == nil {
		ei.logger.Debug().Msg("No scheduler provided, creating one")
		ei.config.Scheduler = sched.New(ei.config.Now())
	}
}

// createEngine wires the engine's components together
func (ei *EngineInitializer) createEngine(start rules.Snapshot) *Engine {
	gameContext := states.NewGameContext(ei.config.GameID, ei.logger)
	gameContext.Clock = ei.config.Now

	sel := selection.NewController()
	sel.SetLogger(ei.logger.With().Str("component", "selection").Logger())

	orient := orientation.NewController(ei.config.Scheduler, ei.config.FlipDelay)
	orient.SetLogger(ei.logger.With().Str("component", "orientation").Logger())
	orient.SetAutoFlip(ei.config.AutoFlip)

	return &Engine{
		settings: Settings{
			StartingSeconds: ei.config.StartingSeconds,
			TickInterval:    ei.config.TickInterval,
			FlipDelay:       ei.config.FlipDelay,
		},
		logger:       ei.logger,
		eventBus:     ei.config.EventBus,
		scheduler:    ei.config.Scheduler,
		stateMachine: states.NewStateMachine(gameContext, ei.config.EventBus),
		start:        start,
		snapshot:     start,
		selection:    sel,
		clock:        clock.New(ei.config.StartingSeconds),
		orientation:  orient,
		inventory:    capture.NewInventory(),
		effects:      capture.NewPending(),
	}
}

// setupEventHandling forwards component callbacks onto the event bus
func (ei *EngineInitializer) setupEventHandling(engine *Engine) {
	engine.orientation.OnChange(func(from, to core.Orientation, auto bool) {
		engine.eventBus.Publish(events.NewOrientationFlippedEvent(engine.gameID, from, to, auto))
	})
}
