// Package game ties the chess core together: it owns the current snapshot
// and routes clicks, clock ticks and deferred flips through the rules,
// clock, capture and orientation components.
package game

import (
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

// Engine is a single pass-and-play game. It is not safe for concurrent use;
// every method is meant to be called from the UI loop.
type Engine struct {
	gameID   string
	settings Settings
	logger   zerolog.Logger

	eventBus     *events.EventBus
	scheduler    *sched.Scheduler
	stateMachine *states.StateMachine

	start       rules.Snapshot
	snapshot    rules.Snapshot
	selection   *selection.Controller
	clock       *clock.Clock
	orientation *orientation.Controller
	inventory   capture.Inventory
	effects     *capture.Pending
	tick        *sched.Handle
	captures    int
	lastMove    *rules.MoveRecord
	checkSquare core.Square
}

// GameID identifies the game currently on the board
func (e *Engine) GameID() string { return e.gameID }

// EventBus returns the bus game events are published on
func (e *Engine) EventBus() *events.EventBus { return e.eventBus }

// Status returns the current game status
func (e *Engine) Status() states.Status { return e.stateMachine.Current() }

// Snapshot returns the current position
func (e *Engine) Snapshot() rules.Snapshot { return e.snapshot }

// ClickCell handles a click on a screen cell, mapped through the current
// orientation
func (e *Engine) ClickCell(c core.Coordinate) selection.Outcome {
	if !c.IsValid() {
		return selection.Outcome{Result: selection.ResultNone, Err: core.ErrInvalidCoordinate}
	}
	return e.ClickSquare(e.orientation.Current().ToSquare(c))
}

// ClickSquare feeds a click into the selection controller. A committed move
// is evaluated for a result, then for captures, then the auto-flip is
// scheduled, all before this returns. Clicks on a finished game do nothing.
func (e *Engine) ClickSquare(sq core.Square) selection.Outcome {
	if e.Status().IsTerminal() {
		return selection.Outcome{Result: selection.ResultNone, Err: rules.ErrGameOver}
	}

	out := e.selection.Click(e.snapshot, sq)
	switch out.Result {
	case selection.ResultMoved:
		e.commit(out)
	case selection.ResultRejected:
		reason := "rejected"
		if out.Err != nil {
			reason = out.Err.Error()
		}
		e.eventBus.Publish(events.NewMoveRejectedEvent(e.gameID, out.From, out.To, reason))
	}
	return out
}

func (e *Engine) commit(out selection.Outcome) {
	rec := out.Move
	e.snapshot = out.Snapshot
	e.stateMachine.GetContext().Ply = e.snapshot.Ply()
	e.refreshHighlights()

	applied := events.NewMoveAppliedEvent(e.gameID, rec.Ply, rec.Side, rec.Piece, rec.From, rec.To, rec.SAN)
	applied.Captured = rec.Captured
	applied.Promotion = rec.Promotion
	applied.Check = rec.Check
	applied.FEN = e.snapshot.FEN()
	e.eventBus.Publish(applied)

	e.evaluate()

	if rec.IsCapture() {
		e.recordCapture(rec)
	}

	// re-read the status: this move may have just ended the game
	if e.Status().IsTerminal() {
		e.orientation.CancelPending()
		return
	}
	e.orientation.ScheduleFaceSide(e.snapshot.SideToMove())
}

// evaluate applies the rules' verdict on the current position
func (e *Engine) evaluate() {
	snap := e.snapshot
	switch {
	case snap.IsCheckmate():
		e.finish(states.WinFor(snap.SideToMove().Other()), states.ReasonCheckmate)
	case snap.IsDraw():
		reason := snap.DrawReason()
		if reason == "" {
			reason = states.ReasonDraw
		}
		e.finish(states.StatusDraw, reason)
	}
}

func (e *Engine) recordCapture(rec rules.MoveRecord) {
	e.inventory = capture.BuildInventory(e.snapshot.History())
	e.captures++

	loser := rec.Side.Other()
	e.eventBus.Publish(events.NewPieceCapturedEvent(e.gameID, rec.Side, rec.Piece, rec.Captured, rec.To, e.inventory.Count(loser)))

	effect := capture.NewEffect(rec, e.orientation.Current())
	e.effects.Add(effect)
	e.eventBus.Publish(events.NewEffectRequestedEvent(e.gameID, effect.ID.String(), effect.Kind.String(), effect.At, effect.Color))
}

func (e *Engine) finish(status states.Status, reason string) {
	if err := e.stateMachine.TransitionTo(status, reason); err != nil {
		e.logger.Warn().Err(err).Str("status", status.String()).Msg("Could not record result")
		return
	}
	e.stopTicking()
	e.selection.Clear()
}

// onTick charges the side to move at fire time
func (e *Engine) onTick(time.Time) {
	if e.Status().IsTerminal() {
		e.logger.Debug().Msg("Discarding tick after game end")
		e.stopTicking()
		return
	}
	side := e.snapshot.SideToMove()
	res := e.clock.Tick(side)
	if !res.Expired {
		return
	}
	e.eventBus.Publish(events.NewClockExpiredEvent(e.gameID, side))
	e.finish(states.WinFor(side.Other()), states.ReasonTimeForfeit)
}

func (e *Engine) armTicking() {
	e.stopTicking()
	e.tick = e.scheduler.Every("clock-tick", e.settings.TickInterval, e.onTick)
}

func (e *Engine) stopTicking() {
	if e.tick != nil {
		e.tick.Cancel()
		e.tick = nil
	}
}

// Advance runs every timer that came due by now
func (e *Engine) Advance(now time.Time) int {
	return e.scheduler.Advance(now)
}

// ToggleAutoFlip switches automatic flipping and returns the new setting
func (e *Engine) ToggleAutoFlip() bool {
	enabled := !e.orientation.AutoFlip()
	e.orientation.SetAutoFlip(enabled)
	return enabled
}

// ToggleOrientation flips the board immediately
func (e *Engine) ToggleOrientation() {
	e.orientation.Toggle()
}

// ClearSelection drops any selected piece
func (e *Engine) ClearSelection() {
	e.selection.Clear()
}

// CompleteEffect retires a finished capture animation
func (e *Engine) CompleteEffect(id uuid.UUID) bool {
	if !e.effects.Complete(id) {
		return false
	}
	e.eventBus.Publish(events.NewEffectCompletedEvent(e.gameID, id.String()))
	return true
}

// NewGame throws the current game away and starts over from the start
// position. Every component is reset before the new clock tick is armed.
func (e *Engine) NewGame() error {
	previous := e.Status()
	ply := e.snapshot.Ply()

	if err := e.startGame(uuid.NewString()); err != nil {
		return err
	}
	e.eventBus.Publish(events.NewGameResetEvent(e.gameID, previous.String(), ply))
	return nil
}

func (e *Engine) startGame(gameID string) error {
	e.stopTicking()
	e.orientation.Reset()
	e.selection.Clear()
	e.effects.Clear()

	e.gameID = gameID
	e.snapshot = e.start
	e.refreshHighlights()
	e.clock.Reset(e.settings.StartingSeconds)
	e.inventory = capture.NewInventory()
	e.captures = 0

	e.stateMachine.GetContext().SetGameID(gameID, e.logger)
	if err := e.stateMachine.Reset(states.ReasonNewGame); err != nil {
		return err
	}
	// a custom start position may already be decided
	e.evaluate()
	if !e.Status().IsTerminal() {
		e.armTicking()
	}

	e.eventBus.Publish(events.NewGameStartedEvent(e.gameID, e.start.StartFEN(), e.settings.StartingSeconds, e.orientation.AutoFlip()))
	return nil
}

// ApplySettings updates runtime settings. The flip delay applies to the next
// scheduled flip, the tick interval re-arms the running clock and a new
// allowance takes effect with the next game.
func (e *Engine) ApplySettings(s Settings) {
	if s.FlipDelay > 0 {
		e.settings.FlipDelay = s.FlipDelay
		e.orientation.SetDelay(s.FlipDelay)
	}
	if s.StartingSeconds > 0 {
		e.settings.StartingSeconds = s.StartingSeconds
	}
	if s.TickInterval > 0 && s.TickInterval != e.settings.TickInterval {
		e.settings.TickInterval = s.TickInterval
		if e.tick != nil {
			e.armTicking()
		}
	}
	e.logger.Info().
		Int("starting_seconds", e.settings.StartingSeconds).
		Dur("tick_interval", e.settings.TickInterval).
		Dur("flip_delay", e.settings.FlipDelay).
		Msg("Settings applied")
}

// Settings returns the settings in force
func (e *Engine) Settings() Settings {
	return e.settings
}
