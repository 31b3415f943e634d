package states

import (
	"errors"
	"time"
)

// ActiveState is a game in progress
type ActiveState struct{}

func NewActiveState() State {
	return &ActiveState{}
}

func (s *ActiveState) Status() Status {
	return StatusActive
}

func (s *ActiveState) Enter(ctx *GameContext) error {
	ctx.StartTime = ctx.now()
	ctx.EndTime = time.Time{}
	ctx.Ply = 0
	ctx.Logger.Info().Time("start_time", ctx.StartTime).Msg("Game started")
	return nil
}

func (s *ActiveState) Exit(ctx *GameContext) error {
	ctx.Logger.Debug().Int("ply", ctx.Ply).Msg("Leaving active play")
	return nil
}

func (s *ActiveState) Validate(ctx *GameContext) error {
	return nil
}

// DecidedState covers the three finished outcomes
type DecidedState struct {
	status Status
}

func NewDecidedState(status Status) State {
	return &DecidedState{status: status}
}

func (s *DecidedState) Status() Status {
	return s.status
}

func (s *DecidedState) Enter(ctx *GameContext) error {
	ctx.EndTime = ctx.now()
	evt := ctx.Logger.Info().
		Str("result", s.status.String()).
		Str("reason", ctx.Reason).
		Int("ply", ctx.Ply).
		Dur("elapsed", ctx.GetElapsedTime(ctx.EndTime))
	if winner, ok := s.status.Winner(); ok {
		evt = evt.Str("winner", winner.String())
	}
	evt.Msg("Game over")
	return nil
}

func (s *DecidedState) Exit(ctx *GameContext) error {
	ctx.Logger.Debug().Str("result", s.status.String()).Msg("Clearing finished game")
	return nil
}

func (s *DecidedState) Validate(ctx *GameContext) error {
	if ctx.Reason == "" {
		return errors.New("a finished game needs a reason")
	}
	return nil
}
