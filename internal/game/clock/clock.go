// Package clock keeps the two countdown timers of a game
package clock

import (
	"fmt"

	"github.com/mitchelldurbincs/BaoChess/internal/game/core"
)

const (
	// DefaultAllowance is ten minutes per side
	DefaultAllowance = 600
	// LowTimeThreshold marks the point where a clock is shown as running low
	LowTimeThreshold = 30
)

// TimerState holds each side's remaining whole seconds
type TimerState struct {
	White int
	Black int
}

// Remaining returns the seconds left for side
func (t TimerState) Remaining(side core.Side) int {
	if side == core.Black {
		return t.Black
	}
	return t.White
}

// Total is the combined time left on both clocks
func (t TimerState) Total() int {
	return t.White + t.Black
}

// TickResult reports what a single tick did
type TickResult struct {
	Side    core.Side
	Expired bool
}

// Clock counts down the side to move, one second per tick
type Clock struct {
	allowance int
	state     TimerState
}

// New returns a clock with both sides at allowance
func New(allowance int) *Clock {
	c := &Clock{}
	c.Reset(allowance)
	return c
}

// Reset puts both sides back to allowance. Non-positive values fall back to
// DefaultAllowance.
func (c *Clock) Reset(allowance int) {
	if allowance <= 0 {
		allowance = DefaultAllowance
	}
	c.allowance = allowance
	c.state = TimerState{White: allowance, Black: allowance}
}

// Allowance returns the starting seconds per side
func (c *Clock) Allowance() int {
	return c.allowance
}

// State returns a copy of the current timers
func (c *Clock) State() TimerState {
	return c.state
}

// Remaining returns the seconds left for side
func (c *Clock) Remaining(side core.Side) int {
	return c.state.Remaining(side)
}

// Tick charges one second to side. A side already at zero is reported as
// expired and its value is left where it is.
func (c *Clock) Tick(side core.Side) TickResult {
	slot := &c.state.White
	if side == core.Black {
		slot = &c.state.Black
	}
	if *slot <= 0 {
		*slot = 0
		return TickResult{Side: side, Expired: true}
	}
	*slot--
	return TickResult{Side: side}
}

// FormatSeconds renders seconds as mm:ss
func FormatSeconds(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// IsLow reports whether seconds is under the low-time threshold
func IsLow(seconds int) bool {
	return seconds < LowTimeThreshold
}
