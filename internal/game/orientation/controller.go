// Package orientation decides which side faces the viewer, including the
// delayed auto-flip that follows each move.
package orientation

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/BaoChess/internal/game/core"
	"github.com/mitchelldurbincs/BaoChess/internal/game/sched"
)

// DefaultFlipDelay lets the moved piece settle before the board turns
const DefaultFlipDelay = 600 * time.Millisecond

// Scheduler is the part of sched.Scheduler the controller needs
type Scheduler interface {
	AfterFunc(name string, delay time.Duration, fn func(now time.Time)) *sched.Handle
}

// Controller owns the board orientation
type Controller struct {
	current    core.Orientation
	autoFlip   bool
	delay      time.Duration
	scheduler  Scheduler
	pending    *sched.Handle
	generation uint64
	onChange   func(from, to core.Orientation, auto bool)
	logger     zerolog.Logger
}

// NewController returns a white-bottom controller with auto-flip on
func NewController(scheduler Scheduler, delay time.Duration) *Controller {
	if delay < 0 {
		delay = DefaultFlipDelay
	}
	return &Controller{
		current:   core.WhiteBottom,
		autoFlip:  true,
		delay:     delay,
		scheduler: scheduler,
		logger:    log.With().Str("component", "orientation").Logger(),
	}
}

// SetLogger replaces the controller's logger
func (c *Controller) SetLogger(logger zerolog.Logger) {
	c.logger = logger
}

// OnChange registers a callback run after every orientation change
func (c *Controller) OnChange(fn func(from, to core.Orientation, auto bool)) {
	c.onChange = fn
}

// Current returns the orientation in force
func (c *Controller) Current() core.Orientation {
	return c.current
}

// AutoFlip reports whether the board follows the side to move
func (c *Controller) AutoFlip() bool {
	return c.autoFlip
}

// Delay returns the wait before an automatic flip
func (c *Controller) Delay() time.Duration {
	return c.delay
}

// SetDelay changes the wait used for flips scheduled from now on
func (c *Controller) SetDelay(delay time.Duration) {
	if delay >= 0 {
		c.delay = delay
	}
}

// FlipPending reports whether an automatic flip is waiting to fire
func (c *Controller) FlipPending() bool {
	return c.pending.Active()
}

// Toggle flips the board immediately
func (c *Controller) Toggle() {
	c.apply(c.current.Flipped(), false)
}

// SetAutoFlip turns automatic flipping on or off. Turning it off drops any
// flip already scheduled.
func (c *Controller) SetAutoFlip(enabled bool) {
	c.autoFlip = enabled
	if !enabled {
		c.cancelPending()
	}
	c.logger.Debug().Bool("auto_flip", enabled).Msg("Auto-flip changed")
}

// ScheduleFaceSide arranges for the board to face side after the flip delay.
// Any flip already waiting is cancelled first. Does nothing with auto-flip off.
func (c *Controller) ScheduleFaceSide(side core.Side) {
	c.cancelPending()
	if !c.autoFlip || c.scheduler == nil {
		return
	}

	target := core.Facing(side)
	gen := c.generation
	c.pending = c.scheduler.AfterFunc("auto-flip", c.delay, func(time.Time) {
		if gen != c.generation {
			c.logger.Debug().Uint64("generation", gen).Msg("Discarding stale flip")
			return
		}
		c.pending = nil
		c.apply(target, true)
	})
}

// CancelPending drops a scheduled flip without touching the orientation
func (c *Controller) CancelPending() {
	c.cancelPending()
}

// Reset cancels any pending flip and returns to white at the bottom. The
// auto-flip preference is kept.
func (c *Controller) Reset() {
	c.cancelPending()
	c.apply(core.WhiteBottom, false)
}

func (c *Controller) cancelPending() {
	c.generation++
	if c.pending != nil {
		c.pending.Cancel()
		c.pending = nil
	}
}

func (c *Controller) apply(to core.Orientation, auto bool) {
	from := c.current
	if from == to {
		return
	}
	c.current = to
	c.logger.Debug().Str("from", from.String()).Str("to", to.String()).Bool("auto", auto).Msg("Orientation changed")
	if c.onChange != nil {
		c.onChange(from, to, auto)
	}
}
