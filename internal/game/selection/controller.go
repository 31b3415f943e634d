// Package selection turns board clicks into move attempts
package selection

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/BaoChess/internal/game/core"
	"github.com/mitchelldurbincs/BaoChess/internal/game/rules"
)

// ErrAdapterFault wraps a panic raised while consulting the rules adapter
var ErrAdapterFault = errors.New("rules adapter fault")

// Mode is the controller's interaction state
type Mode int

const (
	Idle Mode = iota
	Selected
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "idle"
	case Selected:
		return "selected"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// State is the current selection. Legal is empty when Mode is Idle.
type State struct {
	Mode   Mode
	Square core.Square
	Legal  map[core.Square]bool
}

// IsSelected reports whether sq is the selected square
func (s State) IsSelected(sq core.Square) bool {
	return s.Mode == Selected && s.Square == sq
}

// Result classifies what a click did
type Result int

const (
	ResultNone Result = iota
	ResultSelected
	ResultDeselected
	ResultSwitched
	ResultMoved
	ResultRejected
)

func (r Result) String() string {
	switch r {
	case ResultNone:
		return "none"
	case ResultSelected:
		return "selected"
	case ResultDeselected:
		return "deselected"
	case ResultSwitched:
		return "switched"
	case ResultMoved:
		return "moved"
	case ResultRejected:
		return "rejected"
	default:
		return fmt.Sprintf("Unknown(%d)", int(r))
	}
}

// Outcome is returned by every click. Snapshot and Move are only set when
// Result is ResultMoved; Err carries the reason a move was refused.
type Outcome struct {
	Result   Result
	Snapshot rules.Snapshot
	Move     rules.MoveRecord
	From     core.Square
	To       core.Square
	Err      error
}

// Moved reports whether the click committed a move
func (o Outcome) Moved() bool {
	return o.Result == ResultMoved
}

// Controller owns the select / move interaction
type Controller struct {
	state  State
	logger zerolog.Logger
}

// NewController returns an idle controller
func NewController() *Controller {
	return &Controller{
		state:  idleState(),
		logger: log.With().Str("component", "selection").Logger(),
	}
}

// SetLogger replaces the controller's logger
func (c *Controller) SetLogger(logger zerolog.Logger) {
	c.logger = logger
}

// State returns the current selection
func (c *Controller) State() State {
	return c.state
}

// Clear drops any selection
func (c *Controller) Clear() {
	c.state = idleState()
}

// Click handles a click on sq against the given snapshot. The snapshot is
// never modified; a committed move comes back in the outcome. A panic from
// the rules adapter is reported as a rejection and leaves the controller idle.
func (c *Controller) Click(snap rules.Snapshot, sq core.Square) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			c.Clear()
			err := fmt.Errorf("%w: %v", ErrAdapterFault, r)
			c.logger.Warn().Err(err).Str("square", sq.String()).Msg("Rules adapter fault")
			out = Outcome{Result: ResultRejected, To: sq, Err: err}
		}
	}()

	if !sq.IsValid() {
		c.Clear()
		return Outcome{Result: ResultNone, Err: core.ErrInvalidSquare}
	}

	if c.state.Mode == Idle {
		if snap.IsOwnPiece(sq) {
			c.selectSquare(snap, sq)
			return Outcome{Result: ResultSelected}
		}
		return Outcome{Result: ResultNone}
	}

	from := c.state.Square
	if sq == from {
		c.Clear()
		return Outcome{Result: ResultDeselected}
	}
	if snap.IsOwnPiece(sq) {
		c.selectSquare(snap, sq)
		return Outcome{Result: ResultSwitched}
	}

	next, rec, err := snap.TryMove(from, sq, core.Queen)
	if err != nil {
		c.Clear()
		evt := c.logger.Debug()
		if !errors.Is(err, rules.ErrIllegalMove) && !errors.Is(err, rules.ErrGameOver) {
			evt = c.logger.Warn()
		}
		evt.Err(err).Str("from", from.String()).Str("to", sq.String()).Msg("Move rejected")
		return Outcome{Result: ResultRejected, From: from, To: sq, Err: err}
	}

	c.Clear()
	c.logger.Debug().Str("move", rec.SAN).Int("ply", rec.Ply).Msg("Move applied")
	return Outcome{Result: ResultMoved, Snapshot: next, Move: rec, From: from, To: sq}
}

func (c *Controller) selectSquare(snap rules.Snapshot, sq core.Square) {
	c.state = State{
		Mode:   Selected,
		Square: sq,
		Legal:  snap.LegalDestinations(sq),
	}
}

func idleState() State {
	return State{Mode: Idle, Square: core.NoSquare, Legal: map[core.Square]bool{}}
}
