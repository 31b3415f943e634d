package selection

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/BaoChess/internal/game/core"
	"github.com/mitchelldurbincs/BaoChess/internal/game/rules"
)

func newTestController() *Controller {
	c := NewController()
	c.SetLogger(zerolog.Nop())
	return c
}

func TestClick_SelectOwnPiece(t *testing.T) {
	c := newTestController()
	snap := rules.NewSnapshot()

	out := c.Click(snap, core.MustSquare("e2"))

	assert.Equal(t, ResultSelected, out.Result)
	state := c.State()
	assert.Equal(t, Selected, state.Mode)
	assert.Equal(t, core.MustSquare("e2"), state.Square)
	assert.Len(t, state.Legal, 2)
	assert.True(t, state.Legal[core.MustSquare("e4")])
}

func TestClick_IgnoresEmptyAndOpponentSquaresWhenIdle(t *testing.T) {
	c := newTestController()
	snap := rules.NewSnapshot()

	for _, name := range []string{"e4", "e7"} {
		out := c.Click(snap, core.MustSquare(name))
		assert.Equal(t, ResultNone, out.Result, name)
		assert.Equal(t, Idle, c.State().Mode, name)
	}
}

func TestClick_SameSquareTwiceDeselects(t *testing.T) {
	c := newTestController()
	snap := rules.NewSnapshot()
	fen := snap.FEN()

	c.Click(snap, core.MustSquare("g1"))
	out := c.Click(snap, core.MustSquare("g1"))

	assert.Equal(t, ResultDeselected, out.Result)
	assert.Equal(t, Idle, c.State().Mode)
	assert.Empty(t, c.State().Legal)
	assert.Equal(t, fen, snap.FEN())
}

func TestClick_OtherOwnPieceSwitchesSelection(t *testing.T) {
	c := newTestController()
	snap := rules.NewSnapshot()

	c.Click(snap, core.MustSquare("e2"))
	out := c.Click(snap, core.MustSquare("g1"))

	assert.Equal(t, ResultSwitched, out.Result)
	assert.Equal(t, core.MustSquare("g1"), c.State().Square)
	assert.True(t, c.State().Legal[core.MustSquare("f3")])
}

func TestClick_LegalMoveCommits(t *testing.T) {
	c := newTestController()
	snap := rules.NewSnapshot()

	c.Click(snap, core.MustSquare("e2"))
	out := c.Click(snap, core.MustSquare("e4"))

	require.True(t, out.Moved())
	assert.Equal(t, core.Black, out.Snapshot.SideToMove())
	assert.Equal(t, "e4", out.Move.SAN)
	assert.False(t, out.Move.IsCapture())
	assert.Equal(t, Idle, c.State().Mode)
	assert.Equal(t, core.White, snap.SideToMove(), "input snapshot must be untouched")
}

func TestClick_IllegalMoveCollapsesToIdle(t *testing.T) {
	c := newTestController()
	snap := rules.NewSnapshot()

	c.Click(snap, core.MustSquare("e2"))
	out := c.Click(snap, core.MustSquare("e5"))

	assert.Equal(t, ResultRejected, out.Result)
	assert.ErrorIs(t, out.Err, rules.ErrIllegalMove)
	assert.Equal(t, Idle, c.State().Mode)
}

func TestClick_PromotionAlwaysQueen(t *testing.T) {
	c := newTestController()
	snap, err := rules.SnapshotFromFEN("8/P7/8/8/8/8/8/k6K w - - 0 1")
	require.NoError(t, err)

	c.Click(snap, core.MustSquare("a7"))
	out := c.Click(snap, core.MustSquare("a8"))

	require.True(t, out.Moved())
	assert.Equal(t, core.Queen, out.Move.Promotion)
	p, ok := out.Snapshot.PieceAt(core.MustSquare("a8"))
	require.True(t, ok)
	assert.Equal(t, core.Queen, p.Kind)
}

func TestClick_AdapterPanicIsRejection(t *testing.T) {
	c := newTestController()
	var broken rules.Snapshot

	var out Outcome
	require.NotPanics(t, func() {
		out = c.Click(broken, core.MustSquare("e2"))
	})

	assert.Equal(t, ResultRejected, out.Result)
	assert.ErrorIs(t, out.Err, ErrAdapterFault)
	assert.Equal(t, Idle, c.State().Mode)
}

func TestClick_InvalidSquare(t *testing.T) {
	c := newTestController()
	snap := rules.NewSnapshot()
	c.Click(snap, core.MustSquare("e2"))

	out := c.Click(snap, core.NoSquare)

	assert.Equal(t, ResultNone, out.Result)
	assert.ErrorIs(t, out.Err, core.ErrInvalidSquare)
	assert.Equal(t, Idle, c.State().Mode)
}
