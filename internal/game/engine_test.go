package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/BaoChess/internal/game/capture"
	"github.com/mitchelldurbincs/BaoChess/internal/game/core"
	"github.com/mitchelldurbincs/BaoChess/internal/game/events"
	"github.com/mitchelldurbincs/BaoChess/internal/game/sched"
	"github.com/mitchelldurbincs/BaoChess/internal/game/selection"
	"github.com/mitchelldurbincs/BaoChess/internal/game/states"
	"github.com/mitchelldurbincs/BaoChess/internal/testutil"
)

type testEngine struct {
	*Engine
	clock    *testutil.FakeClock
	received []events.Event
}

func newTestEngine(t *testing.T, mutate ...func(*GameConfig)) *testEngine {
	t.Helper()
	fc := testutil.NewFakeClock()
	s := sched.New(fc.Now())
	s.SetLogger(testutil.NopLogger())
	bus := events.NewEventBus()
	bus.SetLogger(testutil.NopLogger())

	cfg := GameConfig{
		GameID:          "test-game",
		StartingSeconds: 600,
		TickInterval:    time.Second,
		AutoFlip:        true,
		FlipDelay:       600 * time.Millisecond,
		Logger:          testutil.NopLogger(),
		EventBus:        bus,
		Scheduler:       s,
		Now:             fc.Now,
	}
	for _, m := range mutate {
		m(&cfg)
	}

	eng, err := NewEngine(context.Background(), cfg)
	require.NoError(t, err)

	te := &testEngine{Engine: eng, clock: fc}
	bus.Subscribe(&recorder{te: te})
	return te
}

type recorder struct{ te *testEngine }

func (r *recorder) ID() string { return "recorder" }
func (r *recorder) InterestedIn(_ string) bool { return true }
func (r *recorder) HandleEvent(e events.Event) { r.te.received = append(r.te.received, e) }

func (te *testEngine) move(t *testing.T, uci string) selection.Outcome {
	t.Helper()
	first := te.ClickSquare(core.MustSquare(uci[:2]))
	require.Equal(t, selection.ResultSelected, first.Result, "select %s", uci[:2])
	out := te.ClickSquare(core.MustSquare(uci[2:4]))
	require.True(t, out.Moved(), "move %s: %v", uci, out.Err)
	return out
}

func (te *testEngine) wait(d time.Duration) {
	te.Advance(te.clock.Add(d))
}

func (te *testEngine) ticks(n int) {
	for i := 0; i < n; i++ {
		te.wait(time.Second)
	}
}

func (te *testEngine) eventTypes() []string {
	out := make([]string, 0, len(te.received))
	for _, e := range te.received {
		out = append(out, e.Type())
	}
	return out
}

func TestNewEngine_InitialState(t *testing.T) {
	te := newTestEngine(t)
	v := te.View()

	assert.Equal(t, "test-game", v.GameID)
	assert.Equal(t, states.StatusActive, v.Status)
	assert.Equal(t, core.White, v.SideToMove)
	assert.Equal(t, core.WhiteBottom, v.Orientation)
	assert.True(t, v.AutoFlip)
	assert.Equal(t, 600, v.Timers.White)
	assert.Equal(t, 600, v.Timers.Black)
	assert.Empty(t, v.Effects)
	assert.Nil(t, v.LastMove)
	assert.Equal(t, core.NoSquare, v.CheckSquare)
	assert.Equal(t, selection.Idle, v.Selection.Mode)
}

func TestNewEngine_RejectsBadStartFEN(t *testing.T) {
	_, err := NewEngine(context.Background(), GameConfig{StartFEN: "nonsense", Logger: testutil.NopLogger()})
	assert.Error(t, err)
}

func TestNewEngine_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewEngine(ctx, GameConfig{Logger: testutil.NopLogger()})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScenarioA_OpeningMove(t *testing.T) {
	te := newTestEngine(t)

	out := te.move(t, "e2e4")

	v := te.View()
	assert.Equal(t, "e4", out.Move.SAN)
	assert.Equal(t, core.Black, v.SideToMove)
	assert.Empty(t, v.Inventory.Lost(core.White))
	assert.Empty(t, v.Inventory.Lost(core.Black))
	assert.Empty(t, v.Effects)
	assert.Equal(t, selection.Idle, v.Selection.Mode)
	require.NotNil(t, v.LastMove)
	assert.Equal(t, core.MustSquare("e4"), v.LastMove.To)
	assert.Contains(t, te.eventTypes(), events.TypeMoveApplied)
}

func TestScenarioB_CaptureQueuesOneEffect(t *testing.T) {
	te := newTestEngine(t, func(c *GameConfig) { c.AutoFlip = false })

	te.move(t, "e2e4")
	te.move(t, "d7d5")
	te.move(t, "e4d5")

	v := te.View()
	assert.Equal(t, []core.PieceKind{core.Pawn}, v.Inventory.Lost(core.Black))
	assert.Empty(t, v.Inventory.Lost(core.White))
	require.Len(t, v.Effects, 1)
	eff := v.Effects[0]
	assert.Equal(t, core.WhiteBottom.ToCoordinate(core.MustSquare("d5")), eff.At)
	assert.Equal(t, core.Pawn, eff.Piece)
	assert.Equal(t, capture.EffectPawn, eff.Kind)
	assert.Equal(t, capture.ColorBlackLost, eff.Color)
	assert.Equal(t, 1, v.Captures)

	assert.Contains(t, te.eventTypes(), events.TypePieceCaptured)
	assert.Contains(t, te.eventTypes(), events.TypeEffectRequested)

	assert.True(t, te.CompleteEffect(eff.ID))
	assert.False(t, te.CompleteEffect(eff.ID))
	assert.Empty(t, te.View().Effects)
}

func TestCapture_EffectUsesCurrentOrientation(t *testing.T) {
	te := newTestEngine(t, func(c *GameConfig) { c.AutoFlip = false })
	te.move(t, "e2e4")
	te.move(t, "d7d5")
	te.ToggleOrientation()

	te.move(t, "e4d5")

	v := te.View()
	require.Len(t, v.Effects, 1)
	assert.Equal(t, core.NewCoordinate(4, 4), v.Effects[0].At)
}

func TestScenarioC_TimeForfeit(t *testing.T) {
	te := newTestEngine(t)

	te.ticks(600)
	v := te.View()
	assert.Equal(t, 0, v.Timers.White)
	assert.Equal(t, 600, v.Timers.Black)
	assert.Equal(t, states.StatusActive, v.Status)

	te.ticks(1)
	v = te.View()
	assert.Equal(t, states.StatusBlackWon, v.Status)
	assert.Equal(t, states.ReasonTimeForfeit, v.StatusReason)
	assert.Equal(t, 0, v.Timers.White)
	assert.Contains(t, te.eventTypes(), events.TypeClockExpired)

	// frozen: nothing ticks or moves after the result
	te.ticks(30)
	assert.Equal(t, v.Timers, te.View().Timers)
	out := te.ClickSquare(core.MustSquare("e2"))
	assert.Equal(t, selection.ResultNone, out.Result)
	assert.Equal(t, 0, te.Snapshot().Ply())
}

func TestClock_ChargesSideToMoveAtFireTime(t *testing.T) {
	te := newTestEngine(t)

	te.ticks(3)
	te.move(t, "e2e4")

	for i := 0; i < 5; i++ {
		before := te.View().Timers
		te.ticks(1)
		after := te.View().Timers

		assert.Equal(t, before.White, after.White)
		assert.Equal(t, before.Black-1, after.Black)
		assert.Equal(t, before.Total()-1, after.Total())
	}
	assert.Equal(t, 597, te.View().Timers.White)
	assert.Equal(t, 595, te.View().Timers.Black)
}

func TestScenarioD_CheckmateIsImmediate(t *testing.T) {
	te := newTestEngine(t)

	for _, mv := range testutil.FoolsMate {
		te.move(t, mv)
	}

	v := te.View()
	assert.Equal(t, states.StatusBlackWon, v.Status)
	assert.Equal(t, states.ReasonCheckmate, v.StatusReason)
	assert.False(t, v.FlipPending, "no flip after a decisive move")
	assert.Equal(t, core.MustSquare("e1"), v.CheckSquare)

	timers := v.Timers
	fen := te.Snapshot().FEN()
	te.ticks(10)
	te.ClickSquare(core.MustSquare("a2"))
	te.ClickSquare(core.MustSquare("a3"))

	assert.Equal(t, timers, te.View().Timers)
	assert.Equal(t, fen, te.Snapshot().FEN())
	assert.Equal(t, core.WhiteBottom, te.View().Orientation)

	var applied, changed int
	for i, e := range te.received {
		switch e.Type() {
		case events.TypeMoveApplied:
			applied = i
		case events.TypeStatusChanged:
			changed = i
		}
	}
	assert.Less(t, applied, changed, "result is published after the move")
}

func TestStalemateIsDraw(t *testing.T) {
	te := newTestEngine(t, func(c *GameConfig) { c.StartFEN = testutil.StalemateInOneFEN })

	te.move(t, "e6f7")

	v := te.View()
	assert.Equal(t, states.StatusDraw, v.Status)
	assert.Equal(t, states.ReasonStalemate, v.StatusReason)
	_, won := v.Winner()
	assert.False(t, won)
}

func TestThreefoldRepetitionIsDraw(t *testing.T) {
	te := newTestEngine(t)

	for i := 0; i < 2; i++ {
		for _, mv := range testutil.KnightShuffle {
			te.move(t, mv)
		}
	}

	assert.Equal(t, states.StatusDraw, te.Status())
	assert.Equal(t, states.ReasonThreefoldRepetition, te.View().StatusReason)
}

func TestDecidedStartPosition(t *testing.T) {
	te := newTestEngine(t, func(c *GameConfig) { c.StartFEN = testutil.BareKingsFEN })

	assert.Equal(t, states.StatusDraw, te.Status())
	te.ticks(5)
	assert.Equal(t, 600, te.View().Timers.White)
}

func TestAutoFlip_FacesSideToMoveAfterDelay(t *testing.T) {
	te := newTestEngine(t)

	te.move(t, "e2e4")
	assert.True(t, te.View().FlipPending)
	assert.Equal(t, core.WhiteBottom, te.View().Orientation)

	te.wait(600 * time.Millisecond)
	assert.Equal(t, core.BlackBottom, te.View().Orientation)
	assert.Contains(t, te.eventTypes(), events.TypeOrientationFlipped)

	te.move(t, "e7e5")
	te.wait(600 * time.Millisecond)
	assert.Equal(t, core.WhiteBottom, te.View().Orientation)
}

func TestAutoFlip_QuickSecondMoveWins(t *testing.T) {
	te := newTestEngine(t)

	te.move(t, "e2e4")
	te.wait(200 * time.Millisecond)
	te.move(t, "e7e5")
	te.wait(time.Second)

	assert.Equal(t, core.WhiteBottom, te.View().Orientation)
}

func TestToggleAutoFlip(t *testing.T) {
	te := newTestEngine(t)

	assert.False(t, te.ToggleAutoFlip())
	te.move(t, "e2e4")
	te.wait(time.Second)
	assert.Equal(t, core.WhiteBottom, te.View().Orientation)

	assert.True(t, te.ToggleAutoFlip())
}

func TestScenarioE_NewGameCancelsPendingFlip(t *testing.T) {
	te := newTestEngine(t)
	te.move(t, "e2e4")
	require.True(t, te.View().FlipPending)

	require.NoError(t, te.NewGame())
	te.wait(2 * time.Second)

	assert.Equal(t, core.WhiteBottom, te.View().Orientation)
}

func TestNewGame_ResetsEverything(t *testing.T) {
	te := newTestEngine(t)
	first := te.GameID()
	te.ticks(5)
	te.move(t, "e2e4")
	te.move(t, "d7d5")
	te.move(t, "e4d5")
	te.ClickSquare(core.MustSquare("g8"))
	te.ToggleOrientation()

	require.NoError(t, te.NewGame())

	v := te.View()
	assert.NotEqual(t, first, v.GameID)
	assert.Equal(t, 0, v.Snapshot.Ply())
	assert.Equal(t, states.StatusActive, v.Status)
	assert.Equal(t, 600, v.Timers.White)
	assert.Equal(t, 600, v.Timers.Black)
	assert.Empty(t, v.Inventory.Lost(core.Black))
	assert.Empty(t, v.Effects)
	assert.Equal(t, selection.Idle, v.Selection.Mode)
	assert.Equal(t, core.WhiteBottom, v.Orientation)
	assert.Equal(t, 0, v.Captures)
	assert.Contains(t, te.eventTypes(), events.TypeGameReset)

	// exactly one tick source: one second costs exactly one second
	te.ticks(1)
	assert.Equal(t, 599, te.View().Timers.White)
}

func TestNewGame_AfterForfeitRestartsClock(t *testing.T) {
	te := newTestEngine(t, func(c *GameConfig) { c.StartingSeconds = 2 })
	te.ticks(3)
	require.Equal(t, states.StatusBlackWon, te.Status())

	require.NoError(t, te.NewGame())
	te.ticks(1)

	assert.Equal(t, states.StatusActive, te.Status())
	assert.Equal(t, 1, te.View().Timers.White)
}

func TestClickCell_MapsThroughOrientation(t *testing.T) {
	te := newTestEngine(t, func(c *GameConfig) { c.AutoFlip = false })
	te.ToggleOrientation()

	// with black at the bottom, e2 is drawn at column 3, row 1
	out := te.ClickCell(core.NewCoordinate(3, 1))

	assert.Equal(t, selection.ResultSelected, out.Result)
	assert.Equal(t, core.MustSquare("e2"), te.View().Selection.Square)

	out = te.ClickCell(core.NewCoordinate(9, 9))
	assert.ErrorIs(t, out.Err, core.ErrInvalidCoordinate)
}

func TestRejectedMovePublishesEvent(t *testing.T) {
	te := newTestEngine(t)

	te.ClickSquare(core.MustSquare("e2"))
	out := te.ClickSquare(core.MustSquare("e6"))

	assert.Equal(t, selection.ResultRejected, out.Result)
	assert.Contains(t, te.eventTypes(), events.TypeMoveRejected)
	assert.Equal(t, 0, te.Snapshot().Ply())
}

func TestApplySettings(t *testing.T) {
	te := newTestEngine(t)

	te.ApplySettings(Settings{StartingSeconds: 300, TickInterval: 2 * time.Second, FlipDelay: time.Second})

	te.ticks(2)
	assert.Equal(t, 599, te.View().Timers.White, "tick now every two seconds")

	require.NoError(t, te.NewGame())
	assert.Equal(t, 300, te.View().Timers.White)
	assert.Equal(t, time.Second, te.Settings().FlipDelay)
}
