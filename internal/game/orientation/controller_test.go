package orientation

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/BaoChess/internal/game/core"
	"github.com/mitchelldurbincs/BaoChess/internal/game/sched"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestController(s Scheduler) *Controller {
	c := NewController(s, DefaultFlipDelay)
	c.SetLogger(zerolog.Nop())
	return c
}

// leakyScheduler hands out handles whose cancellation it ignores, so every
// callback can still be fired by hand.
type leakyScheduler struct {
	fns []func(time.Time)
}

func (l *leakyScheduler) AfterFunc(_ string, _ time.Duration, fn func(time.Time)) *sched.Handle {
	l.fns = append(l.fns, fn)
	return &sched.Handle{}
}

func TestNewController_Defaults(t *testing.T) {
	c := newTestController(sched.New(epoch))

	assert.Equal(t, core.WhiteBottom, c.Current())
	assert.True(t, c.AutoFlip())
	assert.Equal(t, DefaultFlipDelay, c.Delay())
	assert.False(t, c.FlipPending())
}

func TestToggle_IsImmediate(t *testing.T) {
	c := newTestController(sched.New(epoch))
	var changes []core.Orientation
	c.OnChange(func(_, to core.Orientation, auto bool) {
		assert.False(t, auto)
		changes = append(changes, to)
	})

	c.Toggle()
	assert.Equal(t, core.BlackBottom, c.Current())
	c.Toggle()
	assert.Equal(t, core.WhiteBottom, c.Current())
	assert.Equal(t, []core.Orientation{core.BlackBottom, core.WhiteBottom}, changes)
}

func TestScheduleFaceSide_FlipsAfterDelay(t *testing.T) {
	s := sched.New(epoch)
	c := newTestController(s)

	c.ScheduleFaceSide(core.Black)
	assert.True(t, c.FlipPending())

	s.Advance(epoch.Add(DefaultFlipDelay - time.Millisecond))
	assert.Equal(t, core.WhiteBottom, c.Current())

	s.Advance(epoch.Add(DefaultFlipDelay))
	assert.Equal(t, core.BlackBottom, c.Current())
	assert.False(t, c.FlipPending())
}

func TestScheduleFaceSide_NewMoveReplacesPendingFlip(t *testing.T) {
	s := sched.New(epoch)
	c := newTestController(s)

	c.ScheduleFaceSide(core.Black)
	s.Advance(epoch.Add(300 * time.Millisecond))
	c.ScheduleFaceSide(core.White)

	s.Advance(epoch.Add(2 * time.Second))

	assert.Equal(t, core.WhiteBottom, c.Current())
	assert.Equal(t, 0, s.Pending())
}

func TestScheduleFaceSide_DisabledAutoFlip(t *testing.T) {
	s := sched.New(epoch)
	c := newTestController(s)
	c.SetAutoFlip(false)

	c.ScheduleFaceSide(core.Black)
	s.Advance(epoch.Add(time.Second))

	assert.Equal(t, core.WhiteBottom, c.Current())
	assert.Equal(t, 0, s.Pending())
}

func TestSetAutoFlip_OffCancelsPending(t *testing.T) {
	s := sched.New(epoch)
	c := newTestController(s)

	c.ScheduleFaceSide(core.Black)
	c.SetAutoFlip(false)
	s.Advance(epoch.Add(time.Second))

	assert.Equal(t, core.WhiteBottom, c.Current())
}

func TestReset_CancelsPendingFlip(t *testing.T) {
	s := sched.New(epoch)
	c := newTestController(s)
	c.Toggle()

	c.ScheduleFaceSide(core.Black)
	c.Reset()
	s.Advance(epoch.Add(time.Second))

	assert.Equal(t, core.WhiteBottom, c.Current())
	assert.True(t, c.AutoFlip())
	assert.Equal(t, 0, s.Pending())
}

func TestStaleCallback_IsDiscarded(t *testing.T) {
	leaky := &leakyScheduler{}
	c := newTestController(leaky)

	c.ScheduleFaceSide(core.Black)
	c.Reset()
	require.Len(t, leaky.fns, 1)

	leaky.fns[0](epoch.Add(time.Second))

	assert.Equal(t, core.WhiteBottom, c.Current())
}

func TestCancelPending_KeepsOrientation(t *testing.T) {
	s := sched.New(epoch)
	c := newTestController(s)
	c.Toggle()

	c.ScheduleFaceSide(core.White)
	c.CancelPending()
	s.Advance(epoch.Add(time.Second))

	assert.Equal(t, core.BlackBottom, c.Current())
	assert.False(t, c.FlipPending())
}
