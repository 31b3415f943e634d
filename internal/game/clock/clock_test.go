package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mitchelldurbincs/BaoChess/internal/game/core"
)

func TestNew_StartsAtAllowance(t *testing.T) {
	c := New(600)
	assert.Equal(t, TimerState{White: 600, Black: 600}, c.State())
	assert.Equal(t, 600, c.Allowance())

	c = New(0)
	assert.Equal(t, DefaultAllowance, c.Remaining(core.White))
}

func TestTick_DecrementsExactlyOneSide(t *testing.T) {
	c := New(10)

	before := c.State()
	res := c.Tick(core.Black)
	after := c.State()

	assert.False(t, res.Expired)
	assert.Equal(t, core.Black, res.Side)
	assert.Equal(t, before.White, after.White)
	assert.Equal(t, before.Black-1, after.Black)
	assert.Equal(t, before.Total()-1, after.Total())
}

func TestTick_ExhaustionReportsExpiryWithoutGoingNegative(t *testing.T) {
	c := New(600)

	for i := 0; i < 600; i++ {
		res := c.Tick(core.White)
		assert.False(t, res.Expired, "tick %d", i+1)
	}
	assert.Equal(t, 0, c.Remaining(core.White))

	res := c.Tick(core.White)
	assert.True(t, res.Expired)
	assert.Equal(t, core.White, res.Side)
	assert.Equal(t, 0, c.Remaining(core.White))
	assert.Equal(t, 600, c.Remaining(core.Black))
}

func TestReset_RestoresAllowance(t *testing.T) {
	c := New(5)
	c.Tick(core.White)
	c.Tick(core.Black)

	c.Reset(300)

	assert.Equal(t, TimerState{White: 300, Black: 300}, c.State())
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{600, "10:00"},
		{599, "09:59"},
		{61, "01:01"},
		{9, "00:09"},
		{0, "00:00"},
		{-4, "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatSeconds(tt.seconds))
		})
	}
}

func TestIsLow(t *testing.T) {
	assert.True(t, IsLow(29))
	assert.True(t, IsLow(0))
	assert.False(t, IsLow(30))
	assert.False(t, IsLow(600))
}
