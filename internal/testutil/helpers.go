package testutil

import (
	"math/rand"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// NewTestRNG creates a deterministic random number generator for tests
func NewTestRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NopLogger returns a no-op logger for tests
func NopLogger() zerolog.Logger {
	return zerolog.Nop()
}

// AssertPanic asserts that the given function panics
func AssertPanic(t *testing.T, f func(), msgAndArgs ...interface{}) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Expected panic but none occurred: %v", msgAndArgs)
		}
	}()
	f()
}

// Epoch is the fixed start time used by fake clocks
var Epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// FakeClock is a manually advanced time source
type FakeClock struct {
	now time.Time
}

// NewFakeClock returns a clock stopped at Epoch
func NewFakeClock() *FakeClock {
	return &FakeClock{now: Epoch}
}

// Now returns the clock's current time
func (c *FakeClock) Now() time.Time {
	return c.now
}

// Add moves the clock forward by d and returns the new time
func (c *FakeClock) Add(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}
