// Package sched runs delayed and repeating callbacks on the caller's thread.
// Nothing fires until Advance is called, so callbacks never race with the
// frame loop that drives them.
package sched

import (
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Handle identifies a scheduled callback
type Handle struct {
	id       uint64
	due      time.Time
	interval time.Duration
	fn       func(now time.Time)
	name     string
	canceled bool
	owner    *Scheduler
}

// Cancel stops the callback from firing again. Safe on a nil handle and
// safe to call more than once.
func (h *Handle) Cancel() {
	if h == nil || h.canceled {
		return
	}
	h.canceled = true
	if h.owner != nil {
		h.owner.remove(h)
	}
}

// Active reports whether the callback is still pending
func (h *Handle) Active() bool {
	return h != nil && !h.canceled
}

// Scheduler holds pending callbacks ordered by due time
type Scheduler struct {
	now     time.Time
	nextID  uint64
	pending []*Handle
	logger  zerolog.Logger
}

// New returns a scheduler whose clock starts at start
func New(start time.Time) *Scheduler {
	return &Scheduler{
		now:    start,
		logger: log.With().Str("component", "scheduler").Logger(),
	}
}

// SetLogger replaces the scheduler's logger
func (s *Scheduler) SetLogger(logger zerolog.Logger) {
	s.logger = logger
}

// Now returns the scheduler's current time
func (s *Scheduler) Now() time.Time {
	return s.now
}

// Pending returns the number of callbacks waiting to fire
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// AfterFunc runs fn once, delay after the current time
func (s *Scheduler) AfterFunc(name string, delay time.Duration, fn func(now time.Time)) *Handle {
	return s.add(name, delay, 0, fn)
}

// Every runs fn each interval until the handle is canceled
func (s *Scheduler) Every(name string, interval time.Duration, fn func(now time.Time)) *Handle {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return s.add(name, interval, interval, fn)
}

func (s *Scheduler) add(name string, delay, interval time.Duration, fn func(time.Time)) *Handle {
	if delay < 0 {
		delay = 0
	}
	s.nextID++
	h := &Handle{
		id:       s.nextID,
		due:      s.now.Add(delay),
		interval: interval,
		fn:       fn,
		name:     name,
		owner:    s,
	}
	s.insert(h)
	s.logger.Debug().Str("task", name).Dur("delay", delay).Dur("interval", interval).Msg("Scheduled")
	return h
}

// Advance moves the clock to now and fires every callback that came due, in
// due order. A repeating callback that fell several intervals behind fires
// once per missed interval. Callbacks may schedule or cancel other callbacks.
func (s *Scheduler) Advance(now time.Time) int {
	if now.Before(s.now) {
		return 0
	}
	fired := 0
	for len(s.pending) > 0 {
		h := s.pending[0]
		if h.due.After(now) {
			break
		}
		s.pending = s.pending[1:]
		s.now = h.due

		if h.interval > 0 {
			h.due = h.due.Add(h.interval)
			s.insert(h)
		} else {
			h.canceled = true
		}
		h.fn(s.now)
		fired++
	}
	s.now = now
	return fired
}

// CancelAll drops every pending callback
func (s *Scheduler) CancelAll() {
	for _, h := range s.pending {
		h.canceled = true
	}
	s.pending = nil
}

func (s *Scheduler) insert(h *Handle) {
	i := sort.Search(len(s.pending), func(i int) bool {
		p := s.pending[i]
		if p.due.Equal(h.due) {
			return p.id > h.id
		}
		return p.due.After(h.due)
	})
	s.pending = append(s.pending, nil)
	copy(s.pending[i+1:], s.pending[i:])
	s.pending[i] = h
}

func (s *Scheduler) remove(h *Handle) {
	for i, p := range s.pending {
		if p == h {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}
