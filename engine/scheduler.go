package engine

import (
	"container/heap"
	"time"
)

// Timer is a handle to a scheduled continuation
type Timer struct {
	due       time.Duration
	seq       uint64
	fn        func()
	index     int
	cancelled bool
}

// Cancel prevents the continuation from running, safe to call after it fired
func (t *Timer) Cancel() {
	if t != nil {
		t.cancelled = true
	}
}

// Due returns the game time the timer fires at
func (t *Timer) Due() time.Duration { return t.due }

type timerHeap []*Timer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].due == h[j].due {
		return h[i].seq < h[j].seq
	}
	return h[i].due < h[j].due
}

func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x any) {
	t := x.(*Timer)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}

// Scheduler is a game-time ordered queue of continuations advanced by the tick
// Continuations never block, they fire from Advance on the tick goroutine
// A guard reporting true (game over) turns every due continuation into a no-op
type Scheduler struct {
	now    time.Duration
	seq    uint64
	timers timerHeap
	guard  func() bool
}

// NewScheduler creates a scheduler at game time zero, guard may be nil
func NewScheduler(guard func() bool) *Scheduler {
	return &Scheduler{guard: guard}
}

// After schedules fn to run once delay of game time has elapsed
func (s *Scheduler) After(delay time.Duration, fn func()) *Timer {
	if delay < 0 {
		delay = 0
	}
	s.seq++
	t := &Timer{due: s.now + delay, seq: s.seq, fn: fn}
	heap.Push(&s.timers, t)
	return t
}

// Advance moves game time forward and fires due continuations in due order
// Returns the number of continuations that ran
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt < 0 {
		dt = 0
	}
	target := s.now + dt
	fired := 0

	for len(s.timers) > 0 && s.timers[0].due <= target {
		t := heap.Pop(&s.timers).(*Timer)
		if t.cancelled {
			continue
		}
		// Continuations scheduling follow-ups see their own due time as now
		s.now = t.due
		if s.guard != nil && s.guard() {
			continue
		}
		t.fn()
		fired++
	}

	s.now = target
	return fired
}

// Now returns the accumulated game time
func (s *Scheduler) Now() time.Duration { return s.now }

// Pending returns the number of queued continuations including cancelled ones not yet reaped
func (s *Scheduler) Pending() int { return len(s.timers) }

// Clear drops every pending continuation
func (s *Scheduler) Clear() {
	for _, t := range s.timers {
		t.cancelled = true
	}
	s.timers = s.timers[:0]
}
