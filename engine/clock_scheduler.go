package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/codedraw/core"
)

// Ticker is the per-frame callback driven by the scheduler
type Ticker interface {
	Tick(dt time.Duration)
}

// ClockScheduler drives the game on a fixed tick from a dedicated goroutine
// It is the single caller of Tick, game time deltas come from the pausable clock
type ClockScheduler struct {
	target Ticker
	clock  *PausableClock

	tickInterval     time.Duration
	lastGameTickTime time.Time // Last tick in game time
	nextTickDeadline time.Time // Next tick deadline for drift correction (real time)

	tickCount atomic.Uint64

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewClockScheduler creates a scheduler that calls target.Tick every tickInterval
func NewClockScheduler(target Ticker, clock *PausableClock, tickInterval time.Duration) *ClockScheduler {
	return &ClockScheduler{
		target:       target,
		clock:        clock,
		tickInterval: tickInterval,
		stopChan:     make(chan struct{}),
	}
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		// Use core.Go for safe execution with centralized crash handling
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop and waits for the in-flight tick
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		if cs.running.CompareAndSwap(true, false) {
			close(cs.stopChan)
			cs.wg.Wait()
		}
	})
}

// TickCount returns the number of ticks run so far
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// schedulerLoop sleeps until the next deadline, then ticks with the game time elapsed since the last tick
func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	cs.lastGameTickTime = cs.clock.Now()
	cs.nextTickDeadline = time.Now().Add(cs.tickInterval)

	timer := time.NewTimer(cs.tickInterval)
	defer timer.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		case <-timer.C:
		}

		cs.processTick()

		now := time.Now()
		cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)
		// Skip missed deadlines instead of bursting
		if now.Sub(cs.nextTickDeadline) > cs.tickInterval*2 {
			cs.nextTickDeadline = now.Add(cs.tickInterval)
		}

		sleep := cs.nextTickDeadline.Sub(now)
		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
	}
}

// processTick executes one clock cycle
func (cs *ClockScheduler) processTick() {
	gameNow := cs.clock.Now()
	dt := gameNow.Sub(cs.lastGameTickTime)
	cs.lastGameTickTime = gameNow
	if dt < 0 {
		dt = 0
	}

	cs.target.Tick(dt)
	cs.tickCount.Add(1)
}
