package engine

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/codedraw/config"
	"github.com/lixenwraith/codedraw/core"
	"github.com/lixenwraith/codedraw/event"
	"github.com/lixenwraith/codedraw/status"
)

// System is a gameplay engine driven by routed input and bound to a session on reset
type System interface {
	EventHandler
	Presenter
	Name() string
	// Reset binds the system to a new session and returns it to its start state
	Reset(sess *Session)
}

// Game owns the session and runs the per-tick pipeline
// Tick is only ever called from one goroutine
type Game struct {
	cfg    *config.Config
	queue  *event.EventQueue
	router *EventRouter
	clock  *PausableClock
	status *status.Registry

	systems []System
	sinks   []Sink

	session       *Session
	tick          uint64
	overAnnounced bool
	newID         func() string

	statTicks    *atomic.Int64
	statPaused   *atomic.Bool
	statGameOver *atomic.Bool
	statScore    *atomic.Int64
	statSession  *status.AtomicString
}

// NewGame wires the router to the queue, systems and sinks are added before Start
func NewGame(cfg *config.Config, queue *event.EventQueue, clock *PausableClock, reg *status.Registry) *Game {
	if reg == nil {
		reg = status.NewRegistry()
	}
	if clock == nil {
		clock = NewPausableClock(nil)
	}
	g := &Game{
		cfg:          cfg,
		queue:        queue,
		router:       NewEventRouter(queue),
		clock:        clock,
		status:       reg,
		newID:        uuid.NewString,
		statTicks:    reg.Ints.Get("engine.ticks"),
		statPaused:   reg.Bools.Get("engine.paused"),
		statGameOver: reg.Bools.Get("engine.game_over"),
		statScore:    reg.Ints.Get("engine.score"),
		statSession:  reg.Strings.Get("session.id"),
	}
	g.router.Register(g)
	g.router.SetFilter(g.accept)
	return g
}

// SetIDSource replaces the session id generator
func (g *Game) SetIDSource(fn func() string) {
	g.newID = fn
}

// AddSystem registers a system for routing and presentation
func (g *Game) AddSystem(s System) {
	g.systems = append(g.systems, s)
	g.router.Register(s)
}

// AddSink registers a snapshot consumer
func (g *Game) AddSink(s Sink) {
	g.sinks = append(g.sinks, s)
}

// Start opens the first session
func (g *Game) Start() {
	g.Reset()
}

// Reset discards the current session and binds every system to a fresh one
func (g *Game) Reset() {
	if g.session != nil {
		g.session.Scheduler.Clear()
	}
	g.session = NewSession(g.newID(), g.cfg.Gauge, g.status)
	g.session.tick = g.tick
	g.overAnnounced = false
	g.statSession.Store(g.session.ID)
	g.statGameOver.Store(false)
	g.statScore.Store(0)

	for _, s := range g.systems {
		s.Reset(g.session)
	}
	log.Printf("session %s started", g.session.ID)
}

// Session returns the active session
func (g *Game) Session() *Session { return g.session }

// Clock returns the pausable game clock the scheduler reads
func (g *Game) Clock() *PausableClock { return g.clock }

// Status returns the metrics registry
func (g *Game) Status() *status.Registry { return g.status }

// Paused reports whether game time is frozen
func (g *Game) Paused() bool { return g.clock.IsPaused() }

// Tick runs one frame: route input, fire due continuations, decay, publish
func (g *Game) Tick(dt time.Duration) {
	if g.session == nil {
		g.Reset()
	}
	g.tick++
	g.session.tick = g.tick
	g.statTicks.Add(1)

	g.router.DispatchAll(g.tick)
	g.announceGameOver()

	if g.Paused() {
		dt = 0
	}
	if limit := g.cfg.Engine.MaxTickDelta; limit > 0 && dt > limit {
		dt = limit
	}

	sess := g.session
	sess.Scheduler.Advance(dt)
	sess.Pool.Decay(dt)
	g.announceGameOver()

	g.statScore.Store(int64(sess.Pool.Score()))
	g.publish()
}

// announceGameOver emits the game over cue exactly once per session
func (g *Game) announceGameOver() {
	pool := g.session.Pool
	if !pool.IsGameOver() || g.overAnnounced {
		return
	}
	g.overAnnounced = true
	g.statGameOver.Store(true)
	g.session.Scheduler.Clear()
	g.session.Emit(event.EventGameOver, &event.GameOverPayload{
		Score:     pool.Score(),
		Emptied:   pool.Emptied(),
		SessionID: g.session.ID,
		Elapsed:   g.session.Scheduler.Now(),
	})
	log.Printf("game over: session=%s score=%d emptied=%s elapsed=%s",
		g.session.ID, pool.Score(), pool.Emptied(), g.session.Scheduler.Now().Round(time.Millisecond))
}

// publish builds the snapshot and hands it to every sink
func (g *Game) publish() {
	sess := g.session
	snap := &Snapshot{
		Tick:      g.tick,
		SessionID: sess.ID,
		Elapsed:   sess.Scheduler.Now(),
		Paused:    g.Paused(),
		Coding:    sess.Pool.Gauge(core.GaugeCoding),
		Drawing:   sess.Pool.Gauge(core.GaugeDrawing),
		MaxGauge:  sess.Pool.MaxGauge(),
		Score:     sess.Pool.Score(),
		GameOver:  sess.Pool.IsGameOver(),
	}
	for _, s := range g.systems {
		s.Present(snap)
	}
	snap.Cues = sess.DrainCues()

	for _, sink := range g.sinks {
		sink.Present(snap)
	}
}

// accept drops gameplay input while paused, meta events always pass
func (g *Game) accept(ev event.GameEvent) bool {
	switch ev.Type {
	case event.EventPauseToggle, event.EventGameReset:
		return true
	}
	return !g.Paused()
}

// EventTypes implements EventHandler for meta events
func (g *Game) EventTypes() []event.EventType {
	return []event.EventType{event.EventPauseToggle, event.EventGameReset}
}

// HandleEvent implements EventHandler for meta events
func (g *Game) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventPauseToggle:
		if g.session.Pool.IsGameOver() {
			return
		}
		paused := g.clock.Toggle()
		g.statPaused.Store(paused)
		log.Printf("paused=%t", paused)
	case event.EventGameReset:
		// Restart is only offered once the session has ended
		if !g.session.Pool.IsGameOver() {
			return
		}
		g.clock.Resume()
		g.statPaused.Store(false)
		g.Reset()
	}
}
