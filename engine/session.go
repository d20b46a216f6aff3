package engine

import (
	"github.com/lixenwraith/codedraw/config"
	"github.com/lixenwraith/codedraw/event"
	"github.com/lixenwraith/codedraw/status"
)

// Session bundles the per-session state injected into systems on reset
type Session struct {
	ID        string
	Pool      *Pool
	Scheduler *Scheduler
	Status    *status.Registry

	cues []event.GameEvent
	tick uint64
}

// NewSession creates a fresh pool and scheduler, continuations no-op once the pool is game over
func NewSession(id string, gauge config.GaugeConfig, reg *status.Registry) *Session {
	pool := NewPool(gauge)
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Session{
		ID:        id,
		Pool:      pool,
		Scheduler: NewScheduler(pool.IsGameOver),
		Status:    reg,
	}
}

// Emit records a cue for the next snapshot
func (s *Session) Emit(et event.EventType, payload any) {
	s.cues = append(s.cues, event.GameEvent{Type: et, Payload: payload, Tick: s.tick})
}

// Active reports whether input-driven mutation is still allowed
func (s *Session) Active() bool {
	return !s.Pool.IsGameOver()
}

// DrainCues hands the pending cues over and clears them
func (s *Session) DrainCues() []event.GameEvent {
	c := s.cues
	s.cues = nil
	return c
}
