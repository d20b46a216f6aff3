package engine

import (
	"time"

	"github.com/lixenwraith/codedraw/core"
	"github.com/lixenwraith/codedraw/event"
	"github.com/lixenwraith/codedraw/vmath"
)

// ProgressView is the combo and tier state of one engine
type ProgressView struct {
	Combo     int
	MaxCombo  int
	Tier      core.Tier
	Threshold float64
	Streak    int
}

// TypingView is what a frontend needs to draw the typing panel
type TypingView struct {
	ProgressView
	State   core.TypingState
	Target  []rune
	Preview []rune
	Cursor  int
	Flash   bool
}

// TracingView is what a frontend needs to draw the tracing panel
type TracingView struct {
	ProgressView
	State        core.TracingState
	Guide        []vmath.Vec2
	Player       []vmath.Vec2
	LastAccuracy float64
	ShowAccuracy bool
}

// Snapshot is the per-tick presentation state published to sinks
// Slices are owned by the snapshot, sinks may keep them until the next Present
type Snapshot struct {
	Tick      uint64
	SessionID string
	Elapsed   time.Duration
	Paused    bool

	Coding   float64
	Drawing  float64
	MaxGauge float64
	Score    int
	GameOver bool

	Typing  TypingView
	Tracing TracingView

	// Cues are the discrete events raised since the previous snapshot
	Cues []event.GameEvent
}

// HasCue reports whether a cue of the given type is in the snapshot
func (s *Snapshot) HasCue(et event.EventType) bool {
	for _, c := range s.Cues {
		if c.Type == et {
			return true
		}
	}
	return false
}

// Sink consumes snapshots, renderer and audio player implement it
// Present runs on the tick goroutine and must not block
type Sink interface {
	Present(snap *Snapshot)
}

// Presenter is implemented by systems that contribute to the snapshot
type Presenter interface {
	Present(snap *Snapshot)
}
