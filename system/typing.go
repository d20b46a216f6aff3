package system

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/codedraw/config"
	"github.com/lixenwraith/codedraw/core"
	"github.com/lixenwraith/codedraw/engine"
	"github.com/lixenwraith/codedraw/event"
	"github.com/lixenwraith/codedraw/vmath"
)

// TypingSystem drives the coding gauge from keystrokes against a target line
// States: AwaitingLine -> Typing -> (line complete) -> Typing, AwaitingLine only while content is missing
type TypingSystem struct {
	cfg   config.TypingConfig
	lines LineSupplier
	prog  *Progression
	sess  *engine.Session

	state   core.TypingState
	target  []rune
	preview []rune
	bonus   int // Points of the target line
	pending *core.Line
	cursor  int

	flashing bool

	statCorrect   *atomic.Int64
	statErrors    *atomic.Int64
	statLines     *atomic.Int64
	statMaxCombo  *atomic.Int64
	statNoContent *atomic.Int64
}

// NewTypingSystem creates a typing system, Reset binds it to a session before use
func NewTypingSystem(cfg config.TypingConfig, lines LineSupplier, rng *vmath.FastRand) *TypingSystem {
	return &TypingSystem{
		cfg:   cfg,
		lines: lines,
		prog:  NewComboProgression(cfg.Promotion, rng),
	}
}

func (s *TypingSystem) Name() string {
	return "typing"
}

func (s *TypingSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventCharacterTyped,
	}
}

// Reset binds to a new session and loads the first line and preview
func (s *TypingSystem) Reset(sess *engine.Session) {
	s.sess = sess
	s.prog.Reset()
	s.state = core.TypingAwaitingLine
	s.target = nil
	s.preview = nil
	s.pending = nil
	s.bonus = 0
	s.cursor = 0
	s.flashing = false

	s.statCorrect = sess.Status.Ints.Get("typing.correct")
	s.statErrors = sess.Status.Ints.Get("typing.errors")
	s.statLines = sess.Status.Ints.Get("typing.lines")
	s.statMaxCombo = sess.Status.Ints.Get("typing.max_combo")
	s.statNoContent = sess.Status.Ints.Get("typing.no_content")
	s.statCorrect.Store(0)
	s.statErrors.Store(0)
	s.statLines.Store(0)
	s.statMaxCombo.Store(0)
	s.statNoContent.Store(0)

	_ = s.advanceLine()
}

func (s *TypingSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type != event.EventCharacterTyped {
		return
	}
	payload, ok := ev.Payload.(*event.CharacterTypedPayload)
	if !ok {
		return
	}
	_ = s.Type(payload.Char)
}

// Type processes one keystroke
// Returns ErrNoContent when no line could be loaded, the keystroke is then ignored
func (s *TypingSystem) Type(r rune) error {
	if s.sess == nil || !s.sess.Active() {
		return nil
	}

	if s.state == core.TypingAwaitingLine {
		// Retry the supplier, the keystroke itself does not count
		return s.advanceLine()
	}

	if r == s.target[s.cursor] {
		s.handleCorrect()
	} else {
		s.handleMistype(r)
	}
	return nil
}

func (s *TypingSystem) handleCorrect() {
	pool := s.sess.Pool

	s.cursor++
	s.prog.Success()
	combo := s.prog.Combo()

	s.statCorrect.Add(1)
	if int64(combo) > s.statMaxCombo.Load() {
		s.statMaxCombo.Store(int64(combo))
	}

	pool.AddScore(s.cfg.ScorePerChar * (1 + combo/10))
	pool.AdjustGauge(core.GaugeCoding, s.cfg.CharGaugeBonus*(1+float64(combo)*s.cfg.ComboGaugeScale))

	if s.cursor >= len(s.target) {
		s.completeLine()
	}
}

// handleMistype breaks the combo and applies both penalties once
// Score goes first so a gauge penalty that ends the game still records it
func (s *TypingSystem) handleMistype(r rune) {
	pool := s.sess.Pool
	expected := s.target[s.cursor]

	s.prog.Failure()
	s.statErrors.Add(1)

	pool.AddScore(-s.cfg.MistypeScorePenalty)
	pool.AdjustGauge(core.GaugeCoding, -s.cfg.MistypeGaugePenalty)

	// Overlapping flashes are dropped, not queued
	started := false
	if !s.flashing {
		s.flashing = true
		started = true
		s.sess.Scheduler.After(s.cfg.FlashDuration, func() {
			s.flashing = false
		})
	}

	s.sess.Emit(event.EventMistype, &event.MistypePayload{
		Expected: expected,
		Got:      r,
		Flash:    started,
	})
}

func (s *TypingSystem) completeLine() {
	pool := s.sess.Pool
	combo := s.prog.Combo()
	line := string(s.target)

	award := s.cfg.LineCompleteScore*(1+combo/10) + s.bonus
	pool.AddScore(award)
	s.statLines.Add(1)

	if s.prog.CheckPromotion() {
		// Preview was drawn from the old tier
		s.pending = nil
		log.Printf("typing promoted to %s at combo %d, next threshold %.1f", s.prog.Tier(), combo, s.prog.Threshold())
		s.sess.Emit(event.EventTierPromoted, &event.TierPromotedPayload{Engine: s.Name(), Tier: s.prog.Tier()})
	}

	s.sess.Emit(event.EventLineComplete, &event.LineCompletePayload{
		Line:  line,
		Combo: combo,
		Score: award,
	})

	_ = s.advanceLine()
}

// advanceLine promotes the preview to target and fetches a new preview
// With no preview and an empty supplier the system parks in AwaitingLine
func (s *TypingSystem) advanceLine() error {
	tier := s.prog.Tier()
	s.cursor = 0

	next := s.pending
	s.pending = nil
	if next == nil {
		if l, ok := s.fetch(tier); ok {
			next = &l
		}
	}
	if next == nil {
		s.state = core.TypingAwaitingLine
		s.target = nil
		s.preview = nil
		s.statNoContent.Add(1)
		log.Printf("typing: no content for tier %s", tier)
		s.sess.Emit(event.EventNoContent, &event.NoContentPayload{Tier: tier})
		return ErrNoContent
	}

	s.target = []rune(next.Text)
	s.bonus = next.Points
	s.state = core.TypingActive

	s.preview = nil
	if l, ok := s.fetch(tier); ok {
		s.pending = &l
		s.preview = []rune(l.Text)
	}
	return nil
}

// fetch asks the supplier for a non-empty line
func (s *TypingSystem) fetch(tier core.Tier) (core.Line, bool) {
	if s.lines == nil {
		return core.Line{}, false
	}
	l, ok := s.lines.NextLine(tier)
	if !ok || l.Text == "" {
		return core.Line{}, false
	}
	return l, true
}

// Present fills the typing view
func (s *TypingSystem) Present(snap *engine.Snapshot) {
	v := &snap.Typing
	v.ProgressView = s.prog.View()
	v.State = s.state
	v.Target = append([]rune(nil), s.target...)
	v.Preview = append([]rune(nil), s.preview...)
	v.Cursor = s.cursor
	v.Flash = s.flashing
}

// Progression exposes combo and tier state
func (s *TypingSystem) Progression() *Progression { return s.prog }

// State returns the current state machine position
func (s *TypingSystem) State() core.TypingState { return s.state }

// Cursor returns the index of the next expected rune
func (s *TypingSystem) Cursor() int { return s.cursor }

// Target returns the current target line
func (s *TypingSystem) Target() string { return string(s.target) }

// Preview returns the line that follows the target
func (s *TypingSystem) Preview() string { return string(s.preview) }

// Flashing reports whether the error flash is on
func (s *TypingSystem) Flashing() bool { return s.flashing }
