package system

import (
	"log"
	"math"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/codedraw/config"
	"github.com/lixenwraith/codedraw/core"
	"github.com/lixenwraith/codedraw/engine"
	"github.com/lixenwraith/codedraw/event"
	"github.com/lixenwraith/codedraw/status"
	"github.com/lixenwraith/codedraw/vmath"
)

// TracingSystem drives the drawing gauge from pointer samples against a target polyline
// States: Idle -> Drawing (pointer down) -> Scoring (valid pointer up, display hold) -> Idle
type TracingSystem struct {
	cfg    config.TracingConfig
	shapes ShapeSupplier
	prog   *Progression
	sess   *engine.Session

	state  core.TracingState
	target core.Shape

	// Active attempt
	points []vmath.Vec2
	start  time.Duration // Game time of pointer down
	length float64

	lastAccuracy float64
	showAccuracy bool

	statAttempts  *atomic.Int64
	statDiscarded *atomic.Int64
	statShapes    *atomic.Int64
	statMaxCombo  *atomic.Int64
	statAccuracy  *status.AtomicFloat
}

// NewTracingSystem creates a tracing system, Reset binds it to a session before use
func NewTracingSystem(cfg config.TracingConfig, shapes ShapeSupplier, rng *vmath.FastRand) *TracingSystem {
	return &TracingSystem{
		cfg:    cfg,
		shapes: shapes,
		prog:   NewStreakProgression(cfg.Promotion, cfg.ShapesForPromotion, rng),
	}
}

func (s *TracingSystem) Name() string {
	return "tracing"
}

func (s *TracingSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventPointer,
	}
}

// Reset binds to a new session and loads the first target
func (s *TracingSystem) Reset(sess *engine.Session) {
	s.sess = sess
	s.prog.Reset()
	s.state = core.TracingIdle
	s.points = nil
	s.length = 0
	s.start = 0
	s.lastAccuracy = 0
	s.showAccuracy = false

	s.statAttempts = sess.Status.Ints.Get("tracing.attempts")
	s.statDiscarded = sess.Status.Ints.Get("tracing.discarded")
	s.statShapes = sess.Status.Ints.Get("tracing.shapes")
	s.statMaxCombo = sess.Status.Ints.Get("tracing.max_combo")
	s.statAccuracy = sess.Status.Floats.Get("tracing.accuracy")
	s.statAttempts.Store(0)
	s.statDiscarded.Store(0)
	s.statShapes.Store(0)
	s.statMaxCombo.Store(0)
	s.statAccuracy.Set(0)

	s.loadShape()
}

func (s *TracingSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type != event.EventPointer {
		return
	}
	payload, ok := ev.Payload.(*event.PointerPayload)
	if !ok {
		return
	}

	switch payload.Kind {
	case event.PointerDown:
		s.PointerDown(payload.Pos)
	case event.PointerMove:
		s.PointerMove(payload.Pos)
	case event.PointerUp:
		_ = s.PointerUp(payload.Pos)
	}
}

// PointerDown starts an attempt from Idle, ignored in any other state
func (s *TracingSystem) PointerDown(pos vmath.Vec2) {
	if s.sess == nil || !s.sess.Active() || s.state != core.TracingIdle {
		return
	}
	s.state = core.TracingDrawing
	s.points = append(s.points[:0], pos)
	s.length = 0
	s.start = s.sess.Scheduler.Now()
	s.showAccuracy = false
}

// PointerMove records a debounced sample and applies the live off-path penalty
func (s *TracingSystem) PointerMove(pos vmath.Vec2) {
	if s.sess == nil || !s.sess.Active() || s.state != core.TracingDrawing {
		return
	}

	last := s.points[len(s.points)-1]
	step := vmath.V2Dist(last, pos)
	if step < s.cfg.MinPointDistance {
		return
	}
	s.points = append(s.points, pos)
	s.length += step

	// Degenerate targets give no live feedback
	if d, ok := vmath.NearestSegmentDistance(pos, s.target.Points); ok && d > s.tolerance() {
		s.sess.Pool.AdjustGauge(core.GaugeDrawing, -s.cfg.OffPathPenalty)
	}
}

// PointerUp finalizes the attempt
// Returns ErrNoTargetShape when the target cannot be scored
func (s *TracingSystem) PointerUp(pos vmath.Vec2) error {
	if s.sess == nil || !s.sess.Active() || s.state != core.TracingDrawing {
		return nil
	}
	// The release position is the last sample of the stroke
	s.PointerMove(pos)
	if !s.sess.Active() {
		return nil
	}

	s.statAttempts.Add(1)
	duration := s.sess.Scheduler.Now() - s.start

	// Validity gate, trivial taps never touch score or gauge
	if duration < s.cfg.MinDrawTime || s.length < s.cfg.MinDrawLength {
		s.prog.ResetCombo()
		s.statDiscarded.Add(1)
		s.sess.Emit(event.EventAttemptDiscarded, &event.AttemptDiscardedPayload{
			Duration: duration,
			Length:   s.length,
		})
		s.clearAttempt()
		return nil
	}

	if len(s.target.Points) < 2 {
		s.sess.Emit(event.EventNoTargetShape, &event.NoContentPayload{Tier: s.prog.Tier()})
		s.clearAttempt()
		s.loadShape()
		return ErrNoTargetShape
	}

	mean, _ := vmath.MeanNearestDistance(s.points, s.target.Points)
	accuracy := Accuracy(mean, s.tolerance())
	s.score(accuracy)
	return nil
}

// score applies the outcome of a valid attempt and holds it on screen
func (s *TracingSystem) score(accuracy float64) {
	pool := s.sess.Pool

	success, promoted := s.prog.RecordShape(accuracy)
	combo := s.prog.Combo()

	award := int(math.Round(s.cfg.BaseScore * accuracy * (1 + float64(combo)*s.cfg.ComboScoreMultiplier)))
	bonus := accuracy*s.cfg.AccuracyGaugeBonus + float64(combo)*s.cfg.ComboGaugeStep
	pool.AddScore(award)
	pool.AdjustGauge(core.GaugeDrawing, bonus)

	s.statShapes.Add(1)
	s.statAccuracy.Set(accuracy)
	if int64(combo) > s.statMaxCombo.Load() {
		s.statMaxCombo.Store(int64(combo))
	}

	s.lastAccuracy = accuracy
	s.showAccuracy = true
	s.state = core.TracingScoring

	s.sess.Emit(event.EventShapeComplete, &event.ShapeCompletePayload{
		Accuracy: accuracy,
		Success:  success,
		Combo:    combo,
		Score:    award,
		Gauge:    bonus,
	})
	if promoted {
		log.Printf("tracing promoted to %s, next bar %.2f", s.prog.Tier(), s.prog.Threshold())
		s.sess.Emit(event.EventTierPromoted, &event.TierPromotedPayload{Engine: s.Name(), Tier: s.prog.Tier()})
	}

	s.sess.Scheduler.After(s.cfg.DisplayHold, func() {
		s.clearAttempt()
		s.showAccuracy = false
		s.loadShape()
	})
}

// clearAttempt drops the stroke and returns to Idle
func (s *TracingSystem) clearAttempt() {
	s.state = core.TracingIdle
	s.points = s.points[:0]
	s.length = 0
}

// loadShape replaces the target, an exhausted supplier leaves an empty target
func (s *TracingSystem) loadShape() {
	if s.shapes == nil {
		s.target = core.Shape{}
		return
	}
	shape, ok := s.shapes.NextShape(s.prog.Tier())
	if !ok {
		log.Printf("tracing: no shape for tier %s", s.prog.Tier())
		s.target = core.Shape{}
		return
	}
	s.target = shape
}

// tolerance is the per-shape threshold when set, the configured one otherwise
func (s *TracingSystem) tolerance() float64 {
	if s.target.Tolerance > 0 {
		return s.target.Tolerance
	}
	return s.cfg.AccuracyThreshold
}

// Accuracy maps a mean nearest-segment distance to [0, 1]
// A zero threshold only accepts an exact trace
func Accuracy(mean, threshold float64) float64 {
	if threshold <= 0 {
		if mean == 0 {
			return 1
		}
		return 0
	}
	return 1 - vmath.Clamp01(mean/threshold)
}

// Present fills the tracing view
func (s *TracingSystem) Present(snap *engine.Snapshot) {
	v := &snap.Tracing
	v.ProgressView = s.prog.View()
	v.State = s.state
	v.Guide = append([]vmath.Vec2(nil), s.target.Points...)
	v.Player = append([]vmath.Vec2(nil), s.points...)
	v.LastAccuracy = s.lastAccuracy
	v.ShowAccuracy = s.showAccuracy
}

// Progression exposes combo, tier and streak state
func (s *TracingSystem) Progression() *Progression { return s.prog }

// State returns the current state machine position
func (s *TracingSystem) State() core.TracingState { return s.state }

// Target returns the current target shape
func (s *TracingSystem) Target() core.Shape { return s.target }

// Points returns the recorded samples of the active attempt
func (s *TracingSystem) Points() []vmath.Vec2 { return s.points }

// LastAccuracy returns the accuracy of the last scored attempt and whether it is on display
func (s *TracingSystem) LastAccuracy() (float64, bool) { return s.lastAccuracy, s.showAccuracy }
