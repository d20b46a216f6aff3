package system

import (
	"github.com/lixenwraith/codedraw/config"
	"github.com/lixenwraith/codedraw/core"
	"github.com/lixenwraith/codedraw/engine"
	"github.com/lixenwraith/codedraw/vmath"
)

// ProgressionMode selects what a completed unit is measured against
type ProgressionMode int

const (
	// ComboMode promotes when the running combo reaches the threshold
	ComboMode ProgressionMode = iota
	// StreakMode treats the threshold as an accuracy bar and promotes after enough passing units
	StreakMode
)

// Progression tracks combo and tier for one engine
// Tier only moves up, Hard is terminal and keeps the last rolled threshold
type Progression struct {
	mode               ProgressionMode
	ranges             config.Ranges
	shapesForPromotion int
	rng                *vmath.FastRand

	combo     int
	maxCombo  int
	tier      core.Tier
	threshold float64
	streak    int
}

// NewComboProgression creates a typing-style progression
func NewComboProgression(ranges config.Ranges, rng *vmath.FastRand) *Progression {
	p := &Progression{mode: ComboMode, ranges: ranges, rng: rng}
	p.Reset()
	return p
}

// NewStreakProgression creates a tracing-style progression needing shapes passing units per promotion
func NewStreakProgression(ranges config.Ranges, shapes int, rng *vmath.FastRand) *Progression {
	p := &Progression{mode: StreakMode, ranges: ranges, shapesForPromotion: shapes, rng: rng}
	p.Reset()
	return p
}

// Reset returns to Easy with a fresh threshold, called at session start
func (p *Progression) Reset() {
	p.combo = 0
	p.maxCombo = 0
	p.streak = 0
	p.tier = core.TierEasy
	p.roll()
}

// Success extends the combo
func (p *Progression) Success() {
	p.combo++
	if p.combo > p.maxCombo {
		p.maxCombo = p.combo
	}
}

// Failure breaks the combo, in streak mode the streak also backslides by one
func (p *Progression) Failure() {
	p.combo = 0
	if p.mode == StreakMode && p.streak > 0 {
		p.streak--
	}
}

// ResetCombo breaks the combo without touching the streak
func (p *Progression) ResetCombo() {
	p.combo = 0
}

// CheckPromotion runs on a completed unit and advances the tier when the metric meets the threshold
func (p *Progression) CheckPromotion() bool {
	if p.tier >= core.TierHard {
		return false
	}

	switch p.mode {
	case ComboMode:
		if float64(p.combo) < p.threshold {
			return false
		}
	case StreakMode:
		if p.streak < p.shapesForPromotion {
			return false
		}
		p.streak = 0
	}

	p.tier = p.tier.Next()
	p.roll()
	return true
}

// RecordShape scores one completed unit against the accuracy bar, streak mode only
func (p *Progression) RecordShape(accuracy float64) (success, promoted bool) {
	if accuracy >= p.threshold {
		p.Success()
		p.streak++
		return true, p.CheckPromotion()
	}
	p.Failure()
	return false, false
}

// roll draws the threshold for the current tier, no-op at Hard
func (p *Progression) roll() {
	if p.tier >= core.TierHard {
		return
	}
	r := p.ranges[p.tier]
	p.threshold = p.rng.Range(r.Min, r.Max)
}

func (p *Progression) Combo() int         { return p.combo }
func (p *Progression) MaxCombo() int      { return p.maxCombo }
func (p *Progression) Tier() core.Tier    { return p.tier }
func (p *Progression) Threshold() float64 { return p.threshold }
func (p *Progression) Streak() int        { return p.streak }

// View exports the state for the snapshot
func (p *Progression) View() engine.ProgressView {
	return engine.ProgressView{
		Combo:     p.combo,
		MaxCombo:  p.maxCombo,
		Tier:      p.tier,
		Threshold: p.threshold,
		Streak:    p.streak,
	}
}
