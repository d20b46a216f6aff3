package system

import (
	"testing"

	"github.com/lixenwraith/codedraw/config"
	"github.com/lixenwraith/codedraw/core"
	"github.com/lixenwraith/codedraw/vmath"
)

func TestComboProgressionThresholdWithinRange(t *testing.T) {
	ranges := config.Default().Typing.Promotion
	for seed := uint64(1); seed <= 50; seed++ {
		p := NewComboProgression(ranges, vmath.NewFastRand(seed))
		th := p.Threshold()
		if th < ranges[0].Min || th >= ranges[0].Max {
			t.Fatalf("Seed %d: expected threshold in [%v,%v), got %v", seed, ranges[0].Min, ranges[0].Max, th)
		}
	}
}

func TestProgressionDeterministicForSeed(t *testing.T) {
	ranges := config.Default().Typing.Promotion
	a := NewComboProgression(ranges, vmath.NewFastRand(42))
	b := NewComboProgression(ranges, vmath.NewFastRand(42))
	if a.Threshold() != b.Threshold() {
		t.Errorf("Expected identical thresholds for the same seed, got %v and %v", a.Threshold(), b.Threshold())
	}
}

func TestComboProgressionPromotesOnlyOnCheck(t *testing.T) {
	ranges := config.Ranges{{Min: 3, Max: 3}, {Min: 5, Max: 5}}
	p := NewComboProgression(ranges, vmath.NewFastRand(1))

	for i := 0; i < 10; i++ {
		p.Success()
	}
	if p.Tier() != core.TierEasy {
		t.Fatalf("Expected no promotion without a completed unit, got %s", p.Tier())
	}

	if !p.CheckPromotion() || p.Tier() != core.TierMedium {
		t.Fatalf("Expected promotion to medium, got %s", p.Tier())
	}
	if p.Threshold() != 5 {
		t.Errorf("Expected re-rolled threshold 5, got %v", p.Threshold())
	}
	if !p.CheckPromotion() || p.Tier() != core.TierHard {
		t.Fatalf("Expected promotion to hard, got %s", p.Tier())
	}
	if p.CheckPromotion() {
		t.Error("Expected hard to be terminal")
	}
	if p.Threshold() != 5 {
		t.Errorf("Expected hard to keep the last threshold, got %v", p.Threshold())
	}
}

func TestComboProgressionFailedCheckKeepsThreshold(t *testing.T) {
	p := NewComboProgression(config.Default().Typing.Promotion, vmath.NewFastRand(7))
	th := p.Threshold()
	p.Success()
	if p.CheckPromotion() {
		t.Fatal("Expected combo 1 to miss the threshold")
	}
	if p.Threshold() != th {
		t.Errorf("Expected threshold unchanged after failed check, got %v want %v", p.Threshold(), th)
	}
}

func TestMaxComboTracksHistoricalMax(t *testing.T) {
	p := NewComboProgression(config.Default().Typing.Promotion, vmath.NewFastRand(1))
	outcomes := []bool{true, true, true, false, true, false, true, true, true, true, false}
	want := 0
	run := 0
	for i, ok := range outcomes {
		prev := p.MaxCombo()
		if ok {
			p.Success()
			run++
		} else {
			p.Failure()
			run = 0
		}
		if run > want {
			want = run
		}
		if p.Combo() != run {
			t.Fatalf("Step %d: expected combo %d, got %d", i, run, p.Combo())
		}
		if p.MaxCombo() < prev {
			t.Fatalf("Step %d: maxCombo decreased from %d to %d", i, prev, p.MaxCombo())
		}
	}
	if p.MaxCombo() != want {
		t.Errorf("Expected maxCombo %d, got %d", want, p.MaxCombo())
	}
}

func TestStreakProgressionBackslides(t *testing.T) {
	ranges := config.Ranges{{Min: 0.8, Max: 0.8}, {Min: 0.9, Max: 0.9}}
	p := NewStreakProgression(ranges, 3, vmath.NewFastRand(1))

	p.RecordShape(0.85)
	p.RecordShape(0.85)
	if p.Streak() != 2 || p.Combo() != 2 {
		t.Fatalf("Expected streak 2 combo 2, got %d %d", p.Streak(), p.Combo())
	}

	success, _ := p.RecordShape(0.5)
	if success {
		t.Error("Expected 0.5 to fail the 0.8 bar")
	}
	if p.Streak() != 1 || p.Combo() != 0 {
		t.Errorf("Expected backslide to streak 1 and combo 0, got %d %d", p.Streak(), p.Combo())
	}

	p.RecordShape(0.1)
	p.RecordShape(0.1)
	if p.Streak() != 0 {
		t.Errorf("Expected streak floored at 0, got %d", p.Streak())
	}
}

func TestStreakProgressionPromotes(t *testing.T) {
	ranges := config.Ranges{{Min: 0.8, Max: 0.8}, {Min: 0.9, Max: 0.9}}
	p := NewStreakProgression(ranges, 3, vmath.NewFastRand(1))

	var promoted bool
	for i := 0; i < 3; i++ {
		_, promoted = p.RecordShape(0.8)
	}
	if !promoted || p.Tier() != core.TierMedium {
		t.Fatalf("Expected promotion to medium after 3 passing shapes, got %s", p.Tier())
	}
	if p.Streak() != 0 || p.Threshold() != 0.9 {
		t.Errorf("Expected streak reset and bar 0.9, got %d %v", p.Streak(), p.Threshold())
	}

	// 0.85 now fails the raised bar
	if ok, _ := p.RecordShape(0.85); ok {
		t.Error("Expected 0.85 to fail the 0.9 bar")
	}

	for i := 0; i < 3; i++ {
		p.RecordShape(1)
	}
	if p.Tier() != core.TierHard {
		t.Fatalf("Expected hard, got %s", p.Tier())
	}
	for i := 0; i < 10; i++ {
		if _, promoted := p.RecordShape(1); promoted {
			t.Fatal("Expected no promotion past hard")
		}
	}
	if p.Threshold() != 0.9 {
		t.Errorf("Expected bar to stay at 0.9 on hard, got %v", p.Threshold())
	}
}

func TestResetComboKeepsStreak(t *testing.T) {
	p := NewStreakProgression(config.Ranges{{Min: 0.5, Max: 0.5}, {Min: 0.5, Max: 0.5}}, 3, vmath.NewFastRand(1))
	p.RecordShape(1)
	p.ResetCombo()
	if p.Combo() != 0 || p.Streak() != 1 {
		t.Errorf("Expected combo 0 and streak 1, got %d %d", p.Combo(), p.Streak())
	}
}
