package engine

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/codedraw/config"
	"github.com/lixenwraith/codedraw/core"
)

const eps = 1e-9

func newTestPool() *Pool {
	return NewPool(config.GaugeConfig{Max: 10, DrainRate: 0.1})
}

func TestPoolStartsFull(t *testing.T) {
	p := newTestPool()
	if p.Gauge(core.GaugeCoding) != 10 || p.Gauge(core.GaugeDrawing) != 10 {
		t.Errorf("Expected both gauges at 10, got %v / %v", p.Gauge(core.GaugeCoding), p.Gauge(core.GaugeDrawing))
	}
	if p.IsGameOver() {
		t.Error("Expected fresh pool not to be game over")
	}
}

// TestPoolDecayIsExact tests decay subtracts exactly drainRate*t across split calls
func TestPoolDecayIsExact(t *testing.T) {
	p := newTestPool()
	for i := 0; i < 10; i++ {
		p.Decay(500 * time.Millisecond)
	}
	want := 10 - 0.1*5.0
	for _, g := range []core.Gauge{core.GaugeCoding, core.GaugeDrawing} {
		if math.Abs(p.Gauge(g)-want) > eps {
			t.Errorf("Expected %s gauge %v, got %v", g, want, p.Gauge(g))
		}
	}
}

// TestPoolScenarioE tests gauge 0.3 decayed for 5s at 0.1/s ends the game and freezes the pool
func TestPoolScenarioE(t *testing.T) {
	p := newTestPool()
	p.AdjustGauge(core.GaugeCoding, 0.3-10)

	if !p.Decay(5 * time.Second) {
		t.Error("Expected decay to report the game over transition")
	}
	if math.Abs(p.Gauge(core.GaugeCoding)-(-0.2)) > eps {
		t.Errorf("Expected coding gauge -0.2, got %v", p.Gauge(core.GaugeCoding))
	}
	if !p.IsGameOver() || p.Emptied() != core.GaugeCoding {
		t.Errorf("Expected game over by coding gauge, got over=%v emptied=%s", p.IsGameOver(), p.Emptied())
	}

	before := p.Gauge(core.GaugeDrawing)
	if p.AdjustGauge(core.GaugeDrawing, 5) {
		t.Error("Expected no transition after game over")
	}
	p.AddScore(100)
	p.Decay(time.Second)
	if p.Gauge(core.GaugeDrawing) != before {
		t.Errorf("Expected drawing gauge frozen at %v, got %v", before, p.Gauge(core.GaugeDrawing))
	}
	if p.Score() != 0 {
		t.Errorf("Expected score frozen at 0, got %d", p.Score())
	}
	if p.CheckGameOver() {
		t.Error("Expected CheckGameOver to report no second transition")
	}
	if !p.IsGameOver() {
		t.Error("Expected game over to stay latched")
	}
}

func TestPoolAdjustClampsAboveOnly(t *testing.T) {
	p := newTestPool()
	p.AdjustGauge(core.GaugeDrawing, 5)
	if p.Gauge(core.GaugeDrawing) != 10 {
		t.Errorf("Expected clamp at 10, got %v", p.Gauge(core.GaugeDrawing))
	}

	if !p.AdjustGauge(core.GaugeDrawing, -25) {
		t.Error("Expected transition on deep negative adjust")
	}
	if p.Gauge(core.GaugeDrawing) != -15 {
		t.Errorf("Expected unclamped -15, got %v", p.Gauge(core.GaugeDrawing))
	}
}

func TestPoolZeroIsGameOver(t *testing.T) {
	p := newTestPool()
	p.AdjustGauge(core.GaugeCoding, -10)
	if !p.IsGameOver() {
		t.Error("Expected gauge exactly at zero to end the game")
	}
}

func TestPoolScoreMayGoNegative(t *testing.T) {
	p := newTestPool()
	p.AddScore(-50)
	p.AddScore(20)
	if p.Score() != -30 {
		t.Errorf("Expected score -30, got %d", p.Score())
	}
}
