package engine

import (
	"time"

	"github.com/lixenwraith/codedraw/config"
	"github.com/lixenwraith/codedraw/core"
)

// Pool is the shared resource state both engines mutate: two decaying gauges, score and game over
// Single writer, only touched from the tick goroutine
type Pool struct {
	gauges    [core.GaugeCount]float64
	maxGauge  float64
	drainRate float64
	score     int
	gameOver  bool
	emptied   core.Gauge
}

// NewPool returns a pool with both gauges full
func NewPool(cfg config.GaugeConfig) *Pool {
	p := &Pool{
		maxGauge:  cfg.Max,
		drainRate: cfg.DrainRate,
	}
	for i := range p.gauges {
		p.gauges[i] = cfg.Max
	}
	return p
}

// Decay drains both gauges by drainRate*elapsed
// Returns true if this call ended the game
func (p *Pool) Decay(elapsed time.Duration) bool {
	if p.gameOver {
		return false
	}
	d := p.drainRate * elapsed.Seconds()
	for i := range p.gauges {
		p.gauges[i] -= d
	}
	return p.CheckGameOver()
}

// AdjustGauge adds a signed delta, clamped above at max and unbounded below
// Returns true if this call ended the game
func (p *Pool) AdjustGauge(g core.Gauge, delta float64) bool {
	if p.gameOver || g < 0 || g >= core.GaugeCount {
		return false
	}
	v := p.gauges[g] + delta
	if v > p.maxGauge {
		v = p.maxGauge
	}
	p.gauges[g] = v
	return p.CheckGameOver()
}

// AddScore adds a signed delta, score is unbounded in both directions
func (p *Pool) AddScore(delta int) {
	if p.gameOver {
		return
	}
	p.score += delta
}

// CheckGameOver latches game over when either gauge is at or below zero
// Reports whether this call made the transition
func (p *Pool) CheckGameOver() bool {
	if p.gameOver {
		return false
	}
	for i, v := range p.gauges {
		if v <= 0 {
			p.gameOver = true
			p.emptied = core.Gauge(i)
			return true
		}
	}
	return false
}

func (p *Pool) Gauge(g core.Gauge) float64 {
	if g < 0 || g >= core.GaugeCount {
		return 0
	}
	return p.gauges[g]
}

func (p *Pool) MaxGauge() float64 { return p.maxGauge }

func (p *Pool) Score() int { return p.score }

func (p *Pool) IsGameOver() bool { return p.gameOver }

// Emptied returns the first gauge found empty, only meaningful after game over
func (p *Pool) Emptied() core.Gauge { return p.emptied }
