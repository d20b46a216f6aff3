package content

import (
	"sync"

	"github.com/lixenwraith/codedraw/core"
	"github.com/lixenwraith/codedraw/vmath"
)

// Supplier hands out random lines and shapes per tier from a Pack
// Consecutive picks from a tier with more than one item never repeat
type Supplier struct {
	mu        sync.Mutex
	pack      *Pack
	rng       *vmath.FastRand
	lastLine  [core.TierCount]int
	lastShape [core.TierCount]int
}

// NewSupplier creates a supplier over pack seeded with seed
func NewSupplier(pack *Pack, seed uint64) *Supplier {
	if pack == nil {
		pack = &Pack{}
	}
	s := &Supplier{pack: pack, rng: vmath.NewFastRand(seed)}
	for t := range s.lastLine {
		s.lastLine[t] = -1
		s.lastShape[t] = -1
	}
	return s
}

// NextLine implements system.LineSupplier
func (s *Supplier) NextLine(tier core.Tier) (core.Line, bool) {
	if !validTier(tier) {
		return core.Line{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.pick(len(s.pack.Lines[tier]), &s.lastLine[tier])
	if !ok {
		return core.Line{}, false
	}
	return s.pack.Lines[tier][idx], true
}

// NextShape implements system.ShapeSupplier, the returned points are a copy
func (s *Supplier) NextShape(tier core.Tier) (core.Shape, bool) {
	if !validTier(tier) {
		return core.Shape{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.pick(len(s.pack.Shapes[tier]), &s.lastShape[tier])
	if !ok {
		return core.Shape{}, false
	}
	shape := s.pack.Shapes[tier][idx]
	shape.Points = append(shape.Points[:0:0], shape.Points...)
	return shape, true
}

func (s *Supplier) pick(n int, last *int) (int, bool) {
	if n == 0 {
		return 0, false
	}
	if n == 1 {
		*last = 0
		return 0, true
	}
	idx := s.rng.Intn(n)
	if idx == *last {
		idx = (idx + 1 + s.rng.Intn(n-1)) % n
	}
	*last = idx
	return idx, true
}

func validTier(t core.Tier) bool {
	return t >= core.TierEasy && t < core.TierCount
}
