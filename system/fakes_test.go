package system

import (
	"github.com/lixenwraith/codedraw/config"
	"github.com/lixenwraith/codedraw/core"
	"github.com/lixenwraith/codedraw/engine"
	"github.com/lixenwraith/codedraw/event"
	"github.com/lixenwraith/codedraw/vmath"
)

// fakeLines serves lines in order and records requested tiers
type fakeLines struct {
	lines []core.Line
	next  int
	tiers []core.Tier
}

func newFakeLines(texts ...string) *fakeLines {
	f := &fakeLines{}
	for _, t := range texts {
		f.lines = append(f.lines, core.Line{Text: t})
	}
	return f
}

func (f *fakeLines) NextLine(tier core.Tier) (core.Line, bool) {
	f.tiers = append(f.tiers, tier)
	if f.next >= len(f.lines) {
		return core.Line{}, false
	}
	l := f.lines[f.next]
	f.next++
	return l, true
}

// repeatLines serves the same line forever
type repeatLines struct {
	line  core.Line
	calls int
}

func (r *repeatLines) NextLine(core.Tier) (core.Line, bool) {
	r.calls++
	return r.line, true
}

// tierLines serves one fixed line per tier
type tierLines struct {
	texts [core.TierCount]string
}

func (f *tierLines) NextLine(tier core.Tier) (core.Line, bool) {
	return core.Line{Text: f.texts[tier]}, true
}

// fakeShapes serves one shape forever and counts requests
type fakeShapes struct {
	shape core.Shape
	empty bool
	calls int
}

func (f *fakeShapes) NextShape(core.Tier) (core.Shape, bool) {
	f.calls++
	if f.empty {
		return core.Shape{}, false
	}
	return f.shape, true
}

func lineShape() core.Shape {
	return core.Shape{Name: "bar", Points: []vmath.Vec2{vmath.V2(0, 0), vmath.V2(10, 0)}}
}

func newTestSession(cfg *config.Config) *engine.Session {
	return engine.NewSession("test", cfg.Gauge, nil)
}

// drain returns the types of the cues raised since the last drain
func drain(sess *engine.Session) []event.EventType {
	cues := sess.DrainCues()
	types := make([]event.EventType, 0, len(cues))
	for _, c := range cues {
		types = append(types, c.Type)
	}
	return types
}

func hasType(types []event.EventType, et event.EventType) bool {
	for _, t := range types {
		if t == et {
			return true
		}
	}
	return false
}
