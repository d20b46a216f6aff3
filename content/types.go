package content

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/codedraw/core"
	"github.com/lixenwraith/codedraw/vmath"
)

// Pack is the content for every tier
type Pack struct {
	Lines  [core.TierCount][]core.Line
	Shapes [core.TierCount][]core.Shape
}

// Counts returns the number of lines and shapes across all tiers
func (p *Pack) Counts() (lines, shapes int) {
	for t := range p.Lines {
		lines += len(p.Lines[t])
		shapes += len(p.Shapes[t])
	}
	return lines, shapes
}

// Merge appends other's content tier by tier
func (p *Pack) Merge(other *Pack) {
	if other == nil {
		return
	}
	for t := range p.Lines {
		p.Lines[t] = append(p.Lines[t], other.Lines[t]...)
		p.Shapes[t] = append(p.Shapes[t], other.Shapes[t]...)
	}
}

// packFile is the YAML document layout
//
//	lines:
//	  easy: ["x := 1", {text: "return nil", points: 20}]
//	shapes:
//	  easy:
//	    - {name: bar, tolerance: 0.15, points: [[0, 1], [3, 1]]}
type packFile struct {
	Lines  tierSet[lineEntry]  `yaml:"lines"`
	Shapes tierSet[shapeEntry] `yaml:"shapes"`
}

type tierSet[T any] struct {
	Easy   []T `yaml:"easy"`
	Medium []T `yaml:"medium"`
	Hard   []T `yaml:"hard"`
}

func (ts tierSet[T]) byTier() [core.TierCount][]T {
	return [core.TierCount][]T{ts.Easy, ts.Medium, ts.Hard}
}

// lineEntry accepts either a bare string or a mapping with points
type lineEntry struct {
	Text   string `yaml:"text"`
	Points int    `yaml:"points"`
}

func (l *lineEntry) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		l.Text = value.Value
		return nil
	}
	type plain lineEntry
	return value.Decode((*plain)(l))
}

type shapeEntry struct {
	Name      string       `yaml:"name"`
	Tolerance float64      `yaml:"tolerance"`
	Points    [][2]float64 `yaml:"points"`
}

func (s shapeEntry) toShape() core.Shape {
	pts := make([]vmath.Vec2, len(s.Points))
	for i, p := range s.Points {
		pts[i] = vmath.V2(p[0], p[1])
	}
	return core.Shape{Name: s.Name, Points: pts, Tolerance: s.Tolerance}
}

// ShapeError reports a shape rejected at load
type ShapeError struct {
	Tier core.Tier
	Name string
	N    int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("shape %q (%s) has %d points, need at least 2", e.Name, e.Tier, e.N)
}
