package core

import "github.com/lixenwraith/codedraw/vmath"

// Line is one typeable line of code
type Line struct {
	Text   string
	Points int // Bonus added to the line completion score
}

// Shape is one traceable target polyline
type Shape struct {
	Name      string
	Points    []vmath.Vec2
	Tolerance float64 // Overrides the tracing accuracy threshold when positive
}
