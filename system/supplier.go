package system

import (
	"errors"

	"github.com/lixenwraith/codedraw/core"
)

var (
	// ErrNoContent reports the line supplier had nothing for the tier
	ErrNoContent = errors.New("no content available")
	// ErrNoTargetShape reports a target polyline with fewer than two points
	ErrNoTargetShape = errors.New("no target shape")
)

// LineSupplier hands out typing lines, ok is false when the tier is exhausted
type LineSupplier interface {
	NextLine(tier core.Tier) (line core.Line, ok bool)
}

// ShapeSupplier hands out target shapes, ok is false when the tier is exhausted
type ShapeSupplier interface {
	NextShape(tier core.Tier) (shape core.Shape, ok bool)
}
