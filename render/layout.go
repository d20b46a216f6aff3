package render

import (
	"math"

	"github.com/lixenwraith/codedraw/parameter"
	"github.com/lixenwraith/codedraw/vmath"
)

// Layout places the HUD, typing rows and tracing panel on a terminal of Width x Height
// The panel interior maps world units to cells at a fixed scale; PanelX, PanelY is world origin
type Layout struct {
	Width, Height  int
	PanelX, PanelY int
	PanelW, PanelH int
}

// NewLayout computes the layout for a terminal size
// The panel is centered horizontally and clipped when the terminal is too small
func NewLayout(width, height int) Layout {
	pw := int(parameter.WorldWidth * parameter.CellsPerUnitX)
	ph := int(parameter.WorldHeight * parameter.CellsPerUnitY)

	px := (width - pw) / 2
	if px < 1 {
		px = 1
	}
	return Layout{
		Width:  width,
		Height: height,
		PanelX: px,
		PanelY: parameter.PanelTop + 1,
		PanelW: pw,
		PanelH: ph,
	}
}

// WorldToCellSpace maps a world point to fractional cell coordinates
func (l Layout) WorldToCellSpace(p vmath.Vec2) vmath.Vec2 {
	return vmath.V2(
		float64(l.PanelX)+p.X*parameter.CellsPerUnitX,
		float64(l.PanelY)+p.Y*parameter.CellsPerUnitY,
	)
}

// WorldToCell maps a world point to the cell containing it
func (l Layout) WorldToCell(p vmath.Vec2) (int, int) {
	c := l.WorldToCellSpace(p)
	return int(math.Floor(c.X)), int(math.Floor(c.Y))
}

// CellToWorld maps a cell to the world point at its center
func (l Layout) CellToWorld(x, y int) vmath.Vec2 {
	return vmath.V2(
		(float64(x-l.PanelX)+0.5)/parameter.CellsPerUnitX,
		(float64(y-l.PanelY)+0.5)/parameter.CellsPerUnitY,
	)
}

// InPanel reports whether a cell is inside the tracing panel interior
func (l Layout) InPanel(x, y int) bool {
	return x >= l.PanelX && x < l.PanelX+l.PanelW && y >= l.PanelY && y < l.PanelY+l.PanelH
}

// InScreen reports whether a cell is drawable
func (l Layout) InScreen(x, y int) bool {
	return x >= 0 && x < l.Width && y >= 0 && y < l.Height-parameter.BottomMargin
}
