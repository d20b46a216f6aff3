package render

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/codedraw/core"
	"github.com/lixenwraith/codedraw/engine"
	"github.com/lixenwraith/codedraw/parameter"
	"github.com/lixenwraith/codedraw/status"
	"github.com/lixenwraith/codedraw/vmath"
)

// Renderer draws snapshots to a tcell screen
// Present runs on the tick goroutine, Resize may arrive from the input goroutine
type Renderer struct {
	screen   tcell.Screen
	registry *status.Registry
	layout   atomic.Pointer[Layout]
	frames   *atomic.Int64
}

// NewRenderer creates a renderer sized to the screen
func NewRenderer(screen tcell.Screen, reg *status.Registry) *Renderer {
	r := &Renderer{screen: screen, registry: reg}
	if reg != nil {
		r.frames = reg.Ints.Get("render.frames")
	}
	w, h := screen.Size()
	r.Resize(w, h)
	return r
}

// Resize recomputes the layout for a new terminal size
func (r *Renderer) Resize(width, height int) {
	l := NewLayout(width, height)
	r.layout.Store(&l)
}

// Layout returns the current layout
func (r *Renderer) Layout() Layout {
	return *r.layout.Load()
}

// CellToWorld maps a cell through the current layout
func (r *Renderer) CellToWorld(x, y int) vmath.Vec2 {
	return r.Layout().CellToWorld(x, y)
}

// Present implements engine.Sink
func (r *Renderer) Present(snap *engine.Snapshot) {
	l := r.Layout()
	bg := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
	r.screen.Fill(' ', bg)

	r.drawGauges(l, snap, bg)
	r.drawProgress(l, snap, bg)
	r.drawTyping(l, &snap.Typing, bg)
	r.drawPanel(l, &snap.Tracing, bg)
	r.drawStatus(l, snap)

	switch {
	case snap.GameOver:
		r.drawGameOver(l, snap)
	case snap.Paused:
		r.drawCentered(l, l.PanelY+l.PanelH/2, parameter.PausedText, tcell.StyleDefault.Background(RgbPausedBg).Foreground(RgbOverlayFg))
	}

	r.screen.Show()
	if r.frames != nil {
		r.frames.Add(1)
	}
}

func (r *Renderer) set(l Layout, x, y int, ch rune, style tcell.Style) {
	if l.InScreen(x, y) {
		r.screen.SetContent(x, y, ch, nil, style)
	}
}

// drawText writes s from x and returns the column after it
func (r *Renderer) drawText(l Layout, x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.set(l, x, y, ch, style)
		x++
	}
	return x
}

func (r *Renderer) drawCentered(l Layout, y int, s string, style tcell.Style) {
	x := (l.Width - len([]rune(s))) / 2
	if x < 0 {
		x = 0
	}
	r.drawText(l, x, y, s, style)
}

func (r *Renderer) drawGauges(l Layout, snap *engine.Snapshot, bg tcell.Style) {
	x := parameter.LeftMargin
	x = r.drawGauge(l, x, "CODE ", snap.Coding, snap.MaxGauge, bg)
	x = r.drawGauge(l, x+3, "DRAW ", snap.Drawing, snap.MaxGauge, bg)
	r.drawText(l, x+3, parameter.GaugeRow, fmt.Sprintf("SCORE %d", snap.Score), bg.Bold(true))
}

func (r *Renderer) drawGauge(l Layout, x int, label string, value, max float64, bg tcell.Style) int {
	y := parameter.GaugeRow
	x = r.drawText(l, x, y, label, bg.Foreground(RgbDim))

	ratio := 0.0
	if max > 0 {
		ratio = vmath.Clamp01(value / max)
	}
	filled := int(ratio*parameter.GaugeBarWidth + 0.5)
	color := GaugeColor(ratio)
	for i := 0; i < parameter.GaugeBarWidth; i++ {
		if i < filled {
			r.set(l, x+i, y, parameter.GaugeFillChar, bg.Foreground(color))
		} else {
			r.set(l, x+i, y, parameter.GaugeEmptyChar, bg.Foreground(RgbGaugeEmpty))
		}
	}
	if value < 0 {
		value = 0
	}
	return r.drawText(l, x+parameter.GaugeBarWidth+1, y, fmt.Sprintf("%4.1f", value), bg.Foreground(color))
}

func (r *Renderer) drawProgress(l Layout, snap *engine.Snapshot, bg tcell.Style) {
	t, d := snap.Typing.ProgressView, snap.Tracing.ProgressView

	typing := fmt.Sprintf("typing %s  combo %d  max %d", t.Tier, t.Combo, t.MaxCombo)
	if t.Tier < core.TierHard {
		typing += fmt.Sprintf("  next %.0f", t.Threshold)
	}
	tracing := fmt.Sprintf("tracing %s  combo %d  max %d  streak %d  bar %.0f%%",
		d.Tier, d.Combo, d.MaxCombo, d.Streak, d.Threshold*100)

	x := r.drawText(l, parameter.LeftMargin, parameter.ProgressRow, typing, bg.Foreground(RgbDim))
	r.drawText(l, x+4, parameter.ProgressRow, tracing, bg.Foreground(RgbDim))
}

func (r *Renderer) drawTyping(l Layout, v *engine.TypingView, bg tcell.Style) {
	x := parameter.LeftMargin
	if v.State == core.TypingAwaitingLine {
		r.drawText(l, x, parameter.TypingRow, parameter.WaitingText, bg.Foreground(RgbDim).Italic(true))
		return
	}

	for i, ch := range v.Target {
		style := bg
		switch {
		case i < v.Cursor:
			style = bg.Foreground(RgbTyped)
		case i == v.Cursor && v.Flash:
			style = bg.Foreground(RgbCursorText).Background(RgbError)
		case i == v.Cursor:
			style = bg.Foreground(RgbCursorText).Background(RgbCursor)
		}
		r.set(l, x+i, parameter.TypingRow, ch, style)
	}
	r.set(l, x+len(v.Target)+1, parameter.TypingRow, parameter.LineEndChar, bg.Foreground(RgbDim))

	for i, ch := range v.Preview {
		r.set(l, x+i, parameter.PreviewRow, ch, bg.Foreground(RgbDim))
	}
}

func (r *Renderer) drawPanel(l Layout, v *engine.TracingView, bg tcell.Style) {
	border := bg.Foreground(RgbBorder)
	left, top := l.PanelX-1, l.PanelY-1
	right, bottom := l.PanelX+l.PanelW, l.PanelY+l.PanelH

	for x := left + 1; x < right; x++ {
		r.set(l, x, top, tcell.RuneHLine, border)
		r.set(l, x, bottom, tcell.RuneHLine, border)
	}
	for y := top + 1; y < bottom; y++ {
		r.set(l, left, y, tcell.RuneVLine, border)
		r.set(l, right, y, tcell.RuneVLine, border)
	}
	r.set(l, left, top, tcell.RuneULCorner, border)
	r.set(l, right, top, tcell.RuneURCorner, border)
	r.set(l, left, bottom, tcell.RuneLLCorner, border)
	r.set(l, right, bottom, tcell.RuneLRCorner, border)
	r.drawText(l, left+2, top, " "+v.State.String()+" ", border)

	r.drawPolyline(l, v.Guide, parameter.GuideChar, bg.Foreground(RgbGuide))
	r.drawPolyline(l, v.Player, parameter.TraceChar, bg.Foreground(RgbTrace).Bold(true))

	if v.ShowAccuracy {
		text := fmt.Sprintf(" accuracy %3.0f%% ", v.LastAccuracy*100)
		style := bg.Foreground(AccuracyColor(v.LastAccuracy, v.LastAccuracy >= v.Threshold)).Bold(true)
		r.drawText(l, l.PanelX+(l.PanelW-len(text))/2, bottom, text, style)
	}
}

// drawPolyline rasterizes each segment with a supercover walk, clipped to the panel
func (r *Renderer) drawPolyline(l Layout, pts []vmath.Vec2, ch rune, style tcell.Style) {
	plot := func(x, y int) bool {
		if l.InPanel(x, y) {
			r.set(l, x, y, ch, style)
		}
		return true
	}
	if len(pts) == 1 {
		plot(l.WorldToCell(pts[0]))
		return
	}
	for i := 1; i < len(pts); i++ {
		vmath.TraverseVec(l.WorldToCellSpace(pts[i-1]), l.WorldToCellSpace(pts[i]), plot)
	}
}

func (r *Renderer) drawStatus(l Layout, snap *engine.Snapshot) {
	y := l.Height - parameter.BottomMargin
	if y < 0 {
		return
	}
	style := tcell.StyleDefault.Background(RgbStatusBg).Foreground(RgbDim)
	for x := 0; x < l.Width; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}

	var b strings.Builder
	if len(snap.SessionID) >= 8 {
		fmt.Fprintf(&b, "session %s", snap.SessionID[:8])
	}
	if r.registry != nil {
		for _, e := range r.registry.Entries() {
			if e.Key == "session.id" {
				continue
			}
			fmt.Fprintf(&b, "  %s %s", e.Key, e.Value)
		}
	}
	x := 1
	for _, ch := range b.String() {
		if x >= l.Width-1 {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func (r *Renderer) drawGameOver(l Layout, snap *engine.Snapshot) {
	style := tcell.StyleDefault.Background(RgbOverlayBg).Foreground(RgbOverlayFg).Bold(true)
	mid := l.PanelY + l.PanelH/2

	emptied := core.GaugeCoding
	if snap.Drawing <= 0 && snap.Coding > 0 {
		emptied = core.GaugeDrawing
	}
	r.drawCentered(l, mid-1, parameter.GameOverText, style)
	r.drawCentered(l, mid, fmt.Sprintf(" score %d  %s gauge emptied ", snap.Score, emptied), style)
	r.drawCentered(l, mid+1, parameter.RestartHint, style)
}
