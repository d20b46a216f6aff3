package render

import (
	"math"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/codedraw/core"
	"github.com/lixenwraith/codedraw/engine"
	"github.com/lixenwraith/codedraw/parameter"
	"github.com/lixenwraith/codedraw/status"
	"github.com/lixenwraith/codedraw/vmath"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func rowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(ch)
	}
	return b.String()
}

func baseSnapshot() *engine.Snapshot {
	return &engine.Snapshot{
		SessionID: "0123456789abcdef",
		Coding:    7.5,
		Drawing:   2,
		MaxGauge:  10,
		Score:     1234,
		Typing: engine.TypingView{
			State:   core.TypingActive,
			Target:  []rune("abc"),
			Preview: []rune("next"),
			Cursor:  1,
		},
		Tracing: engine.TracingView{
			State: core.TracingIdle,
			Guide: []vmath.Vec2{vmath.V2(0.5, 1), vmath.V2(2.5, 1)},
		},
	}
}

func TestLayoutRoundTrip(t *testing.T) {
	l := NewLayout(100, 40)
	if l.PanelW != 60 || l.PanelH != 20 {
		t.Fatalf("Expected 60x20 panel, got %dx%d", l.PanelW, l.PanelH)
	}
	if l.PanelX != 20 || l.PanelY != parameter.PanelTop+1 {
		t.Errorf("Expected panel origin (20,%d), got (%d,%d)", parameter.PanelTop+1, l.PanelX, l.PanelY)
	}

	for _, p := range []vmath.Vec2{vmath.V2(0, 0), vmath.V2(1.23, 0.77), vmath.V2(2.99, 1.99)} {
		x, y := l.WorldToCell(p)
		if !l.InPanel(x, y) {
			t.Errorf("Expected %v inside panel, got cell (%d,%d)", p, x, y)
		}
		back := l.CellToWorld(x, y)
		if math.Abs(back.X-p.X) > 0.5/parameter.CellsPerUnitX || math.Abs(back.Y-p.Y) > 0.5/parameter.CellsPerUnitY {
			t.Errorf("Round trip of %v gave %v", p, back)
		}
	}

	if l.InPanel(l.PanelX-1, l.PanelY) {
		t.Error("Expected border cell outside panel")
	}
}

func TestLayoutNarrowTerminal(t *testing.T) {
	l := NewLayout(30, 20)
	if l.PanelX != 1 {
		t.Errorf("Expected panel pinned to column 1, got %d", l.PanelX)
	}
	if l.InScreen(40, 5) {
		t.Error("Expected clipped cell off screen")
	}
}

func TestRendererHUDAndTyping(t *testing.T) {
	screen := newSimScreen(t, 100, 32)
	reg := status.NewRegistry()
	reg.Ints.Get("typing.correct").Store(7)
	r := NewRenderer(screen, reg)

	r.Present(baseSnapshot())

	hud := rowText(screen, parameter.GaugeRow)
	if !strings.Contains(hud, "CODE") || !strings.Contains(hud, "DRAW") || !strings.Contains(hud, "SCORE 1234") {
		t.Errorf("Unexpected HUD row: %q", hud)
	}

	x := parameter.LeftMargin
	typed, _, typedStyle, _ := screen.GetContent(x, parameter.TypingRow)
	if typed != 'a' {
		t.Errorf("Expected 'a' at line start, got %q", typed)
	}
	if fg, _, _ := typedStyle.Decompose(); fg != RgbTyped {
		t.Errorf("Expected typed prefix color, got %v", fg)
	}
	cur, _, curStyle, _ := screen.GetContent(x+1, parameter.TypingRow)
	if _, bg, _ := curStyle.Decompose(); cur != 'b' || bg != RgbCursor {
		t.Errorf("Expected cursor on 'b', got %q bg %v", cur, bg)
	}

	if preview := rowText(screen, parameter.PreviewRow); !strings.HasPrefix(preview[x:], "next") {
		t.Errorf("Expected preview row, got %q", preview)
	}

	line := rowText(screen, 31)
	if !strings.Contains(line, "session 01234567") || !strings.Contains(line, "typing.correct 7") {
		t.Errorf("Unexpected status line: %q", line)
	}
	if !strings.Contains(line, "render.frames") {
		t.Errorf("Expected frame counter in status line: %q", line)
	}
}

func TestRendererFlashAndWaiting(t *testing.T) {
	screen := newSimScreen(t, 100, 32)
	r := NewRenderer(screen, nil)

	snap := baseSnapshot()
	snap.Typing.Flash = true
	r.Present(snap)

	_, _, style, _ := screen.GetContent(parameter.LeftMargin+1, parameter.TypingRow)
	if _, bg, _ := style.Decompose(); bg != RgbError {
		t.Errorf("Expected error flash background, got %v", bg)
	}

	snap.Typing = engine.TypingView{State: core.TypingAwaitingLine}
	r.Present(snap)
	if row := rowText(screen, parameter.TypingRow); !strings.Contains(row, parameter.WaitingText) {
		t.Errorf("Expected waiting text, got %q", row)
	}
}

func TestRendererPolylines(t *testing.T) {
	screen := newSimScreen(t, 100, 32)
	r := NewRenderer(screen, nil)
	l := r.Layout()

	snap := baseSnapshot()
	snap.Tracing.Player = []vmath.Vec2{vmath.V2(0.5, 0.5), vmath.V2(0.5, 1.5)}
	r.Present(snap)

	y := l.PanelY + 10
	for x := l.PanelX + 11; x < l.PanelX+50; x++ {
		if ch, _, _, _ := screen.GetContent(x, y); ch != parameter.GuideChar {
			t.Fatalf("Expected guide glyph at (%d,%d), got %q", x, y, ch)
		}
	}

	px := l.PanelX + 10
	for y := l.PanelY + 5; y <= l.PanelY+15; y++ {
		if ch, _, _, _ := screen.GetContent(px, y); ch != parameter.TraceChar {
			t.Fatalf("Expected trace glyph at (%d,%d), got %q", px, y, ch)
		}
	}

	if ch, _, _, _ := screen.GetContent(l.PanelX-1, l.PanelY-1); ch != tcell.RuneULCorner {
		t.Errorf("Expected panel corner, got %q", ch)
	}
}

func TestRendererAccuracyAndOverlays(t *testing.T) {
	screen := newSimScreen(t, 100, 32)
	r := NewRenderer(screen, nil)
	l := r.Layout()

	snap := baseSnapshot()
	snap.Tracing.ShowAccuracy = true
	snap.Tracing.LastAccuracy = 0.87
	r.Present(snap)
	if row := rowText(screen, l.PanelY+l.PanelH); !strings.Contains(row, "accuracy  87%") {
		t.Errorf("Expected accuracy readout on panel border, got %q", row)
	}

	snap.Paused = true
	r.Present(snap)
	if row := rowText(screen, l.PanelY+l.PanelH/2); !strings.Contains(row, "PAUSED") {
		t.Errorf("Expected pause overlay, got %q", row)
	}

	snap.GameOver = true
	snap.Drawing = -0.2
	r.Present(snap)
	mid := l.PanelY + l.PanelH/2
	if row := rowText(screen, mid-1); !strings.Contains(row, "GAME OVER") {
		t.Errorf("Expected game over overlay, got %q", row)
	}
	if row := rowText(screen, mid); !strings.Contains(row, "score 1234  drawing gauge emptied") {
		t.Errorf("Expected final score line, got %q", row)
	}
}

func TestRendererResize(t *testing.T) {
	screen := newSimScreen(t, 100, 32)
	r := NewRenderer(screen, nil)
	r.Resize(120, 40)
	if l := r.Layout(); l.Width != 120 || l.PanelX != 30 {
		t.Errorf("Expected resized layout, got %+v", l)
	}
}

func TestTerminalLifecycle(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	term := NewTerminalWithScreen(screen)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if term.Screen() == nil {
		t.Fatal("Expected screen after Init")
	}
	if err := term.Stop(); err != nil {
		t.Errorf("Stop failed: %v", err)
	}
	if err := term.Stop(); err != nil {
		t.Errorf("Second stop failed: %v", err)
	}
	core.SetCrashCleanup(nil)
}
