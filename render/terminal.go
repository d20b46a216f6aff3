package render

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/codedraw/core"
)

// Terminal owns the tcell screen for the process lifetime
type Terminal struct {
	screen  tcell.Screen
	newFn   func() (tcell.Screen, error)
	finiOne sync.Once
}

// NewTerminal creates a terminal service backed by the real tty
func NewTerminal() *Terminal {
	return &Terminal{newFn: tcell.NewScreen}
}

// NewTerminalWithScreen creates a terminal service over an existing screen, used by tests
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{newFn: func() (tcell.Screen, error) { return screen, nil }}
}

// Name implements service.Service
func (t *Terminal) Name() string {
	return "terminal"
}

// Dependencies implements service.Service
func (t *Terminal) Dependencies() []string {
	return nil
}

// Init implements service.Service
// Opens the screen with mouse reporting and registers the crash restore hook
func (t *Terminal) Init(args ...any) error {
	screen, err := t.newFn()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText))
	screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	screen.HideCursor()
	screen.Clear()

	t.screen = screen
	core.SetCrashCleanup(t.fini)
	return nil
}

// Start implements service.Service
func (t *Terminal) Start() error {
	return nil
}

// Stop implements service.Service
func (t *Terminal) Stop() error {
	t.fini()
	return nil
}

func (t *Terminal) fini() {
	t.finiOne.Do(func() {
		if t.screen != nil {
			t.screen.Fini()
		}
	})
}

// Screen returns the initialized screen, nil before Init
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}
