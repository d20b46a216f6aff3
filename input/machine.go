package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/codedraw/event"
)

// Machine parses tcell events into intents
// Tracks the left button so press, drag and release become pointer down, move and up
type Machine struct {
	held bool
}

// NewMachine creates a new input machine
func NewMachine() *Machine {
	return &Machine{}
}

// Held reports whether the left button is down
func (m *Machine) Held() bool {
	return m.held
}

// Reset forgets the button state
func (m *Machine) Reset() {
	m.held = false
}

// Process parses an event, nil when it carries no action
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		return &Intent{Type: IntentResize, X: w, Y: h}
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return &Intent{Type: IntentQuit}
	case tcell.KeyCtrlS:
		return &Intent{Type: IntentToggleMute}
	case tcell.KeyCtrlP:
		return &Intent{Type: IntentPause}
	case tcell.KeyEnter:
		return &Intent{Type: IntentReset}
	case tcell.KeyRune:
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			return nil
		}
		return &Intent{Type: IntentChar, Char: ev.Rune()}
	}
	return nil
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	x, y := ev.Position()
	down := ev.Buttons()&tcell.Button1 != 0

	switch {
	case down && !m.held:
		m.held = true
		return &Intent{Type: IntentPointer, Pointer: event.PointerDown, X: x, Y: y}
	case down:
		return &Intent{Type: IntentPointer, Pointer: event.PointerMove, X: x, Y: y}
	case m.held:
		m.held = false
		return &Intent{Type: IntentPointer, Pointer: event.PointerUp, X: x, Y: y}
	}
	return nil
}
