package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/codedraw/event"
	"github.com/lixenwraith/codedraw/vmath"
)

// Surface maps screen cells to world coordinates and follows terminal size
type Surface interface {
	CellToWorld(x, y int) vmath.Vec2
	Resize(width, height int)
}

// Translator pushes parsed input into the event queue
// It runs on the input goroutine and never touches game state directly
type Translator struct {
	machine *Machine
	queue   *event.EventQueue
	surface Surface

	// OnMute is called for the mute key, may be nil
	OnMute func()
}

// NewTranslator creates a translator feeding queue
func NewTranslator(queue *event.EventQueue, surface Surface) *Translator {
	return &Translator{
		machine: NewMachine(),
		queue:   queue,
		surface: surface,
	}
}

// Handle applies one event, false when the user asked to quit
func (t *Translator) Handle(ev tcell.Event) bool {
	in := t.machine.Process(ev)
	if in == nil {
		return true
	}

	switch in.Type {
	case IntentQuit:
		return false
	case IntentResize:
		if t.surface != nil {
			t.surface.Resize(in.X, in.Y)
		}
	case IntentToggleMute:
		if t.OnMute != nil {
			t.OnMute()
		}
	case IntentPause:
		event.EmitSignal(t.queue, event.EventPauseToggle)
	case IntentReset:
		event.EmitSignal(t.queue, event.EventGameReset)
	case IntentChar:
		event.EmitCharacter(t.queue, in.Char)
	case IntentPointer:
		if t.surface != nil {
			event.EmitPointer(t.queue, in.Pointer, t.surface.CellToWorld(in.X, in.Y))
		}
	}
	return true
}

// Run polls the screen until quit or the screen is finalized
func (t *Translator) Run(screen tcell.Screen) {
	for {
		ev := screen.PollEvent()
		if ev == nil || !t.Handle(ev) {
			return
		}
	}
}
