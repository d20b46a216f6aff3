package input

import "github.com/lixenwraith/codedraw/event"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // Esc, Ctrl+C, Ctrl+Q
	IntentToggleMute // Ctrl+S
	IntentResize     // Terminal resize event

	// Session control
	IntentPause // Ctrl+P
	IntentReset // Enter, honored after game over

	// Gameplay
	IntentChar    // Printable character
	IntentPointer // Left button press, drag or release
)

// Intent is a parsed input action
// X, Y carry the cell for pointer intents and the size for resize
type Intent struct {
	Type    IntentType
	Char    rune
	Pointer event.PointerKind
	X, Y    int
}
