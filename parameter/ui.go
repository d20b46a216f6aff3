package parameter

// Screen rows, counted from the top unless noted
const (
	// GaugeRow holds both gauge bars and the score
	GaugeRow = 0

	// ProgressRow holds combo and tier for each engine
	ProgressRow = 1

	// TypingRow is the target line, PreviewRow the dimmed next line
	TypingRow  = 3
	PreviewRow = 4

	// PanelTop is the border row above the tracing panel
	PanelTop = 6

	// BottomMargin reserves the status line
	BottomMargin = 1

	// LeftMargin pads the typing line and HUD
	LeftMargin = 2

	// GaugeBarWidth is the cell width of one gauge bar
	GaugeBarWidth = 20
)

// World to terminal mapping, the tracing panel shows world [0,WorldWidth]x[0,WorldHeight]
const (
	WorldWidth    = 3.0
	WorldHeight   = 2.0
	CellsPerUnitX = 20
	CellsPerUnitY = 10
)

// Glyphs
const (
	GaugeFillChar  = '█'
	GaugeEmptyChar = '░'
	GuideChar      = '·'
	TraceChar      = '•'
	LineEndChar    = '⏎'
)

// Overlay text
const (
	AudioStr     = "♫ "
	PausedText   = " PAUSED  ctrl-p to resume "
	GameOverText = " GAME OVER "
	RestartHint  = " enter: new session   esc: quit "
	WaitingText  = "waiting for content"
)
