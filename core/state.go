package core

// TypingState is the typing engine state machine position
type TypingState int

const (
	TypingAwaitingLine TypingState = iota
	TypingActive
)

func (s TypingState) String() string {
	if s == TypingActive {
		return "typing"
	}
	return "awaiting"
}

// TracingState is the tracing engine state machine position
type TracingState int

const (
	TracingIdle TracingState = iota
	TracingDrawing
	TracingScoring
)

func (s TracingState) String() string {
	switch s {
	case TracingDrawing:
		return "drawing"
	case TracingScoring:
		return "scoring"
	default:
		return "idle"
	}
}
