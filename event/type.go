package event

// EventType represents the type of game event
type EventType int

const (
	// === Input Event ===

	// EventCharacterTyped carries one accepted keystroke
	// Trigger: input translator | Consumer: TypingSystem | Payload: *CharacterTypedPayload
	EventCharacterTyped EventType = iota + 1

	// EventPointer carries one pointer sample (down, move or up) in world units
	// Trigger: input translator | Consumer: TracingSystem | Payload: *PointerPayload
	EventPointer

	// === Meta Event ===

	// EventGameReset starts a new session with a fresh pool
	// Trigger: input translator after game over | Consumer: Game | Payload: nil
	EventGameReset

	// EventPauseToggle freezes or resumes game time
	// Trigger: input translator | Consumer: Game | Payload: nil
	EventPauseToggle

	// === Cue Event ===
	// Emitted by the core once per occurrence, delivered to sinks with the tick snapshot

	// EventMistype signals a wrong keystroke
	// Trigger: TypingSystem | Consumer: audio, renderer | Payload: *MistypePayload
	EventMistype

	// EventLineComplete signals the target line was fully typed
	// Trigger: TypingSystem | Consumer: audio, renderer | Payload: *LineCompletePayload
	EventLineComplete

	// EventShapeComplete signals a valid trace was scored
	// Trigger: TracingSystem | Consumer: audio, renderer | Payload: *ShapeCompletePayload
	EventShapeComplete

	// EventAttemptDiscarded signals a trace below the validity gate
	// Trigger: TracingSystem | Consumer: audio | Payload: *AttemptDiscardedPayload
	EventAttemptDiscarded

	// EventTierPromoted signals an engine advanced a difficulty tier
	// Trigger: TypingSystem, TracingSystem | Consumer: audio, renderer | Payload: *TierPromotedPayload
	EventTierPromoted

	// EventNoContent signals the line supplier is exhausted for the tier
	// Trigger: TypingSystem | Consumer: renderer | Payload: *NoContentPayload
	EventNoContent

	// EventNoTargetShape signals the current target polyline cannot be scored
	// Trigger: TracingSystem | Consumer: renderer | Payload: *NoContentPayload
	EventNoTargetShape

	// EventGameOver signals a gauge emptied, emitted once per session
	// Trigger: Game | Consumer: audio, renderer | Payload: *GameOverPayload
	EventGameOver
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    uint64
}
