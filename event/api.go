package event

import (
	"github.com/lixenwraith/codedraw/vmath"
)

// EmitCharacter queues one keystroke using a pooled payload
func EmitCharacter(q *EventQueue, r rune) {
	q.Push(GameEvent{Type: EventCharacterTyped, Payload: AcquireCharacter(r)})
}

// EmitPointer queues one pointer sample using a pooled payload
func EmitPointer(q *EventQueue, kind PointerKind, pos vmath.Vec2) {
	q.Push(GameEvent{Type: EventPointer, Payload: AcquirePointer(kind, pos)})
}

// EmitSignal queues a payload-less meta event
func EmitSignal(q *EventQueue, et EventType) {
	q.Push(GameEvent{Type: et})
}
