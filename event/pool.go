package event

import (
	"sync"

	"github.com/lixenwraith/codedraw/vmath"
)

var characterPool = sync.Pool{
	New: func() any { return &CharacterTypedPayload{} },
}

var pointerPool = sync.Pool{
	New: func() any { return &PointerPayload{} },
}

// AcquireCharacter returns a pooled keystroke payload
func AcquireCharacter(r rune) *CharacterTypedPayload {
	p := characterPool.Get().(*CharacterTypedPayload)
	p.Char = r
	return p
}

// AcquirePointer returns a pooled pointer payload
func AcquirePointer(kind PointerKind, pos vmath.Vec2) *PointerPayload {
	p := pointerPool.Get().(*PointerPayload)
	p.Kind = kind
	p.Pos = pos
	return p
}

// Release returns input payloads to their pool, other payloads are ignored
// Must only be called once the event has been fully dispatched
func Release(ev GameEvent) {
	switch p := ev.Payload.(type) {
	case *CharacterTypedPayload:
		p.Char = 0
		characterPool.Put(p)
	case *PointerPayload:
		*p = PointerPayload{}
		pointerPool.Put(p)
	}
}
