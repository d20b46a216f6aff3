package event

import (
	"time"

	"github.com/lixenwraith/codedraw/core"
	"github.com/lixenwraith/codedraw/vmath"
)

// CharacterTypedPayload captures one typed rune
type CharacterTypedPayload struct {
	Char rune `yaml:"char"`
}

// PointerKind distinguishes the phases of a pointer gesture
type PointerKind int

const (
	PointerMove PointerKind = iota
	PointerDown
	PointerUp
)

// PointerPayload is a pointer sample in world units
type PointerPayload struct {
	Kind PointerKind `yaml:"kind"`
	Pos  vmath.Vec2  `yaml:"pos"`
}

// MistypePayload describes a wrong keystroke
type MistypePayload struct {
	Expected rune `yaml:"expected"`
	Got      rune `yaml:"got"`
	Flash    bool `yaml:"flash"` // False when an error flash was already running
}

// LineCompletePayload describes a finished line
type LineCompletePayload struct {
	Line  string `yaml:"line"`
	Combo int    `yaml:"combo"`
	Score int    `yaml:"score"`
}

// ShapeCompletePayload describes a scored trace
type ShapeCompletePayload struct {
	Accuracy float64 `yaml:"accuracy"`
	Success  bool    `yaml:"success"`
	Combo    int     `yaml:"combo"`
	Score    int     `yaml:"score"`
	Gauge    float64 `yaml:"gauge"`
}

// AttemptDiscardedPayload describes a trace rejected by the validity gate
type AttemptDiscardedPayload struct {
	Duration time.Duration `yaml:"duration"`
	Length   float64       `yaml:"length"`
}

// TierPromotedPayload names the engine and its new tier
type TierPromotedPayload struct {
	Engine string    `yaml:"engine"`
	Tier   core.Tier `yaml:"tier"`
}

// NoContentPayload reports a supplier that could not serve the tier
type NoContentPayload struct {
	Tier core.Tier `yaml:"tier"`
}

// GameOverPayload is the final tally of a session
type GameOverPayload struct {
	Score     int           `yaml:"score"`
	Emptied   core.Gauge    `yaml:"emptied"`
	SessionID string        `yaml:"session_id"`
	Elapsed   time.Duration `yaml:"elapsed"`
}
