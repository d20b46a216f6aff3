package core

// Tier is the difficulty level of an engine, it only ever moves up within a session
type Tier int

const (
	TierEasy Tier = iota
	TierMedium
	TierHard
	TierCount
)

// String returns the display name of the tier
func (t Tier) String() string {
	switch t {
	case TierEasy:
		return "easy"
	case TierMedium:
		return "medium"
	case TierHard:
		return "hard"
	default:
		return "unknown"
	}
}

// Next returns the following tier, Hard is terminal
func (t Tier) Next() Tier {
	if t >= TierHard {
		return TierHard
	}
	return t + 1
}

// Gauge identifies one of the two decaying resources
type Gauge int

const (
	GaugeCoding Gauge = iota
	GaugeDrawing
	GaugeCount
)

// String returns the display name of the gauge
func (g Gauge) String() string {
	switch g {
	case GaugeCoding:
		return "coding"
	case GaugeDrawing:
		return "drawing"
	default:
		return "unknown"
	}
}
