package parameter

import "time"

// Gauges
const (
	// GaugeMax is the ceiling for both gauges, also their starting value
	GaugeMax = 10.0

	// GaugeDrainRate is the per-second drain applied to both gauges
	GaugeDrainRate = 0.1
)

// Typing
const (
	// TypingCharGaugeBonus is the coding gauge gain per correct character before combo scaling
	TypingCharGaugeBonus = 0.1

	// TypingComboGaugeScale multiplies combo into the per-character gauge gain: bonus*(1+combo*scale)
	TypingComboGaugeScale = 0.1

	// TypingScorePerChar is the base score per correct character, scaled by (1+combo/10)
	TypingScorePerChar = 10

	// TypingLineCompleteScore is the base line completion score, scaled by (1+combo/10)
	TypingLineCompleteScore = 100

	// TypingMistypeGaugePenalty is removed from the coding gauge on a wrong character
	TypingMistypeGaugePenalty = 0.05

	// TypingMistypeScorePenalty is removed from the score on a wrong character
	TypingMistypeScorePenalty = 50

	// TypingFlashDuration is how long the error flash stays on
	TypingFlashDuration = 100 * time.Millisecond
)

// Typing promotion ranges, combo required to leave the tier
const (
	TypingEasyComboMin   = 15
	TypingEasyComboMax   = 25
	TypingMediumComboMin = 25
	TypingMediumComboMax = 35
)

// Tracing
const (
	// TracingMinPointDistance is the spatial debounce between recorded samples
	TracingMinPointDistance = 0.1

	// TracingAccuracyThreshold is the distance at which a sample counts as fully off-path
	TracingAccuracyThreshold = 0.1

	// TracingOffPathPenalty is the live drawing gauge penalty per off-path sample
	TracingOffPathPenalty = 0.05

	// TracingAccuracyGaugeBonus is the drawing gauge gain for a perfect trace
	TracingAccuracyGaugeBonus = 0.2

	// TracingComboGaugeStep is added to the gauge gain per combo step
	TracingComboGaugeStep = 0.02

	// TracingComboScoreMultiplier scales score by (1+combo*multiplier)
	TracingComboScoreMultiplier = 0.1

	// TracingBaseScore is the score for a perfect trace without combo
	TracingBaseScore = 100

	// TracingMinDrawTime rejects attempts shorter than this
	TracingMinDrawTime = 150 * time.Millisecond

	// TracingMinDrawLength rejects attempts with a shorter path, world units
	TracingMinDrawLength = 0.5

	// TracingDisplayHold is how long a scored trace stays on screen before the next shape
	TracingDisplayHold = 1 * time.Second

	// TracingShapesForPromotion is the success streak needed to leave a tier
	TracingShapesForPromotion = 3
)

// Tracing promotion ranges, accuracy bar to count a shape as a success
const (
	TracingEasyAccuracyMin   = 0.75
	TracingEasyAccuracyMax   = 0.85
	TracingMediumAccuracyMin = 0.85
	TracingMediumAccuracyMax = 0.95
)
