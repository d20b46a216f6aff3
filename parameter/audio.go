package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioVolume is the master gain in beep's exponential volume units (base 2)
	AudioVolume = -1.0
)

// Error Sound
const (
	MistypeSoundFreq     = 120.0
	MistypeSoundDuration = 80 * time.Millisecond
)

// Completion chimes
const (
	LineCompleteFreq     = 880.0
	ShapeCompleteFreq    = 660.0
	PromoteFreq          = 1320.0
	ChimeDuration        = 120 * time.Millisecond
	DiscardSoundFreq     = 220.0
	DiscardSoundDuration = 60 * time.Millisecond
	GameOverStartFreq    = 440.0
	GameOverStepRatio    = 0.75
	GameOverStepCount    = 4
	GameOverStepDuration = 180 * time.Millisecond
)

// Envelope shaping shared by cue sounds
const (
	SoundAttack  = 5 * time.Millisecond
	SoundRelease = 40 * time.Millisecond
)
