package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundMistype       SoundType = iota // Wrong key buzz
	SoundLineComplete                   // Line finished chime
	SoundShapeComplete                  // Traced shape scored
	SoundDiscard                        // Trace too short to count
	SoundPromote                        // Tier advanced
	SoundGameOver                       // Descending tone
	SoundTypeCount
)

var soundNames = [SoundTypeCount]string{
	"mistype",
	"line_complete",
	"shape_complete",
	"discard",
	"promote",
	"game_over",
}

// String returns the sound's config key
func (s SoundType) String() string {
	if s < 0 || s >= SoundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}
