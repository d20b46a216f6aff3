package parameter

// Content processing
const (
	// MaxLineLength truncates lines that would not fit the playfield
	MaxLineLength = 72

	// TabWidth expands tabs before truncation
	TabWidth = 4
)

// CommentPrefixes marks content lines that are skipped
var CommentPrefixes = []string{"//", "#"}

// Line classification for plain text sources, rune count after processing
const (
	EasyLineMaxLen   = 24
	MediumLineMaxLen = 48
)

// Content file discovery
var ContentExtensions = []string{".yaml", ".yml", ".txt"}
