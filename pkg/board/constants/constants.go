package constants

const (
	// DefaultBoardSize is the distance from the center hex to the edge of a standard board
	DefaultBoardSize int = 10
	// MinBoardSize is the smallest size a board can be set to
	MinBoardSize int = 3
	// MaxBoardSize bounds boards accepted from external input
	MaxBoardSize int = 128

	// FormatHeader opens every text-encoded board
	FormatHeader string = "civboard"
	// FormatVersion is the current version of the text encoding
	FormatVersion int = 1
)
