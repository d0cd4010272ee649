package core

// Color represents a foreground color for a drawn shape or screen cell.
// Uses ANSI 256-color codes for terminal compatibility; the window frontend maps
// the same values to RGBA.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorGray
)
