package core

// Color represents a foreground color for a screen cell.
// The platform maps these to ANSI codes.
type Color uint8

// Predefined colors for puzzle cells.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
)
