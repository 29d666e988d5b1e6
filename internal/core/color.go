package core

// Color is a foreground color for a screen cell. Frontends map it to
// terminal styles or RGB values.
type Color uint8

// Palette used by the dungeon screens.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorBlue
	ColorGold
	ColorCyan
	ColorMagenta
	ColorWhite
	ColorGray
	ColorDim
)
