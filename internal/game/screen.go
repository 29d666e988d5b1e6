// Package game is the screen controller: it owns the player's records, the
// active screen and, while playing, the gameplay session. Frontends feed it
// input and frame times and ask it to draw into a core.Screen.
package game

// ScreenID identifies one mutually exclusive UI mode.
type ScreenID int

const (
	MainMenu ScreenID = iota
	CodeBuilder
	Shop
	Skins
	InGame
)

// String returns the screen's stable name.
func (id ScreenID) String() string {
	switch id {
	case MainMenu:
		return "main-menu"
	case CodeBuilder:
		return "code-builder"
	case Shop:
		return "shop"
	case Skins:
		return "skins"
	case InGame:
		return "in-game"
	default:
		return "unknown"
	}
}
