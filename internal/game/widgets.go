package game

import (
	"unicode"

	"github.com/leonelquinteros/gotext"

	"github.com/vovakirdan/dungeon-collector/internal/core"
	"github.com/vovakirdan/dungeon-collector/internal/profile"
)

// focused reports whether the next registered region has keyboard focus.
func (a *App) focused() bool {
	return len(a.regions) == a.focus
}

func (a *App) register(r core.Rect, label string, action func()) {
	a.regions = append(a.regions, Region{Rect: r, Label: label, Action: action})
}

// button draws a boxed control and registers it.
func (a *App) button(s *core.Screen, r core.Rect, label string, c core.Color, action func()) {
	if a.focused() {
		c = core.ColorGold
	}
	s.DrawButton(r, label, c)
	a.register(r, label, action)
}

// row draws a one-line entry with text on the left and detail on the right,
// and registers it under id.
func (a *App) row(s *core.Screen, r core.Rect, id, text, detail string, c core.Color, action func()) {
	marker := "  "
	if a.focused() {
		marker = "> "
		c = core.ColorGold
	}
	s.DrawText(r.X, r.Y, marker+text, c)
	dw := len([]rune(detail))
	s.DrawText(r.Right()-dw, r.Y, detail, c)
	a.register(r, id, action)
}

// returnButton is the shared way back to the main menu.
func (a *App) returnButton(s *core.Screen, label string, action func()) {
	w := 16
	r := core.NewRect((s.Width()-w)/2, s.Height()-5, w, 3)
	a.button(s, r, label, core.ColorWhite, action)
}

func title(s *core.Screen, text string) {
	s.DrawTextCentered(1, text, core.ColorGold)
}

// translate looks up a message ID only known at runtime. Going through a
// variable keeps vet's constant format string check quiet.
var translate = gotext.Get

func itemName(it profile.Item) string {
	name := []rune(translate(it.ID))
	if len(name) == 0 {
		return ""
	}
	name[0] = unicode.ToUpper(name[0])
	return string(name)
}

func skinColor(skin string) core.Color {
	switch skin {
	case "green":
		return core.ColorGreen
	case "red":
		return core.ColorRed
	case "blue":
		return core.ColorBlue
	default:
		return core.ColorWhite
	}
}

// drawAvatar draws the player glyph at (x, y) dressed in their outfit.
func drawAvatar(s *core.Screen, x, y int, p *profile.PlayerData) {
	s.Set(x, y, '●', skinColor(p.EquippedSkin))
	if p.Wearing(RingCosmetic) {
		s.Set(x-1, y, '(', core.ColorGold)
		s.Set(x+1, y, ')', core.ColorGold)
	}
	if p.Wearing("tophat") {
		s.Set(x, y-1, '▄', core.ColorGray)
	}
}
