package game

import (
	"errors"
	"fmt"

	"github.com/leonelquinteros/gotext"

	"github.com/vovakirdan/dungeon-collector/internal/core"
	"github.com/vovakirdan/dungeon-collector/internal/profile"
)

func (a *App) toggle(it profile.Item) {
	err := a.player.ToggleEquip(it)
	switch {
	case errors.Is(err, profile.ErrCosmeticLimit):
		a.setNotice(gotext.Get("You can wear at most %d cosmetics", profile.MaxEquippedCosmetics), core.ColorRed)
		return
	case err != nil:
		return
	}
	a.savePlayer()
}

func (a *App) renderSkins(s *core.Screen) {
	title(s, gotext.Get("Skins"))
	s.DrawTextCentered(2, gotext.Get("Select an item to wear or remove it"), core.ColorDim)

	x := (s.Width() - listWidth) / 2
	for i, it := range a.catalog.Inventory(a.player) {
		mark := "[ ]"
		c := core.ColorWhite
		if a.player.IsEquipped(it) {
			mark = "[x]"
			c = core.ColorCyan
		}
		text := fmt.Sprintf("%s %s", mark, itemName(it))
		a.row(s, core.NewRect(x, 4+i, listWidth, 1), it.ID, text, translate(it.Kind.String()), c, func() { a.toggle(it) })
	}

	// Preview of the current outfit.
	drawAvatar(s, x+listWidth+4, 5, a.player)

	a.returnButton(s, gotext.Get("Return"), func() { a.goTo(MainMenu) })
}
