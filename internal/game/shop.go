package game

import (
	"errors"
	"fmt"

	"github.com/leonelquinteros/gotext"

	"github.com/vovakirdan/dungeon-collector/internal/core"
	"github.com/vovakirdan/dungeon-collector/internal/profile"
)

const listWidth = 40

func (a *App) buy(it profile.Item) {
	err := a.player.Buy(it)
	switch {
	case errors.Is(err, profile.ErrInsufficientFunds):
		a.setNotice(gotext.Get("Not enough coins"), core.ColorRed)
		return
	case err != nil:
		return
	}
	a.savePlayer()
	a.setNotice(gotext.Get("Bought %s", itemName(it)), core.ColorGreen)
}

func (a *App) renderShop(s *core.Screen) {
	title(s, gotext.Get("Shop"))
	s.DrawTextCentered(2, gotext.Get("Coins: %d", a.player.Currency), core.ColorWhite)

	x := (s.Width() - listWidth) / 2
	listing := a.catalog.Listing(a.player)
	if len(listing) == 0 {
		s.DrawTextCentered(5, gotext.Get("Sold out. You own everything!"), core.ColorDim)
	}
	for i, it := range listing {
		c := core.ColorGreen
		if a.player.Currency < it.Cost {
			c = core.ColorGray
		}
		text := fmt.Sprintf("%-12s %s", itemName(it), translate(it.Kind.String()))
		a.row(s, core.NewRect(x, 4+i, listWidth, 1), it.ID, text, fmt.Sprintf("%d", it.Cost), c, func() { a.buy(it) })
	}

	a.returnButton(s, gotext.Get("Return"), func() { a.goTo(MainMenu) })
}
