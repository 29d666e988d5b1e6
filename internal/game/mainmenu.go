package game

import (
	"github.com/leonelquinteros/gotext"

	"github.com/vovakirdan/dungeon-collector/internal/core"
)

const menuButtonWidth = 24

func (a *App) renderMainMenu(s *core.Screen) {
	title(s, gotext.Get("Dungeon Machine Collector"))
	s.DrawTextCentered(3, gotext.Get("Coins: %d", a.player.Currency), core.ColorWhite)

	items := []struct {
		label  string
		action func()
	}{
		{gotext.Get("Start Game"), a.startGame},
		{gotext.Get("Code Builder"), a.openCodeBuilder},
		{gotext.Get("Import Settings"), a.requestImport},
		{gotext.Get("Shop"), func() { a.goTo(Shop) }},
		{gotext.Get("Skins"), func() { a.goTo(Skins) }},
	}

	x := (s.Width() - menuButtonWidth) / 2
	for i, it := range items {
		r := core.NewRect(x, 5+i*3, menuButtonWidth, 3)
		a.button(s, r, it.label, core.ColorWhite, it.action)
	}
}
