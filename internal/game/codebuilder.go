package game

import (
	"strconv"

	"github.com/leonelquinteros/gotext"

	"github.com/vovakirdan/dungeon-collector/internal/core"
)

const settingColumnWidth = 36

// openCodeBuilder starts editing a copy of the settings. Nothing reaches
// the live settings until Save.
func (a *App) openCodeBuilder() {
	a.draft = a.settings.Clone()
	a.goTo(CodeBuilder)
}

func (a *App) saveDraft() {
	if a.draft != nil {
		clear(a.settings)
		a.settings.Merge(a.draft)
		a.draft = nil
	}
	a.saveSettings()
	a.goTo(MainMenu)
}

func (a *App) discardDraft() {
	a.draft = nil
	a.goTo(MainMenu)
}

func (a *App) requestEdit(key string) {
	a.prompt = &Prompt{
		Kind:    PromptEditSetting,
		Title:   gotext.Get("New value for %s", key),
		Key:     key,
		Initial: strconv.Itoa(a.draft[key]),
	}
}

func (a *App) renderCodeBuilder(s *core.Screen) {
	title(s, gotext.Get("Code Builder"))
	s.DrawTextCentered(2, gotext.Get("Select a value to change it"), core.ColorDim)

	top := 4
	perColumn := max(s.Height()-top-6, 1)
	for i, key := range a.draft.Keys() {
		col, line := i/perColumn, i%perColumn
		r := core.NewRect(2+col*(settingColumnWidth+2), top+line, settingColumnWidth, 1)
		value := strconv.Itoa(a.draft[key])
		a.row(s, r, key, key, value, core.ColorWhite, func() { a.requestEdit(key) })
	}

	w := 14
	y := s.Height() - 5
	mid := s.Width() / 2
	a.button(s, core.NewRect(mid-w-1, y, w, 3), gotext.Get("Save"), core.ColorGreen, a.saveDraft)
	a.button(s, core.NewRect(mid+1, y, w, 3), gotext.Get("Back"), core.ColorWhite, a.discardDraft)
}
