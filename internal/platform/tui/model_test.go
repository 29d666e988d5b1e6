package tui

import (
	"math/rand"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dungeon-collector/internal/core"
	"github.com/vovakirdan/dungeon-collector/internal/game"
	"github.com/vovakirdan/dungeon-collector/internal/profile"
)

func newTestModel() Model {
	app := game.NewApp(game.Options{
		Rand:   rand.New(rand.NewSource(1)),
		Width:  80,
		Height: 23,
	})
	return NewModel(app, core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		KeyHold:  180 * time.Millisecond,
	})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestMouseClickActivatesRegion(t *testing.T) {
	m := newTestModel()
	m.View()

	var target game.Region
	for _, r := range m.app.Regions() {
		if r.Label == "Shop" {
			target = r
		}
	}
	if target.Label == "" {
		t.Fatal("main menu has no Shop region")
	}

	x, y := target.Rect.Center()
	m = update(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, TickMsg(time.Now()))

	if m.app.Screen() != game.Shop {
		t.Errorf("Screen() = %s, expected shop", m.app.Screen())
	}
}

func TestMouseReleaseIsIgnored(t *testing.T) {
	m := newTestModel()
	m.View()

	x, y := m.app.Regions()[0].Rect.Center()
	m = update(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m = update(t, m, TickMsg(time.Now()))

	if m.app.Screen() != game.MainMenu {
		t.Errorf("a release should not click, screen = %s", m.app.Screen())
	}
}

func TestHeldKeyExpires(t *testing.T) {
	m := newTestModel()
	m.View()

	// Start Game has focus first
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.app.Screen() != game.InGame {
		t.Fatalf("Screen() = %s, expected in-game", m.app.Screen())
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if !m.app.Input().Held("right") {
		t.Fatal("right should be held after a press")
	}

	m = update(t, m, TickMsg(time.Now().Add(time.Second)))
	if m.app.Input().Held("right") {
		t.Error("a key that stopped repeating should be released")
	}
}

func TestPromptFlow(t *testing.T) {
	m := newTestModel()
	m.View()

	// Start Game, Code Builder, Import Settings
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.prompting {
		t.Fatal("Import Settings should open the prompt")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(`{"EXTRA":3}`)})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.prompting {
		t.Error("enter should close the prompt")
	}
	if got := m.app.Settings()["EXTRA"]; got != 3 {
		t.Errorf("imported EXTRA = %d, expected 3", got)
	}
}

func TestPromptCancel(t *testing.T) {
	m := newTestModel()
	m.View()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.prompting {
		t.Error("esc should close the prompt")
	}
	if _, ok := m.app.Prompt(); ok {
		t.Error("esc should cancel the app's prompt")
	}
	if m.app.Screen() != game.MainMenu {
		t.Error("cancelling must not leave the main menu")
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel()

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if next.View() != "" {
		t.Error("a quitting model renders nothing")
	}
}

func TestHoldWindow(t *testing.T) {
	m := newTestModel()

	if got := m.holdWindow(); got != 180*time.Millisecond {
		t.Errorf("holdWindow() = %v, expected the 180ms key hold", got)
	}

	m.app.Settings()[profile.SettingMoveDelay] = 400
	if got := m.holdWindow(); got != 400*time.Millisecond {
		t.Errorf("holdWindow() = %v, expected MOVE_DELAY to stretch it", got)
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(3, 2)
	s.DrawText(0, 0, "abc", core.ColorDefault)

	if got := RenderScreen(s); got != "abc\n   " {
		t.Errorf("RenderScreen() = %q", got)
	}
}
