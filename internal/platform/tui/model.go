package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dungeon-collector/internal/core"
	"github.com/vovakirdan/dungeon-collector/internal/game"
	"github.com/vovakirdan/dungeon-collector/internal/profile"
)

// footerRows are the terminal rows below the game screen (help or prompt).
const footerRows = 1

// Model is the Bubble Tea model hosting one game.App.
type Model struct {
	app       *game.App
	screen    *core.Screen
	keys      KeyMap
	help      help.Model
	prompt    textinput.Model
	prompting bool
	tickRate  int
	keyHold   time.Duration
	quitting  bool
}

// NewModel creates a model for app sized by cfg.
func NewModel(app *game.App, cfg core.RuntimeConfig) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 4096
	ti.Width = max(cfg.ScreenW-30, 20)

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	return Model{
		app:      app,
		screen:   core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerRows, 1)),
		keys:     DefaultKeyMap(),
		help:     h,
		prompt:   ti,
		tickRate: cfg.TickRate,
		keyHold:  cfg.KeyHold,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-footerRows, 1))
		m.help.Width = msg.Width
		m.prompt.Width = max(msg.Width-30, 20)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	if m.prompting {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}
	if m.prompting {
		return m.handlePromptKey(msg)
	}
	if key.Matches(msg, m.keys.Quit) {
		return m.quit()
	}

	// Terminals send no key-up; a held key is one that keeps repeating.
	if name, ok := movementKey(msg); ok {
		m.app.Input().KeyDown(name, time.Now())
	}
	m.app.KeyPressed(msg.String())

	if m.app.Done() {
		return m.quit()
	}
	cmd := m.syncPrompt()
	return m, cmd
}

func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.app.ResolvePrompt(m.prompt.Value())
		m.closePrompt()
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.app.CancelPrompt()
		m.closePrompt()
		return m, nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.prompting {
		return m, nil
	}
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.app.Click(msg.X, msg.Y)
	}
	return m, nil
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.app.Input().ReleaseStale(now, m.holdWindow())
	m.app.Tick(now)

	if m.app.Done() {
		return m.quit()
	}
	cmd := m.syncPrompt()
	return m, tea.Batch(tickCmd(m.tickRate), cmd)
}

// holdWindow is how long a key counts as held after its last repeat. The
// MOVE_DELAY setting can stretch it for terminals with slow key repeat.
func (m Model) holdWindow() time.Duration {
	moveDelay := time.Duration(m.app.Settings().Get(profile.SettingMoveDelay, 0)) * time.Millisecond
	return max(m.keyHold, moveDelay)
}

// syncPrompt opens the text field when the app raised a prompt.
func (m *Model) syncPrompt() tea.Cmd {
	p, ok := m.app.Prompt()
	if !ok || m.prompting {
		return nil
	}
	m.prompting = true
	m.prompt.Placeholder = p.Title
	m.prompt.SetValue(p.Initial)
	m.prompt.CursorEnd()
	return m.prompt.Focus()
}

func (m *Model) closePrompt() {
	m.prompting = false
	m.prompt.Blur()
	m.prompt.Reset()
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.app.Close()
	m.quitting = true
	return m, tea.Quit
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.app.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.footer()
}

func (m Model) footer() string {
	if m.prompting {
		p, _ := m.app.Prompt()
		return promptTitleStyle.Render(p.Title+":") + " " + m.prompt.View()
	}
	return m.help.View(screenHelp{keys: m.keys, screen: m.app.Screen()})
}

// AppSize returns the screen size an App gets in a terminal of w × h cells,
// leaving room for the footer.
func AppSize(w, h int) (int, int) {
	return w, h - footerRows
}

// Run starts the Bubble Tea program with the given app.
func Run(app *game.App, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(app, cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	app.Close()
	return err
}
