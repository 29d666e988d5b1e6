package game

import (
	"errors"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/leonelquinteros/gotext"

	"github.com/vovakirdan/dungeon-collector/internal/core"
	"github.com/vovakirdan/dungeon-collector/internal/profile"
	"github.com/vovakirdan/dungeon-collector/internal/storage"
)

// noticeDuration is how long a notice stays on screen.
const noticeDuration = 3 * time.Second

// hudRows are the screen rows the in-game view keeps for status text:
// one above the play area, one below.
const hudRows = 2

// RunRecorder receives a summary when a run ends.
type RunRecorder interface {
	RecordRun(run storage.Run) (string, error)
}

// Options configures a new App. Zero values get working defaults.
type Options struct {
	Store   *profile.Store
	Catalog *profile.Catalog
	// Settings are the defaults the saved settings are merged over.
	Settings profile.Settings
	Rewards  Rewards
	Rand     *rand.Rand
	Runs     RunRecorder
	Logger   *log.Logger

	// Width and Height size the play area until the first Render.
	Width  int
	Height int

	// Demo starts straight in the game; leaving it ends the app.
	Demo bool
}

type notice struct {
	text  string
	color core.Color
	until time.Time
}

// App is the screen controller. All methods must be called from the one
// goroutine that owns the frontend's event loop.
type App struct {
	store   *profile.Store
	catalog *profile.Catalog
	rewards Rewards
	rng     *rand.Rand
	runs    RunRecorder
	logger  *log.Logger
	demo    bool

	player   *profile.PlayerData
	settings profile.Settings
	draft    profile.Settings

	screen  ScreenID
	session *Session
	input   *core.InputState
	clock   Clock
	now     time.Time

	regions []Region
	focus   int
	prompt  *Prompt
	notice  notice
	size    core.Point
	done    bool

	// Set when a saved record could not be read. Writing would replace
	// progress this session never saw, so saves of that record are skipped.
	playerLocked   bool
	settingsLocked bool
}

// NewApp loads the saved records and opens the main menu (or the game, in
// demo mode). Unreadable saves are logged and replaced by defaults.
func NewApp(opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	store := opts.Store
	if store == nil {
		store = profile.NewStore(storage.NewMemory(), "", logger)
	}
	catalog := opts.Catalog
	if catalog == nil {
		catalog = profile.DefaultCatalog()
	}
	rewards := opts.Rewards
	if rewards.Base <= 0 && rewards.Ring <= 0 {
		rewards = DefaultRewards()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	settings := opts.Settings.Clone()
	if settings == nil {
		settings = profile.DefaultSettings()
	}
	w, h := opts.Width, opts.Height
	if w <= 0 || h <= 0 {
		def := core.DefaultConfig()
		w, h = def.ScreenW, def.ScreenH
	}

	a := &App{
		store:    store,
		catalog:  catalog,
		rewards:  rewards,
		rng:      rng,
		runs:     opts.Runs,
		logger:   logger,
		demo:     opts.Demo,
		player:   profile.NewPlayerData(),
		settings: settings,
		input:    core.NewInputState(),
		size:     core.Point{X: w, Y: h},
	}

	if _, err := a.store.LoadPlayerData(a.player); err != nil {
		a.playerLocked = true
	}
	if _, err := a.store.LoadSettings(a.settings); err != nil {
		a.settingsLocked = true
	}
	if a.playerLocked || a.settingsLocked {
		a.logger.Error("saved records unreadable, not saving this session", "player", a.playerLocked, "settings", a.settingsLocked)
		a.setNotice(gotext.Get("Could not read your save; progress will not be saved"), core.ColorRed)
	}
	// Write back so a first run leaves a complete record behind.
	a.savePlayer()

	if a.demo {
		a.startGame()
	}
	return a
}

// Screen returns the active screen.
func (a *App) Screen() ScreenID { return a.screen }

// Session returns the gameplay session, or nil outside the game.
func (a *App) Session() *Session { return a.session }

// Player returns the live player record.
func (a *App) Player() *profile.PlayerData { return a.player }

// Settings returns the live settings.
func (a *App) Settings() profile.Settings { return a.settings }

// Draft returns the settings being edited in the code builder.
func (a *App) Draft() profile.Settings { return a.draft }

// Input returns the state frontends write key and click events into.
func (a *App) Input() *core.InputState { return a.input }

// Regions returns the clickable regions of the last render.
func (a *App) Regions() []Region {
	return append([]Region(nil), a.regions...)
}

// Focus returns the index of the keyboard-focused region.
func (a *App) Focus() int { return a.focus }

// Notice returns the text of the current notice, if any.
func (a *App) Notice() string { return a.notice.text }

// Prompt returns the pending prompt.
func (a *App) Prompt() (Prompt, bool) {
	if a.prompt == nil {
		return Prompt{}, false
	}
	return *a.prompt, true
}

// Done reports whether a demo run was left and the frontend should quit.
func (a *App) Done() bool { return a.done }

// Click records a pointer click in screen cells. It is handled on the next
// Tick; a later click before then replaces it.
func (a *App) Click(x, y int) {
	a.input.Click(x, y)
}

// Tick runs one frame: dispatch the pending click, then advance the game
// by the time since the previous frame.
func (a *App) Tick(now time.Time) {
	a.now = now

	if pt, ok := a.input.TakeClick(); ok && a.prompt == nil {
		if r, hit := hitTest(a.regions, pt.X, pt.Y); hit && r.Action != nil {
			r.Action()
		}
	}

	dt := a.clock.Delta(now)
	if a.screen == InGame && a.session != nil {
		a.session.Update(dt, a.input)
	}

	a.ageNotice(now)
}

// KeyPressed handles discrete keys: focus movement, activation and Esc.
// Held movement keys go through Input instead.
func (a *App) KeyPressed(key string) {
	if a.prompt != nil {
		return
	}

	if key == "esc" {
		a.back()
		return
	}
	if a.screen == InGame || len(a.regions) == 0 {
		return
	}

	switch key {
	case "up", "k", "shift+tab":
		a.focus = (a.focus - 1 + len(a.regions)) % len(a.regions)
	case "down", "j", "tab":
		a.focus = (a.focus + 1) % len(a.regions)
	case "enter", " ":
		if a.focus >= 0 && a.focus < len(a.regions) {
			if act := a.regions[a.focus].Action; act != nil {
				act()
			}
		}
	}
}

// ResolvePrompt answers the pending prompt.
func (a *App) ResolvePrompt(text string) {
	if a.prompt == nil {
		return
	}
	p := *a.prompt
	a.prompt = nil

	switch p.Kind {
	case PromptImport:
		a.importSettings(text)
	case PromptEditSetting:
		n, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			a.setNotice(gotext.Get("%s must be a whole number", p.Key), core.ColorRed)
			return
		}
		if a.draft != nil {
			a.draft[p.Key] = n
		}
	}
}

// CancelPrompt drops the pending prompt without changing anything.
func (a *App) CancelPrompt() {
	a.prompt = nil
}

// Close ends a run in progress so it is recorded.
func (a *App) Close() {
	a.endRun()
}

// Render draws the active screen and collects its clickable regions.
func (a *App) Render(s *core.Screen) {
	a.size = core.Point{X: s.Width(), Y: s.Height()}
	a.regions = a.regions[:0]
	s.Clear()

	switch a.screen {
	case MainMenu:
		a.renderMainMenu(s)
	case CodeBuilder:
		a.renderCodeBuilder(s)
	case Shop:
		a.renderShop(s)
	case Skins:
		a.renderSkins(s)
	case InGame:
		a.renderInGame(s)
	}

	if a.notice.text != "" {
		s.DrawTextCentered(s.Height()-1, a.notice.text, a.notice.color)
	}
}

// goTo switches screens. The frame clock restarts so the new screen does
// not see the time spent on the old one.
func (a *App) goTo(id ScreenID) {
	if a.screen == InGame && id != InGame {
		a.endRun()
	}
	a.screen = id
	a.regions = a.regions[:0]
	a.focus = 0
	a.clock.Reset()
	a.input.ReleaseAll()
}

func (a *App) back() {
	switch a.screen {
	case InGame:
		if a.demo {
			a.endRun()
			a.done = true
			return
		}
		a.goTo(MainMenu)
	case CodeBuilder:
		a.draft = nil
		a.goTo(MainMenu)
	case Shop, Skins:
		a.goTo(MainMenu)
	}
}

func (a *App) startGame() {
	a.goTo(InGame)
	a.session = NewSession(SessionConfig{
		Cols:     a.size.X,
		Rows:     max(a.size.Y-hudRows, 1),
		Rand:     a.rng,
		Settings: a.settings,
		Player:   a.player,
		Rewards:  a.rewards,
		Save:     a.savePlayer,
	})
	a.logger.Debug("run started", "namespace", a.store.Namespace())
}

func (a *App) endRun() {
	s := a.session
	if s == nil {
		return
	}
	a.session = nil

	a.logger.Info("run finished", "namespace", a.store.Namespace(), "floor", s.Floor(), "earned", s.Earned())
	if a.runs == nil {
		return
	}
	_, err := a.runs.RecordRun(storage.Run{
		Namespace:      a.store.Namespace(),
		FloorsReached:  s.Floor(),
		CurrencyEarned: s.Earned(),
		Duration:       time.Duration(s.Elapsed() * float64(time.Second)),
	})
	if err != nil {
		a.logger.Warn("cannot record run", "error", err)
	}
}

func (a *App) requestImport() {
	a.prompt = &Prompt{
		Kind:  PromptImport,
		Title: gotext.Get("Paste settings JSON"),
	}
}

func (a *App) importSettings(text string) {
	if a.settingsLocked {
		a.setNotice(gotext.Get("Import failed: saved settings are unreadable"), core.ColorRed)
		return
	}
	err := a.store.ImportSettings(a.settings, text)
	switch {
	case errors.Is(err, profile.ErrImportParse):
		a.logger.Info("settings import rejected", "error", err)
		a.setNotice(gotext.Get("Import failed: invalid settings"), core.ColorRed)
	case err != nil:
		a.logger.Warn("cannot save imported settings", "error", err)
		a.setNotice(gotext.Get("Import failed: settings could not be saved"), core.ColorRed)
	default:
		a.setNotice(gotext.Get("Settings imported"), core.ColorGreen)
	}
}

func (a *App) savePlayer() {
	if a.playerLocked {
		a.logger.Debug("skipping player save, saved record was unreadable")
		return
	}
	if err := a.store.SavePlayerData(a.player); err != nil {
		a.logger.Warn("cannot save player data", "error", err)
	}
}

func (a *App) saveSettings() {
	if a.settingsLocked {
		a.logger.Debug("skipping settings save, saved record was unreadable")
		return
	}
	if err := a.store.SaveSettings(a.settings); err != nil {
		a.logger.Warn("cannot save settings", "error", err)
	}
}

// setNotice shows a message; its lifetime starts at the next Tick.
func (a *App) setNotice(text string, c core.Color) {
	a.notice = notice{text: text, color: c}
}

func (a *App) ageNotice(now time.Time) {
	if a.notice.text == "" {
		return
	}
	if a.notice.until.IsZero() {
		a.notice.until = now.Add(noticeDuration)
		return
	}
	if now.After(a.notice.until) {
		a.notice = notice{}
	}
}
