// Package window runs the game in a desktop window with Ebiten. The same
// cell screen the terminal shows is painted as a grid of 8×16 pixel cells;
// the window delivers real key-up events and pixel-exact clicks.
package window

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/dungeon-collector/internal/core"
	"github.com/vovakirdan/dungeon-collector/internal/game"
)

// Cell size in pixels.
const (
	cellW = 8
	cellH = 16
)

// Window is the ebiten.Game hosting one game.App.
type Window struct {
	app    *game.App
	screen *core.Screen
	face   text.Face
	logger *log.Logger

	promptText []rune
	prompting  bool
}

// New creates a window for app with a cols × rows cell screen.
func New(app *game.App, cols, rows int, logger *log.Logger) *Window {
	if logger == nil {
		logger = log.Default()
	}
	return &Window{
		app:    app,
		screen: core.NewScreen(cols, rows),
		face:   text.NewGoXFace(basicfont.Face7x13),
		logger: logger,
	}
}

// Update runs one frame (ebiten.Game).
func (w *Window) Update() error {
	now := time.Now()

	if w.syncPrompt() {
		w.updatePrompt()
	} else {
		w.updateKeys(now)
		w.updateMouse()
	}

	w.app.Tick(now)

	if w.app.Done() {
		return ebiten.Termination
	}
	return nil
}

// Draw paints the current screen (ebiten.Game).
func (w *Window) Draw(dst *ebiten.Image) {
	w.app.Render(w.screen)
	dst.Fill(background)
	w.drawCells(dst)
	if w.prompting {
		w.drawPrompt(dst)
	}
}

// Layout keeps a fixed logical size; ebiten scales it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.screen.Width() * cellW, w.screen.Height() * cellH
}

// Run opens the window and blocks until it is closed.
func Run(app *game.App, cfg core.RuntimeConfig, logger *log.Logger) error {
	w := New(app, cfg.ScreenW, cfg.ScreenH, logger)

	ebiten.SetWindowSize(cfg.ScreenW*cellW*2, cfg.ScreenH*cellH*2)
	ebiten.SetWindowTitle("Dungeon Machine Collector")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	w.logger.Info("opening window", "cols", cfg.ScreenW, "rows", cfg.ScreenH)
	err := ebiten.RunGame(w)
	app.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
