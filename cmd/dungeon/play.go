package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dungeon-collector/internal/core"
	"github.com/vovakirdan/dungeon-collector/internal/game"
	"github.com/vovakirdan/dungeon-collector/internal/platform/tui"
	"github.com/vovakirdan/dungeon-collector/internal/platform/window"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal with the main menu.

Controls:
  Arrows/WASD     - Move
  Up/Down/Tab     - Move menu focus
  Enter/Space     - Activate focused button
  Mouse click     - Activate button
  Esc             - Back to the main menu
  Q/Ctrl+C        - Quit

Examples:
  dungeon play
  dungeon play --seed 42 --fps 30`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Straight into the dungeon, no menus",
	Long: `Start on floor 1 without the menus. Coins are still earned and saved.
Esc quits.

Examples:
  dungeon demo`,
	Args: cobra.NoArgs,
	Run:  runDemo,
}

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a desktop window. Movement keys register real key
releases, and buttons are clicked with the mouse.

Examples:
  dungeon window
  dungeon window --fps 120`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runPlay(_ *cobra.Command, _ []string) {
	runTerminal(false)
}

func runDemo(_ *cobra.Command, _ []string) {
	runTerminal(true)
}

func runTerminal(demo bool) {
	e, err := loadEnv(true)
	if err != nil {
		fail("%v", err)
	}
	defer e.Close()

	cfg := e.runtimeConfig()
	opts := e.gameOptions(cfg)
	opts.Width, opts.Height = tui.AppSize(cfg.ScreenW, cfg.ScreenH)
	opts.Demo = demo

	e.logger.Info("starting", "demo", demo, "cols", cfg.ScreenW, "rows", cfg.ScreenH, "seed", cfg.Seed)
	if err := tui.Run(game.NewApp(opts), cfg); err != nil {
		e.Close()
		fail("running game: %v", err)
	}
}

func runWindow(_ *cobra.Command, _ []string) {
	e, err := loadEnv(false)
	if err != nil {
		fail("%v", err)
	}
	defer e.Close()

	// The window has no terminal to measure, so it uses the default grid.
	def := core.DefaultConfig()
	cfg := e.runtimeConfig()
	cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH

	opts := e.gameOptions(cfg)
	opts.Width, opts.Height = cfg.ScreenW, cfg.ScreenH

	if err := window.Run(game.NewApp(opts), cfg, e.logger); err != nil {
		e.Close()
		fail("%v", err)
	}
}
