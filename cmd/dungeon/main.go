// dungeon is Dungeon Machine Collector: walk a player marker across a
// walled floor to the elevator, collect coins and spend them on skins.
//
// Usage:
//
//	dungeon                  - Play in the terminal (same as play)
//	dungeon play             - Play in the terminal
//	dungeon demo             - Straight into the dungeon, no menus
//	dungeon window           - Play in a desktop window
//	dungeon serve            - Start SSH server for remote play
//	dungeon settings ...     - Show, import or export game settings
//	dungeon profile ...      - Show or reset the saved player
//	dungeon runs             - Show recent runs
//
// Global flags:
//
//	--config <path> - Application config YAML
//	--fps <rate>    - Set tick rate (default: from config, 60)
//	--seed <value>  - Set RNG seed for reproducible floors
//	--db <path>     - Set database path (default: ~/.dungeon/save.db)
//	--locale <lang> - UI language (needs locale_dir in the config)
//	--ephemeral     - Keep saves in memory only
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagLocale string

	flagEphemeral bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dungeon",
	Short: "Dungeon Machine Collector - a tiny dungeon crawler for your terminal",
	Long: `Dungeon Machine Collector drops you on a walled dungeon floor. Walk to
the elevator on the right edge to earn coins, then ride it down to the
next floor. Spend coins in the shop on skins and cosmetics.

Available commands:
  play      - Play in the terminal (default)
  demo      - Straight into the dungeon, no menus
  window    - Play in a desktop window
  serve     - Start SSH server for remote play
  settings  - Show, import or export game settings
  profile   - Show or reset the saved player
  runs      - Show recent runs

Examples:
  dungeon
  dungeon play --seed 42
  dungeon window
  dungeon serve --ssh :2222
  dungeon settings import ./tuning.json
  dungeon runs`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to application config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to save database (empty = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLocale, "locale", "", "UI language, e.g. en or de")
	rootCmd.PersistentFlags().BoolVar(&flagEphemeral, "ephemeral", false, "Keep saves in memory only; nothing is written to the database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(runsCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
