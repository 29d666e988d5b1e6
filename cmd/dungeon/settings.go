package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dungeon-collector/internal/profile"
)

var (
	flagUser    string
	flagOutPath string
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show, import or export game settings",
	Long: `Manage the saved game settings. These are the same values the Code
Builder screen edits.

Examples:
  dungeon settings show
  dungeon settings import ./tuning.json
  echo '{"CURSOR_SPEED": 800}' | dungeon settings import -
  dungeon settings export --out ./tuning.json`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Args:  cobra.NoArgs,
	Run:   runSettingsShow,
}

var settingsImportCmd = &cobra.Command{
	Use:   "import <file|->",
	Short: "Merge settings from a JSON object",
	Long: `Merge a flat JSON object of whole numbers into the saved settings.
Keys in the file overwrite saved keys; other saved keys are kept.
Use - to read from standard input.`,
	Args: cobra.ExactArgs(1),
	Run:  runSettingsImport,
}

var settingsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the settings as JSON",
	Args:  cobra.NoArgs,
	Run:   runSettingsExport,
}

func init() {
	settingsCmd.PersistentFlags().StringVar(&flagUser, "user", "", "Save namespace (SSH user name; empty = local player)")
	settingsExportCmd.Flags().StringVarP(&flagOutPath, "out", "o", "", "Output file (default: stdout)")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsImportCmd)
	settingsCmd.AddCommand(settingsExportCmd)
}

func runSettingsShow(_ *cobra.Command, _ []string) {
	e, err := loadEnv(false)
	if err != nil {
		fail("%v", err)
	}
	defer e.Close()

	s := e.settings(e.profileStore(flagUser))
	for _, k := range s.Keys() {
		fmt.Printf("%-26s %d\n", k, s[k])
	}
}

func runSettingsImport(_ *cobra.Command, args []string) {
	data, err := readInput(args[0])
	if err != nil {
		fail("%v", err)
	}

	e, err := loadEnv(false)
	if err != nil {
		fail("%v", err)
	}
	defer e.Close()

	ps := e.profileStore(flagUser)
	s := e.settings(ps)
	if err := ps.ImportSettings(s, string(data)); err != nil {
		e.Close()
		if errors.Is(err, profile.ErrImportParse) {
			fail("%s is not a valid settings object: %v", args[0], err)
		}
		fail("saving settings: %v", err)
	}
	fmt.Printf("Imported settings from %s\n", args[0])
}

func runSettingsExport(_ *cobra.Command, _ []string) {
	e, err := loadEnv(false)
	if err != nil {
		fail("%v", err)
	}
	defer e.Close()

	data, err := json.MarshalIndent(e.settings(e.profileStore(flagUser)), "", "  ")
	if err != nil {
		e.Close()
		fail("encoding settings: %v", err)
	}
	data = append(data, '\n')

	if flagOutPath == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(flagOutPath, data, 0o644); err != nil {
		e.Close()
		fail("%v", err)
	}
}

// readInput reads a file, or standard input for "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
