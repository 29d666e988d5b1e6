package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var flagRunsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recent runs",
	Long: `Display the latest runs and the deepest floor reached.

A run starts when you enter the dungeon and ends when you leave it.

Examples:
  dungeon runs
  dungeon runs --limit 25
  dungeon runs --user alice`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().StringVar(&flagUser, "user", "", "Save namespace (SSH user name; empty = local player)")
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
}

func runRuns(_ *cobra.Command, _ []string) {
	e, err := loadEnv(false)
	if err != nil {
		fail("%v", err)
	}
	defer e.Close()
	e.requireDB()

	runs, err := e.store.RecentRuns(flagUser, flagRunsLimit)
	if err != nil {
		e.Close()
		fail("retrieving runs: %v", err)
	}
	best, err := e.store.BestFloor(flagUser)
	if err != nil {
		e.Close()
		fail("retrieving best floor: %v", err)
	}

	styleHeading.Println("Recent Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'dungeon play' and take the elevator down!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-6s  %-8s  %s\n", "#", "Floor", "Coins", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-8s  %s\n", "-", "-----", "-----", "----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-6d  %s  %-8s  %s\n",
			i+1,
			r.FloorsReached,
			styleCoins.Sprintf("%-6d", r.CurrencyEarned),
			r.Duration.Round(time.Second),
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	fmt.Println()
	fmt.Printf("Best floor: %s\n", styleOn.Sprint(best))
}
