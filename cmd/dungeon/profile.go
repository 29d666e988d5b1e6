package main

import (
	"fmt"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dungeon-collector/internal/profile"
)

var flagYes bool

var (
	styleHeading = color.Style{color.FgCyan, color.OpBold}
	styleCoins   = color.Style{color.FgYellow, color.OpBold}
	styleOn      = color.Style{color.FgGreen, color.OpBold}
	styleSubtle  = color.Style{color.FgGray}
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or reset the saved player",
	Long: `Inspect or reset the saved player record: coins, owned skins and
cosmetics, and what is equipped.

Examples:
  dungeon profile show
  dungeon profile show --user alice
  dungeon profile reset --yes`,
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved player",
	Args:  cobra.NoArgs,
	Run:   runProfileShow,
}

var profileResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Overwrite the player and settings with first-run defaults",
	Args:  cobra.NoArgs,
	Run:   runProfileReset,
}

func init() {
	profileCmd.PersistentFlags().StringVar(&flagUser, "user", "", "Save namespace (SSH user name; empty = local player)")
	profileResetCmd.Flags().BoolVar(&flagYes, "yes", false, "Confirm the reset")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileResetCmd)
}

func runProfileShow(_ *cobra.Command, _ []string) {
	e, err := loadEnv(false)
	if err != nil {
		fail("%v", err)
	}
	defer e.Close()

	p := profile.NewPlayerData()
	loaded, err := e.profileStore(flagUser).LoadPlayerData(p)
	if err != nil {
		e.Close()
		fail("%v", err)
	}
	if !loaded {
		styleSubtle.Println("No saved player, showing first-run defaults.")
	}
	catalog := profile.NewCatalog(e.cfg.Shop.Skins, e.cfg.Shop.Cosmetics)

	styleHeading.Println("Player")
	fmt.Printf("  Coins: %s\n", styleCoins.Sprint(p.Currency))
	fmt.Println()

	styleHeading.Println("Owned")
	for _, it := range catalog.Inventory(p) {
		mark := styleSubtle.Sprint("[ ]")
		if p.IsEquipped(it) {
			mark = styleOn.Sprint("[x]")
		}
		fmt.Printf("  %s %-10s %s\n", mark, it.ID, styleSubtle.Sprint(it.Kind))
	}

	if listing := catalog.Listing(p); len(listing) > 0 {
		fmt.Println()
		styleHeading.Println("In the shop")
		for _, it := range listing {
			fmt.Printf("      %-10s %-9s %s\n", it.ID, styleSubtle.Sprint(it.Kind), styleCoins.Sprintf("%d", it.Cost))
		}
	}
}

func runProfileReset(_ *cobra.Command, _ []string) {
	if !flagYes {
		fail("this deletes all coins and items; run again with --yes to confirm")
	}

	e, err := loadEnv(false)
	if err != nil {
		fail("%v", err)
	}
	defer e.Close()

	if _, _, err := e.profileStore(flagUser).Reset(e.defaultSettings()); err != nil {
		e.Close()
		fail("resetting profile: %v", err)
	}
	styleOn.Println("Profile reset.")
}
