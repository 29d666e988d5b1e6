package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dungeon-collector/internal/config"
	"github.com/vovakirdan/dungeon-collector/internal/game"
	"github.com/vovakirdan/dungeon-collector/internal/platform/tui"
	"github.com/vovakirdan/dungeon-collector/internal/profile"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own game. Coins, skins and settings are saved
per SSH user name in the server's database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.dungeon/host_key

Examples:
  dungeon serve                           # Listen on :23235 with auto-generated key
  dungeon serve --ssh :2222               # Listen on port 2222
  dungeon serve --host-key ./my_host_key  # Use specific host key
  dungeon serve --db ./save.db            # Use specific database

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, empty = from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (0 = from config)")
}

func runServe(_ *cobra.Command, _ []string) {
	appCfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	if flagLocale != "" {
		appCfg.Language = flagLocale
	}
	setupLocale(appCfg, log.Default())

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = appCfg.SSH.Address
	cfg.HostKeyPath = appCfg.SSH.HostKey
	cfg.IdleTimeout = appCfg.SSH.IdleTimeout()
	cfg.DBPath = appCfg.DBPath
	cfg.TickRate = appCfg.FPS
	cfg.KeyHold = appCfg.KeyHold()

	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}
	if flagDBPath != "" {
		cfg.DBPath = flagDBPath
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}

	cfg.Game = game.Options{
		Catalog:  profile.NewCatalog(appCfg.Shop.Skins, appCfg.Shop.Cosmetics),
		Settings: profile.Settings(appCfg.Settings),
		Rewards:  game.Rewards{Base: appCfg.Rewards.Base, Ring: appCfg.Rewards.Ring},
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting dungeon SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
