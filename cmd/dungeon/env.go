package main

import (
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/leonelquinteros/gotext"
	"golang.org/x/term"

	"github.com/vovakirdan/dungeon-collector/internal/config"
	"github.com/vovakirdan/dungeon-collector/internal/core"
	"github.com/vovakirdan/dungeon-collector/internal/game"
	"github.com/vovakirdan/dungeon-collector/internal/profile"
	"github.com/vovakirdan/dungeon-collector/internal/storage"
)

// env is what every command needs: the loaded config, a logger and the
// save database.
type env struct {
	cfg     config.Config
	logger  *log.Logger
	kv      storage.KV
	store   *storage.Store // nil with --ephemeral
	logFile *os.File
}

// loadEnv reads the config, applies the global flags and opens the
// database. Commands that draw to the terminal pass toFile so log output
// goes to the config's log file instead of stderr.
func loadEnv(toFile bool) (*env, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagFPS > 0 {
		cfg.FPS = flagFPS
	}
	if flagDBPath != "" {
		cfg.DBPath = flagDBPath
	}
	if flagLocale != "" {
		cfg.Language = flagLocale
	}

	e := &env{cfg: cfg}
	e.logger = e.openLogger(toFile)
	setupLocale(cfg, e.logger)

	if flagEphemeral {
		e.kv = storage.NewMemory()
		return e, nil
	}
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		e.Close()
		return nil, err
	}
	e.store = store
	e.kv = store
	return e, nil
}

func (e *env) openLogger(toFile bool) *log.Logger {
	var w io.Writer = os.Stderr
	if toFile {
		w = io.Discard
		if path, err := storage.ExpandHome(e.cfg.LogPath); err == nil {
			if mkErr := os.MkdirAll(filepath.Dir(path), 0o755); mkErr == nil {
				if f, openErr := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); openErr == nil {
					e.logFile = f
					w = f
				}
			}
		}
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "dungeon",
	})
}

// setupLocale loads translations when a locale directory is configured.
// Without one gotext returns the English msgids unchanged.
func setupLocale(cfg config.Config, logger *log.Logger) {
	if cfg.LocaleDir == "" {
		return
	}
	dir, err := storage.ExpandHome(cfg.LocaleDir)
	if err != nil {
		logger.Warn("ignoring locale directory", "dir", cfg.LocaleDir, "error", err)
		return
	}
	gotext.Configure(dir, cfg.Language, "default")
	logger.Debug("locale loaded", "dir", dir, "language", cfg.Language)
}

// Close releases the database and the log file.
func (e *env) Close() {
	if e.store != nil {
		e.store.Close()
	}
	if e.logFile != nil {
		e.logFile.Close()
	}
}

// profileStore returns the save records for a namespace; the local player
// uses the empty one.
func (e *env) profileStore(namespace string) *profile.Store {
	return profile.NewStore(e.kv, namespace, e.logger)
}

// settings returns the configured defaults with the saved settings merged
// over them. It exits when the saved settings cannot be read.
func (e *env) settings(ps *profile.Store) profile.Settings {
	s := e.defaultSettings()
	if _, err := ps.LoadSettings(s); err != nil {
		e.Close()
		fail("%v", err)
	}
	return s
}

func (e *env) defaultSettings() profile.Settings {
	return profile.Settings(e.cfg.Settings).Clone()
}

// gameOptions builds the App options shared by every frontend.
func (e *env) gameOptions(rt core.RuntimeConfig) game.Options {
	opts := game.Options{
		Store:    e.profileStore(""),
		Catalog:  profile.NewCatalog(e.cfg.Shop.Skins, e.cfg.Shop.Cosmetics),
		Settings: profile.Settings(e.cfg.Settings),
		Rewards:  game.Rewards{Base: e.cfg.Rewards.Base, Ring: e.cfg.Rewards.Ring},
		Rand:     newRand(rt.Seed),
		Logger:   e.logger,
	}
	if e.store != nil {
		opts.Runs = e.store
	}
	return opts
}

// requireDB exits when the command needs run history that --ephemeral
// does not keep.
func (e *env) requireDB() {
	if e.store == nil {
		e.Close()
		fail("run history is not kept with --ephemeral")
	}
}

// runtimeConfig sizes the game to the terminal.
func (e *env) runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = e.cfg.FPS
	cfg.Seed = flagSeed
	cfg.KeyHold = e.cfg.KeyHold()
	return cfg
}

// newRand seeds the floor generator; 0 picks a time-based seed.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
