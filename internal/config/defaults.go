package config

import (
	_ "embed"
	"maps"
)

//go:embed defaults/dungeon.yaml
var defaultYAML []byte

// DefaultSettings returns the built-in game settings.
func DefaultSettings() map[string]int {
	return map[string]int{
		"TARGET_WIDTH":            60,
		"CURSOR_WIDTH":            4,
		"CURSOR_SPEED":            600,
		"MOVE_DELAY":              100,
		"ELEVATOR_SIZE":           6,
		"ELEVATOR_COUNTDOWN_TIME": 30,
		"FLOORS_PER_ADD":          7,
		"BASE_ROOM_COUNT":         8,
		"BASE_MACHINE_COUNT":      4,
		"EXTRA_AMOUNT":            1,
		"WALL_CHANCE":             20,
	}
}

// Default returns the hardcoded configuration used when the embedded YAML
// cannot be parsed.
func Default() Config {
	return Config{
		FPS:       60,
		DBPath:    "~/.dungeon/save.db",
		LogPath:   "~/.dungeon/dungeon.log",
		Language:  "en",
		KeyHoldMS: 180,
		Settings:  DefaultSettings(),
		Shop: ShopConfig{
			Skins: map[string]int{
				"green": 20,
				"red":   20,
				"blue":  20,
			},
			Cosmetics: map[string]int{
				"ring":   50,
				"tophat": 30,
			},
		},
		Rewards: RewardConfig{
			Base: 8,
			Ring: 12,
		},
		SSH: SSHConfig{
			Address:            ":23235",
			IdleTimeoutMinutes: 30,
		},
	}
}

// fillDefaults copies defaults into any field a partial YAML file left zero.
func fillDefaults(cfg *Config) {
	def := Default()

	if cfg.FPS <= 0 {
		cfg.FPS = def.FPS
	}
	if cfg.DBPath == "" {
		cfg.DBPath = def.DBPath
	}
	if cfg.LogPath == "" {
		cfg.LogPath = def.LogPath
	}
	if cfg.Language == "" {
		cfg.Language = def.Language
	}
	if cfg.KeyHoldMS <= 0 {
		cfg.KeyHoldMS = def.KeyHoldMS
	}
	if cfg.Settings == nil {
		cfg.Settings = make(map[string]int)
	}
	for k, v := range def.Settings {
		if _, ok := cfg.Settings[k]; !ok {
			cfg.Settings[k] = v
		}
	}
	if len(cfg.Shop.Skins) == 0 {
		cfg.Shop.Skins = maps.Clone(def.Shop.Skins)
	}
	if len(cfg.Shop.Cosmetics) == 0 {
		cfg.Shop.Cosmetics = maps.Clone(def.Shop.Cosmetics)
	}
	if cfg.Rewards.Base <= 0 {
		cfg.Rewards.Base = def.Rewards.Base
	}
	if cfg.Rewards.Ring <= 0 {
		cfg.Rewards.Ring = def.Rewards.Ring
	}
	if cfg.SSH.Address == "" {
		cfg.SSH.Address = def.SSH.Address
	}
	if cfg.SSH.IdleTimeoutMinutes <= 0 {
		cfg.SSH.IdleTimeoutMinutes = def.SSH.IdleTimeoutMinutes
	}
}
