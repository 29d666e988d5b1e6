// Package config provides YAML-based application configuration: default
// game settings, shop prices, floor rewards and frontend options.
package config

import "time"

// Config is the application configuration loaded from YAML.
type Config struct {
	FPS       int            `yaml:"fps"`
	DBPath    string         `yaml:"db_path"`
	LogPath   string         `yaml:"log_path"`
	LocaleDir string         `yaml:"locale_dir"`
	Language  string         `yaml:"language"`
	KeyHoldMS int            `yaml:"key_hold_ms"`
	Settings  map[string]int `yaml:"settings"`
	Shop      ShopConfig     `yaml:"shop"`
	Rewards   RewardConfig   `yaml:"rewards"`
	SSH       SSHConfig      `yaml:"ssh"`
}

// ShopConfig holds item prices by item ID.
type ShopConfig struct {
	Skins     map[string]int `yaml:"skins"`
	Cosmetics map[string]int `yaml:"cosmetics"`
}

// RewardConfig holds the currency credited for completing a floor.
type RewardConfig struct {
	Base int `yaml:"base"` // Without the ring equipped
	Ring int `yaml:"ring"` // With the ring equipped
}

// SSHConfig holds options for the SSH server.
type SSHConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// KeyHold returns how long a terminal key counts as held after its last
// repeat.
func (c Config) KeyHold() time.Duration {
	return time.Duration(c.KeyHoldMS) * time.Millisecond
}

// IdleTimeout returns the SSH idle timeout.
func (c SSHConfig) IdleTimeout() time.Duration {
	return time.Duration(c.IdleTimeoutMinutes) * time.Minute
}
