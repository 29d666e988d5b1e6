package profile

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dungeon-collector/internal/storage"
)

// Storage keys for the two saved records.
const (
	KeyPlayerData = "playerData"
	KeySettings   = "gameSettings"
)

// Store loads and saves the player's records in a key-value store.
// A non-empty namespace prefixes every key so several players can share
// one database.
type Store struct {
	kv        storage.KV
	namespace string
	logger    *log.Logger
}

// NewStore creates a Store. A nil logger discards log output.
func NewStore(kv storage.KV, namespace string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Store{kv: kv, namespace: namespace, logger: logger}
}

// Namespace returns the key prefix used by this store.
func (s *Store) Namespace() string {
	return s.namespace
}

func (s *Store) key(name string) string {
	if s.namespace == "" {
		return name
	}
	return s.namespace + "/" + name
}

// LoadPlayerData replaces *into with the saved record. It reports whether a
// saved record was applied. A missing or unparsable record leaves *into
// untouched and returns false with a nil error; a failed read returns the
// error so callers do not mistake it for a first run.
func (s *Store) LoadPlayerData(into *PlayerData) (bool, error) {
	data, ok, err := s.read(KeyPlayerData)
	if err != nil || !ok {
		return false, err
	}

	loaded := NewPlayerData()
	if err := json.Unmarshal(data, loaded); err != nil {
		s.logger.Warn("discarding unreadable saved record", "key", s.key(KeyPlayerData), "error", err)
		return false, nil
	}
	*into = *loaded
	return true, nil
}

// SavePlayerData writes the whole record, replacing what was stored.
func (s *Store) SavePlayerData(p *PlayerData) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("profile: cannot encode player data: %w", err)
	}
	return s.kv.Put(s.key(KeyPlayerData), data)
}

// LoadSettings merges saved settings over into, with the same results as
// LoadPlayerData.
func (s *Store) LoadSettings(into Settings) (bool, error) {
	data, ok, err := s.read(KeySettings)
	if err != nil || !ok {
		return false, err
	}

	loaded, err := decodeSettings(data)
	if err != nil {
		s.logger.Warn("discarding unreadable saved record", "key", s.key(KeySettings), "error", err)
		return false, nil
	}
	into.Merge(loaded)
	return true, nil
}

// SaveSettings writes the whole settings map, replacing what was stored.
func (s *Store) SaveSettings(settings Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("profile: cannot encode settings: %w", err)
	}
	return s.kv.Put(s.key(KeySettings), data)
}

// ImportSettings parses text, merges it into settings and saves. settings
// is only modified once the merged map has been saved. A parse error wraps
// ErrImportParse.
func (s *Store) ImportSettings(settings Settings, text string) error {
	imported, err := ParseImport(text)
	if err != nil {
		return err
	}
	merged := make(Settings, len(settings)+len(imported))
	merged.Merge(settings)
	merged.Merge(imported)
	if err := s.SaveSettings(merged); err != nil {
		return err
	}
	settings.Merge(imported)
	return nil
}

// Reset overwrites the player with a first-run record and the settings with
// a copy of defaults.
func (s *Store) Reset(defaults Settings) (*PlayerData, Settings, error) {
	p := NewPlayerData()
	settings := defaults.Clone()
	if settings == nil {
		settings = DefaultSettings()
	}
	if err := s.SavePlayerData(p); err != nil {
		return nil, nil, err
	}
	if err := s.SaveSettings(settings); err != nil {
		return nil, nil, err
	}
	return p, settings, nil
}

func (s *Store) read(name string) ([]byte, bool, error) {
	data, ok, err := s.kv.Get(s.key(name))
	if err != nil {
		s.logger.Warn("cannot read saved record", "key", s.key(name), "error", err)
		return nil, false, fmt.Errorf("profile: cannot read %s: %w", s.key(name), err)
	}
	return data, ok, nil
}
