package profile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"math"
	"sort"
	"strings"

	"github.com/vovakirdan/dungeon-collector/internal/config"
)

// Settings keys read by the game.
const (
	SettingTargetWidth           = "TARGET_WIDTH"
	SettingCursorWidth           = "CURSOR_WIDTH"
	SettingCursorSpeed           = "CURSOR_SPEED"
	SettingMoveDelay             = "MOVE_DELAY"
	SettingElevatorSize          = "ELEVATOR_SIZE"
	SettingElevatorCountdownTime = "ELEVATOR_COUNTDOWN_TIME"
	SettingFloorsPerAdd          = "FLOORS_PER_ADD"
	SettingBaseRoomCount         = "BASE_ROOM_COUNT"
	SettingBaseMachineCount      = "BASE_MACHINE_COUNT"
	SettingExtraAmount           = "EXTRA_AMOUNT"
	SettingWallChance            = "WALL_CHANCE"
)

// ErrImportParse is returned for settings text that is not a flat JSON
// object of integers.
var ErrImportParse = errors.New("profile: invalid settings")

// Settings is a flat map of named integer tunables. Values have no
// enforced range; readers clamp what they use.
type Settings map[string]int

// DefaultSettings returns the built-in tunables.
func DefaultSettings() Settings {
	return Settings(config.DefaultSettings())
}

// Get returns the value for key, or fallback when the key is absent.
func (s Settings) Get(key string, fallback int) int {
	if v, ok := s[key]; ok {
		return v
	}
	return fallback
}

// Clone returns an independent copy.
func (s Settings) Clone() Settings {
	return maps.Clone(s)
}

// Merge copies every entry of other into s, overwriting existing keys.
func (s Settings) Merge(other Settings) {
	maps.Copy(s, other)
}

// Keys returns the setting names in ascending order.
func (s Settings) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ParseImport decodes user-supplied settings text. The text must be a JSON
// object whose values are all integral numbers.
func ParseImport(text string) (Settings, error) {
	return decodeSettings([]byte(text))
}

func decodeSettings(data []byte) (Settings, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrImportParse)
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImportParse, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after object", ErrImportParse)
	}

	out := make(Settings, len(raw))
	for k, v := range raw {
		if strings.TrimSpace(k) == "" {
			return nil, fmt.Errorf("%w: empty key", ErrImportParse)
		}
		n, ok := v.(json.Number)
		if !ok {
			return nil, fmt.Errorf("%w: %s is not a number", ErrImportParse, k)
		}
		i, err := toInt(n)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrImportParse, k, err)
		}
		out[k] = i
	}
	return out, nil
}

func toInt(n json.Number) (int, error) {
	if i, err := n.Int64(); err == nil {
		if i > math.MaxInt32 || i < math.MinInt32 {
			return 0, errors.New("out of range")
		}
		return int(i), nil
	}
	f, err := n.Float64()
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, errors.New("must be a whole number")
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, errors.New("out of range")
	}
	return int(f), nil
}

// MarshalJSON writes the settings as a flat JSON object.
func (s Settings) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]int(s))
}
