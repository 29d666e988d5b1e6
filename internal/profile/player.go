// Package profile holds the player's saved state (currency, owned and
// equipped items, tunable settings) and persists it to a key-value store.
package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// DefaultSkin is owned by every player and can never be lost.
const DefaultSkin = "default"

// MaxEquippedCosmetics caps how many cosmetics can be worn at once.
const MaxEquippedCosmetics = 2

var (
	ErrInsufficientFunds = errors.New("profile: not enough currency")
	ErrAlreadyOwned      = errors.New("profile: item already owned")
	ErrNotOwned          = errors.New("profile: item not owned")
	ErrCosmeticLimit     = errors.New("profile: cosmetic limit reached")
)

// PlayerData is the persisted player record.
//
// Invariants (restored by Normalize, kept by every mutator):
// DefaultSkin is owned, EquippedSkin is owned, EquippedCosmetics is a
// subset of OwnedCosmetics with at most MaxEquippedCosmetics entries.
type PlayerData struct {
	Currency          int
	EquippedSkin      string
	OwnedSkins        mapset.Set[string]
	OwnedCosmetics    mapset.Set[string]
	EquippedCosmetics mapset.Set[string]
}

// NewPlayerData returns the first-run record.
func NewPlayerData() *PlayerData {
	p := &PlayerData{
		EquippedSkin:      DefaultSkin,
		OwnedSkins:        mapset.New[string](),
		OwnedCosmetics:    mapset.New[string](),
		EquippedCosmetics: mapset.New[string](),
	}
	p.OwnedSkins.Put(DefaultSkin)
	return p
}

// Clone returns a deep copy.
func (p *PlayerData) Clone() *PlayerData {
	c := &PlayerData{
		Currency:          p.Currency,
		EquippedSkin:      p.EquippedSkin,
		OwnedSkins:        copySet(p.OwnedSkins),
		OwnedCosmetics:    copySet(p.OwnedCosmetics),
		EquippedCosmetics: copySet(p.EquippedCosmetics),
	}
	return c
}

// Normalize repairs a record read from storage so the invariants hold.
func (p *PlayerData) Normalize() {
	if p.Currency < 0 {
		p.Currency = 0
	}
	p.OwnedSkins.Put(DefaultSkin)
	if p.EquippedSkin == "" || !p.OwnedSkins.Has(p.EquippedSkin) {
		p.EquippedSkin = DefaultSkin
	}

	equipped := SortedKeys(p.EquippedCosmetics)
	p.EquippedCosmetics = mapset.New[string]()
	for _, id := range equipped {
		if !p.OwnedCosmetics.Has(id) {
			continue
		}
		if p.EquippedCosmetics.Size() >= MaxEquippedCosmetics {
			break
		}
		p.EquippedCosmetics.Put(id)
	}
}

// Credit adds currency.
func (p *PlayerData) Credit(amount int) {
	if amount > 0 {
		p.Currency += amount
	}
}

// Owns reports whether the item is in the matching owned set.
func (p *PlayerData) Owns(item Item) bool {
	if item.Kind == KindSkin {
		return p.OwnedSkins.Has(item.ID)
	}
	return p.OwnedCosmetics.Has(item.ID)
}

// IsEquipped reports whether the item is currently worn.
func (p *PlayerData) IsEquipped(item Item) bool {
	if item.Kind == KindSkin {
		return p.EquippedSkin == item.ID
	}
	return p.EquippedCosmetics.Has(item.ID)
}

// Wearing reports whether a cosmetic is equipped.
func (p *PlayerData) Wearing(cosmetic string) bool {
	return p.EquippedCosmetics.Has(cosmetic)
}

// Buy debits the item's cost and adds it to the owned set. On error the
// record is unchanged.
func (p *PlayerData) Buy(item Item) error {
	if p.Owns(item) {
		return ErrAlreadyOwned
	}
	if p.Currency < item.Cost {
		return ErrInsufficientFunds
	}
	p.Currency -= item.Cost
	if item.Kind == KindSkin {
		p.OwnedSkins.Put(item.ID)
	} else {
		p.OwnedCosmetics.Put(item.ID)
	}
	return nil
}

// ToggleEquip equips or unequips an owned item.
//
// Skins: selecting another skin replaces the equipped one; selecting the
// equipped skin falls back to DefaultSkin. Cosmetics: toggles membership;
// equipping a third one is rejected with ErrCosmeticLimit.
func (p *PlayerData) ToggleEquip(item Item) error {
	if !p.Owns(item) {
		return ErrNotOwned
	}

	if item.Kind == KindSkin {
		if p.EquippedSkin == item.ID {
			p.EquippedSkin = DefaultSkin
		} else {
			p.EquippedSkin = item.ID
		}
		return nil
	}

	if p.EquippedCosmetics.Has(item.ID) {
		p.EquippedCosmetics.Remove(item.ID)
		return nil
	}
	if p.EquippedCosmetics.Size() >= MaxEquippedCosmetics {
		return ErrCosmeticLimit
	}
	p.EquippedCosmetics.Put(item.ID)
	return nil
}

// playerWire is the stored JSON layout.
type playerWire struct {
	Currency         int      `json:"currency"`
	OwnedSkins       []string `json:"owned_skins"`
	EquippedSkin     string   `json:"equipped_skin"`
	OwnedCosmetics   []string `json:"owned_cosmetics"`
	EquippedCosmetic []string `json:"equipped_cosmetic"`
}

// playerWireIn accepts fractional currency written by older saves.
type playerWireIn struct {
	Currency         float64  `json:"currency"`
	OwnedSkins       []string `json:"owned_skins"`
	EquippedSkin     string   `json:"equipped_skin"`
	OwnedCosmetics   []string `json:"owned_cosmetics"`
	EquippedCosmetic []string `json:"equipped_cosmetic"`
}

// MarshalJSON writes the record with sorted arrays.
func (p *PlayerData) MarshalJSON() ([]byte, error) {
	return json.Marshal(playerWire{
		Currency:         p.Currency,
		OwnedSkins:       nonNil(SortedKeys(p.OwnedSkins)),
		EquippedSkin:     p.EquippedSkin,
		OwnedCosmetics:   nonNil(SortedKeys(p.OwnedCosmetics)),
		EquippedCosmetic: nonNil(SortedKeys(p.EquippedCosmetics)),
	})
}

// UnmarshalJSON replaces the record with the decoded one. The receiver is
// left untouched when data is malformed.
func (p *PlayerData) UnmarshalJSON(data []byte) error {
	var w playerWireIn
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("profile: malformed player data: %w", err)
	}

	p.Currency = int(w.Currency)
	p.EquippedSkin = w.EquippedSkin
	p.OwnedSkins = setOf(w.OwnedSkins)
	p.OwnedCosmetics = setOf(w.OwnedCosmetics)
	p.EquippedCosmetics = setOf(w.EquippedCosmetic)
	p.Normalize()
	return nil
}

// SortedKeys returns the set's members in ascending order.
func SortedKeys(s mapset.Set[string]) []string {
	var keys []string
	s.Each(func(k string) {
		keys = append(keys, k)
	})
	sort.Strings(keys)
	return keys
}

func setOf(vals []string) mapset.Set[string] {
	s := mapset.New[string]()
	for _, v := range vals {
		s.Put(v)
	}
	return s
}

func copySet(src mapset.Set[string]) mapset.Set[string] {
	dst := mapset.New[string]()
	src.Each(func(k string) {
		dst.Put(k)
	})
	return dst
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
