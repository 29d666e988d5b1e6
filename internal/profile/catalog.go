package profile

import "sort"

// Kind separates skins (base appearance) from cosmetics (worn extras).
type Kind int

const (
	KindSkin Kind = iota
	KindCosmetic
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindSkin:
		return "skin"
	case KindCosmetic:
		return "cosmetic"
	default:
		return "unknown"
	}
}

// Item is something sold in the shop.
type Item struct {
	ID   string
	Kind Kind
	Cost int
}

// Catalog is the fixed list of purchasable items.
type Catalog struct {
	items []Item
}

// NewCatalog builds a catalog from price tables keyed by item ID.
// Items are ordered skins first, then by cost, then by ID.
func NewCatalog(skins, cosmetics map[string]int) *Catalog {
	items := make([]Item, 0, len(skins)+len(cosmetics))
	for id, cost := range skins {
		if id == DefaultSkin {
			continue
		}
		items = append(items, Item{ID: id, Kind: KindSkin, Cost: max(cost, 0)})
	}
	for id, cost := range cosmetics {
		items = append(items, Item{ID: id, Kind: KindCosmetic, Cost: max(cost, 0)})
	}

	sort.Slice(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		if a.Cost != b.Cost {
			return a.Cost < b.Cost
		}
		return a.ID < b.ID
	})

	return &Catalog{items: items}
}

// DefaultCatalog returns the stock price list.
func DefaultCatalog() *Catalog {
	return NewCatalog(
		map[string]int{"green": 20, "red": 20, "blue": 20},
		map[string]int{"ring": 50, "tophat": 30},
	)
}

// Items returns every item in display order.
func (c *Catalog) Items() []Item {
	return append([]Item(nil), c.items...)
}

// Lookup finds an item by ID. The default skin is always known with cost 0.
func (c *Catalog) Lookup(id string) (Item, bool) {
	if id == DefaultSkin {
		return Item{ID: DefaultSkin, Kind: KindSkin}, true
	}
	for _, it := range c.items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// Listing returns the items the player does not own yet.
func (c *Catalog) Listing(p *PlayerData) []Item {
	var out []Item
	for _, it := range c.items {
		if !p.Owns(it) {
			out = append(out, it)
		}
	}
	return out
}

// Inventory returns the items the player owns, the default skin first.
func (c *Catalog) Inventory(p *PlayerData) []Item {
	out := []Item{{ID: DefaultSkin, Kind: KindSkin}}
	for _, it := range c.items {
		if p.Owns(it) {
			out = append(out, it)
		}
	}
	return out
}
