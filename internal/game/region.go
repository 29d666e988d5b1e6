package game

import "github.com/vovakirdan/dungeon-collector/internal/core"

// Region is a clickable area registered while a screen renders.
type Region struct {
	Rect   core.Rect
	Label  string
	Action func()
}

// hitTest returns the region under (x, y). Regions drawn later sit on top,
// so the search runs back to front.
func hitTest(regions []Region, x, y int) (Region, bool) {
	for i := len(regions) - 1; i >= 0; i-- {
		if regions[i].Rect.Contains(x, y) {
			return regions[i], true
		}
	}
	return Region{}, false
}
