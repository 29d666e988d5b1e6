package dungeon

import (
	"github.com/vovakirdan/dungeon-collector/internal/core"
	"github.com/vovakirdan/dungeon-collector/internal/profile"
)

// WallChance returns the wall probability for a floor. WALL_CHANCE is the
// base percentage; every FLOORS_PER_ADD floors it grows by EXTRA_AMOUNT
// percent. The result is clamped to [0, 1].
func WallChance(settings profile.Settings, floor int) float64 {
	base := settings.Get(profile.SettingWallChance, int(DefaultWallChance*100))
	perAdd := settings.Get(profile.SettingFloorsPerAdd, 7)
	extra := settings.Get(profile.SettingExtraAmount, 1)

	percent := base
	if perAdd > 0 && floor > 1 {
		percent += ((floor - 1) / perAdd) * extra
	}
	return core.ClampF(float64(percent)/100, 0, 1)
}
