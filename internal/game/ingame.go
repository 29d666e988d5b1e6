package game

import (
	"math"

	"github.com/leonelquinteros/gotext"

	"github.com/vovakirdan/dungeon-collector/internal/core"
	"github.com/vovakirdan/dungeon-collector/internal/dungeon"
)

// Glyphs of the play area.
const (
	glyphWall     = '#'
	glyphFloor    = '·'
	glyphElevator = '░'
)

func (a *App) renderInGame(s *core.Screen) {
	sess := a.session
	if sess == nil {
		return
	}

	hud := gotext.Get("Floor %d   Coins %d", sess.Floor(), a.player.Currency)
	s.DrawText(1, 0, hud, core.ColorWhite)
	if sess.Countdown() > 0 {
		s.DrawText(s.Width()/2, 0, gotext.Get("Elevator leaves in %.1fs", sess.Countdown()), core.ColorCyan)
	} else if a.demo {
		s.DrawText(s.Width()/2, 0, gotext.Get("esc to quit"), core.ColorDim)
	}

	grid := sess.Grid()
	exitCol := int(math.Floor(sess.ExitX()))
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			switch {
			case grid.At(col, row) == dungeon.Wall:
				s.Set(col, row+1, glyphWall, core.ColorGray)
			case col >= exitCol:
				s.Set(col, row+1, glyphElevator, core.ColorCyan)
			default:
				s.Set(col, row+1, glyphFloor, core.ColorDim)
			}
		}
	}

	pos := sess.Position()
	px := core.Clamp(int(pos.X), 0, grid.Cols()-1)
	py := core.Clamp(int(pos.Y), 0, grid.Rows()-1)
	drawAvatar(s, px, py+1, a.player)
}
