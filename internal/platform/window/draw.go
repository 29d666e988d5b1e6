package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/dungeon-collector/internal/core"
)

func (w *Window) drawCells(dst *ebiten.Image) {
	for y := 0; y < w.screen.Height(); y++ {
		for x := 0; x < w.screen.Width(); x++ {
			cell := w.screen.GetCell(x, y)
			if cell.Rune == ' ' {
				continue
			}
			w.drawCell(dst, x*cellW, y*cellH, cell.Rune, rgba(cell.Color))
		}
	}
}

// drawCell paints one glyph. The bitmap font only covers ASCII, so the
// block and line glyphs the screens use are drawn as shapes.
func (w *Window) drawCell(dst *ebiten.Image, px, py int, r rune, c color.RGBA) {
	x, y := float32(px), float32(py)
	const cw, ch = float32(cellW), float32(cellH)

	switch r {
	case '#':
		vector.DrawFilledRect(dst, x, y, cw, ch, c, false)
	case '●':
		vector.DrawFilledCircle(dst, x+cw/2, y+ch/2, cw/2-0.5, c, true)
	case '░':
		vector.DrawFilledRect(dst, x, y, cw, ch, faded(c, 0x50), false)
	case '·':
		vector.DrawFilledRect(dst, x+cw/2-1, y+ch/2-1, 2, 2, c, false)
	case '▄':
		vector.DrawFilledRect(dst, x, y+ch/2, cw, ch/2, c, false)
	case '─':
		vector.DrawFilledRect(dst, x, y+ch/2, cw, 1, c, false)
	case '│':
		vector.DrawFilledRect(dst, x+cw/2, y, 1, ch, c, false)
	case '┌':
		vector.DrawFilledRect(dst, x+cw/2, y+ch/2, cw/2, 1, c, false)
		vector.DrawFilledRect(dst, x+cw/2, y+ch/2, 1, ch/2, c, false)
	case '┐':
		vector.DrawFilledRect(dst, x, y+ch/2, cw/2+1, 1, c, false)
		vector.DrawFilledRect(dst, x+cw/2, y+ch/2, 1, ch/2, c, false)
	case '└':
		vector.DrawFilledRect(dst, x+cw/2, y+ch/2, cw/2, 1, c, false)
		vector.DrawFilledRect(dst, x+cw/2, y, 1, ch/2, c, false)
	case '┘':
		vector.DrawFilledRect(dst, x, y+ch/2, cw/2+1, 1, c, false)
		vector.DrawFilledRect(dst, x+cw/2, y, 1, ch/2, c, false)
	default:
		w.drawText(dst, px, py, string(r), c)
	}
}

func (w *Window) drawText(dst *ebiten.Image, px, py int, s string, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(px), float64(py+1))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, w.face, op)
}

// drawPrompt overlays the text field along the bottom of the window.
func (w *Window) drawPrompt(dst *ebiten.Image) {
	p, _ := w.app.Prompt()
	width := float32(w.screen.Width() * cellW)
	top := (w.screen.Height() - 4) * cellH

	vector.DrawFilledRect(dst, 0, float32(top), width, 4*cellH, color.RGBA{0x20, 0x20, 0x28, 0xf0}, false)
	w.drawText(dst, cellW, top+cellH/2, p.Title+":", rgba(core.ColorGold))
	w.drawText(dst, cellW, top+cellH*2, "> "+string(w.promptText)+"_", rgba(core.ColorWhite))
}
