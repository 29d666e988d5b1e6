package window

import (
	"image/color"

	"github.com/vovakirdan/dungeon-collector/internal/core"
)

var background = color.RGBA{0x10, 0x10, 0x14, 0xff}

// palette maps core.Color to RGB.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault: {0xe0, 0xe0, 0xe0, 0xff},
	core.ColorBlack:   {0x00, 0x00, 0x00, 0xff},
	core.ColorRed:     {0xff, 0x00, 0x00, 0xff},
	core.ColorGreen:   {0x00, 0xff, 0x00, 0xff},
	core.ColorBlue:    {0x30, 0x50, 0xff, 0xff},
	core.ColorGold:    {0xd4, 0xaf, 0x37, 0xff},
	core.ColorCyan:    {0x00, 0xd0, 0xd0, 0xff},
	core.ColorMagenta: {0xd0, 0x00, 0xd0, 0xff},
	core.ColorWhite:   {0xff, 0xff, 0xff, 0xff},
	core.ColorGray:    {0x80, 0x80, 0x80, 0xff},
	core.ColorDim:     {0x40, 0x40, 0x48, 0xff},
}

func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}

// faded returns c with its alpha scaled down, for translucent overlays.
func faded(c color.RGBA, alpha uint8) color.RGBA {
	scale := float64(alpha) / 255
	return color.RGBA{
		R: uint8(float64(c.R) * scale),
		G: uint8(float64(c.G) * scale),
		B: uint8(float64(c.B) * scale),
		A: alpha,
	}
}
