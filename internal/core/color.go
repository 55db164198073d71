package core

import "image/color"

// Color is a palette index for a screen cell.
// Frontends map it to ANSI codes (terminal) or RGBA (window).
type Color uint8

// Palette entries used by the hedgehog renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightYellow
	ColorBrightBlue
	ColorOrange
	ColorGray
	ColorBrown
)

var ansiCodes = [...]string{
	ColorDefault:      "",
	ColorRed:          "1",
	ColorGreen:        "2",
	ColorYellow:       "3",
	ColorBlue:         "4",
	ColorMagenta:      "5",
	ColorCyan:         "6",
	ColorWhite:        "7",
	ColorBrightYellow: "11",
	ColorBrightBlue:   "12",
	ColorOrange:       "208",
	ColorGray:         "245",
	ColorBrown:        "130",
}

var rgbaValues = [...]color.RGBA{
	ColorDefault:      {R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff},
	ColorRed:          {R: 0xd0, G: 0x30, B: 0x30, A: 0xff},
	ColorGreen:        {R: 0x3c, G: 0xb0, B: 0x48, A: 0xff},
	ColorYellow:       {R: 0xe8, G: 0xc0, B: 0x20, A: 0xff},
	ColorBlue:         {R: 0x28, G: 0x58, B: 0xd8, A: 0xff},
	ColorMagenta:      {R: 0xb0, G: 0x40, B: 0xc0, A: 0xff},
	ColorCyan:         {R: 0x30, G: 0xc0, B: 0xd0, A: 0xff},
	ColorWhite:        {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	ColorBrightYellow: {R: 0xff, G: 0xe8, B: 0x40, A: 0xff},
	ColorBrightBlue:   {R: 0x50, G: 0x90, B: 0xff, A: 0xff},
	ColorOrange:       {R: 0xff, G: 0x88, B: 0x10, A: 0xff},
	ColorGray:         {R: 0x8a, G: 0x8a, B: 0x8a, A: 0xff},
	ColorBrown:        {R: 0x8b, G: 0x5a, B: 0x2b, A: 0xff},
}

// ANSI returns the 256-color code for terminal styling.
// ColorDefault and unknown colors return "" (no styling).
func (c Color) ANSI() string {
	if int(c) >= len(ansiCodes) {
		return ""
	}
	return ansiCodes[c]
}

// RGBA returns the color used by pixel frontends.
func (c Color) RGBA() color.RGBA {
	if int(c) >= len(rgbaValues) {
		return rgbaValues[ColorDefault]
	}
	return rgbaValues[c]
}
