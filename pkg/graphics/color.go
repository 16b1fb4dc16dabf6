package graphics

import "image/color"

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// RGBAF returns normalized color components (0.0 to 1.0).
func (c Color) RGBAF() (r, g, b, a float64) {
	return float64(uint8(c>>16)) / maxByte,
		float64(uint8(c>>8)) / maxByte,
		float64(uint8(c)) / maxByte,
		float64(uint8(c>>24)) / maxByte
}

// WithAlpha8 returns a copy of the color with the given alpha byte (0-255).
func (c Color) WithAlpha8(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

// NRGBA converts the color to the standard library's non-premultiplied form.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: uint8(c >> 24)}
}

// Lerp interpolates between c and other; t is clamped to [0, 1].
func (c Color) Lerp(other Color, t float64) Color {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return other
	}
	mix := func(shift uint) uint32 {
		a := float64(uint8(c >> shift))
		b := float64(uint8(other >> shift))
		return uint32(uint8(a+(b-a)*t+0.5)) << shift
	}
	return Color(mix(24) | mix(16) | mix(8) | mix(0))
}

// Common colors.
var (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
	ColorRed         = Color(0xFFFF0000)
	ColorGreen       = Color(0xFF00FF00)
	ColorBlue        = Color(0xFF0000FF)
	ColorCyan        = Color(0xFF00FFFF)
	ColorGray        = Color(0xFF808080)
)

// Toolkit palette.
var (
	TextColor                = RGB(0xE6, 0xE6, 0xE6)
	ButtonBackgroundColor    = RGB(0x1C, 0x1C, 0x1E)
	ButtonHoverColor         = RGB(0x2C, 0x2C, 0x2E)
	Grooves                  = RGB(0x14, 0x14, 0x14)
	AzureHighlight           = RGB(0x00, 0x84, 0xFF)
	AzureHighlightBackground = RGB(0x00, 0x4E, 0x99)
	AzureHighlightDark       = RGB(0x00, 0x38, 0x6E)
	RedHighlight             = RGB(0xFF, 0x45, 0x3A)
	RedHighlightBackground   = RGB(0x99, 0x29, 0x22)
)
