// Package ansi implements the color model of the library: named ANSI
// colors, the 256-color palette, packed 24-bit colors, and the
// deterministic downgrade conversions between them.
package ansi

import (
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a single value space covering every representable color.
//
//	-2          undefined (no color set)
//	-1          terminal default
//	0 .. 15     named ANSI colors (Black .. BrightWhite)
//	16 .. 255   indexed palette colors
//	(1<<24)|rgb 24-bit color, channels packed big-endian
type Color int32

const (
	ColUndefined Color = -2
	ColDefault   Color = -1
)

const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

// Tier is the maximum color fidelity a terminal supports. Higher values
// are strictly more capable.
type Tier int32

const (
	TierNone Tier = iota
	TierAnsi16
	TierAnsi256
	TierTrueColor
)

func (t Tier) String() string {
	switch t {
	case TierAnsi16:
		return "ansi16"
	case TierAnsi256:
		return "ansi256"
	case TierTrueColor:
		return "truecolor"
	}
	return "none"
}

// Reference RGB values for the 16 named colors. Downgrades resolve
// nearest-match against this table, scanning in order so that ties go to
// the lowest index.
var palette16 = [16][3]uint8{
	{0, 0, 0},       // Black
	{128, 0, 0},     // Red
	{0, 128, 0},     // Green
	{128, 128, 0},   // Yellow
	{0, 0, 128},     // Blue
	{128, 0, 128},   // Magenta
	{0, 128, 128},   // Cyan
	{192, 192, 192}, // White
	{128, 128, 128}, // BrightBlack
	{255, 0, 0},     // BrightRed
	{0, 255, 0},     // BrightGreen
	{255, 255, 0},   // BrightYellow
	{0, 0, 255},     // BrightBlue
	{255, 0, 255},   // BrightMagenta
	{0, 255, 255},   // BrightCyan
	{255, 255, 255}, // BrightWhite
}

// Channel values of the 6x6x6 color cube (indices 16-231).
var cubeValues = [6]uint8{0, 0x5f, 0x87, 0xaf, 0xd7, 0xff}

// Ansi256 returns the indexed palette color for idx. Indices below 16
// coincide with the named colors of the same ordinal.
func Ansi256(idx uint8) Color {
	return Color(idx)
}

// RGB returns a 24-bit color.
func RGB(r uint8, g uint8, b uint8) Color {
	return Color(1<<24 | int32(r)<<16 | int32(g)<<8 | int32(b))
}

// Hex parses "#rrggbb", "rrggbb", "#rgb" or "rgb" into a 24-bit color.
func Hex(s string) (Color, bool) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	switch len(s) {
	case 6:
		v, err := strconv.ParseInt(s, 16, 32)
		if err != nil {
			return ColUndefined, false
		}
		return Color(1<<24 | int32(v)), true
	case 3:
		v, err := strconv.ParseInt(s, 16, 32)
		if err != nil {
			return ColUndefined, false
		}
		r := uint8(v >> 8 & 0xf)
		g := uint8(v >> 4 & 0xf)
		b := uint8(v & 0xf)
		// 0xf -> 0xff, same as (x << 4) | x
		return RGB(r*17, g*17, b*17), true
	}
	return ColUndefined, false
}

func (c Color) Is24Bit() bool {
	return c > 0 && c&(1<<24) > 0
}

func (c Color) IsNamed() bool {
	return c >= Black && c <= BrightWhite
}

func (c Color) IsIndexed() bool {
	return c >= 16 && c < 256
}

// Tier returns the lowest tier at which the color can be emitted without
// conversion.
func (c Color) Tier() Tier {
	switch {
	case c.Is24Bit():
		return TierTrueColor
	case c.IsIndexed():
		return TierAnsi256
	case c.IsNamed():
		return TierAnsi16
	}
	return TierNone
}

// RGB returns the reference RGB value of the color. Named and indexed
// colors resolve through the fixed palette.
func (c Color) RGB() (uint8, uint8, uint8) {
	if c.Is24Bit() {
		return uint8(c >> 16 & 0xff), uint8(c >> 8 & 0xff), uint8(c & 0xff)
	}
	return paletteRGB(uint8(c & 0xff))
}

// paletteRGB maps a palette index to its reference RGB value.
func paletteRGB(idx uint8) (uint8, uint8, uint8) {
	switch {
	case idx < 16:
		entry := palette16[idx]
		return entry[0], entry[1], entry[2]
	case idx <= 231:
		idx -= 16
		return cubeValues[idx/36], cubeValues[idx/6%6], cubeValues[idx%6]
	default:
		gray := 8 + 10*(idx-232)
		return gray, gray, gray
	}
}

func distance(r1 uint8, g1 uint8, b1 uint8, r2 uint8, g2 uint8, b2 uint8) float64 {
	c1 := colorful.Color{R: float64(r1) / 255, G: float64(g1) / 255, B: float64(b1) / 255}
	c2 := colorful.Color{R: float64(r2) / 255, G: float64(g2) / 255, B: float64(b2) / 255}
	return c1.DistanceRgb(c2)
}

// round(v * 5 / 255) in integer arithmetic
func scale6(v uint8) int32 {
	return (2*int32(v) + 51) / 102
}

// ToAnsi256 converts a 24-bit color to the nearest entry of the 256-color
// palette. Any other color is returned unchanged.
//
// Colored channels quantize onto the 6x6x6 cube. Exact grayscale input is
// also matched against the 24-step grayscale ramp, and the closer of the
// two candidates wins.
func (c Color) ToAnsi256() Color {
	if !c.Is24Bit() {
		return c
	}
	r, g, b := c.RGB()
	cube := 16 + 36*scale6(r) + 6*scale6(g) + scale6(b)
	if r != g || g != b {
		return Color(cube)
	}

	level := (int32(r) - 8 + 5) / 10
	if level < 0 {
		level = 0
	} else if level > 23 {
		level = 23
	}
	ramp := 232 + level
	cr, cg, cb := paletteRGB(uint8(cube))
	rr, rg, rb := paletteRGB(uint8(ramp))
	if distance(r, g, b, rr, rg, rb) < distance(r, g, b, cr, cg, cb) {
		return Color(ramp)
	}
	return Color(cube)
}

// ToAnsi16 converts a 24-bit or indexed color to the nearest of the 16
// named colors. Named colors pass through unchanged.
func (c Color) ToAnsi16() Color {
	if !c.Is24Bit() && !c.IsIndexed() {
		return c
	}
	r, g, b := c.RGB()
	best := Black
	bestDist := -1.0
	for i, entry := range palette16 {
		d := distance(r, g, b, entry[0], entry[1], entry[2])
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = Color(i)
		}
	}
	return best
}

// Downgrade caps the color at the given tier. Colors already at or below
// the tier are returned unchanged; TierNone yields ColUndefined.
func (c Color) Downgrade(t Tier) Color {
	if c.Tier() <= t {
		return c
	}
	switch t {
	case TierAnsi256:
		return c.ToAnsi256()
	case TierAnsi16:
		return c.ToAnsi16()
	}
	return ColUndefined
}

// Fg returns the SGR fragment selecting the color as foreground, or an
// empty string for default/undefined colors.
func (c Color) Fg() string {
	return c.sgr(0)
}

// Bg returns the SGR fragment selecting the color as background.
func (c Color) Bg() string {
	return c.sgr(10)
}

func (c Color) sgr(offset int32) string {
	switch {
	case c.Is24Bit():
		r, g, b := c.RGB()
		return itoa(38+offset) + ";2;" + itoa(int32(r)) + ";" + itoa(int32(g)) + ";" + itoa(int32(b))
	case c.IsIndexed():
		return itoa(38+offset) + ";5;" + itoa(int32(c))
	case c >= Black && c <= White:
		return itoa(int32(c) + 30 + offset)
	case c >= BrightBlack && c <= BrightWhite:
		return itoa(int32(c) - 8 + 90 + offset)
	}
	return ""
}

func itoa(n int32) string {
	return strconv.Itoa(int(n))
}
