package tint

import (
	"github.com/junegunn/tint/src/ansi"
)

// Color sets the foreground color. The last color in a chain wins.
func (t Text) Color(c ansi.Color) Text {
	t.fg = c
	return t
}

// OnColor sets the background color. The last color in a chain wins.
func (t Text) OnColor(c ansi.Color) Text {
	t.bg = c
	return t
}

// Style merges the given attributes into the attribute set.
func (t Text) Style(a ansi.Attr) Text {
	t.attr = t.attr.Merge(a)
	return t
}

// Clear drops all colors and attributes, leaving the bare payload.
func (t Text) Clear() Text {
	return New(t.text).WithState(t.state)
}

// Normal is an alias for Clear.
func (t Text) Normal() Text {
	return t.Clear()
}

// ColorIf sets the foreground color only when cond holds.
func (t Text) ColorIf(c ansi.Color, cond bool) Text {
	if cond {
		return t.Color(c)
	}
	return t
}

// OnColorIf sets the background color only when cond holds.
func (t Text) OnColorIf(c ansi.Color, cond bool) Text {
	if cond {
		return t.OnColor(c)
	}
	return t
}

// StyleIf merges the given attributes only when cond holds.
func (t Text) StyleIf(a ansi.Attr, cond bool) Text {
	if cond {
		return t.Style(a)
	}
	return t
}

// Foreground colors

func (t Text) Black() Text         { return t.Color(ansi.Black) }
func (t Text) Red() Text           { return t.Color(ansi.Red) }
func (t Text) Green() Text         { return t.Color(ansi.Green) }
func (t Text) Yellow() Text        { return t.Color(ansi.Yellow) }
func (t Text) Blue() Text          { return t.Color(ansi.Blue) }
func (t Text) Magenta() Text       { return t.Color(ansi.Magenta) }
func (t Text) Cyan() Text          { return t.Color(ansi.Cyan) }
func (t Text) White() Text         { return t.Color(ansi.White) }
func (t Text) BrightBlack() Text   { return t.Color(ansi.BrightBlack) }
func (t Text) BrightRed() Text     { return t.Color(ansi.BrightRed) }
func (t Text) BrightGreen() Text   { return t.Color(ansi.BrightGreen) }
func (t Text) BrightYellow() Text  { return t.Color(ansi.BrightYellow) }
func (t Text) BrightBlue() Text    { return t.Color(ansi.BrightBlue) }
func (t Text) BrightMagenta() Text { return t.Color(ansi.BrightMagenta) }
func (t Text) BrightCyan() Text    { return t.Color(ansi.BrightCyan) }
func (t Text) BrightWhite() Text   { return t.Color(ansi.BrightWhite) }

// Purple is an alias for Magenta.
func (t Text) Purple() Text { return t.Magenta() }

// BrightPurple is an alias for BrightMagenta.
func (t Text) BrightPurple() Text { return t.BrightMagenta() }

// Ansi256 sets an indexed palette color as foreground.
func (t Text) Ansi256(idx uint8) Text { return t.Color(ansi.Ansi256(idx)) }

// RGB sets a 24-bit color as foreground.
func (t Text) RGB(r uint8, g uint8, b uint8) Text { return t.Color(ansi.RGB(r, g, b)) }

// Hex sets a 24-bit color as foreground from a hex string such as
// "#a6e3a1" or "fa0". Invalid input leaves the text unchanged.
func (t Text) Hex(s string) Text {
	if c, ok := ansi.Hex(s); ok {
		return t.Color(c)
	}
	return t
}

// Background colors

func (t Text) OnBlack() Text         { return t.OnColor(ansi.Black) }
func (t Text) OnRed() Text           { return t.OnColor(ansi.Red) }
func (t Text) OnGreen() Text         { return t.OnColor(ansi.Green) }
func (t Text) OnYellow() Text        { return t.OnColor(ansi.Yellow) }
func (t Text) OnBlue() Text          { return t.OnColor(ansi.Blue) }
func (t Text) OnMagenta() Text       { return t.OnColor(ansi.Magenta) }
func (t Text) OnCyan() Text          { return t.OnColor(ansi.Cyan) }
func (t Text) OnWhite() Text         { return t.OnColor(ansi.White) }
func (t Text) OnBrightBlack() Text   { return t.OnColor(ansi.BrightBlack) }
func (t Text) OnBrightRed() Text     { return t.OnColor(ansi.BrightRed) }
func (t Text) OnBrightGreen() Text   { return t.OnColor(ansi.BrightGreen) }
func (t Text) OnBrightYellow() Text  { return t.OnColor(ansi.BrightYellow) }
func (t Text) OnBrightBlue() Text    { return t.OnColor(ansi.BrightBlue) }
func (t Text) OnBrightMagenta() Text { return t.OnColor(ansi.BrightMagenta) }
func (t Text) OnBrightCyan() Text    { return t.OnColor(ansi.BrightCyan) }
func (t Text) OnBrightWhite() Text   { return t.OnColor(ansi.BrightWhite) }

// OnPurple is an alias for OnMagenta.
func (t Text) OnPurple() Text { return t.OnMagenta() }

// OnBrightPurple is an alias for OnBrightMagenta.
func (t Text) OnBrightPurple() Text { return t.OnBrightMagenta() }

// OnAnsi256 sets an indexed palette color as background.
func (t Text) OnAnsi256(idx uint8) Text { return t.OnColor(ansi.Ansi256(idx)) }

// OnRGB sets a 24-bit color as background.
func (t Text) OnRGB(r uint8, g uint8, b uint8) Text { return t.OnColor(ansi.RGB(r, g, b)) }

// OnHex sets a 24-bit color as background from a hex string. Invalid
// input leaves the text unchanged.
func (t Text) OnHex(s string) Text {
	if c, ok := ansi.Hex(s); ok {
		return t.OnColor(c)
	}
	return t
}

// Attributes

func (t Text) Bold() Text          { return t.Style(ansi.Bold) }
func (t Text) Dim() Text           { return t.Style(ansi.Dim) }
func (t Text) Italic() Text        { return t.Style(ansi.Italic) }
func (t Text) Underline() Text     { return t.Style(ansi.Underline) }
func (t Text) Blink() Text         { return t.Style(ansi.Blink) }
func (t Text) Reverse() Text       { return t.Style(ansi.Reverse) }
func (t Text) Hidden() Text        { return t.Style(ansi.Hidden) }
func (t Text) Strikethrough() Text { return t.Style(ansi.Strikethrough) }

// Conditional foreground colors

func (t Text) BlackIf(cond bool) Text         { return t.ColorIf(ansi.Black, cond) }
func (t Text) RedIf(cond bool) Text           { return t.ColorIf(ansi.Red, cond) }
func (t Text) GreenIf(cond bool) Text         { return t.ColorIf(ansi.Green, cond) }
func (t Text) YellowIf(cond bool) Text        { return t.ColorIf(ansi.Yellow, cond) }
func (t Text) BlueIf(cond bool) Text          { return t.ColorIf(ansi.Blue, cond) }
func (t Text) MagentaIf(cond bool) Text       { return t.ColorIf(ansi.Magenta, cond) }
func (t Text) CyanIf(cond bool) Text          { return t.ColorIf(ansi.Cyan, cond) }
func (t Text) WhiteIf(cond bool) Text         { return t.ColorIf(ansi.White, cond) }
func (t Text) BrightBlackIf(cond bool) Text   { return t.ColorIf(ansi.BrightBlack, cond) }
func (t Text) BrightRedIf(cond bool) Text     { return t.ColorIf(ansi.BrightRed, cond) }
func (t Text) BrightGreenIf(cond bool) Text   { return t.ColorIf(ansi.BrightGreen, cond) }
func (t Text) BrightYellowIf(cond bool) Text  { return t.ColorIf(ansi.BrightYellow, cond) }
func (t Text) BrightBlueIf(cond bool) Text    { return t.ColorIf(ansi.BrightBlue, cond) }
func (t Text) BrightMagentaIf(cond bool) Text { return t.ColorIf(ansi.BrightMagenta, cond) }
func (t Text) BrightCyanIf(cond bool) Text    { return t.ColorIf(ansi.BrightCyan, cond) }
func (t Text) BrightWhiteIf(cond bool) Text   { return t.ColorIf(ansi.BrightWhite, cond) }

// Conditional background colors

func (t Text) OnBlackIf(cond bool) Text         { return t.OnColorIf(ansi.Black, cond) }
func (t Text) OnRedIf(cond bool) Text           { return t.OnColorIf(ansi.Red, cond) }
func (t Text) OnGreenIf(cond bool) Text         { return t.OnColorIf(ansi.Green, cond) }
func (t Text) OnYellowIf(cond bool) Text        { return t.OnColorIf(ansi.Yellow, cond) }
func (t Text) OnBlueIf(cond bool) Text          { return t.OnColorIf(ansi.Blue, cond) }
func (t Text) OnMagentaIf(cond bool) Text       { return t.OnColorIf(ansi.Magenta, cond) }
func (t Text) OnCyanIf(cond bool) Text          { return t.OnColorIf(ansi.Cyan, cond) }
func (t Text) OnWhiteIf(cond bool) Text         { return t.OnColorIf(ansi.White, cond) }
func (t Text) OnBrightBlackIf(cond bool) Text   { return t.OnColorIf(ansi.BrightBlack, cond) }
func (t Text) OnBrightRedIf(cond bool) Text     { return t.OnColorIf(ansi.BrightRed, cond) }
func (t Text) OnBrightGreenIf(cond bool) Text   { return t.OnColorIf(ansi.BrightGreen, cond) }
func (t Text) OnBrightYellowIf(cond bool) Text  { return t.OnColorIf(ansi.BrightYellow, cond) }
func (t Text) OnBrightBlueIf(cond bool) Text    { return t.OnColorIf(ansi.BrightBlue, cond) }
func (t Text) OnBrightMagentaIf(cond bool) Text { return t.OnColorIf(ansi.BrightMagenta, cond) }
func (t Text) OnBrightCyanIf(cond bool) Text    { return t.OnColorIf(ansi.BrightCyan, cond) }
func (t Text) OnBrightWhiteIf(cond bool) Text   { return t.OnColorIf(ansi.BrightWhite, cond) }

// Conditional attributes

func (t Text) BoldIf(cond bool) Text          { return t.StyleIf(ansi.Bold, cond) }
func (t Text) DimIf(cond bool) Text           { return t.StyleIf(ansi.Dim, cond) }
func (t Text) ItalicIf(cond bool) Text        { return t.StyleIf(ansi.Italic, cond) }
func (t Text) UnderlineIf(cond bool) Text     { return t.StyleIf(ansi.Underline, cond) }
func (t Text) BlinkIf(cond bool) Text         { return t.StyleIf(ansi.Blink, cond) }
func (t Text) ReverseIf(cond bool) Text       { return t.StyleIf(ansi.Reverse, cond) }
func (t Text) HiddenIf(cond bool) Text        { return t.StyleIf(ansi.Hidden, cond) }
func (t Text) StrikethroughIf(cond bool) Text { return t.StyleIf(ansi.Strikethrough, cond) }
