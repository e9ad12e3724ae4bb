// Package tint wraps strings with ANSI colors and text attributes,
// downgrading colors to whatever the attached terminal supports.
package tint

import (
	"strings"

	"github.com/junegunn/tint/src/ansi"
	"github.com/junegunn/tint/src/term"
	"github.com/junegunn/tint/src/util"
)

// Text is a string with optional foreground/background colors and text
// attributes attached. It is an immutable value: every styling method
// returns a new Text, so chains compose without hidden aliasing.
//
// Construct with New. Rendering only allocates when there is something to
// wrap; a Text without colors and attributes, or one rendered while
// colorization is off, yields the original string as-is.
type Text struct {
	text  string
	fg    ansi.Color
	bg    ansi.Color
	attr  ansi.Attr
	state *term.State
}

// New returns an unstyled Text for the given string.
func New(text string) Text {
	return Text{text: text, fg: ansi.ColUndefined, bg: ansi.ColUndefined}
}

// WithState attaches an explicit capability state, replacing the
// process-wide default. Useful for isolated configurations in tests or
// for styling output destined for another terminal.
func (t Text) WithState(state *term.State) Text {
	t.state = state
	return t
}

func (t Text) tier() ansi.Tier {
	if t.state != nil {
		return t.state.Tier()
	}
	return term.CurrentTier()
}

func (t Text) plain() bool {
	return t.fg == ansi.ColUndefined && t.bg == ansi.ColUndefined && t.attr == ansi.AttrRegular
}

// String renders the text. The output is a single SGR prefix holding the
// attribute codes followed by the foreground and background codes, the
// payload verbatim, and the reset suffix. The payload is treated as
// opaque; escape sequences already inside it are not re-parsed.
func (t Text) String() string {
	tier := t.tier()
	if tier == ansi.TierNone || t.plain() {
		return t.text
	}

	codes := t.attr.Codes()
	if fg := t.fg.Downgrade(tier).Fg(); fg != "" {
		codes = append(codes, fg)
	}
	if bg := t.bg.Downgrade(tier).Bg(); bg != "" {
		codes = append(codes, bg)
	}
	if len(codes) == 0 {
		return t.text
	}

	var sb strings.Builder
	prefix := strings.Join(codes, ";")
	sb.Grow(len(t.text) + len(prefix) + 7)
	sb.WriteString("\x1b[")
	sb.WriteString(prefix)
	sb.WriteString("m")
	sb.WriteString(t.text)
	sb.WriteString("\x1b[0m")
	return sb.String()
}

// Plain returns the unstyled payload.
func (t Text) Plain() string {
	return t.text
}

// Width returns the display width of the payload, excluding any styling.
func (t Text) Width() int {
	return util.StringWidth(t.text)
}

// Fg returns the foreground color, or ansi.ColUndefined when none is set.
func (t Text) Fg() ansi.Color {
	return t.fg
}

// Bg returns the background color, or ansi.ColUndefined when none is set.
func (t Text) Bg() ansi.Color {
	return t.bg
}

// Attr returns the attribute set.
func (t Text) Attr() ansi.Attr {
	return t.attr
}
