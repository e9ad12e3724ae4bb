// Package term decides whether and at which fidelity the process is
// allowed to emit colors, based on environment signals and the terminal
// attached to standard output.
package term

import (
	"os"
	"strings"

	"github.com/junegunn/tint/src/ansi"
	"github.com/junegunn/tint/src/util"
)

// Mode is the colorization policy of a State.
type Mode int32

const (
	// ModeNo disables colorization entirely
	ModeNo Mode = iota
	// ModeYes enables colorization at the auto-detected tier
	ModeYes
	// ModeYesAnsi256 enables colorization at the 256-color tier
	ModeYesAnsi256
	// ModeYesTrueColor enables colorization at the 24-bit tier
	ModeYesTrueColor

	// modeUnset marks a State whose mode is resolved from the
	// environment on first read
	modeUnset Mode = -1
	// tierUnset marks an auto tier not detected yet
	tierUnset int32 = -1
)

// snapshot is the set of external facts detection runs against. The
// environment is assumed static for the lifetime of the process.
type snapshot struct {
	env func(string) string
	tty bool
	vt  bool
}

func processSnapshot() snapshot {
	return snapshot{env: os.Getenv, tty: util.IsTty(), vt: vtEnabled()}
}

// State holds the effective colorization mode. Reads are lock-free; Set is
// the only mutator. The zero value is not usable, construct with NewState.
type State struct {
	mode *util.AtomicInt32
	auto *util.AtomicInt32
}

// NewState returns a State fixed at the given mode.
func NewState(mode Mode) *State {
	return &State{
		mode: util.NewAtomicInt32(int32(mode)),
		auto: util.NewAtomicInt32(tierUnset),
	}
}

// NewStateFromEnv returns a State whose mode is resolved from the
// environment on first read.
func NewStateFromEnv() *State {
	return &State{
		mode: util.NewAtomicInt32(int32(modeUnset)),
		auto: util.NewAtomicInt32(tierUnset),
	}
}

// Set overwrites the mode unconditionally.
func (s *State) Set(mode Mode) {
	s.mode.Set(int32(mode))
}

// Mode returns the current mode, resolving it from the environment on the
// first read of an unset State.
func (s *State) Mode() Mode {
	mode := Mode(s.mode.Get())
	if mode != modeUnset {
		return mode
	}
	detected := FromEnv()
	// Lost race means another goroutine resolved or Set() won; honor it
	s.mode.CompareAndSwap(int32(modeUnset), int32(detected))
	return Mode(s.mode.Get())
}

// Tier maps the mode to the maximum color tier the renderer may use.
func (s *State) Tier() ansi.Tier {
	switch s.Mode() {
	case ModeNo:
		return ansi.TierNone
	case ModeYesAnsi256:
		return ansi.TierAnsi256
	case ModeYesTrueColor:
		return ansi.TierTrueColor
	}
	if tier := s.auto.Get(); tier != tierUnset {
		return ansi.Tier(tier)
	}
	tier := envTier(os.Getenv)
	s.auto.Set(int32(tier))
	return tier
}

// FromEnv runs detection against the current process environment.
func FromEnv() Mode {
	return fromEnv(processSnapshot())
}

// fromEnv decides the colorization mode. First matching rule wins:
//
//  1. NO_COLOR set to any non-empty value disables colors.
//  2. A console that does not interpret escape sequences disables colors.
//  3. CLICOLOR_FORCE set to any non-empty value forces colors on, at the
//     tier advertised by COLORTERM/TERM.
//  4. A non-terminal stdout disables colors.
//  5. Otherwise COLORTERM/TERM advertise the tier.
func fromEnv(s snapshot) Mode {
	if s.env("NO_COLOR") != "" {
		return ModeNo
	}
	if !s.vt {
		return ModeNo
	}
	if s.env("CLICOLOR_FORCE") != "" {
		return modeFor(envTier(s.env))
	}
	if !s.tty {
		return ModeNo
	}
	return modeFor(envTier(s.env))
}

func modeFor(tier ansi.Tier) Mode {
	switch tier {
	case ansi.TierTrueColor:
		return ModeYesTrueColor
	case ansi.TierAnsi256:
		return ModeYesAnsi256
	}
	return ModeYes
}

// envTier reads the color capability advertised by COLORTERM and TERM.
// Absent both, 16 colors are assumed.
func envTier(env func(string) string) ansi.Tier {
	colorTerm := strings.ToLower(env("COLORTERM"))
	if strings.Contains(colorTerm, "truecolor") || strings.Contains(colorTerm, "24bit") {
		return ansi.TierTrueColor
	}
	if strings.Contains(colorTerm, "256") || strings.Contains(env("TERM"), "256") {
		return ansi.TierAnsi256
	}
	return ansi.TierAnsi16
}

// Default is the process-wide State consulted when no explicit State is
// attached to a styled text.
var Default = NewStateFromEnv()

// Set overwrites the mode of the default State.
func Set(mode Mode) {
	Default.Set(mode)
}

// CurrentTier returns the tier of the default State.
func CurrentTier() ansi.Tier {
	return Default.Tier()
}
