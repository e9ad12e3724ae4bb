package term

import (
	"sync"
	"testing"

	"github.com/junegunn/tint/src/ansi"
)

func fakeEnv(vars map[string]string) func(string) string {
	return func(name string) string {
		return vars[name]
	}
}

func TestFromEnvPrecedence(t *testing.T) {
	assert := func(vars map[string]string, tty bool, vt bool, expected Mode) {
		if mode := fromEnv(snapshot{env: fakeEnv(vars), tty: tty, vt: vt}); mode != expected {
			t.Errorf("%v (tty=%v, vt=%v): expected %d, got %d", vars, tty, vt, expected, mode)
		}
	}

	// Disable beats force
	assert(map[string]string{"NO_COLOR": "1", "CLICOLOR_FORCE": "1"}, true, true, ModeNo)
	// Any non-empty value disables
	assert(map[string]string{"NO_COLOR": "0"}, true, true, ModeNo)

	// Force wins over a non-terminal stdout
	assert(map[string]string{"CLICOLOR_FORCE": "1"}, false, true, ModeYes)
	assert(map[string]string{"CLICOLOR_FORCE": "1", "COLORTERM": "truecolor"}, false, true, ModeYesTrueColor)
	assert(map[string]string{"CLICOLOR_FORCE": "1", "TERM": "xterm-256color"}, false, true, ModeYesAnsi256)

	// Not a terminal
	assert(map[string]string{"COLORTERM": "truecolor"}, false, true, ModeNo)

	// Tier advertised by the environment
	assert(map[string]string{"COLORTERM": "truecolor"}, true, true, ModeYesTrueColor)
	assert(map[string]string{"COLORTERM": "24bit"}, true, true, ModeYesTrueColor)
	assert(map[string]string{"COLORTERM": "256color"}, true, true, ModeYesAnsi256)
	assert(map[string]string{"TERM": "screen-256color"}, true, true, ModeYesAnsi256)
	assert(map[string]string{"TERM": "xterm"}, true, true, ModeYes)
	assert(map[string]string{}, true, true, ModeYes)

	// A console that does not interpret escapes disables colors even when
	// forced
	assert(map[string]string{"CLICOLOR_FORCE": "1"}, true, false, ModeNo)
	assert(map[string]string{"COLORTERM": "truecolor"}, true, false, ModeNo)
}

func TestEnvTier(t *testing.T) {
	assert := func(vars map[string]string, expected ansi.Tier) {
		if tier := envTier(fakeEnv(vars)); tier != expected {
			t.Errorf("%v: expected %s, got %s", vars, expected, tier)
		}
	}

	assert(map[string]string{"COLORTERM": "truecolor"}, ansi.TierTrueColor)
	assert(map[string]string{"COLORTERM": "TRUECOLOR"}, ansi.TierTrueColor)
	assert(map[string]string{"COLORTERM": "24bit"}, ansi.TierTrueColor)
	assert(map[string]string{"COLORTERM": "256color"}, ansi.TierAnsi256)
	assert(map[string]string{"TERM": "tmux-256color"}, ansi.TierAnsi256)
	// COLORTERM wins over TERM
	assert(map[string]string{"COLORTERM": "truecolor", "TERM": "xterm-256color"}, ansi.TierTrueColor)
	assert(map[string]string{"TERM": "vt100"}, ansi.TierAnsi16)
	assert(map[string]string{}, ansi.TierAnsi16)
}

func TestStateTier(t *testing.T) {
	assert := func(mode Mode, expected ansi.Tier) {
		if tier := NewState(mode).Tier(); tier != expected {
			t.Errorf("mode %d: expected %s, got %s", mode, expected, tier)
		}
	}

	assert(ModeNo, ansi.TierNone)
	assert(ModeYesAnsi256, ansi.TierAnsi256)
	assert(ModeYesTrueColor, ansi.TierTrueColor)
}

func TestStateAutoTier(t *testing.T) {
	t.Setenv("COLORTERM", "truecolor")
	if tier := NewState(ModeYes).Tier(); tier != ansi.TierTrueColor {
		t.Errorf("expected truecolor, got %s", tier)
	}

	t.Setenv("COLORTERM", "")
	t.Setenv("TERM", "xterm-256color")
	state := NewState(ModeYes)
	if tier := state.Tier(); tier != ansi.TierAnsi256 {
		t.Errorf("expected ansi256, got %s", tier)
	}

	// The detected tier is cached for the lifetime of the State
	t.Setenv("TERM", "xterm")
	if tier := state.Tier(); tier != ansi.TierAnsi256 {
		t.Errorf("expected the cached tier, got %s", tier)
	}
}

func TestStateSet(t *testing.T) {
	state := NewState(ModeYesTrueColor)
	state.Set(ModeNo)
	if tier := state.Tier(); tier != ansi.TierNone {
		t.Errorf("expected none after Set(ModeNo), got %s", tier)
	}
	state.Set(ModeYesAnsi256)
	if tier := state.Tier(); tier != ansi.TierAnsi256 {
		t.Errorf("expected ansi256, got %s", tier)
	}
}

func TestStateSetBeforeFirstRead(t *testing.T) {
	// An explicit override wins over lazy detection
	state := NewStateFromEnv()
	state.Set(ModeYesTrueColor)
	if mode := state.Mode(); mode != ModeYesTrueColor {
		t.Errorf("expected the override to stick, got %d", mode)
	}
}

func TestStateConcurrentAccess(t *testing.T) {
	state := NewState(ModeYesTrueColor)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				state.Tier()
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				state.Set(ModeYesAnsi256)
				state.Set(ModeYesTrueColor)
			}
		}()
	}
	wg.Wait()
	if tier := state.Tier(); tier != ansi.TierTrueColor {
		t.Errorf("unexpected final tier %s", tier)
	}
}
