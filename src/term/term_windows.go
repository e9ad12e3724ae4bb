//go:build windows

package term

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

// SetVirtualTerminal asks the console attached to stdout to interpret
// escape sequences. Failure is non-fatal: detection keeps resolving to
// ModeNo until the console accepts the mode.
func SetVirtualTerminal(enabled bool) error {
	handle := windows.Handle(os.Stdout.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return errors.Wrap(err, "failed to query console mode")
	}
	if enabled {
		mode |= windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING
	} else {
		mode &^= windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING
	}
	if err := windows.SetConsoleMode(handle, mode); err != nil {
		return errors.Wrap(err, "failed to set console mode")
	}
	return nil
}

// vtEnabled reports whether the console already processes escape
// sequences. Terminals that are not legacy consoles (e.g. Cygwin ptys)
// have no console mode and are assumed capable.
func vtEnabled() bool {
	handle := windows.Handle(os.Stdout.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return true
	}
	return mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING > 0
}
