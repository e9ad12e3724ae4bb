//go:build !windows

package term

// SetVirtualTerminal is a no-op outside of Windows; every supported
// terminal interprets escape sequences natively.
func SetVirtualTerminal(enabled bool) error {
	return nil
}

func vtEnabled() bool {
	return true
}
