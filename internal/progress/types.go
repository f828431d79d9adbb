// Package progress shows a spinner on stderr while a notification is in
// flight and a one-line result when it finishes.
package progress

// TerminalCapabilities encapsulates detected terminal features
type TerminalCapabilities struct {
	// IsTTY indicates whether stderr is a terminal (vs pipe/redirect)
	IsTTY bool

	// SupportsColor indicates whether terminal supports ANSI color codes
	SupportsColor bool

	// SupportsUnicode indicates whether terminal supports Unicode characters
	SupportsUnicode bool
}

// ProgressSymbols defines the character set for visual indicators
type ProgressSymbols struct {
	// Checkmark is the success indicator ("✓" or "[OK]")
	Checkmark string

	// Failure is the failure indicator ("✗" or "[FAIL]")
	Failure string

	// SpinnerSet is the index into spinner.CharSets
	SpinnerSet int
}
