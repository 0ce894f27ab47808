package tui

import "time"

// Config holds the session tunables
type Config struct {
	// PollTimeout is how often the terminal size is re-checked, zero or
	// negative disables polling and relies on driver resize reports
	PollTimeout time.Duration

	// EscapeDelay bounds the wait for the key that turns Escape into an Alt
	// chord, negative is treated as zero
	EscapeDelay time.Duration

	// DisableColor forces the monochrome palette
	DisableColor bool

	// Mouse enables mouse reporting on drivers that support it
	Mouse bool

	// Bell plays alert tones for Error and Info messages
	Bell bool

	// DialogVerticalDivisor places dialogs at (lines-h)/divisor
	DialogVerticalDivisor int
}

// DefaultConfig returns the configuration used when none is given
func DefaultConfig() Config {
	return Config{
		PollTimeout:           100 * time.Millisecond,
		EscapeDelay:           25 * time.Millisecond,
		Mouse:                 true,
		DialogVerticalDivisor: 3,
	}
}
