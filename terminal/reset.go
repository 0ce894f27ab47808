package terminal

import (
	"io"
	"os"
)

// Sequences written by EmergencyReset
var (
	seqMouseMotionOff = []byte("\x1b[?1003l")
	seqMouseDragOff   = []byte("\x1b[?1002l")
	seqMouseClickOff  = []byte("\x1b[?1000l")
	seqMouseSGROff    = []byte("\x1b[?1006l")
	seqCursorShow     = []byte("\x1b[?25h")
	seqAltScreenExit  = []byte("\x1b[?1049l")
	seqSGR0           = []byte("\x1b[0m")
	seqAutoWrapOn     = []byte("\x1b[?7h")
)

// EmergencyReset restores the terminal without going through the driver
// Used from panic handlers where the driver state can no longer be trusted
func EmergencyReset(w io.Writer) {
	w.Write(seqMouseMotionOff)
	w.Write(seqMouseDragOff)
	w.Write(seqMouseClickOff)
	w.Write(seqMouseSGROff)

	w.Write(seqCursorShow)
	w.Write(seqAltScreenExit)
	w.Write(seqSGR0)
	w.Write(seqAutoWrapOn)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios, best-effort
	resetTerminalMode()
}
