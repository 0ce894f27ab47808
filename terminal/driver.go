package terminal

import (
	"errors"
	"time"
)

var (
	// ErrNotTerminal reports that the session has no controlling terminal
	ErrNotTerminal = errors.New("terminal: not a terminal")
	// ErrNoSize reports a terminal that cannot report usable dimensions
	ErrNoSize = errors.New("terminal: terminal reports no size")
	// ErrFinalized reports Init on a single-session driver after Fini
	ErrFinalized = errors.New("terminal: screen already finalized")
)

// Driver is the character-cell terminal the widget toolkit draws on and reads from
// It behaves like a curses window: Move sets the write position, AddRune
// writes at it and advances, SetAttr selects the attribute for later writes
// All methods are called from the goroutine running the event loop, except
// Ready which may be selected on from anywhere
type Driver interface {
	// Lifecycle
	Init() error
	Fini()

	// Size returns current terminal dimensions
	Size() (cols, lines int)

	// SetTimeout bounds how long ReadKey blocks, negative blocks indefinitely
	SetTimeout(d time.Duration)

	// ReadKey returns the next key, KeyNone on timeout, KeyResize when the
	// window changed size, KeyMouse when a mouse report is pending
	ReadKey() Key

	// Mouse decodes the report announced by the last KeyMouse
	Mouse() (MouseEvent, bool)

	// Ready is signalled whenever input is waiting to be read
	Ready() <-chan struct{}

	// Output
	Move(x, y int)
	SetAttr(a Attr)
	AddRune(r rune)
	AddString(s string)
	// Refresh flushes pending output and shows the cursor at the write position
	Refresh()

	// Colors
	HasColors() bool
	MakeColor(fg, bg Color) Attr

	// Suspend hands the terminal back to the shell until the process is resumed
	Suspend() error
	// Redraw forces a full repaint of the physical screen
	Redraw()
	// Beep rings the terminal bell
	Beep()
}
