package terminal

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// IsATTY reports whether fd refers to a terminal, including Cygwin/MSYS ptys
func IsATTY(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// CheckTTY verifies f is an interactive terminal with usable dimensions
func CheckTTY(f *os.File) error {
	if !IsATTY(f.Fd()) {
		return fmt.Errorf("%w: %s", ErrNotTerminal, f.Name())
	}
	cols, lines, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return fmt.Errorf("terminal: get size of %s: %w", f.Name(), err)
	}
	if cols <= 0 || lines <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrNoSize, cols, lines)
	}
	return nil
}
