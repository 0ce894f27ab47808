//go:build unix

package terminal

import (
	"errors"
	"os"
	"testing"

	"github.com/creack/pty"
)

func TestCheckTTY(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	if !IsATTY(tty.Fd()) {
		t.Fatal("Expected pty slave to be a terminal")
	}

	if err := pty.Setsize(tty, &pty.Winsize{Rows: 0, Cols: 0}); err != nil {
		t.Fatalf("Setsize failed: %v", err)
	}
	if err := CheckTTY(tty); !errors.Is(err, ErrNoSize) {
		t.Errorf("Expected ErrNoSize for 0x0 terminal, got %v", err)
	}

	if err := pty.Setsize(tty, &pty.Winsize{Rows: 24, Cols: 80}); err != nil {
		t.Fatalf("Setsize failed: %v", err)
	}
	if err := CheckTTY(tty); err != nil {
		t.Errorf("Expected sized pty to pass, got %v", err)
	}
}

func TestCheckTTYRegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "notatty")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if IsATTY(f.Fd()) {
		t.Error("Expected regular file not to be a terminal")
	}
	if err := CheckTTY(f); !errors.Is(err, ErrNotTerminal) {
		t.Errorf("Expected ErrNotTerminal, got %v", err)
	}
}
