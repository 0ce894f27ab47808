//go:build unix

package terminal

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// suspendProcess stops the whole process group, returning once it is continued
func suspendProcess() error {
	if err := unix.Kill(0, unix.SIGTSTP); err != nil {
		return fmt.Errorf("terminal: stop process group: %w", err)
	}
	return nil
}
