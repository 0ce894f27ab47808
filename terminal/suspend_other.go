//go:build !unix

package terminal

// suspendProcess is a no-op where job control is unavailable
func suspendProcess() error { return nil }
