package tui

import (
	"fmt"
	"strings"
)

// Msg shows text in a modal dialog with a single Ok button and returns once
// it is dismissed. Error messages use the error scheme
func (a *Application) Msg(isError bool, caption, text string) error {
	lines := strings.Split(text, "\n")
	w := max(RuneLen(caption)+8, longestLine(lines)+8)
	d := NewDialog(w, len(lines)+7, caption)
	if isError {
		d.SetScheme(SchemeError)
	}
	for i, line := range lines {
		d.Add(NewLabel(1, i+1, line))
	}

	ok := NewButton(0, 0, "Ok", true)
	ok.OnClicked(func() { d.running = false })
	d.AddButton(ok)

	a.alert(isError)
	return a.Run(d)
}

// Error shows an error message
func (a *Application) Error(caption, text string) error {
	return a.Msg(true, caption, text)
}

// Errorf formats and shows an error message
func (a *Application) Errorf(caption, format string, args ...any) error {
	return a.Msg(true, caption, fmt.Sprintf(format, args...))
}

// Info shows an informational message
func (a *Application) Info(caption, text string) error {
	return a.Msg(false, caption, text)
}

// Infof formats and shows an informational message
func (a *Application) Infof(caption, format string, args ...any) error {
	return a.Msg(false, caption, fmt.Sprintf(format, args...))
}

// alert sounds the cue for a message when the bell is enabled
func (a *Application) alert(isError bool) {
	if !a.cfg.Bell {
		return
	}
	if a.alerts == nil {
		a.drv.Beep()
		return
	}
	if isError {
		a.alerts.Error()
	} else {
		a.alerts.Info()
	}
}
