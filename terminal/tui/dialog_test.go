package tui

import (
	"strings"
	"testing"

	"github.com/lixenwraith/cellgui/terminal"
)

func TestDialogLayout(t *testing.T) {
	app, d := newTestApp()

	dlg := NewDialog(40, 10, "Connect")
	ok := NewButton(0, 0, "Ok", true)
	cancel := NewButton(0, 0, "Cancel", false)
	dlg.AddButton(ok)
	dlg.AddButton(cancel)

	rs, err := app.Begin(dlg)
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}

	if dlg.X != 20 || dlg.Y != 4 {
		t.Errorf("Expected dialog at (20,4), got (%d,%d)", dlg.X, dlg.Y)
	}
	// (40 - (8 + 10 + 3)) / 2
	if ok.X != 9 || cancel.X != 20 {
		t.Errorf("Expected buttons at x 9 and 20, got %d and %d", ok.X, cancel.X)
	}
	if ok.Y != 5 || cancel.Y != 5 {
		t.Errorf("Expected button row 5, got %d and %d", ok.Y, cancel.Y)
	}
	if dlg.Focused() != ok {
		t.Error("Expected first button focused")
	}

	// frame inset by one cell, title centered on it
	if got := d.at(21, 5).r; got != '┌' {
		t.Errorf("Expected frame corner at (21,5), got %q", got)
	}
	if !strings.Contains(d.row(5), " Connect ") {
		t.Errorf("Expected title on frame row, got %q", d.row(5))
	}
	// button text at dialog origin + border 2 + button x
	if got := d.text(31, 11, 8); got != "[< Ok >]" {
		t.Errorf("Expected default button drawn at (31,11), got %q", got)
	}

	d.push(terminal.KeyEscape)
	if app.RunLoop(rs, false) {
		t.Error("Expected Escape to end the dialog")
	}
	if err := app.End(rs); err != nil {
		t.Fatalf("End failed: %v", err)
	}
	if d.finis != 1 {
		t.Errorf("Expected session shut down after last top-level, got %d Fini calls", d.finis)
	}
	if err := app.End(rs); err != ErrNotRunning {
		t.Errorf("Expected ErrNotRunning on second End, got %v", err)
	}
}

func TestDialogDivisor(t *testing.T) {
	d := newFakeDriver(80, 25)
	cfg := DefaultConfig()
	cfg.PollTimeout = 0
	cfg.DialogVerticalDivisor = 2
	app := New(d, cfg)

	dlg := NewDialog(20, 5, "x")
	rs, err := app.Begin(dlg)
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	defer app.End(rs)

	if dlg.Y != 10 {
		t.Errorf("Expected y (25-5)/2 = 10, got %d", dlg.Y)
	}
}

func TestDialogRecentersOnResize(t *testing.T) {
	app, d := newTestApp()
	dlg := NewDialog(20, 6, "x")
	rs, err := app.Begin(dlg)
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	defer app.End(rs)

	d.cols, d.lines = 100, 36
	d.push(terminal.KeyResize)
	app.RunLoop(rs, false)

	if dlg.X != 40 || dlg.Y != 10 {
		t.Errorf("Expected dialog re-centered at (40,10), got (%d,%d)", dlg.X, dlg.Y)
	}
}

func TestMsg(t *testing.T) {
	app, d := newTestApp()
	app.cfg.Bell = true

	d.push(terminal.KeyEnter)
	if err := app.Msg(false, "Title", "hello\nworld"); err != nil {
		t.Fatalf("Msg failed: %v", err)
	}

	// 13x9 dialog at (33,5), labels at client row 1 and 2
	if got := d.text(36, 8, 5); got != "hello" {
		t.Errorf("Expected first line at (36,8), got %q", got)
	}
	if got := d.text(36, 9, 5); got != "world" {
		t.Errorf("Expected second line at (36,9), got %q", got)
	}
	if d.beeps != 1 {
		t.Errorf("Expected terminal bell without alert player, got %d beeps", d.beeps)
	}
}

type countingAlerts struct{ errors, infos int }

func (c *countingAlerts) Error() { c.errors++ }
func (c *countingAlerts) Info()  { c.infos++ }

func TestMsgAlerts(t *testing.T) {
	alerts := &countingAlerts{}
	d := newFakeDriver(80, 24)
	cfg := DefaultConfig()
	cfg.PollTimeout = 0
	cfg.Bell = true
	app := New(d, cfg, WithAlerts(alerts))

	d.push(terminal.KeyEnter)
	if err := app.Errorf("Failure", "port %d is not valid", 99999); err != nil {
		t.Fatalf("Errorf failed: %v", err)
	}
	d.push(terminal.KeySpace)
	if err := app.Info("Done", "ok"); err != nil {
		t.Fatalf("Info failed: %v", err)
	}

	if alerts.errors != 1 || alerts.infos != 1 {
		t.Errorf("Expected one error and one info tone, got %d and %d", alerts.errors, alerts.infos)
	}
	if d.beeps != 0 {
		t.Errorf("Expected no terminal bell with an alert player, got %d", d.beeps)
	}
}

func TestErrorDialogScheme(t *testing.T) {
	app, d := newTestApp()
	d.colors = true

	var attr terminal.Attr
	app.OnIteration(func() {
		if top := app.Top(); top != nil {
			attr = top.AsContainer().Scheme().Normal
		}
	})
	d.push(terminal.KeyEnter)
	if err := app.Error("Oops", "bad"); err != nil {
		t.Fatalf("Error failed: %v", err)
	}
	if attr != app.Palette().Error.Normal {
		t.Errorf("Expected error scheme, got attr %#x", attr)
	}
}
