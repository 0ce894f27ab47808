package tui

import (
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"

	"github.com/lixenwraith/cellgui/mainloop"
	"github.com/lixenwraith/cellgui/terminal"
)

// okCancelRoot fills the root with a frame holding Ok and Cancel
func okCancelRoot(app *Application) (ok, cancel *Button) {
	frame := NewFrame(0, 0, 40, 24, "A")
	ok = NewButton(1, 1, "Ok", false)
	cancel = NewButton(10, 1, "Cancel", false)
	frame.Add(ok)
	frame.Add(cancel)
	app.Root().Add(frame)
	return ok, cancel
}

func TestApplicationTabWrapAndCtrlC(t *testing.T) {
	app, d := newTestApp()
	okCancelRoot(app)

	var focus []string
	app.OnIteration(func() {
		focus = append(focus, label(focusedLeaf(app.Root())))
	})

	d.push(terminal.KeyTab, terminal.KeyTab, terminal.KeyTab, terminal.KeyBacktab, terminal.KeyBacktab, terminal.KeyCtrlC)
	if err := app.Run(app.Root()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := []string{"Cancel", "Ok", "Cancel", "Ok", "Cancel", "Cancel"}
	if diff := cmp.Diff(want, focus); diff != "" {
		t.Errorf("Focus sequence mismatch (-want +got):\n%s", diff)
	}
	if d.inits != 1 || d.finis != 1 {
		t.Errorf("Expected one Init and one Fini, got %d and %d", d.inits, d.finis)
	}
}

func TestApplicationEscapeAlt(t *testing.T) {
	app, d := newTestApp()
	ok, cancel := okCancelRoot(app)

	var clicks []string
	ok.OnClicked(func() { clicks = append(clicks, "ok") })
	cancel.OnClicked(func() { clicks = append(clicks, "cancel") })

	d.push(terminal.KeyEscape, 'c', terminal.KeyCtrlC)
	if err := app.Run(app.Root()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if diff := cmp.Diff([]string{"cancel"}, clicks); diff != "" {
		t.Errorf("Clicks mismatch (-want +got):\n%s", diff)
	}
	if got := focusedLeaf(app.Root()); got != cancel {
		t.Errorf("Expected Alt+C to focus Cancel, got %s", label(got))
	}
}

func TestApplicationBareEscape(t *testing.T) {
	app, d := newTestApp()
	okCancelRoot(app)

	var seen []terminal.Key
	rs, err := app.Begin(app.Root())
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	defer app.End(rs)

	rec := &keyRecorder{View: NewView(0, 20, 1, 1), seen: &seen}
	app.Root().Add(rec)

	d.push(terminal.KeyEscape)
	app.RunLoop(rs, false)

	if len(seen) != 1 || seen[0] != terminal.KeyEscape {
		t.Errorf("Expected a bare Escape without follow-up key, got %v", seen)
	}
}

// keyRecorder records hot keys it is offered
type keyRecorder struct {
	View
	seen *[]terminal.Key
}

func (r *keyRecorder) ProcessHotKey(k terminal.Key) bool {
	*r.seen = append(*r.seen, k)
	return false
}

func TestApplicationNegativeEscapeDelay(t *testing.T) {
	app, d := newTestApp()
	app.cfg.EscapeDelay = -time.Second
	okCancelRoot(app)

	rs, err := app.Begin(app.Root())
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	defer app.End(rs)

	d.push(terminal.KeyEscape)
	app.RunLoop(rs, false)

	if diff := cmp.Diff([]time.Duration{0, 0}, d.timeouts); diff != "" {
		t.Errorf("Read timeouts mismatch (-want +got):\n%s", diff)
	}
}

func TestApplicationSuspend(t *testing.T) {
	app, d := newTestApp()
	okCancelRoot(app)

	d.push(terminal.KeyCtrlZ, terminal.KeyCtrlC)
	if err := app.Run(app.Root()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if d.suspends != 1 || d.redraws != 1 {
		t.Errorf("Expected one suspend and one redraw, got %d and %d", d.suspends, d.redraws)
	}
}

func TestApplicationResize(t *testing.T) {
	app, d := newTestApp()
	status := NewTrimLabel(0, 23, 10, "status")
	status.Fill = FillHorizontal
	app.Root().Add(status)

	rs, err := app.Begin(app.Root())
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	defer app.End(rs)

	if status.W != 80 {
		t.Fatalf("Expected initial fill to 80, got %d", status.W)
	}

	d.cols, d.lines = 120, 40
	d.push(terminal.KeyResize)
	app.RunLoop(rs, false)

	if cols, lines := app.Size(); cols != 120 || lines != 40 {
		t.Errorf("Expected size 120x40, got %dx%d", cols, lines)
	}
	if status.W != 120 {
		t.Errorf("Expected label refilled to 120, got %d", status.W)
	}
}

func TestApplicationPollDetectsResize(t *testing.T) {
	d := newFakeDriver(80, 24)
	cfg := DefaultConfig()
	cfg.PollTimeout = time.Second
	clock := mainloop.NewMockClock(time.Unix(0, 0))
	app := New(d, cfg, WithLoop(mainloop.New(mainloop.WithClock(clock))))

	rs, err := app.Begin(app.Root())
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	defer app.End(rs)

	d.cols = 90
	clock.Advance(time.Second)
	app.RunLoop(rs, false)

	if app.Root().W != 90 {
		t.Errorf("Expected poll timer to pick up width 90, got %d", app.Root().W)
	}
}

func TestApplicationPollDisabled(t *testing.T) {
	for _, poll := range []time.Duration{0, -time.Second} {
		d := newFakeDriver(80, 24)
		cfg := DefaultConfig()
		cfg.PollTimeout = poll
		clock := mainloop.NewMockClock(time.Unix(0, 0))
		app := New(d, cfg, WithLoop(mainloop.New(mainloop.WithClock(clock))))

		rs, err := app.Begin(app.Root())
		if err != nil {
			t.Fatalf("Begin failed: %v", err)
		}
		if app.poll != nil {
			t.Errorf("Expected no poll timer for PollTimeout %v", poll)
		}

		d.cols = 90
		clock.Advance(time.Hour)
		app.RunLoop(rs, false)
		if app.Root().W != 80 {
			t.Errorf("Expected width to stay 80 without polling, got %d", app.Root().W)
		}
		app.End(rs)
	}
}

func TestApplicationMouse(t *testing.T) {
	app, d := newTestApp()
	ok, cancel := okCancelRoot(app)
	var clicked bool
	cancel.OnClicked(func() { clicked = true })

	rs, err := app.Begin(app.Root())
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	defer app.End(rs)
	if focusedLeaf(app.Root()) != ok {
		t.Fatal("Expected Ok focused initially")
	}

	// frame border 1, Cancel at client (10,1)
	d.pushMouse(terminal.MouseEvent{X: 12, Y: 2, Button: terminal.MouseBtnLeft, Action: terminal.MouseActionPress})
	app.RunLoop(rs, false)

	if !clicked {
		t.Error("Expected mouse press to click Cancel")
	}
	if focusedLeaf(app.Root()) != cancel {
		t.Error("Expected mouse press to focus Cancel")
	}
}

func TestApplicationStop(t *testing.T) {
	app, _ := newTestApp()
	okCancelRoot(app)

	app.MainLoop().AddOneShot(0, app.Stop)
	if err := app.Run(app.Root()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if app.Depth() != 0 {
		t.Errorf("Expected empty stack after Stop, got %d", app.Depth())
	}
}

func TestApplicationNestedModal(t *testing.T) {
	app, d := newTestApp()
	ok, _ := okCancelRoot(app)

	var depths []int
	ok.OnClicked(func() {
		dlg := NewDialog(30, 8, "Nested")
		b := NewButton(0, 0, "Close", true)
		b.OnClicked(func() { dlg.SetRunning(false) })
		dlg.AddButton(b)
		if err := app.Run(dlg); err != nil {
			t.Errorf("nested Run failed: %v", err)
		}
		depths = append(depths, app.Depth())
	})
	app.OnIteration(func() { depths = append(depths, app.Depth()) })

	d.push(terminal.KeyEnter, terminal.KeyEnter, terminal.KeyCtrlC)
	if err := app.Run(app.Root()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// dialog key, then the click returning, then the outer key and Ctrl-C
	want := []int{2, 1, 1, 1}
	if diff := cmp.Diff(want, depths); diff != "" {
		t.Errorf("Depth sequence mismatch (-want +got):\n%s", diff)
	}
	if d.finis != 1 {
		t.Errorf("Expected one Fini for the whole session, got %d", d.finis)
	}
}

func TestApplicationInitError(t *testing.T) {
	d := newFakeDriver(80, 24)
	d.initErr = terminal.ErrNotTerminal
	app := New(d, DefaultConfig())

	err := app.Run(app.Root())
	if !errors.Is(err, terminal.ErrNotTerminal) {
		t.Errorf("Expected ErrNotTerminal, got %v", err)
	}
	if app.Depth() != 0 {
		t.Errorf("Expected nothing stacked after failed init, got %d", app.Depth())
	}
}

func TestApplicationPalette(t *testing.T) {
	tests := []struct {
		name    string
		colors  bool
		disable bool
		mono    bool
	}{
		{"Color", true, false, false},
		{"Disabled", true, true, true},
		{"NoColors", false, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newFakeDriver(80, 24)
			d.colors = tt.colors
			cfg := DefaultConfig()
			cfg.PollTimeout = 0
			cfg.DisableColor = tt.disable
			app := New(d, cfg)
			if err := app.start(); err != nil {
				t.Fatalf("start failed: %v", err)
			}
			defer app.stop()

			if got := app.Palette() == monoPalette(); got != tt.mono {
				t.Errorf("Expected mono %v, got %v", tt.mono, got)
			}
			if tt.mono && d.pairs != 0 {
				t.Errorf("Expected no color pairs allocated, got %d", d.pairs)
			}
		})
	}
}

func TestApplicationSequentialSessions(t *testing.T) {
	var screen tcell.SimulationScreen
	drv, err := terminal.NewTcellDriverFunc(func() (tcell.Screen, error) {
		screen = tcell.NewSimulationScreen("UTF-8")
		return screen, nil
	})
	if err != nil {
		t.Fatalf("NewTcellDriverFunc failed: %v", err)
	}
	cfg := DefaultConfig()
	cfg.PollTimeout = 0
	app := New(drv, cfg)
	okCancelRoot(app)

	for session := 1; session <= 2; session++ {
		rs, err := app.Begin(app.Root())
		if err != nil {
			t.Fatalf("Begin of session %d failed: %v", session, err)
		}
		if cols, lines := app.Size(); cols == 0 || lines == 0 {
			t.Errorf("Expected usable size in session %d, got %dx%d", session, cols, lines)
		}
		screen.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)
		if app.RunLoop(rs, true) {
			t.Fatalf("Expected Ctrl-C to end session %d", session)
		}
		if err := app.End(rs); err != nil {
			t.Fatalf("End of session %d failed: %v", session, err)
		}
	}
}
