package tui

import (
	"errors"
	"fmt"
	"log"

	"github.com/lixenwraith/cellgui/mainloop"
	"github.com/lixenwraith/cellgui/terminal"
)

// ErrNotRunning is returned by End for a run state that already ended
var ErrNotRunning = errors.New("tui: run state already ended")

// Alerter plays the audible cue of a message dialog
type Alerter interface {
	Error()
	Info()
}

// Option configures an Application
type Option func(*Application)

// WithAlerts plays tones through al instead of the terminal bell
func WithAlerts(al Alerter) Option {
	return func(a *Application) { a.alerts = al }
}

// WithLoop shares an existing scheduler
func WithLoop(l *mainloop.Loop) Option {
	return func(a *Application) { a.loop = l }
}

// Application owns the terminal session: the palette, the stack of
// top-level containers and the input pump on the scheduler
type Application struct {
	cfg     Config
	drv     terminal.Driver
	loop    *mainloop.Loop
	palette Palette
	alerts  Alerter

	root      *Container
	toplevels []Composite
	started   bool
	watch     *mainloop.Watch
	poll      *mainloop.Timer

	cols, lines int
	iteration   []func()
}

// RunState is the handle of one Begin, released by End
type RunState struct {
	top   Composite
	ended bool
}

// New creates an idle application drawing on drv
func New(drv terminal.Driver, cfg Config, opts ...Option) *Application {
	a := &Application{
		cfg:  cfg,
		drv:  drv,
		root: NewContainer(0, 0, 0, 0),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.loop == nil {
		a.loop = mainloop.New()
	}
	a.root.app = a
	return a
}

// --- Accessors ---

// Root returns the screen-sized container at the bottom of the stack
func (a *Application) Root() *Container { return a.root }

// MainLoop exposes the scheduler for timers and extra watches
func (a *Application) MainLoop() *mainloop.Loop { return a.loop }

// Config returns the session configuration
func (a *Application) Config() Config { return a.cfg }

// Driver returns the terminal driver
func (a *Application) Driver() terminal.Driver { return a.drv }

// Palette returns the color schemes allocated at startup
func (a *Application) Palette() Palette { return a.palette }

// Size returns the last observed terminal size
func (a *Application) Size() (cols, lines int) { return a.cols, a.lines }

// Top returns the topmost running container, nil when idle
func (a *Application) Top() Composite {
	if len(a.toplevels) == 0 {
		return nil
	}
	return a.toplevels[len(a.toplevels)-1]
}

// Depth returns the number of stacked top-levels
func (a *Application) Depth() int { return len(a.toplevels) }

// OnIteration registers fn to run after every processed input event
func (a *Application) OnIteration(fn func()) {
	a.iteration = append(a.iteration, fn)
}

// --- Session ---

func (a *Application) start() error {
	if err := a.drv.Init(); err != nil {
		return fmt.Errorf("tui: init terminal: %w", err)
	}
	a.cols, a.lines = a.drv.Size()
	a.palette = NewPalette(a.drv, a.cfg.DisableColor)
	a.root.W, a.root.H = a.cols, a.lines

	a.watch = a.loop.AddWatch(a.drv.Ready(), a.processChar)
	if a.cfg.PollTimeout > 0 {
		a.poll = a.loop.AddTimeout(a.cfg.PollTimeout, func() bool {
			a.checkSize()
			return true
		})
	}
	a.started = true
	log.Printf("tui: session started %dx%d", a.cols, a.lines)
	return nil
}

func (a *Application) stop() {
	a.loop.RemoveWatch(a.watch)
	a.loop.RemoveTimeout(a.poll)
	a.watch, a.poll = nil, nil
	a.drv.Fini()
	a.started = false
	log.Printf("tui: session stopped")
}

// --- Modal execution ---

// Begin pushes top, starting the session if it is the first, and draws it
func (a *Application) Begin(top Composite) (*RunState, error) {
	if !a.started {
		if err := a.start(); err != nil {
			return nil, err
		}
	}
	c := top.AsContainer()
	c.app = a
	c.running = true
	a.toplevels = append(a.toplevels, top)
	log.Printf("tui: push top-level, depth %d", len(a.toplevels))

	c.Prepare()
	c.SizeChanged()
	c.EnsureFocus()
	top.Redraw()
	top.PositionCursor()
	a.drv.Refresh()
	return &RunState{top: top}, nil
}

// RunLoop pumps the scheduler until rs's container stops running. With
// block false it processes at most one ready batch and returns. Reports
// whether the container is still running
func (a *Application) RunLoop(rs *RunState, block bool) bool {
	c := rs.top.AsContainer()
	for c.running && !rs.ended {
		a.loop.Iteration(block)
		if !block {
			break
		}
	}
	return c.running && !rs.ended
}

// End pops rs's container, then redraws the new top or ends the session
func (a *Application) End(rs *RunState) error {
	if rs == nil || rs.ended {
		return ErrNotRunning
	}
	rs.ended = true
	rs.top.AsContainer().running = false

	for i := len(a.toplevels) - 1; i >= 0; i-- {
		if a.toplevels[i] == rs.top {
			a.toplevels = append(a.toplevels[:i], a.toplevels[i+1:]...)
			break
		}
	}
	log.Printf("tui: pop top-level, depth %d", len(a.toplevels))

	if len(a.toplevels) == 0 {
		a.stop()
		return nil
	}
	a.Refresh()
	return nil
}

// Run executes top as a modal and returns once it stops running
func (a *Application) Run(top Composite) error {
	rs, err := a.Begin(top)
	if err != nil {
		return err
	}
	a.RunLoop(rs, true)
	return a.End(rs)
}

// Stop ends the topmost modal and interrupts a blocking wait
func (a *Application) Stop() {
	if top := a.Top(); top != nil {
		top.AsContainer().running = false
	}
	a.loop.Wakeup()
}

// Refresh redraws every top-level back to front and flushes
func (a *Application) Refresh() {
	for _, t := range a.toplevels {
		t.Redraw()
	}
	a.finish()
}

// finish parks the cursor on the topmost focus and flushes output
func (a *Application) finish() {
	if top := a.Top(); top != nil {
		top.PositionCursor()
	}
	a.drv.Refresh()
}

// --- Input ---

// processChar reads and dispatches one input event
func (a *Application) processChar() {
	a.drv.SetTimeout(0)
	k := a.drv.ReadKey()
	if k.IsSentinel() {
		a.handleSentinel(k)
		return
	}

	var pending terminal.Key
	if k == terminal.KeyEscape {
		a.drv.SetTimeout(max(a.cfg.EscapeDelay, 0))
		next := a.drv.ReadKey()
		switch {
		case next == terminal.KeyNone:
		case next.IsSentinel():
			pending = next
		default:
			k = terminal.Alt(next)
		}
	}

	a.dispatchKey(k)
	for _, fn := range a.iteration {
		fn()
	}
	if pending != terminal.KeyNone {
		a.handleSentinel(pending)
	}
}

func (a *Application) handleSentinel(k terminal.Key) {
	switch k {
	case terminal.KeyResize:
		a.checkSize()
	case terminal.KeyMouse:
		if ev, ok := a.drv.Mouse(); ok {
			a.dispatchMouse(ev)
			for _, fn := range a.iteration {
				fn()
			}
		}
	}
}

// dispatchKey offers k as hot, ordinary and cold key, then applies the
// application-level fallbacks
func (a *Application) dispatchKey(k terminal.Key) {
	top := a.Top()
	if top == nil {
		return
	}
	c := top.AsContainer()

	switch {
	case top.ProcessHotKey(k):
	case top.ProcessKey(k):
	case top.ProcessColdKey(k):
	case k == terminal.KeyCtrlC:
		c.running = false
	case k == terminal.KeyCtrlZ:
		a.suspend()
	case k == terminal.KeyTab:
		if !c.FocusNext() {
			c.FocusNext()
		}
	case k == terminal.KeyBacktab:
		if !c.FocusPrev() {
			c.FocusPrev()
		}
	}
	a.finish()
}

// dispatchMouse hands ev to the top container in its own outer coordinates
func (a *Application) dispatchMouse(ev terminal.MouseEvent) {
	top := a.Top()
	if top == nil {
		return
	}
	x, y := top.AsContainer().screenOrigin()
	top.ProcessMouse(ev.Offset(x, y))
	a.finish()
}

func (a *Application) suspend() {
	log.Printf("tui: suspending")
	if err := a.drv.Suspend(); err != nil {
		log.Printf("tui: suspend: %v", err)
	}
	log.Printf("tui: resumed")
	a.drv.Redraw()
	a.Refresh()
}

// checkSize relayouts and redraws the stack when the terminal size changed
func (a *Application) checkSize() {
	cols, lines := a.drv.Size()
	if cols == a.cols && lines == a.lines {
		return
	}
	a.cols, a.lines = cols, lines
	a.root.W, a.root.H = cols, lines
	log.Printf("tui: terminal resized to %dx%d", cols, lines)

	for _, t := range a.toplevels {
		t.AsContainer().SizeChanged()
	}
	a.Refresh()
}
