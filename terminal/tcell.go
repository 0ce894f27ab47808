package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
)

// eventBuffer bounds input queued between the poll goroutine and ReadKey
const eventBuffer = 256

// tcellKeys maps tcell named keys to Key codes
// Control codes below space pass through unchanged
var tcellKeys = map[tcell.Key]Key{
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyPgUp:       KeyPageUp,
	tcell.KeyPgDn:       KeyPageDown,
	tcell.KeyInsert:     KeyInsert,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyBacktab:    KeyBacktab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyF1:         KeyF1,
	tcell.KeyF2:         KeyF2,
	tcell.KeyF3:         KeyF3,
	tcell.KeyF4:         KeyF4,
	tcell.KeyF5:         KeyF5,
	tcell.KeyF6:         KeyF6,
	tcell.KeyF7:         KeyF7,
	tcell.KeyF8:         KeyF8,
	tcell.KeyF9:         KeyF9,
	tcell.KeyF10:        KeyF10,
	tcell.KeyF11:        KeyF11,
	tcell.KeyF12:        KeyF12,
}

// TcellDriver implements Driver on a tcell.Screen
// A poll goroutine moves tcell events into a buffered queue; everything else
// runs on the caller's goroutine
type TcellDriver struct {
	screen    tcell.Screen
	newScreen func() (tcell.Screen, error)
	mouse     bool

	events chan tcell.Event
	ready  chan struct{}
	stopCh chan struct{}
	doneCh chan struct{}

	timeout time.Duration

	pendingMouse MouseEvent
	hasMouse     bool
	buttons      tcell.ButtonMask

	x, y   int
	attr   Attr
	styles []tcell.Style

	initialized bool
	finalized   bool
}

// NewTcellDriver wraps the provided screen, which must not be initialized yet
// The driver supports a single session: Init after Fini fails with
// ErrFinalized. Use NewTcellDriverFunc for drivers that restart
func NewTcellDriver(screen tcell.Screen) *TcellDriver {
	return &TcellDriver{
		screen:  screen,
		events:  make(chan tcell.Event, eventBuffer),
		ready:   make(chan struct{}, 1),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
		timeout: -1,
		styles:  []tcell.Style{tcell.StyleDefault},
	}
}

// NewTcellDriverFunc creates a driver that opens a fresh screen from
// newScreen for every session, so Init may follow Fini
func NewTcellDriverFunc(newScreen func() (tcell.Screen, error)) (*TcellDriver, error) {
	screen, err := newScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: new screen: %w", err)
	}
	d := NewTcellDriver(screen)
	d.newScreen = newScreen
	return d, nil
}

// NewScreenDriver opens a restartable driver on the process's controlling terminal
func NewScreenDriver() (*TcellDriver, error) {
	if err := CheckTTY(os.Stdin); err != nil {
		return nil, err
	}
	return NewTcellDriverFunc(tcell.NewScreen)
}

// EnableMouse requests mouse reporting, must be called before Init
func (d *TcellDriver) EnableMouse(on bool) {
	d.mouse = on
}

// Screen exposes the wrapped tcell.Screen
func (d *TcellDriver) Screen() tcell.Screen {
	return d.screen
}

// Init enters raw mode and starts the poll goroutine. After Fini it opens a
// new screen and starts a new session
func (d *TcellDriver) Init() error {
	if d.initialized && !d.finalized {
		return nil
	}
	if d.finalized {
		if err := d.restart(); err != nil {
			return err
		}
	}
	if err := d.screen.Init(); err != nil {
		return fmt.Errorf("terminal: init screen: %w", err)
	}
	if d.mouse {
		d.screen.EnableMouse()
	}
	d.screen.SetStyle(tcell.StyleDefault)
	d.screen.Clear()

	d.initialized = true
	go d.pollLoop()
	return nil
}

// Fini restores terminal state, safe to call multiple times
func (d *TcellDriver) Fini() {
	if !d.initialized || d.finalized {
		return
	}
	d.finalized = true
	close(d.stopCh)
	if d.mouse {
		d.screen.DisableMouse()
	}
	// Fini unblocks PollEvent with a nil event
	d.screen.Fini()
	<-d.doneCh
}

// restart replaces the finalized screen and resets per-session state
func (d *TcellDriver) restart() error {
	if d.newScreen == nil {
		return ErrFinalized
	}
	screen, err := d.newScreen()
	if err != nil {
		return fmt.Errorf("terminal: new screen: %w", err)
	}
	d.screen = screen
	d.events = make(chan tcell.Event, eventBuffer)
	d.stopCh = make(chan struct{})
	d.doneCh = make(chan struct{})
	// the ready channel is kept since callers may still watch it
	select {
	case <-d.ready:
	default:
	}
	d.styles = d.styles[:1]
	d.hasMouse, d.buttons = false, 0
	d.x, d.y, d.attr = 0, 0, AttrNormal
	d.initialized, d.finalized = false, false
	return nil
}

// pollLoop reads tcell events until the screen is finalized
func (d *TcellDriver) pollLoop() {
	defer close(d.doneCh)

	defer func() {
		if r := recover(); r != nil {
			EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mTERMINAL POLL CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case d.events <- ev:
			d.signal()
		case <-d.stopCh:
			return
		}
	}
}

// signal marks input as available without blocking
func (d *TcellDriver) signal() {
	select {
	case d.ready <- struct{}{}:
	default:
	}
}

// Size returns current terminal dimensions
func (d *TcellDriver) Size() (int, int) {
	return d.screen.Size()
}

// SetTimeout bounds how long ReadKey blocks
func (d *TcellDriver) SetTimeout(t time.Duration) {
	d.timeout = t
}

// Ready is signalled when events are queued
func (d *TcellDriver) Ready() <-chan struct{} {
	return d.ready
}

// ReadKey returns the next decoded key or a sentinel
func (d *TcellDriver) ReadKey() Key {
	ev, ok := d.next()
	if !ok {
		return KeyNone
	}
	if len(d.events) > 0 {
		d.signal()
	}

	switch ev := ev.(type) {
	case *tcell.EventResize:
		return KeyResize
	case *tcell.EventMouse:
		d.pendingMouse = d.decodeMouse(ev)
		d.hasMouse = true
		return KeyMouse
	case *tcell.EventKey:
		return translateKey(ev)
	}
	return KeyNone
}

// next waits for a queued event according to the current timeout
func (d *TcellDriver) next() (tcell.Event, bool) {
	switch {
	case d.timeout < 0:
		select {
		case ev := <-d.events:
			return ev, true
		case <-d.stopCh:
			return nil, false
		}
	case d.timeout == 0:
		select {
		case ev := <-d.events:
			return ev, true
		default:
			return nil, false
		}
	default:
		timer := time.NewTimer(d.timeout)
		defer timer.Stop()
		select {
		case ev := <-d.events:
			return ev, true
		case <-timer.C:
			return nil, false
		case <-d.stopCh:
			return nil, false
		}
	}
}

// translateKey converts a tcell key event, folding ModAlt into KeyAlt
func translateKey(ev *tcell.EventKey) Key {
	var k Key
	if named, ok := tcellKeys[ev.Key()]; ok {
		k = named
	} else if ev.Key() == tcell.KeyRune {
		k = Key(ev.Rune())
	} else if ev.Key() > 0 && ev.Key() < tcell.Key(KeySpace) {
		k = Key(ev.Key())
	} else {
		return KeyNone
	}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		k = Alt(k)
	}
	return k
}

// decodeMouse derives button and action from consecutive button masks
func (d *TcellDriver) decodeMouse(ev *tcell.EventMouse) MouseEvent {
	x, y := ev.Position()
	mask := ev.Buttons()
	me := MouseEvent{X: x, Y: y}

	switch {
	case mask&tcell.WheelUp != 0:
		me.Button, me.Action = MouseBtnWheelUp, MouseActionPress
		return me
	case mask&tcell.WheelDown != 0:
		me.Button, me.Action = MouseBtnWheelDown, MouseActionPress
		return me
	}

	held := mask & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	switch {
	case held != 0 && d.buttons == 0:
		me.Button, me.Action = buttonOf(held), MouseActionPress
	case held == 0 && d.buttons != 0:
		me.Button, me.Action = buttonOf(d.buttons), MouseActionRelease
	case held != 0:
		me.Button, me.Action = buttonOf(held), MouseActionDrag
	default:
		me.Action = MouseActionMove
	}
	d.buttons = held
	return me
}

func buttonOf(mask tcell.ButtonMask) MouseButton {
	switch {
	case mask&tcell.Button1 != 0:
		return MouseBtnLeft
	case mask&tcell.Button3 != 0:
		return MouseBtnMiddle
	case mask&tcell.Button2 != 0:
		return MouseBtnRight
	}
	return MouseBtnNone
}

// Mouse returns the report announced by the last KeyMouse
func (d *TcellDriver) Mouse() (MouseEvent, bool) {
	if !d.hasMouse {
		return MouseEvent{}, false
	}
	d.hasMouse = false
	return d.pendingMouse, true
}

// Move sets the write position
func (d *TcellDriver) Move(x, y int) {
	d.x, d.y = x, y
}

// SetAttr selects the attribute for subsequent writes
func (d *TcellDriver) SetAttr(a Attr) {
	d.attr = a
}

// AddRune writes one cell and advances the write position
func (d *TcellDriver) AddRune(r rune) {
	d.screen.SetContent(d.x, d.y, r, nil, d.style())
	d.x++
}

// AddString writes s one cell per rune
func (d *TcellDriver) AddString(s string) {
	style := d.style()
	for _, r := range s {
		d.screen.SetContent(d.x, d.y, r, nil, style)
		d.x++
	}
}

// style resolves the current attribute into a tcell style
func (d *TcellDriver) style() tcell.Style {
	pair := d.attr.Pair()
	if pair >= len(d.styles) {
		pair = 0
	}
	st := d.styles[pair]
	if d.attr&AttrBold != 0 {
		st = st.Bold(true)
	}
	if d.attr&AttrDim != 0 {
		st = st.Dim(true)
	}
	if d.attr&AttrUnderline != 0 {
		st = st.Underline(true)
	}
	if d.attr&AttrBlink != 0 {
		st = st.Blink(true)
	}
	if d.attr&AttrReverse != 0 {
		st = st.Reverse(true)
	}
	return st
}

// Refresh shows pending output with the cursor at the write position
func (d *TcellDriver) Refresh() {
	d.screen.ShowCursor(d.x, d.y)
	d.screen.Show()
}

// HasColors reports whether the terminal supports at least the eight base colors
func (d *TcellDriver) HasColors() bool {
	return d.screen.Colors() >= 8
}

// MakeColor allocates a new color pair
func (d *TcellDriver) MakeColor(fg, bg Color) Attr {
	st := tcell.StyleDefault.
		Foreground(tcell.PaletteColor(int(fg))).
		Background(tcell.PaletteColor(int(bg)))
	d.styles = append(d.styles, st)
	return AttrNormal.WithPair(len(d.styles) - 1)
}

// Suspend releases the terminal, stops the process group and reacquires the terminal on resume
func (d *TcellDriver) Suspend() error {
	if err := d.screen.Suspend(); err != nil {
		return fmt.Errorf("terminal: suspend: %w", err)
	}
	stopErr := suspendProcess()
	if err := d.screen.Resume(); err != nil {
		return fmt.Errorf("terminal: resume: %w", err)
	}
	return stopErr
}

// Redraw forces a full repaint
func (d *TcellDriver) Redraw() {
	d.screen.Sync()
}

// Beep rings the terminal bell
func (d *TcellDriver) Beep() {
	_ = d.screen.Beep()
}
