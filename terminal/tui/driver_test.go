package tui

import (
	"strings"
	"time"

	"github.com/lixenwraith/cellgui/terminal"
)

type cell struct {
	r    rune
	attr terminal.Attr
}

// fakeDriver records drawn cells and serves scripted input
type fakeDriver struct {
	cols, lines int
	colors      bool
	initErr     error

	x, y    int
	attr    terminal.Attr
	cells   map[[2]int]cell
	cursorX int
	cursorY int

	keys     []terminal.Key
	mice     []terminal.MouseEvent
	ready    chan struct{}
	pairs    int
	timeout  time.Duration
	timeouts []time.Duration

	inits, finis, refreshes int
	beeps, suspends, redraws int
}

func newFakeDriver(cols, lines int) *fakeDriver {
	return &fakeDriver{
		cols:  cols,
		lines: lines,
		cells: make(map[[2]int]cell),
		ready: make(chan struct{}, 256),
	}
}

// push queues keys, each one announced on the ready channel
func (d *fakeDriver) push(keys ...terminal.Key) {
	for _, k := range keys {
		d.keys = append(d.keys, k)
		d.ready <- struct{}{}
	}
}

// pushMouse queues a mouse report behind a KeyMouse sentinel
func (d *fakeDriver) pushMouse(ev terminal.MouseEvent) {
	d.mice = append(d.mice, ev)
	d.push(terminal.KeyMouse)
}

// row returns the runes drawn on screen row y, unwritten cells as spaces
func (d *fakeDriver) row(y int) string {
	var b strings.Builder
	for x := 0; x < d.cols; x++ {
		if c, ok := d.cells[[2]int{x, y}]; ok {
			b.WriteRune(c.r)
		} else {
			b.WriteRune(' ')
		}
	}
	return b.String()
}

// text returns the n runes drawn from (x, y)
func (d *fakeDriver) text(x, y, n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		if c, ok := d.cells[[2]int{x + i, y}]; ok {
			b.WriteRune(c.r)
		} else {
			b.WriteRune(' ')
		}
	}
	return b.String()
}

func (d *fakeDriver) at(x, y int) cell { return d.cells[[2]int{x, y}] }

func (d *fakeDriver) Init() error {
	d.inits++
	return d.initErr
}

func (d *fakeDriver) Fini() { d.finis++ }
func (d *fakeDriver) Size() (int, int) { return d.cols, d.lines }
func (d *fakeDriver) SetTimeout(t time.Duration) {
	d.timeout = t
	d.timeouts = append(d.timeouts, t)
}
func (d *fakeDriver) Ready() <-chan struct{} { return d.ready }
func (d *fakeDriver) Move(x, y int) { d.x, d.y = x, y }
func (d *fakeDriver) SetAttr(a terminal.Attr) { d.attr = a }
func (d *fakeDriver) HasColors() bool { return d.colors }
func (d *fakeDriver) Beep() { d.beeps++ }
func (d *fakeDriver) Redraw() { d.redraws++ }

func (d *fakeDriver) ReadKey() terminal.Key {
	if len(d.keys) == 0 {
		return terminal.KeyNone
	}
	k := d.keys[0]
	d.keys = d.keys[1:]
	return k
}

func (d *fakeDriver) Mouse() (terminal.MouseEvent, bool) {
	if len(d.mice) == 0 {
		return terminal.MouseEvent{}, false
	}
	ev := d.mice[0]
	d.mice = d.mice[1:]
	return ev, true
}

func (d *fakeDriver) AddRune(r rune) {
	d.cells[[2]int{d.x, d.y}] = cell{r: r, attr: d.attr}
	d.x++
}

func (d *fakeDriver) AddString(s string) {
	for _, r := range s {
		d.AddRune(r)
	}
}

func (d *fakeDriver) Refresh() {
	d.refreshes++
	d.cursorX, d.cursorY = d.x, d.y
}

func (d *fakeDriver) MakeColor(fg, bg terminal.Color) terminal.Attr {
	d.pairs++
	return terminal.AttrNormal.WithPair(d.pairs)
}

func (d *fakeDriver) Suspend() error {
	d.suspends++
	return nil
}

// newTestApp returns an application on a fake 80x24 driver with polling off
func newTestApp() (*Application, *fakeDriver) {
	d := newFakeDriver(80, 24)
	cfg := DefaultConfig()
	cfg.PollTimeout = 0
	cfg.EscapeDelay = 0
	return New(d, cfg), d
}
