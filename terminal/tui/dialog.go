package tui

import (
	"github.com/lixenwraith/cellgui/terminal"
)

// buttonSpace is the gap between dialog buttons
const buttonSpace = 3

// buttonRowFromBottom places the button row this many rows above the client bottom
const buttonRowFromBottom = 5

// dialogDeco draws a frame inset by one cell with a centered title, lays out
// a row of buttons and cancels the modal on Escape
type dialogDeco struct {
	title   string
	buttons []*Button
}

func (d *dialogDeco) Border() int { return 2 }

func (d *dialogDeco) Draw(c *Container) {
	drv := c.driver()
	drv.SetAttr(c.Scheme().Normal)
	clearOuter(c)
	drawBox(c, LineSingle, 1, 1, c.W-2, c.H-2)

	title := Truncate(d.title, max(c.W-6, 0))
	c.ContainerBaseMove((c.W-RuneLen(title))/2-1, 1)
	drv.AddRune(' ')
	drv.AddString(title)
	drv.AddRune(' ')
}

func (d *dialogDeco) Prepare(c *Container) {
	d.center(c)
	d.layoutButtons(c)
}

func (d *dialogDeco) ProcessKey(c *Container, k terminal.Key) bool {
	if k == terminal.KeyEscape {
		c.running = false
		return true
	}
	return false
}

func (d *dialogDeco) SizeChanged(c *Container) {
	d.center(c)
	d.layoutButtons(c)
}

// center places the dialog horizontally centered and a third down the screen
func (d *dialogDeco) center(c *Container) {
	a := c.application()
	if a == nil {
		return
	}
	div := a.cfg.DialogVerticalDivisor
	if div <= 0 {
		div = 3
	}
	c.X = (a.cols - c.W) / 2
	c.Y = (a.lines - c.H) / div
}

// layoutButtons centers the button row inside the dialog width
func (d *dialogDeco) layoutButtons(c *Container) {
	if len(d.buttons) == 0 {
		return
	}
	total := buttonSpace * (len(d.buttons) - 1)
	for _, b := range d.buttons {
		total += b.W
	}
	x := (c.W - total) / 2
	for _, b := range d.buttons {
		b.X = x
		b.Y = c.H - buttonRowFromBottom
		x += b.W + buttonSpace
	}
}

// Dialog is a modal container centered on the screen with a button row
type Dialog struct {
	*Container
	deco *dialogDeco
}

// NewDialog creates a w x h dialog; it is centered when run
func NewDialog(w, h int, title string) *Dialog {
	c := NewContainer(0, 0, w, h)
	deco := &dialogDeco{title: title}
	c.deco = deco
	c.kind = SchemeDialog
	return &Dialog{Container: c, deco: deco}
}

// AddButton adds b as a child and to the button row, in insertion order
func (d *Dialog) AddButton(b *Button) {
	d.deco.buttons = append(d.deco.buttons, b)
	d.Add(b)
}

// Buttons returns the button row
func (d *Dialog) Buttons() []*Button {
	return d.deco.buttons
}

// LayoutButtons recomputes button positions, done automatically when run
func (d *Dialog) LayoutButtons() {
	d.deco.layoutButtons(d.Container)
}
