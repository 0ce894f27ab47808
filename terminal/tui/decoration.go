package tui

import (
	"github.com/lixenwraith/cellgui/terminal"
)

// Decoration is the per-variant behavior of a container: border thickness,
// chrome drawing and the hooks a dialog needs
type Decoration interface {
	// Border is the client-area inset on every side
	Border() int
	// Draw paints the container's own chrome, children are drawn afterwards
	Draw(c *Container)
	// Prepare runs when the container becomes a top-level
	Prepare(c *Container)
	// ProcessKey sees keys before the focused child
	ProcessKey(c *Container, k terminal.Key) bool
	// SizeChanged runs after children were relayouted
	SizeChanged(c *Container)
}

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
)

// boxChars contains box drawing character sets indexed by LineType
var boxChars = [...][6]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛'},
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// drawBox outlines a w x h box at (x, y) relative to c's outer corner
func drawBox(c *Container, line LineType, x, y, w, h int) {
	if w < 2 || h < 2 {
		return
	}
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}
	chars := boxChars[line]
	d := c.driver()

	c.ContainerBaseMove(x, y)
	d.AddRune(chars[boxTL])
	for i := 0; i < w-2; i++ {
		d.AddRune(chars[boxH])
	}
	d.AddRune(chars[boxTR])

	for row := 1; row < h-1; row++ {
		c.ContainerBaseMove(x, y+row)
		d.AddRune(chars[boxV])
		c.ContainerBaseMove(x+w-1, y+row)
		d.AddRune(chars[boxV])
	}

	c.ContainerBaseMove(x, y+h-1)
	d.AddRune(chars[boxBL])
	for i := 0; i < w-2; i++ {
		d.AddRune(chars[boxH])
	}
	d.AddRune(chars[boxBR])
}

// clearOuter blanks c's whole rectangle, border included
func clearOuter(c *Container) {
	d := c.driver()
	for row := 0; row < c.H; row++ {
		c.ContainerBaseMove(0, row)
		for col := 0; col < c.W; col++ {
			d.AddRune(' ')
		}
	}
}

// --- Plain ---

type plain struct{}

func (plain) Border() int { return 0 }
func (plain) Draw(*Container) {}
func (plain) Prepare(*Container) {}
func (plain) ProcessKey(*Container, terminal.Key) bool { return false }
func (plain) SizeChanged(*Container) {}

// --- Frame ---

// frame draws a single-line border with the title on the top edge
type frame struct {
	title string
	line  LineType
}

func (f *frame) Border() int { return 1 }

func (f *frame) Draw(c *Container) {
	d := c.driver()
	scheme := c.Scheme()
	d.SetAttr(scheme.Normal)
	clearOuter(c)
	drawBox(c, f.line, 0, 0, c.W, c.H)

	if f.title == "" {
		return
	}
	if c.hasFocus {
		d.SetAttr(scheme.HotNormal)
	}
	c.ContainerBaseMove(1, 0)
	d.AddRune(' ')
	d.AddString(Truncate(f.title, max(c.W-4, 0)))
	d.AddRune(' ')
}

func (f *frame) Prepare(*Container) {}
func (f *frame) ProcessKey(*Container, terminal.Key) bool { return false }
func (f *frame) SizeChanged(*Container) {}

// NewFrame creates a bordered container titled title
func NewFrame(x, y, w, h int, title string) *Container {
	c := NewContainer(x, y, w, h)
	c.deco = &frame{title: title, line: LineSingle}
	return c
}

// SetTitle replaces the title of a frame or dialog
func (c *Container) SetTitle(title string) {
	switch d := c.deco.(type) {
	case *frame:
		d.title = title
	case *dialogDeco:
		d.title = title
	}
}

// Title returns the frame or dialog title, empty for plain containers
func (c *Container) Title() string {
	switch d := c.deco.(type) {
	case *frame:
		return d.title
	case *dialogDeco:
		return d.title
	}
	return ""
}
