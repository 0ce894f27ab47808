package tui

import (
	"fmt"

	"github.com/lixenwraith/cellgui/terminal"
)

// Fill flags recompute a child's size from its container on resize
type Fill uint8

const FillNone Fill = 0

const (
	FillHorizontal Fill = 1 << iota
	FillVertical
)

// Anchor is reserved for edge anchoring. NewView sets AnchorLeft|AnchorTop
// but layout never reads it: positions are always relative to the owner's
// top-left corner and only Fill resizes a widget
type Anchor uint8

const (
	AnchorLeft Anchor = 1 << iota
	AnchorRight
	AnchorTop
	AnchorBottom
)

// Widget is anything that can live inside a Container
type Widget interface {
	// Base exposes geometry, focus flags and the owning container
	Base() *View

	// Redraw paints the widget's own rectangle
	Redraw()

	// ProcessKey handles a key while focused, true stops propagation
	ProcessKey(k terminal.Key) bool

	// ProcessHotKey is offered every key before ordinary dispatch
	ProcessHotKey(k terminal.Key) bool

	// ProcessColdKey is offered keys nobody else consumed
	ProcessColdKey(k terminal.Key) bool

	// ProcessMouse receives an event in widget-local coordinates
	ProcessMouse(ev terminal.MouseEvent)

	// PositionCursor places the terminal cursor at the logical edit point
	PositionCursor()

	// DoSizeChanged recomputes size-dependent state after a resize
	DoSizeChanged()
}

// View is the state every widget embeds: a rectangle in the owner's client
// coordinates plus focus flags. Its methods are the default Widget behavior
type View struct {
	X, Y, W, H int
	Fill       Fill
	Anchor     Anchor

	canFocus  bool
	hasFocus  bool
	container *Container
}

// NewView returns a detached view, panicking on a negative size
func NewView(x, y, w, h int) View {
	if w < 0 || h < 0 {
		panic(fmt.Sprintf("tui: negative widget size %dx%d", w, h))
	}
	return View{X: x, Y: y, W: w, H: h, Anchor: AnchorLeft | AnchorTop}
}

// Base returns v itself
func (v *View) Base() *View { return v }

// Container returns the owning container, the detached container if none
func (v *View) Container() *Container {
	if v.container == nil {
		return detached
	}
	return v.container
}

// CanFocus reports whether the widget accepts focus
func (v *View) CanFocus() bool { return v.canFocus }

// SetCanFocus sets the focus policy, normally once at construction
func (v *View) SetCanFocus(on bool) { v.canFocus = on }

// HasFocus reports whether the owning container currently focuses this widget
func (v *View) HasFocus() bool { return v.hasFocus }

// Contains reports whether the point, in owner client coordinates, is inside v
func (v *View) Contains(x, y int) bool {
	return x >= v.X && x < v.X+v.W && y >= v.Y && y < v.Y+v.H
}

// --- Drawing helpers ---

// Move positions the write cursor at (col, row) inside the widget
func (v *View) Move(col, row int) {
	v.Container().ContainerMove(v.X+col, v.Y+row)
}

// BaseMove positions the write cursor relative to the owner's outer corner,
// ignoring its border
func (v *View) BaseMove(col, row int) {
	v.Container().ContainerBaseMove(col, row)
}

// SetAttr selects the attribute for subsequent writes
func (v *View) SetAttr(a terminal.Attr) {
	v.driver().SetAttr(a)
}

// AddRune writes r at the write cursor
func (v *View) AddRune(r rune) {
	v.driver().AddRune(r)
}

// AddString writes s at the write cursor
func (v *View) AddString(s string) {
	v.driver().AddString(s)
}

// Clear blanks the widget rectangle with the current attribute
func (v *View) Clear() {
	d := v.driver()
	for row := 0; row < v.H; row++ {
		v.Move(0, row)
		for col := 0; col < v.W; col++ {
			d.AddRune(' ')
		}
	}
}

func (v *View) driver() terminal.Driver {
	return v.Container().driver()
}

// --- Colors resolved through the owning container ---

func (v *View) ColorNormal() terminal.Attr    { return v.Container().Scheme().Normal }
func (v *View) ColorFocus() terminal.Attr     { return v.Container().Scheme().Focus }
func (v *View) ColorHotNormal() terminal.Attr { return v.Container().Scheme().HotNormal }
func (v *View) ColorHotFocus() terminal.Attr  { return v.Container().Scheme().HotFocus }

// --- Default Widget behavior ---

// Redraw blanks the rectangle
func (v *View) Redraw() {
	v.SetAttr(v.ColorNormal())
	v.Clear()
}

func (v *View) ProcessKey(terminal.Key) bool     { return false }
func (v *View) ProcessHotKey(terminal.Key) bool  { return false }
func (v *View) ProcessColdKey(terminal.Key) bool { return false }
func (v *View) ProcessMouse(terminal.MouseEvent) {}

// PositionCursor places the cursor at the top-left corner
func (v *View) PositionCursor() {
	v.Move(0, 0)
}

func (v *View) DoSizeChanged() {}
