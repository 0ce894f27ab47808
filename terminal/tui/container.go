package tui

import (
	"github.com/lixenwraith/cellgui/terminal"
)

// Composite is a Widget that owns children
// AsContainer is the capability query used wherever traversal needs to
// recurse into a subtree
type Composite interface {
	Widget
	AsContainer() *Container
}

// detached owns widgets that were never added anywhere; it maps coordinates
// unchanged and draws into a NopDriver
var detached = &Container{}

// Container owns an ordered list of children and routes focus and input
// among them. Insertion order is both paint order and focus order
type Container struct {
	View

	children []Widget
	focused  Widget
	running  bool

	kind     SchemeKind
	override *ColorScheme
	deco     Decoration

	app      *Application
	prepared []func()
	resized  []func()
}

// NewContainer creates an empty container with no border
func NewContainer(x, y, w, h int) *Container {
	return &Container{
		View: NewView(x, y, w, h),
		deco: plain{},
	}
}

// AsContainer returns c
func (c *Container) AsContainer() *Container { return c }

// Border returns the decoration thickness on every side
func (c *Container) Border() int {
	if c.deco == nil {
		return 0
	}
	return c.deco.Border()
}

// Children returns the children in insertion order, callers must not modify it
func (c *Container) Children() []Widget { return c.children }

// Focused returns the focused child or nil
func (c *Container) Focused() Widget { return c.focused }

// Running reports whether a modal loop is active on c
func (c *Container) Running() bool { return c.running }

// SetRunning ends (false) the modal loop running c
func (c *Container) SetRunning(on bool) { c.running = on }

// --- Tree management ---

// Add appends w and adopts it; a focusable child makes c focusable
func (c *Container) Add(w Widget) {
	v := w.Base()
	if v.container != nil && v.container != detached {
		panic("tui: widget already belongs to a container")
	}
	if comp, ok := w.(Composite); ok && comp.AsContainer() == c {
		panic("tui: container added to itself")
	}
	c.children = append(c.children, w)
	v.container = c
	if v.canFocus {
		c.canFocus = true
	}
}

// Remove detaches w, clearing focus if it held it
func (c *Container) Remove(w Widget) {
	idx := -1
	for i, child := range c.children {
		if child == w {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	if c.focused == w {
		c.focused = nil
	}
	v := w.Base()
	v.hasFocus = false
	v.container = nil
	c.children = append(c.children[:idx], c.children[idx+1:]...)
	c.updateCanFocus()
}

// RemoveAll detaches every child
func (c *Container) RemoveAll() {
	for _, w := range c.children {
		v := w.Base()
		v.hasFocus = false
		v.container = nil
	}
	c.children = nil
	c.focused = nil
	c.canFocus = false
}

func (c *Container) updateCanFocus() {
	for _, w := range c.children {
		if w.Base().canFocus {
			return
		}
	}
	c.canFocus = false
}

// --- Focus ---

// SetFocus moves focus to w, a child of c
func (c *Container) SetFocus(w Widget) {
	v := w.Base()
	if !v.canFocus || c.focused == w {
		return
	}
	if v.container != c {
		panic("tui: SetFocus on a widget owned by another container")
	}
	if old := c.focused; old != nil {
		old.Base().hasFocus = false
		old.Redraw()
	}
	c.focused = w
	v.hasFocus = true
	w.Redraw()
	if comp, ok := w.(Composite); ok {
		comp.AsContainer().EnsureFocus()
	}
	w.PositionCursor()
}

// Focus sets focus to w and makes every ancestor focus the path to it
func (c *Container) Focus(w Widget) {
	c.SetFocus(w)
	c.raise()
}

// raise focuses c inside its owner, recursively
func (c *Container) raise() {
	p := c.container
	if p == nil || p == detached {
		return
	}
	for _, w := range p.children {
		if comp, ok := w.(Composite); ok && comp.AsContainer() == c {
			p.SetFocus(w)
			p.raise()
			return
		}
	}
}

// EnsureFocus focuses the first focusable child when nothing is focused
func (c *Container) EnsureFocus() {
	if c.focused == nil {
		c.FocusFirst()
	}
}

// FocusFirst focuses the first focusable descendant
func (c *Container) FocusFirst() {
	for _, w := range c.children {
		if w.Base().canFocus {
			c.enter(w, true)
			return
		}
	}
}

// FocusLast focuses the last focusable descendant
func (c *Container) FocusLast() {
	for i := len(c.children) - 1; i >= 0; i-- {
		if w := c.children[i]; w.Base().canFocus {
			c.enter(w, false)
			return
		}
	}
}

// FocusNext advances focus in tree order. It does not wrap: running past the
// last focusable descendant clears focus and returns false, and a second
// call starts again from the first
func (c *Container) FocusNext() bool {
	if c.focused == nil {
		c.FocusFirst()
		return c.focused != nil
	}
	found := false
	for _, w := range c.children {
		v := w.Base()
		if w == c.focused {
			if comp, ok := w.(Composite); ok && comp.AsContainer().FocusNext() {
				return true
			}
			found = true
			continue
		}
		if found && v.canFocus {
			c.enter(w, true)
			return true
		}
	}
	c.clearFocus()
	return false
}

// FocusPrev is FocusNext in reverse order
func (c *Container) FocusPrev() bool {
	if c.focused == nil {
		c.FocusLast()
		return c.focused != nil
	}
	found := false
	for i := len(c.children) - 1; i >= 0; i-- {
		w := c.children[i]
		v := w.Base()
		if w == c.focused {
			if comp, ok := w.(Composite); ok && comp.AsContainer().FocusPrev() {
				return true
			}
			found = true
			continue
		}
		if found && v.canFocus {
			c.enter(w, false)
			return true
		}
	}
	c.clearFocus()
	return false
}

// enter moves focus to sibling w, landing on its first or last descendant
func (c *Container) enter(w Widget, forward bool) {
	c.clearFocus()
	if comp, ok := w.(Composite); ok {
		sub := comp.AsContainer()
		if forward {
			sub.FocusFirst()
		} else {
			sub.FocusLast()
		}
	}
	c.SetFocus(w)
}

func (c *Container) clearFocus() {
	if c.focused == nil {
		return
	}
	old := c.focused
	c.focused = nil
	old.Base().hasFocus = false
	old.Redraw()
}

// --- Dispatch ---

// ProcessKey offers k to the decoration, then to the focused child only
func (c *Container) ProcessKey(k terminal.Key) bool {
	if c.deco != nil && c.deco.ProcessKey(c, k) {
		return true
	}
	if c.focused != nil {
		return c.focused.ProcessKey(k)
	}
	return false
}

// ProcessHotKey offers k to the focused child, then to the others in order
func (c *Container) ProcessHotKey(k terminal.Key) bool {
	if c.focused != nil && c.focused.ProcessHotKey(k) {
		return true
	}
	for _, w := range c.children {
		if w == c.focused {
			continue
		}
		if w.ProcessHotKey(k) {
			return true
		}
	}
	return false
}

// ProcessColdKey uses the same order as ProcessHotKey
func (c *Container) ProcessColdKey(k terminal.Key) bool {
	if c.focused != nil && c.focused.ProcessColdKey(k) {
		return true
	}
	for _, w := range c.children {
		if w == c.focused {
			continue
		}
		if w.ProcessColdKey(k) {
			return true
		}
	}
	return false
}

// ProcessMouse takes ev relative to c's outer corner and delivers it to the
// first child containing it, focusing that child on a press
func (c *Container) ProcessMouse(ev terminal.MouseEvent) {
	b := c.Border()
	local := ev.Offset(b, b)
	for _, w := range c.children {
		v := w.Base()
		if !v.Contains(local.X, local.Y) {
			continue
		}
		if v.canFocus && ev.Action == terminal.MouseActionPress {
			c.Focus(w)
		}
		w.ProcessMouse(local.Offset(v.X, v.Y))
		return
	}
}

// --- Coordinates ---

// ContainerMove maps client coordinates of c onto the screen
func (c *Container) ContainerMove(x, y int) {
	b := c.Border()
	x += c.X + b
	y += c.Y + b
	if p := c.container; p != nil && p != detached {
		p.ContainerMove(x, y)
		return
	}
	c.driver().Move(x, y)
}

// ContainerBaseMove maps coordinates relative to c's outer corner onto the screen
func (c *Container) ContainerBaseMove(x, y int) {
	x += c.X
	y += c.Y
	if p := c.container; p != nil && p != detached {
		p.ContainerMove(x, y)
		return
	}
	c.driver().Move(x, y)
}

// screenOrigin returns the screen position of c's outer corner
func (c *Container) screenOrigin() (int, int) {
	x, y := c.X, c.Y
	for p := c.container; p != nil && p != detached; p = p.container {
		b := p.Border()
		x += p.X + b
		y += p.Y + b
	}
	return x, y
}

// driver walks up to the application owning the tree; output before the
// session starts goes nowhere
func (c *Container) driver() terminal.Driver {
	if a := c.application(); a != nil && a.started {
		return a.drv
	}
	return terminal.NopDriver{}
}

// application returns the Application of the nearest top-level ancestor
func (c *Container) application() *Application {
	for p := c; p != nil; p = p.container {
		if p.app != nil {
			return p.app
		}
	}
	return nil
}

// --- Drawing ---

// Redraw paints the decoration and every child
func (c *Container) Redraw() {
	if c.deco != nil {
		c.deco.Draw(c)
	}
	c.RedrawChildren()
}

// RedrawChildren paints children whose origin lies inside the client area
func (c *Container) RedrawChildren() {
	b := c.Border()
	for _, w := range c.children {
		v := w.Base()
		if v.X >= c.W-b*2 || v.Y >= c.H-b*2 {
			continue
		}
		w.Redraw()
	}
}

// PositionCursor delegates to the focused child
func (c *Container) PositionCursor() {
	if c.focused != nil {
		c.focused.PositionCursor()
	}
}

// --- Layout ---

// OnPrepare registers fn to run when c becomes a top-level
func (c *Container) OnPrepare(fn func()) {
	c.prepared = append(c.prepared, fn)
}

// Prepare runs once each time c is pushed as a top-level
func (c *Container) Prepare() {
	if c.deco != nil {
		c.deco.Prepare(c)
	}
	for _, fn := range c.prepared {
		fn()
	}
}

// OnSizeChanged registers fn to run before c relayouts on resize
func (c *Container) OnSizeChanged(fn func()) {
	c.resized = append(c.resized, fn)
}

// SizeChanged notifies observers and relayouts the subtree
func (c *Container) SizeChanged() {
	for _, fn := range c.resized {
		fn()
	}
	c.DoSizeChanged()
}

// DoSizeChanged relayouts the subtree top down: each child is first resized
// by its Fill policy and only then receives DoSizeChanged, so nested fills
// see their parent's final size
func (c *Container) DoSizeChanged() {
	b := c.Border()
	for _, w := range c.children {
		v := w.Base()
		if v.Fill&FillHorizontal != 0 {
			v.W = max(c.W-b*2-v.X, 0)
		}
		if v.Fill&FillVertical != 0 {
			v.H = max(c.H-b*2-v.Y, 0)
		}
		w.DoSizeChanged()
	}
	if c.deco != nil {
		c.deco.SizeChanged(c)
	}
}
