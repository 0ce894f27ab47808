package tui

import "github.com/lixenwraith/cellgui/terminal"

// Entry is a single-line text editor with emacs-style keys
type Entry struct {
	View
	state *TextFieldState
}

// NewEntry creates a focusable editor w cells wide holding text
func NewEntry(x, y, w int, text string) *Entry {
	e := &Entry{
		View:  NewView(x, y, w, 1),
		state: NewTextFieldState(text),
	}
	e.canFocus = true
	e.state.AdjustScroll(w)
	return e
}

// Text returns the current contents
func (e *Entry) Text() string { return e.state.Value() }

// SetText replaces the contents
func (e *Entry) SetText(text string) {
	e.state.SetValue(text)
	e.state.AdjustScroll(e.W)
	e.Redraw()
}

// Point returns the insertion point
func (e *Entry) Point() int { return e.state.Point }

// PositionCursor places the cursor at the insertion point
func (e *Entry) PositionCursor() {
	e.Move(e.state.Point-e.state.First, 0)
}

func (e *Entry) Redraw() {
	e.SetAttr(e.ColorFocus())
	e.Move(0, 0)
	text := e.state.Text
	for i := 0; i < e.W; i++ {
		if p := e.state.First + i; p < len(text) {
			e.AddRune(text[p])
		} else {
			e.AddRune(' ')
		}
	}
	e.PositionCursor()
}

func (e *Entry) ProcessKey(k terminal.Key) bool {
	s := e.state
	switch k {
	case terminal.KeyBackspace, terminal.KeyCtrlH:
		if !s.DeleteBackward() {
			return true
		}
	case terminal.KeyHome, terminal.KeyCtrlA:
		s.MoveToStart()
	case terminal.KeyLeft, terminal.KeyCtrlB:
		s.MoveLeft()
	case terminal.KeyDelete, terminal.KeyCtrlD:
		s.DeleteForward()
	case terminal.KeyEnd, terminal.KeyCtrlE:
		s.MoveToEnd()
	case terminal.KeyRight, terminal.KeyCtrlF:
		s.MoveRight()
	case terminal.KeyCtrlK:
		s.KillToEnd()
	case terminal.KeyCtrlW:
		s.DeleteWordBackward()
	case terminal.KeyCtrlY:
		if !s.Yank() {
			return true
		}
	default:
		r := k.Rune()
		if r == 0 {
			return false
		}
		s.Insert(r)
	}
	s.AdjustScroll(e.W)
	e.Redraw()
	return true
}
