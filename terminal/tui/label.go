package tui

import "github.com/lixenwraith/cellgui/terminal"

// Label is a single line of static text
type Label struct {
	View
	text     string
	color    terminal.Attr
	hasColor bool
}

// NewLabel creates a label as wide as its text
func NewLabel(x, y int, text string) *Label {
	return &Label{
		View: NewView(x, y, RuneLen(text), 1),
		text: text,
	}
}

// Text returns the label text
func (l *Label) Text() string { return l.text }

// SetText erases the previous text and draws the new one
func (l *Label) SetText(text string) {
	l.SetAttr(l.ColorNormal())
	l.Move(0, 0)
	l.AddString(RepeatRune(' ', RuneLen(l.text)))
	l.text = text
	l.W = RuneLen(text)
	l.Redraw()
}

// SetColor draws the label with a fixed attribute instead of the scheme
func (l *Label) SetColor(a terminal.Attr) {
	l.color = a
	l.hasColor = true
}

func (l *Label) attr() terminal.Attr {
	if l.hasColor {
		return l.color
	}
	return l.ColorNormal()
}

func (l *Label) Redraw() {
	l.SetAttr(l.attr())
	l.Move(0, 0)
	l.AddString(l.text)
}

// TrimLabel is a fixed-width label that shortens long text in the middle
type TrimLabel struct {
	View
	original string
	text     string
	color    terminal.Attr
	hasColor bool
}

// NewTrimLabel creates a label w cells wide
func NewTrimLabel(x, y, w int, text string) *TrimLabel {
	t := &TrimLabel{View: NewView(x, y, w, 1)}
	t.setText(text)
	return t
}

// Text returns the untrimmed text
func (t *TrimLabel) Text() string { return t.original }

// Shown returns the text as displayed
func (t *TrimLabel) Shown() string { return t.text }

// SetText replaces the text, padding over the previous one
func (t *TrimLabel) SetText(text string) {
	t.setText(text)
	t.Redraw()
}

// SetColor draws the label with a fixed attribute instead of the scheme
func (t *TrimLabel) SetColor(a terminal.Attr) {
	t.color = a
	t.hasColor = true
}

func (t *TrimLabel) setText(text string) {
	t.original = text
	t.text = TrimMiddle(text, t.W)
}

func (t *TrimLabel) Redraw() {
	if t.hasColor {
		t.SetAttr(t.color)
	} else {
		t.SetAttr(t.ColorNormal())
	}
	t.Move(0, 0)
	t.AddString(PadRight(t.text, t.W))
}

// DoSizeChanged re-trims against the width assigned by the fill policy
func (t *TrimLabel) DoSizeChanged() {
	t.text = TrimMiddle(t.original, t.W)
}
