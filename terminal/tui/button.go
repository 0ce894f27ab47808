package tui

import (
	"unicode"

	"github.com/lixenwraith/cellgui/terminal"
)

// Button is a push button rendered as "[ Label ]", or "[< Label >]" when it is
// the default button. The first upper-case letter is its hot key
type Button struct {
	View
	label     string
	text      string
	hotKey    rune
	hotPos    int
	isDefault bool
	clicked   []func()
}

// NewButton creates a focusable button at (x, y)
func NewButton(x, y int, label string, isDefault bool) *Button {
	text := "[ " + label + " ]"
	if isDefault {
		text = "[< " + label + " >]"
	}
	b := &Button{
		View:      NewView(x, y, RuneLen(text), 1),
		label:     label,
		text:      text,
		hotPos:    -1,
		isDefault: isDefault,
	}
	b.canFocus = true
	for i, r := range []rune(text) {
		if unicode.IsUpper(r) {
			b.hotKey = r
			b.hotPos = i
			break
		}
	}
	return b
}

// Label returns the caption without brackets
func (b *Button) Label() string { return b.label }

// IsDefault reports whether Enter activates the button from anywhere
func (b *Button) IsDefault() bool { return b.isDefault }

// HotKey returns the upper-case accelerator letter, 0 if none
func (b *Button) HotKey() rune { return b.hotKey }

// OnClicked registers fn; observers fire in registration order
func (b *Button) OnClicked(fn func()) {
	b.clicked = append(b.clicked, fn)
}

// Click fires the Clicked observers
func (b *Button) Click() {
	for _, fn := range b.clicked {
		fn()
	}
}

func (b *Button) Redraw() {
	if b.hasFocus {
		b.SetAttr(b.ColorFocus())
	} else {
		b.SetAttr(b.ColorNormal())
	}
	b.Move(0, 0)
	b.AddString(b.text)

	if b.hotPos < 0 {
		return
	}
	if b.hasFocus {
		b.SetAttr(b.ColorHotFocus())
	} else {
		b.SetAttr(b.ColorHotNormal())
	}
	b.Move(b.hotPos, 0)
	b.AddRune(b.hotKey)
}

// PositionCursor parks the cursor on the hot letter
func (b *Button) PositionCursor() {
	b.Move(max(b.hotPos, 1), 0)
}

func (b *Button) matchesHot(r rune) bool {
	return b.hotKey != 0 && unicode.ToUpper(r) == b.hotKey
}

// ProcessHotKey clicks on Alt plus the hot letter, taking focus first
func (b *Button) ProcessHotKey(k terminal.Key) bool {
	base, alt := k.IsAlt()
	if !alt || !b.matchesHot(base.Rune()) {
		return false
	}
	b.Container().Focus(b)
	b.Click()
	return true
}

// ProcessKey clicks on Enter, Space or the bare hot letter
func (b *Button) ProcessKey(k terminal.Key) bool {
	if k == terminal.KeyEnter || k == terminal.KeySpace || b.matchesHot(k.Rune()) {
		b.Click()
		return true
	}
	return false
}

// ProcessColdKey lets Enter reach the default button when nothing else used it
func (b *Button) ProcessColdKey(k terminal.Key) bool {
	if b.isDefault && k == terminal.KeyEnter {
		b.Click()
		return true
	}
	return false
}

// ProcessMouse clicks on a primary press
func (b *Button) ProcessMouse(ev terminal.MouseEvent) {
	if ev.Clicked() {
		b.Click()
	}
}
