package tui

import "unicode"

// isWordChar returns true for word-constituent characters
func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// TextFieldState is the editing model behind Entry: a rune buffer, the
// insertion point, the first visible rune and the kill ring of one entry
type TextFieldState struct {
	Text  []rune
	Point int // Insertion point, 0 = before first rune
	First int // First visible rune index
	Kill  []rune
}

// NewTextFieldState creates state with the point at the end of initial
func NewTextFieldState(initial string) *TextFieldState {
	runes := []rune(initial)
	return &TextFieldState{
		Text:  runes,
		Point: len(runes),
	}
}

// Value returns current text as string
func (t *TextFieldState) Value() string {
	return string(t.Text)
}

// SetValue replaces text, keeping the point inside it
func (t *TextFieldState) SetValue(s string) {
	t.Text = []rune(s)
	if t.Point > len(t.Text) {
		t.Point = len(t.Text)
	}
}

// Insert adds rune at the point
func (t *TextFieldState) Insert(r rune) {
	t.Text = append(t.Text[:t.Point], append([]rune{r}, t.Text[t.Point:]...)...)
	t.Point++
}

// DeleteBackward removes the rune before the point
func (t *TextFieldState) DeleteBackward() bool {
	if t.Point == 0 {
		return false
	}
	t.Text = append(t.Text[:t.Point-1], t.Text[t.Point:]...)
	t.Point--
	return true
}

// DeleteForward removes the rune at the point
func (t *TextFieldState) DeleteForward() bool {
	if t.Point >= len(t.Text) {
		return false
	}
	t.Text = append(t.Text[:t.Point], t.Text[t.Point+1:]...)
	return true
}

// DeleteWordBackward removes the word before the point
func (t *TextFieldState) DeleteWordBackward() bool {
	if t.Point == 0 {
		return false
	}
	start := t.Point
	for start > 0 && !isWordChar(t.Text[start-1]) {
		start--
	}
	for start > 0 && isWordChar(t.Text[start-1]) {
		start--
	}
	t.Text = append(t.Text[:start], t.Text[t.Point:]...)
	t.Point = start
	return true
}

// KillToEnd moves the text after the point into the kill buffer
func (t *TextFieldState) KillToEnd() {
	t.Kill = append([]rune(nil), t.Text[t.Point:]...)
	t.Text = t.Text[:t.Point]
}

// Yank inserts the kill buffer at the point
func (t *TextFieldState) Yank() bool {
	if t.Kill == nil {
		return false
	}
	rest := append([]rune(nil), t.Text[t.Point:]...)
	t.Text = append(append(t.Text[:t.Point], t.Kill...), rest...)
	t.Point += len(t.Kill)
	return true
}

// MoveLeft moves the point left
func (t *TextFieldState) MoveLeft() bool {
	if t.Point == 0 {
		return false
	}
	t.Point--
	return true
}

// MoveRight moves the point right
func (t *TextFieldState) MoveRight() bool {
	if t.Point >= len(t.Text) {
		return false
	}
	t.Point++
	return true
}

// MoveToStart moves the point to the beginning
func (t *TextFieldState) MoveToStart() {
	t.Point = 0
}

// MoveToEnd moves the point past the last rune
func (t *TextFieldState) MoveToEnd() {
	t.Point = len(t.Text)
}

// AdjustScroll updates First so the point stays inside a field w runes wide
func (t *TextFieldState) AdjustScroll(w int) {
	if w <= 0 {
		return
	}
	if t.Point < t.First {
		t.First = t.Point
	}
	if t.Point >= t.First+w {
		t.First = t.Point - w + 1
	}
	if t.First < 0 {
		t.First = 0
	}
}
