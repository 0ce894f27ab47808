package terminal

// Key is a single decoded keystroke
// Printable input is its rune value, control characters keep their ASCII
// code, named keys live above the Unicode range, and Alt chords carry KeyAlt
type Key int32

// KeyAlt marks a key that arrived as Escape followed by another key
const KeyAlt Key = 1 << 30

// keyNamed is the first code above the Unicode range
const keyNamed Key = 0x110000

// Control keys (ASCII)
const (
	KeyNone   Key = 0
	KeyCtrlA  Key = 1
	KeyCtrlB  Key = 2
	KeyCtrlC  Key = 3
	KeyCtrlD  Key = 4
	KeyCtrlE  Key = 5
	KeyCtrlF  Key = 6
	KeyCtrlG  Key = 7
	KeyCtrlH  Key = 8
	KeyTab    Key = 9 // Ctrl+I
	KeyCtrlJ  Key = 10
	KeyCtrlK  Key = 11
	KeyCtrlL  Key = 12
	KeyEnter  Key = 13 // Ctrl+M
	KeyCtrlN  Key = 14
	KeyCtrlO  Key = 15
	KeyCtrlP  Key = 16
	KeyCtrlQ  Key = 17
	KeyCtrlR  Key = 18
	KeyCtrlS  Key = 19
	KeyCtrlT  Key = 20
	KeyCtrlU  Key = 21
	KeyCtrlV  Key = 22
	KeyCtrlW  Key = 23
	KeyCtrlX  Key = 24
	KeyCtrlY  Key = 25
	KeyCtrlZ  Key = 26
	KeyEscape Key = 27
	KeySpace  Key = 32

	KeyBackspace Key = 127
)

// Named keys
const (
	KeyUp Key = keyNamed + iota
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyDelete
	KeyBacktab // Shift+Tab

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Sentinels returned by Driver.ReadKey, never dispatched to widgets
	KeyResize
	KeyMouse
)

// Alt returns k as an Alt chord
func Alt(k Key) Key {
	return k | KeyAlt
}

// IsAlt reports the key without its Alt bit, and whether the bit was set
func (k Key) IsAlt() (Key, bool) {
	if k&KeyAlt != 0 {
		return k &^ KeyAlt, true
	}
	return k, false
}

// Rune returns the printable rune carried by k, or 0 for control, named and Alt keys
func (k Key) Rune() rune {
	if k < KeySpace || k == KeyBackspace || k >= keyNamed {
		return 0
	}
	return rune(k)
}

// IsSentinel reports whether k is a driver flow-control code rather than input
func (k Key) IsSentinel() bool {
	return k == KeyNone || k == KeyResize || k == KeyMouse
}
