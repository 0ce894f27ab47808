package terminal

import (
	"strconv"
	"strings"
)

// keyToName maps named and control keys to canonical names
var keyToName = map[Key]string{
	KeyEscape:    "escape",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBacktab:   "backtab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeySpace:     "space",

	KeyUp:       "up",
	KeyDown:     "down",
	KeyLeft:     "left",
	KeyRight:    "right",
	KeyHome:     "home",
	KeyEnd:      "end",
	KeyPageUp:   "page_up",
	KeyPageDown: "page_down",
	KeyInsert:   "insert",

	KeyF1:  "f1",
	KeyF2:  "f2",
	KeyF3:  "f3",
	KeyF4:  "f4",
	KeyF5:  "f5",
	KeyF6:  "f6",
	KeyF7:  "f7",
	KeyF8:  "f8",
	KeyF9:  "f9",
	KeyF10: "f10",
	KeyF11: "f11",
	KeyF12: "f12",

	KeyResize: "resize",
	KeyMouse:  "mouse",
}

// nameToKey is the reverse lookup, built from keyToName
var nameToKey map[string]Key

func init() {
	nameToKey = make(map[string]Key, len(keyToName))
	for k, v := range keyToName {
		nameToKey[v] = k
	}
	// Aliases
	nameToKey["shift_tab"] = KeyBacktab
}

// String renders a key as alt_x, ctrl_x, a canonical name or the rune itself
func (k Key) String() string {
	if base, alt := k.IsAlt(); alt {
		return "alt_" + base.String()
	}
	if name, ok := keyToName[k]; ok {
		return name
	}
	if k > KeyNone && k <= KeyCtrlZ {
		return "ctrl_" + string(rune('a'+k-1))
	}
	if r := k.Rune(); r != 0 {
		return string(r)
	}
	return "key(" + strconv.Itoa(int(k)) + ")"
}

// KeyByName resolves a canonical name (optionally prefixed with alt_ or ctrl_)
// Returns KeyNone and false if name is unknown
func KeyByName(name string) (Key, bool) {
	if rest, ok := strings.CutPrefix(name, "alt_"); ok {
		k, ok := KeyByName(rest)
		if !ok {
			return KeyNone, false
		}
		return Alt(k), true
	}
	if k, ok := nameToKey[name]; ok {
		return k, true
	}
	if rest, ok := strings.CutPrefix(name, "ctrl_"); ok && len(rest) == 1 && rest[0] >= 'a' && rest[0] <= 'z' {
		return Key(rest[0]-'a') + KeyCtrlA, true
	}
	if runes := []rune(name); len(runes) == 1 && runes[0] > ' ' {
		return Key(runes[0]), true
	}
	return KeyNone, false
}
