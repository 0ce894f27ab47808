// Package terminal is the character-cell driver layer of the widget toolkit.
//
// It defines the Driver contract the toolkit draws on, a curses-like model
// with a write position, color-pair attributes and a key reader that honors a
// timeout, and provides TcellDriver, the implementation backed by tcell.
//
// Keys are plain integers: printable input is its rune, control characters
// keep their ASCII code, named keys sit above the Unicode range and Alt
// chords carry KeyAlt. KeyResize and KeyMouse are flow-control sentinels.
package terminal
