package terminal

// Color is one of the eight base ANSI colors every color terminal supports
type Color uint8

const (
	ColorBlack Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

// Attr is an opaque drawing attribute: a color-pair handle in the low bits
// combined with style flags, the way curses composes COLOR_PAIR(n) | A_BOLD
type Attr uint32

// Style flags
const (
	AttrNormal    Attr = 0
	AttrBold      Attr = 1 << 16
	AttrDim       Attr = 1 << 17
	AttrUnderline Attr = 1 << 18
	AttrBlink     Attr = 1 << 19
	AttrReverse   Attr = 1 << 20
)

// attrPairMask selects the color-pair handle
const attrPairMask Attr = 0xffff

// AttrStyle masks only the style bits
const AttrStyle = AttrBold | AttrDim | AttrUnderline | AttrBlink | AttrReverse

// Pair returns the color-pair handle, 0 for the terminal default colors
func (a Attr) Pair() int {
	return int(a & attrPairMask)
}

// WithPair returns a pair handle carrying the style flags of a
func (a Attr) WithPair(pair int) Attr {
	return a&AttrStyle | Attr(pair)&attrPairMask
}

// String returns a human-readable color name
func (c Color) String() string {
	switch c {
	case ColorBlack:
		return "black"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	default:
		return "unknown"
	}
}
