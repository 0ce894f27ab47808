package tui

import "github.com/lixenwraith/cellgui/terminal"

// ColorScheme is the set of semantic colors a container hands its children
type ColorScheme struct {
	Normal    terminal.Attr
	Focus     terminal.Attr
	HotNormal terminal.Attr
	HotFocus  terminal.Attr
}

// SchemeKind names a palette entry a container draws with
type SchemeKind uint8

const (
	SchemeInherit SchemeKind = iota // owner's scheme, Base at top level
	SchemeBase
	SchemeDialog
	SchemeMenu
	SchemeError
)

// Palette holds every color scheme, allocated once when the session starts
type Palette struct {
	Base   ColorScheme
	Dialog ColorScheme
	Menu   ColorScheme
	Error  ColorScheme
}

// Scheme returns the entry for kind
func (p *Palette) Scheme(kind SchemeKind) ColorScheme {
	switch kind {
	case SchemeDialog:
		return p.Dialog
	case SchemeMenu:
		return p.Menu
	case SchemeError:
		return p.Error
	default:
		return p.Base
	}
}

// NewPalette allocates color pairs on d, or uses monochrome attributes when
// color is disabled or unsupported
func NewPalette(d terminal.Driver, disableColor bool) Palette {
	if disableColor || !d.HasColors() {
		return monoPalette()
	}

	pair := d.MakeColor
	bold := terminal.AttrBold
	p := Palette{
		Base: ColorScheme{
			Normal:    pair(terminal.ColorWhite, terminal.ColorBlue),
			Focus:     pair(terminal.ColorBlack, terminal.ColorCyan),
			HotNormal: bold | pair(terminal.ColorYellow, terminal.ColorBlue),
			HotFocus:  bold | pair(terminal.ColorYellow, terminal.ColorCyan),
		},
		Dialog: ColorScheme{
			Normal:    pair(terminal.ColorBlack, terminal.ColorWhite),
			Focus:     pair(terminal.ColorBlack, terminal.ColorCyan),
			HotNormal: pair(terminal.ColorBlue, terminal.ColorWhite),
			HotFocus:  pair(terminal.ColorBlue, terminal.ColorCyan),
		},
		Menu: ColorScheme{
			Normal:    bold | pair(terminal.ColorWhite, terminal.ColorCyan),
			Focus:     bold | pair(terminal.ColorWhite, terminal.ColorBlack),
			HotNormal: bold | pair(terminal.ColorYellow, terminal.ColorCyan),
			HotFocus:  bold | pair(terminal.ColorYellow, terminal.ColorBlack),
		},
	}
	errNormal := bold | pair(terminal.ColorWhite, terminal.ColorRed)
	p.Error = ColorScheme{
		Normal:    errNormal,
		Focus:     errNormal,
		HotNormal: bold | pair(terminal.ColorYellow, terminal.ColorRed),
		HotFocus:  errNormal,
	}
	return p
}

func monoPalette() Palette {
	return Palette{
		Base: ColorScheme{
			Normal:    terminal.AttrNormal,
			Focus:     terminal.AttrReverse,
			HotNormal: terminal.AttrBold,
			HotFocus:  terminal.AttrReverse | terminal.AttrBold,
		},
		Dialog: ColorScheme{
			Normal:    terminal.AttrReverse,
			Focus:     terminal.AttrNormal,
			HotNormal: terminal.AttrBold,
			HotFocus:  terminal.AttrNormal,
		},
		Menu: ColorScheme{
			Normal:    terminal.AttrReverse,
			Focus:     terminal.AttrNormal,
			HotNormal: terminal.AttrReverse | terminal.AttrBold,
			HotFocus:  terminal.AttrBold,
		},
		Error: ColorScheme{
			Normal:    terminal.AttrBold,
			Focus:     terminal.AttrBold,
			HotNormal: terminal.AttrBold | terminal.AttrUnderline,
			HotFocus:  terminal.AttrBold,
		},
	}
}

// --- Per-container scheme selection ---

// SetScheme selects the palette entry c and its descendants draw with
func (c *Container) SetScheme(kind SchemeKind) {
	c.kind = kind
	c.override = nil
}

// SetColors overrides the palette with explicit colors
func (c *Container) SetColors(s ColorScheme) {
	c.override = &s
}

// Scheme resolves the colors c hands to its children
func (c *Container) Scheme() ColorScheme {
	if c.override != nil {
		return *c.override
	}
	kind := c.kind
	if kind == SchemeInherit {
		if p := c.container; p != nil && p != detached {
			return p.Scheme()
		}
		kind = SchemeBase
	}
	if a := c.application(); a != nil {
		return a.palette.Scheme(kind)
	}
	return ColorScheme{}
}
