package tui

import (
	"log"
	"strings"
	"unicode"

	"github.com/lixenwraith/cellgui/terminal"
)

// MenuItem is one entry of a drop-down. An underscore in Title marks the
// accelerator letter that follows it
type MenuItem struct {
	Title  string
	Help   string
	Action func()
}

// MenuBarItem is a top-level menu; nil children render as separators
type MenuBarItem struct {
	Title    string
	Children []*MenuItem
	current  int
}

// Current returns the highlighted child index
func (mb *MenuBarItem) Current() int { return mb.current }

// MenuBar is a one-row container across the top of the screen whose menus
// drop down in a nested modal loop
type MenuBar struct {
	*Container
	Menus []*MenuBarItem

	selected int
	action   func()
	help     []func(text string)
}

// NewMenuBar creates a bar filling its container's width
func NewMenuBar(menus []*MenuBarItem) *MenuBar {
	c := NewContainer(0, 0, 0, 1)
	c.kind = SchemeMenu
	c.Fill = FillHorizontal
	return &MenuBar{
		Container: c,
		Menus:     menus,
		selected:  -1,
	}
}

// Open returns the index of the dropped-down menu, -1 when closed
func (m *MenuBar) Open() int { return m.selected }

// OnHelp registers fn to receive the Help text of the highlighted item as
// it changes, and an empty string when the menu closes
func (m *MenuBar) OnHelp(fn func(text string)) {
	m.help = append(m.help, fn)
}

func (m *MenuBar) notifyHelp() {
	text := ""
	if m.selected >= 0 {
		mb := m.Menus[m.selected]
		if mb.current < len(mb.Children) && mb.Children[mb.current] != nil {
			text = mb.Children[mb.current].Help
		}
	}
	for _, fn := range m.help {
		fn(text)
	}
}

// accelerator returns the lower-cased letter after the first underscore
func accelerator(title string) rune {
	i := strings.IndexRune(title, '_')
	if i < 0 || i+1 >= len(title) {
		return 0
	}
	r := []rune(title[i+1:])[0]
	return unicode.ToLower(r)
}

// titleX returns the column of menu i on the bar
func (m *MenuBar) titleX(i int) int {
	x := 1
	for j := 0; j < i && j < len(m.Menus); j++ {
		x += RuneLen(strings.Replace(m.Menus[j].Title, "_", "", 1)) + 3
	}
	return x
}

// menuWidth is the outer width of menu i's drop-down
func (m *MenuBar) menuWidth(i int) int {
	w := 0
	for _, item := range m.Menus[i].Children {
		if item != nil {
			w = max(w, RuneLen(strings.Replace(item.Title, "_", "", 1)))
		}
	}
	return w + 4
}

// --- Activation ---

// Activate drops down menu idx and runs the bar as a modal until an item is
// chosen or the menu is cancelled. The chosen action runs after the modal
// has fully unwound
func (m *MenuBar) Activate(idx int) {
	a := m.application()
	if a == nil || idx < 0 || idx >= len(m.Menus) {
		return
	}
	for _, mb := range m.Menus {
		mb.current = 0
		if len(mb.Children) > 0 && mb.Children[0] == nil {
			m.stepFrom(mb, 0, 1)
		}
	}
	m.selected = idx
	m.action = nil
	m.notifyHelp()

	if err := a.Run(m); err != nil {
		log.Printf("tui: menu modal: %v", err)
	}

	m.selected = -1
	m.notifyHelp()
	a.Refresh()

	if act := m.action; act != nil {
		m.action = nil
		act()
	}
}

// stepFrom moves mb.current from start in direction dir to the next
// selectable item, staying put when there is none
func (m *MenuBar) stepFrom(mb *MenuBarItem, start, dir int) bool {
	for i := start + dir; i >= 0 && i < len(mb.Children); i += dir {
		if mb.Children[i] != nil {
			mb.current = i
			return true
		}
	}
	return false
}

func (m *MenuBar) pick() bool {
	mb := m.Menus[m.selected]
	if len(mb.Children) == 0 {
		return false
	}
	item := mb.Children[mb.current]
	if item == nil {
		return false
	}
	m.action = item.Action
	m.running = false
	return true
}

func (m *MenuBar) cancel() {
	m.action = nil
	m.running = false
}

// switchTo opens another top-level menu while the modal runs
func (m *MenuBar) switchTo(idx int) {
	m.selected = idx
	m.notifyHelp()
	if a := m.application(); a != nil {
		a.Refresh()
	}
}

// --- Input ---

// ProcessHotKey opens a menu on F9 or Alt plus its accelerator
func (m *MenuBar) ProcessHotKey(k terminal.Key) bool {
	if k == terminal.KeyF9 {
		if m.selected >= 0 {
			m.cancel()
		} else {
			m.Activate(0)
		}
		return true
	}
	base, alt := k.IsAlt()
	if !alt {
		return false
	}
	want := unicode.ToLower(base.Rune())
	for i, mb := range m.Menus {
		if want != 0 && accelerator(mb.Title) == want {
			if m.selected >= 0 {
				m.switchTo(i)
			} else {
				m.Activate(i)
			}
			return true
		}
	}
	return false
}

// ProcessKey navigates the open menu, consuming every key while it is open
func (m *MenuBar) ProcessKey(k terminal.Key) bool {
	if m.selected < 0 {
		return false
	}
	n := len(m.Menus)
	mb := m.Menus[m.selected]

	switch k {
	case terminal.KeyLeft:
		m.switchTo((m.selected - 1 + n) % n)
	case terminal.KeyRight:
		m.switchTo((m.selected + 1) % n)
	case terminal.KeyUp, terminal.KeyCtrlP:
		if m.stepFrom(mb, mb.current, -1) {
			m.notifyHelp()
			m.Redraw()
		}
	case terminal.KeyDown, terminal.KeyCtrlN:
		if m.stepFrom(mb, mb.current, 1) {
			m.notifyHelp()
			m.Redraw()
		}
	case terminal.KeyEnter:
		return m.pick()
	case terminal.KeyEscape, terminal.KeyCtrlC:
		m.cancel()
	default:
		r := unicode.ToLower(k.Rune())
		if r == 0 {
			return true
		}
		for i, item := range mb.Children {
			if item != nil && accelerator(item.Title) == r {
				mb.current = i
				m.pick()
				break
			}
		}
	}
	return true
}

// ProcessMouse opens menus from the bar and picks items from the drop-down
func (m *MenuBar) ProcessMouse(ev terminal.MouseEvent) {
	if !ev.Clicked() {
		return
	}
	if ev.Y == 0 {
		for i := len(m.Menus) - 1; i >= 0; i-- {
			if ev.X >= m.titleX(i) {
				if m.selected >= 0 {
					m.switchTo(i)
				} else {
					m.Activate(i)
				}
				return
			}
		}
		return
	}
	if m.selected < 0 {
		return
	}
	mb := m.Menus[m.selected]
	x0 := m.titleX(m.selected) - 1
	row := ev.Y - 2
	if ev.X > x0 && ev.X < x0+m.menuWidth(m.selected)-1 && row >= 0 && row < len(mb.Children) {
		if mb.Children[row] != nil {
			mb.current = row
			m.pick()
		}
		return
	}
	m.cancel()
}

// --- Drawing ---

// drawTitle writes title without its underscore, highlighting the accelerator
func (m *MenuBar) drawTitle(title string, normal, hot terminal.Attr) {
	m.SetAttr(normal)
	marked := false
	for _, r := range title {
		if r == '_' && !marked {
			marked = true
			m.SetAttr(hot)
			continue
		}
		m.AddRune(r)
		if marked {
			m.SetAttr(normal)
		}
	}
}

func (m *MenuBar) Redraw() {
	scheme := m.Scheme()
	m.SetAttr(scheme.Normal)
	m.Move(0, 0)
	m.AddString(RepeatRune(' ', m.W))

	for i, mb := range m.Menus {
		m.Move(m.titleX(i), 0)
		normal, hot := scheme.Normal, scheme.HotNormal
		if i == m.selected {
			normal, hot = scheme.Focus, scheme.HotFocus
		}
		m.SetAttr(normal)
		m.AddRune(' ')
		m.drawTitle(mb.Title, normal, hot)
		m.SetAttr(normal)
		m.AddRune(' ')
	}

	if m.selected >= 0 {
		m.drawMenu(m.selected)
	}
	m.PositionCursor()
}

// drawMenu paints the drop-down of menu i below the bar
func (m *MenuBar) drawMenu(i int) {
	scheme := m.Scheme()
	mb := m.Menus[i]
	x := m.titleX(i) - 1
	w := m.menuWidth(i)
	chars := boxChars[LineSingle]

	m.SetAttr(scheme.Normal)
	m.Move(x, 1)
	m.AddRune(chars[boxTL])
	m.AddString(RepeatRune(chars[boxH], w-2))
	m.AddRune(chars[boxTR])

	for row, item := range mb.Children {
		m.Move(x, 2+row)
		m.SetAttr(scheme.Normal)
		if item == nil {
			m.AddRune('├')
			m.AddString(RepeatRune(chars[boxH], w-2))
			m.AddRune('┤')
			continue
		}
		m.AddRune(chars[boxV])
		normal, hot := scheme.Normal, scheme.HotNormal
		if row == mb.current {
			normal, hot = scheme.Focus, scheme.HotFocus
		}
		m.SetAttr(normal)
		m.AddRune(' ')
		m.drawTitle(item.Title, normal, hot)
		m.SetAttr(normal)
		m.AddString(RepeatRune(' ', w-3-RuneLen(strings.Replace(item.Title, "_", "", 1))))
		m.SetAttr(scheme.Normal)
		m.AddRune(chars[boxV])
	}

	m.Move(x, 2+len(mb.Children))
	m.AddRune(chars[boxBL])
	m.AddString(RepeatRune(chars[boxH], w-2))
	m.AddRune(chars[boxBR])
}

// PositionCursor rests on the current item, or the first title when closed
func (m *MenuBar) PositionCursor() {
	if m.selected < 0 {
		m.Move(m.titleX(0), 0)
		return
	}
	mb := m.Menus[m.selected]
	m.Move(m.titleX(m.selected)+1, 2+mb.current)
}
