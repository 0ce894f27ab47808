package tui

import (
	"fmt"

	"github.com/lixenwraith/cellgui/terminal"
)

// ListProvider supplies the items a ListView shows. The view never caches
// the count: it asks on every redraw and key
type ListProvider interface {
	// Count is the current number of items
	Count() int
	// AllowMark enables per-item marking
	AllowMark() bool
	// IsMarked reports the mark of item
	IsMarked(item int) bool
	// Render paints item at the write cursor, exactly width cells, with the
	// highlight attribute already selected. line and col are view-local
	Render(line, col, width, item int)
	// SetListView receives the view at construction
	SetListView(lv *ListView)
	// ProcessKey sees every key the view does not navigate with
	ProcessKey(k terminal.Key) bool
	// SelectedChanged is called after the selection moved
	SelectedChanged()
}

// ListView shows a scrolling window over a provider's items
type ListView struct {
	View
	provider ListProvider
	top      int
	selected int
}

// NewListView creates a focusable list bound to p
func NewListView(x, y, w, h int, p ListProvider) *ListView {
	if p == nil {
		panic("tui: ListView requires a provider")
	}
	lv := &ListView{
		View:     NewView(x, y, w, h),
		provider: p,
	}
	lv.canFocus = true
	p.SetListView(lv)
	return lv
}

// Provider returns the bound provider
func (lv *ListView) Provider() ListProvider { return lv.provider }

// Top returns the index of the first visible row
func (lv *ListView) Top() int { return lv.top }

// Selected returns the highlighted item, -1 when the provider is empty
func (lv *ListView) Selected() int {
	if lv.provider.Count() == 0 {
		return -1
	}
	return lv.selected
}

// SetSelected highlights item, which must exist, scrolling it into view
func (lv *ListView) SetSelected(item int) {
	n := lv.provider.Count()
	if item < 0 || item >= n {
		panic(fmt.Sprintf("tui: ListView selection %d out of range [0,%d)", item, n))
	}
	lv.selected = item
	if item < lv.top {
		lv.top = item
	} else if item >= lv.top+lv.H {
		lv.top = item - lv.H + 1
	}
	lv.Redraw()
}

// ProviderChanged re-clamps the window after the item count changed
func (lv *ListView) ProviderChanged() {
	lv.clamp()
	lv.Redraw()
}

// clamp keeps top and selected inside [0, count-1]
func (lv *ListView) clamp() {
	n := lv.provider.Count()
	last := max(n-1, 0)
	if lv.top >= n {
		lv.top = last
	}
	if lv.selected >= n {
		lv.selected = last
	}
}

func (lv *ListView) selectionChanged() {
	lv.provider.SelectedChanged()
}

func (lv *ListView) ProcessKey(k terminal.Key) bool {
	lv.clamp()
	n := lv.provider.Count()

	switch k {
	case terminal.KeyUp, terminal.KeyCtrlP:
		lv.moveUp()
		return true

	case terminal.KeyDown, terminal.KeyCtrlN:
		lv.moveDown(n)
		return true

	case terminal.KeyPageDown, terminal.KeyCtrlV:
		if n == 0 {
			return true
		}
		target := lv.selected + lv.H
		if target >= n {
			target = n - 1
		}
		if target != lv.selected {
			lv.selected = target
			if n >= lv.H {
				lv.top = lv.selected
			} else {
				lv.top = 0
			}
			lv.selectionChanged()
		}
		lv.Redraw()
		return true

	case terminal.KeyPageUp, terminal.KeyCtrlB:
		target := max(lv.selected-lv.H, 0)
		if target != lv.selected {
			lv.selected = target
			lv.selectionChanged()
		}
		lv.top = lv.selected
		lv.Redraw()
		return true
	}

	return lv.provider.ProcessKey(k)
}

func (lv *ListView) moveUp() {
	if lv.selected == 0 {
		return
	}
	lv.selected--
	if lv.selected < lv.top {
		lv.top = lv.selected
	}
	lv.selectionChanged()
	lv.Redraw()
}

func (lv *ListView) moveDown(n int) {
	if lv.selected+1 >= n {
		return
	}
	lv.selected++
	if lv.selected >= lv.top+lv.H {
		lv.top++
	}
	lv.selectionChanged()
	lv.Redraw()
}

// ProcessMouse selects the clicked row and scrolls on the wheel
func (lv *ListView) ProcessMouse(ev terminal.MouseEvent) {
	lv.clamp()
	n := lv.provider.Count()

	switch {
	case ev.Button == terminal.MouseBtnWheelUp:
		lv.moveUp()
	case ev.Button == terminal.MouseBtnWheelDown:
		lv.moveDown(n)
	case ev.Clicked():
		if ev.Y < 0 || ev.Y >= lv.H {
			return
		}
		item := lv.top + ev.Y
		if item >= n {
			return
		}
		lv.selected = item
		lv.selectionChanged()
		lv.Redraw()
	}
}

// PositionCursor parks the cursor on the selected row
func (lv *ListView) PositionCursor() {
	lv.Move(0, lv.selected-lv.top)
}

// rowAttr crosses selection and mark into one of the four scheme colors
func (lv *ListView) rowAttr(item int) terminal.Attr {
	marked := lv.provider.AllowMark() && lv.provider.IsMarked(item)
	switch {
	case item == lv.selected && marked:
		return lv.ColorHotFocus()
	case item == lv.selected:
		return lv.ColorFocus()
	case marked:
		return lv.ColorHotNormal()
	default:
		return lv.ColorNormal()
	}
}

func (lv *ListView) Redraw() {
	n := lv.provider.Count()
	for row := 0; row < lv.H; row++ {
		lv.Move(0, row)
		item := lv.top + row
		if item >= n {
			lv.SetAttr(lv.ColorNormal())
			lv.AddString(RepeatRune(' ', lv.W))
			continue
		}
		lv.SetAttr(lv.rowAttr(item))
		lv.provider.Render(row, 0, lv.W, item)
	}
	lv.PositionCursor()
}
