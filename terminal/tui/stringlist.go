package tui

import "github.com/lixenwraith/cellgui/terminal"

// StringList is a ListProvider over a slice of strings. Space toggles the
// mark of the selected item when marking is enabled, Enter activates it
type StringList struct {
	items     []string
	marks     map[int]bool
	allowMark bool
	view      *ListView

	activated []func(item int)
	changed   []func(item int)
}

// NewStringList creates a provider over items
func NewStringList(items []string, allowMark bool) *StringList {
	return &StringList{
		items:     items,
		marks:     make(map[int]bool),
		allowMark: allowMark,
	}
}

// Items returns the current items
func (s *StringList) Items() []string { return s.items }

// SetItems replaces the items and re-clamps the bound view
func (s *StringList) SetItems(items []string) {
	s.items = items
	for i := range s.marks {
		if i >= len(items) {
			delete(s.marks, i)
		}
	}
	if s.view != nil {
		s.view.ProviderChanged()
	}
}

// Marked returns the marked indices in ascending order
func (s *StringList) Marked() []int {
	var out []int
	for i := range s.items {
		if s.marks[i] {
			out = append(out, i)
		}
	}
	return out
}

// OnActivated registers fn for Enter on an item
func (s *StringList) OnActivated(fn func(item int)) {
	s.activated = append(s.activated, fn)
}

// OnSelectionChanged registers fn for selection moves
func (s *StringList) OnSelectionChanged(fn func(item int)) {
	s.changed = append(s.changed, fn)
}

func (s *StringList) Count() int { return len(s.items) }

func (s *StringList) AllowMark() bool { return s.allowMark }

func (s *StringList) IsMarked(item int) bool { return s.marks[item] }

func (s *StringList) Render(line, col, width, item int) {
	s.view.Move(col, line)
	s.view.AddString(Fit(s.items[item], width))
}

func (s *StringList) SetListView(lv *ListView) { s.view = lv }

func (s *StringList) ProcessKey(k terminal.Key) bool {
	item := s.view.Selected()
	if item < 0 {
		return false
	}
	switch k {
	case terminal.KeySpace:
		if !s.allowMark {
			return false
		}
		s.marks[item] = !s.marks[item]
		s.view.Redraw()
		return true
	case terminal.KeyEnter:
		if len(s.activated) == 0 {
			return false
		}
		for _, fn := range s.activated {
			fn(item)
		}
		return true
	}
	return false
}

func (s *StringList) SelectedChanged() {
	item := s.view.Selected()
	for _, fn := range s.changed {
		fn(item)
	}
}
