package terminal

import "time"

// NopDriver discards output and never produces input
// Widgets that are not attached to a running application draw into it
type NopDriver struct{}

var nopReady = make(chan struct{})

func (NopDriver) Init() error { return nil }
func (NopDriver) Fini() {}
func (NopDriver) Size() (int, int) { return 0, 0 }
func (NopDriver) SetTimeout(time.Duration) {}
func (NopDriver) ReadKey() Key { return KeyNone }
func (NopDriver) Mouse() (MouseEvent, bool) { return MouseEvent{}, false }
func (NopDriver) Ready() <-chan struct{} { return nopReady }
func (NopDriver) Move(int, int) {}
func (NopDriver) SetAttr(Attr) {}
func (NopDriver) AddRune(rune) {}
func (NopDriver) AddString(string) {}
func (NopDriver) Refresh() {}
func (NopDriver) HasColors() bool { return false }
func (NopDriver) MakeColor(Color, Color) Attr { return AttrNormal }
func (NopDriver) Suspend() error { return nil }
func (NopDriver) Redraw() {}
func (NopDriver) Beep() {}
