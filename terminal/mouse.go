package terminal

// MouseButton represents mouse button identity
type MouseButton uint8

const (
	MouseBtnNone MouseButton = iota
	MouseBtnLeft
	MouseBtnMiddle
	MouseBtnRight
	MouseBtnWheelUp
	MouseBtnWheelDown
)

// MouseAction represents the type of mouse event
type MouseAction uint8

const (
	MouseActionNone MouseAction = iota
	MouseActionPress
	MouseActionRelease
	MouseActionMove
	MouseActionDrag
)

// MouseEvent is a decoded mouse report
// X and Y start in screen coordinates and are rewritten to widget-local
// coordinates as the event descends the container tree
type MouseEvent struct {
	X, Y   int
	Button MouseButton
	Action MouseAction
}

// Offset returns a copy of the event translated by (-dx, -dy)
func (e MouseEvent) Offset(dx, dy int) MouseEvent {
	e.X -= dx
	e.Y -= dy
	return e
}

// Clicked reports a primary-button press
func (e MouseEvent) Clicked() bool {
	return e.Button == MouseBtnLeft && e.Action == MouseActionPress
}

// String returns human-readable button name
func (b MouseButton) String() string {
	switch b {
	case MouseBtnLeft:
		return "Left"
	case MouseBtnMiddle:
		return "Middle"
	case MouseBtnRight:
		return "Right"
	case MouseBtnWheelUp:
		return "WheelUp"
	case MouseBtnWheelDown:
		return "WheelDown"
	default:
		return "None"
	}
}

// String returns human-readable action name
func (a MouseAction) String() string {
	switch a {
	case MouseActionPress:
		return "Press"
	case MouseActionRelease:
		return "Release"
	case MouseActionMove:
		return "Move"
	case MouseActionDrag:
		return "Drag"
	default:
		return "None"
	}
}
