package window

import (
	"fmt"

	"github.com/tinyrange/glwin/internal/input"
)

// EventKind describes the kind of a unified event.
type EventKind uint8

const (
	EventKey EventKind = iota + 1
	EventMouseButton
	EventMouseWheel
	EventMouseMove
	EventResize
	EventMove
	EventFocus
	EventState
	EventClose
)

func (k EventKind) String() string {
	switch k {
	case EventKey:
		return "Key"
	case EventMouseButton:
		return "MouseButton"
	case EventMouseWheel:
		return "MouseWheel"
	case EventMouseMove:
		return "MouseMove"
	case EventResize:
		return "Resize"
	case EventMove:
		return "Move"
	case EventFocus:
		return "Focus"
	case EventState:
		return "State"
	case EventClose:
		return "Close"
	default:
		return fmt.Sprintf("EventKind(%d)", uint8(k))
	}
}

// Event is a native event after translation by a backend.
//
// Only the fields relevant to Kind are set:
//   - Key, Pressed for EventKey
//   - Button, Pressed for EventMouseButton
//   - Wheel for EventMouseWheel, in notches (positive is away from the user)
//   - X, Y for EventMouseMove (window local) and EventMove (screen)
//   - Width, Height for EventResize
//   - Focused for EventFocus
//   - State for EventState
type Event struct {
	Kind    EventKind
	Key     input.Key
	Button  input.Button
	Pressed bool
	Wheel   float32
	X, Y    int
	Width   int
	Height  int
	Focused bool
	State   State
}

type (
	KeyFunc         func(key input.Key, pressed bool)
	MouseButtonFunc func(button input.Button, pressed bool)
	MouseWheelFunc  func(delta float32)
	MouseMoveFunc   func(x, y int)
	ResizeFunc      func(width, height int)
	MoveFunc        func(x, y int)
	FocusFunc       func(focused bool)
	MinimizeFunc    func()
	MaximizeFunc    func()
	DestroyFunc     func()
)

// callbacks holds one slot per event category. A nil slot means the event
// only updates window state.
type callbacks struct {
	key         KeyFunc
	mouseButton MouseButtonFunc
	mouseWheel  MouseWheelFunc
	mouseMove   MouseMoveFunc
	resize      ResizeFunc
	move        MoveFunc
	focus       FocusFunc
	minimize    MinimizeFunc
	maximize    MaximizeFunc
	destroy     DestroyFunc
}
