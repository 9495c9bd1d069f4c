package window

import "github.com/tinyrange/glwin/internal/input"

// Window messages handled by the Win32 backend.
const (
	wmMove        = 0x0003
	wmSize        = 0x0005
	wmSetFocus    = 0x0007
	wmKillFocus   = 0x0008
	wmClose       = 0x0010
	wmKeyDown     = 0x0100
	wmKeyUp       = 0x0101
	wmSysKeyDown  = 0x0104
	wmSysKeyUp    = 0x0105
	wmMouseMove   = 0x0200
	wmLButtonDown = 0x0201
	wmLButtonUp   = 0x0202
	wmRButtonDown = 0x0204
	wmRButtonUp   = 0x0205
	wmMButtonDown = 0x0207
	wmMButtonUp   = 0x0208
	wmMouseWheel  = 0x020A
	wmXButtonDown = 0x020B
	wmXButtonUp   = 0x020C

	sizeRestored  = 0
	sizeMinimized = 1
	sizeMaximized = 2

	wheelDelta = 120

	keyRepeatBit = 1 << 30
)

func loword(v uintptr) uint16 { return uint16(v) }
func hiword(v uintptr) uint16 { return uint16(v >> 16) }

// signedPoint unpacks the two signed 16-bit coordinates of lParam.
func signedPoint(lParam uintptr) (int, int) {
	return int(int16(loword(lParam))), int(int16(hiword(lParam)))
}

// translateMessage turns one window message into unified events. Messages
// it does not know produce nothing.
func translateMessage(msg uint32, wParam, lParam uintptr, emit func(Event)) {
	switch msg {
	case wmSize:
		switch wParam {
		case sizeMinimized:
			emit(Event{Kind: EventState, State: StateMinimized})
			return
		case sizeMaximized:
			emit(Event{Kind: EventState, State: StateMaximized})
		case sizeRestored:
			emit(Event{Kind: EventState, State: StateNormal})
		}
		emit(Event{Kind: EventResize, Width: int(loword(lParam)), Height: int(hiword(lParam))})

	case wmMove:
		x, y := signedPoint(lParam)
		emit(Event{Kind: EventMove, X: x, Y: y})

	case wmSetFocus, wmKillFocus:
		emit(Event{Kind: EventFocus, Focused: msg == wmSetFocus})

	case wmClose:
		emit(Event{Kind: EventClose})

	case wmKeyDown, wmSysKeyDown, wmKeyUp, wmSysKeyUp:
		pressed := msg == wmKeyDown || msg == wmSysKeyDown
		if pressed && lParam&keyRepeatBit != 0 {
			return
		}
		vk := input.ResolveVirtualKey(uint32(wParam), lParam)
		if key, ok := input.FromVirtualKey(vk); ok {
			emit(Event{Kind: EventKey, Key: key, Pressed: pressed})
		}

	case wmMouseMove:
		x, y := signedPoint(lParam)
		emit(Event{Kind: EventMouseMove, X: x, Y: y})

	case wmLButtonDown, wmLButtonUp:
		emit(Event{Kind: EventMouseButton, Button: input.ButtonLeft, Pressed: msg == wmLButtonDown})
	case wmRButtonDown, wmRButtonUp:
		emit(Event{Kind: EventMouseButton, Button: input.ButtonRight, Pressed: msg == wmRButtonDown})
	case wmMButtonDown, wmMButtonUp:
		emit(Event{Kind: EventMouseButton, Button: input.ButtonMiddle, Pressed: msg == wmMButtonDown})

	case wmXButtonDown, wmXButtonUp:
		var b input.Button
		switch hiword(wParam) {
		case 1:
			b = input.Button4
		case 2:
			b = input.Button5
		default:
			return
		}
		emit(Event{Kind: EventMouseButton, Button: b, Pressed: msg == wmXButtonDown})

	case wmMouseWheel:
		delta := int16(hiword(wParam))
		emit(Event{Kind: EventMouseWheel, Wheel: float32(delta) / wheelDelta})
	}
}
