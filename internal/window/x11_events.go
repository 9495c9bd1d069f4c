package window

import (
	"encoding/binary"

	"github.com/tinyrange/glwin/internal/input"
)

// X11 core event types.
const (
	xKeyPress         = 2
	xKeyRelease       = 3
	xButtonPress      = 4
	xButtonRelease    = 5
	xMotionNotify     = 6
	xFocusIn          = 9
	xFocusOut         = 10
	xExpose           = 12
	xDestroyNotify    = 17
	xConfigureNotify  = 22
	xPropertyNotify   = 28
	xClientMessage    = 33
	xNotifyPointer    = 5
	xNotifyGrab       = 1
	xNotifyUngrab     = 2
	xEventBufferBytes = 192
)

// Byte offsets into the XEvent union on LP64 platforms.
const (
	offType      = 0
	offSendEvent = 16

	// XKeyEvent, XButtonEvent, XMotionEvent
	offTime     = 56
	offPointerX = 64
	offPointerY = 68
	offKeycode  = 84 // also XButtonEvent.button

	// XFocusChangeEvent
	offFocusMode   = 40
	offFocusDetail = 44

	// XExposeEvent
	offExposeCount = 56

	// XConfigureEvent
	offConfigureX      = 48
	offConfigureY      = 52
	offConfigureWidth  = 56
	offConfigureHeight = 60

	// XPropertyEvent
	offPropertyAtom = 40

	// XClientMessageEvent
	offMessageType   = 40
	offMessageFormat = 48
	offMessageData   = 56
)

// xEvent is the raw XEvent union as filled by XNextEvent.
type xEvent [xEventBufferBytes]byte

func (e *xEvent) i32(off int) int32  { return int32(binary.NativeEndian.Uint32(e[off:])) }
func (e *xEvent) u32(off int) uint32 { return binary.NativeEndian.Uint32(e[off:]) }
func (e *xEvent) u64(off int) uint64 { return binary.NativeEndian.Uint64(e[off:]) }

func (e *xEvent) kind() int32     { return e.i32(offType) }
func (e *xEvent) synthetic() bool { return e.i32(offSendEvent) != 0 }
func (e *xEvent) time() uint64    { return e.u64(offTime) }
func (e *xEvent) keycode() uint32 { return e.u32(offKeycode) }
func (e *xEvent) button() uint32  { return e.u32(offKeycode) }

func (e *xEvent) pointer() (int, int) {
	return int(e.i32(offPointerX)), int(e.i32(offPointerY))
}

// isAutoRepeat reports whether release and next are the pair X11 generates
// for a held key: a KeyRelease followed by a KeyPress of the same keycode
// carrying the same timestamp.
func isAutoRepeat(release, next *xEvent) bool {
	return release.kind() == xKeyRelease &&
		next.kind() == xKeyPress &&
		next.time() == release.time() &&
		next.keycode() == release.keycode()
}

// stateFromNetWMState derives the lifecycle state from the atom names in
// _NET_WM_STATE.
func stateFromNetWMState(states []string) State {
	var hidden, fullscreen, maxVert, maxHorz bool
	for _, s := range states {
		switch s {
		case "_NET_WM_STATE_HIDDEN":
			hidden = true
		case "_NET_WM_STATE_FULLSCREEN":
			fullscreen = true
		case "_NET_WM_STATE_MAXIMIZED_VERT":
			maxVert = true
		case "_NET_WM_STATE_MAXIMIZED_HORZ":
			maxHorz = true
		}
	}
	switch {
	case hidden:
		return StateMinimized
	case fullscreen:
		return StateFullScreen
	case maxVert && maxHorz:
		return StateMaximized
	default:
		return StateNormal
	}
}

// x11Translator turns raw X events into unified events. The hooks reach
// back into the native connection; any of them may be nil.
type x11Translator struct {
	wmDeleteWindow uint64
	netWMState     uint64

	// lookupKeysym returns the unshifted keysym of a key event.
	lookupKeysym func(ev *xEvent) uint32
	// consumeRepeat reports whether a release is half of an auto-repeat
	// pair, removing the matching press from the queue if so.
	consumeRepeat func(release *xEvent) bool
	// rootPosition converts the window origin to root coordinates.
	rootPosition func() (x, y int, ok bool)
	// geometry queries the current window geometry.
	geometry func() (Rect, bool)
	// wmState reads _NET_WM_STATE.
	wmState func() (State, bool)
}

func (t *x11Translator) translate(ev *xEvent, emit func(Event)) {
	switch ev.kind() {
	case xKeyPress, xKeyRelease:
		t.translateKey(ev, emit)

	case xButtonPress, xButtonRelease:
		translateButton(ev, emit)

	case xMotionNotify:
		x, y := ev.pointer()
		emit(Event{Kind: EventMouseMove, X: x, Y: y})

	case xFocusIn, xFocusOut:
		mode := ev.i32(offFocusMode)
		if ev.i32(offFocusDetail) == xNotifyPointer || mode == xNotifyGrab || mode == xNotifyUngrab {
			return
		}
		emit(Event{Kind: EventFocus, Focused: ev.kind() == xFocusIn})

	case xExpose:
		if ev.i32(offExposeCount) != 0 || t.geometry == nil {
			return
		}
		if r, ok := t.geometry(); ok {
			emit(Event{Kind: EventResize, Width: r.Width, Height: r.Height})
			emit(Event{Kind: EventMove, X: r.X, Y: r.Y})
		}

	case xConfigureNotify:
		x, y := int(ev.i32(offConfigureX)), int(ev.i32(offConfigureY))
		// Real ConfigureNotify events are relative to the window manager's
		// frame; only synthetic ones carry root coordinates.
		if !ev.synthetic() && t.rootPosition != nil {
			if rx, ry, ok := t.rootPosition(); ok {
				x, y = rx, ry
			}
		}
		emit(Event{
			Kind:   EventResize,
			Width:  int(ev.i32(offConfigureWidth)),
			Height: int(ev.i32(offConfigureHeight)),
		})
		emit(Event{Kind: EventMove, X: x, Y: y})

	case xPropertyNotify:
		if t.netWMState == 0 || ev.u64(offPropertyAtom) != t.netWMState || t.wmState == nil {
			return
		}
		if s, ok := t.wmState(); ok {
			emit(Event{Kind: EventState, State: s})
		}

	case xClientMessage:
		if ev.i32(offMessageFormat) == 32 &&
			ev.u64(offMessageData) == t.wmDeleteWindow &&
			t.wmDeleteWindow != 0 {
			emit(Event{Kind: EventClose})
		}

	case xDestroyNotify:
		emit(Event{Kind: EventClose})
	}
}

func (t *x11Translator) translateKey(ev *xEvent, emit func(Event)) {
	pressed := ev.kind() == xKeyPress
	if !pressed && t.consumeRepeat != nil && t.consumeRepeat(ev) {
		return
	}
	if t.lookupKeysym == nil {
		return
	}
	key, ok := input.FromKeysym(t.lookupKeysym(ev))
	if !ok {
		return
	}
	emit(Event{Kind: EventKey, Key: key, Pressed: pressed})
}

func translateButton(ev *xEvent, emit func(Event)) {
	pressed := ev.kind() == xButtonPress
	switch ev.button() {
	case 1:
		emit(Event{Kind: EventMouseButton, Button: input.ButtonLeft, Pressed: pressed})
	case 2:
		emit(Event{Kind: EventMouseButton, Button: input.ButtonMiddle, Pressed: pressed})
	case 3:
		emit(Event{Kind: EventMouseButton, Button: input.ButtonRight, Pressed: pressed})
	case 4, 5:
		// The wheel is reported as a press/release pair per notch.
		if !pressed {
			return
		}
		delta := float32(1)
		if ev.button() == 5 {
			delta = -1
		}
		emit(Event{Kind: EventMouseWheel, Wheel: delta})
	case 8:
		emit(Event{Kind: EventMouseButton, Button: input.Button4, Pressed: pressed})
	case 9:
		emit(Event{Kind: EventMouseButton, Button: input.Button5, Pressed: pressed})
	}
}
