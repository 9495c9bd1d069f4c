package window

import (
	"encoding/binary"

	"github.com/tinyrange/glwin/internal/input"
)

// nativeEvent stands in for one event in a native queue.
type nativeEvent func(emit func(Event))

// fakeBackend records requests and replays queued native events through
// the real X11 and Win32 translators.
type fakeBackend struct {
	createErr error
	surface   Surface
	screen    Rect
	swapOK    bool

	creates  int
	destroys int
	presents int
	queue    []nativeEvent

	fullScreen []bool
	restores   []Rect
	minimize   []bool
	maximize   []bool
	focus      []bool
	positions  []Rect
	sizes      []Rect
	warps      []Rect
	titles     []string
	swaps      []int
	setErr     error
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		surface: Surface{Geometry: Rect{Width: 800, Height: 600}},
		screen:  Rect{Width: 1920, Height: 1080},
	}
}

func (f *fakeBackend) push(evs ...nativeEvent) { f.queue = append(f.queue, evs...) }

func (f *fakeBackend) Create(cfg Config) (Surface, error) {
	if f.createErr != nil {
		return Surface{}, f.createErr
	}
	f.creates++
	s := f.surface
	if s.Geometry.Width == 0 {
		s.Geometry.Width, s.Geometry.Height = cfg.Width, cfg.Height
	}
	return s, nil
}

func (f *fakeBackend) Destroy() { f.destroys++ }

func (f *fakeBackend) PollEvent(emit func(Event)) bool {
	if len(f.queue) == 0 {
		return false
	}
	ev := f.queue[0]
	f.queue = f.queue[1:]
	ev(emit)
	return true
}

func (f *fakeBackend) Present() { f.presents++ }

func (f *fakeBackend) MakeCurrent() error { return nil }

func (f *fakeBackend) SetFullScreen(enable bool, restore Rect) (Rect, error) {
	f.fullScreen = append(f.fullScreen, enable)
	if f.setErr != nil {
		return Rect{}, f.setErr
	}
	if enable {
		return f.screen, nil
	}
	f.restores = append(f.restores, restore)
	return restore, nil
}

func (f *fakeBackend) SetMinimized(on bool) error {
	f.minimize = append(f.minimize, on)
	return f.setErr
}

func (f *fakeBackend) SetMaximized(on bool) error {
	f.maximize = append(f.maximize, on)
	return f.setErr
}

func (f *fakeBackend) SetFocus(on bool) error {
	f.focus = append(f.focus, on)
	return f.setErr
}

func (f *fakeBackend) SetPosition(x, y int) error {
	f.positions = append(f.positions, Rect{X: x, Y: y})
	return f.setErr
}

func (f *fakeBackend) SetResolution(w, h int) error {
	f.sizes = append(f.sizes, Rect{Width: w, Height: h})
	return f.setErr
}

func (f *fakeBackend) SetMousePosition(x, y int) error {
	f.warps = append(f.warps, Rect{X: x, Y: y})
	return f.setErr
}

func (f *fakeBackend) SetTitle(title string) error {
	f.titles = append(f.titles, title)
	return f.setErr
}

func (f *fakeBackend) SetSwapInterval(n int) bool {
	f.swaps = append(f.swaps, n)
	return f.swapOK
}

// Raw X events.

func (e *xEvent) put32(off int, v uint32) { binary.NativeEndian.PutUint32(e[off:], v) }
func (e *xEvent) put64(off int, v uint64) { binary.NativeEndian.PutUint64(e[off:], v) }

func newXEvent(kind int32) *xEvent {
	var ev xEvent
	ev.put32(offType, uint32(kind))
	return &ev
}

func xKeyEvent(kind int32, keycode uint32, time uint64) *xEvent {
	ev := newXEvent(kind)
	ev.put32(offKeycode, keycode)
	ev.put64(offTime, time)
	return ev
}

func xButtonEvent(kind int32, button uint32) *xEvent {
	ev := newXEvent(kind)
	ev.put32(offKeycode, button)
	return ev
}

func xConfigureEvent(x, y, w, h int32, synthetic bool) *xEvent {
	ev := newXEvent(xConfigureNotify)
	if synthetic {
		ev.put32(offSendEvent, 1)
	}
	ev.put32(offConfigureX, uint32(x))
	ev.put32(offConfigureY, uint32(y))
	ev.put32(offConfigureWidth, uint32(w))
	ev.put32(offConfigureHeight, uint32(h))
	return ev
}

// testKeysyms maps test keycodes to keysyms the way XLookupKeysym would.
var testKeysyms = map[uint32]uint32{
	38: 'a',
	9:  0xff1b, // Escape
	50: 0xffe1, // Shift_L
	82: 0xffad, // KP_Subtract
}

func testX11Translator() *x11Translator {
	return &x11Translator{
		wmDeleteWindow: 300,
		netWMState:     301,
		lookupKeysym: func(ev *xEvent) uint32 {
			return testKeysyms[ev.keycode()]
		},
	}
}

// x11 wraps a raw event as a queued native event.
func x11(ev *xEvent) nativeEvent {
	t := testX11Translator()
	return func(emit func(Event)) { t.translate(ev, emit) }
}

// x11Key is a key event for a keycode in testKeysyms.
func x11Key(keycode uint32, pressed bool) nativeEvent {
	kind := int32(xKeyRelease)
	if pressed {
		kind = xKeyPress
	}
	return x11(xKeyEvent(kind, keycode, 1))
}

func x11Close() nativeEvent {
	ev := newXEvent(xClientMessage)
	ev.put32(offMessageFormat, 32)
	ev.put64(offMessageData, 300)
	return x11(ev)
}

// Win32 messages.

func win32(msg uint32, wParam, lParam uintptr) nativeEvent {
	return func(emit func(Event)) { translateMessage(msg, wParam, lParam, emit) }
}

func win32Key(vk uint32, pressed bool) nativeEvent {
	if pressed {
		return win32(wmKeyDown, uintptr(vk), 1)
	}
	return win32(wmKeyUp, uintptr(vk), 1|3<<30)
}

func makeLParam(lo, hi int) uintptr {
	return uintptr(uint16(int16(lo))) | uintptr(uint16(int16(hi)))<<16
}

// backendFlavor produces the same logical input for either host.
type backendFlavor struct {
	name  string
	keyA  func(pressed bool) nativeEvent
	close func() nativeEvent
}

var flavors = []backendFlavor{
	{
		name:  "x11",
		keyA:  func(pressed bool) nativeEvent { return x11Key(38, pressed) },
		close: x11Close,
	},
	{
		name:  "win32",
		keyA:  func(pressed bool) nativeEvent { return win32Key('A', pressed) },
		close: func() nativeEvent { return win32(wmClose, 0, 0) },
	},
}

func countKeysDown(w *Window) int {
	n := 0
	for k := input.KeyUnknown + 1; k < input.KeyLast; k++ {
		if w.KeyState(k) {
			n++
		}
	}
	return n
}
