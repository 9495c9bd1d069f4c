//go:build linux

package window

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"unsafe"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/motif"
	"github.com/BurntSushi/xgbutil/xwindow"
	"github.com/ebitengine/purego"
)

const (
	inputOutput = 1
	allocNone   = 0

	keyPressMask        = 1 << 0
	keyReleaseMask      = 1 << 1
	buttonPressMask     = 1 << 2
	buttonReleaseMask   = 1 << 3
	pointerMotionMask   = 1 << 6
	exposureMask        = 1 << 15
	structureNotifyMask = 1 << 17
	focusChangeMask     = 1 << 21
	propertyChangeMask  = 1 << 22

	cwBorderPixel = 1 << 3
	cwEventMask   = 1 << 11
	cwColormap    = 1 << 13

	queuedAfterReading = 1

	// ICCCM WM_CHANGE_STATE argument.
	iconicState = 3
)

type xVisualInfo struct {
	Visual       uintptr
	VisualID     uint64
	Screen       int32
	Depth        int32
	Class        int32
	RedMask      uint64
	GreenMask    uint64
	BlueMask     uint64
	ColormapSize int32
	BitsPerRGB   int32
}

type xSetWindowAttributes struct {
	BackgroundPixmap uintptr
	BackgroundPixel  uint64
	BorderPixmap     uint64
	BorderPixel      uint64
	BitGravity       int32
	WinGravity       int32
	BackingStore     int32
	BackingPlanes    uint64
	BackingPixel     uint64
	SaveUnder        int32
	EventMask        int64
	DoNotPropagate   int64
	OverrideRedirect int32
	Colormap         uintptr
	Cursor           uintptr
}

var (
	x11lib uintptr
	gllib  uintptr

	xOpenDisplay    func(*byte) uintptr
	xCloseDisplay   func(uintptr) int32
	xDefaultScreen  func(uintptr) int32
	xRootWindow     func(uintptr, int32) uintptr
	xCreateColormap func(uintptr, uintptr, uintptr, int32) uintptr
	xFreeColormap   func(uintptr, uintptr) int32
	xCreateWindow   func(uintptr, uintptr, int32, int32, uint32, uint32, uint32, int32, uint32, uintptr, uint64, unsafe.Pointer) uintptr
	xDestroyWindow  func(uintptr, uintptr) int32
	xMapWindow      func(uintptr, uintptr) int32
	xStoreName      func(uintptr, uintptr, string) int32
	xInternAtom     func(uintptr, string, int32) uintptr
	xSetWMProtocols func(uintptr, uintptr, *uintptr, int32) int32
	xSelectInput    func(uintptr, uintptr, int64) int32
	xPending        func(uintptr) int32
	xEventsQueued   func(uintptr, int32) int32
	xNextEvent      func(uintptr, unsafe.Pointer) int32
	xPeekEvent      func(uintptr, unsafe.Pointer) int32
	xLookupKeysym   func(unsafe.Pointer, int32) uint64
	xGetGeometry    func(uintptr, uintptr, *uintptr, *int32, *int32, *uint32, *uint32, *uint32, *uint32) int32
	xFlush          func(uintptr) int32
	xFree           func(unsafe.Pointer) int32

	glxChooseVisual          func(uintptr, int32, *int32) *xVisualInfo
	glxCreateContext         func(uintptr, *xVisualInfo, uintptr, int32) uintptr
	glxMakeCurrent           func(uintptr, uintptr, uintptr) int32
	glxSwapBuffers           func(uintptr, uintptr)
	glxDestroyContext        func(uintptr, uintptr)
	glxQueryExtensionsString func(uintptr, int32) string
	glxGetProcAddressARB     func(string) uintptr
)

func ensureLibs() error {
	var err error
	if x11lib == 0 {
		x11lib, err = purego.Dlopen("libX11.so.6", purego.RTLD_LAZY|purego.RTLD_GLOBAL)
		if err != nil {
			return err
		}
		registerX11()
	}
	if gllib == 0 {
		gllib, err = purego.Dlopen("libGL.so.1", purego.RTLD_LAZY|purego.RTLD_GLOBAL)
		if err != nil {
			return err
		}
		registerGLX()
	}
	return nil
}

func registerX11() {
	purego.RegisterLibFunc(&xOpenDisplay, x11lib, "XOpenDisplay")
	purego.RegisterLibFunc(&xCloseDisplay, x11lib, "XCloseDisplay")
	purego.RegisterLibFunc(&xDefaultScreen, x11lib, "XDefaultScreen")
	purego.RegisterLibFunc(&xRootWindow, x11lib, "XRootWindow")
	purego.RegisterLibFunc(&xCreateColormap, x11lib, "XCreateColormap")
	purego.RegisterLibFunc(&xFreeColormap, x11lib, "XFreeColormap")
	purego.RegisterLibFunc(&xCreateWindow, x11lib, "XCreateWindow")
	purego.RegisterLibFunc(&xDestroyWindow, x11lib, "XDestroyWindow")
	purego.RegisterLibFunc(&xMapWindow, x11lib, "XMapWindow")
	purego.RegisterLibFunc(&xStoreName, x11lib, "XStoreName")
	purego.RegisterLibFunc(&xInternAtom, x11lib, "XInternAtom")
	purego.RegisterLibFunc(&xSetWMProtocols, x11lib, "XSetWMProtocols")
	purego.RegisterLibFunc(&xSelectInput, x11lib, "XSelectInput")
	purego.RegisterLibFunc(&xPending, x11lib, "XPending")
	purego.RegisterLibFunc(&xEventsQueued, x11lib, "XEventsQueued")
	purego.RegisterLibFunc(&xNextEvent, x11lib, "XNextEvent")
	purego.RegisterLibFunc(&xPeekEvent, x11lib, "XPeekEvent")
	purego.RegisterLibFunc(&xLookupKeysym, x11lib, "XLookupKeysym")
	purego.RegisterLibFunc(&xGetGeometry, x11lib, "XGetGeometry")
	purego.RegisterLibFunc(&xFlush, x11lib, "XFlush")
	purego.RegisterLibFunc(&xFree, x11lib, "XFree")
}

func registerGLX() {
	purego.RegisterLibFunc(&glxChooseVisual, gllib, "glXChooseVisual")
	purego.RegisterLibFunc(&glxCreateContext, gllib, "glXCreateContext")
	purego.RegisterLibFunc(&glxMakeCurrent, gllib, "glXMakeCurrent")
	purego.RegisterLibFunc(&glxSwapBuffers, gllib, "glXSwapBuffers")
	purego.RegisterLibFunc(&glxDestroyContext, gllib, "glXDestroyContext")
	purego.RegisterLibFunc(&glxQueryExtensionsString, gllib, "glXQueryExtensionsString")
	purego.RegisterLibFunc(&glxGetProcAddressARB, gllib, "glXGetProcAddressARB")
}

// x11Backend drives one window through Xlib for events and GLX, and
// through an xgb connection to the same display for window manager
// requests.
type x11Backend struct {
	log *slog.Logger

	display uintptr
	screen  int32
	root    uintptr
	window  uintptr
	ctx     uintptr
	xu      *xgbutil.XUtil

	release releaseStack
	locked  bool

	translator x11Translator

	swap     swapControl
	swapProc uintptr
}

func newPlatformBackend(log *slog.Logger) Backend {
	return &x11Backend{log: log}
}

func (b *x11Backend) Create(cfg Config) (Surface, error) {
	if b.release.len() > 0 {
		return Surface{}, ErrAlreadyCreated
	}
	runtime.LockOSThread()
	b.locked = true

	surface, err := b.create(cfg)
	if err != nil {
		b.release.unwind(b.log)
		b.reset()
		return Surface{}, err
	}
	return surface, nil
}

func (b *x11Backend) create(cfg Config) (Surface, error) {
	if err := ensureLibs(); err != nil {
		return Surface{}, fmt.Errorf("%w: %v", ErrNoDisplay, err)
	}

	dpy := xOpenDisplay(nil)
	if dpy == 0 {
		return Surface{}, ErrNoDisplay
	}
	b.display = dpy
	b.release.push("display", func() error {
		xCloseDisplay(dpy)
		return nil
	})

	xu, err := xgbutil.NewConn()
	if err != nil {
		return Surface{}, fmt.Errorf("%w: %v", ErrNoDisplay, err)
	}
	b.xu = xu
	b.release.push("xgb connection", func() error {
		xu.Conn().Close()
		return nil
	})

	b.screen = xDefaultScreen(dpy)
	b.root = xRootWindow(dpy, b.screen)

	attrs := glxVisualAttribs(cfg)
	visual := glxChooseVisual(dpy, b.screen, &attrs[0])
	if visual == nil {
		return Surface{}, fmt.Errorf("glXChooseVisual: %w", ErrNoPixelFormat)
	}
	b.release.push("visual info", func() error {
		xFree(unsafe.Pointer(visual))
		return nil
	})

	cmap := xCreateColormap(dpy, b.root, visual.Visual, allocNone)
	b.release.push("colormap", func() error {
		xFreeColormap(dpy, cmap)
		return nil
	})

	var swa xSetWindowAttributes
	swa.Colormap = cmap
	swa.EventMask = keyPressMask | keyReleaseMask | buttonPressMask | buttonReleaseMask |
		pointerMotionMask | exposureMask | structureNotifyMask | focusChangeMask | propertyChangeMask

	win := xCreateWindow(
		dpy, b.root,
		0, 0,
		uint32(cfg.Width), uint32(cfg.Height),
		0,
		visual.Depth,
		inputOutput,
		visual.Visual,
		cwBorderPixel|cwColormap|cwEventMask,
		unsafe.Pointer(&swa),
	)
	if win == 0 {
		return Surface{}, opErr("XCreateWindow", nil)
	}
	b.window = win
	b.release.push("window", func() error {
		if xDestroyWindow(dpy, win) == 0 {
			return errors.New("XDestroyWindow failed")
		}
		return nil
	})

	xSelectInput(dpy, win, swa.EventMask)
	xStoreName(dpy, win, cfg.Name)
	if err := ewmh.WmNameSet(xu, xproto.Window(win), cfg.Name); err != nil {
		b.log.Debug("set _NET_WM_NAME", "err", err)
	}

	wmDelete := xInternAtom(dpy, "WM_DELETE_WINDOW", 0)
	xSetWMProtocols(dpy, win, &wmDelete, 1)
	netWMState := xInternAtom(dpy, "_NET_WM_STATE", 0)

	xMapWindow(dpy, win)
	xFlush(dpy)

	ctx := glxCreateContext(dpy, visual, 0, 1)
	if ctx == 0 {
		return Surface{}, opErr("glXCreateContext", nil)
	}
	b.ctx = ctx
	b.release.push("context", func() error {
		glxMakeCurrent(dpy, 0, 0)
		glxDestroyContext(dpy, ctx)
		return nil
	})

	if glxMakeCurrent(dpy, win, ctx) == 0 {
		return Surface{}, opErr("glXMakeCurrent", nil)
	}

	b.negotiateSwap()

	b.translator = x11Translator{
		wmDeleteWindow: uint64(wmDelete),
		netWMState:     uint64(netWMState),
		lookupKeysym: func(ev *xEvent) uint32 {
			return uint32(xLookupKeysym(unsafe.Pointer(&ev[0]), 0))
		},
		consumeRepeat: b.consumeRepeat,
		rootPosition:  b.rootPosition,
		geometry:      b.geometry,
		wmState:       b.wmState,
	}

	return Surface{Geometry: Rect{Width: cfg.Width, Height: cfg.Height}}, nil
}

func (b *x11Backend) negotiateSwap() {
	b.swap = negotiateSwapControl(glxQueryExtensionsString(b.display, b.screen), "GLX")
	if b.swap.ext == swapNone {
		return
	}
	b.swapProc = glxGetProcAddressARB(b.swap.ext.procName("glX"))
	if b.swapProc == 0 {
		b.swap = swapControl{}
	}
	b.log.Debug("swap control", "extension", b.swap.ext, "tear", b.swap.tear)
}

func (b *x11Backend) reset() {
	b.display, b.window, b.ctx, b.root = 0, 0, 0, 0
	b.xu = nil
	b.swap, b.swapProc = swapControl{}, 0
	b.translator = x11Translator{}
	if b.locked {
		b.locked = false
		runtime.UnlockOSThread()
	}
}

func (b *x11Backend) Destroy() {
	if b.release.len() == 0 {
		return
	}
	b.release.unwind(b.log)
	b.reset()
}

func (b *x11Backend) PollEvent(emit func(Event)) bool {
	if b.display == 0 || xPending(b.display) == 0 {
		return false
	}
	var ev xEvent
	xNextEvent(b.display, unsafe.Pointer(&ev[0]))
	b.translator.translate(&ev, emit)
	return true
}

func (b *x11Backend) consumeRepeat(release *xEvent) bool {
	if xEventsQueued(b.display, queuedAfterReading) == 0 {
		return false
	}
	var next xEvent
	xPeekEvent(b.display, unsafe.Pointer(&next[0]))
	if !isAutoRepeat(release, &next) {
		return false
	}
	xNextEvent(b.display, unsafe.Pointer(&next[0]))
	return true
}

func (b *x11Backend) rootPosition() (int, int, bool) {
	reply, err := xproto.TranslateCoordinates(b.xu.Conn(), xproto.Window(b.window), xproto.Window(b.root), 0, 0).Reply()
	if err != nil {
		return 0, 0, false
	}
	return int(reply.DstX), int(reply.DstY), true
}

func (b *x11Backend) geometry() (Rect, bool) {
	var root uintptr
	var x, y int32
	var width, height, border, depth uint32
	if xGetGeometry(b.display, b.window, &root, &x, &y, &width, &height, &border, &depth) == 0 {
		return Rect{}, false
	}
	r := Rect{X: int(x), Y: int(y), Width: int(width), Height: int(height)}
	if rx, ry, ok := b.rootPosition(); ok {
		r.X, r.Y = rx, ry
	}
	return r, true
}

func (b *x11Backend) wmState() (State, bool) {
	states, err := ewmh.WmStateGet(b.xu, xproto.Window(b.window))
	if err != nil {
		return StateNormal, false
	}
	return stateFromNetWMState(states), true
}

func (b *x11Backend) Present() {
	if b.display != 0 && b.window != 0 {
		glxSwapBuffers(b.display, b.window)
	}
}

func (b *x11Backend) MakeCurrent() error {
	if b.ctx == 0 {
		return ErrNotCreated
	}
	if glxMakeCurrent(b.display, b.window, b.ctx) == 0 {
		return opErr("glXMakeCurrent", nil)
	}
	return nil
}

func (b *x11Backend) xwin() xproto.Window { return xproto.Window(b.window) }

func (b *x11Backend) SetFullScreen(enable bool, restore Rect) (Rect, error) {
	if b.xu == nil {
		return Rect{}, ErrNotCreated
	}
	win := b.xwin()
	if !enable {
		if err := ewmh.WmStateReq(b.xu, win, ewmh.StateRemove, "_NET_WM_STATE_FULLSCREEN"); err != nil {
			return Rect{}, opErr("_NET_WM_STATE", err)
		}
		hints := &motif.Hints{Flags: motif.HintDecorations, Decoration: motif.DecorationAll}
		if err := motif.WmHintsSet(b.xu, win, hints); err != nil {
			return Rect{}, opErr("_MOTIF_WM_HINTS", err)
		}
		xwindow.New(b.xu, win).MoveResize(restore.X, restore.Y, max(restore.Width, 1), max(restore.Height, 1))
		return restore, nil
	}

	screen, err := xwindow.New(b.xu, b.xu.RootWin()).Geometry()
	if err != nil {
		return Rect{}, opErr("GetGeometry", err)
	}
	hints := &motif.Hints{Flags: motif.HintDecorations, Decoration: motif.DecorationNone}
	if err := motif.WmHintsSet(b.xu, win, hints); err != nil {
		return Rect{}, opErr("_MOTIF_WM_HINTS", err)
	}
	if err := ewmh.WmStateReq(b.xu, win, ewmh.StateAdd, "_NET_WM_STATE_FULLSCREEN"); err != nil {
		return Rect{}, opErr("_NET_WM_STATE", err)
	}
	full := Rect{Width: screen.Width(), Height: screen.Height()}
	xwindow.New(b.xu, win).MoveResize(0, 0, full.Width, full.Height)
	return full, nil
}

func (b *x11Backend) SetMinimized(minimized bool) error {
	if b.xu == nil {
		return ErrNotCreated
	}
	if !minimized {
		if err := xproto.MapWindowChecked(b.xu.Conn(), b.xwin()).Check(); err != nil {
			return opErr("MapWindow", err)
		}
		return ewmh.ActiveWindowReq(b.xu, b.xwin())
	}

	reply, err := xproto.InternAtom(b.xu.Conn(), false, uint16(len("WM_CHANGE_STATE")), "WM_CHANGE_STATE").Reply()
	if err != nil {
		return opErr("InternAtom", err)
	}
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: b.xwin(),
		Type:   reply.Atom,
		Data:   xproto.ClientMessageDataUnionData32New([]uint32{iconicState, 0, 0, 0, 0}),
	}
	return xproto.SendEventChecked(
		b.xu.Conn(),
		false,
		b.xu.RootWin(),
		xproto.EventMaskSubstructureRedirect|xproto.EventMaskSubstructureNotify,
		string(ev.Bytes()),
	).Check()
}

func (b *x11Backend) SetMaximized(maximized bool) error {
	if b.xu == nil {
		return ErrNotCreated
	}
	action := ewmh.StateRemove
	if maximized {
		action = ewmh.StateAdd
	}
	return ewmh.WmStateReqExtra(b.xu, b.xwin(), action,
		"_NET_WM_STATE_MAXIMIZED_VERT", "_NET_WM_STATE_MAXIMIZED_HORZ", 2)
}

func (b *x11Backend) SetFocus(focused bool) error {
	if b.xu == nil {
		return ErrNotCreated
	}
	if !focused {
		return xproto.SetInputFocusChecked(b.xu.Conn(), xproto.InputFocusParent, b.xu.RootWin(), xproto.TimeCurrentTime).Check()
	}
	if err := ewmh.ActiveWindowReq(b.xu, b.xwin()); err != nil {
		b.log.Debug("_NET_ACTIVE_WINDOW", "err", err)
	}
	return xproto.SetInputFocusChecked(b.xu.Conn(), xproto.InputFocusParent, b.xwin(), xproto.TimeCurrentTime).Check()
}

func (b *x11Backend) SetPosition(x, y int) error {
	if b.xu == nil {
		return ErrNotCreated
	}
	xwindow.New(b.xu, b.xwin()).Move(x, y)
	return nil
}

func (b *x11Backend) SetResolution(width, height int) error {
	if b.xu == nil {
		return ErrNotCreated
	}
	// A zero dimension is a protocol error.
	xwindow.New(b.xu, b.xwin()).Resize(max(width, 1), max(height, 1))
	return nil
}

func (b *x11Backend) SetMousePosition(x, y int) error {
	if b.xu == nil {
		return ErrNotCreated
	}
	return xproto.WarpPointerChecked(b.xu.Conn(), 0, b.xwin(), 0, 0, 0, 0, int16(x), int16(y)).Check()
}

func (b *x11Backend) SetTitle(title string) error {
	if b.xu == nil {
		return ErrNotCreated
	}
	if err := ewmh.WmNameSet(b.xu, b.xwin(), title); err != nil {
		return opErr("_NET_WM_NAME", err)
	}
	return icccm.WmNameSet(b.xu, b.xwin(), title)
}

func (b *x11Backend) SetSwapInterval(interval int) bool {
	n, ok := b.swap.interval(interval)
	if !ok || b.swapProc == 0 {
		return false
	}
	switch b.swap.ext {
	case swapEXT:
		purego.SyscallN(b.swapProc, b.display, b.window, uintptr(n))
	default:
		// SGI and MESA act on the current context and return 0 on success.
		if r, _, _ := purego.SyscallN(b.swapProc, uintptr(n)); int32(r) != 0 {
			return false
		}
	}
	return true
}
