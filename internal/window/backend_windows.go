//go:build windows

package window

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	csOwnDC   = 0x0020
	csHRedraw = 0x0002
	csVRedraw = 0x0001

	wsOverlappedWindow = 0x00CF0000
	wsPopup            = 0x80000000
	wsVisible          = 0x10000000
	wsClipSiblings     = 0x04000000
	wsClipChildren     = 0x02000000

	windowedStyle   = wsOverlappedWindow | wsClipSiblings | wsClipChildren
	fullScreenStyle = wsPopup | wsClipSiblings | wsClipChildren

	gwlStyle = -16

	swShow     = 5
	swMaximize = 3
	swMinimize = 6
	swRestore  = 9

	swpNoSize       = 0x0001
	swpNoMove       = 0x0002
	swpNoZOrder     = 0x0004
	swpFrameChanged = 0x0020
	swpShowWindow   = 0x0040

	smCXScreen = 0
	smCYScreen = 1

	pmRemove = 0x0001
	idcArrow = 32512

	pfdTypeRGBA      = 0
	pfdMainPlane     = 0
	pfdDoubleBuffer  = 0x00000001
	pfdDrawToWindow  = 0x00000004
	pfdSupportOpenGL = 0x00000020

	pfdRequiredFlags = pfdDrawToWindow | pfdSupportOpenGL | pfdDoubleBuffer

	glExtensions = 0x1F03
)

type wndClassEx struct {
	cbSize        uint32
	style         uint32
	lpfnWndProc   uintptr
	cbClsExtra    int32
	cbWndExtra    int32
	hInstance     windows.Handle
	hIcon         windows.Handle
	hCursor       windows.Handle
	hbrBackground windows.Handle
	lpszMenuName  *uint16
	lpszClassName *uint16
	hIconSm       windows.Handle
}

type msg struct {
	hwnd     windows.HWND
	message  uint32
	wParam   uintptr
	lParam   uintptr
	time     uint32
	pt       point
	lPrivate uint32
}

type point struct {
	x int32
	y int32
}

type rect struct {
	left   int32
	top    int32
	right  int32
	bottom int32
}

// Mirrors PIXELFORMATDESCRIPTOR (must be 40 bytes).
type pixelFormatDescriptor struct {
	nSize           uint16
	nVersion        uint16
	dwFlags         uint32
	iPixelType      byte
	cColorBits      byte
	cRedBits        byte
	cRedShift       byte
	cGreenBits      byte
	cGreenShift     byte
	cBlueBits       byte
	cBlueShift      byte
	cAlphaBits      byte
	cAlphaShift     byte
	cAccumBits      byte
	cAccumRedBits   byte
	cAccumGreenBits byte
	cAccumBlueBits  byte
	cAccumAlphaBits byte
	cDepthBits      byte
	cStencilBits    byte
	cAuxBuffers     byte
	iLayerType      byte
	bReserved       byte
	dwLayerMask     uint32
	dwVisibleMask   uint32
	dwDamageMask    uint32
}

func (p *pixelFormatDescriptor) bits() formatBits {
	return formatBits{Color: int(p.cColorBits), Depth: int(p.cDepthBits), Stencil: int(p.cStencilBits)}
}

func (p *pixelFormatDescriptor) usable() bool {
	return p.dwFlags&pfdRequiredFlags == pfdRequiredFlags &&
		p.iPixelType == pfdTypeRGBA &&
		p.iLayerType == pfdMainPlane
}

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	gdi32    = windows.NewLazySystemDLL("gdi32.dll")
	opengl32 = windows.NewLazySystemDLL("opengl32.dll")

	procRegisterClassEx   = user32.NewProc("RegisterClassExW")
	procCreateWindowEx    = user32.NewProc("CreateWindowExW")
	procDefWindowProc     = user32.NewProc("DefWindowProcW")
	procDestroyWindow     = user32.NewProc("DestroyWindow")
	procShowWindow        = user32.NewProc("ShowWindow")
	procUpdateWindow      = user32.NewProc("UpdateWindow")
	procGetClientRect     = user32.NewProc("GetClientRect")
	procGetWindowRect     = user32.NewProc("GetWindowRect")
	procAdjustWindowRect  = user32.NewProc("AdjustWindowRect")
	procSetWindowPos      = user32.NewProc("SetWindowPos")
	procSetWindowLongPtr  = user32.NewProc("SetWindowLongPtrW")
	procSetWindowText     = user32.NewProc("SetWindowTextW")
	procGetSystemMetrics  = user32.NewProc("GetSystemMetrics")
	procPeekMessage       = user32.NewProc("PeekMessageW")
	procTranslateMessage  = user32.NewProc("TranslateMessage")
	procDispatchMessage   = user32.NewProc("DispatchMessageW")
	procGetDC             = user32.NewProc("GetDC")
	procReleaseDC         = user32.NewProc("ReleaseDC")
	procClientToScreen    = user32.NewProc("ClientToScreen")
	procSetCursorPos      = user32.NewProc("SetCursorPos")
	procSetForegroundWin  = user32.NewProc("SetForegroundWindow")
	procSetFocus          = user32.NewProc("SetFocus")
	procLoadCursor        = user32.NewProc("LoadCursorW")
	procChoosePixelFormat = gdi32.NewProc("ChoosePixelFormat")
	procDescribePixelFmt  = gdi32.NewProc("DescribePixelFormat")
	procSetPixelFormat    = gdi32.NewProc("SetPixelFormat")
	procSwapBuffers       = gdi32.NewProc("SwapBuffers")
	procWglCreateContext  = opengl32.NewProc("wglCreateContext")
	procWglMakeCurrent    = opengl32.NewProc("wglMakeCurrent")
	procWglDeleteContext  = opengl32.NewProc("wglDeleteContext")
	procWglGetProcAddress = opengl32.NewProc("wglGetProcAddress")
	procGlGetString       = opengl32.NewProc("glGetString")
)

// winErr wraps the error returned by a LazyProc call, which is a zero
// Errno when the call did not set one.
func winErr(op string, err error) error {
	var errno windows.Errno
	if errors.As(err, &errno) && errno == 0 {
		err = nil
	}
	return opErr(op, err)
}

var (
	classOnce sync.Once
	classErr  error
	className *uint16

	// routes sends window procedure calls to the backend owning the hwnd.
	routesMu sync.Mutex
	routes   = map[windows.HWND]*win32Backend{}
)

func registerWindowClass() error {
	classOnce.Do(func() {
		// Unique per process to avoid CS_OWNDC collisions.
		className, classErr = windows.UTF16PtrFromString(fmt.Sprintf("GlwinWindow_%d", os.Getpid()))
		if classErr != nil {
			return
		}
		cursor, _, _ := procLoadCursor.Call(0, idcArrow)
		wc := wndClassEx{
			cbSize:        uint32(unsafe.Sizeof(wndClassEx{})),
			style:         csOwnDC | csHRedraw | csVRedraw,
			lpfnWndProc:   windows.NewCallback(wndProc),
			hInstance:     moduleHandle(),
			hCursor:       windows.Handle(cursor),
			lpszClassName: className,
		}
		if ret, _, err := procRegisterClassEx.Call(uintptr(unsafe.Pointer(&wc))); ret == 0 {
			classErr = winErr("RegisterClassExW", err)
		}
	})
	return classErr
}

func moduleHandle() windows.Handle {
	var h windows.Handle
	if err := windows.GetModuleHandleEx(0, nil, &h); err != nil {
		return 0
	}
	return h
}

func route(hwnd windows.HWND) *win32Backend {
	routesMu.Lock()
	defer routesMu.Unlock()
	return routes[hwnd]
}

func wndProc(hwnd, message, wParam, lParam uintptr) uintptr {
	if b := route(windows.HWND(hwnd)); b != nil {
		var batch []Event
		translateMessage(uint32(message), wParam, lParam, func(ev Event) {
			batch = append(batch, b.adjust(ev))
		})
		if len(batch) > 0 {
			b.pending = append(b.pending, batch)
		}
	}
	if message == wmClose {
		// The facade decides when to destroy the window.
		return 0
	}
	ret, _, _ := procDefWindowProc.Call(hwnd, message, wParam, lParam)
	return ret
}

// win32Backend owns one HWND, its device context and a WGL context.
type win32Backend struct {
	log *slog.Logger

	hwnd windows.HWND
	hdc  uintptr
	ctx  uintptr

	release releaseStack
	locked  bool

	// pending holds the events of each message the window procedure
	// handled, including those sent synchronously while a setter was
	// running.
	pending    [][]Event
	fullscreen bool

	swap     swapControl
	swapProc uintptr
}

func newPlatformBackend(log *slog.Logger) Backend {
	return &win32Backend{log: log}
}

func (b *win32Backend) adjust(ev Event) Event {
	// WM_MOVE carries the client origin; positions are outer origins.
	if ev.Kind == EventMove {
		if r, ok := b.windowRect(); ok {
			ev.X, ev.Y = int(r.left), int(r.top)
		}
	}
	return ev
}

func (b *win32Backend) Create(cfg Config) (Surface, error) {
	if b.release.len() > 0 {
		return Surface{}, ErrAlreadyCreated
	}
	if unsafe.Sizeof(pixelFormatDescriptor{}) != 40 {
		return Surface{}, fmt.Errorf("PIXELFORMATDESCRIPTOR size mismatch: got %d, want 40",
			unsafe.Sizeof(pixelFormatDescriptor{}))
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

func (b *win32Backend) create(cfg Config) (Surface, error) {
	if err := registerWindowClass(); err != nil {
		return Surface{}, fmt.Errorf("%w: %v", ErrNoDisplay, err)
	}

	title, err := windows.UTF16PtrFromString(cfg.Name)
	if err != nil {
		return Surface{}, fmt.Errorf("window title: %w", err)
	}

	outer := rect{right: int32(cfg.Width), bottom: int32(cfg.Height)}
	procAdjustWindowRect.Call(uintptr(unsafe.Pointer(&outer)), windowedStyle, 0)

	ret, _, callErr := procCreateWindowEx.Call(
		0,
		uintptr(unsafe.Pointer(className)),
		uintptr(unsafe.Pointer(title)),
		windowedStyle,
		0, 0,
		uintptr(outer.right-outer.left),
		uintptr(outer.bottom-outer.top),
		0,
		0,
		uintptr(moduleHandle()),
		0,
	)
	if ret == 0 {
		return Surface{}, winErr("CreateWindowExW", callErr)
	}
	hwnd := windows.HWND(ret)
	b.hwnd = hwnd

	routesMu.Lock()
	routes[hwnd] = b
	routesMu.Unlock()
	b.release.push("window", func() error {
		routesMu.Lock()
		delete(routes, hwnd)
		routesMu.Unlock()
		if ok, _, err := procDestroyWindow.Call(uintptr(hwnd)); ok == 0 {
			return winErr("DestroyWindow", err)
		}
		return nil
	})

	dc, _, callErr := procGetDC.Call(uintptr(hwnd))
	if dc == 0 {
		return Surface{}, winErr("GetDC", callErr)
	}
	b.hdc = dc
	b.release.push("device context", func() error {
		procReleaseDC.Call(uintptr(hwnd), dc)
		return nil
	})

	if err := setPixelFormat(dc, cfg); err != nil {
		return Surface{}, err
	}

	ctx, _, callErr := procWglCreateContext.Call(dc)
	if ctx == 0 {
		return Surface{}, winErr("wglCreateContext", callErr)
	}
	b.ctx = ctx
	b.release.push("context", func() error {
		procWglMakeCurrent.Call(0, 0)
		if ok, _, err := procWglDeleteContext.Call(ctx); ok == 0 {
			return winErr("wglDeleteContext", err)
		}
		return nil
	})

	if ok, _, callErr := procWglMakeCurrent.Call(dc, ctx); ok == 0 {
		return Surface{}, winErr("wglMakeCurrent", callErr)
	}

	b.negotiateSwap()

	// Show only after pixel format + context are established.
	procShowWindow.Call(uintptr(hwnd), swShow)
	procUpdateWindow.Call(uintptr(hwnd))

	var client rect
	procGetClientRect.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&client)))

	return Surface{
		Geometry: Rect{Width: int(client.right - client.left), Height: int(client.bottom - client.top)},
		Focused:  windows.GetForegroundWindow() == hwnd,
	}, nil
}

// setPixelFormat selects a double-buffered RGBA format that has at least
// the requested bits. ChoosePixelFormat is tried first; when its pick falls
// short, every format is enumerated.
func setPixelFormat(dc uintptr, cfg Config) error {
	want := formatBits{Color: cfg.ColorBits, Depth: cfg.DepthBits, Stencil: cfg.StencilBits}
	rgb, alpha := channelBits(cfg.ColorBits)
	desired := pixelFormatDescriptor{
		nSize:        uint16(unsafe.Sizeof(pixelFormatDescriptor{})),
		nVersion:     1,
		dwFlags:      pfdRequiredFlags,
		iPixelType:   pfdTypeRGBA,
		cColorBits:   byte(min(cfg.ColorBits, 24)),
		cRedBits:     byte(rgb),
		cGreenBits:   byte(rgb),
		cBlueBits:    byte(rgb),
		cAlphaBits:   byte(alpha),
		cDepthBits:   byte(cfg.DepthBits),
		cStencilBits: byte(cfg.StencilBits),
		iLayerType:   pfdMainPlane,
	}

	var chosen pixelFormatDescriptor
	pf, _, _ := procChoosePixelFormat.Call(dc, uintptr(unsafe.Pointer(&desired)))
	if pf != 0 {
		describePixelFormat(dc, pf, &chosen)
	}
	if pf == 0 || !chosen.usable() || !chosen.bits().satisfies(want) {
		pf = enumeratePixelFormats(dc, want, &chosen)
		if pf == 0 {
			return ErrNoPixelFormat
		}
	}

	if ok, _, err := procSetPixelFormat.Call(dc, pf, uintptr(unsafe.Pointer(&chosen))); ok == 0 {
		return winErr(fmt.Sprintf("SetPixelFormat(%d)", pf), err)
	}
	return nil
}

func describePixelFormat(dc, index uintptr, pfd *pixelFormatDescriptor) uintptr {
	n, _, _ := procDescribePixelFmt.Call(dc, index, unsafe.Sizeof(*pfd), uintptr(unsafe.Pointer(pfd)))
	return n
}

func enumeratePixelFormats(dc uintptr, want formatBits, out *pixelFormatDescriptor) uintptr {
	var pfd pixelFormatDescriptor
	count := describePixelFormat(dc, 1, &pfd)
	for i := uintptr(1); i <= count; i++ {
		if describePixelFormat(dc, i, &pfd) == 0 {
			continue
		}
		if pfd.usable() && pfd.bits().satisfies(want) {
			*out = pfd
			return i
		}
	}
	return 0
}

// extensionString returns the WGL extension list, falling back to the GL
// one, which drivers also use to advertise WGL_EXT_swap_control.
func (b *win32Backend) extensionString() string {
	if p := wglProc("wglGetExtensionsStringEXT"); p != 0 {
		if r, _, _ := syscall.SyscallN(p); r != 0 {
			return windows.BytePtrToString((*byte)(unsafe.Pointer(r)))
		}
	}
	if p := wglProc("wglGetExtensionsStringARB"); p != 0 {
		if r, _, _ := syscall.SyscallN(p, b.hdc); r != 0 {
			return windows.BytePtrToString((*byte)(unsafe.Pointer(r)))
		}
	}
	if r, _, _ := procGlGetString.Call(glExtensions); r != 0 {
		return windows.BytePtrToString((*byte)(unsafe.Pointer(r)))
	}
	return ""
}

func wglProc(name string) uintptr {
	p, err := windows.BytePtrFromString(name)
	if err != nil {
		return 0
	}
	addr, _, _ := procWglGetProcAddress.Call(uintptr(unsafe.Pointer(p)))
	// Some drivers return small sentinel values instead of NULL.
	switch addr {
	case 1, 2, 3, ^uintptr(0):
		return 0
	}
	return addr
}

func (b *win32Backend) negotiateSwap() {
	b.swap = negotiateSwapControl(b.extensionString(), "WGL")
	if b.swap.ext == swapNone {
		return
	}
	b.swapProc = wglProc(b.swap.ext.procName("wgl"))
	if b.swapProc == 0 {
		b.swap = swapControl{}
	}
	b.log.Debug("swap control", "extension", b.swap.ext, "tear", b.swap.tear)
}

func (b *win32Backend) reset() {
	b.hwnd, b.hdc, b.ctx = 0, 0, 0
	b.pending = nil
	b.fullscreen = false
	b.swap, b.swapProc = swapControl{}, 0
	if b.locked {
		b.locked = false
		runtime.UnlockOSThread()
	}
}

func (b *win32Backend) Destroy() {
	if b.release.len() == 0 {
		return
	}
	b.release.unwind(b.log)
	b.reset()
}

func (b *win32Backend) PollEvent(emit func(Event)) bool {
	if b.hwnd == 0 {
		return false
	}
	if len(b.pending) == 0 {
		var m msg
		if ret, _, _ := procPeekMessage.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0, pmRemove); ret == 0 {
			return false
		}
		procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
		procDispatchMessage.Call(uintptr(unsafe.Pointer(&m)))
	}
	if len(b.pending) == 0 {
		return true
	}
	batch := b.pending[0]
	b.pending = b.pending[1:]
	for _, ev := range batch {
		// A popup window reports SIZE_RESTORED while covering the screen.
		if ev.Kind == EventState && ev.State == StateNormal && b.fullscreen {
			ev.State = StateFullScreen
		}
		emit(ev)
	}
	return true
}

func (b *win32Backend) windowRect() (rect, bool) {
	var r rect
	ok, _, _ := procGetWindowRect.Call(uintptr(b.hwnd), uintptr(unsafe.Pointer(&r)))
	return r, ok != 0
}

func (b *win32Backend) Present() {
	if b.hdc != 0 {
		procSwapBuffers.Call(b.hdc)
	}
}

func (b *win32Backend) MakeCurrent() error {
	if b.ctx == 0 {
		return ErrNotCreated
	}
	if ok, _, err := procWglMakeCurrent.Call(b.hdc, b.ctx); ok == 0 {
		return winErr("wglMakeCurrent", err)
	}
	return nil
}

func (b *win32Backend) setWindowPos(x, y, width, height int, flags uintptr) error {
	ok, _, err := procSetWindowPos.Call(uintptr(b.hwnd), 0,
		uintptr(x), uintptr(y), uintptr(width), uintptr(height), flags)
	if ok == 0 {
		return winErr("SetWindowPos", err)
	}
	return nil
}

// outerSize converts a client size into the window size for style.
func outerSize(width, height int, style uintptr) (int, int) {
	r := rect{right: int32(width), bottom: int32(height)}
	procAdjustWindowRect.Call(uintptr(unsafe.Pointer(&r)), style, 0)
	return int(r.right - r.left), int(r.bottom - r.top)
}

func (b *win32Backend) setStyle(style uintptr) {
	index := int32(gwlStyle)
	procSetWindowLongPtr.Call(uintptr(b.hwnd), uintptr(index), style|wsVisible)
}

func (b *win32Backend) SetFullScreen(enable bool, restore Rect) (Rect, error) {
	if b.hwnd == 0 {
		return Rect{}, ErrNotCreated
	}
	if !enable {
		b.fullscreen = false
		b.setStyle(windowedStyle)
		w, h := outerSize(restore.Width, restore.Height, windowedStyle)
		if err := b.setWindowPos(restore.X, restore.Y, w, h, swpNoZOrder|swpFrameChanged|swpShowWindow); err != nil {
			return Rect{}, err
		}
		return restore, nil
	}

	sw, _, _ := procGetSystemMetrics.Call(smCXScreen)
	sh, _, _ := procGetSystemMetrics.Call(smCYScreen)
	b.fullscreen = true
	b.setStyle(fullScreenStyle)
	full := Rect{Width: int(int32(sw)), Height: int(int32(sh))}
	if err := b.setWindowPos(0, 0, full.Width, full.Height, swpFrameChanged|swpShowWindow); err != nil {
		b.fullscreen = false
		b.setStyle(windowedStyle)
		return Rect{}, err
	}
	return full, nil
}

func (b *win32Backend) show(cmd uintptr) error {
	if b.hwnd == 0 {
		return ErrNotCreated
	}
	procShowWindow.Call(uintptr(b.hwnd), cmd)
	return nil
}

func (b *win32Backend) SetMinimized(minimized bool) error {
	if minimized {
		return b.show(swMinimize)
	}
	return b.show(swRestore)
}

func (b *win32Backend) SetMaximized(maximized bool) error {
	if maximized {
		return b.show(swMaximize)
	}
	return b.show(swRestore)
}

func (b *win32Backend) SetFocus(focused bool) error {
	if b.hwnd == 0 {
		return ErrNotCreated
	}
	if !focused {
		procSetFocus.Call(0)
		return nil
	}
	if ok, _, err := procSetForegroundWin.Call(uintptr(b.hwnd)); ok == 0 {
		return winErr("SetForegroundWindow", err)
	}
	procSetFocus.Call(uintptr(b.hwnd))
	return nil
}

func (b *win32Backend) SetPosition(x, y int) error {
	if b.hwnd == 0 {
		return ErrNotCreated
	}
	return b.setWindowPos(x, y, 0, 0, swpNoSize|swpNoZOrder)
}

func (b *win32Backend) SetResolution(width, height int) error {
	if b.hwnd == 0 {
		return ErrNotCreated
	}
	style := uintptr(windowedStyle)
	if b.fullscreen {
		style = fullScreenStyle
	}
	w, h := outerSize(width, height, style)
	return b.setWindowPos(0, 0, w, h, swpNoMove|swpNoZOrder)
}

func (b *win32Backend) SetMousePosition(x, y int) error {
	if b.hwnd == 0 {
		return ErrNotCreated
	}
	p := point{x: int32(x), y: int32(y)}
	procClientToScreen.Call(uintptr(b.hwnd), uintptr(unsafe.Pointer(&p)))
	if ok, _, err := procSetCursorPos.Call(uintptr(p.x), uintptr(p.y)); ok == 0 {
		return winErr("SetCursorPos", err)
	}
	return nil
}

func (b *win32Backend) SetTitle(title string) error {
	if b.hwnd == 0 {
		return ErrNotCreated
	}
	p, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return err
	}
	if ok, _, err := procSetWindowText.Call(uintptr(b.hwnd), uintptr(unsafe.Pointer(p))); ok == 0 {
		return winErr("SetWindowTextW", err)
	}
	return nil
}

func (b *win32Backend) SetSwapInterval(interval int) bool {
	n, ok := b.swap.interval(interval)
	if !ok || b.swapProc == 0 {
		return false
	}
	r, _, _ := syscall.SyscallN(b.swapProc, uintptr(n))
	return r != 0
}
