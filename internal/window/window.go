package window

import (
	"fmt"
	"log/slog"

	"github.com/tinyrange/glwin/internal/input"
)

// Window is one native window with its GL context. It is not safe for
// concurrent use; every method must be called from the thread that called
// Create.
type Window struct {
	cfg     Config
	backend Backend
	log     *slog.Logger
	created bool

	machine *StateMachine

	keys    [input.KeyLast]bool
	buttons [input.ButtonLast]bool

	width, height  int
	x, y           int
	mouseX, mouseY int

	shouldClose  bool
	swapInterval int

	// polling is set while one native event is dispatched; fired records
	// that it already ran a callback.
	polling bool
	fired   bool

	cb callbacks
}

// New returns a window using the backend of the current platform. Nothing
// native happens until Create.
func New(cfg Config) *Window {
	log := slog.Default().With("window", cfg.Name)
	return newWindow(cfg, newPlatformBackend(log), log)
}

// NewWithBackend returns a window driven by b.
func NewWithBackend(cfg Config, b Backend) *Window {
	return newWindow(cfg, b, slog.Default().With("window", cfg.Name))
}

func newWindow(cfg Config, b Backend, log *slog.Logger) *Window {
	cfg = cfg.withDefaults()
	return &Window{
		cfg:     cfg,
		backend: b,
		log:     log,
		machine: NewStateMachine(Rect{Width: cfg.Width, Height: cfg.Height}, false),
		width:   cfg.Width,
		height:  cfg.Height,
	}
}

// SetLogger replaces the logger used for setter and teardown failures.
func (w *Window) SetLogger(log *slog.Logger) {
	if log != nil {
		w.log = log
	}
}

// Create opens the native window and makes its context current. A window
// that was destroyed may be created again; doing so clears the close
// request and the input tables.
func (w *Window) Create() error {
	if w.created {
		return ErrAlreadyCreated
	}

	surface, err := w.backend.Create(w.cfg.withDefaults())
	if err != nil {
		return fmt.Errorf("create window %q: %w", w.cfg.Name, err)
	}

	geom := surface.Geometry.clamped()
	w.created = true
	w.shouldClose = false
	w.keys = [input.KeyLast]bool{}
	w.buttons = [input.ButtonLast]bool{}
	w.mouseX, w.mouseY = 0, 0
	w.x, w.y = geom.X, geom.Y
	w.width, w.height = geom.Width, geom.Height
	w.machine = NewStateMachine(geom, surface.Focused)

	if w.swapInterval != 0 {
		w.backend.SetSwapInterval(w.swapInterval)
	}

	w.log.Debug("window created", "width", w.width, "height", w.height)
	return nil
}

// Destroy releases every native resource. Calling it again, or on a
// window that was never created, does nothing.
func (w *Window) Destroy() {
	if !w.created {
		return
	}
	w.created = false
	w.backend.Destroy()
	w.log.Debug("window destroyed")
}

// PollEvents handles at most one pending native event and reports whether
// one was handled. It never blocks. A native event runs at most one
// callback: when it changes several things at once, such as size and
// position, every change is applied but only the first one is reported.
func (w *Window) PollEvents() bool {
	if !w.created {
		return false
	}
	w.polling, w.fired = true, false
	defer func() { w.polling, w.fired = false, false }()
	return w.backend.PollEvent(w.handle)
}

// notify runs fn unless the native event being dispatched already ran a
// callback. Setters called from inside fn report normally.
func (w *Window) notify(fn func()) {
	if !w.polling {
		fn()
		return
	}
	if w.fired {
		return
	}
	w.fired = true
	w.polling = false
	defer func() { w.polling = true }()
	fn()
}

// DrainEvents handles pending events until the queue is empty and returns
// how many were consumed.
func (w *Window) DrainEvents() int {
	n := 0
	for w.PollEvents() {
		n++
	}
	return n
}

func (w *Window) handle(ev Event) {
	switch ev.Kind {
	case EventKey:
		if !ev.Key.Valid() || w.keys[ev.Key] == ev.Pressed {
			return
		}
		w.keys[ev.Key] = ev.Pressed
		if w.cb.key != nil {
			w.notify(func() { w.cb.key(ev.Key, ev.Pressed) })
		}

	case EventMouseButton:
		if !ev.Button.Valid() || w.buttons[ev.Button] == ev.Pressed {
			return
		}
		w.buttons[ev.Button] = ev.Pressed
		if w.cb.mouseButton != nil {
			w.notify(func() { w.cb.mouseButton(ev.Button, ev.Pressed) })
		}

	case EventMouseWheel:
		if w.cb.mouseWheel != nil {
			w.notify(func() { w.cb.mouseWheel(ev.Wheel) })
		}

	case EventMouseMove:
		w.mouseX, w.mouseY = ev.X, ev.Y
		if w.cb.mouseMove != nil {
			w.notify(func() { w.cb.mouseMove(ev.X, ev.Y) })
		}

	case EventResize:
		width, height := max(ev.Width, 0), max(ev.Height, 0)
		if width == w.width && height == w.height {
			return
		}
		w.width, w.height = width, height
		w.track()
		if w.cb.resize != nil {
			w.notify(func() { w.cb.resize(width, height) })
		}

	case EventMove:
		x, y := max(ev.X, 0), max(ev.Y, 0)
		if x == w.x && y == w.y {
			return
		}
		w.x, w.y = x, y
		w.track()
		if w.cb.move != nil {
			w.notify(func() { w.cb.move(x, y) })
		}

	case EventFocus:
		w.setFocused(ev.Focused)

	case EventState:
		w.transition(w.machine.Observe(ev.State))

	case EventClose:
		if w.shouldClose {
			return
		}
		w.shouldClose = true
		if w.cb.destroy != nil {
			w.notify(w.cb.destroy)
		}
	}
}

func (w *Window) track() {
	w.machine.Track(Rect{X: w.x, Y: w.y, Width: w.width, Height: w.height})
}

func (w *Window) setFocused(focused bool) {
	if w.machine.SetFocused(focused) && w.cb.focus != nil {
		w.notify(func() { w.cb.focus(focused) })
	}
}

// transition fires the callbacks for entering a new state.
func (w *Window) transition(t Transition) {
	if !t.Changed() {
		return
	}
	w.log.Debug("window state", "from", t.From, "to", t.To)
	switch t.To {
	case StateMinimized:
		if w.cb.minimize != nil {
			w.notify(w.cb.minimize)
		}
	case StateMaximized:
		if w.cb.maximize != nil {
			w.notify(w.cb.maximize)
		}
	}
}

// warn logs a failed native request. The window state still reflects the
// request.
func (w *Window) warn(op string, err error) {
	if err != nil {
		w.log.Warn("window request failed", "op", op, "err", err)
	}
}

// ShouldClose reports whether the user or the system asked the window to
// close. Once true it stays true until the window is created again.
func (w *Window) ShouldClose() bool { return w.shouldClose }

// KeyState reports whether key is held down.
func (w *Window) KeyState(key input.Key) bool {
	return key.Valid() && w.keys[key]
}

// MouseButtonState reports whether button is held down.
func (w *Window) MouseButtonState(button input.Button) bool {
	return button.Valid() && w.buttons[button]
}

func (w *Window) Resolution() (width, height int) { return w.width, w.height }

// SetResolution resizes the client area. Negative sizes are clamped to 0.
func (w *Window) SetResolution(width, height int) {
	w.width, w.height = max(width, 0), max(height, 0)
	w.track()
	if !w.created {
		w.cfg.Width, w.cfg.Height = w.width, w.height
		return
	}
	w.warn("set resolution", w.backend.SetResolution(w.width, w.height))
}

func (w *Window) Position() (x, y int) { return w.x, w.y }

// SetPosition moves the window. Negative coordinates are clamped to 0.
func (w *Window) SetPosition(x, y int) {
	w.x, w.y = max(x, 0), max(y, 0)
	w.track()
	if w.created {
		w.warn("set position", w.backend.SetPosition(w.x, w.y))
	}
}

// MousePosition is the last pointer position in window coordinates.
func (w *Window) MousePosition() (x, y int) { return w.mouseX, w.mouseY }

// SetMousePosition warps the pointer to window coordinates x, y.
func (w *Window) SetMousePosition(x, y int) {
	w.mouseX, w.mouseY = x, y
	if w.created {
		w.warn("set mouse position", w.backend.SetMousePosition(x, y))
	}
}

// FullScreen covers the screen with the window, or returns it to the
// geometry it had before. A maximized or minimized window is returned to
// normal on the host first.
func (w *Window) FullScreen(enable bool) {
	if enable == (w.machine.State() == StateFullScreen) {
		return
	}

	var (
		target Rect
		t      Transition
	)
	if enable {
		w.unwindHostState()
		target, t = w.machine.EnterFullScreen()
	} else {
		target, t = w.machine.ExitFullScreen()
	}

	if w.created {
		got, err := w.backend.SetFullScreen(enable, target)
		w.warn("set fullscreen", err)
		if err == nil {
			target = got
		}
	}
	w.x, w.y = target.X, target.Y
	w.width, w.height = target.Width, target.Height
	w.transition(t)
}

// unwindHostState undoes a host maximize or minimize the window is about
// to leave.
func (w *Window) unwindHostState() {
	if !w.created {
		return
	}
	switch w.machine.State() {
	case StateMaximized:
		w.warn("maximize", w.backend.SetMaximized(false))
	case StateMinimized:
		w.warn("minimize", w.backend.SetMinimized(false))
		if w.machine.MinimizedFrom() == StateMaximized {
			w.warn("maximize", w.backend.SetMaximized(false))
		}
	}
}

func (w *Window) IsFullScreen() bool { return w.machine.State() == StateFullScreen }

// Minimize iconifies the window, or brings it back from the taskbar.
func (w *Window) Minimize(enable bool) {
	if enable && w.machine.State() == StateFullScreen {
		w.FullScreen(false)
	}
	t := w.machine.Minimize(enable)
	if !t.Changed() {
		return
	}
	if w.created {
		w.warn("minimize", w.backend.SetMinimized(enable))
	}
	w.transition(t)
}

func (w *Window) IsMinimized() bool { return w.machine.State() == StateMinimized }

// Maximize fills the work area with the window, or undoes it.
func (w *Window) Maximize(enable bool) {
	if enable && w.machine.State() == StateFullScreen {
		w.FullScreen(false)
	}
	t := w.machine.Maximize(enable)
	if !t.Changed() {
		return
	}
	if w.created {
		w.warn("maximize", w.backend.SetMaximized(enable))
	}
	w.transition(t)
}

func (w *Window) IsMaximized() bool { return w.machine.State() == StateMaximized }

// Restore returns the window to StateNormal from any state.
func (w *Window) Restore() {
	switch w.machine.State() {
	case StateFullScreen:
		w.FullScreen(false)
	case StateMinimized:
		from := w.machine.MinimizedFrom()
		w.Minimize(false)
		if !w.created {
			return
		}
		// The host brings a window back to the state it was minimized from.
		switch from {
		case StateMaximized:
			w.warn("maximize", w.backend.SetMaximized(false))
		case StateFullScreen:
			got, err := w.backend.SetFullScreen(false, w.machine.NormalGeometry())
			w.warn("set fullscreen", err)
			if err == nil {
				w.x, w.y = got.X, got.Y
				w.width, w.height = got.Width, got.Height
			}
		}
	case StateMaximized:
		w.Maximize(false)
	}
}

// State is the current lifecycle state.
func (w *Window) State() State { return w.machine.State() }

// Focus gives the window keyboard focus, or gives it up.
func (w *Window) Focus(enable bool) {
	if w.created {
		w.warn("focus", w.backend.SetFocus(enable))
	}
	w.setFocused(enable)
}

func (w *Window) IsFocused() bool { return w.machine.Focused() }

// SetSwapInterval sets how many refreshes a swap waits for. -1 asks for
// adaptive vsync. Platforms without swap control ignore the request.
func (w *Window) SetSwapInterval(interval int) {
	w.swapInterval = interval
	if w.created && !w.backend.SetSwapInterval(interval) {
		w.log.Debug("swap interval not applied", "interval", interval)
	}
}

// SwapInterval is the last requested swap interval.
func (w *Window) SwapInterval() int { return w.swapInterval }

// MakeCurrentContext binds the window's GL context to the calling thread.
func (w *Window) MakeCurrentContext() error {
	if !w.created {
		return ErrNotCreated
	}
	return w.backend.MakeCurrent()
}

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() {
	if w.created {
		w.backend.Present()
	}
}

// SetTitle changes the text of the title bar.
func (w *Window) SetTitle(title string) {
	w.cfg.Name = title
	if w.created {
		w.warn("set title", w.backend.SetTitle(title))
	}
}

func (w *Window) Name() string { return w.cfg.Name }

func (w *Window) Handle() uint32 { return w.cfg.Handle }

// Config is the creation configuration after defaults were applied.
func (w *Window) Config() Config { return w.cfg }

func (w *Window) OnKey(fn KeyFunc)                 { w.cb.key = fn }
func (w *Window) OnMouseButton(fn MouseButtonFunc) { w.cb.mouseButton = fn }
func (w *Window) OnMouseWheel(fn MouseWheelFunc)   { w.cb.mouseWheel = fn }
func (w *Window) OnMouseMove(fn MouseMoveFunc)     { w.cb.mouseMove = fn }
func (w *Window) OnResize(fn ResizeFunc)           { w.cb.resize = fn }
func (w *Window) OnMove(fn MoveFunc)               { w.cb.move = fn }
func (w *Window) OnFocus(fn FocusFunc)             { w.cb.focus = fn }
func (w *Window) OnMinimize(fn MinimizeFunc)       { w.cb.minimize = fn }
func (w *Window) OnMaximize(fn MaximizeFunc)       { w.cb.maximize = fn }

// OnDestroy registers fn to run when the host window system asks the window
// to close.
func (w *Window) OnDestroy(fn DestroyFunc) { w.cb.destroy = fn }
