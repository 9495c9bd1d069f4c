package window

// Config describes the window to create. Zero sizes and bit depths are
// replaced by the defaults of DefaultConfig.
type Config struct {
	// Handle is an opaque identifier assigned by whoever manages windows.
	Handle uint32

	Name        string
	Width       int
	Height      int
	ColorBits   int
	DepthBits   int
	StencilBits int
}

const (
	DefaultWidth       = 1280
	DefaultHeight      = 720
	DefaultColorBits   = 32
	DefaultDepthBits   = 8
	DefaultStencilBits = 8
)

// DefaultConfig returns the configuration used for unset fields.
func DefaultConfig(name string) Config {
	return Config{
		Name:        name,
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		ColorBits:   DefaultColorBits,
		DepthBits:   DefaultDepthBits,
		StencilBits: DefaultStencilBits,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig(c.Name)
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Height <= 0 {
		c.Height = def.Height
	}
	if c.ColorBits <= 0 {
		c.ColorBits = def.ColorBits
	}
	if c.DepthBits < 0 {
		c.DepthBits = 0
	}
	if c.StencilBits < 0 {
		c.StencilBits = 0
	}
	return c
}

// Rect is a window geometry: position in screen coordinates and client
// area size.
type Rect struct {
	X, Y          int
	Width, Height int
}

func (r Rect) clamped() Rect {
	return Rect{X: max(r.X, 0), Y: max(r.Y, 0), Width: max(r.Width, 0), Height: max(r.Height, 0)}
}

// Surface is what a backend reports after a successful Create.
type Surface struct {
	Geometry Rect
	Focused  bool
}

// Backend owns the native window, rendering context and window-system
// connection of exactly one Window. All methods must be called from the
// thread that called Create.
type Backend interface {
	// Create connects to the window system, opens a window of the requested
	// size, selects a matching pixel format and makes a new GL context
	// current. On failure every handle acquired so far is released.
	Create(cfg Config) (Surface, error)

	// Destroy releases the context, window and connection in that order.
	// Calling it more than once is harmless.
	Destroy()

	// PollEvent consumes at most one native event without blocking and
	// passes its translation to emit. It reports whether an event was
	// consumed.
	PollEvent(emit func(Event)) bool

	Present()
	MakeCurrent() error

	// SetFullScreen covers the screen, or returns the window to restore.
	// It reports the geometry the window was given.
	SetFullScreen(enable bool, restore Rect) (Rect, error)

	SetMinimized(minimized bool) error
	SetMaximized(maximized bool) error
	SetFocus(focused bool) error
	SetPosition(x, y int) error
	SetResolution(width, height int) error
	SetMousePosition(x, y int) error
	SetTitle(title string) error

	// SetSwapInterval reports whether a swap-control extension accepted the
	// interval. An unsupported interval is not an error.
	SetSwapInterval(interval int) bool
}
