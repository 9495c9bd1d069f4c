package graphics

import (
	"errors"
	"image"

	"github.com/tinyrange/glwin/internal/input"
)

// ErrStop ends Run without reporting an error.
var ErrStop = errors.New("graphics: stop")

type KeyState int

const (
	// The key was pressed this frame
	KeyStatePressed KeyState = iota
	// The key is currently down
	KeyStateDown
	// The key was released this frame
	KeyStateReleased
	// The key is currently up
	KeyStateUp
)

func (ks KeyState) IsDown() bool {
	return ks == KeyStatePressed || ks == KeyStateDown
}

type ButtonState int

const (
	// The mouse button was pressed this frame
	ButtonStatePressed ButtonState = iota
	// The mouse button is currently down
	ButtonStateDown
	// The mouse button was released this frame
	ButtonStateReleased
	// The mouse button is currently up
	ButtonStateUp
)

func (bs ButtonState) IsDown() bool {
	return bs == ButtonStatePressed || bs == ButtonStateDown
}

// Color is an RGBA clear color with components in [0, 1].
type Color [4]float32

var (
	ColorBlack = Color{0, 0, 0, 1}
	ColorWhite = Color{1, 1, 1, 1}
)

// Surface is the part of a window the frame loop drives. *window.Window
// implements it.
type Surface interface {
	DrainEvents() int
	ShouldClose() bool
	MakeCurrentContext() error
	SwapBuffers()

	Resolution() (width, height int)
	MousePosition() (x, y int)
	KeyState(key input.Key) bool
	MouseButtonState(button input.Button) bool
}

type Frame interface {
	// Index counts frames from zero.
	Index() uint64

	WindowSize() (width, height int)
	CursorPos() (x, y int)

	GetKeyState(key input.Key) KeyState
	GetButtonState(button input.Button) ButtonState

	// Screenshot reads back the frame drawn so far.
	Screenshot() (image.Image, error)
}
