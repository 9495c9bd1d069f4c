package graphics

import (
	"errors"
	"fmt"
	"image"
	"time"
	"unsafe"

	glpkg "github.com/tinyrange/glwin/internal/gl"
	"github.com/tinyrange/glwin/internal/input"
)

// Loop renders frames into one window until it is asked to close.
type Loop struct {
	win Surface
	gl  glpkg.OpenGL

	clearEnabled bool
	clearColor   Color
	frameDelay   time.Duration

	frame       uint64
	prevKeys    [input.KeyLast]bool
	keys        [input.KeyLast]bool
	prevButtons [input.ButtonLast]bool
	buttons     [input.ButtonLast]bool
}

type glFrame struct {
	l *Loop
}

func New(win Surface, gl glpkg.OpenGL) *Loop {
	return &Loop{
		win:          win,
		gl:           gl,
		clearEnabled: true,
		clearColor:   ColorBlack,
		frameDelay:   time.Second / 120,
	}
}

// Run is New(win, gl).Run(step).
func Run(win Surface, gl glpkg.OpenGL, step func(f Frame) error) error {
	return New(win, gl).Run(step)
}

func (l *Loop) SetClear(enabled bool) {
	l.clearEnabled = enabled
}

func (l *Loop) SetClearColor(c Color) {
	l.clearColor = c
}

// SetFrameDelay sets the pause after each swap. Zero disables it.
func (l *Loop) SetFrameDelay(d time.Duration) {
	l.frameDelay = d
}

// Run calls step once per frame until the window should close or step
// returns an error. ErrStop ends the loop cleanly.
func (l *Loop) Run(step func(f Frame) error) error {
	frame := glFrame{l: l}
	for {
		l.win.DrainEvents()
		if l.win.ShouldClose() {
			return nil
		}
		if err := l.win.MakeCurrentContext(); err != nil {
			return fmt.Errorf("make context current: %w", err)
		}

		l.sampleInput()
		l.prepareFrame()

		if err := step(frame); err != nil {
			if errors.Is(err, ErrStop) {
				return nil
			}
			return err
		}

		l.win.SwapBuffers()
		l.frame++
		if l.frameDelay > 0 {
			time.Sleep(l.frameDelay)
		}
	}
}

func (l *Loop) sampleInput() {
	l.prevKeys = l.keys
	for k := range l.keys {
		l.keys[k] = l.win.KeyState(input.Key(k))
	}
	l.prevButtons = l.buttons
	for b := range l.buttons {
		l.buttons[b] = l.win.MouseButtonState(input.Button(b))
	}
}

func (l *Loop) prepareFrame() {
	w, h := l.win.Resolution()
	l.gl.Viewport(0, 0, int32(w), int32(h))

	if l.clearEnabled {
		c := l.clearColor
		l.gl.ClearColor(c[0], c[1], c[2], c[3])
		l.gl.Clear(glpkg.ColorBufferBit | glpkg.DepthBufferBit | glpkg.StencilBufferBit)
	}
}

func (f glFrame) Index() uint64 {
	return f.l.frame
}

func (f glFrame) WindowSize() (int, int) {
	return f.l.win.Resolution()
}

func (f glFrame) CursorPos() (int, int) {
	return f.l.win.MousePosition()
}

func (f glFrame) GetKeyState(key input.Key) KeyState {
	if !key.Valid() {
		return KeyStateUp
	}
	return keyState(f.l.prevKeys[key], f.l.keys[key])
}

func (f glFrame) GetButtonState(button input.Button) ButtonState {
	if !button.Valid() {
		return ButtonStateUp
	}
	return ButtonState(keyState(f.l.prevButtons[button], f.l.buttons[button]))
}

func keyState(prev, cur bool) KeyState {
	switch {
	case cur && !prev:
		return KeyStatePressed
	case cur:
		return KeyStateDown
	case prev:
		return KeyStateReleased
	default:
		return KeyStateUp
	}
}

// Screenshot implements Frame.
func (f glFrame) Screenshot() (image.Image, error) {
	bw, bh := f.l.win.Resolution()
	if bw <= 0 || bh <= 0 {
		return nil, fmt.Errorf("screenshot: empty framebuffer %dx%d", bw, bh)
	}
	rgba := image.NewRGBA(image.Rect(0, 0, bw, bh))
	f.l.gl.ReadPixels(0, 0, int32(bw), int32(bh), glpkg.RGBA, glpkg.UnsignedByte, unsafe.Pointer(&rgba.Pix[0]))

	// GL rows start at the bottom.
	flipped := image.NewRGBA(image.Rect(0, 0, bw, bh))
	for y := 0; y < bh; y++ {
		srcStart := y * rgba.Stride
		srcEnd := srcStart + rgba.Stride
		dstStart := (bh - 1 - y) * flipped.Stride
		dstEnd := dstStart + flipped.Stride
		copy(flipped.Pix[dstStart:dstEnd], rgba.Pix[srcStart:srcEnd])
	}

	return flipped, nil
}
