//go:build !linux && !windows

package window

import "log/slog"

// unsupportedBackend fails Create; every other request is a no-op.
type unsupportedBackend struct{}

func newPlatformBackend(*slog.Logger) Backend { return unsupportedBackend{} }

func (unsupportedBackend) Create(Config) (Surface, error)         { return Surface{}, ErrUnsupported }
func (unsupportedBackend) Destroy()                               {}
func (unsupportedBackend) PollEvent(func(Event)) bool             { return false }
func (unsupportedBackend) Present()                               {}
func (unsupportedBackend) MakeCurrent() error                     { return ErrUnsupported }
func (unsupportedBackend) SetFullScreen(bool, Rect) (Rect, error) { return Rect{}, ErrUnsupported }
func (unsupportedBackend) SetMinimized(bool) error                { return ErrUnsupported }
func (unsupportedBackend) SetMaximized(bool) error                { return ErrUnsupported }
func (unsupportedBackend) SetFocus(bool) error                    { return ErrUnsupported }
func (unsupportedBackend) SetPosition(int, int) error             { return ErrUnsupported }
func (unsupportedBackend) SetResolution(int, int) error           { return ErrUnsupported }
func (unsupportedBackend) SetMousePosition(int, int) error        { return ErrUnsupported }
func (unsupportedBackend) SetTitle(string) error                  { return ErrUnsupported }
func (unsupportedBackend) SetSwapInterval(int) bool               { return false }
