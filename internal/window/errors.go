package window

import (
	"errors"
	"fmt"
)

var (
	// ErrNoDisplay is returned by Create when no connection to the host
	// window system can be established.
	ErrNoDisplay = errors.New("cannot connect to the window system")

	// ErrNoPixelFormat is returned by Create when no visual or pixel format
	// satisfies the requested color, depth and stencil bits.
	ErrNoPixelFormat = errors.New("no pixel format matches the requested bits")

	// ErrUnsupported is returned on platforms without a backend.
	ErrUnsupported = errors.New("no window backend for this platform")

	ErrAlreadyCreated = errors.New("window already created")
	ErrNotCreated     = errors.New("window not created")
)

// BackendError records a failed native call.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s failed", e.Op)
	}
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }

func opErr(op string, err error) error {
	return &BackendError{Op: op, Err: err}
}
