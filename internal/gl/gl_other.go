//go:build !linux && !windows

package gl

import (
	"errors"
	"runtime"
)

func Load() (OpenGL, error) {
	return nil, errors.New("opengl: unsupported platform " + runtime.GOOS)
}
