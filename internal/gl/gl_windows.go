//go:build windows

package gl

import (
	"fmt"
	"math"
	"unsafe"

	"golang.org/x/sys/windows"
)

type openGL struct {
	clearColor *windows.LazyProc
	clear      *windows.LazyProc
	viewport   *windows.LazyProc
	readPixels *windows.LazyProc
	getString  *windows.LazyProc
}

func (gl *openGL) ClearColor(r, g, b, a float32) {
	gl.clearColor.Call(f32(r), f32(g), f32(b), f32(a))
}

func (gl *openGL) Clear(mask uint32) {
	gl.clear.Call(uintptr(mask))
}

func (gl *openGL) Viewport(x, y, width, height int32) {
	gl.viewport.Call(uintptr(x), uintptr(y), uintptr(width), uintptr(height))
}

func (gl *openGL) ReadPixels(x, y, width, height int32, format, xtype uint32, pixels unsafe.Pointer) {
	gl.readPixels.Call(
		uintptr(x), uintptr(y), uintptr(width), uintptr(height),
		uintptr(format), uintptr(xtype), uintptr(pixels),
	)
}

func (gl *openGL) GetString(name uint32) string {
	ptr, _, _ := gl.getString.Call(uintptr(name))
	if ptr == 0 {
		return ""
	}
	return windows.BytePtrToString((*byte)(unsafe.Pointer(ptr)))
}

func Load() (OpenGL, error) {
	opengl32 := windows.NewLazySystemDLL("opengl32.dll")
	if err := opengl32.Load(); err != nil {
		return nil, fmt.Errorf("load opengl32.dll: %w", err)
	}
	gl := &openGL{
		clearColor: opengl32.NewProc("glClearColor"),
		clear:      opengl32.NewProc("glClear"),
		viewport:   opengl32.NewProc("glViewport"),
		readPixels: opengl32.NewProc("glReadPixels"),
		getString:  opengl32.NewProc("glGetString"),
	}
	return gl, nil
}

func f32(v float32) uintptr {
	return uintptr(math.Float32bits(v))
}
