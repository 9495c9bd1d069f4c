//go:build linux

package gl

import (
	"fmt"
	"unsafe"

	"github.com/ebitengine/purego"
)

// The Linux loader binds the OpenGL 1.x entry points exposed by libGL.
type openGL struct {
	clearColor func(float32, float32, float32, float32)
	clear      func(uint32)
	viewport   func(int32, int32, int32, int32)
	readPixels func(int32, int32, int32, int32, uint32, uint32, unsafe.Pointer)
	getString  func(uint32) string
}

func (gl *openGL) ClearColor(r, g, b, a float32) {
	gl.clearColor(r, g, b, a)
}

func (gl *openGL) Clear(mask uint32) {
	gl.clear(mask)
}

func (gl *openGL) Viewport(x, y, width, height int32) {
	gl.viewport(x, y, width, height)
}

func (gl *openGL) ReadPixels(x, y, width, height int32, format, xtype uint32, pixels unsafe.Pointer) {
	gl.readPixels(x, y, width, height, format, xtype, pixels)
}

func (gl *openGL) GetString(name uint32) string {
	return gl.getString(name)
}

func Load() (OpenGL, error) {
	handle, err := purego.Dlopen("libGL.so.1", purego.RTLD_LAZY|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("load libGL.so.1: %w", err)
	}
	register := func(dst interface{}, name string) {
		purego.RegisterLibFunc(dst, handle, name)
	}

	gl := &openGL{}
	register(&gl.clearColor, "glClearColor")
	register(&gl.clear, "glClear")
	register(&gl.viewport, "glViewport")
	register(&gl.readPixels, "glReadPixels")
	register(&gl.getString, "glGetString")
	return gl, nil
}
