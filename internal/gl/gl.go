package gl

import (
	"slices"
	"strings"
	"unsafe"
)

const (
	// ColorBufferBit is a mask used with Clear to clear the color buffer.
	ColorBufferBit = 0x00004000
	// DepthBufferBit is a mask used with Clear to clear the depth buffer.
	DepthBufferBit = 0x00000100
	// StencilBufferBit is a mask used with Clear to clear the stencil buffer.
	StencilBufferBit = 0x00000400

	// RGBA is a pixel format representing red/green/blue/alpha.
	RGBA = 0x1908

	// UnsignedByte is a pixel data type indicating 8-bit unsigned values.
	UnsignedByte = 0x1401

	// GetString parameters.
	//
	// Vendor returns the company responsible for the GL implementation.
	Vendor = 0x1F00
	// Renderer names the renderer, typically the GPU.
	Renderer = 0x1F01
	// Version returns the GL version string of the current context.
	Version = 0x1F02
	// Extensions returns the space separated extension list.
	Extensions = 0x1F03
)

// OpenGL describes the subset of OpenGL entry points used by this module.
//
// All methods operate on the context current on the calling thread.
type OpenGL interface {
	// ClearColor sets the clear color used by Clear when clearing the color buffer.
	ClearColor(r, g, b, a float32)

	// Clear clears buffers to preset values (e.g., ColorBufferBit).
	Clear(mask uint32)

	// Viewport sets the affine transformation of x and y from normalized device
	// coordinates to window coordinates.
	Viewport(x, y, width, height int32)

	// ReadPixels reads a block of pixels from the framebuffer into client memory.
	ReadPixels(
		x int32,
		y int32,
		width int32,
		height int32,
		format uint32,
		xtype uint32,
		pixels unsafe.Pointer,
	)

	// GetString returns a string describing a GL property for the current context.
	//
	// If the name is not recognized or no context is current, implementations
	// return the empty string.
	GetString(name uint32) string
}

// Info identifies the implementation behind the current context.
type Info struct {
	Vendor     string
	Renderer   string
	Version    string
	Extensions []string
}

// QueryInfo reads the identification strings of the current context.
func QueryInfo(gl OpenGL) Info {
	return Info{
		Vendor:     gl.GetString(Vendor),
		Renderer:   gl.GetString(Renderer),
		Version:    gl.GetString(Version),
		Extensions: strings.Fields(gl.GetString(Extensions)),
	}
}

func (i Info) HasExtension(name string) bool {
	return slices.Contains(i.Extensions, name)
}
