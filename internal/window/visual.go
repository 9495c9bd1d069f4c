package window

// GLX attribute names from <GL/glx.h>.
const (
	glxRGBA         = 4
	glxDoubleBuffer = 5
	glxRedSize      = 8
	glxGreenSize    = 9
	glxBlueSize     = 10
	glxAlphaSize    = 11
	glxDepthSize    = 12
	glxStencilSize  = 13
	glxNone         = 0
)

// channelBits splits a color depth into per-channel sizes.
func channelBits(colorBits int) (rgb, alpha int) {
	switch {
	case colorBits >= 32:
		return 8, 8
	case colorBits >= 24:
		return 8, 0
	case colorBits >= 3:
		return colorBits / 3, 0
	default:
		return 1, 0
	}
}

// glxVisualAttribs builds the zero-terminated attribute list passed to
// glXChooseVisual. GLX treats every size as a minimum, so a visual is only
// returned if it satisfies all of them.
func glxVisualAttribs(cfg Config) []int32 {
	rgb, alpha := channelBits(cfg.ColorBits)
	attrs := []int32{
		glxRGBA,
		glxDoubleBuffer,
		glxRedSize, int32(rgb),
		glxGreenSize, int32(rgb),
		glxBlueSize, int32(rgb),
	}
	if alpha > 0 {
		attrs = append(attrs, glxAlphaSize, int32(alpha))
	}
	attrs = append(attrs,
		glxDepthSize, int32(cfg.DepthBits),
		glxStencilSize, int32(cfg.StencilBits),
		glxNone,
	)
	return attrs
}

// formatBits are the buffer sizes of a pixel format.
type formatBits struct {
	Color   int
	Depth   int
	Stencil int
}

// satisfies reports whether a format offers at least the wanted depth and
// stencil bits and at least 24 bits of color (or the wanted color depth if
// that is smaller). Alpha is not part of the Win32 color count, so 32
// wanted bits are met by 24.
func (have formatBits) satisfies(want formatBits) bool {
	color := min(want.Color, 24)
	return have.Color >= color && have.Depth >= want.Depth && have.Stencil >= want.Stencil
}
