package window

import "strings"

type swapExtension int

const (
	swapNone swapExtension = iota
	swapEXT
	swapSGI
	swapMESA
)

func (e swapExtension) String() string {
	switch e {
	case swapEXT:
		return "EXT_swap_control"
	case swapSGI:
		return "SGI_swap_control"
	case swapMESA:
		return "MESA_swap_control"
	default:
		return "none"
	}
}

// procName is the entry point name for prefix "glX" or "wgl".
func (e swapExtension) procName(prefix string) string {
	switch e {
	case swapEXT:
		return prefix + "SwapIntervalEXT"
	case swapSGI:
		return prefix + "SwapIntervalSGI"
	case swapMESA:
		return prefix + "SwapIntervalMESA"
	default:
		return ""
	}
}

// swapControl is the vsync capability advertised by one context.
type swapControl struct {
	ext  swapExtension
	tear bool // adaptive vsync, requested with a negative interval
}

func hasExtension(extensions, name string) bool {
	for _, e := range strings.Fields(extensions) {
		if e == name {
			return true
		}
	}
	return false
}

// negotiateSwapControl picks the first advertised extension among the
// generic EXT and the SGI and MESA vendor variants. prefix is "GLX" or
// "WGL".
func negotiateSwapControl(extensions, prefix string) swapControl {
	var c swapControl
	switch {
	case hasExtension(extensions, prefix+"_EXT_swap_control"):
		c.ext = swapEXT
		c.tear = hasExtension(extensions, prefix+"_EXT_swap_control_tear")
	case hasExtension(extensions, prefix+"_SGI_swap_control"):
		c.ext = swapSGI
	case hasExtension(extensions, prefix+"_MESA_swap_control"):
		c.ext = swapMESA
	}
	return c
}

// interval maps a requested interval onto what the extension accepts. It
// reports false when the request cannot be expressed, which callers treat
// as a no-op.
func (c swapControl) interval(n int) (int, bool) {
	if n < 0 && !(c.ext == swapEXT && c.tear) {
		n = -n
	}
	switch c.ext {
	case swapEXT:
		return n, true
	case swapSGI:
		// SGI cannot turn vsync off.
		if n == 0 {
			return 0, false
		}
		return n, true
	case swapMESA:
		return n, true
	default:
		return 0, false
	}
}
