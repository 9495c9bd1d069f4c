package window

import "testing"

func TestNegotiateSwapControl(t *testing.T) {
	tests := []struct {
		name       string
		extensions string
		prefix     string
		want       swapControl
	}{
		{"none", "GLX_ARB_create_context GLX_EXT_visual_info", "GLX", swapControl{}},
		{"ext", "GLX_EXT_swap_control GLX_SGI_swap_control", "GLX", swapControl{ext: swapEXT}},
		{"ext tear", "GLX_EXT_swap_control_tear GLX_EXT_swap_control", "GLX", swapControl{ext: swapEXT, tear: true}},
		{"sgi before mesa", "GLX_MESA_swap_control GLX_SGI_swap_control", "GLX", swapControl{ext: swapSGI}},
		{"mesa", "GLX_MESA_swap_control", "GLX", swapControl{ext: swapMESA}},
		{"wgl", "WGL_ARB_pixel_format WGL_EXT_swap_control", "WGL", swapControl{ext: swapEXT}},
		{"prefix mismatch", "WGL_EXT_swap_control", "GLX", swapControl{}},
		// A tear extension alone does not advertise the base extension.
		{"tear only", "GLX_EXT_swap_control_tear", "GLX", swapControl{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := negotiateSwapControl(tt.extensions, tt.prefix); got != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestSwapControlInterval(t *testing.T) {
	tests := []struct {
		name   string
		c      swapControl
		in     int
		want   int
		wantOK bool
	}{
		{"none", swapControl{}, 1, 0, false},
		{"ext", swapControl{ext: swapEXT}, 2, 2, true},
		{"ext off", swapControl{ext: swapEXT}, 0, 0, true},
		{"ext adaptive without tear", swapControl{ext: swapEXT}, -1, 1, true},
		{"ext adaptive with tear", swapControl{ext: swapEXT, tear: true}, -1, -1, true},
		{"sgi cannot disable", swapControl{ext: swapSGI}, 0, 0, false},
		{"sgi", swapControl{ext: swapSGI}, 1, 1, true},
		{"mesa adaptive", swapControl{ext: swapMESA}, -2, 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.c.interval(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Fatalf("expected (%d, %v), got (%d, %v)", tt.want, tt.wantOK, got, ok)
			}
		})
	}
}

func TestSwapProcName(t *testing.T) {
	if got := swapSGI.procName("glX"); got != "glXSwapIntervalSGI" {
		t.Fatalf("unexpected proc name %q", got)
	}
	if got := swapEXT.procName("wgl"); got != "wglSwapIntervalEXT" {
		t.Fatalf("unexpected proc name %q", got)
	}
	if got := swapNone.procName("glX"); got != "" {
		t.Fatalf("expected no proc for swapNone, got %q", got)
	}
}
