package window

import (
	"testing"

	"github.com/tinyrange/glwin/internal/input"
)

func collectMessage(msg uint32, wParam, lParam uintptr) []Event {
	var out []Event
	translateMessage(msg, wParam, lParam, func(e Event) { out = append(out, e) })
	return out
}

func TestWin32_SizeReportsStateFirst(t *testing.T) {
	got := collectMessage(wmSize, sizeMaximized, makeLParam(1900, 1000))
	if len(got) != 2 || got[0].Kind != EventState || got[0].State != StateMaximized {
		t.Fatalf("expected state before resize, got %+v", got)
	}
	if got[1].Kind != EventResize || got[1].Width != 1900 || got[1].Height != 1000 {
		t.Fatalf("unexpected resize %+v", got[1])
	}

	got = collectMessage(wmSize, sizeMinimized, 0)
	if len(got) != 1 || got[0].State != StateMinimized {
		t.Fatalf("expected minimize without resize, got %+v", got)
	}

	got = collectMessage(wmSize, sizeRestored, makeLParam(800, 600))
	if len(got) != 2 || got[0].State != StateNormal {
		t.Fatalf("expected restore, got %+v", got)
	}
}

func TestWin32_MoveIsSigned(t *testing.T) {
	got := collectMessage(wmMove, 0, makeLParam(-8, 20))
	if len(got) != 1 || got[0].X != -8 || got[0].Y != 20 {
		t.Fatalf("expected signed move, got %+v", got)
	}
}

func TestWin32_Keys(t *testing.T) {
	tests := []struct {
		name    string
		msg     uint32
		vk      uintptr
		lParam  uintptr
		want    input.Key
		pressed bool
		dropped bool
	}{
		{"letter", wmKeyDown, 'A', 1, input.KeyA, true, false},
		{"repeat", wmKeyDown, 'A', 1 | keyRepeatBit, 0, false, true},
		{"release keeps repeat bit", wmKeyUp, 'A', 1 | 3<<30, input.KeyA, false, false},
		{"right shift", wmKeyDown, 0x10, 0x36 << 16, input.KeyRightShift, true, false},
		{"right control", wmKeyDown, 0x11, 1 << 24, input.KeyRightControl, true, false},
		{"system key", wmSysKeyDown, 0x12, 0, input.KeyLeftAlt, true, false},
		{"keypad subtract", wmKeyUp, 0x6D, 0, input.KeyKeypadSubtract, false, false},
		{"unknown", wmKeyDown, 0xFF, 0, 0, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collectMessage(tt.msg, tt.vk, tt.lParam)
			if tt.dropped {
				if len(got) != 0 {
					t.Fatalf("expected nothing, got %+v", got)
				}
				return
			}
			if len(got) != 1 || got[0].Key != tt.want || got[0].Pressed != tt.pressed {
				t.Fatalf("expected %v pressed=%v, got %+v", tt.want, tt.pressed, got)
			}
		})
	}
}

func TestWin32_MouseButtons(t *testing.T) {
	tests := []struct {
		msg     uint32
		wParam  uintptr
		want    input.Button
		pressed bool
	}{
		{wmLButtonDown, 0, input.ButtonLeft, true},
		{wmRButtonUp, 0, input.ButtonRight, false},
		{wmMButtonDown, 0, input.ButtonMiddle, true},
		{wmXButtonDown, 1 << 16, input.Button4, true},
		{wmXButtonUp, 2 << 16, input.Button5, false},
	}
	for _, tt := range tests {
		got := collectMessage(tt.msg, tt.wParam, 0)
		if len(got) != 1 || got[0].Button != tt.want || got[0].Pressed != tt.pressed {
			t.Fatalf("message %#x: expected %v pressed=%v, got %+v", tt.msg, tt.want, tt.pressed, got)
		}
	}
	if got := collectMessage(wmXButtonDown, 3<<16, 0); len(got) != 0 {
		t.Fatalf("expected unknown extra button to be ignored, got %+v", got)
	}
}

func TestWin32_Wheel(t *testing.T) {
	got := collectMessage(wmMouseWheel, uintptr(wheelDelta*2)<<16, 0)
	if len(got) != 1 || got[0].Wheel != 2 {
		t.Fatalf("expected two notches up, got %+v", got)
	}
	got = collectMessage(wmMouseWheel, uintptr(uint16(0xFFC4))<<16, 0)
	if len(got) != 1 || got[0].Wheel != -0.5 {
		t.Fatalf("expected half a notch down, got %+v", got)
	}
}

func TestWin32_FocusAndClose(t *testing.T) {
	if got := collectMessage(wmSetFocus, 0, 0); len(got) != 1 || !got[0].Focused {
		t.Fatalf("expected focus, got %+v", got)
	}
	if got := collectMessage(wmKillFocus, 0, 0); len(got) != 1 || got[0].Focused {
		t.Fatalf("expected focus lost, got %+v", got)
	}
	if got := collectMessage(wmClose, 0, 0); len(got) != 1 || got[0].Kind != EventClose {
		t.Fatalf("expected close, got %+v", got)
	}
	if got := collectMessage(0x0400, 0, 0); len(got) != 0 {
		t.Fatalf("expected unknown message to be ignored, got %+v", got)
	}
}
