package input

import (
	"strconv"
	"testing"
)

// extendedKey is the extended-key bit Windows sets for the navigation cluster.
const extendedKey = 1 << 24

// Each row names the same physical key on both host systems.
var sharedKeys = []struct {
	name   string
	keysym uint32
	vk     uint32
	lParam uintptr
	want   Key
}{
	{"escape", 0xff1b, 0x1B, 0, KeyEscape},
	{"f1", 0xffbe, 0x70, 0, KeyF1},
	{"f6", 0xffc3, 0x75, 0, KeyF6},
	{"f12", 0xffc9, 0x7B, 0, KeyF12},
	{"tab", 0xff09, 0x09, 0, KeyTab},
	{"backspace", 0xff08, 0x08, 0, KeyBackspace},
	{"enter", 0xff0d, 0x0D, 0, KeyEnter},
	{"caps lock", 0xffe5, 0x14, 0, KeyCapsLock},
	{"left", 0xff51, 0x25, extendedKey, KeyLeft},
	{"up", 0xff52, 0x26, extendedKey, KeyUp},
	{"right", 0xff53, 0x27, extendedKey, KeyRight},
	{"down", 0xff54, 0x28, extendedKey, KeyDown},
	{"home", 0xff50, 0x24, extendedKey, KeyHome},
	{"end", 0xff57, 0x23, extendedKey, KeyEnd},
	{"page up", 0xff55, 0x21, extendedKey, KeyPageUp},
	{"page down", 0xff56, 0x22, extendedKey, KeyPageDown},
	{"insert", 0xff63, 0x2D, extendedKey, KeyInsert},
	{"delete", 0xffff, 0x2E, extendedKey, KeyDelete},
	{"print screen", 0xff61, 0x2C, 0, KeyPrintScreen},
	{"scroll lock", 0xff14, 0x91, 0, KeyScrollLock},
	{"pause", 0xff13, 0x13, 0, KeyPause},
	{"num lock", 0xff7f, 0x90, 0, KeyNumLock},
	{"left shift", 0xffe1, 0xA0, 0, KeyLeftShift},
	{"right shift", 0xffe2, 0xA1, 0, KeyRightShift},
	{"left control", 0xffe3, 0xA2, 0, KeyLeftControl},
	{"right control", 0xffe4, 0xA3, 0, KeyRightControl},
	{"left alt", 0xffe9, 0xA4, 0, KeyLeftAlt},
	{"right alt", 0xffea, 0xA5, 0, KeyRightAlt},
	{"keypad 0", 0xffb0, 0x60, 0, KeyKeypad0},
	{"keypad 5", 0xffb5, 0x65, 0, KeyKeypad5},
	{"keypad 9", 0xffb9, 0x69, 0, KeyKeypad9},
	{"keypad add", 0xffab, 0x6B, 0, KeyKeypadAdd},
	{"keypad subtract", 0xffad, 0x6D, 0, KeyKeypadSubtract},
	{"keypad multiply", 0xffaa, 0x6A, 0, KeyKeypadMultiply},
	{"keypad divide", 0xffaf, 0x6F, 0, KeyKeypadDivide},
	{"keypad decimal", 0xffae, 0x6E, 0, KeyKeypadDecimal},
	{"a", 0x61, 0x41, 0, KeyA},
	{"z", 0x7a, 0x5A, 0, KeyZ},
	{"7", 0x37, 0x37, 0, Key7},
	{"space", 0x20, 0x20, 0, KeySpace},
	{"left super", 0xffeb, 0x5B, 0, KeyLeftSuper},
	{"keypad home", 0xff95, 0x24, 0, KeyKeypad7},
	{"keypad left", 0xff96, 0x25, 0, KeyKeypad4},
	{"keypad up", 0xff97, 0x26, 0, KeyKeypad8},
	{"keypad right", 0xff98, 0x27, 0, KeyKeypad6},
	{"keypad down", 0xff99, 0x28, 0, KeyKeypad2},
	{"keypad page up", 0xff9a, 0x21, 0, KeyKeypad9},
	{"keypad page down", 0xff9b, 0x22, 0, KeyKeypad3},
	{"keypad end", 0xff9c, 0x23, 0, KeyKeypad1},
	{"keypad begin", 0xff9d, 0x0C, 0, KeyKeypad5},
	{"keypad insert", 0xff9e, 0x2D, 0, KeyKeypad0},
	{"keypad delete", 0xff9f, 0x2E, 0, KeyKeypadDecimal},
}

func TestTablesAgreeAcrossBackends(t *testing.T) {
	for _, tc := range sharedKeys {
		t.Run(tc.name, func(t *testing.T) {
			x, ok := FromKeysym(tc.keysym)
			if !ok || x != tc.want {
				t.Fatalf("FromKeysym(%#x) = %v, %v; want %v", tc.keysym, x, ok, tc.want)
			}
			w, ok := FromVirtualKey(ResolveVirtualKey(tc.vk, tc.lParam))
			if !ok || w != tc.want {
				t.Fatalf("FromVirtualKey(%#x, lParam %#x) = %v, %v; want %v", tc.vk, tc.lParam, w, ok, tc.want)
			}
		})
	}
}

func TestTranslationIsDeterministic(t *testing.T) {
	for keysym := range keysymTable {
		first, _ := FromKeysym(keysym)
		for i := 0; i < 3; i++ {
			if again, _ := FromKeysym(keysym); again != first {
				t.Fatalf("FromKeysym(%#x) changed from %v to %v", keysym, first, again)
			}
		}
	}
	for vk := range virtualKeyTable {
		first, _ := FromVirtualKey(vk)
		for i := 0; i < 3; i++ {
			if again, _ := FromVirtualKey(vk); again != first {
				t.Fatalf("FromVirtualKey(%#x) changed from %v to %v", vk, first, again)
			}
		}
	}
}

// Keypad subtract once aliased keypad divide on the Win32 side. Both
// backends now report it as its own key.
func TestKeypadSubtractIsNotDivide(t *testing.T) {
	if k, _ := FromVirtualKey(0x6D); k != KeyKeypadSubtract {
		t.Fatalf("VK_SUBTRACT = %v, want %v", k, KeyKeypadSubtract)
	}
	if k, _ := FromKeysym(0xffad); k != KeyKeypadSubtract {
		t.Fatalf("XK_KP_Subtract = %v, want %v", k, KeyKeypadSubtract)
	}
	if k, _ := FromVirtualKey(0x6F); k != KeyKeypadDivide {
		t.Fatalf("VK_DIVIDE = %v, want %v", k, KeyKeypadDivide)
	}
}

func TestUnknownCodes(t *testing.T) {
	for _, keysym := range []uint32{0, 0x1008ff11, 0xfe50} {
		if k, ok := FromKeysym(keysym); ok || k != KeyUnknown {
			t.Fatalf("FromKeysym(%#x) = %v, %v; want unknown", keysym, k, ok)
		}
	}
	for _, vk := range []uint32{0, 0x10, 0x11, 0x12, 0xFF, 0x1000} {
		if k, ok := FromVirtualKey(vk); ok || k != KeyUnknown {
			t.Fatalf("FromVirtualKey(%#x) = %v, %v; want unknown", vk, k, ok)
		}
	}
}

func TestKeypadNavigationKeysyms(t *testing.T) {
	// With Num Lock off the unshifted column reports navigation keysyms.
	cases := map[uint32]Key{
		0xff9e: KeyKeypad0,
		0xff9c: KeyKeypad1,
		0xff9d: KeyKeypad5,
		0xff9a: KeyKeypad9,
		0xff9f: KeyKeypadDecimal,
	}
	for keysym, want := range cases {
		if got, ok := FromKeysym(keysym); !ok || got != want {
			t.Fatalf("FromKeysym(%#x) = %v, want %v", keysym, got, want)
		}
	}
}

func TestResolveVirtualKey(t *testing.T) {
	cases := []struct {
		name   string
		vk     uint32
		lParam uintptr
		want   Key
	}{
		{"left shift", 0x10, 0x2A << 16, KeyLeftShift},
		{"right shift", 0x10, 0x36 << 16, KeyRightShift},
		{"left control", 0x11, 0x1D << 16, KeyLeftControl},
		{"right control", 0x11, 0x1D<<16 | 1<<24, KeyRightControl},
		{"left alt", 0x12, 0x38 << 16, KeyLeftAlt},
		{"right alt", 0x12, 0x38<<16 | 1<<24, KeyRightAlt},
		{"enter", 0x0D, 0x1C << 16, KeyEnter},
		{"keypad enter", 0x0D, 0x1C<<16 | 1<<24, KeyKeypadEnter},
		{"plain letter", 0x41, 0x1E << 16, KeyA},
		{"home", 0x24, 0x47<<16 | extendedKey, KeyHome},
		{"keypad home", 0x24, 0x47 << 16, KeyKeypad7},
		{"delete", 0x2E, 0x53<<16 | extendedKey, KeyDelete},
		{"keypad delete", 0x2E, 0x53 << 16, KeyKeypadDecimal},
		{"keypad clear", 0x0C, 0x4C << 16, KeyKeypad5},
		{"keypad with num lock", 0x67, 0x47 << 16, KeyKeypad7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := FromVirtualKey(ResolveVirtualKey(tc.vk, tc.lParam))
			if !ok || got != tc.want {
				t.Fatalf("got %v, %v; want %v", got, ok, tc.want)
			}
		})
	}
}

func TestKeyString(t *testing.T) {
	cases := map[Key]string{
		KeyA:              "A",
		Key3:              "3",
		KeyKeypad4:        "Keypad4",
		KeyKeypadSubtract: "KeypadSubtract",
		KeyF11:            "F11",
		KeyLast:           "Key(" + strconv.Itoa(int(KeyLast)) + ")",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Fatalf("%d.String() = %q, want %q", int(k), got, want)
		}
	}
}

func TestEveryTableEntryIsValid(t *testing.T) {
	for code, k := range keysymTable {
		if !k.Valid() {
			t.Fatalf("keysym %#x maps to invalid key %d", code, int(k))
		}
	}
	for code, k := range virtualKeyTable {
		if !k.Valid() {
			t.Fatalf("vk %#x maps to invalid key %d", code, int(k))
		}
	}
}
