package input

// Win32 virtual-key codes from <winuser.h>.
const (
	vkBack      = 0x08
	vkTab       = 0x09
	vkClear     = 0x0C
	vkReturn    = 0x0D
	vkShift     = 0x10
	vkControl   = 0x11
	vkMenu      = 0x12 // Alt key
	vkPause     = 0x13
	vkCapital   = 0x14
	vkEscape    = 0x1B
	vkSpace     = 0x20
	vkPrior     = 0x21
	vkNext      = 0x22
	vkEnd       = 0x23
	vkHome      = 0x24
	vkLeft      = 0x25
	vkUp        = 0x26
	vkRight     = 0x27
	vkDown      = 0x28
	vkPrint     = 0x2A
	vkSnapshot  = 0x2C
	vkInsert    = 0x2D
	vkDelete    = 0x2E
	vk0         = 0x30
	vkA         = 0x41
	vkLWin      = 0x5B
	vkRWin      = 0x5C
	vkNumpad0   = 0x60
	vkMultiply  = 0x6A
	vkAdd       = 0x6B
	vkSubtract  = 0x6D
	vkDecimal   = 0x6E
	vkDivide    = 0x6F
	vkF1        = 0x70
	vkNumLock   = 0x90
	vkScroll    = 0x91
	vkLShift    = 0xA0
	vkRShift    = 0xA1
	vkLControl  = 0xA2
	vkRControl  = 0xA3
	vkLMenu     = 0xA4
	vkRMenu     = 0xA5
	vkOEM1      = 0xBA // ; :
	vkOEMPlus   = 0xBB // = +
	vkOEMComma  = 0xBC
	vkOEMMinus  = 0xBD
	vkOEMPeriod = 0xBE
	vkOEM2      = 0xBF // / ?
	vkOEM3      = 0xC0 // ` ~
	vkOEM4      = 0xDB // [ {
	vkOEM5      = 0xDC // \ |
	vkOEM6      = 0xDD // ] }
	vkOEM7      = 0xDE // ' "

	// VKKeypadEnter is not a real virtual-key code. Windows reports the
	// keypad Enter key as VK_RETURN with the extended-key bit set;
	// ResolveVirtualKey rewrites it to this unassigned value.
	VKKeypadEnter = 0x0E

	scanLeftShift  = 0x2A
	scanRightShift = 0x36

	lParamExtended = 1 << 24
)

// keypadNavigation maps the codes the keypad reports with Num Lock off to
// the keypad keys. The dedicated navigation cluster sends the same codes
// with the extended-key bit set.
var keypadNavigation = map[uint32]uint32{
	vkInsert: vkNumpad0,
	vkEnd:    vkNumpad0 + 1,
	vkDown:   vkNumpad0 + 2,
	vkNext:   vkNumpad0 + 3,
	vkLeft:   vkNumpad0 + 4,
	vkClear:  vkNumpad0 + 5,
	vkRight:  vkNumpad0 + 6,
	vkHome:   vkNumpad0 + 7,
	vkUp:     vkNumpad0 + 8,
	vkPrior:  vkNumpad0 + 9,
	vkDelete: vkDecimal,
}

var virtualKeyTable = buildVirtualKeyTable()

func buildVirtualKeyTable() map[uint32]Key {
	t := map[uint32]Key{
		vkEscape:    KeyEscape,
		vkTab:       KeyTab,
		vkBack:      KeyBackspace,
		vkReturn:    KeyEnter,
		vkCapital:   KeyCapsLock,
		vkLeft:      KeyLeft,
		vkUp:        KeyUp,
		vkRight:     KeyRight,
		vkDown:      KeyDown,
		vkHome:      KeyHome,
		vkEnd:       KeyEnd,
		vkPrior:     KeyPageUp,
		vkNext:      KeyPageDown,
		vkInsert:    KeyInsert,
		vkDelete:    KeyDelete,
		vkSnapshot:  KeyPrintScreen,
		vkPrint:     KeyPrintScreen,
		vkScroll:    KeyScrollLock,
		vkPause:     KeyPause,
		vkNumLock:   KeyNumLock,
		vkLShift:    KeyLeftShift,
		vkRShift:    KeyRightShift,
		vkLControl:  KeyLeftControl,
		vkRControl:  KeyRightControl,
		vkLMenu:     KeyLeftAlt,
		vkRMenu:     KeyRightAlt,
		vkLWin:      KeyLeftSuper,
		vkRWin:      KeyRightSuper,
		vkSpace:     KeySpace,
		vkOEM1:      KeySemicolon,
		vkOEMPlus:   KeyEqual,
		vkOEMComma:  KeyComma,
		vkOEMMinus:  KeyMinus,
		vkOEMPeriod: KeyPeriod,
		vkOEM2:      KeySlash,
		vkOEM3:      KeyGraveAccent,
		vkOEM4:      KeyLeftBracket,
		vkOEM5:      KeyBackslash,
		vkOEM6:      KeyRightBracket,
		vkOEM7:      KeyApostrophe,

		vkMultiply:    KeyKeypadMultiply,
		vkAdd:         KeyKeypadAdd,
		vkSubtract:    KeyKeypadSubtract,
		vkDecimal:     KeyKeypadDecimal,
		vkDivide:      KeyKeypadDivide,
		VKKeypadEnter: KeyKeypadEnter,
	}
	for i := 0; i < 12; i++ {
		t[uint32(vkF1+i)] = KeyF1 + Key(i)
	}
	for i := 0; i < 10; i++ {
		t[uint32(vk0+i)] = Key0 + Key(i)
		t[uint32(vkNumpad0+i)] = KeyKeypad0 + Key(i)
	}
	for i := 0; i < 26; i++ {
		t[uint32(vkA+i)] = KeyA + Key(i)
	}
	return t
}

// FromVirtualKey translates a Win32 virtual-key code into a Key. The generic
// VK_SHIFT, VK_CONTROL and VK_MENU codes are not in the table; pass the
// message through ResolveVirtualKey first.
func FromVirtualKey(vk uint32) (Key, bool) {
	k, ok := virtualKeyTable[vk]
	if !ok {
		return KeyUnknown, false
	}
	return k, true
}

// ResolveVirtualKey rewrites the side-agnostic codes Windows delivers with
// WM_KEYDOWN/WM_KEYUP into side-specific ones, using the scan code (bits
// 16-23) and extended-key flag (bit 24) of lParam. Keypad keys pressed
// with Num Lock off resolve to the keypad codes.
func ResolveVirtualKey(vk uint32, lParam uintptr) uint32 {
	extended := lParam&lParamExtended != 0
	if keypad, ok := keypadNavigation[vk]; ok && !extended {
		return keypad
	}
	switch vk {
	case vkShift:
		if (lParam>>16)&0xFF == scanRightShift {
			return vkRShift
		}
		return vkLShift
	case vkControl:
		if extended {
			return vkRControl
		}
		return vkLControl
	case vkMenu:
		if extended {
			return vkRMenu
		}
		return vkLMenu
	case vkReturn:
		if extended {
			return VKKeypadEnter
		}
	}
	return vk
}
