package input

// X11 keysym values from <X11/keysymdef.h>. Only the unshifted column of a
// key event is looked up, so the keypad reports its navigation keysyms
// (KP_Home, KP_Insert, ...) even when Num Lock is on.
const (
	xkBackSpace   = 0xff08
	xkTab         = 0xff09
	xkReturn      = 0xff0d
	xkPause       = 0xff13
	xkScrollLock  = 0xff14
	xkEscape      = 0xff1b
	xkHome        = 0xff50
	xkLeft        = 0xff51
	xkUp          = 0xff52
	xkRight       = 0xff53
	xkDown        = 0xff54
	xkPageUp      = 0xff55
	xkPageDown    = 0xff56
	xkEnd         = 0xff57
	xkPrint       = 0xff61
	xkInsert      = 0xff63
	xkNumLock     = 0xff7f
	xkKPEnter     = 0xff8d
	xkKPHome      = 0xff95
	xkKPLeft      = 0xff96
	xkKPUp        = 0xff97
	xkKPRight     = 0xff98
	xkKPDown      = 0xff99
	xkKPPageUp    = 0xff9a
	xkKPPageDown  = 0xff9b
	xkKPEnd       = 0xff9c
	xkKPBegin     = 0xff9d
	xkKPInsert    = 0xff9e
	xkKPDelete    = 0xff9f
	xkKPMultiply  = 0xffaa
	xkKPAdd       = 0xffab
	xkKPSubtract  = 0xffad
	xkKPDecimal   = 0xffae
	xkKPDivide    = 0xffaf
	xkKP0         = 0xffb0
	xkF1          = 0xffbe
	xkShiftL      = 0xffe1
	xkShiftR      = 0xffe2
	xkControlL    = 0xffe3
	xkControlR    = 0xffe4
	xkCapsLock    = 0xffe5
	xkAltL        = 0xffe9
	xkAltR        = 0xffea
	xkSuperL      = 0xffeb
	xkSuperR      = 0xffec
	xkDelete      = 0xffff
	xkISOLeftTab  = 0xfe20
	xkISOLevel3   = 0xfe03 // AltGr on most layouts
	xkSpace       = 0x0020
	xkApostrophe  = 0x0027
	xkComma       = 0x002c
	xkMinus       = 0x002d
	xkPeriod      = 0x002e
	xkSlash       = 0x002f
	xk0           = 0x0030
	xkSemicolon   = 0x003b
	xkEqual       = 0x003d
	xkUpperA      = 0x0041
	xkBracketL    = 0x005b
	xkBackslash   = 0x005c
	xkBracketR    = 0x005d
	xkGrave       = 0x0060
	xkLowerA      = 0x0061
	keysymLetters = 26
)

var keysymTable = buildKeysymTable()

func buildKeysymTable() map[uint32]Key {
	t := map[uint32]Key{
		xkEscape:     KeyEscape,
		xkTab:        KeyTab,
		xkISOLeftTab: KeyTab,
		xkBackSpace:  KeyBackspace,
		xkReturn:     KeyEnter,
		xkCapsLock:   KeyCapsLock,
		xkLeft:       KeyLeft,
		xkUp:         KeyUp,
		xkRight:      KeyRight,
		xkDown:       KeyDown,
		xkHome:       KeyHome,
		xkEnd:        KeyEnd,
		xkPageUp:     KeyPageUp,
		xkPageDown:   KeyPageDown,
		xkInsert:     KeyInsert,
		xkDelete:     KeyDelete,
		xkPrint:      KeyPrintScreen,
		xkScrollLock: KeyScrollLock,
		xkPause:      KeyPause,
		xkNumLock:    KeyNumLock,
		xkShiftL:     KeyLeftShift,
		xkShiftR:     KeyRightShift,
		xkControlL:   KeyLeftControl,
		xkControlR:   KeyRightControl,
		xkAltL:       KeyLeftAlt,
		xkAltR:       KeyRightAlt,
		xkISOLevel3:  KeyRightAlt,
		xkSuperL:     KeyLeftSuper,
		xkSuperR:     KeyRightSuper,

		xkSpace:      KeySpace,
		xkApostrophe: KeyApostrophe,
		xkComma:      KeyComma,
		xkMinus:      KeyMinus,
		xkPeriod:     KeyPeriod,
		xkSlash:      KeySlash,
		xkSemicolon:  KeySemicolon,
		xkEqual:      KeyEqual,
		xkBracketL:   KeyLeftBracket,
		xkBackslash:  KeyBackslash,
		xkBracketR:   KeyRightBracket,
		xkGrave:      KeyGraveAccent,

		xkKPMultiply: KeyKeypadMultiply,
		xkKPAdd:      KeyKeypadAdd,
		xkKPSubtract: KeyKeypadSubtract,
		xkKPDecimal:  KeyKeypadDecimal,
		xkKPDelete:   KeyKeypadDecimal,
		xkKPDivide:   KeyKeypadDivide,
		xkKPEnter:    KeyKeypadEnter,
		xkKPInsert:   KeyKeypad0,
		xkKPEnd:      KeyKeypad1,
		xkKPDown:     KeyKeypad2,
		xkKPPageDown: KeyKeypad3,
		xkKPLeft:     KeyKeypad4,
		xkKPBegin:    KeyKeypad5,
		xkKPRight:    KeyKeypad6,
		xkKPHome:     KeyKeypad7,
		xkKPUp:       KeyKeypad8,
		xkKPPageUp:   KeyKeypad9,
	}
	for i := 0; i < 12; i++ {
		t[uint32(xkF1+i)] = KeyF1 + Key(i)
	}
	for i := 0; i < 10; i++ {
		t[uint32(xk0+i)] = Key0 + Key(i)
		t[uint32(xkKP0+i)] = KeyKeypad0 + Key(i)
	}
	for i := 0; i < keysymLetters; i++ {
		t[uint32(xkLowerA+i)] = KeyA + Key(i)
		t[uint32(xkUpperA+i)] = KeyA + Key(i)
	}
	return t
}

// FromKeysym translates an X11 keysym into a Key. Unknown keysyms report
// false and must not change any state.
func FromKeysym(keysym uint32) (Key, bool) {
	k, ok := keysymTable[keysym]
	if !ok {
		return KeyUnknown, false
	}
	return k, true
}
