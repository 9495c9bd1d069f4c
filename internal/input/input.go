package input

import "fmt"

// Key identifies a physical key independently of the host window system.
type Key int

const (
	KeyUnknown Key = iota

	// Letters
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// Numbers
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Modifier keys
	KeyLeftShift
	KeyRightShift
	KeyLeftControl
	KeyRightControl
	KeyLeftAlt
	KeyRightAlt
	KeyLeftSuper  // Windows key on Windows
	KeyRightSuper // Windows key on Windows

	// Special keys
	KeySpace
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyDelete
	KeyTab
	KeyCapsLock
	KeyScrollLock
	KeyNumLock
	KeyPrintScreen
	KeyPause

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Navigation keys
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert

	// Punctuation and symbols
	KeyGraveAccent  // `
	KeyMinus        // -
	KeyEqual        // =
	KeyLeftBracket  // [
	KeyRightBracket // ]
	KeyBackslash    // \
	KeySemicolon    // ;
	KeyApostrophe   // '
	KeyComma        // ,
	KeyPeriod       // .
	KeySlash        // /

	// Keypad keys
	KeyKeypad0
	KeyKeypad1
	KeyKeypad2
	KeyKeypad3
	KeyKeypad4
	KeyKeypad5
	KeyKeypad6
	KeyKeypad7
	KeyKeypad8
	KeyKeypad9
	KeyKeypadDecimal  // .
	KeyKeypadDivide   // /
	KeyKeypadMultiply // *
	KeyKeypadSubtract // -
	KeyKeypadAdd      // +
	KeyKeypadEnter

	// KeyLast is the size of a table indexed by Key.
	KeyLast
)

var keyNames = map[Key]string{
	KeyUnknown:        "Unknown",
	KeyF1:             "F1",
	KeyF2:             "F2",
	KeyF3:             "F3",
	KeyF4:             "F4",
	KeyF5:             "F5",
	KeyF6:             "F6",
	KeyF7:             "F7",
	KeyF8:             "F8",
	KeyF9:             "F9",
	KeyF10:            "F10",
	KeyF11:            "F11",
	KeyF12:            "F12",
	KeyLeftShift:      "LeftShift",
	KeyRightShift:     "RightShift",
	KeyLeftControl:    "LeftControl",
	KeyRightControl:   "RightControl",
	KeyLeftAlt:        "LeftAlt",
	KeyRightAlt:       "RightAlt",
	KeyLeftSuper:      "LeftSuper",
	KeyRightSuper:     "RightSuper",
	KeySpace:          "Space",
	KeyEnter:          "Enter",
	KeyEscape:         "Escape",
	KeyBackspace:      "Backspace",
	KeyDelete:         "Delete",
	KeyTab:            "Tab",
	KeyCapsLock:       "CapsLock",
	KeyScrollLock:     "ScrollLock",
	KeyNumLock:        "NumLock",
	KeyPrintScreen:    "PrintScreen",
	KeyPause:          "Pause",
	KeyUp:             "Up",
	KeyDown:           "Down",
	KeyLeft:           "Left",
	KeyRight:          "Right",
	KeyHome:           "Home",
	KeyEnd:            "End",
	KeyPageUp:         "PageUp",
	KeyPageDown:       "PageDown",
	KeyInsert:         "Insert",
	KeyGraveAccent:    "GraveAccent",
	KeyMinus:          "Minus",
	KeyEqual:          "Equal",
	KeyLeftBracket:    "LeftBracket",
	KeyRightBracket:   "RightBracket",
	KeyBackslash:      "Backslash",
	KeySemicolon:      "Semicolon",
	KeyApostrophe:     "Apostrophe",
	KeyComma:          "Comma",
	KeyPeriod:         "Period",
	KeySlash:          "Slash",
	KeyKeypadDecimal:  "KeypadDecimal",
	KeyKeypadDivide:   "KeypadDivide",
	KeyKeypadMultiply: "KeypadMultiply",
	KeyKeypadSubtract: "KeypadSubtract",
	KeyKeypadAdd:      "KeypadAdd",
	KeyKeypadEnter:    "KeypadEnter",
}

func (k Key) String() string {
	switch {
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + int(k-KeyA)))
	case k >= Key0 && k <= Key9:
		return string(rune('0' + int(k-Key0)))
	case k >= KeyKeypad0 && k <= KeyKeypad9:
		return fmt.Sprintf("Keypad%d", int(k-KeyKeypad0))
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// Valid reports whether k indexes a key table.
func (k Key) Valid() bool {
	return k > KeyUnknown && k < KeyLast
}

// Button represents a mouse button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
	Button4 // Additional mouse button (often back button)
	Button5 // Additional mouse button (often forward button)

	// ButtonLast is the size of a table indexed by Button.
	ButtonLast
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonMiddle:
		return "Middle"
	case Button4:
		return "Button4"
	case Button5:
		return "Button5"
	default:
		return fmt.Sprintf("Button(%d)", int(b))
	}
}

// Valid reports whether b indexes a button table.
func (b Button) Valid() bool {
	return b >= ButtonLeft && b < ButtonLast
}
