package window

import "fmt"

// State is the presentation mode of a window. Exactly one State holds at a
// time; focus is tracked separately.
type State uint8

const (
	StateNormal State = iota
	StateMinimized
	StateMaximized
	StateFullScreen
)

func (s State) String() string {
	switch s {
	case StateNormal:
		return "Normal"
	case StateMinimized:
		return "Minimized"
	case StateMaximized:
		return "Maximized"
	case StateFullScreen:
		return "FullScreen"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Transition is the result of applying a request to a StateMachine.
type Transition struct {
	From, To State
}

func (t Transition) Changed() bool { return t.From != t.To }

// StateMachine tracks the lifecycle state and focus of one window, plus the
// geometry the window had while last in StateNormal. That geometry is what
// leaving fullscreen restores, whichever backend is in use.
type StateMachine struct {
	state   State
	focused bool

	// minimizedFrom is the state that held when StateMinimized was entered.
	minimizedFrom State

	normal Rect
	saved  Rect
}

func NewStateMachine(geometry Rect, focused bool) *StateMachine {
	return &StateMachine{
		state:   StateNormal,
		focused: focused,
		normal:  geometry.clamped(),
	}
}

func (m *StateMachine) State() State { return m.state }

func (m *StateMachine) Focused() bool { return m.focused }

// NormalGeometry is the last geometry tracked in StateNormal.
func (m *StateMachine) NormalGeometry() Rect { return m.normal }

// MinimizedFrom is the state the window was in before it was minimized.
// Outside StateMinimized it is the current state.
func (m *StateMachine) MinimizedFrom() State {
	if m.state != StateMinimized {
		return m.state
	}
	return m.minimizedFrom
}

func (m *StateMachine) set(to State) Transition {
	t := Transition{From: m.state, To: to}
	if to == StateMinimized && m.state != StateMinimized {
		m.minimizedFrom = m.state
	}
	m.state = to
	return t
}

// Track records geometry observed or requested while the window is in
// StateNormal. Geometry seen in any other state is ignored.
func (m *StateMachine) Track(geometry Rect) {
	if m.state == StateNormal {
		m.normal = geometry.clamped()
	}
}

// Minimize enters StateMinimized, or returns from it to StateNormal.
func (m *StateMachine) Minimize(on bool) Transition {
	if on {
		return m.set(StateMinimized)
	}
	if m.state == StateMinimized {
		return m.set(StateNormal)
	}
	return Transition{From: m.state, To: m.state}
}

// Maximize enters StateMaximized, or returns from it to StateNormal.
func (m *StateMachine) Maximize(on bool) Transition {
	if on {
		return m.set(StateMaximized)
	}
	if m.state == StateMaximized {
		return m.set(StateNormal)
	}
	return Transition{From: m.state, To: m.state}
}

// EnterFullScreen records the normal geometry and returns it. Entering
// from StateMaximized records the pre-maximize geometry.
func (m *StateMachine) EnterFullScreen() (Rect, Transition) {
	if m.state != StateFullScreen {
		m.saved = m.normal
	}
	return m.saved, m.set(StateFullScreen)
}

// ExitFullScreen returns to StateNormal and reports the geometry recorded
// when fullscreen was entered.
func (m *StateMachine) ExitFullScreen() (Rect, Transition) {
	if m.state != StateFullScreen {
		return m.normal, Transition{From: m.state, To: m.state}
	}
	m.normal = m.saved
	return m.saved, m.set(StateNormal)
}

// Restore forces StateNormal regardless of the current state.
func (m *StateMachine) Restore() Transition {
	if m.state == StateFullScreen {
		_, t := m.ExitFullScreen()
		return t
	}
	return m.set(StateNormal)
}

// Observe applies a state change initiated through the host window system.
func (m *StateMachine) Observe(s State) Transition {
	switch {
	case s == m.state:
		return Transition{From: s, To: s}
	case s == StateFullScreen:
		m.saved = m.normal
	case m.state == StateFullScreen && s == StateNormal:
		m.normal = m.saved
	}
	return m.set(s)
}

// SetFocused reports whether focus changed.
func (m *StateMachine) SetFocused(focused bool) bool {
	if m.focused == focused {
		return false
	}
	m.focused = focused
	return true
}
