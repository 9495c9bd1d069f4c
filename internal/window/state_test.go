package window

import "testing"

func TestStateMachine_RequestedTransitions(t *testing.T) {
	tests := []struct {
		name  string
		start State
		apply func(m *StateMachine) Transition
		want  State
	}{
		{"minimize", StateNormal, func(m *StateMachine) Transition { return m.Minimize(true) }, StateMinimized},
		{"unminimize", StateMinimized, func(m *StateMachine) Transition { return m.Minimize(false) }, StateNormal},
		{"unminimize when maximized", StateMaximized, func(m *StateMachine) Transition { return m.Minimize(false) }, StateMaximized},
		{"maximize", StateNormal, func(m *StateMachine) Transition { return m.Maximize(true) }, StateMaximized},
		{"maximize when minimized", StateMinimized, func(m *StateMachine) Transition { return m.Maximize(true) }, StateMaximized},
		{"unmaximize", StateMaximized, func(m *StateMachine) Transition { return m.Maximize(false) }, StateNormal},
		{"restore from fullscreen", StateFullScreen, func(m *StateMachine) Transition { return m.Restore() }, StateNormal},
		{"restore from minimized", StateMinimized, func(m *StateMachine) Transition { return m.Restore() }, StateNormal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewStateMachine(Rect{Width: 10, Height: 10}, false)
			m.Observe(tt.start)
			tr := tt.apply(m)
			if m.State() != tt.want || tr.To != tt.want || tr.From != tt.start {
				t.Fatalf("expected %v->%v, got transition %v->%v and state %v",
					tt.start, tt.want, tr.From, tr.To, m.State())
			}
			if tr.Changed() != (tt.start != tt.want) {
				t.Fatalf("expected Changed()=%v", tt.start != tt.want)
			}
		})
	}
}

func TestStateMachine_FullScreenRestoresNormalGeometry(t *testing.T) {
	normal := Rect{X: 100, Y: 50, Width: 800, Height: 600}
	m := NewStateMachine(Rect{Width: 1, Height: 1}, true)
	m.Track(normal)

	saved, tr := m.EnterFullScreen()
	if saved != normal || tr.To != StateFullScreen {
		t.Fatalf("expected %v saved entering fullscreen, got %v (%v)", normal, saved, tr.To)
	}

	m.Track(Rect{Width: 1920, Height: 1080})
	if m.NormalGeometry() != normal {
		t.Fatalf("expected geometry tracked in fullscreen to be ignored, got %v", m.NormalGeometry())
	}

	// Entering again keeps the first save.
	if again, _ := m.EnterFullScreen(); again != normal {
		t.Fatalf("expected repeated enter to keep %v, got %v", normal, again)
	}

	restored, tr := m.ExitFullScreen()
	if restored != normal || tr.To != StateNormal {
		t.Fatalf("expected restore to %v, got %v (%v)", normal, restored, tr.To)
	}
	if !m.Focused() {
		t.Fatalf("expected focus to be orthogonal to state")
	}
}

func TestStateMachine_FullScreenFromMaximized(t *testing.T) {
	normal := Rect{X: 10, Y: 20, Width: 300, Height: 200}
	m := NewStateMachine(normal, false)
	m.Maximize(true)
	m.Track(Rect{Width: 1900, Height: 1000})

	saved, _ := m.EnterFullScreen()
	if saved != normal {
		t.Fatalf("expected pre-maximize geometry %v, got %v", normal, saved)
	}
	if restored, _ := m.ExitFullScreen(); restored != normal {
		t.Fatalf("expected %v, got %v", normal, restored)
	}
}

func TestStateMachine_MinimizedFrom(t *testing.T) {
	m := NewStateMachine(Rect{Width: 10, Height: 10}, false)
	m.Maximize(true)
	m.Minimize(true)
	if got := m.MinimizedFrom(); got != StateMaximized {
		t.Fatalf("expected Maximized, got %v", got)
	}
	// Minimizing again keeps the state that was left first.
	m.Minimize(true)
	if got := m.MinimizedFrom(); got != StateMaximized {
		t.Fatalf("expected Maximized after a repeated minimize, got %v", got)
	}

	m.Minimize(false)
	if got := m.MinimizedFrom(); got != StateNormal {
		t.Fatalf("expected the current state outside Minimized, got %v", got)
	}

	m.Observe(StateFullScreen)
	m.Observe(StateMinimized)
	if got := m.MinimizedFrom(); got != StateFullScreen {
		t.Fatalf("expected FullScreen for a host minimize, got %v", got)
	}
}

func TestStateMachine_ObservedFullScreen(t *testing.T) {
	normal := Rect{X: 1, Y: 2, Width: 3, Height: 4}
	m := NewStateMachine(normal, false)

	m.Observe(StateFullScreen)
	m.Track(Rect{Width: 1920, Height: 1080})
	m.Observe(StateNormal)

	if m.NormalGeometry() != normal {
		t.Fatalf("expected %v after host left fullscreen, got %v", normal, m.NormalGeometry())
	}
}

func TestStateMachine_ExitWhenNotFullScreen(t *testing.T) {
	m := NewStateMachine(Rect{Width: 5, Height: 5}, false)
	m.Maximize(true)
	_, tr := m.ExitFullScreen()
	if tr.Changed() || m.State() != StateMaximized {
		t.Fatalf("expected no change, got %v->%v", tr.From, tr.To)
	}
}

func TestStateMachine_Focus(t *testing.T) {
	m := NewStateMachine(Rect{}, false)
	if m.SetFocused(false) {
		t.Fatalf("expected no change when already unfocused")
	}
	if !m.SetFocused(true) || !m.Focused() {
		t.Fatalf("expected focus change")
	}
}

func TestStateMachine_ClampsGeometry(t *testing.T) {
	m := NewStateMachine(Rect{X: -5, Y: -5, Width: -1, Height: 10}, false)
	if got := m.NormalGeometry(); got != (Rect{Height: 10}) {
		t.Fatalf("expected clamped geometry, got %v", got)
	}
}

func TestStateString(t *testing.T) {
	if StateFullScreen.String() != "FullScreen" || State(9).String() != "State(9)" {
		t.Fatalf("unexpected state names %q %q", StateFullScreen, State(9))
	}
}
