package window

import "log/slog"

type releaser struct {
	name string
	fn   func() error
}

// releaseStack owns native handles in acquisition order. Every handle is
// pushed right after it is acquired, so a failure at any later step can
// release exactly what exists, newest first.
type releaseStack struct {
	items []releaser
}

func (s *releaseStack) push(name string, fn func() error) {
	s.items = append(s.items, releaser{name: name, fn: fn})
}

func (s *releaseStack) len() int { return len(s.items) }

// unwind releases every handle in reverse acquisition order. Release
// failures are logged and do not stop the unwind. A second unwind finds
// the stack empty.
func (s *releaseStack) unwind(log *slog.Logger) int {
	n := 0
	for len(s.items) > 0 {
		last := s.items[len(s.items)-1]
		s.items = s.items[:len(s.items)-1]
		if err := last.fn(); err != nil {
			log.Warn("release native handle", "handle", last.name, "err", err)
		}
		n++
	}
	return n
}
