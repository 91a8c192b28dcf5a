package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/rekishi/internal/screen"
)

// stubScreen is a minimal Screen for router tests.
type stubScreen struct {
	name   string
	inited bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.inited = true
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(width, height int) string               { return s.name }
func (s *stubScreen) Title() string                               { return s.name }

func TestRouter_PushPop(t *testing.T) {
	home := &stubScreen{name: "home"}
	r := New(home)

	if r.Depth() != 1 || r.Active() != home {
		t.Fatalf("fresh router: depth %d, active %v", r.Depth(), r.Active())
	}

	second := &stubScreen{name: "second"}
	r.Update(PushScreenMsg{Screen: second})
	if r.Depth() != 2 || r.Active() != second {
		t.Fatalf("after push: depth %d, active %s", r.Depth(), r.Active().Title())
	}
	if !second.inited {
		t.Error("pushed screen was not initialized")
	}

	r.Update(PopScreenMsg{})
	if r.Depth() != 1 || r.Active() != home {
		t.Fatalf("after pop: depth %d, active %s", r.Depth(), r.Active().Title())
	}

	// The root screen cannot be popped.
	r.Update(PopScreenMsg{})
	if r.Depth() != 1 {
		t.Errorf("root screen popped: depth %d", r.Depth())
	}
}

func TestRouter_Replace(t *testing.T) {
	home := &stubScreen{name: "home"}
	r := New(home)
	r.Update(PushScreenMsg{Screen: &stubScreen{name: "session"}})

	results := &stubScreen{name: "results"}
	r.Update(ReplaceScreenMsg{Screen: results})

	if r.Depth() != 2 {
		t.Fatalf("depth = %d after replace, want 2", r.Depth())
	}
	if r.Active() != results {
		t.Fatalf("active = %s, want results", r.Active().Title())
	}
	if !results.inited {
		t.Error("replacement screen was not initialized")
	}

	// Popping from the replacement lands on home, not the replaced screen.
	r.Update(PopScreenMsg{})
	if r.Active() != home {
		t.Errorf("active = %s after pop, want home", r.Active().Title())
	}
}
