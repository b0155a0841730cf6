package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/adesai/prepdeck/internal/screen"
)

type fakeScreen struct {
	name   string
	inited bool
}

func (f *fakeScreen) Init() tea.Cmd {
	f.inited = true
	return nil
}

func (f *fakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) { return f, nil }
func (f *fakeScreen) View(width, height int) string               { return f.name }
func (f *fakeScreen) Title() string                               { return f.name }

func TestPushPop(t *testing.T) {
	root := &fakeScreen{name: "root"}
	r := New(root)

	if r.Depth() != 1 {
		t.Fatalf("Depth = %d, want 1", r.Depth())
	}

	second := &fakeScreen{name: "second"}
	r.Update(PushMsg{Screen: second})

	if r.Depth() != 2 {
		t.Errorf("Depth = %d, want 2", r.Depth())
	}
	if r.Active() != second {
		t.Error("expected pushed screen active")
	}
	if !second.inited {
		t.Error("expected pushed screen initialized")
	}

	r.Update(PopMsg{})
	if r.Active() != root {
		t.Error("expected root active after pop")
	}
}

func TestPop_NeverEmptiesStack(t *testing.T) {
	r := New(&fakeScreen{name: "root"})
	r.Update(PopMsg{})
	r.Update(PopMsg{})
	if r.Depth() != 1 {
		t.Errorf("Depth = %d, want 1 (root never popped)", r.Depth())
	}
	if r.Active() == nil {
		t.Error("expected root still active")
	}
}

func TestReplace(t *testing.T) {
	root := &fakeScreen{name: "root"}
	r := New(root)

	second := &fakeScreen{name: "second"}
	r.Update(PushMsg{Screen: second})

	replacement := &fakeScreen{name: "replacement"}
	r.Update(ReplaceMsg{Screen: replacement})

	if r.Depth() != 2 {
		t.Errorf("Depth = %d, want 2 (replace keeps depth)", r.Depth())
	}
	if r.Active() != replacement {
		t.Error("expected replacement active")
	}
	if !replacement.inited {
		t.Error("expected replacement initialized")
	}

	// Popping the replacement lands on root, not the replaced screen.
	r.Update(PopMsg{})
	if r.Active() != root {
		t.Error("expected root after popping replacement")
	}
}
