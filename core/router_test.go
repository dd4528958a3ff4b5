package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type fakeScreen struct {
	title  string
	scope  string
	hits   int
	shown  int
	hidden int
	msgs   []tea.Msg
}

func (s *fakeScreen) Title() string        { return s.title }
func (s *fakeScreen) Scope() string        { return s.scope }
func (s *fakeScreen) View(int, int) string { return "screen:" + s.title }
func (s *fakeScreen) Shown() tea.Cmd       { s.shown++; return nil }
func (s *fakeScreen) Hidden()              { s.hidden++ }
func (s *fakeScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	s.msgs = append(s.msgs, msg)
	if km, ok := msg.(tea.KeyMsg); ok {
		s.hits++
		if km.String() == "esc" {
			return s, nil, true
		}
	}
	return s, nil, false
}

type pingMsg struct{}

func newTestModel() (Model, *fakeScreen) {
	root := &fakeScreen{title: "Root", scope: ScopeContacts}
	return NewModel("Test", root, NewKeyRegistry(DefaultKeyBindings())), root
}

func TestScreenGetsKeyBeforeRoot(t *testing.T) {
	m, root := newTestModel()
	screen := &fakeScreen{title: "Top", scope: ScopeLabelPicker}
	m.PushScreen(screen)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	updated := next.(Model)
	if screen.hits != 1 {
		t.Fatalf("screen should handle key first")
	}
	if root.hits != 0 {
		t.Fatalf("root should not receive key when a screen is open")
	}
	if updated.Depth() != 1 {
		t.Fatalf("screen should remain open")
	}
}

func TestScreenCanPopItself(t *testing.T) {
	m, root := newTestModel()
	screen := &fakeScreen{title: "Top", scope: ScopeLabelPicker}
	m.PushScreen(screen)
	if screen.shown != 1 {
		t.Fatalf("push should show the screen, shown=%d", screen.shown)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	updated := next.(Model)
	if updated.Depth() != 0 {
		t.Fatalf("expected screen to pop on esc")
	}
	if screen.hidden != 1 {
		t.Fatalf("popped screen should be hidden once, got %d", screen.hidden)
	}
	if root.shown != 1 {
		t.Fatalf("root should be shown again after pop, got %d", root.shown)
	}
}

func TestPushAndPopMessages(t *testing.T) {
	m, _ := newTestModel()
	screen := &fakeScreen{title: "Top", scope: ScopeLabelPicker}

	next, _ := m.Update(PushScreenMsg{Screen: screen})
	m = next.(Model)
	if m.ActiveScope() != ScopeLabelPicker {
		t.Fatalf("scope = %s", m.ActiveScope())
	}
	next, _ = m.Update(PopScreenCmd())
	m = next.(Model)
	if m.ActiveScope() != ScopeContacts {
		t.Fatalf("scope = %s", m.ActiveScope())
	}
	next, _ = m.Update(PopScreenMsg{})
	if next.(Model).Depth() != 0 {
		t.Fatal("popping an empty stack should be a no-op")
	}
}

func TestNonKeyMessagesReachEveryScreen(t *testing.T) {
	m, root := newTestModel()
	a := &fakeScreen{title: "A", scope: ScopeContactDetails}
	b := &fakeScreen{title: "B", scope: ScopeLabelPicker}
	m.PushScreen(a)
	m.PushScreen(b)

	m.Update(pingMsg{})
	for _, s := range []*fakeScreen{root, a, b} {
		if len(s.msgs) != 1 {
			t.Fatalf("%s got %d messages, want 1", s.title, len(s.msgs))
		}
	}
}

func TestQuitOnlyFromRootScope(t *testing.T) {
	m, _ := newTestModel()
	m.PushScreen(&fakeScreen{title: "Top", scope: ScopeLabelPicker})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd != nil {
		t.Fatal("q inside a screen should not quit")
	}

	m, _ = newTestModel()
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q on the root screen should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected quit message")
	}
}

func TestStatusMessages(t *testing.T) {
	m, _ := newTestModel()
	next, _ := m.Update(ErrorCmd(errTest("boom"))())
	m = next.(Model)
	if status, isErr := m.Status(); status != "boom" || !isErr {
		t.Fatalf("status = %q err=%v", status, isErr)
	}
	next, _ = m.Update(StatusCmd("saved")())
	m = next.(Model)
	if status, isErr := m.Status(); status != "saved" || isErr {
		t.Fatalf("status = %q err=%v", status, isErr)
	}
}

type errTest string

func (e errTest) Error() string { return string(e) }
