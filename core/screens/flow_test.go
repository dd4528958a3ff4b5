package screens

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/contactlabels/core"
	"github.com/jask/contactlabels/internal/database/repository"
	"github.com/jask/contactlabels/internal/labels"
)

type memStore struct {
	contacts []repository.Contact
	details  map[string][]repository.Detail
	updates  []string
	failNext error
}

func newMemStore() *memStore {
	return &memStore{
		contacts: []repository.Contact{{ID: "c1", Name: "Ada"}, {ID: "c2", Name: "Grace"}},
		details: map[string][]repository.Detail{
			"c1": {
				{ID: "d1", ContactID: "c1", Kind: "phone", Value: "+44 1", Label: "Work"},
				{ID: "d2", ContactID: "c1", Kind: "email", Value: "ada@x", Label: "Home"},
			},
		},
	}
}

func (m *memStore) List(context.Context) ([]repository.Contact, error) {
	return append([]repository.Contact(nil), m.contacts...), nil
}

func (m *memStore) ListByContact(_ context.Context, contactID string) ([]repository.Detail, error) {
	return append([]repository.Detail(nil), m.details[contactID]...), nil
}

func (m *memStore) UpdateLabel(_ context.Context, id, label string) error {
	if err := m.failNext; err != nil {
		m.failNext = nil
		return err
	}
	for cid, ds := range m.details {
		for i := range ds {
			if ds[i].ID == id {
				m.details[cid][i].Label = label
				m.updates = append(m.updates, id+"="+label)
				return nil
			}
		}
	}
	return repository.ErrNotFound
}

// run feeds msg to m and then executes every resulting command until the
// queue drains, the way the Bubble Tea runtime would.
func run(t *testing.T, m tea.Model, msg tea.Msg) tea.Model {
	t.Helper()
	m, cmd := m.Update(msg)
	return drain(t, m, cmd)
}

func drain(t *testing.T, m tea.Model, cmd tea.Cmd) tea.Model {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 100 {
			t.Fatal("command queue did not drain")
		}
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch out := c().(type) {
		case nil:
		case tea.BatchMsg:
			queue = append(queue, out...)
		case tea.QuitMsg:
		default:
			var next tea.Cmd
			m, next = m.Update(out)
			queue = append(queue, next)
		}
	}
	return m
}

func start(t *testing.T, store *memStore) tea.Model {
	t.Helper()
	catalog, err := labels.NewCatalog(nil)
	if err != nil {
		t.Fatal(err)
	}
	reg := core.NewKeyRegistry(core.DefaultKeyBindings())
	root := NewContactsScreen(context.Background(), store, store, catalog, reg, nil)
	var m tea.Model = core.NewModel("Contacts", root, reg)
	m = run(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	return drain(t, m, m.Init())
}

func model(t *testing.T, m tea.Model) core.Model {
	t.Helper()
	cm, ok := m.(core.Model)
	if !ok {
		t.Fatalf("model type %T", m)
	}
	return cm
}

func TestFlowChangeLabelPersists(t *testing.T) {
	store := newMemStore()
	m := start(t, store)

	m = run(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := model(t, m).ActiveScope(); got != core.ScopeContactDetails {
		t.Fatalf("scope = %s, want details", got)
	}

	m = run(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	cm := model(t, m)
	if cm.ActiveScope() != core.ScopeLabelPicker || cm.Depth() != 2 {
		t.Fatalf("scope=%s depth=%d, want label picker on top", cm.ActiveScope(), cm.Depth())
	}
	picker := cm.Visible().(*LabelScreen)
	if row, _ := picker.Row(picker.Cursor()); row.Label != "Work" || !row.Checked {
		t.Fatalf("cursor row = %+v, want checked Work", row)
	}
	if !strings.Contains(cm.View(), "Phone label") {
		t.Fatalf("picker should be drawn:\n%s", cm.View())
	}

	// phone defaults start with Mobile
	for i := 0; i < picker.Cursor(); i++ {
		m = run(t, m, tea.KeyMsg{Type: tea.KeyUp})
	}
	m = run(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	cm = model(t, m)
	if cm.Depth() != 1 {
		t.Fatalf("depth = %d, picker should be dismissed", cm.Depth())
	}
	if len(store.updates) != 1 || store.updates[0] != "d1=Mobile" {
		t.Fatalf("updates = %v", store.updates)
	}
	details := cm.Visible().(*ContactDetailsScreen).Details()
	if details[0].Label != "Mobile" {
		t.Fatalf("detail label = %q", details[0].Label)
	}
	if status, isErr := cm.Status(); isErr || status != "Label set to Mobile" {
		t.Fatalf("status = %q err=%v", status, isErr)
	}
}

func TestFlowBackLeavesLabel(t *testing.T) {
	store := newMemStore()
	m := start(t, store)
	m = run(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = run(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = run(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := model(t, m).ActiveScope(); got != core.ScopeLabelPicker {
		t.Fatalf("scope = %s", got)
	}

	m = run(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	cm := model(t, m)
	if cm.Depth() != 1 {
		t.Fatalf("depth = %d", cm.Depth())
	}
	if len(store.updates) != 0 {
		t.Fatalf("back should not write, got %v", store.updates)
	}

	m = run(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if model(t, m).Depth() != 0 {
		t.Fatal("esc on details should return to contacts")
	}
}

func TestFlowSaveErrorReloads(t *testing.T) {
	store := newMemStore()
	store.failNext = errors.New("disk full")
	m := start(t, store)
	m = run(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = run(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = run(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = run(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	cm := model(t, m)
	status, isErr := cm.Status()
	if !isErr || !strings.Contains(status, "disk full") {
		t.Fatalf("status = %q err=%v", status, isErr)
	}
	details := cm.Visible().(*ContactDetailsScreen).Details()
	if details[0].Label != "Work" {
		t.Fatalf("label should be reloaded from store, got %q", details[0].Label)
	}
}

func TestFlowEmptyDetails(t *testing.T) {
	store := newMemStore()
	m := start(t, store)
	m = run(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = run(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	cm := model(t, m)
	if cm.Visible().Title() != "Grace" {
		t.Fatalf("visible = %s", cm.Visible().Title())
	}
	m = run(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if model(t, m).Depth() != 1 {
		t.Fatal("enter without details should not open a picker")
	}
}
