package screens

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/contactlabels/core"
	"github.com/jask/contactlabels/internal/database/repository"
	"github.com/jask/contactlabels/internal/labels"
)

type detailsLoadedMsg struct {
	contactID string
	details   []repository.Detail
	err       error
}

type labelSavedMsg struct {
	detailID string
	label    string
	err      error
}

type pendingLabel struct {
	detailID string
	label    string
}

type listKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
}

func newListKeyMap(reg *core.KeyRegistry, scope string) listKeyMap {
	if reg == nil {
		reg = core.NewKeyRegistry(core.DefaultKeyBindings())
	}
	return listKeyMap{
		Up:     reg.Binding(core.ActionUp, scope),
		Down:   reg.Binding(core.ActionDown, scope),
		Select: reg.Binding(core.ActionSelect, scope),
		Back:   reg.Binding(core.ActionBack, scope),
	}
}

// ContactDetailsScreen lists one contact's details and relabels them through
// a LabelScreen, acting as its delegate.
type ContactDetailsScreen struct {
	ctx      context.Context
	contact  repository.Contact
	store    DetailStore
	catalog  *labels.Catalog
	registry *core.KeyRegistry
	keys     listKeyMap
	logger   *log.Logger

	details []repository.Detail
	cursor  int
	loaded  bool
	editing string
	pending *pendingLabel
}

func NewContactDetailsScreen(ctx context.Context, contact repository.Contact, store DetailStore, catalog *labels.Catalog, reg *core.KeyRegistry, logger *log.Logger) *ContactDetailsScreen {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &ContactDetailsScreen{
		ctx:      ctx,
		contact:  contact,
		store:    store,
		catalog:  catalog,
		registry: reg,
		keys:     newListKeyMap(reg, core.ScopeContactDetails),
		logger:   logger,
	}
}

func (s *ContactDetailsScreen) Title() string { return s.contact.Name }
func (s *ContactDetailsScreen) Scope() string { return core.ScopeContactDetails }

func (s *ContactDetailsScreen) Details() []repository.Detail {
	return append([]repository.Detail(nil), s.details...)
}

// ChangeLabel applies the label picked for the detail being edited. The
// write happens once this screen is shown again.
func (s *ContactDetailsScreen) ChangeLabel(label string) {
	for i := range s.details {
		if s.details[i].ID != s.editing {
			continue
		}
		s.details[i].Label = label
		s.pending = &pendingLabel{detailID: s.editing, label: label}
		return
	}
}

func (s *ContactDetailsScreen) Shown() tea.Cmd {
	if p := s.pending; p != nil {
		s.pending = nil
		s.editing = ""
		return s.saveLabel(p.detailID, p.label)
	}
	s.editing = ""
	if !s.loaded {
		return s.load()
	}
	return nil
}

func (s *ContactDetailsScreen) load() tea.Cmd {
	ctx, store, contactID := s.ctx, s.store, s.contact.ID
	return func() tea.Msg {
		details, err := store.ListByContact(ctx, contactID)
		return detailsLoadedMsg{contactID: contactID, details: details, err: err}
	}
}

func (s *ContactDetailsScreen) saveLabel(detailID, label string) tea.Cmd {
	ctx, store := s.ctx, s.store
	return func() tea.Msg {
		return labelSavedMsg{detailID: detailID, label: label, err: store.UpdateLabel(ctx, detailID, label)}
	}
}

func (s *ContactDetailsScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case detailsLoadedMsg:
		if msg.contactID != s.contact.ID {
			return s, nil, false
		}
		if msg.err != nil {
			return s, core.ErrorCmd(fmt.Errorf("load details: %w", msg.err)), false
		}
		s.details = msg.details
		s.loaded = true
		s.cursor = min(s.cursor, max(0, len(s.details)-1))
		return s, nil, false
	case labelSavedMsg:
		if !s.owns(msg.detailID) {
			return s, nil, false
		}
		if msg.err != nil {
			s.logger.Printf("save label detail=%s: %v", msg.detailID, msg.err)
			s.loaded = false
			return s, tea.Batch(core.ErrorCmd(fmt.Errorf("save label: %w", msg.err)), s.load()), false
		}
		s.logger.Printf("label detail=%s contact=%s label=%q", msg.detailID, s.contact.ID, msg.label)
		return s, core.StatusCmd("Label set to "+msg.label), false
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.keys.Up):
			if s.cursor > 0 {
				s.cursor--
			}
		case key.Matches(msg, s.keys.Down):
			if s.cursor < len(s.details)-1 {
				s.cursor++
			}
		case key.Matches(msg, s.keys.Select):
			return s, s.openLabelPicker(), false
		case key.Matches(msg, s.keys.Back):
			return s, nil, true
		}
	}
	return s, nil, false
}

func (s *ContactDetailsScreen) owns(detailID string) bool {
	for _, d := range s.details {
		if d.ID == detailID {
			return true
		}
	}
	return false
}

func (s *ContactDetailsScreen) openLabelPicker() tea.Cmd {
	if s.cursor < 0 || s.cursor >= len(s.details) {
		return nil
	}
	d := s.details[s.cursor]
	kind, err := labels.ParseKind(d.Kind)
	if err != nil {
		return core.ErrorCmd(err)
	}
	s.editing = d.ID
	title := kindTitles[kind] + " label"
	picker := NewLabelScreen(title, d.Label, s.catalog.For(kind), s, s.registry)
	return core.PushScreenCmd(picker)
}

var kindTitles = map[labels.Kind]string{
	labels.KindPhone: "Phone",
	labels.KindEmail: "Email",
	labels.KindSIP:   "SIP",
}

var (
	detailKindStyle   = lipgloss.NewStyle().Foreground(core.Palette.Muted).Width(6)
	detailLabelStyle  = lipgloss.NewStyle().Foreground(core.Palette.Accent).Width(10)
	detailCursorStyle = lipgloss.NewStyle().Background(core.Palette.Surface).Bold(true)
	detailMutedStyle  = lipgloss.NewStyle().Foreground(core.Palette.Muted)
)

func (s *ContactDetailsScreen) View(width, height int) string {
	width = max(20, width)
	lines := []string{labelTitleStyle.Render(s.contact.Name)}
	switch {
	case !s.loaded:
		lines = append(lines, detailMutedStyle.Render("Loading…"))
	case len(s.details) == 0:
		lines = append(lines, detailMutedStyle.Render("No details"))
	}
	for i, d := range s.details {
		label := d.Label
		if label == "" {
			label = "—"
		}
		line := core.PadLine(detailKindStyle.Render(d.Kind)+detailLabelStyle.Render(label)+" "+d.Value, width)
		if i == s.cursor {
			line = detailCursorStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return core.ClipHeight(strings.Join(lines, "\n"), max(1, height))
}
