package screens

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/contactlabels/core"
	"github.com/jask/contactlabels/internal/database/repository"
	"github.com/jask/contactlabels/internal/labels"
)

type contactsLoadedMsg struct {
	contacts []repository.Contact
	err      error
}

// ContactsScreen is the root screen listing every contact.
type ContactsScreen struct {
	ctx      context.Context
	contacts ContactStore
	details  DetailStore
	catalog  *labels.Catalog
	registry *core.KeyRegistry
	keys     listKeyMap
	logger   *log.Logger

	list   []repository.Contact
	cursor int
	loaded bool
}

func NewContactsScreen(ctx context.Context, contacts ContactStore, details DetailStore, catalog *labels.Catalog, reg *core.KeyRegistry, logger *log.Logger) *ContactsScreen {
	return &ContactsScreen{
		ctx:      ctx,
		contacts: contacts,
		details:  details,
		catalog:  catalog,
		registry: reg,
		keys:     newListKeyMap(reg, core.ScopeContacts),
		logger:   logger,
	}
}

func (s *ContactsScreen) Title() string { return "Contacts" }
func (s *ContactsScreen) Scope() string { return core.ScopeContacts }

func (s *ContactsScreen) Shown() tea.Cmd {
	if s.loaded {
		return nil
	}
	ctx, store := s.ctx, s.contacts
	return func() tea.Msg {
		list, err := store.List(ctx)
		return contactsLoadedMsg{contacts: list, err: err}
	}
}

func (s *ContactsScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case contactsLoadedMsg:
		if msg.err != nil {
			return s, core.ErrorCmd(fmt.Errorf("load contacts: %w", msg.err)), false
		}
		s.list = msg.contacts
		s.loaded = true
		s.cursor = min(s.cursor, max(0, len(s.list)-1))
		return s, core.StatusCmd(fmt.Sprintf("%d contacts", len(s.list))), false
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.keys.Up):
			if s.cursor > 0 {
				s.cursor--
			}
		case key.Matches(msg, s.keys.Down):
			if s.cursor < len(s.list)-1 {
				s.cursor++
			}
		case key.Matches(msg, s.keys.Select):
			if s.cursor >= len(s.list) {
				return s, nil, false
			}
			c := s.list[s.cursor]
			return s, core.PushScreenCmd(NewContactDetailsScreen(s.ctx, c, s.details, s.catalog, s.registry, s.logger)), false
		}
	}
	return s, nil, false
}

func (s *ContactsScreen) View(width, height int) string {
	width = max(20, width)
	if !s.loaded {
		return detailMutedStyle.Render("Loading…")
	}
	if len(s.list) == 0 {
		return detailMutedStyle.Render("No contacts. Run `contactlabels seed` to add demo data.")
	}
	lines := make([]string, 0, len(s.list))
	for i, c := range s.list {
		line := core.PadLine("  "+c.Name, width)
		if i == s.cursor {
			line = detailCursorStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return core.ClipHeight(strings.Join(lines, "\n"), max(1, height))
}
