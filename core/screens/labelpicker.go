package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/contactlabels/core"
	"github.com/jask/contactlabels/internal/labels"
)

// LabelDelegate is told which label the user picked on a LabelScreen.
// Pass a nil interface to drop the notification. A typed nil pointer is not
// nil here and its ChangeLabel will be called.
type LabelDelegate interface {
	ChangeLabel(label string)
}

// LabelRow is one rendered row of a LabelScreen.
type LabelRow struct {
	Key     string
	Label   string
	Checked bool
}

type labelKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
}

func newLabelKeyMap(reg *core.KeyRegistry) labelKeyMap {
	if reg == nil {
		reg = core.NewKeyRegistry(core.DefaultKeyBindings())
	}
	return labelKeyMap{
		Up:     reg.Binding(core.ActionUp, core.ScopeLabelPicker),
		Down:   reg.Binding(core.ActionDown, core.ScopeLabelPicker),
		Select: reg.Binding(core.ActionSelect, core.ScopeLabelPicker),
		Back:   reg.Binding(core.ActionBack, core.ScopeLabelPicker),
	}
}

// LabelScreen lists selectable labels, marks the selected one, and reports a
// tapped row to its delegate. A visit ends with exactly one tap or one back.
type LabelScreen struct {
	title     string
	selected  string
	entries   []labels.Entry
	rows      []labels.Entry
	query     string
	cursor    int
	offset    int
	delegate  LabelDelegate
	dismissed bool
	keys      labelKeyMap
}

func NewLabelScreen(title, selectedData string, dataList *labels.Set, delegate LabelDelegate, reg *core.KeyRegistry) *LabelScreen {
	s := &LabelScreen{
		title:    strings.TrimSpace(title),
		selected: selectedData,
		entries:  dataList.Entries(),
		delegate: delegate,
		keys:     newLabelKeyMap(reg),
	}
	if s.title == "" {
		s.title = "Label"
	}
	s.rows = s.entries
	s.cursor = max(0, s.checkedRow())
	return s
}

func (s *LabelScreen) Title() string { return s.title }
func (s *LabelScreen) Scope() string { return core.ScopeLabelPicker }

func (s *LabelScreen) SelectedData() string { return s.selected }
func (s *LabelScreen) Dismissed() bool      { return s.dismissed }
func (s *LabelScreen) Cursor() int          { return s.cursor }
func (s *LabelScreen) Query() string        { return s.query }

func (s *LabelScreen) RowCount() int { return len(s.rows) }

func (s *LabelScreen) Row(i int) (LabelRow, bool) {
	if i < 0 || i >= len(s.rows) {
		return LabelRow{}, false
	}
	e := s.rows[i]
	return LabelRow{Key: e.Key, Label: e.Label, Checked: i == s.checkedRow()}, true
}

func (s *LabelScreen) Rows() []LabelRow {
	out := make([]LabelRow, 0, len(s.rows))
	for i := range s.rows {
		row, _ := s.Row(i)
		out = append(out, row)
	}
	return out
}

// SelectRow taps row i: the label becomes the selection, the delegate is
// notified and the screen is dismissed. Taps after dismissal or outside the
// rendered rows are ignored. Only an untyped nil delegate is skipped.
func (s *LabelScreen) SelectRow(i int) bool {
	if s.dismissed || i < 0 || i >= len(s.rows) {
		return false
	}
	s.selected = s.rows[i].Label
	s.dismissed = true
	if s.delegate != nil {
		s.delegate.ChangeLabel(s.selected)
	}
	return true
}

// Back dismisses the screen without reporting a selection.
func (s *LabelScreen) Back() bool {
	if s.dismissed {
		return false
	}
	s.dismissed = true
	return true
}

func (s *LabelScreen) Shown() tea.Cmd {
	s.cursor = max(0, s.checkedRow())
	return nil
}

func (s *LabelScreen) Hidden() {
	s.dismissed = true
}

func (s *LabelScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}
	if s.dismissed {
		return s, nil, true
	}
	switch {
	case key.Matches(km, s.keys.Up):
		if s.cursor > 0 {
			s.cursor--
		}
		return s, nil, false
	case key.Matches(km, s.keys.Down):
		if s.cursor < len(s.rows)-1 {
			s.cursor++
		}
		return s, nil, false
	case key.Matches(km, s.keys.Select):
		return s, nil, s.SelectRow(s.cursor)
	case key.Matches(km, s.keys.Back):
		return s, nil, s.Back()
	}
	switch km.Type {
	case tea.KeyBackspace:
		if s.query == "" {
			return s, nil, s.Back()
		}
		r := []rune(s.query)
		s.setQuery(string(r[:len(r)-1]))
	case tea.KeyRunes, tea.KeySpace:
		s.setQuery(s.query + string(km.Runes))
	}
	return s, nil, false
}

func (s *LabelScreen) setQuery(q string) {
	s.query = q
	s.rows = labels.Filter(s.entries, q)
	if strings.TrimSpace(q) == "" {
		s.cursor = max(0, s.checkedRow())
	} else {
		s.cursor = 0
	}
	s.offset = 0
}

// checkedRow is the rendered row holding the selection, or -1. Only the first
// entry matching the selection counts so at most one row is ever checked.
func (s *LabelScreen) checkedRow() int {
	for _, e := range s.entries {
		if !labels.Matches(e, s.selected) {
			continue
		}
		for i, r := range s.rows {
			if r.Key == e.Key {
				return i
			}
		}
		return -1
	}
	return -1
}

var (
	labelTitleStyle  = lipgloss.NewStyle().Foreground(core.Palette.Accent).Bold(true)
	labelMutedStyle  = lipgloss.NewStyle().Foreground(core.Palette.Muted)
	labelCheckStyle  = lipgloss.NewStyle().Foreground(core.Palette.Success).Bold(true)
	labelCursorStyle = lipgloss.NewStyle().Background(core.Palette.Surface).Bold(true)
)

func (s *LabelScreen) View(width, height int) string {
	width = max(20, width)
	lines := []string{labelTitleStyle.Render(s.title)}
	if s.query != "" {
		lines = append(lines, labelMutedStyle.Render("Filter: ")+s.query)
	}
	if len(s.rows) == 0 {
		msg := "No labels"
		if s.query != "" {
			msg = "No labels match"
		}
		lines = append(lines, labelMutedStyle.Render(msg))
		return strings.Join(lines, "\n")
	}

	visible := max(1, height-len(lines))
	s.scrollTo(visible)
	checked := s.checkedRow()
	end := min(len(s.rows), s.offset+visible)
	for i := s.offset; i < end; i++ {
		mark := "   "
		if i == checked {
			mark = labelCheckStyle.Render(" ✓ ")
		}
		line := core.PadLine(mark+s.rows[i].Label, width)
		if i == s.cursor {
			line = labelCursorStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (s *LabelScreen) scrollTo(visible int) {
	if s.cursor < s.offset {
		s.offset = s.cursor
	}
	if s.cursor >= s.offset+visible {
		s.offset = s.cursor - visible + 1
	}
	s.offset = max(0, min(s.offset, len(s.rows)-visible))
}
