package core

import (
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

// Shower is implemented by screens that want a hook when they become the
// visible top of the container, including the first time they are shown.
type Shower interface {
	Shown() tea.Cmd
}

// Hider is implemented by screens that want a hook when they are dismissed.
type Hider interface {
	Hidden()
}

// Model is the composite view container: a root screen with a stack of
// screens presented over it.
type Model struct {
	width     int
	height    int
	title     string
	root      Screen
	screens   ScreenStack
	keys      *KeyRegistry
	status    string
	statusErr bool
	quitting  bool
	logger    *log.Logger
}

func NewModel(title string, root Screen, keys *KeyRegistry) Model {
	if keys == nil {
		keys = NewKeyRegistry(DefaultKeyBindings())
	}
	return Model{
		title:  title,
		root:   root,
		keys:   keys,
		status: "Ready",
		width:  100,
		height: 32,
		logger: log.New(io.Discard, "", 0),
	}
}

// WithLogger returns a copy of m that logs screen transitions to logger.
func (m Model) WithLogger(logger *log.Logger) Model {
	if logger != nil {
		m.logger = logger
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if s, ok := m.root.(Shower); ok {
		return s.Shown()
	}
	return nil
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) Status() (string, bool) {
	return m.status, m.statusErr
}

func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	if m.root == nil {
		return "app"
	}
	return m.root.Scope()
}

// Visible returns the screen currently receiving keys.
func (m Model) Visible() Screen {
	if top := m.screens.Top(); top != nil {
		return top
	}
	return m.root
}

func (m Model) Depth() int {
	return m.screens.Len()
}

func (m *Model) PushScreen(s Screen) tea.Cmd {
	if s == nil {
		return nil
	}
	m.screens.Push(s)
	m.logger.Printf("show screen=%q scope=%s depth=%d", s.Title(), s.Scope(), m.screens.Len())
	if shower, ok := s.(Shower); ok {
		return shower.Shown()
	}
	return nil
}

// PopScreen dismisses the top screen and re-shows whatever is now visible.
func (m *Model) PopScreen() tea.Cmd {
	popped := m.screens.Pop()
	if popped == nil {
		return nil
	}
	m.logger.Printf("hide screen=%q scope=%s depth=%d", popped.Title(), popped.Scope(), m.screens.Len())
	if hider, ok := popped.(Hider); ok {
		hider.Hidden()
	}
	if shower, ok := m.Visible().(Shower); ok {
		return shower.Shown()
	}
	return nil
}
