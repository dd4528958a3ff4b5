package core

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case StatusMsg:
		if msg.IsErr {
			m.logger.Printf("error: %s", msg.Text)
			m.SetError(errors.New(msg.Text))
		} else {
			m.SetStatus(msg.Text)
		}
		return m, nil
	case PushScreenMsg:
		return m, m.PushScreen(msg.Screen)
	case PopScreenMsg:
		return m, m.PopScreen()
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.screens.Top() != nil {
			return m.updateTop(msg)
		}
		if m.keys.IsAction(msg, ActionQuit, m.ActiveScope()) {
			m.quitting = true
			return m, tea.Quit
		}
		return m.updateRoot(msg)
	}

	// Non-key messages reach every screen so async results find the screen
	// that asked for them even when another one is presented over it.
	cmds := make([]tea.Cmd, 0, m.screens.Len()+1)
	var cmd tea.Cmd
	m, cmd = m.updateRoot(msg)
	cmds = append(cmds, cmd)
	for i := range m.screens.items {
		next, cmd, _ := m.screens.items[i].Update(msg)
		if next != nil {
			m.screens.items[i] = next
		}
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateTop(msg tea.Msg) (Model, tea.Cmd) {
	top := m.screens.Top()
	next, cmd, pop := top.Update(msg)
	if pop {
		return m, tea.Batch(cmd, m.PopScreen())
	}
	m.screens.replaceTop(next)
	return m, cmd
}

func (m Model) updateRoot(msg tea.Msg) (Model, tea.Cmd) {
	if m.root == nil {
		return m, nil
	}
	next, cmd, quit := m.root.Update(msg)
	if next != nil {
		m.root = next
	}
	if quit {
		m.quitting = true
		return m, tea.Batch(cmd, tea.Quit)
	}
	return m, cmd
}
