package core

import tea "github.com/charmbracelet/bubbletea"

type StatusMsg struct {
	Text  string
	IsErr bool
}

type PushScreenMsg struct {
	Screen Screen
}

type PopScreenMsg struct{}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{Text: "", IsErr: false}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}

func PushScreenCmd(screen Screen) tea.Cmd {
	return func() tea.Msg { return PushScreenMsg{Screen: screen} }
}

func PopScreenCmd() tea.Msg {
	return PopScreenMsg{}
}
