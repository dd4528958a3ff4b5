package core

import "github.com/charmbracelet/lipgloss"

var (
	appStyle = lipgloss.NewStyle().Foreground(colorText)

	headerAppStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	headerBarStyle = lipgloss.NewStyle().
			Background(colorMantle).
			Foreground(colorText)
	crumbStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Background(colorMantle)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface0)
	footerStyle = lipgloss.NewStyle().
			Background(colorMantle)
)
